package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/foodytravelers/booking/internal/core/domain"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Hour)

	token, err := issuer.Issue("user-42")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	userID, err := issuer.Verify(token)
	if err != nil {
		t.Fatalf("Verify returned error: %v", err)
	}
	if userID != "user-42" {
		t.Fatalf("expected user-42, got %q", userID)
	}
}

func TestTokenIssuer_ExpiryEmbedded(t *testing.T) {
	issuer := NewTokenIssuer("secret", 50*time.Minute)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	claims := &jwt.RegisteredClaims{}
	if _, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return []byte("secret"), nil
	}); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if claims.ExpiresAt == nil {
		t.Fatalf("expiry must be embedded in the token")
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 49*time.Minute || remaining > 51*time.Minute {
		t.Fatalf("unexpected expiry window: %v", remaining)
	}
}

func TestTokenIssuer_Expired(t *testing.T) {
	issuer := NewTokenIssuer("secret", time.Nanosecond)

	token, err := issuer.Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	time.Sleep(10 * time.Millisecond)
	if _, err := issuer.Verify(token); err != domain.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for expired token, got %v", err)
	}
}

func TestTokenIssuer_WrongSecret(t *testing.T) {
	token, err := NewTokenIssuer("secret-a", time.Hour).Issue("user-1")
	if err != nil {
		t.Fatalf("Issue returned error: %v", err)
	}

	if _, err := NewTokenIssuer("secret-b", time.Hour).Verify(token); err != domain.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for bad signature, got %v", err)
	}
}

func TestTokenIssuer_RejectsUnsignedAlg(t *testing.T) {
	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "user-1"})
	token, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}

	if _, err := NewTokenIssuer("secret", time.Hour).Verify(token); err != domain.ErrSessionInvalid {
		t.Fatalf("expected ErrSessionInvalid for alg none, got %v", err)
	}
}
