package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

// AuthService implements signup, login, logout and session resolution.
//
// The duplicate email/phone pre-checks in Signup are advisory only, there to
// produce a friendly message before hashing. The unique indexes on the users
// collection are the actual enforcement point; a duplicate-key error from the
// insert is mapped back to the same conflict errors.
type AuthService struct {
	repo   ports.UserRepository
	issuer ports.TokenIssuer
}

func NewAuthService(repo ports.UserRepository, issuer ports.TokenIssuer) *AuthService {
	return &AuthService{repo: repo, issuer: issuer}
}

func (s *AuthService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, string, error) {
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if _, err := s.repo.FindByPhone(ctx, in.Phone); err == nil {
		return nil, "", domain.ErrPhoneTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, "", err
	}
	if in.Password != in.CPassword {
		return nil, "", domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	// The token is issued against a reserved id before anything is written,
	// and the single insert carries it. A failed issuance therefore aborts
	// the flow without leaving an orphaned user behind.
	id := s.repo.NewID()
	token, err := s.issuer.Issue(id)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	user := &domain.User{
		ID:           id,
		Username:     in.Username,
		Email:        in.Email,
		Phone:        in.Phone,
		Age:          in.Age,
		Address:      strings.Join([]string{in.Street, in.Ward, in.City, in.State, in.Pin}, ","),
		PasswordHash: string(hash),
		Tokens:       []string{token},
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, "", err
	}

	return created, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrWrongCredentials
		}
		return nil, "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrWrongCredentials
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, "", fmt.Errorf("issue session token: %w", err)
	}

	// Earlier tokens stay valid: concurrent sessions on other devices are
	// allowed until an explicit logout.
	if err := s.repo.AppendToken(ctx, user.ID, token); err != nil {
		return nil, "", err
	}
	user.Tokens = append(user.Tokens, token)

	return user, token, nil
}

// Logout revokes every outstanding session for the user, not just the one
// presenting the cookie.
func (s *AuthService) Logout(ctx context.Context, userID string) error {
	return s.repo.ClearTokens(ctx, userID)
}

func (s *AuthService) Resolve(ctx context.Context, token string) (*domain.User, error) {
	userID, err := s.issuer.Verify(token)
	if err != nil {
		return nil, domain.ErrSessionInvalid
	}

	user, err := s.repo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrSessionInvalid
		}
		return nil, err
	}

	// The signature alone is not enough: logout empties the server-side list,
	// and a revoked token must stop resolving even before its expiry.
	if !user.HasToken(token) {
		return nil, domain.ErrSessionInvalid
	}

	return user, nil
}
