package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

type stubAuth struct {
	resolveFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuth) Signup(context.Context, ports.SignupInput) (*domain.User, string, error) {
	return nil, "", nil
}

func (s *stubAuth) Login(context.Context, string, string) (*domain.User, string, error) {
	return nil, "", nil
}

func (s *stubAuth) Logout(context.Context, string) error {
	return nil
}

func (s *stubAuth) Resolve(ctx context.Context, token string) (*domain.User, error) {
	return s.resolveFn(ctx, token)
}

func TestSession_NoCookie_Anonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuth{resolveFn: func(context.Context, string) (*domain.User, error) {
		t.Fatalf("resolve must not be called without a cookie")
		return nil, nil
	}}

	called := false
	handler := Session(auth)(func(c echo.Context) error {
		called = true
		if _, ok := UserFrom(c); ok {
			t.Fatalf("expected anonymous request")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestSession_ValidCookie_ResolvesUser(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "tok123"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuth{resolveFn: func(_ context.Context, token string) (*domain.User, error) {
		if token != "tok123" {
			t.Fatalf("unexpected token: %s", token)
		}
		return &domain.User{ID: "u1", Username: "alice123"}, nil
	}}

	handler := Session(auth)(func(c echo.Context) error {
		user, ok := UserFrom(c)
		if !ok || user.ID != "u1" {
			t.Fatalf("expected resolved user, got %+v", user)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
}

func TestSession_InvalidCookie_FailsClosedToAnonymous(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "revoked"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	auth := &stubAuth{resolveFn: func(context.Context, string) (*domain.User, error) {
		return nil, domain.ErrSessionInvalid
	}}

	called := false
	handler := Session(auth)(func(c echo.Context) error {
		called = true
		if _, ok := UserFrom(c); ok {
			t.Fatalf("revoked cookie must resolve to anonymous")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("public browsing must continue on a bad cookie")
	}
}

func TestRequireUser_Anonymous_RedirectsToLogin(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/account", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := RequireUser()(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/user/login" {
		t.Fatalf("expected redirect to /user/login, got %q", loc)
	}
}

func TestRequireUser_Resolved_PassesThrough(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/user/account", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(userContextKey, &domain.User{ID: "u1"})

	called := false
	handler := RequireUser()(func(c echo.Context) error {
		called = true
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}
