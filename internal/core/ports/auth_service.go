package ports

import (
	"context"

	"github.com/foodytravelers/booking/internal/core/domain"
)

// SignupInput carries the validated signup form fields.
type SignupInput struct {
	Username  string
	Email     string
	Phone     string
	Age       int
	Street    string
	Ward      string
	City      string
	State     string
	Pin       string
	Password  string
	CPassword string
}

// AuthService implements the account and session lifecycle:
// signup → login → N concurrent sessions → logout (revokes all of them).
type AuthService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, string, error)
	Login(ctx context.Context, email, password string) (*domain.User, string, error)
	Logout(ctx context.Context, userID string) error
	// Resolve maps a session token back to its user. It fails with
	// domain.ErrSessionInvalid unless the token verifies AND is still present
	// in the user's server-side token list.
	Resolve(ctx context.Context, token string) (*domain.User, error)
}
