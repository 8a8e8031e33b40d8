package ports

import (
	"context"

	"github.com/foodytravelers/booking/internal/core/domain"
)

// UserRepository defines the persistence interface for the credential store.
type UserRepository interface {
	// NewID reserves an identity for a user that has not been persisted yet,
	// so a session token bound to it can be issued before the insert.
	NewID() string
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByPhone(ctx context.Context, phone string) (*domain.User, error)
	// AppendToken adds a session token to the user's token list.
	AppendToken(ctx context.Context, id, token string) error
	// ClearTokens empties the user's token list, revoking every session.
	ClearTokens(ctx context.Context, id string) error
}
