package ports

import (
	"context"

	"github.com/foodytravelers/booking/internal/core/domain"
)

// TicketRepository defines the persistence interface for booked tickets.
type TicketRepository interface {
	Create(ctx context.Context, ticket *domain.Ticket) (*domain.Ticket, error)
	FindByID(ctx context.Context, id string) (*domain.Ticket, error)
	FindByOwner(ctx context.Context, userID string) ([]domain.Ticket, error)
	UpdateStatus(ctx context.Context, id string, status domain.TicketStatus) error
}
