package ports

import (
	"context"
	"time"

	"github.com/foodytravelers/booking/internal/core/domain"
)

// BookTicketInput carries the fields needed to book a ticket.
type BookTicketInput struct {
	Destination string
	TravelDate  time.Time
	Seats       int
}

// TicketService exposes ticket operations scoped to their owner.
type TicketService interface {
	Book(ctx context.Context, userID string, in BookTicketInput) (*domain.Ticket, error)
	Get(ctx context.Context, userID, ticketID string) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, userID string) ([]domain.Ticket, error)
	Cancel(ctx context.Context, userID, ticketID string) error
}
