package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

// TicketService implements owner-scoped ticket operations.
type TicketService struct {
	repo ports.TicketRepository
}

func NewTicketService(repo ports.TicketRepository) *TicketService {
	return &TicketService{repo: repo}
}

func (s *TicketService) Book(ctx context.Context, userID string, in ports.BookTicketInput) (*domain.Ticket, error) {
	ticket := &domain.Ticket{
		UserID:      userID,
		Reference:   uuid.NewString(),
		Destination: in.Destination,
		TravelDate:  in.TravelDate,
		Seats:       in.Seats,
		Status:      domain.TicketBooked,
		CreatedAt:   time.Now().UTC(),
	}
	return s.repo.Create(ctx, ticket)
}

func (s *TicketService) Get(ctx context.Context, userID, ticketID string) (*domain.Ticket, error) {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return nil, err
	}
	if ticket.UserID != userID {
		return nil, domain.ErrForbidden
	}
	return ticket, nil
}

// ListByOwner returns the user's tickets; a user with no bookings gets an
// empty slice, not an error.
func (s *TicketService) ListByOwner(ctx context.Context, userID string) ([]domain.Ticket, error) {
	return s.repo.FindByOwner(ctx, userID)
}

func (s *TicketService) Cancel(ctx context.Context, userID, ticketID string) error {
	ticket, err := s.repo.FindByID(ctx, ticketID)
	if err != nil {
		return err
	}
	if ticket.UserID != userID {
		return domain.ErrForbidden
	}
	return s.repo.UpdateStatus(ctx, ticketID, domain.TicketCancelled)
}
