package domain

import "time"

// TicketStatus represents the lifecycle state of a booked ticket.
type TicketStatus string

const (
	TicketBooked    TicketStatus = "booked"
	TicketCancelled TicketStatus = "cancelled"
)

// Ticket is a booking owned by a single user.
type Ticket struct {
	ID          string       `json:"id"`
	UserID      string       `json:"user_id"`
	Reference   string       `json:"reference"`
	Destination string       `json:"destination"`
	TravelDate  time.Time    `json:"travel_date"`
	Seats       int          `json:"seats"`
	Status      TicketStatus `json:"status"`
	CreatedAt   time.Time    `json:"created_at"`
}
