package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/api/metrics"
	"github.com/foodytravelers/booking/internal/api/middleware"
	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

// TicketHandler implements the owner-scoped ticket routes. All routes run
// behind RequireUser.
type TicketHandler struct {
	tickets ports.TicketService
}

func NewTicketHandler(tickets ports.TicketService) *TicketHandler {
	return &TicketHandler{tickets: tickets}
}

// List handles GET /tickets.
func (h *TicketHandler) List(c echo.Context) error {
	user, _ := middleware.UserFrom(c)

	tickets, err := h.tickets.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "tickets/index", echo.Map{
		"Title":   "My Tickets - Foody Travelers",
		"User":    user,
		"Tickets": tickets,
	})
}

// Create handles POST /tickets and redirects to the account page.
func (h *TicketHandler) Create(c echo.Context) error {
	user, _ := middleware.UserFrom(c)

	var req bookTicketRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid form data"})
	}
	if err := c.Validate(&req); err != nil {
		var ve ValidationErrors
		if errors.As(err, &ve) {
			return c.JSON(http.StatusBadRequest, validationResponse{Errors: ve})
		}
		return err
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "travel_date must be YYYY-MM-DD"})
	}

	if _, err := h.tickets.Book(c.Request().Context(), user.ID, ports.BookTicketInput{
		Destination: req.Destination,
		TravelDate:  travelDate,
		Seats:       req.Seats,
	}); err != nil {
		return err
	}

	metrics.TicketsCreatedTotal.Inc()
	return c.Redirect(http.StatusFound, "/user/account")
}

// Show handles GET /tickets/:id. Only the owner can view a ticket.
func (h *TicketHandler) Show(c echo.Context) error {
	user, _ := middleware.UserFrom(c)

	ticket, err := h.tickets.Get(c.Request().Context(), user.ID, c.Param("id"))
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "tickets/show", echo.Map{
		"Title":       "Ticket - Foody Travelers",
		"User":        user,
		"Ticket":      ticket,
		"Cancellable": ticket.Status == domain.TicketBooked,
	})
}

// Cancel handles POST /tickets/:id/cancel.
func (h *TicketHandler) Cancel(c echo.Context) error {
	user, _ := middleware.UserFrom(c)

	if err := h.tickets.Cancel(c.Request().Context(), user.ID, c.Param("id")); err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, "/user/account")
}
