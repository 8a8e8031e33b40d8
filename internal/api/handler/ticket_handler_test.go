package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/api/middleware"
	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

type recordingTicketService struct {
	stubTicketService
	bookFn   func(ctx context.Context, userID string, in ports.BookTicketInput) (*domain.Ticket, error)
	getFn    func(ctx context.Context, userID, ticketID string) (*domain.Ticket, error)
	cancelFn func(ctx context.Context, userID, ticketID string) error
}

func (s *recordingTicketService) Book(ctx context.Context, userID string, in ports.BookTicketInput) (*domain.Ticket, error) {
	return s.bookFn(ctx, userID, in)
}

func (s *recordingTicketService) Get(ctx context.Context, userID, ticketID string) (*domain.Ticket, error) {
	return s.getFn(ctx, userID, ticketID)
}

func (s *recordingTicketService) Cancel(ctx context.Context, userID, ticketID string) error {
	return s.cancelFn(ctx, userID, ticketID)
}

func resolvedAuth(user *domain.User) *stubAuthService {
	return &stubAuthService{
		resolveFn: func(context.Context, string) (*domain.User, error) {
			return user, nil
		},
	}
}

func withCookie(req *http.Request) *http.Request {
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "tok123"})
	return req
}

func TestTicketHandler_Create_RedirectsToAccount(t *testing.T) {
	e := newTestEcho(t)
	auth := resolvedAuth(&domain.User{ID: "u1"})
	svc := &recordingTicketService{
		bookFn: func(_ context.Context, userID string, in ports.BookTicketInput) (*domain.Ticket, error) {
			if userID != "u1" || in.Destination != "Goa" || in.Seats != 2 {
				t.Fatalf("unexpected booking: %s %+v", userID, in)
			}
			return &domain.Ticket{ID: "t1", UserID: userID, Status: domain.TicketBooked}, nil
		},
	}
	h := NewTicketHandler(svc)

	form := url.Values{
		"destination": {"Goa"},
		"travel_date": {time.Now().Add(72 * time.Hour).Format("2006-01-02")},
		"seats":       {"2"},
	}
	req := withCookie(httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(form.Encode())))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := withSessionUser(auth, h.Create)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get(echo.HeaderLocation); loc != "/user/account" {
		t.Fatalf("expected redirect to account, got %q", loc)
	}
}

func TestTicketHandler_Create_InvalidForm(t *testing.T) {
	e := newTestEcho(t)
	auth := resolvedAuth(&domain.User{ID: "u1"})
	svc := &recordingTicketService{
		bookFn: func(context.Context, string, ports.BookTicketInput) (*domain.Ticket, error) {
			t.Fatalf("service must not be called on invalid input")
			return nil, nil
		},
	}
	h := NewTicketHandler(svc)

	form := url.Values{"destination": {"G"}, "travel_date": {"not-a-date"}, "seats": {"0"}}
	req := withCookie(httptest.NewRequest(http.MethodPost, "/tickets", strings.NewReader(form.Encode())))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := withSessionUser(auth, h.Create)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestTicketHandler_Show_ForeignTicket(t *testing.T) {
	e := newTestEcho(t)
	auth := resolvedAuth(&domain.User{ID: "u2"})
	svc := &recordingTicketService{
		getFn: func(context.Context, string, string) (*domain.Ticket, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewTicketHandler(svc)

	req := withCookie(httptest.NewRequest(http.MethodGet, "/tickets/t1", nil))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	err := withSessionUser(auth, h.Show)(c)
	if err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden to reach the error handler, got %v", err)
	}
}

func TestTicketHandler_Cancel(t *testing.T) {
	e := newTestEcho(t)
	auth := resolvedAuth(&domain.User{ID: "u1"})
	cancelled := ""
	svc := &recordingTicketService{
		cancelFn: func(_ context.Context, userID, ticketID string) error {
			if userID != "u1" {
				t.Fatalf("unexpected user: %s", userID)
			}
			cancelled = ticketID
			return nil
		},
	}
	h := NewTicketHandler(svc)

	req := withCookie(httptest.NewRequest(http.MethodPost, "/tickets/t1/cancel", nil))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("t1")

	if err := withSessionUser(auth, h.Cancel)(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if cancelled != "t1" {
		t.Fatalf("expected cancel for t1, got %q", cancelled)
	}
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
}
