package view

import (
	"strings"
	"testing"
	"time"

	"github.com/foodytravelers/booking/internal/core/domain"
)

func TestRenderer_AllPagesRegistered(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}

	user := &domain.User{ID: "u1", Username: "alice123", Email: "a@x.com", Phone: "9998887776", Address: "12 Main St,4,Pune,MH,560001"}
	ticket := &domain.Ticket{ID: "t1", Reference: "ref-1", Destination: "Goa", TravelDate: time.Now(), Seats: 2, Status: domain.TicketBooked}

	data := map[string]map[string]interface{}{
		"home":          {"Title": "Home", "User": user},
		"error":         {"Title": "Error", "User": nil, "Status": 500, "Message": "Something went wrong"},
		"site/about":    {"Title": "About", "User": nil},
		"site/services": {"Title": "Services", "User": nil},
		"site/contact":  {"Title": "Contact", "User": nil},
		"users/login":   {"Title": "Login", "User": nil},
		"users/account": {"Title": "Account", "User": user, "Tickets": []domain.Ticket{*ticket}},
		"tickets/index": {"Title": "Tickets", "User": user, "Tickets": []domain.Ticket{}},
		"tickets/show":  {"Title": "Ticket", "User": user, "Ticket": ticket, "Cancellable": true},
	}

	for name := range pages {
		d, ok := data[name]
		if !ok {
			t.Fatalf("no test data for page %q", name)
		}
		var sb strings.Builder
		if err := r.Render(&sb, name, d, nil); err != nil {
			t.Fatalf("render %q: %v", name, err)
		}
		if sb.Len() == 0 {
			t.Fatalf("render %q produced no output", name)
		}
	}
}

func TestRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "nope", nil, nil); err == nil {
		t.Fatalf("expected error for unregistered template")
	}
}

func TestRenderer_AnonymousNavShowsLogin(t *testing.T) {
	r, err := NewRenderer()
	if err != nil {
		t.Fatalf("NewRenderer returned error: %v", err)
	}
	var sb strings.Builder
	if err := r.Render(&sb, "home", map[string]interface{}{"Title": "Home", "User": nil}, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(sb.String(), "/user/login") {
		t.Fatalf("anonymous nav must link to login")
	}
	if strings.Contains(sb.String(), "/user/logout") {
		t.Fatalf("anonymous nav must not link to logout")
	}
}
