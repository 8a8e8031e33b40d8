package handler

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/api/metrics"
	"github.com/foodytravelers/booking/internal/api/middleware"
	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

// LoginGate rate-limits login attempts before the credential check runs.
type LoginGate interface {
	Allow(ctx context.Context, email, ip string) bool
}

// AuthHandler implements the signup/login/logout/account routes.
type AuthHandler struct {
	auth       ports.AuthService
	tickets    ports.TicketService
	gate       LoginGate
	sessionTTL time.Duration
}

func NewAuthHandler(auth ports.AuthService, tickets ports.TicketService, gate LoginGate, sessionTTL time.Duration) *AuthHandler {
	return &AuthHandler{auth: auth, tickets: tickets, gate: gate, sessionTTL: sessionTTL}
}

// Signup handles POST /user/signup. On success it sets the session cookie and
// redirects to the home page.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
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

	_, token, err := h.auth.Signup(c.Request().Context(), ports.SignupInput{
		Username:  req.Username,
		Email:     req.Email,
		Phone:     req.Phone,
		Age:       req.Age,
		Street:    req.Street,
		Ward:      req.Ward,
		City:      req.City,
		State:     req.State,
		Pin:       req.Pin,
		Password:  req.Password,
		CPassword: req.CPassword,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailTaken),
			errors.Is(err, domain.ErrPhoneTaken),
			errors.Is(err, domain.ErrPasswordMismatch):
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.SignupsTotal.Inc()
	setSessionCookie(c, token, h.sessionTTL)
	return c.Redirect(http.StatusFound, "/")
}

// LoginPage handles GET /user/login.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	user, _ := middleware.UserFrom(c)
	return c.Render(http.StatusOK, "users/login", echo.Map{
		"Title": "Login/Sign Up - Foody Travelers",
		"User":  user,
	})
}

// Login handles POST /user/login. A successful login adds a session on top of
// any existing ones and renders the authenticated home view.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
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

	if h.gate != nil && !h.gate.Allow(c.Request().Context(), req.Email, c.RealIP()) {
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "too many login attempts, try again later"})
	}

	user, token, err := h.auth.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, domain.ErrWrongCredentials) {
			metrics.LoginsTotal.WithLabelValues("failure").Inc()
			return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
		}
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	setSessionCookie(c, token, h.sessionTTL)
	return c.Render(http.StatusOK, "home", echo.Map{
		"Title": "Foody-Travelers - Home",
		"User":  user,
	})
}

// Logout handles GET /user/logout. It revokes every outstanding session for
// the user, clears the cookie, and redirects to the login page.
func (h *AuthHandler) Logout(c echo.Context) error {
	user, ok := middleware.UserFrom(c)
	if !ok {
		return c.Redirect(http.StatusFound, "/user/login")
	}

	if err := h.auth.Logout(c.Request().Context(), user.ID); err != nil {
		return err
	}

	metrics.SessionsRevokedTotal.Inc()
	clearSessionCookie(c)
	return c.Redirect(http.StatusFound, "/user/login")
}

// Account handles GET /user/account, rendering the profile together with the
// user's tickets. A user with no tickets gets an empty list.
func (h *AuthHandler) Account(c echo.Context) error {
	user, _ := middleware.UserFrom(c)

	tickets, err := h.tickets.ListByOwner(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "users/account", echo.Map{
		"Title":   "My Account - Foody Travelers",
		"User":    user,
		"Tickets": tickets,
	})
}

// Secret handles GET /user/secret, a diagnostic endpoint that echoes the
// resolved identity and the raw cookie value.
func (h *AuthHandler) Secret(c echo.Context) error {
	user, _ := middleware.UserFrom(c)

	cookieValue := ""
	if cookie, err := c.Cookie(middleware.SessionCookieName); err == nil {
		cookieValue = cookie.Value
	}

	return c.JSON(http.StatusOK, echo.Map{
		"status": "Successful",
		"page":   "Secret page",
		"cookie": cookieValue,
		"user":   user,
	})
}
