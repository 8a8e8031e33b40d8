package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/api/middleware"
)

// setSessionCookie attaches the signed session token as an HTTP-only cookie.
// The cookie expiry mirrors the expiry embedded in the token claims.
func setSessionCookie(c echo.Context, token string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(ttl),
		HttpOnly: true,
	})
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	})
}
