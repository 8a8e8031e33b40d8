package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/core/domain"
	"github.com/foodytravelers/booking/internal/core/ports"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "jwt"

// userContextKey is the single key under which the resolved identity lives in
// the echo context. Handlers must go through UserFrom instead of reading the
// context ad hoc.
const userContextKey = "session.user"

// Session resolves the session cookie into a user and attaches it to the
// request context. A missing cookie means anonymous browsing and is never an
// error; a cookie that fails verification, has expired, or was revoked by
// logout is treated the same way (fail closed to anonymous).
func Session(auth ports.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(SessionCookieName)
			if err != nil || cookie.Value == "" {
				return next(c)
			}

			user, err := auth.Resolve(c.Request().Context(), cookie.Value)
			if err != nil {
				return next(c)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireUser guards routes that need a resolved identity, redirecting
// anonymous requests to the login page. It must run after Session.
func RequireUser() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := UserFrom(c); !ok {
				return c.Redirect(http.StatusFound, "/user/login")
			}
			return next(c)
		}
	}
}

// UserFrom returns the identity resolved by Session, if any.
func UserFrom(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok && user != nil
}
