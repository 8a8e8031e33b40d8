package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/foodytravelers/booking/internal/api/middleware"
)

// SiteHandler renders the public pages. Identity is optional on all of them.
type SiteHandler struct{}

func NewSiteHandler() *SiteHandler {
	return &SiteHandler{}
}

func (h *SiteHandler) Home(c echo.Context) error {
	user, _ := middleware.UserFrom(c)
	return c.Render(http.StatusOK, "home", echo.Map{
		"Title": "Foody-Travelers - Home",
		"User":  user,
	})
}

func (h *SiteHandler) About(c echo.Context) error {
	user, _ := middleware.UserFrom(c)
	return c.Render(http.StatusOK, "site/about", echo.Map{
		"Title": "About - Foody Travelers",
		"User":  user,
	})
}

func (h *SiteHandler) Services(c echo.Context) error {
	user, _ := middleware.UserFrom(c)
	return c.Render(http.StatusOK, "site/services", echo.Map{
		"Title": "Services - Foody Travelers",
		"User":  user,
	})
}

func (h *SiteHandler) Contact(c echo.Context) error {
	user, _ := middleware.UserFrom(c)
	return c.Render(http.StatusOK, "site/contact", echo.Map{
		"Title": "Contact Us - Foody Travelers",
		"User":  user,
	})
}
