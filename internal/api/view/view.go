// Package view renders the server-side HTML pages. Each page template is
// parsed together with the shared layout at startup, so a broken template
// fails fast instead of at request time.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html templates/*/*.html
var templateFS embed.FS

// pages maps template names (as used by c.Render) to their source file.
var pages = map[string]string{
	"home":           "templates/home.html",
	"error":          "templates/error.html",
	"site/about":     "templates/site/about.html",
	"site/services":  "templates/site/services.html",
	"site/contact":   "templates/site/contact.html",
	"users/login":    "templates/users/login.html",
	"users/account":  "templates/users/account.html",
	"tickets/index":  "templates/tickets/index.html",
	"tickets/show":   "templates/tickets/show.html",
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	templates map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	templates := make(map[string]*template.Template, len(pages))
	for name, file := range pages {
		t, err := template.ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		templates[name] = t
	}
	return &Renderer{templates: templates}, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("template %q not registered", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
