// Package view renders the console's server-side HTML. Templates are
// embedded at build time; each page template is parsed together with its
// shell layout: the authenticated shell (sidebar navigation, user block) for
// protected screens, the bare shell for landing and login.
package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var files embed.FS

// pages maps each renderable page to its shell layout.
var pages = map[string]string{
	"dashboard":     "app",
	"clients":       "app",
	"client_detail": "app",
	"workflows":     "app",
	"copy":          "app",
	"activity":      "app",
	"settings":      "app",
	"login":         "bare",
	"landing":       "bare",
	"error":         "bare",
}

// Renderer implements echo.Renderer over the embedded template set.
type Renderer struct {
	templates map[string]*template.Template
}

// NewRenderer parses all embedded templates. It fails fast on any parse
// error so a broken template is caught at startup, not first render.
func NewRenderer() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}

	for page, layout := range pages {
		t, err := template.New(page).
			Funcs(funcMap()).
			ParseFS(files, "templates/"+layout+".html", "templates/"+page+".html")
		if err != nil {
			return nil, fmt.Errorf("parse template %q: %w", page, err)
		}
		r.templates[page] = t
	}
	return r, nil
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
