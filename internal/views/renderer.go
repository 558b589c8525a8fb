package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"strings"

	"github.com/anonto42/connectly/web/internal/models"
	"github.com/labstack/echo/v4"
)

//go:embed templates
var templateFS embed.FS

var pages = []string{PageLogin, PageHome, PageCreate, PageView, PageEdit, PageProfile}

// Renderer renders pages through the shared layout
type Renderer struct {
	templates map[string]*template.Template
}

var funcs = template.FuncMap{
	"mediaAlt":        mediaAlt,
	"mediaAltOr":      mediaAltOr,
	"updatedMediaAlt": func() string { return UpdatedMediaAlt },
	"join":            strings.Join,
}

func mediaAlt(m *models.Media) string {
	return mediaAltOr(m, DefaultMediaAlt)
}

func mediaAltOr(m *models.Media, fallback string) string {
	if m == nil || m.Alt == "" {
		return fallback
	}
	return m.Alt
}

// New parses the embedded templates and checks every page binds the
// elements its handler relies on
func New() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(fsys, "templates/layout.html", "templates/partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{templates: make(map[string]*template.Template, len(pages))}
	for _, name := range pages {
		path := "templates/pages/" + name + ".html"

		src, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("read page %s: %w", name, err)
		}
		if err := checkBindings(name, string(src)); err != nil {
			return nil, err
		}

		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.Parse(string(src)); err != nil {
			return nil, fmt.Errorf("parse page %s: %w", name, err)
		}
		r.templates[name] = t
	}
	return r, nil
}

// Render implements echo.Renderer
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	t, ok := r.templates[name]
	if !ok {
		return fmt.Errorf("unknown page %q", name)
	}
	return t.ExecuteTemplate(w, "layout", data)
}
