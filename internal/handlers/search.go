package handlers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/anonto42/connectly/web/internal/views"
	"github.com/labstack/echo/v4"
)

// SearchHandler forwards header searches to the search page
type SearchHandler struct {
	searchPath string
}

// NewSearchHandler creates a SearchHandler redirecting to searchPath
func NewSearchHandler(searchPath string) *SearchHandler {
	return &SearchHandler{searchPath: searchPath}
}

// RegisterSearchRoutes registers the header search form target
func (h *SearchHandler) RegisterSearchRoutes(g *echo.Group) {
	g.POST(views.PathSearch, h.Submit)
}

// Submit redirects to the search page with the query url-encoded. A blank
// query sends the user back where they came from.
func (h *SearchHandler) Submit(c echo.Context) error {
	q := strings.TrimSpace(c.FormValue("q"))
	if q == "" {
		return c.Redirect(http.StatusSeeOther, referrerPath(c.Request().Referer()))
	}
	return c.Redirect(http.StatusSeeOther, h.searchPath+"?"+url.Values{"query": {q}}.Encode())
}

// referrerPath keeps only the path and query of ref so the redirect stays on
// this site
func referrerPath(ref string) string {
	u, err := url.Parse(ref)
	if err != nil || u.Path == "" {
		return views.PathHome
	}
	if u.RawQuery != "" {
		return u.Path + "?" + u.RawQuery
	}
	return u.Path
}
