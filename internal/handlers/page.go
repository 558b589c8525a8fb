package handlers

import (
	"errors"
	"net/http"

	"github.com/anonto42/connectly/web/internal/apiclient"
	"github.com/anonto42/connectly/web/internal/session"
	"github.com/anonto42/connectly/web/internal/views"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Paths handlers redirect to
const (
	LoginPath   = "/auth/login/"
	ProfilePath = views.PathProfile
	ViewPath    = "/post/view/"
	EditPath    = "/post/edit/"
	DeletePath  = "/post/delete/"
)

// pages holds what every page handler needs to render the shared layout
type pages struct {
	header views.HeaderOptions
	logger *zap.Logger
}

func (p pages) layout(c echo.Context, sess *session.Session, title string) views.Layout {
	path := c.Request().URL.Path
	return views.Layout{
		Title:       title,
		CurrentPath: path,
		Header:      views.BuildHeader(sess, path, p.header),
		Alerts:      sess.Flashes(),
	}
}

func currentSession(c echo.Context) (*session.Session, error) {
	sess, err := session.FromContext(c)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusInternalServerError, "session unavailable")
	}
	return sess, nil
}

// failureStatus maps an API failure onto the status of the rendered page
func failureStatus(err error) int {
	if errors.Is(err, apiclient.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusBadGateway
}

// userMessage extracts the API's message for display, falling back to fallback
func userMessage(err error, fallback string) string {
	var apiErr *apiclient.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}

func confirmed(c echo.Context) bool {
	return c.FormValue("confirm") == "yes"
}

func isUnauthorized(err error) bool {
	return errors.Is(err, apiclient.ErrUnauthorized)
}
