package handlers

import (
	"net/http"

	"github.com/anonto42/connectly/web/internal/apiclient"
	"github.com/anonto42/connectly/web/internal/views"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// ProfileHandler renders the signed-in user's feed
type ProfileHandler struct {
	pages
	api apiclient.API
}

// NewProfileHandler creates a new ProfileHandler
func NewProfileHandler(api apiclient.API, header views.HeaderOptions, logger *zap.Logger) *ProfileHandler {
	return &ProfileHandler{pages: pages{header: header, logger: logger}, api: api}
}

// RegisterProfileRoutes registers the home page and the profile feed
func (h *ProfileHandler) RegisterProfileRoutes(g *echo.Group) {
	g.GET(views.PathHome, h.Home)
	g.GET(ProfilePath, h.Profile)
}

// Profile lists the posts of the session user
func (h *ProfileHandler) Profile(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var content views.ProfileContent
	status := http.StatusOK

	posts, err := h.api.FetchUserPosts(c.Request().Context(), sess.Token, sess.Name)
	if err != nil {
		h.logger.Error("Failed to load user posts", zap.String("user", sess.Name), zap.Error(err))
		content.Failed = true
		status = failureStatus(err)
	} else {
		content.Posts = posts
	}

	return c.Render(status, views.PageProfile, views.Page[views.ProfileContent]{
		Layout:  h.layout(c, sess, "Profile"),
		Content: content,
	})
}

// Home renders the landing page
func (h *ProfileHandler) Home(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, views.PageHome, views.Page[views.HomeContent]{
		Layout:  h.layout(c, sess, "Home"),
		Content: views.HomeContent{Name: sess.Name},
	})
}
