package handlers

import (
	"fmt"
	"net/http"

	"github.com/anonto42/connectly/web/internal/apiclient"
	"github.com/anonto42/connectly/web/internal/cache"
	"github.com/anonto42/connectly/web/internal/forms"
	"github.com/anonto42/connectly/web/internal/models"
	"github.com/anonto42/connectly/web/internal/session"
	"github.com/anonto42/connectly/web/internal/views"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Flash messages set by DeletePost
const (
	FlashDeleted      = "Post deleted successfully!"
	FlashDeleteFailed = "Failed to delete the post."
)

var errPostNotFound = fmt.Errorf("post: %w", apiclient.ErrNotFound)

// PostHandler handles the create, view, edit and delete pages
type PostHandler struct {
	pages
	api      apiclient.API
	latest   cache.LatestPostStore
	sessions *session.Store
}

// NewPostHandler creates a new PostHandler
func NewPostHandler(api apiclient.API, latest cache.LatestPostStore, sessions *session.Store, header views.HeaderOptions, logger *zap.Logger) *PostHandler {
	return &PostHandler{
		pages:    pages{header: header, logger: logger},
		api:      api,
		latest:   latest,
		sessions: sessions,
	}
}

// RegisterPostRoutes registers the post pages
func (h *PostHandler) RegisterPostRoutes(g *echo.Group) {
	g.GET(views.PathCreate, h.CreatePage)
	g.POST(views.PathCreate, h.CreatePost)
	g.GET(ViewPath, h.ViewPost)
	g.GET(EditPath, h.EditPage)
	g.POST(EditPath, h.UpdatePost)
	g.POST(DeletePath, h.DeletePost)
}

// CreatePage renders an empty create form
func (h *PostHandler) CreatePage(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}
	return h.renderCreate(c, sess, http.StatusOK, views.CreateContent{Button: forms.CreateButton(false)})
}

// CreatePost submits a new post to the API
func (h *PostHandler) CreatePost(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	var form forms.PostForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	content := views.CreateContent{Form: form, Button: forms.CreateButton(false)}

	ctx := c.Request().Context()
	post, err := h.api.CreatePost(ctx, sess.Token, form.CreateRequest())
	if err != nil {
		h.logger.Error("Failed to create post", zap.String("user", sess.Name), zap.Error(err))
		content.Failed = true
		return h.renderCreate(c, sess, failureStatus(err), content)
	}
	if post == nil {
		return h.renderCreate(c, sess, http.StatusOK, content)
	}

	if err := h.latest.PutLatest(ctx, sess.Name, post); err != nil {
		h.logger.Warn("Failed to cache latest post", zap.Int("postID", post.ID), zap.Error(err))
	}

	h.logger.Info("Post created", zap.Int("postID", post.ID), zap.String("user", sess.Name))
	content.Created = post
	content.Button = forms.CreateButton(true)
	return h.renderCreate(c, sess, http.StatusCreated, content)
}

// ViewPost renders a single post
func (h *PostHandler) ViewPost(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id := c.QueryParam("id")
	if id == "" {
		h.logger.Warn("No post ID found in URL", zap.String("path", c.Request().URL.Path))
		return h.renderView(c, sess, http.StatusBadRequest, views.ViewContent{})
	}

	post, err := h.fetch(c, sess, id)
	if err != nil {
		h.logger.Error("Failed to load post", zap.String("postID", id), zap.Error(err))
		return h.renderView(c, sess, failureStatus(err), views.ViewContent{Failed: true})
	}
	return h.renderView(c, sess, http.StatusOK, views.ViewContent{Post: post})
}

// EditPage renders the edit form populated from the fetched post
func (h *PostHandler) EditPage(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id := c.QueryParam("id")
	if id == "" {
		h.logger.Warn("No post ID found in URL", zap.String("path", c.Request().URL.Path))
		return h.renderEdit(c, sess, http.StatusBadRequest, views.EditContent{})
	}

	post, err := h.fetch(c, sess, id)
	if err != nil {
		h.logger.Error("Failed to load post for editing", zap.String("postID", id), zap.Error(err))
		return h.renderEdit(c, sess, failureStatus(err), views.EditContent{ID: id, Failed: true})
	}

	snap := forms.SnapshotOf(post)
	state := forms.NewEditState(snap)
	return h.renderEdit(c, sess, http.StatusOK, views.EditContent{
		ID:     id,
		Loaded: true,
		Form: forms.EditForm{
			Title:         snap.Title,
			Body:          snap.Body,
			Media:         snap.Media,
			OriginalTitle: snap.Title,
			OriginalBody:  snap.Body,
			OriginalMedia: snap.Media,
		},
		Button: state.Button(),
	})
}

// UpdatePost submits the edited fields to the API
func (h *PostHandler) UpdatePost(c echo.Context) error {
	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id := c.QueryParam("id")
	if id == "" {
		h.logger.Warn("No post ID found in URL", zap.String("path", c.Request().URL.Path))
		return h.renderEdit(c, sess, http.StatusBadRequest, views.EditContent{})
	}

	var form forms.EditForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request payload")
	}

	state := forms.NewEditState(form.Snapshot())
	state.Observe(form.Values())
	if state.Button().Disabled {
		h.logger.Debug("Update submitted without changes", zap.String("postID", id))
	}
	state.Begin()

	content := views.EditContent{ID: id, Loaded: true, Form: form}
	status := http.StatusOK

	post, err := h.api.UpdatePost(c.Request().Context(), sess.Token, id, form.UpdateRequest())
	switch {
	case err != nil:
		h.logger.Error("Failed to update post", zap.String("postID", id), zap.Error(err))
		state.Fail()
		status = failureStatus(err)
	case post == nil:
		h.logger.Warn("Update returned no post", zap.String("postID", id))
		state.Reject()
	default:
		h.logger.Info("Post updated", zap.String("postID", id))
		state.Succeed()
		content.Updated = post
	}

	content.Button = state.Button()
	return h.renderEdit(c, sess, status, content)
}

// DeletePost deletes the post once the user has confirmed
func (h *PostHandler) DeletePost(c echo.Context) error {
	if !confirmed(c) {
		return c.NoContent(http.StatusNoContent)
	}

	sess, err := currentSession(c)
	if err != nil {
		return err
	}

	id := c.QueryParam("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Post ID is required")
	}

	target := ProfilePath
	if err := h.api.DeletePost(c.Request().Context(), sess.Token, id); err != nil {
		h.logger.Error("Failed to delete post", zap.String("postID", id), zap.Error(err))
		sess.AddFlash(FlashDeleteFailed)
		target = EditPath + "?id=" + id
	} else {
		h.logger.Info("Post deleted", zap.String("postID", id))
		sess.AddFlash(FlashDeleted)
	}

	if err := h.sessions.Save(c, sess); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.Redirect(http.StatusSeeOther, target)
}

// fetch loads a post, treating a null payload as not found
func (h *PostHandler) fetch(c echo.Context, sess *session.Session, id string) (*models.Post, error) {
	post, err := h.api.FetchPostByID(c.Request().Context(), sess.Token, id)
	if err != nil {
		return nil, err
	}
	if post == nil {
		return nil, errPostNotFound
	}
	return post, nil
}

func (h *PostHandler) renderCreate(c echo.Context, sess *session.Session, status int, content views.CreateContent) error {
	return c.Render(status, views.PageCreate, views.Page[views.CreateContent]{
		Layout:  h.layout(c, sess, "Create Post"),
		Content: content,
	})
}

func (h *PostHandler) renderView(c echo.Context, sess *session.Session, status int, content views.ViewContent) error {
	title := "Post"
	if content.Post != nil {
		title = content.Post.Title
	}
	return c.Render(status, views.PageView, views.Page[views.ViewContent]{
		Layout:  h.layout(c, sess, title),
		Content: content,
	})
}

func (h *PostHandler) renderEdit(c echo.Context, sess *session.Session, status int, content views.EditContent) error {
	return c.Render(status, views.PageEdit, views.Page[views.EditContent]{
		Layout:  h.layout(c, sess, "Edit Post"),
		Content: content,
	})
}

