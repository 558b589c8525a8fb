package views

import (
	"github.com/anonto42/connectly/web/internal/forms"
	"github.com/anonto42/connectly/web/internal/models"
)

// Page names, one template per page
const (
	PageLogin   = "login"
	PageHome    = "home"
	PageCreate  = "post_create"
	PageView    = "post_view"
	PageEdit    = "post_edit"
	PageProfile = "profile"
)

// Alt text used when a post's media carries none. The updated-post preview
// on the edit page has its own fallback.
const (
	DefaultMediaAlt = "Media"
	UpdatedMediaAlt = "Post Media"
)

// Layout is the chrome shared by every page
type Layout struct {
	Title       string
	CurrentPath string
	Header      *Header
	Alerts      []string
}

// Page wraps the shared layout and page-specific content
type Page[T any] struct {
	Layout
	Content T
}

// LoginContent backs the login form
type LoginContent struct {
	Email string
}

// HomeContent backs the landing page
type HomeContent struct {
	Name string
}

// CreateContent backs the create-post page
type CreateContent struct {
	Form    forms.PostForm
	Button  forms.Button
	Created *models.Post
	Failed  bool
}

// ViewContent backs the single-post page. A nil Post without Failed
// renders an empty container.
type ViewContent struct {
	Post   *models.Post
	Failed bool
}

// EditContent backs the edit-post page
type EditContent struct {
	ID      string
	Loaded  bool
	Failed  bool
	Form    forms.EditForm
	Button  forms.Button
	Updated *models.Post
}

// ProfileContent backs the profile feed
type ProfileContent struct {
	Posts  []models.Post
	Failed bool
}
