package forms

import (
	"strings"

	"github.com/anonto42/connectly/web/internal/models"
)

// UpdateMediaAlt is the alt text attached to media set from the edit form
const UpdateMediaAlt = "Media Description"

// PostForm holds the create form fields as submitted
type PostForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
	Tags  string `form:"tags"`
	Media string `form:"media"`
}

// ParseTags splits a comma-separated tag field into trimmed tags.
// An empty field yields nil so the payload omits tags.
func ParseTags(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	tags := make([]string, 0, len(parts))
	for _, p := range parts {
		tags = append(tags, strings.TrimSpace(p))
	}
	return tags
}

// NormalizeNewlines converts the CRLF line breaks browsers submit for
// textareas back to LF
func NormalizeNewlines(s string) string {
	return strings.ReplaceAll(s, "\r\n", "\n")
}

// ParseMedia turns a single media url field into a media object, or nil
func ParseMedia(raw string) *models.Media {
	if raw == "" {
		return nil
	}
	return &models.Media{URL: raw, Alt: ""}
}

// CreateRequest builds the create payload from the submitted form
func (f PostForm) CreateRequest() models.CreatePostRequest {
	return models.CreatePostRequest{
		Title: f.Title,
		Body:  NormalizeNewlines(f.Body),
		Tags:  ParseTags(f.Tags),
		Media: ParseMedia(f.Media),
	}
}

// EditForm holds the edit form fields plus the snapshot taken when the
// form was loaded
type EditForm struct {
	Title string `form:"title"`
	Body  string `form:"body"`
	Media string `form:"media"`

	OriginalTitle string `form:"originalTitle"`
	OriginalBody  string `form:"originalBody"`
	OriginalMedia string `form:"originalMedia"`
}

// Values returns the live values of the form
func (f EditForm) Values() Values {
	return Values{Title: f.Title, Body: NormalizeNewlines(f.Body), Media: f.Media}
}

// Snapshot returns the values the form was loaded with
func (f EditForm) Snapshot() Values {
	return Values{Title: f.OriginalTitle, Body: NormalizeNewlines(f.OriginalBody), Media: f.OriginalMedia}
}

// UpdateRequest builds the update payload. Tags are always sent empty.
func (f EditForm) UpdateRequest() models.UpdatePostRequest {
	req := models.UpdatePostRequest{
		Title: f.Title,
		Body:  NormalizeNewlines(f.Body),
		Tags:  []string{},
	}
	if url := strings.TrimSpace(f.Media); url != "" {
		req.Media = &models.Media{URL: url, Alt: UpdateMediaAlt}
	}
	return req
}

// Values are the tracked fields of the edit form
type Values struct {
	Title string
	Body  string
	Media string
}

// SnapshotOf captures a fetched post as form values
func SnapshotOf(post *models.Post) Values {
	return Values{Title: post.Title, Body: NormalizeNewlines(post.Body), Media: post.MediaURL()}
}

// Differs reports whether v diverges from snap. Media is compared trimmed.
func (v Values) Differs(snap Values) bool {
	return v.Title != snap.Title ||
		v.Body != snap.Body ||
		strings.TrimSpace(v.Media) != snap.Media
}
