package models

import "time"

// Media is an image attached to a post
type Media struct {
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Post represents a social post as returned by the upstream API
type Post struct {
	ID      int       `json:"id"`
	Title   string    `json:"title"`
	Body    string    `json:"body"`
	Media   *Media    `json:"media,omitempty"`
	Tags    []string  `json:"tags,omitempty"`
	Author  *Author   `json:"author,omitempty"`
	Created time.Time `json:"created,omitempty"`
	Updated time.Time `json:"updated,omitempty"`
}

// Author is the compact owner info embedded in a post
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email,omitempty"`
}

// CreatePostRequest defines the body sent when creating a new post.
// Tags is omitted when empty; Media is always sent, as null when absent.
type CreatePostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags,omitempty"`
	Media *Media   `json:"media"`
}

// UpdatePostRequest defines the body sent when updating an existing post.
// Tags is always sent; Media only when set.
type UpdatePostRequest struct {
	Title string   `json:"title"`
	Body  string   `json:"body"`
	Tags  []string `json:"tags"`
	Media *Media   `json:"media,omitempty"`
}

// MediaURL returns the post's media url, or "" when it has none
func (p *Post) MediaURL() string {
	if p == nil || p.Media == nil {
		return ""
	}
	return p.Media.URL
}
