package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anonto42/connectly/web/internal/models"
)

const postsPath = "/social/posts"

// CreatePost creates a new post. A response without data yields a nil post.
func (c *Client) CreatePost(ctx context.Context, token string, req models.CreatePostRequest) (*models.Post, error) {
	data, err := c.do(ctx, http.MethodPost, postsPath, token, req)
	if err != nil {
		return nil, fmt.Errorf("create post: %w", err)
	}
	return decodePost(data)
}

// FetchPostByID retrieves a post by ID. A null payload yields a nil post.
func (c *Client) FetchPostByID(ctx context.Context, token, id string) (*models.Post, error) {
	data, err := c.do(ctx, http.MethodGet, postsPath+"/"+url.PathEscape(id), token, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch post %s: %w", id, err)
	}
	return decodePost(data)
}

// UpdatePost replaces the editable fields of a post
func (c *Client) UpdatePost(ctx context.Context, token, id string, req models.UpdatePostRequest) (*models.Post, error) {
	data, err := c.do(ctx, http.MethodPut, postsPath+"/"+url.PathEscape(id), token, req)
	if err != nil {
		return nil, fmt.Errorf("update post %s: %w", id, err)
	}
	return decodePost(data)
}

// DeletePost deletes a post by ID
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	if _, err := c.do(ctx, http.MethodDelete, postsPath+"/"+url.PathEscape(id), token, nil); err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	return nil
}

func decodePost(data json.RawMessage) (*models.Post, error) {
	if isNull(data) {
		return nil, nil
	}
	var post models.Post
	if err := json.Unmarshal(data, &post); err != nil {
		return nil, fmt.Errorf("decode post: %w", err)
	}
	return &post, nil
}
