package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/anonto42/connectly/web/internal/models"
)

// LoginUser exchanges credentials for a profile carrying the access token
func (c *Client) LoginUser(ctx context.Context, creds models.Credentials) (*models.Profile, error) {
	data, err := c.do(ctx, http.MethodPost, "/auth/login", "", creds)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}
	if isNull(data) {
		return nil, fmt.Errorf("login: empty response")
	}

	var profile models.Profile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("decode profile: %w", err)
	}
	if profile.AccessToken == "" {
		return nil, fmt.Errorf("login: response carried no access token")
	}
	return &profile, nil
}

// FetchUserPosts retrieves every post authored by name
func (c *Client) FetchUserPosts(ctx context.Context, token, name string) ([]models.Post, error) {
	path := fmt.Sprintf("/social/profiles/%s/posts", url.PathEscape(name))
	data, err := c.do(ctx, http.MethodGet, path, token, nil)
	if err != nil {
		return nil, fmt.Errorf("fetch posts of %s: %w", name, err)
	}

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrNotSequence
	}

	posts := []models.Post{}
	if err := json.Unmarshal(trimmed, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}
