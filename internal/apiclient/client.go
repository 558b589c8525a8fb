package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/anonto42/connectly/web/internal/models"
)

var (
	// ErrNotFound is returned when the API answers 404
	ErrNotFound = errors.New("not found")
	// ErrUnauthorized is returned when the API rejects the session token
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotSequence is returned when a list endpoint does not return an array
	ErrNotSequence = errors.New("response data is not an array")
)

// API defines the upstream operations the pages rely on
type API interface {
	LoginUser(ctx context.Context, creds models.Credentials) (*models.Profile, error)
	CreatePost(ctx context.Context, token string, req models.CreatePostRequest) (*models.Post, error)
	FetchPostByID(ctx context.Context, token, id string) (*models.Post, error)
	UpdatePost(ctx context.Context, token, id string, req models.UpdatePostRequest) (*models.Post, error)
	DeletePost(ctx context.Context, token, id string) error
	FetchUserPosts(ctx context.Context, token, name string) ([]models.Post, error)
}

// APIError carries a failed response's status and the upstream message
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.Status)
	}
	return e.Message
}

// Unwrap maps well-known statuses onto the package sentinels
func (e *APIError) Unwrap() error {
	switch e.Status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	}
	return nil
}

// envelope is the {"data": ...} wrapper every endpoint responds with
type envelope struct {
	Data json.RawMessage `json:"data"`
}

type errorBody struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (b errorBody) message() string {
	var parts []string
	for _, e := range b.Errors {
		if e.Message != "" {
			parts = append(parts, e.Message)
		}
	}
	if len(parts) > 0 {
		return strings.Join(parts, "; ")
	}
	return b.Message
}

// Client talks to the social REST API
type Client struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// New creates a Client for baseURL. apiKey may be empty.
func New(baseURL, apiKey string, timeout time.Duration) *Client {
	return &Client{
		client: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
	}
}

// do sends body as JSON and returns the raw "data" member of the response.
// A 204 or empty body yields nil data.
func (c *Client) do(ctx context.Context, method, path, token string, body interface{}) (json.RawMessage, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if c.apiKey != "" {
		req.Header.Set("X-Noroff-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		var errResp errorBody
		_ = json.Unmarshal(raw, &errResp)
		return nil, &APIError{Status: resp.StatusCode, Message: errResp.message()}
	}

	if resp.StatusCode == http.StatusNoContent || len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return env.Data, nil
}

// isNull reports whether data is absent or the JSON literal null
func isNull(data json.RawMessage) bool {
	trimmed := bytes.TrimSpace(data)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
