package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/anonto42/connectly/web/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL+"/", "key-123", 5*time.Second)
}

func TestFetchPostByID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/social/posts/42", r.URL.Path)
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "key-123", r.Header.Get("X-Noroff-API-Key"))
		w.Write([]byte(`{"data":{"id":42,"title":"Hi","body":"there","media":{"url":"http://img/1.png","alt":""}}}`))
	})

	post, err := c.FetchPostByID(context.Background(), "tok", "42")
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, 42, post.ID)
	assert.Equal(t, "Hi", post.Title)
	assert.Equal(t, "http://img/1.png", post.MediaURL())
}

func TestFetchPostByID_NullData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":null}`))
	})

	post, err := c.FetchPostByID(context.Background(), "tok", "42")
	require.NoError(t, err)
	assert.Nil(t, post)
}

func TestFetchPostByID_NotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"errors":[{"message":"No post with such ID"}]}`))
	})

	_, err := c.FetchPostByID(context.Background(), "tok", "42")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "No post with such ID", apiErr.Message)
}

func TestCreatePost_SendsNullMediaAndOmitsTags(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/social/posts", r.URL.Path)

		raw, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		assert.JSONEq(t, `{"title":"Hello","body":"World","media":null}`, string(raw))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"data":{"id":7,"title":"Hello","body":"World"}}`))
	})

	post, err := c.CreatePost(context.Background(), "tok", models.CreatePostRequest{Title: "Hello", Body: "World"})
	require.NoError(t, err)
	require.NotNil(t, post)
	assert.Equal(t, 7, post.ID)
}

func TestUpdatePost_SendsEmptyTags(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []interface{}{}, body["tags"])
		_, hasMedia := body["media"]
		assert.False(t, hasMedia)

		w.Write([]byte(`{"data":{"id":7,"title":"New","body":"Body"}}`))
	})

	post, err := c.UpdatePost(context.Background(), "tok", "7", models.UpdatePostRequest{Title: "New", Body: "Body", Tags: []string{}})
	require.NoError(t, err)
	assert.Equal(t, "New", post.Title)
}

func TestDeletePost(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/social/posts/7", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})

	require.NoError(t, c.DeletePost(context.Background(), "tok", "7"))
	assert.True(t, called)
}

func TestFetchUserPosts(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		want    int
		wantErr error
	}{
		{"posts", `{"data":[{"id":1,"title":"a","body":"b"},{"id":2,"title":"c","body":"d"}]}`, 2, nil},
		{"empty", `{"data":[]}`, 0, nil},
		{"object instead of array", `{"data":{"id":1}}`, 0, ErrNotSequence},
		{"missing data", `{}`, 0, ErrNotSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/social/profiles/jane%20doe/posts", r.URL.EscapedPath())
				w.Write([]byte(tt.payload))
			})

			posts, err := c.FetchUserPosts(context.Background(), "tok", "jane doe")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Len(t, posts, tt.want)
			assert.NotNil(t, posts)
		})
	}
}

func TestLoginUser(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/auth/login", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		var creds models.Credentials
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&creds))
		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"errors":[{"message":"Invalid email or password"}]}`))
			return
		}
		w.Write([]byte(`{"data":{"name":"jane","email":"jane@example.com","accessToken":"tok"}}`))
	})

	profile, err := c.LoginUser(context.Background(), models.Credentials{Email: "jane@example.com", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "jane", profile.Name)
	assert.Equal(t, "tok", profile.AccessToken)

	_, err = c.LoginUser(context.Background(), models.Credentials{Email: "jane@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "Invalid email or password")
}
