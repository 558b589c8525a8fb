package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore() *Store {
	return NewStore(Options{Name: "test_session", Secret: "0123456789abcdef0123456789abcdef", MaxAge: 3600})
}

func newContext(e *echo.Echo, cookies []*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestStore_SaveAndLoad(t *testing.T) {
	e := echo.New()
	store := newStore()

	c, rec := newContext(e, nil)
	sess, err := store.Load(c)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())

	sess.Token = "tok"
	sess.Name = "jane"
	require.NoError(t, store.Save(c, sess))

	c2, _ := newContext(e, rec.Result().Cookies())
	loaded, err := store.Load(c2)
	require.NoError(t, err)
	assert.True(t, loaded.Authenticated())
	assert.Equal(t, "tok", loaded.Token)
	assert.Equal(t, "jane", loaded.Name)
}

func TestStore_FlashesArePopped(t *testing.T) {
	e := echo.New()
	store := newStore()

	c, rec := newContext(e, nil)
	sess, err := store.Load(c)
	require.NoError(t, err)
	sess.AddFlash("Post deleted successfully!")
	require.NoError(t, store.Save(c, sess))

	c2, rec2 := newContext(e, rec.Result().Cookies())
	loaded, err := store.Load(c2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Post deleted successfully!"}, loaded.Flashes())
	require.NoError(t, store.Save(c2, loaded))

	c3, _ := newContext(e, rec2.Result().Cookies())
	again, err := store.Load(c3)
	require.NoError(t, err)
	assert.Empty(t, again.Flashes())
}

func TestStore_Clear(t *testing.T) {
	e := echo.New()
	store := newStore()

	c, rec := newContext(e, nil)
	sess, _ := store.Load(c)
	sess.Token = "tok"
	require.NoError(t, store.Save(c, sess))

	c2, rec2 := newContext(e, rec.Result().Cookies())
	loaded, _ := store.Load(c2)
	require.NoError(t, store.Clear(c2, loaded))
	assert.False(t, loaded.Authenticated())

	cookies := rec2.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestStore_TamperedCookieYieldsEmptySession(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e, []*http.Cookie{{Name: "test_session", Value: "garbage"}})

	sess, err := newStore().Load(c)
	require.NoError(t, err)
	assert.False(t, sess.Authenticated())
}

func TestFromContext(t *testing.T) {
	e := echo.New()
	c, _ := newContext(e, nil)

	_, err := FromContext(c)
	assert.ErrorIs(t, err, ErrNoSession)

	WithContext(c, &Session{Token: "tok"})
	sess, err := FromContext(c)
	require.NoError(t, err)
	assert.Equal(t, "tok", sess.Token)
}

func signed(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(exp)})
	s, err := tok.SignedString([]byte("irrelevant"))
	require.NoError(t, err)
	return s
}

func TestTokenValid(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{"empty", "", false},
		{"opaque", "abc123", true},
		{"unexpired jwt", signed(t, now.Add(time.Hour)), true},
		{"expired jwt", signed(t, now.Add(-time.Hour)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenValid(tt.token, now))
		})
	}
}
