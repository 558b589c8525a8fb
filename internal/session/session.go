package session

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo/v4"
)

const (
	keyToken = "token"
	keyName  = "name"

	contextKey = "session"
)

// ErrNoSession is returned by FromContext when the gate did not run
var ErrNoSession = errors.New("no session in context")

// Session is the explicit per-request session passed to pages.
// It is never read from ambient state by handlers.
type Session struct {
	Token string
	Name  string

	flashes []string
	raw     *sessions.Session
}

// Authenticated reports whether a token is present
func (s *Session) Authenticated() bool {
	return s != nil && s.Token != ""
}

// AddFlash queues a message for the next rendered page
func (s *Session) AddFlash(msg string) {
	s.raw.AddFlash(msg)
}

// Flashes returns the messages queued by a previous request
func (s *Session) Flashes() []string {
	if s == nil {
		return nil
	}
	return s.flashes
}

// Store loads and persists sessions in a signed cookie
type Store struct {
	store sessions.Store
	name  string
}

// Options configure the session cookie
type Options struct {
	Name   string
	Secret string
	Secure bool
	MaxAge int
}

// NewStore creates a cookie-backed Store
func NewStore(opts Options) *Store {
	cs := sessions.NewCookieStore([]byte(opts.Secret))
	cs.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   opts.MaxAge,
		HttpOnly: true,
		Secure:   opts.Secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &Store{store: cs, name: opts.Name}
}

// Load reads the request's session. Flashes are consumed, so Load must be
// followed by Save when any were present. A cookie that fails to decode
// yields a fresh, unauthenticated session.
func (s *Store) Load(c echo.Context) (*Session, error) {
	raw, err := s.store.Get(c.Request(), s.name)
	if err != nil && raw == nil {
		return nil, fmt.Errorf("load session: %w", err)
	}

	sess := &Session{raw: raw}
	sess.Token, _ = raw.Values[keyToken].(string)
	sess.Name, _ = raw.Values[keyName].(string)
	for _, f := range raw.Flashes() {
		if msg, ok := f.(string); ok {
			sess.flashes = append(sess.flashes, msg)
		}
	}
	return sess, nil
}

// Save writes the session back to the response cookie
func (s *Store) Save(c echo.Context, sess *Session) error {
	sess.raw.Values[keyToken] = sess.Token
	sess.raw.Values[keyName] = sess.Name
	if err := sess.raw.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Clear destroys the session cookie
func (s *Store) Clear(c echo.Context, sess *Session) error {
	sess.Token = ""
	sess.Name = ""
	delete(sess.raw.Values, keyToken)
	delete(sess.raw.Values, keyName)
	sess.raw.Options.MaxAge = -1
	if err := sess.raw.Save(c.Request(), c.Response()); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// WithContext stores sess on the echo context
func WithContext(c echo.Context, sess *Session) {
	c.Set(contextKey, sess)
}

// FromContext returns the session the gate placed on the context
func FromContext(c echo.Context) (*Session, error) {
	sess, ok := c.Get(contextKey).(*Session)
	if !ok || sess == nil {
		return nil, ErrNoSession
	}
	return sess, nil
}
