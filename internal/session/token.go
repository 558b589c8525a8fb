package session

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenValid reports whether token can still be presented to the API.
// Opaque tokens are valid when non-empty; JWTs are valid until their exp
// claim passes. The signature is not verified here, the API does that.
func TokenValid(token string, now time.Time) bool {
	if token == "" {
		return false
	}
	if strings.Count(token, ".") != 2 {
		return true
	}

	claims := &jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return true
	}
	if claims.ExpiresAt == nil {
		return true
	}
	return now.Before(claims.ExpiresAt.Time)
}

// Valid reports whether the session carries a usable token
func (s *Session) Valid(now time.Time) bool {
	return s != nil && TokenValid(s.Token, now)
}
