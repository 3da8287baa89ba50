// Package sessions defines the server-side session record used by the
// database session backend. The cookie backend is stateless and never
// touches this package.
package sessions

import "time"

// Session maps an opaque token to a user identity until it expires.
type Session struct {
	ID        string
	Token     string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the session is past its expiry at the given time.
func (s *Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
