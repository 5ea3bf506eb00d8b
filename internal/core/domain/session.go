package domain

import "time"

// DefaultSessionTTL applies when no TTL is configured.
const DefaultSessionTTL = time.Hour

// Session links an opaque session id to an authenticated user.
type Session struct {
	ID        string
	User      SessionUser
	CreatedAt time.Time
	ExpiresAt time.Time
}

// NewSession builds a session for user that expires ttl after now.
func NewSession(id string, user SessionUser, now time.Time, ttl time.Duration) *Session {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	now = now.UTC()
	return &Session{
		ID:        id,
		User:      user,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
	}
}

// ExpiredAt reports whether the session is no longer valid at t.
// A session is valid strictly before ExpiresAt.
func (s *Session) ExpiredAt(t time.Time) bool {
	return !t.Before(s.ExpiresAt)
}

// TTL returns the remaining lifetime at t, never negative.
func (s *Session) TTL(t time.Time) time.Duration {
	if d := s.ExpiresAt.Sub(t); d > 0 {
		return d
	}
	return 0
}
