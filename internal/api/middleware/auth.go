package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// Context keys set by Session.
const (
	SessionIDKey   = "session_id"
	SessionUserKey = "session_user"
)

// CookieVerifier extracts the session id from a signed cookie value.
type CookieVerifier interface {
	Verify(value string) (string, error)
}

// SessionResolver loads the user behind a live session.
type SessionResolver interface {
	CurrentUser(ctx context.Context, sessionID string) (*domain.SessionUser, error)
}

// Session resolves the session cookie against the store and injects the
// session id and user into context. Missing, forged or expired sessions fail
// with domain.ErrNoActiveSession.
func Session(cookieName string, verifier CookieVerifier, sessions SessionResolver) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(cookieName)
			if err != nil || cookie.Value == "" {
				return domain.ErrNoActiveSession
			}

			sid, err := verifier.Verify(cookie.Value)
			if err != nil {
				return domain.ErrNoActiveSession
			}

			user, err := sessions.CurrentUser(c.Request().Context(), sid)
			if err != nil {
				return err
			}

			c.Set(SessionIDKey, sid)
			c.Set(SessionUserKey, user)

			return next(c)
		}
	}
}
