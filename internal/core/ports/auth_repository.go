package ports

import (
	"context"
	"time"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// UserRepository persists farmer accounts. Emails are unique.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
}

// SessionRepository owns session records. Implementations must not return a
// session whose expiry has passed.
type SessionRepository interface {
	Create(ctx context.Context, session *domain.Session) error
	// Get returns domain.ErrNoActiveSession when the id is unknown or expired.
	Get(ctx context.Context, id string, now time.Time) (*domain.Session, error)
	// Delete removes the record; deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
}

// LoginThrottle tracks failed logins per email.
type LoginThrottle interface {
	Locked(ctx context.Context, email string) (bool, error)
	RecordFailure(ctx context.Context, email string) error
	Reset(ctx context.Context, email string) error
}
