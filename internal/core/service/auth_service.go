package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
	"github.com/suraj-kumar23/Agrinova-Main/internal/core/ports"
)

const minPasswordLength = 6

// AuthService implements signup, login and server-side sessions.
type AuthService struct {
	users      ports.UserRepository
	sessions   ports.SessionRepository
	throttle   ports.LoginThrottle
	sessionTTL time.Duration
	log        zerolog.Logger

	now   func() time.Time
	newID func() string
}

// Option customises an AuthService.
type Option func(*AuthService)

// WithLoginThrottle enables per-email lockout after repeated failures.
func WithLoginThrottle(t ports.LoginThrottle) Option {
	return func(s *AuthService) { s.throttle = t }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *AuthService) { s.now = now }
}

// WithSessionIDs overrides the session id generator.
func WithSessionIDs(newID func() string) Option {
	return func(s *AuthService) { s.newID = newID }
}

func NewAuthService(users ports.UserRepository, sessions ports.SessionRepository, sessionTTL time.Duration, log zerolog.Logger, opts ...Option) *AuthService {
	if sessionTTL <= 0 {
		sessionTTL = domain.DefaultSessionTTL
	}
	s := &AuthService{
		users:      users,
		sessions:   sessions,
		sessionTTL: sessionTTL,
		log:        log,
		now:        time.Now,
		newID:      uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SessionTTL is the lifetime given to new sessions.
func (s *AuthService) SessionTTL() time.Duration { return s.sessionTTL }

func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)
	switch {
	case name == "":
		return nil, domain.NewValidationError("name is required")
	case email == "":
		return nil, domain.NewValidationError("email is required")
	case !validEmail(email):
		return nil, domain.NewValidationError("email must be a valid email")
	case len(in.Password) < minPasswordLength:
		return nil, domain.NewValidationError("password must be at least %d characters", minPasswordLength)
	case in.Password != in.ConfirmPassword:
		return nil, domain.ErrPasswordMismatch
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return created, nil
}

// Login verifies credentials and opens a new session.
func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.Session, error) {
	email = normalizeEmail(email)
	if email == "" || password == "" {
		return nil, domain.NewValidationError("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, s.rejectLogin(ctx, email, err)
		}
		return nil, err
	}

	// A correct password always opens a session; the throttle only shapes
	// the answer to failed attempts.
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, s.rejectLogin(ctx, email, domain.ErrInvalidCredentials)
	}

	session := domain.NewSession(s.newID(), user.Projection(), s.now(), s.sessionTTL)
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.throttle != nil {
		if err := s.throttle.Reset(ctx, email); err != nil {
			s.log.Warn().Err(err).Msg("failed to reset login throttle")
		}
	}

	s.log.Info().Str("user_id", user.ID).Time("expires_at", session.ExpiresAt).Msg("session created")
	return session, nil
}

// CurrentUser resolves a session id to its user. Every call reads the store.
func (s *AuthService) CurrentUser(ctx context.Context, sessionID string) (*domain.SessionUser, error) {
	if sessionID == "" {
		return nil, domain.ErrNoActiveSession
	}
	session, err := s.sessions.Get(ctx, sessionID, s.now())
	if err != nil {
		return nil, err
	}
	if session.ExpiredAt(s.now()) {
		return nil, domain.ErrNoActiveSession
	}
	user := session.User
	return &user, nil
}

// Logout deletes the session. Unknown or empty ids succeed.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.log.Debug().Msg("session destroyed")
	return nil
}

// rejectLogin records a failed attempt and returns cause, or
// domain.ErrTooManyAttempts once the email is locked.
func (s *AuthService) rejectLogin(ctx context.Context, email string, cause error) error {
	if s.throttle == nil {
		return cause
	}
	if err := s.throttle.RecordFailure(ctx, email); err != nil {
		s.log.Warn().Err(err).Msg("failed to record login failure")
	}
	locked, err := s.throttle.Locked(ctx, email)
	if err != nil {
		s.log.Warn().Err(err).Msg("login throttle check failed, continuing")
		return cause
	}
	if locked {
		return domain.ErrTooManyAttempts
	}
	return cause
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email
}
