package ports

import (
	"context"

	"github.com/suraj-kumar23/Agrinova-Main/internal/core/domain"
)

// RegisterInput carries the signup form.
type RegisterInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.Session, error)
	CurrentUser(ctx context.Context, sessionID string) (*domain.SessionUser, error)
	Logout(ctx context.Context, sessionID string) error
}
