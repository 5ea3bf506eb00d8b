package domain

import (
	"errors"
	"fmt"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNoActiveSession    = errors.New("no active session")
	ErrUserExists         = errors.New("user already exists")
	ErrValidation         = errors.New("validation failed")
	ErrPasswordMismatch   = errors.New("passwords do not match")
	ErrTooManyAttempts    = errors.New("too many login attempts")
	ErrUpstream           = errors.New("upstream service failure")
)

// Kind classifies an error for the transport layer.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindInvalidCredentials
	KindNoActiveSession
	KindValidation
	KindConflict
	KindThrottled
	KindUpstream
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindInvalidCredentials:
		return "invalid_credentials"
	case KindNoActiveSession:
		return "no_active_session"
	case KindValidation:
		return "validation"
	case KindConflict:
		return "conflict"
	case KindThrottled:
		return "throttled"
	case KindUpstream:
		return "upstream"
	default:
		return "internal"
	}
}

// KindOf maps err onto the closed set of error kinds.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrUserNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidCredentials):
		return KindInvalidCredentials
	case errors.Is(err, ErrNoActiveSession):
		return KindNoActiveSession
	case errors.Is(err, ErrValidation), errors.Is(err, ErrPasswordMismatch):
		return KindValidation
	case errors.Is(err, ErrUserExists):
		return KindConflict
	case errors.Is(err, ErrTooManyAttempts):
		return KindThrottled
	case errors.Is(err, ErrUpstream):
		return KindUpstream
	default:
		return KindInternal
	}
}

// ValidationError carries a human-readable message for a rejected input.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError returns an error of KindValidation with msg.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// UpstreamError records which dashboard feature failed and why.
type UpstreamError struct {
	Feature string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s upstream: %v", e.Feature, e.Err)
}

func (e *UpstreamError) Unwrap() []error { return []error{ErrUpstream, e.Err} }

// NewUpstreamError wraps err as a failure of feature.
func NewUpstreamError(feature string, err error) error {
	return &UpstreamError{Feature: feature, Err: err}
}
