// Package common provides shared utilities and types used across the application.
package common

import (
	"context"
	"errors"
	"fmt"
)

// Common application errors.
var (
	// Session errors. All of them are fatal for the current command and
	// require a fresh `paydesk login`.
	ErrNoSession      = errors.New("no active session")
	ErrSessionExpired = errors.New("session expired")
	ErrRoleMismatch   = errors.New("role not permitted")
	ErrInvalidToken   = errors.New("invalid session token")

	// API errors.
	ErrAPIUnavailable = errors.New("api unavailable")
	ErrRateLimit      = errors.New("rate limit exceeded")

	// Data errors.
	ErrNoData   = errors.New("no data")
	ErrNotFound = errors.New("not found")

	// Configuration errors.
	ErrMissingConfig = errors.New("missing configuration")
	ErrInvalidConfig = errors.New("invalid configuration")
)

// UserError represents an error that should be shown to the user.
type UserError struct {
	Err         error
	UserMessage string
}

func (e *UserError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.UserMessage, e.Err)
	}
	return e.UserMessage
}

func (e *UserError) Unwrap() error {
	return e.Err
}

// NewUserError creates a new user-friendly error.
func NewUserError(userMessage string, err error) error {
	return &UserError{
		UserMessage: userMessage,
		Err:         err,
	}
}

// UserMessage extracts the user-facing text from an error, falling back
// to the raw error string.
func UserMessage(err error) string {
	var userErr *UserError
	if errors.As(err, &userErr) {
		return userErr.UserMessage
	}
	return err.Error()
}

// IsSessionError reports whether an error is an authentication failure.
// Session errors are fatal for the current view: the command surfaces
// them and renders nothing, rather than degrading to an empty table.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNoSession) ||
		errors.Is(err, ErrSessionExpired) ||
		errors.Is(err, ErrRoleMismatch) ||
		errors.Is(err, ErrInvalidToken)
}

// IsRetryable determines if an error should trigger a retry.
func IsRetryable(err error) bool {
	if errors.Is(err, ErrRateLimit) ||
		errors.Is(err, ErrAPIUnavailable) ||
		errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var retryableErr *RetryableError
	if errors.As(err, &retryableErr) {
		return retryableErr.Retryable
	}

	return false
}
