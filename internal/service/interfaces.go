// Package service defines the interfaces shared between the application's
// components. Keeping them here lets each implementation live in its own
// package without import cycles.
package service

import (
	"context"
	"time"
)

// RetryOptions configures retry behavior for remote operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// SessionStore abstracts the persistence of the bearer token so the
// storage mechanism can be swapped or mocked without touching command
// logic.
type SessionStore interface {
	// Token returns the stored token, or common.ErrNoSession when none
	// is stored.
	Token() (string, error)
	SetToken(token string) error
	Clear() error
}

// RowCache persists fetched rows for offline listing and export
// fallback.
type RowCache interface {
	ReplaceRows(ctx context.Context, resource, subjectID string, rows []CachedRow) error
	Rows(ctx context.Context, resource, subjectID string) ([]CachedRow, time.Time, error)
	Close() error
}

// CachedRow is a resource-agnostic cached record: identity and ordering
// columns plus the original JSON payload.
type CachedRow struct {
	CreatedAt time.Time
	ID        string
	Payload   []byte
}
