// Package tui implements the interactive dashboard: a searchable,
// paginated table over any resource list, with debounced search, status
// cycling, spreadsheet export, and a periodic wallet-balance poll.
package tui

import (
	"context"
	"fmt"
	"time"
)

// Item is one display row: identity, the fields the pipeline needs, and
// the rendered cells. Item implements listview.Row.
type Item struct {
	Time   time.Time
	ID     string
	Status string
	Cells  []string
}

// RowTime orders the item.
func (i Item) RowTime() time.Time { return i.Time }

// RowStatus filters the item.
func (i Item) RowStatus() string { return i.Status }

// SearchFields matches free-text search against the rendered cells.
func (i Item) SearchFields() []string { return i.Cells }

// Config parameterizes the dashboard for one resource.
type Config struct {
	Fetch         func(ctx context.Context) ([]Item, error)
	Export        func(items []Item) (string, error)
	Balance       func(ctx context.Context) (string, error)
	Title         string
	Columns       []string
	Statuses      []string
	PageSize      int
	DebounceDelay time.Duration
	PollInterval  time.Duration
}

// Validate fills defaults and rejects unusable configs.
func (c *Config) Validate() error {
	if c.Fetch == nil {
		return fmt.Errorf("tui config requires a Fetch function")
	}
	if len(c.Columns) == 0 {
		return fmt.Errorf("tui config requires columns")
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	if c.DebounceDelay <= 0 {
		c.DebounceDelay = 500 * time.Millisecond
	}
	if c.PollInterval <= 0 {
		c.PollInterval = 30 * time.Second
	}
	if len(c.Statuses) == 0 {
		c.Statuses = []string{"ALL", "SUCCESS", "PENDING", "FAILED"}
	}
	return nil
}
