// Package listview implements the shared list pipeline every resource
// command runs: filter, sort, paginate, and the controller that ties a
// remote source to them. Filtering and pagination are pure functions
// over already-fetched rows; date and status bounds are also pushed to
// the server as query parameters by the API client.
package listview

import (
	"sort"
	"strings"
	"time"
)

// Row is the minimal surface a resource row exposes to the pipeline.
type Row interface {
	RowTime() time.Time
	RowStatus() string
	SearchFields() []string
}

// StatusAll is the sentinel that passes every status.
const StatusAll = "ALL"

// Filter holds the user-driven filter state for a list.
// Zero-valued date bounds are unbounded on that side.
type Filter struct {
	StartDate time.Time
	EndDate   time.Time
	Search    string
	Status    string
}

// Matches reports whether a single row passes all three predicates.
// The predicates are independent and conjunctive, so application order
// never changes the result.
func (f Filter) Matches(r Row) bool {
	return f.matchesSearch(r) && f.matchesDates(r) && f.matchesStatus(r)
}

func (f Filter) matchesSearch(r Row) bool {
	term := strings.ToLower(strings.TrimSpace(f.Search))
	if term == "" {
		return true
	}
	for _, field := range r.SearchFields() {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}
	return false
}

func (f Filter) matchesDates(r Row) bool {
	ts := r.RowTime()
	if !f.StartDate.IsZero() && ts.Before(startOfDay(f.StartDate)) {
		return false
	}
	if !f.EndDate.IsZero() && ts.After(endOfDay(f.EndDate)) {
		return false
	}
	return true
}

func (f Filter) matchesStatus(r Row) bool {
	want := strings.TrimSpace(f.Status)
	if want == "" || strings.EqualFold(want, StatusAll) {
		return true
	}
	return strings.EqualFold(r.RowStatus(), want)
}

// Apply filters rows and returns them sorted by timestamp descending.
// The sort is stable: rows with equal timestamps keep their fetched
// order.
func Apply[R Row](rows []R, f Filter) []R {
	filtered := make([]R, 0, len(rows))
	for _, r := range rows {
		if f.Matches(r) {
			filtered = append(filtered, r)
		}
	}

	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].RowTime().After(filtered[j].RowTime())
	})

	return filtered
}

// The inclusive range is [start 00:00:00, end 23:59:59] in the bound's
// own location.
func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(time.Second-time.Nanosecond), t.Location())
}
