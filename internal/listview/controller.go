package listview

import (
	"context"
	"time"
)

// Query is the server-side slice of the filter state, sent as query
// parameters on list fetches. Free-text search stays client-side.
type Query struct {
	StartDate time.Time
	EndDate   time.Time
	Status    string
	Limit     int
	Offset    int
}

// Source fetches one page of rows for a query.
type Source[R Row] func(ctx context.Context, q Query) ([]R, error)

// Controller is the generic remote-list pipeline: a source, the fetched
// rows, and the filter/pagination state over them. Each resource command
// instantiates one instead of reimplementing the pipeline.
type Controller[R Row] struct {
	source   Source[R]
	rows     []R
	filter   Filter
	page     int
	pageSize int
}

// NewController creates a controller over the given source.
func NewController[R Row](source Source[R], pageSize int) *Controller[R] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Controller[R]{
		source:   source,
		page:     1,
		pageSize: pageSize,
	}
}

// Load fetches rows for the current filter's server-side bounds and
// replaces the in-memory set. Safe to call repeatedly; a failed load
// resets the rows to empty.
func (c *Controller[R]) Load(ctx context.Context) error {
	rows, err := c.source(ctx, Query{
		StartDate: c.filter.StartDate,
		EndDate:   c.filter.EndDate,
		Status:    c.filter.Status,
	})
	if err != nil {
		c.rows = nil
		return err
	}
	c.rows = rows
	c.clampPage()
	return nil
}

// SetRows replaces the fetched set directly (offline cache path).
func (c *Controller[R]) SetRows(rows []R) {
	c.rows = rows
	c.clampPage()
}

// Filter returns the current filter state.
func (c *Controller[R]) Filter() Filter {
	return c.filter
}

// SetSearch updates the free-text term and resets to page 1.
func (c *Controller[R]) SetSearch(term string) {
	c.filter.Search = term
	c.page = 1
}

// SetStatus updates the status filter and resets to page 1.
func (c *Controller[R]) SetStatus(status string) {
	c.filter.Status = status
	c.page = 1
}

// SetDateRange updates both date bounds and resets to page 1. Callers
// validate start <= end before reaching here.
func (c *Controller[R]) SetDateRange(start, end time.Time) {
	c.filter.StartDate = start
	c.filter.EndDate = end
	c.page = 1
}

// Rows returns the full filtered, sorted set.
func (c *Controller[R]) Rows() []R {
	return Apply(c.rows, c.filter)
}

// Page returns the rows of the current page.
func (c *Controller[R]) Page() []R {
	return PageSlice(c.Rows(), c.page, c.pageSize)
}

// PageInfo returns the effective current page and total page count.
func (c *Controller[R]) PageInfo() (current, total int) {
	total = TotalPages(len(c.Rows()), c.pageSize)
	return ClampPage(c.page, total), total
}

// Buttons returns the sliding-window pagination buttons.
func (c *Controller[R]) Buttons() []PageButton {
	current, total := c.PageInfo()
	return PageButtons(current, total)
}

// SetPage moves to the given page, clamped to the valid range.
func (c *Controller[R]) SetPage(page int) {
	_, total := c.PageInfo()
	c.page = ClampPage(page, total)
}

// NextPage advances one page if one exists.
func (c *Controller[R]) NextPage() {
	current, total := c.PageInfo()
	c.page = ClampPage(current+1, total)
}

// PrevPage moves back one page if one exists.
func (c *Controller[R]) PrevPage() {
	current, total := c.PageInfo()
	c.page = ClampPage(current-1, total)
}

func (c *Controller[R]) clampPage() {
	_, total := c.PageInfo()
	c.page = ClampPage(c.page, total)
}
