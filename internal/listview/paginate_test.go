package listview

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		count    int
		pageSize int
		want     int
	}{
		{count: 0, pageSize: 10, want: 1},
		{count: 1, pageSize: 10, want: 1},
		{count: 10, pageSize: 10, want: 1},
		{count: 11, pageSize: 10, want: 2},
		{count: 95, pageSize: 10, want: 10},
		{count: 5, pageSize: 0, want: 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TotalPages(tt.count, tt.pageSize),
			"count=%d pageSize=%d", tt.count, tt.pageSize)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, ClampPage(0, 5))
	assert.Equal(t, 1, ClampPage(-3, 5))
	assert.Equal(t, 3, ClampPage(3, 5))
	assert.Equal(t, 5, ClampPage(9, 5))
}

// Walking every page must visit each row exactly once with no overlap.
func TestPageSlice_CoversAllRows(t *testing.T) {
	for _, count := range []int{0, 1, 9, 10, 11, 25, 100} {
		rows := make([]testRow, count)
		for i := range rows {
			rows[i].id = fmt.Sprintf("R%03d", i)
		}

		seen := make(map[string]int)
		total := TotalPages(count, DefaultPageSize)
		for page := 1; page <= total; page++ {
			for _, r := range PageSlice(rows, page, DefaultPageSize) {
				seen[r.id]++
			}
		}

		assert.Len(t, seen, count, "count=%d", count)
		for id, n := range seen {
			assert.Equal(t, 1, n, "row %s visited %d times", id, n)
		}
	}
}

func TestPageSlice_OutOfRangePageClamps(t *testing.T) {
	rows := make([]testRow, 23)
	for i := range rows {
		rows[i].id = fmt.Sprintf("R%02d", i)
	}

	last := PageSlice(rows, 99, 10)
	assert.Len(t, last, 3)
	assert.Equal(t, "R20", last[0].id)

	first := PageSlice(rows, -1, 10)
	assert.Len(t, first, 10)
	assert.Equal(t, "R00", first[0].id)
}

func TestPageButtons(t *testing.T) {
	pages := func(buttons []PageButton) []int {
		out := make([]int, 0, len(buttons))
		for _, b := range buttons {
			if b.Ellipsis {
				out = append(out, 0)
			} else {
				out = append(out, b.Page)
			}
		}
		return out
	}

	tests := []struct {
		name    string
		current int
		total   int
		want    []int // 0 marks an ellipsis
	}{
		{name: "single page", current: 1, total: 1, want: []int{1}},
		{name: "all pages fit the window", current: 2, total: 5, want: []int{1, 2, 3, 4, 5}},
		{name: "window at the left edge", current: 1, total: 20, want: []int{1, 2, 3, 4, 5, 0}},
		{name: "window near the left edge", current: 3, total: 20, want: []int{1, 2, 3, 4, 5, 0}},
		{name: "centered window", current: 10, total: 20, want: []int{0, 8, 9, 10, 11, 12, 0}},
		{name: "window near the right edge", current: 18, total: 20, want: []int{0, 16, 17, 18, 19, 20}},
		{name: "window at the right edge", current: 20, total: 20, want: []int{0, 16, 17, 18, 19, 20}},
		{name: "current out of range clamps first", current: 99, total: 20, want: []int{0, 16, 17, 18, 19, 20}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pages(PageButtons(tt.current, tt.total)))
		})
	}
}

// The shown window always contains the current page and never points
// outside [1, totalPages].
func TestPageButtons_WindowInvariants(t *testing.T) {
	for total := 1; total <= 30; total++ {
		for current := 1; current <= total; current++ {
			buttons := PageButtons(current, total)

			found := false
			for _, b := range buttons {
				if b.Ellipsis {
					continue
				}
				assert.GreaterOrEqual(t, b.Page, 1)
				assert.LessOrEqual(t, b.Page, total)
				if b.Page == current {
					found = true
				}
			}
			assert.True(t, found, "current=%d total=%d missing from window", current, total)
		}
	}
}
