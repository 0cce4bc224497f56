package listview

// DefaultPageSize matches the table size the dashboard renders.
const DefaultPageSize = 10

// windowWidth is the number of page buttons shown around the current
// page before ellipsis markers appear.
const windowWidth = 5

// TotalPages returns ceil(count/pageSize). Zero rows still have one
// (empty) page so the current page always exists.
func TotalPages(count, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	pages := (count + pageSize - 1) / pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// ClampPage pins page into [1, totalPages]. Used whenever a filter
// change shrinks the row count below the current offset.
func ClampPage(page, totalPages int) int {
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// PageSlice returns the rows of the given 1-based page.
func PageSlice[R Row](rows []R, page, pageSize int) []R {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = ClampPage(page, TotalPages(len(rows), pageSize))

	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// PageButton is one entry of the pagination control: either a page
// number or an ellipsis marker.
type PageButton struct {
	Page     int
	Ellipsis bool
}

// PageButtons derives the sliding-window button row. All pages are shown
// when totalPages fits in the window; otherwise a window centered on
// current is clamped to [1, totalPages] with ellipsis markers at the
// ends the window does not touch.
func PageButtons(current, totalPages int) []PageButton {
	current = ClampPage(current, totalPages)

	if totalPages <= windowWidth {
		buttons := make([]PageButton, 0, totalPages)
		for p := 1; p <= totalPages; p++ {
			buttons = append(buttons, PageButton{Page: p})
		}
		return buttons
	}

	start := current - windowWidth/2
	if start < 1 {
		start = 1
	}
	end := start + windowWidth - 1
	if end > totalPages {
		end = totalPages
		start = end - windowWidth + 1
	}

	buttons := make([]PageButton, 0, windowWidth+2)
	if start > 1 {
		buttons = append(buttons, PageButton{Ellipsis: true})
	}
	for p := start; p <= end; p++ {
		buttons = append(buttons, PageButton{Page: p})
	}
	if end < totalPages {
		buttons = append(buttons, PageButton{Ellipsis: true})
	}
	return buttons
}
