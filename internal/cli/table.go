package cli

import (
	"strconv"
	"strings"

	"github.com/paydesk/paydesk/internal/listview"
)

// RenderTable renders a plain fixed-width table for list commands.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder

	headerCells := make([]string, len(headers))
	for i, h := range headers {
		headerCells[i] = pad(h, widths[i])
	}
	b.WriteString(HeaderStyle.Render(strings.Join(headerCells, "  ")))
	b.WriteString("\n")

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, cell := range row {
			cells[i] = pad(cell, widths[i])
		}
		b.WriteString(strings.Join(cells, "  "))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderPageButtons renders the sliding-window pagination control, the
// current page highlighted.
func RenderPageButtons(buttons []listview.PageButton, current int) string {
	parts := make([]string, 0, len(buttons))
	for _, btn := range buttons {
		if btn.Ellipsis {
			parts = append(parts, SubtleStyle.Render("…"))
			continue
		}
		label := strconv.Itoa(btn.Page)
		if btn.Page == current {
			label = SuccessStyle.Bold(true).Render("[" + label + "]")
		}
		parts = append(parts, label)
	}
	return strings.Join(parts, " ")
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
