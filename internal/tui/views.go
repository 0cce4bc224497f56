package tui

import (
	"fmt"
	"strings"

	"github.com/paydesk/paydesk/internal/cli"
)

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(cli.FormatTitle(m.cfg.Title))
	b.WriteString("\n")
	if m.balanceLine != "" {
		b.WriteString(cli.SubtleStyle.Render(m.balanceLine))
		b.WriteString("\n")
	}
	b.WriteString(m.search.View())
	b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("   status: %s", m.cfg.Statuses[m.statusIdx])))
	b.WriteString("\n\n")

	switch {
	case m.loading:
		b.WriteString(cli.SubtleStyle.Render("Loading..."))
		b.WriteString("\n")
	default:
		if len(m.list.Page()) == 0 {
			b.WriteString(cli.SubtleStyle.Render("No transactions found"))
			b.WriteString("\n")
		} else {
			b.WriteString(m.table.View())
			b.WriteString("\n")
		}

		current, total := m.list.PageInfo()
		b.WriteString("\n")
		b.WriteString(cli.RenderPageButtons(m.list.Buttons(), current))
		b.WriteString(cli.SubtleStyle.Render(fmt.Sprintf("  page %d of %d, %d rows", current, total, len(m.list.Rows()))))
		b.WriteString("\n")
	}

	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(cli.FormatWarning(m.notice))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(cli.SubtleStyle.Render("/ search · s status · ←/→ pages · e export · r refresh · q quit"))
	b.WriteString("\n")

	return b.String()
}
