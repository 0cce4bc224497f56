package cli

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk/internal/listview"
)

func TestRenderTable(t *testing.T) {
	out := RenderTable(
		[]string{"ID", "Operator", "Amount"},
		[][]string{
			{"TXN1001", "Airtel", "199.00"},
			{"TXN1002", "Jio", "49.50"},
		},
	)

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 3)

	assert.Contains(t, lines[0], "Operator")
	assert.Contains(t, lines[1], "TXN1001")
	assert.Contains(t, lines[2], "Jio")

	// Columns pad to the widest cell so the rows line up.
	assert.Equal(t, strings.Index(lines[1], "Airtel"), strings.Index(lines[2], "Jio"))
}

func TestRenderPageButtons(t *testing.T) {
	buttons := []listview.PageButton{
		{Ellipsis: true},
		{Page: 4},
		{Page: 5},
		{Page: 6},
		{Ellipsis: true},
	}

	out := RenderPageButtons(buttons, 5)
	assert.Contains(t, out, "4")
	assert.Contains(t, out, "[5]")
	assert.Contains(t, out, "6")
	assert.Contains(t, out, "…")
}
