package tui

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	cfg := Config{
		Fetch: func(ctx context.Context) ([]Item, error) {
			return testItems(), nil
		},
		Title:   "Transactions",
		Columns: []string{"ID", "Operator", "Status"},
	}
	require.NoError(t, cfg.Validate())
	return cfg
}

func testItems() []Item {
	base := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return []Item{
		{ID: "T1", Time: base, Status: "SUCCESS", Cells: []string{"T1", "Airtel", "SUCCESS"}},
		{ID: "T2", Time: base.Add(time.Hour), Status: "FAILED", Cells: []string{"T2", "Jio", "FAILED"}},
		{ID: "T3", Time: base.Add(2 * time.Hour), Status: "SUCCESS", Cells: []string{"T3", "Airtel", "SUCCESS"}},
	}
}

func updated(t *testing.T, m tea.Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestConfig_Validate(t *testing.T) {
	cfg := Config{
		Fetch:   func(ctx context.Context) ([]Item, error) { return nil, nil },
		Columns: []string{"ID"},
	}
	require.NoError(t, cfg.Validate())

	assert.Equal(t, 10, cfg.PageSize)
	assert.Equal(t, 500*time.Millisecond, cfg.DebounceDelay)
	assert.Equal(t, 30*time.Second, cfg.PollInterval)
	assert.Equal(t, []string{"ALL", "SUCCESS", "PENDING", "FAILED"}, cfg.Statuses)

	assert.Error(t, (&Config{Columns: []string{"ID"}}).Validate())
	assert.Error(t, (&Config{Fetch: cfg.Fetch}).Validate())
}

func TestModel_RowsLoaded(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))

	m = updated(t, m, rowsLoadedMsg{rows: testItems()})
	assert.False(t, m.loading)
	assert.Empty(t, m.notice)
	assert.Len(t, m.list.Rows(), 3)
}

func TestModel_SessionErrorEndsTheView(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: testItems()})

	next, cmd := m.Update(rowsLoadedMsg{err: common.ErrSessionExpired})
	m = next.(Model)

	assert.True(t, m.quitting)
	assert.ErrorIs(t, m.fatalErr, common.ErrSessionExpired)
	assert.NotNil(t, cmd, "a session error must quit the program")
	assert.Empty(t, m.View(), "nothing renders after an auth failure")
}

func TestModel_LoadErrorShowsNoticeAndEmptyTable(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: testItems()})

	m = updated(t, m, rowsLoadedMsg{err: common.NewUserError("api unreachable", nil)})
	assert.Empty(t, m.list.Rows(), "a failed load must clear the rows")
	assert.Equal(t, "api unreachable", m.notice)
	assert.False(t, m.loading)
}

func TestModel_StaleDebounceIgnored(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: testItems()})

	// Focus the search box and type two characters; each keystroke bumps
	// the sequence and schedules a new debounce tick.
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'/'}})
	require.True(t, m.search.Focused())

	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	staleSeq := m.searchSeq
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'i'}})

	// The stale tick must not apply its partial term.
	m = updated(t, m, searchDebounceMsg{seq: staleSeq})
	assert.Empty(t, m.list.Filter().Search)

	// The live tick applies the full term.
	m = updated(t, m, searchDebounceMsg{seq: m.searchSeq})
	assert.Equal(t, "ji", m.list.Filter().Search)
	assert.Len(t, m.list.Rows(), 1)
}

func TestModel_CycleStatus(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: testItems()})

	// ALL -> SUCCESS
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, "SUCCESS", m.list.Filter().Status)
	assert.Len(t, m.list.Rows(), 2)

	// SUCCESS -> PENDING
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Equal(t, "PENDING", m.list.Filter().Status)
	assert.Empty(t, m.list.Rows())
}

func TestModel_ExportNoDataNotice(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))

	m = updated(t, m, exportDoneMsg{err: common.ErrNoData})
	assert.Equal(t, "No Data: nothing to export", m.notice)

	m = updated(t, m, exportDoneMsg{path: "/tmp/Transactions_2026-03-10.xlsx"})
	assert.Equal(t, "Exported /tmp/Transactions_2026-03-10.xlsx", m.notice)
}

func TestModel_TableFollowsTheFilteredPage(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: testItems()})
	assert.Len(t, m.table.Rows(), 3)

	// ALL -> SUCCESS narrows the visible page.
	m = updated(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	assert.Len(t, m.table.Rows(), 2)
}

func TestView_EmptyState(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: nil})

	view := m.View()
	assert.Contains(t, view, "No transactions found")
	assert.NotContains(t, view, cli.WarningIcon, "the empty state is not an error banner")
}

func TestView_RendersTheTable(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))
	m = updated(t, m, rowsLoadedMsg{rows: testItems()})

	view := m.View()
	assert.Contains(t, view, "Operator")
	assert.Contains(t, view, "Airtel")
	assert.NotContains(t, view, "No transactions found")
}

func TestModel_QuitKeys(t *testing.T) {
	m := newModel(context.Background(), testConfig(t))

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	assert.True(t, next.(Model).quitting)
	assert.NotNil(t, cmd)

	m = newModel(context.Background(), testConfig(t))
	next, cmd = m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, next.(Model).quitting)
	assert.NotNil(t, cmd)
}
