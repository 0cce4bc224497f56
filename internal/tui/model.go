package tui

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/paydesk/paydesk/internal/cli"
	"github.com/paydesk/paydesk/internal/common"
	"github.com/paydesk/paydesk/internal/listview"
)

// Model holds the dashboard state.
type Model struct {
	ctx         context.Context
	list        *listview.Controller[Item]
	fatalErr    error
	notice      string
	balanceLine string
	cfg         Config
	search      textinput.Model
	table       table.Model
	keymap      KeyMap
	searchSeq   int
	statusIdx   int
	width       int
	loading     bool
	quitting    bool
}

func newModel(ctx context.Context, cfg Config) Model {
	search := textinput.New()
	search.Placeholder = "search"
	search.Prompt = "/ "
	search.CharLimit = 64

	source := func(context.Context, listview.Query) ([]Item, error) {
		// Rows arrive through fetchCmd; the controller only filters them.
		return nil, nil
	}

	columns := make([]table.Column, len(cfg.Columns))
	for i, header := range cfg.Columns {
		columns[i] = table.Column{Title: header, Width: len(header)}
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(cfg.PageSize),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true).Foreground(cli.PrimaryColor)
	styles.Selected = styles.Selected.Foreground(cli.SuccessColor).Bold(true)
	t.SetStyles(styles)

	return Model{
		ctx:     ctx,
		cfg:     cfg,
		keymap:  DefaultKeyMap(),
		search:  search,
		table:   t,
		list:    listview.NewController(source, cfg.PageSize),
		loading: true,
	}
}

// Init starts the initial fetch, the balance poll, and cursor blinking.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.fetchCmd(), textinput.Blink}
	if m.cfg.Balance != nil {
		cmds = append(cmds, m.balanceCmd(), m.balanceTick())
	}
	return tea.Batch(cmds...)
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case rowsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			if common.IsSessionError(msg.err) {
				// Auth failures end the view; the caller reports them.
				m.fatalErr = msg.err
				m.quitting = true
				return m, tea.Quit
			}
			// Recovered locally: empty set plus a notice, never a crash.
			m.list.SetRows(nil)
			m.notice = common.UserMessage(msg.err)
			m.syncTable()
			return m, nil
		}
		m.list.SetRows(msg.rows)
		m.notice = ""
		m.syncTable()
		return m, nil

	case balanceMsg:
		if msg.err == nil {
			m.balanceLine = msg.text
		}
		return m, nil

	case balanceTickMsg:
		if m.quitting || m.cfg.Balance == nil {
			return m, nil
		}
		return m, tea.Batch(m.balanceCmd(), m.balanceTick())

	case searchDebounceMsg:
		if msg.seq != m.searchSeq {
			return m, nil
		}
		m.list.SetSearch(m.search.Value())
		m.syncTable()
		return m, nil

	case exportDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, common.ErrNoData) {
				m.notice = "No Data: nothing to export"
			} else {
				m.notice = "Export failed: " + common.UserMessage(msg.err)
			}
			return m, nil
		}
		m.notice = "Exported " + msg.path
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.search.Focused() {
		if key.Matches(msg, m.keymap.ClearSearch) {
			m.search.Blur()
			return m, nil
		}
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		m.searchSeq++
		return m, tea.Batch(cmd, m.debounceCmd(m.searchSeq))
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keymap.Search):
		return m, m.search.Focus()
	case key.Matches(msg, m.keymap.PrevPage):
		m.list.PrevPage()
		m.syncTable()
	case key.Matches(msg, m.keymap.NextPage):
		m.list.NextPage()
		m.syncTable()
	case key.Matches(msg, m.keymap.CycleStatus):
		m.statusIdx = (m.statusIdx + 1) % len(m.cfg.Statuses)
		m.list.SetStatus(m.cfg.Statuses[m.statusIdx])
		m.syncTable()
	case key.Matches(msg, m.keymap.Refresh):
		m.loading = true
		return m, m.fetchCmd()
	case key.Matches(msg, m.keymap.Export):
		if m.cfg.Export != nil {
			return m, m.exportCmd()
		}
	default:
		// Cursor movement inside the page stays with the table widget.
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}

	return m, nil
}

// syncTable pushes the current page into the table widget, widening
// columns to fit the visible cells.
func (m *Model) syncTable() {
	page := m.list.Page()

	widths := make([]int, len(m.cfg.Columns))
	for i, header := range m.cfg.Columns {
		widths[i] = len(header)
	}
	for _, item := range page {
		for i, cell := range item.Cells {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	columns := make([]table.Column, len(m.cfg.Columns))
	for i, header := range m.cfg.Columns {
		columns[i] = table.Column{Title: header, Width: widths[i]}
	}

	rows := make([]table.Row, len(page))
	for i, item := range page {
		rows[i] = table.Row(item.Cells)
	}

	m.table.SetColumns(columns)
	m.table.SetRows(rows)
	m.table.GotoTop()
}

func (m Model) fetchCmd() tea.Cmd {
	return func() tea.Msg {
		rows, err := m.cfg.Fetch(m.ctx)
		return rowsLoadedMsg{rows: rows, err: err}
	}
}

func (m Model) balanceCmd() tea.Cmd {
	return func() tea.Msg {
		text, err := m.cfg.Balance(m.ctx)
		return balanceMsg{text: text, err: err}
	}
}

func (m Model) balanceTick() tea.Cmd {
	return tea.Tick(m.cfg.PollInterval, func(time.Time) tea.Msg {
		return balanceTickMsg{}
	})
}

func (m Model) debounceCmd(seq int) tea.Cmd {
	return tea.Tick(m.cfg.DebounceDelay, func(time.Time) tea.Msg {
		return searchDebounceMsg{seq: seq}
	})
}

func (m Model) exportCmd() tea.Cmd {
	rows := m.list.Rows()
	return func() tea.Msg {
		path, err := m.cfg.Export(rows)
		return exportDoneMsg{path: path, err: err}
	}
}
