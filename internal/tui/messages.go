package tui

// Data loading messages.
type rowsLoadedMsg struct {
	err  error
	rows []Item
}

type balanceMsg struct {
	err  error
	text string
}

// balanceTickMsg fires the periodic wallet poll.
type balanceTickMsg struct{}

// searchDebounceMsg applies the search term once typing pauses; stale
// sequences are dropped.
type searchDebounceMsg struct {
	seq int
}

// exportDoneMsg reports the export outcome without touching the rows.
type exportDoneMsg struct {
	err  error
	path string
}
