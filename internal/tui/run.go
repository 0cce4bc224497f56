package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the dashboard and blocks until the user quits or the
// context is cancelled.
func Run(ctx context.Context, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	program := tea.NewProgram(newModel(ctx, cfg), tea.WithContext(ctx), tea.WithAltScreen())
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("dashboard failed: %w", err)
	}
	if m, ok := finalModel.(Model); ok && m.fatalErr != nil {
		return fmt.Errorf("%w (run `paydesk login`)", m.fatalErr)
	}
	return nil
}
