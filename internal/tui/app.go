package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run runs the browser until the user quits. The alternate screen is used
// only when altScreen is set, which callers do when stdout is a TTY.
func Run(model Model, altScreen bool) error {
	var opts []tea.ProgramOption
	if altScreen {
		opts = append(opts, tea.WithAltScreen())
	}

	p := tea.NewProgram(model, opts...)

	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("browser failed: %w", err)
	}

	if m, ok := final.(Model); ok && m.State() == StateError {
		return m.Err()
	}

	return nil
}
