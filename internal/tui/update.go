package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/gifpick/internal/tui/shared"
)

// reservedRows is the screen height taken by everything except the file list.
const reservedRows = 12

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width

		positionWidth := msg.Width - 10
		if positionWidth < shared.MinProgressBarWidth {
			positionWidth = shared.MinProgressBarWidth
		}
		if positionWidth > shared.MaxProgressBarWidth {
			positionWidth = shared.MaxProgressBarWidth
		}
		m.position.Width = positionWidth

		return m, nil

	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}

		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)

		return m, cmd

	case FilesLoadedMsg:
		if msg.Err != nil {
			m.state = StateError
			m.err = msg.Err

			return m, nil
		}

		m.state = StateBrowsing
		m.paths = msg.Paths
		m.cursor = 0
		m.err = nil

		return m, nil

	case FileOpenedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}

		selection := msg.Selection
		m.selected = &selection
		m.err = nil

		return m, nil

	case RandomPickedMsg:
		if msg.Err != nil {
			m.err = msg.Err
			return m, nil
		}

		m.cursor = msg.Index

		return m, m.openIndex(msg.Index)
	}

	return m, nil
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.quitting = true
		return m, tea.Quit
	}

	if key.Matches(msg, m.keys.Help) {
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.state != StateBrowsing || len(m.paths) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.paths)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Top):
		m.cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		m.cursor = len(m.paths) - 1
	case key.Matches(msg, m.keys.Open):
		return m, m.openIndex(m.cursor)
	case key.Matches(msg, m.keys.Random):
		return m, m.pickRandom()
	}

	return m, nil
}

// visibleRange returns the [start, end) slice of paths that fits the screen,
// keeping the cursor roughly centered.
func (m Model) visibleRange() (int, int) {
	rows := len(m.paths)
	if m.height > 0 {
		rows = max(m.height-reservedRows, 1)
	}

	if rows >= len(m.paths) {
		return 0, len(m.paths)
	}

	start := max(m.cursor-rows/2, 0)
	end := start + rows

	if end > len(m.paths) {
		end = len(m.paths)
		start = end - rows
	}

	return start, end
}
