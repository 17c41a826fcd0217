// Package tui implements the interactive animation file browser.
package tui

import (
	"errors"
	"os"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/joe/gifpick/internal/tui/shared"
	"github.com/joe/gifpick/pkg/gifscan"
)

// Browser states.
const (
	StateLoading  = "loading"
	StateBrowsing = "browsing"
	StateError    = "error"
)

// Picker is the part of gifscan.Scanner the browser drives.
type Picker interface {
	List(dir string) ([]string, error)
	ChooseRandom(dir string, out *gifscan.PathBuffer) error
	OpenByIndex(dir string, index int) (*gifscan.Handle, error)
}

// Selection describes the file most recently opened from the browser.
type Selection struct {
	Index     int
	Path      string
	Size      int64
	Signature []byte
}

// FilesLoadedMsg carries the result of listing the directory.
type FilesLoadedMsg struct {
	Paths []string
	Err   error
}

// FileOpenedMsg carries the result of opening a file.
type FileOpenedMsg struct {
	Selection Selection
	Err       error
}

// RandomPickedMsg carries the index drawn by a random pick.
type RandomPickedMsg struct {
	Index int
	Err   error
}

// Model represents the browser state
type Model struct {
	picker       Picker
	dir          string
	pathCapacity int

	keys     KeyMap
	help     help.Model
	spinner  spinner.Model
	position progress.Model

	state    string
	paths    []string
	cursor   int
	selected *Selection
	err      error
	width    int
	height   int
	quitting bool
}

// NewModel creates a browser over dir.
func NewModel(picker Picker, dir string, pathCapacity int) Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = shared.LabelStyle()

	if pathCapacity <= 0 {
		pathCapacity = gifscan.DefaultPathCapacity
	}

	return Model{
		picker:       picker,
		dir:          dir,
		pathCapacity: pathCapacity,
		keys:         DefaultKeyMap(),
		help:         help.New(),
		spinner:      s,
		position: progress.New(
			progress.WithDefaultGradient(),
			progress.WithWidth(shared.ProgressBarWidth),
			progress.WithoutPercentage(),
		),
		state: StateLoading,
	}
}

// Cursor returns the highlighted index.
func (m Model) Cursor() int {
	return m.cursor
}

// Err returns the last error, if any.
func (m Model) Err() error {
	return m.err
}

// Paths returns the listed animation files.
func (m Model) Paths() []string {
	return m.paths
}

// Quitting reports whether the user asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Selected returns the most recently opened file, or nil.
func (m Model) Selected() *Selection {
	return m.selected
}

// State returns the browser state.
func (m Model) State() string {
	return m.state
}

// Init starts the spinner and lists the directory.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadFiles())
}

func (m Model) loadFiles() tea.Cmd {
	picker, dir := m.picker, m.dir

	return func() tea.Msg {
		paths, err := picker.List(dir)
		return FilesLoadedMsg{Paths: paths, Err: err}
	}
}

func (m Model) openIndex(index int) tea.Cmd {
	picker, dir := m.picker, m.dir

	return func() tea.Msg {
		handle, err := picker.OpenByIndex(dir, index)
		if err != nil {
			return FileOpenedMsg{Err: err}
		}

		size, err := handle.Size()
		if errors.Is(err, os.ErrClosed) {
			// A later selection replaced this file; its message wins.
			return nil
		}

		if err != nil {
			return FileOpenedMsg{Err: err}
		}

		// A short file still shows what it has.
		sig, _ := handle.Signature()

		return FileOpenedMsg{Selection: Selection{
			Index:     index,
			Path:      handle.Path(),
			Size:      size,
			Signature: sig,
		}}
	}
}

func (m Model) pickRandom() tea.Cmd {
	picker, dir, paths, capacity := m.picker, m.dir, m.paths, m.pathCapacity

	return func() tea.Msg {
		buf := gifscan.NewPathBuffer(capacity)

		err := picker.ChooseRandom(dir, buf)
		if err != nil {
			return RandomPickedMsg{Err: err}
		}

		for i, path := range paths {
			if path == buf.String() {
				return RandomPickedMsg{Index: i}
			}
		}

		return RandomPickedMsg{Err: errStaleListing(buf.String())}
	}
}
