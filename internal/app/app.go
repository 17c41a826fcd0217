// Package app runs gifpick commands against a scanner and writes their output.
package app

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/joe/gifpick/internal/config"
	"github.com/joe/gifpick/internal/tui"
	"github.com/joe/gifpick/pkg/filesystem"
	"github.com/joe/gifpick/pkg/gifscan"
)

// BrowseFunc runs the interactive browser.
type BrowseFunc func(model tui.Model) error

// App executes one configured command.
type App struct {
	cfg     *config.Config
	dir     string
	scanner *gifscan.Scanner
	out     io.Writer
	logger  *zap.Logger
	browse  BrowseFunc
}

// Option configures an App.
type Option func(*App)

// WithBrowser sets how the browse command runs the TUI.
func WithBrowser(browse BrowseFunc) Option {
	return func(a *App) {
		a.browse = browse
	}
}

// WithLogger sets the logger handed to the scanner.
func WithLogger(logger *zap.Logger) Option {
	return func(a *App) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// New creates an App over fsys. dir is the directory as the filesystem sees it,
// which differs from cfg.Dir() for sftp:// locations.
func New(cfg *config.Config, fsys filesystem.FileSystem, dir string, out io.Writer, opts ...Option) (*App, error) {
	a := &App{
		cfg:    cfg,
		dir:    dir,
		out:    out,
		logger: zap.NewNop(),
		browse: func(model tui.Model) error { return tui.Run(model, false) },
	}

	for _, opt := range opts {
		opt(a)
	}

	scannerOpts := append(cfg.ScannerOptions(), gifscan.WithLogger(a.logger))

	scanner, err := gifscan.New(fsys, scannerOpts...)
	if err != nil {
		return nil, err
	}
	a.scanner = scanner

	return a, nil
}

// Close releases the file held by the scanner.
func (a *App) Close() error {
	return a.scanner.Close()
}

// Run executes the configured command.
func (a *App) Run() error {
	a.logger.Debug("Running command", zap.String("command", a.cfg.Command()), zap.String("dir", a.dir))

	switch a.cfg.Command() {
	case config.CommandCount:
		return a.count()
	case config.CommandList:
		return a.list()
	case config.CommandPath:
		return a.path(a.cfg.Path.Index)
	case config.CommandOpen:
		return a.open(a.cfg.Open.Index)
	case config.CommandRandom:
		return a.random(a.cfg.Random.Open)
	case config.CommandBrowse:
		return a.browse(tui.NewModel(a.scanner, a.dir, a.cfg.PathCapacity))
	default:
		return config.ErrNoCommand
	}
}

func (a *App) count() error {
	count, err := a.scanner.Count(a.dir)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, count)

	return err
}

func (a *App) list() error {
	paths, err := a.scanner.List(a.dir)
	if err != nil {
		return err
	}

	for _, path := range paths {
		if _, err := fmt.Fprintln(a.out, path); err != nil {
			return err
		}
	}

	return nil
}

func (a *App) path(index int) error {
	path, err := a.scanner.PathByIndex(a.dir, index)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, path)

	return err
}

func (a *App) open(index int) error {
	handle, err := a.scanner.OpenByIndex(a.dir, index)
	if err != nil {
		return err
	}

	return a.describe(handle)
}

func (a *App) random(open bool) error {
	if open {
		handle, err := a.scanner.OpenRandom(a.dir)
		if err != nil {
			return err
		}

		return a.describe(handle)
	}

	buf := gifscan.NewPathBuffer(a.cfg.PathCapacity)

	err := a.scanner.ChooseRandom(a.dir, buf)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(a.out, buf.String())

	return err
}

// describe prints the path, size and signature of an open file.
func (a *App) describe(handle *gifscan.Handle) error {
	size, err := handle.Size()
	if err != nil {
		return err
	}

	sig, err := handle.Signature()
	if err != nil {
		a.logger.Warn("File is shorter than a GIF header", zap.String("path", handle.Path()), zap.Error(err))
	}

	_, err = fmt.Fprintf(a.out, "path: %s\nsize: %d\nsignature: %q\n", handle.Path(), size, sig)

	return err
}
