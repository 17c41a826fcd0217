// Package main is the entry point for the gifpick application.
package main

import (
	"errors"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/term" //nolint:depguard // Required for TTY detection

	"github.com/joe/gifpick/internal/app"
	"github.com/joe/gifpick/internal/config"
	"github.com/joe/gifpick/internal/tui"
	pkgerrors "github.com/joe/gifpick/pkg/errors"
	"github.com/joe/gifpick/pkg/filesystem"
)

// errNotTerminal is returned when browse is run without a terminal.
var errNotTerminal = errors.New("browse needs an interactive terminal; use list, path or random instead")

func main() {
	// Parse configuration
	cfg, err := config.ParseFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	err = run(cfg)
	if err != nil {
		enriched := pkgerrors.NewEnricher().Enrich(err, "")
		fmt.Fprintf(os.Stderr, "Error: %v\n", enriched)

		if suggestions := pkgerrors.FormatSuggestions(enriched); suggestions != "" {
			fmt.Fprintf(os.Stderr, "Try these solutions:\n%s\n", suggestions)
		}

		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	logger := newLogger(cfg.LogLevel)
	defer func() {
		_ = logger.Sync()
	}()

	fsys, dir, closer, err := filesystem.CreateFileSystem(cfg.Dir(), cfg.FilesystemOptions())
	if err != nil {
		return err
	}

	if closer != nil {
		defer closer()
	}

	isTTY := term.IsTerminal(int(os.Stdout.Fd()))

	runner, err := app.New(cfg, fsys, dir, os.Stdout,
		app.WithLogger(logger),
		app.WithBrowser(func(model tui.Model) error {
			if !isTTY {
				return errNotTerminal
			}

			return tui.Run(model, true)
		}),
	)
	if err != nil {
		return err
	}

	defer func() {
		if cerr := runner.Close(); cerr != nil {
			logger.Warn("Failed to close file", zap.Error(cerr))
		}
	}()

	return runner.Run()
}

// newLogger builds a console logger on stderr so stdout stays clean for command output.
func newLogger(level zapcore.Level) *zap.Logger {
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)

	return zap.New(core)
}
