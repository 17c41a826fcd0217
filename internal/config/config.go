// Package config handles application configuration and command-line argument parsing.
package config

import (
	"errors"
	"fmt"

	"github.com/alexflint/go-arg"
	"go.uber.org/zap/zapcore"

	"github.com/joe/gifpick/pkg/filesystem"
	"github.com/joe/gifpick/pkg/gifscan"
)

// Command names, as typed on the command line.
const (
	CommandBrowse = "browse"
	CommandCount  = "count"
	CommandList   = "list"
	CommandOpen   = "open"
	CommandPath   = "path"
	CommandRandom = "random"
)

// Exported variables.
var (
	ErrNoCommand       = errors.New("a command is required (count, list, path, open, random, browse)")
	ErrMissingDir      = errors.New("directory is required")
	ErrInvalidCapacity = errors.New("path capacity must be at least 2")
)

// DirArgs is the directory positional shared by every command.
type DirArgs struct {
	Dir string `arg:"positional,required" help:"Directory to scan (local path or sftp://user@host[:port]/path)"`
}

// IndexArgs adds the selection index to DirArgs.
// A leading '-' reads as a flag, so negative indexes must follow "--".
type IndexArgs struct {
	DirArgs

	Index int `arg:"positional,required" help:"Zero-based index in traversal order; pass negative values after --, e.g. path DIR -- -1"`
}

// BrowseCmd opens the interactive browser.
type BrowseCmd struct {
	DirArgs
}

// CountCmd prints the number of animation files.
type CountCmd struct {
	DirArgs
}

// ListCmd prints every animation file path.
type ListCmd struct {
	DirArgs
}

// OpenCmd opens the INDEX-th file and prints its path, size and signature.
type OpenCmd struct {
	IndexArgs
}

// PathCmd prints the path of the INDEX-th file.
type PathCmd struct {
	IndexArgs
}

// RandomCmd prints a randomly drawn path.
type RandomCmd struct {
	DirArgs

	Open bool `arg:"--open" help:"Open the drawn file and print its size and signature"`
}

// Config holds the application configuration
type Config struct {
	Browse *BrowseCmd `arg:"subcommand:browse" help:"Browse animation files interactively"`
	Count  *CountCmd  `arg:"subcommand:count" help:"Print the number of animation files"`
	List   *ListCmd   `arg:"subcommand:list" help:"Print every animation file path"`
	Open   *OpenCmd   `arg:"subcommand:open" help:"Open a file by index and print its signature"`
	Path   *PathCmd   `arg:"subcommand:path" help:"Print the path of a file by index"`
	Random *RandomCmd `arg:"subcommand:random" help:"Print a randomly chosen file path"`

	Backend               filesystem.Backend `arg:"-b,--backend,env:GIFPICK_BACKEND" default:"cursor" help:"Local directory backend: cursor|listing (aliases: stream|flat)"`
	Match                 string             `arg:"-m,--match,env:GIFPICK_MATCH" help:"Only accept base names matching this glob (case-insensitive)"`
	Seed                  *uint64            `arg:"--seed" help:"Seed for random selection (default: random)"`
	PathCapacity          int                `arg:"--path-capacity" default:"256" help:"Path buffer capacity in bytes, including the terminator"`
	LogLevel              zapcore.Level      `arg:"--log-level,env:GIFPICK_LOG_LEVEL" default:"warn" help:"Log level: debug|info|warn|error"`
	InsecureIgnoreHostKey bool               `arg:"--insecure-ignore-host-key" help:"Skip SSH host key verification for sftp:// locations"`
}

// Description returns the program description for go-arg
func (Config) Description() string {
	return "Pick animated GIFs from a directory the way a matrix display does"
}

// Version returns the version string for go-arg
func (Config) Version() string {
	return "gifpick 1.0.0"
}

// Command returns the name of the selected command, or "" when none was given.
func (cfg *Config) Command() string {
	switch {
	case cfg.Browse != nil:
		return CommandBrowse
	case cfg.Count != nil:
		return CommandCount
	case cfg.List != nil:
		return CommandList
	case cfg.Open != nil:
		return CommandOpen
	case cfg.Path != nil:
		return CommandPath
	case cfg.Random != nil:
		return CommandRandom
	default:
		return ""
	}
}

// Dir returns the directory argument of the selected command.
func (cfg *Config) Dir() string {
	switch {
	case cfg.Browse != nil:
		return cfg.Browse.Dir
	case cfg.Count != nil:
		return cfg.Count.Dir
	case cfg.List != nil:
		return cfg.List.Dir
	case cfg.Open != nil:
		return cfg.Open.Dir
	case cfg.Path != nil:
		return cfg.Path.Dir
	case cfg.Random != nil:
		return cfg.Random.Dir
	default:
		return ""
	}
}

// FilesystemOptions returns the backend options derived from the flags.
func (cfg *Config) FilesystemOptions() filesystem.Options {
	return filesystem.Options{
		Backend: cfg.Backend,
		Connect: filesystem.ConnectOptions{InsecureIgnoreHostKey: cfg.InsecureIgnoreHostKey},
	}
}

// ScannerOptions returns the scanner options derived from the flags.
func (cfg *Config) ScannerOptions() []gifscan.Option {
	opts := []gifscan.Option{
		gifscan.WithPattern(cfg.Match),
		gifscan.WithPathCapacity(cfg.PathCapacity),
	}

	if cfg.Seed != nil {
		opts = append(opts, gifscan.WithSeed(*cfg.Seed))
	}

	return opts
}

// NewDefaultConfig returns a Config with the flag defaults applied.
func NewDefaultConfig() *Config {
	return &Config{
		Backend:      filesystem.BackendCursor,
		PathCapacity: gifscan.DefaultPathCapacity,
		LogLevel:     zapcore.WarnLevel,
	}
}

// Parse parses args (without the program name) into a Config.
// Help and version requests are returned as arg.ErrHelp and arg.ErrVersion.
func Parse(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	parser, err := arg.NewParser(arg.Config{Program: "gifpick"}, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to build argument parser: %w", err)
	}

	err = parser.Parse(args)
	if err != nil {
		return nil, err
	}

	return PostProcessConfig(cfg)
}

// ParseFlags parses command-line flags and returns configuration
func ParseFlags() (*Config, error) {
	cfg := NewDefaultConfig()

	parser := arg.MustParse(cfg)

	processed, err := PostProcessConfig(cfg)
	if errors.Is(err, ErrNoCommand) {
		parser.Fail(err.Error())
	}

	return processed, err
}

// PostProcessConfig applies post-processing logic to a parsed config
func PostProcessConfig(cfg *Config) (*Config, error) {
	if cfg.Command() == "" {
		return nil, ErrNoCommand
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the values go-arg cannot check on its own.
func (cfg *Config) Validate() error {
	if cfg.Dir() == "" {
		return ErrMissingDir
	}

	if cfg.PathCapacity < 2 {
		return fmt.Errorf("%w: %d", ErrInvalidCapacity, cfg.PathCapacity)
	}

	if _, err := gifscan.NewNameFilter(cfg.Match); err != nil {
		return err
	}

	if _, err := filesystem.ParsePath(cfg.Dir()); err != nil {
		return fmt.Errorf("invalid directory %q: %w", cfg.Dir(), err)
	}

	return nil
}
