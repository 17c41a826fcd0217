// Package errors provides actionable error handling with context-aware suggestions.
//
// Scanner and filesystem failures are categorized (missing directory, permission,
// connection, bad index, empty directory) and paired with guidance for the operator
// of the display.
//
// Basic Usage:
//
//	enricher := errors.NewEnricher()
//	count, err := scanner.Count("/sd/gifs")
//	if err != nil {
//	    enriched := enricher.Enrich(err, "")
//	    fmt.Fprintln(os.Stderr, enriched.Error())
//	    fmt.Fprintln(os.Stderr, errors.FormatSuggestions(enriched))
//	}
//
// When no path is given, the enricher takes it from a *gifscan.DirectoryOpenError or
// *gifscan.FileOpenError in the chain, then falls back to the error message:
//
//	err := errors.New("open /sd/gifs/a.gif: permission denied")
//	enriched := enricher.Enrich(err, "") // Path will be extracted from error message
package errors

import (
	"errors"
	"strings"
)

// ErrorCategory names the kind of failure an ActionableError describes.
type ErrorCategory string

// Categories, roughly in the order an operator meets them: reaching the
// device, finding the directory, then selecting within it.
const (
	CategoryConnection ErrorCategory = "connection"
	CategoryPath       ErrorCategory = "path"
	CategoryPermission ErrorCategory = "permission"
	CategoryEmpty      ErrorCategory = "empty"
	CategoryIndex      ErrorCategory = "index"
	CategoryUnknown    ErrorCategory = "unknown"
)

// ActionableError is an error paired with what the operator can do about it.
type ActionableError interface {
	error
	OriginalError() string
	Category() ErrorCategory
	Suggestions() []string
	AffectedPath() string
}

// NewActionableError builds an ActionableError from a message alone.
func NewActionableError(
	originalError string,
	category ErrorCategory,
	suggestions []string,
	affectedPath string,
) ActionableError {
	return &actionableError{
		msg:          originalError,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// Wrap builds an ActionableError that keeps cause in its chain, so
// errors.Is(wrapped, gifscan.ErrIndexOutOfRange) still holds after enrichment.
func Wrap(cause error, category ErrorCategory, suggestions []string, affectedPath string) ActionableError {
	return &actionableError{
		msg:          cause.Error(),
		cause:        cause,
		category:     category,
		suggestions:  suggestions,
		affectedPath: affectedPath,
	}
}

// FormatSuggestions renders the suggestions of the first ActionableError in
// err's chain as an indented bullet list, or "" when there are none.
func FormatSuggestions(err error) string {
	var actionable ActionableError
	if !errors.As(err, &actionable) {
		return ""
	}

	suggestions := actionable.Suggestions()
	if len(suggestions) == 0 {
		return ""
	}

	lines := make([]string, len(suggestions))
	for i, suggestion := range suggestions {
		lines[i] = "  • " + suggestion
	}

	return strings.Join(lines, "\n")
}

type actionableError struct {
	msg          string
	cause        error
	category     ErrorCategory
	suggestions  []string
	affectedPath string
}

func (e *actionableError) AffectedPath() string { return e.affectedPath }

func (e *actionableError) Category() ErrorCategory { return e.category }

func (e *actionableError) Error() string { return e.msg }

func (e *actionableError) OriginalError() string { return e.msg }

func (e *actionableError) Suggestions() []string { return e.suggestions }

// Unwrap returns the wrapped cause, nil for message-only errors.
func (e *actionableError) Unwrap() error { return e.cause }
