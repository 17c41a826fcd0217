package errors

import (
	"errors"
	"io/fs"
	"regexp"
	"strings"

	"github.com/joe/gifpick/pkg/filesystem"
	"github.com/joe/gifpick/pkg/gifscan"
)

// Enricher enriches standard errors with actionable suggestions.
type Enricher interface {
	Enrich(err error, affectedPath string) error
}

// NewEnricher creates a new Enricher with default pattern matcher and suggestion generator.
func NewEnricher() Enricher {
	return &enricher{
		matcher:   NewPatternMatcher(),
		generator: NewSuggestionGenerator(),
	}
}

// unexported variables.
var (
	//nolint:gochecknoglobals // Compiled regexes shared across all enricher instances for performance
	pathExtractionPatterns = []*regexp.Regexp{
		// Unix/Linux paths (absolute and relative)
		regexp.MustCompile(`\b\w+\s+([./][^\s:]+):`),
		// Windows paths with backslashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:\\[^\s:]+):`),
		// Windows paths with forward slashes
		regexp.MustCompile(`\b\w+\s+([A-Za-z]:/[^\s:]+):`),
	}

	//nolint:gochecknoglobals // Ordered sentinel table, read-only
	sentinelCategories = []struct {
		target   error
		category ErrorCategory
	}{
		{gifscan.ErrIndexOutOfRange, CategoryIndex},
		{gifscan.ErrEmptyDirectory, CategoryEmpty},
		{gifscan.ErrPathTooLong, CategoryPath},
		{filesystem.ErrNoAuthMethods, CategoryConnection},
		{filesystem.ErrNotDirectory, CategoryPath},
		{fs.ErrPermission, CategoryPermission},
		{fs.ErrNotExist, CategoryPath},
	}
)

// enricher is the concrete implementation of Enricher.
type enricher struct {
	matcher   PatternMatcher
	generator SuggestionGenerator
}

// Enrich takes a standard error and enriches it with category and actionable suggestions.
// If the error is already an ActionableError, it is returned unchanged.
// Known sentinels in the chain decide the category; otherwise the message is matched.
// If affectedPath is empty, the path comes from a scanner error in the chain or,
// failing that, from the error message.
func (e *enricher) Enrich(err error, affectedPath string) error {
	if err == nil {
		return nil
	}

	// If already actionable, return as-is
	var actionableErr ActionableError
	if errors.As(err, &actionableErr) {
		return actionableErr
	}

	errMsg := err.Error()

	if affectedPath == "" {
		affectedPath = scannerPath(err)
	}

	if affectedPath == "" {
		affectedPath = extractPath(errMsg)
	}

	category := classify(err)
	if category == CategoryUnknown {
		category = e.matcher.Match(errMsg)
	}

	suggestions := e.generator.Generate(category, affectedPath)

	return Wrap(err, category, suggestions, affectedPath)
}

// classify maps known sentinel errors in the chain to a category.
func classify(err error) ErrorCategory {
	for _, entry := range sentinelCategories {
		if errors.Is(err, entry.target) {
			return entry.category
		}
	}

	return CategoryUnknown
}

// scannerPath returns the path carried by a scanner error in the chain, if any.
func scannerPath(err error) string {
	var dirErr *gifscan.DirectoryOpenError
	if errors.As(err, &dirErr) {
		return dirErr.Path
	}

	var fileErr *gifscan.FileOpenError
	if errors.As(err, &fileErr) {
		return fileErr.Path
	}

	return ""
}

// extractPath attempts to extract a file path from common Go error message formats.
// Returns empty string if no path is found.
//
// This function recognizes standard Go error formats like:
//   - "open /sd/gifs/a.gif: permission denied"
//   - "stat /sd/gifs: no such file or directory"
func extractPath(errorMsg string) string {
	for _, pattern := range pathExtractionPatterns {
		if matches := pattern.FindStringSubmatch(errorMsg); len(matches) > 1 {
			path := strings.TrimSpace(matches[1])
			if path != "" {
				return path
			}
		}
	}

	return ""
}
