package gifscan

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// NameFilter narrows the accepted animation files by a glob on the base name.
type NameFilter struct {
	normalizedPattern string
	isEmpty           bool
}

// NewNameFilter creates a NameFilter with the given pattern.
// Empty pattern matches all files. Matching is case-insensitive.
func NewNameFilter(pattern string) (*NameFilter, error) {
	normalized := strings.ToLower(pattern)

	if pattern != "" && !doublestar.ValidatePattern(normalized) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPattern, pattern)
	}

	return &NameFilter{
		normalizedPattern: normalized,
		isEmpty:           pattern == "",
	}, nil
}

// Pattern returns the normalized pattern.
func (f *NameFilter) Pattern() string {
	return f.normalizedPattern
}

// ShouldInclude returns true if the base name of name matches the pattern.
func (f *NameFilter) ShouldInclude(name string) bool {
	if f == nil || f.isEmpty {
		return true
	}

	matched, err := doublestar.Match(f.normalizedPattern, strings.ToLower(baseName(name)))
	if err != nil {
		return false
	}

	return matched
}
