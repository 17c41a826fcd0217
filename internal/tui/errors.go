package tui

import (
	"errors"
	"fmt"
)

// ErrStaleListing indicates the directory changed since it was listed.
var ErrStaleListing = errors.New("directory changed since it was listed")

func errStaleListing(path string) error {
	return fmt.Errorf("%w: %s", ErrStaleListing, path)
}
