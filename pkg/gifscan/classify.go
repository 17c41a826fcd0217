// Package gifscan enumerates and selects animated GIF files in a directory.
//
// A Scanner walks one directory through a filesystem.FileSystem, keeps the
// entries whose names follow the animation naming convention, and maps a
// numeric index or a random draw to a path. It owns at most one open file at
// a time, which it hands to the decoder as a Handle.
//
// Basic usage:
//
//	scanner, err := gifscan.New(filesystem.NewLocalFileSystem(), gifscan.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//	defer scanner.Close()
//
//	count, err := scanner.Count("/gifs/")
//	...
//	handle, err := scanner.OpenByIndex("/gifs/", 3)
package gifscan

import (
	"strings"
)

// animationSuffix is compared case-insensitively.
const animationSuffix = ".gif"

// Rejection reasons reported by the scanner's debug log.
const (
	reasonEmpty   = "empty name"
	reasonLeading = "leading _/~/. character"
	reasonSuffix  = "doesn't end with .gif"
)

// ClassifyEntry reports whether name is an animation file.
// Any directory prefix is stripped first. Names that are empty, start with
// '_', '~' or '.', or lack a .gif suffix (any case) are rejected.
func ClassifyEntry(name string) bool {
	return rejectReason(name) == ""
}

// baseName returns the last path segment of name.
func baseName(name string) string {
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		return name[idx+1:]
	}

	return name
}

// rejectReason returns why name is not an animation file, or "" if it is.
func rejectReason(name string) string {
	base := baseName(name)
	if base == "" {
		return reasonEmpty
	}

	switch base[0] {
	case '_', '~', '.':
		return reasonLeading
	}

	if len(base) < len(animationSuffix) ||
		!strings.EqualFold(base[len(base)-len(animationSuffix):], animationSuffix) {
		return reasonSuffix
	}

	return ""
}
