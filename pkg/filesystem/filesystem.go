// Package filesystem provides the directory-iteration capability the scanner walks,
// with interchangeable backends for local directories, go-billy filesystems and SFTP.
package filesystem

import (
	"errors"
	"fmt"
	"io"
	"os"
)

// ErrNotDirectory is returned by OpenDir when the path exists but is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// File is the read side of an opened file.
// A GIF decoder needs sequential reads plus absolute seeks.
type File interface {
	io.Reader
	io.Seeker
	io.Closer
}

// FileSystem is the collaborator the scanner consumes.
// Implementations differ in how they enumerate a directory, but every
// DirIterator they return satisfies the same contract.
type FileSystem interface {
	// OpenDir opens a directory for a single forward pass over its entries.
	// It fails if the path does not exist, is not a directory, or the
	// backing filesystem is unavailable.
	OpenDir(path string) (DirIterator, error)

	// Open opens a file for reading.
	Open(path string) (File, error)
}

// LocalFileSystem implements FileSystem on the host filesystem with a streaming cursor:
// entries are pulled from the open directory one at a time.
type LocalFileSystem struct{}

// NewLocalFileSystem creates a new LocalFileSystem instance.
func NewLocalFileSystem() *LocalFileSystem {
	return &LocalFileSystem{}
}

// Open opens a file for reading.
func (fs *LocalFileSystem) Open(path string) (File, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// OpenDir opens a directory and returns a cursor over its entries.
func (fs *LocalFileSystem) OpenDir(path string) (DirIterator, error) {
	dir, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	info, err := dir.Stat()
	if err != nil {
		_ = dir.Close()
		return nil, fmt.Errorf("failed to stat directory %s: %w", path, err)
	}

	if !info.IsDir() {
		_ = dir.Close()
		return nil, fmt.Errorf("failed to open directory %s: %w", path, ErrNotDirectory)
	}

	return newCursorIterator(dir), nil
}
