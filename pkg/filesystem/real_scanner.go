package filesystem

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
)

// dirReader is the part of *os.File the cursor needs.
type dirReader interface {
	ReadDir(n int) ([]fs.DirEntry, error)
	Name() string
	Close() error
}

// cursorIterator implements DirIterator by reading one entry per Next call
// from an open directory.
type cursorIterator struct {
	dir    dirReader
	err    error
	done   bool
	closed bool
}

// newCursorIterator creates a cursor over an already opened directory.
func newCursorIterator(dir dirReader) *cursorIterator {
	return &cursorIterator{dir: dir}
}

// Close releases the directory handle.
func (it *cursorIterator) Close() error {
	if it.closed {
		return nil
	}
	it.closed = true
	it.done = true

	err := it.dir.Close()
	if err != nil {
		return fmt.Errorf("failed to close directory %s: %w", it.dir.Name(), err)
	}

	return nil
}

// Err returns any error that occurred during iteration.
func (it *cursorIterator) Err() error {
	return it.err
}

// Next advances to the next entry and returns it.
func (it *cursorIterator) Next() (FileEntry, bool) {
	if it.done {
		return FileEntry{}, false
	}

	entries, err := it.dir.ReadDir(1)
	if len(entries) == 0 {
		it.done = true
		if err != nil && !errors.Is(err, io.EOF) {
			it.err = fmt.Errorf("error reading directory %s: %w", it.dir.Name(), err)
		}

		return FileEntry{}, false
	}

	return FileEntry{
		Name:  entries[0].Name(),
		IsDir: entries[0].IsDir(),
	}, true
}
