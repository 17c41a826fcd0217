package filesystem

import (
	"fmt"
	"os"
	"path"

	"github.com/kr/fs"
)

// stepper is the part of *fs.Walker the iterator drives.
type stepper interface {
	Step() bool
	Err() error
	Path() string
	Stat() os.FileInfo
	SkipDir()
}

var _ stepper = (*fs.Walker)(nil)

// sftpIterator implements DirIterator as a streaming cursor over a remote
// directory. It yields the immediate children of root only.
type sftpIterator struct {
	walker stepper
	root   string
	err    error
	done   bool
}

func newSFTPIterator(walker stepper, root string) *sftpIterator {
	return &sftpIterator{
		walker: walker,
		root:   path.Clean(root),
	}
}

// Close stops the walk. The SFTP client stays owned by the connection.
func (it *sftpIterator) Close() error {
	it.done = true
	return nil
}

// Err returns any error that occurred during iteration.
func (it *sftpIterator) Err() error {
	return it.err
}

// Next advances to the next entry and returns it.
func (it *sftpIterator) Next() (FileEntry, bool) {
	for !it.done && it.walker.Step() {
		if err := it.walker.Err(); err != nil { //nolint:noinlineerr // Inline error check is idiomatic for walker error handling
			it.err = fmt.Errorf("error scanning SFTP directory: %w", err)
			it.done = true

			return FileEntry{}, false
		}

		fullPath := it.walker.Path()

		// Skip the root directory itself
		if path.Clean(fullPath) == it.root {
			continue
		}

		isDir := it.walker.Stat().IsDir()
		if isDir {
			it.walker.SkipDir()
		}

		return FileEntry{
			Name:      fullPath,
			IsDir:     isDir,
			Qualified: true,
		}, true
	}

	it.done = true

	return FileEntry{}, false
}
