package filesystem

import (
	"fmt"
	"os"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/osfs"
)

// BillyFileSystem implements FileSystem over a go-billy filesystem with the
// flat-listing model: the whole directory is read in one call, then iterated.
type BillyFileSystem struct {
	fs billy.Filesystem
}

// NewBillyFileSystem wraps an existing billy filesystem.
func NewBillyFileSystem(fs billy.Filesystem) *BillyFileSystem {
	return &BillyFileSystem{fs: fs}
}

// NewListingFileSystem returns a flat-listing backend rooted at the host root,
// so absolute host paths resolve unchanged.
func NewListingFileSystem() *BillyFileSystem {
	return NewBillyFileSystem(osfs.New("/"))
}

// NewMemoryFileSystem returns an empty in-memory flat-listing backend.
func NewMemoryFileSystem() *BillyFileSystem {
	return NewBillyFileSystem(memfs.New())
}

// AddFile writes a file with the given content, creating parent directories.
func (bfs *BillyFileSystem) AddFile(path string, data []byte) error {
	file, err := bfs.fs.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	_, err = file.Write(data)
	if err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return file.Close()
}

// MkdirAll creates a directory and all necessary parents.
func (bfs *BillyFileSystem) MkdirAll(path string) error {
	err := bfs.fs.MkdirAll(path, 0o755)
	if err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}

	return nil
}

// Open opens a file for reading.
func (bfs *BillyFileSystem) Open(path string) (File, error) {
	file, err := bfs.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return file, nil
}

// OpenDir lists the directory and returns an iterator over the listing.
func (bfs *BillyFileSystem) OpenDir(path string) (DirIterator, error) {
	info, err := bfs.fs.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open directory %s: %w", path, ErrNotDirectory)
	}

	infos, err := bfs.fs.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", path, err)
	}

	return newListingIterator(infos), nil
}

// listingIterator implements DirIterator over a directory listing held in memory.
type listingIterator struct {
	infos []os.FileInfo
	index int
}

func newListingIterator(infos []os.FileInfo) *listingIterator {
	return &listingIterator{
		infos: infos,
		index: -1,
	}
}

// Close drops the listing.
func (it *listingIterator) Close() error {
	it.infos = nil
	return nil
}

// Err always returns nil; listing errors surface from OpenDir.
func (it *listingIterator) Err() error {
	return nil
}

// Next advances to the next entry and returns it.
func (it *listingIterator) Next() (FileEntry, bool) {
	it.index++
	if it.index >= len(it.infos) {
		return FileEntry{}, false
	}

	info := it.infos[it.index]

	return FileEntry{
		Name:  info.Name(),
		IsDir: info.IsDir(),
	}, true
}
