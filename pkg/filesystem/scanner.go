package filesystem

// DirIterator is a single forward pass over the entries of one directory.
// It follows the Next pattern: call Next until it returns false, then check Err.
// Close releases the underlying directory and is safe to call more than once.
type DirIterator interface {
	// Next advances to the next entry and returns it.
	// Returns (FileEntry{}, false) when done or on error.
	Next() (FileEntry, bool)

	// Err returns any error that occurred during iteration.
	// Should be checked after Next() returns false.
	Err() error

	// Close releases the directory handle.
	Close() error
}

// FileEntry describes one directory entry as yielded by a backend.
type FileEntry struct {
	// Name is the entry name. When Qualified is true it already carries
	// the directory path, otherwise it is the bare name.
	Name string

	// IsDir indicates if this is a directory
	IsDir bool

	// Qualified reports whether Name is a full path.
	Qualified bool
}
