package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Backend selects how host directories are enumerated.
type Backend int

const (
	// BackendCursor pulls entries one at a time from the open directory.
	BackendCursor Backend = iota
	// BackendListing reads the whole directory listing up front.
	BackendListing
)

// String returns the string representation of Backend
func (b Backend) String() string {
	switch b {
	case BackendCursor:
		return "cursor"
	case BackendListing:
		return "listing"
	default:
		return "unknown"
	}
}

// ParseBackend parses a string into a Backend
func ParseBackend(s string) (Backend, error) {
	switch strings.ToLower(s) {
	case "cursor", "stream", "streaming":
		return BackendCursor, nil
	case "listing", "list", "flat":
		return BackendListing, nil
	default:
		return BackendCursor, fmt.Errorf("invalid backend: %s (valid: cursor, listing)", s) //nolint:err113 // Validation error with actual value
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for go-arg
func (b *Backend) UnmarshalText(text []byte) error {
	parsed, err := ParseBackend(string(text))
	if err != nil {
		return err
	}
	*b = parsed

	return nil
}

// Options configures CreateFileSystem.
type Options struct {
	// Backend applies to host paths only; SFTP locations always stream.
	Backend Backend

	// Connect is passed through to Connect for sftp:// locations.
	Connect ConnectOptions
}

// CreateFileSystem creates a FileSystem for the given location.
// Returns (filesystem, dirPath, closer, error).
// - filesystem: The FileSystem to use for operations
// - dirPath: The directory path to use with the filesystem (stripped of URL prefix)
// - closer: A function to call when done (closes SFTP connections), or nil for host paths
func CreateFileSystem(location string, opts Options) (FileSystem, string, func(), error) {
	parsed, err := ParsePath(location)
	if err != nil {
		return nil, "", nil, err
	}

	if !parsed.IsRemote {
		if opts.Backend == BackendListing {
			// The listing backend is rooted at "/", so relative paths are resolved first.
			dir, err := filepath.Abs(parsed.Path)
			if err != nil {
				return nil, "", nil, fmt.Errorf("failed to resolve %s: %w", parsed.Path, err)
			}

			return NewListingFileSystem(), dir, nil, nil
		}

		return NewLocalFileSystem(), parsed.Path, nil, nil
	}

	conn, err := Connect(parsed.Host, parsed.Port, parsed.User, opts.Connect)
	if err != nil {
		return nil, "", nil, fmt.Errorf("failed to connect to %s@%s:%d: %w",
			parsed.User, parsed.Host, parsed.Port, err)
	}

	closer := func() {
		_ = conn.Close()
	}

	return NewSFTPFileSystem(conn), parsed.Path, closer, nil
}
