package filesystem

import (
	"fmt"

	"github.com/pkg/sftp"
)

// SFTPFileSystem implements FileSystem over an SFTP session, e.g. a display
// controller exposing its SD card over SSH. Directory entries are yielded with
// fully qualified remote paths.
type SFTPFileSystem struct {
	client *sftp.Client
}

// NewSFTPFileSystem creates a new SFTP filesystem using an established connection.
func NewSFTPFileSystem(conn *SFTPConnection) *SFTPFileSystem {
	return newSFTPFileSystemWithClient(conn.Client())
}

func newSFTPFileSystemWithClient(client *sftp.Client) *SFTPFileSystem {
	return &SFTPFileSystem{client: client}
}

// Open opens a remote file for reading.
func (fs *SFTPFileSystem) Open(path string) (File, error) {
	file, err := fs.client.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote file %s: %w", path, err)
	}

	return newSFTPFile(file, path), nil
}

// OpenDir returns a walker-backed cursor over the remote directory.
func (fs *SFTPFileSystem) OpenDir(path string) (DirIterator, error) {
	info, err := fs.client.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open remote directory %s: %w", path, err)
	}

	if !info.IsDir() {
		return nil, fmt.Errorf("failed to open remote directory %s: %w", path, ErrNotDirectory)
	}

	return newSFTPIterator(fs.client.Walk(path), path), nil
}
