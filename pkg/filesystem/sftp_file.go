package filesystem

import (
	"fmt"

	"github.com/pkg/sftp"
)

// SFTPFile wraps sftp.File to implement the filesystem.File interface.
type SFTPFile struct {
	file *sftp.File
	path string
}

// newSFTPFile creates a new SFTPFile wrapper.
func newSFTPFile(file *sftp.File, path string) *SFTPFile {
	return &SFTPFile{
		file: file,
		path: path,
	}
}

// Close closes the SFTP file.
func (f *SFTPFile) Close() error {
	err := f.file.Close()
	if err != nil {
		return fmt.Errorf("failed to close remote file %s: %w", f.path, err)
	}

	return nil
}

// Read reads from the SFTP file.
func (f *SFTPFile) Read(p []byte) (n int, err error) {
	return f.file.Read(p)
}

// Seek sets the offset for the next Read.
func (f *SFTPFile) Seek(offset int64, whence int) (int64, error) {
	return f.file.Seek(offset, whence)
}
