package gifscan

import (
	"errors"
	"fmt"
)

// InvalidCount is returned by Count alongside an error.
const InvalidCount = -1

// Sentinel errors for scanner operations.
var (
	// ErrIndexOutOfRange indicates the index is negative or not below the file count.
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrEmptyDirectory indicates a random draw over a directory with no animation files.
	ErrEmptyDirectory = errors.New("no animation files in directory")

	// ErrPathTooLong indicates the selected path does not fit the PathBuffer.
	ErrPathTooLong = errors.New("path exceeds buffer capacity")

	// ErrInvalidPattern indicates the name pattern cannot be compiled.
	ErrInvalidPattern = errors.New("invalid name pattern")
)

// DirectoryOpenError reports a directory that could not be opened or read.
type DirectoryOpenError struct {
	// Path is the directory as passed by the caller.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *DirectoryOpenError) Error() string {
	return fmt.Sprintf("open directory %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *DirectoryOpenError) Unwrap() error {
	return e.Err
}

// FileOpenError reports a selected path that could not be opened for reading.
type FileOpenError struct {
	// Path is the composed file path.
	Path string

	// Err is the underlying error.
	Err error
}

// Error implements the error interface.
func (e *FileOpenError) Error() string {
	return fmt.Sprintf("open file %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *FileOpenError) Unwrap() error {
	return e.Err
}
