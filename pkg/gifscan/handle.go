package gifscan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/joe/gifpick/pkg/filesystem"
)

// SignatureLength is the size of the GIF header signature and version ("GIF89a").
const SignatureLength = 6

// Handle is the open animation file a decoder streams from.
// A Handle is owned by the Scanner that opened it; it is closed when the
// Scanner opens another file or is itself closed. Its methods are safe to
// call while the Scanner closes it from another goroutine: calls after Close
// return os.ErrClosed.
type Handle struct {
	mu     sync.Mutex
	file   filesystem.File
	path   string
	closed bool
	one    [1]byte
}

func newHandle(file filesystem.File, path string) *Handle {
	return &Handle{file: file, path: path}
}

// Close closes the file. Closing an already closed Handle is a no-op.
func (h *Handle) Close() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil
	}
	h.closed = true

	err := h.file.Close()
	if err != nil {
		return fmt.Errorf("failed to close %s: %w", h.path, err)
	}

	return nil
}

// Closed reports whether the Handle has been closed.
func (h *Handle) Closed() bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.closed
}

// Path returns the path the Handle was opened with.
func (h *Handle) Path() string {
	return h.path
}

// Position returns the current read offset.
func (h *Handle) Position() (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.position()
}

// Read reads a block of up to len(p) bytes.
func (h *Handle) Read(p []byte) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.read(p)
}

// ReadByte reads a single byte.
func (h *Handle) ReadByte() (byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := io.ReadFull(readerFunc(h.read), h.one[:])
	if err != nil {
		return 0, err
	}

	return h.one[0], nil
}

// SeekTo moves the read offset to the absolute position pos.
func (h *Handle) SeekTo(pos int64) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	return h.seekTo(pos)
}

// Size returns the file size in bytes, preserving the current offset.
func (h *Handle) Size() (int64, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pos, err := h.position()
	if err != nil {
		return 0, err
	}

	end, err := h.file.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to seek %s to end: %w", h.path, err)
	}

	err = h.seekTo(pos)
	if err != nil {
		return 0, err
	}

	return end, nil
}

// Signature returns the first SignatureLength bytes of the file, preserving
// the current offset. Shorter files return what they hold and io.ErrUnexpectedEOF.
func (h *Handle) Signature() ([]byte, error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	pos, err := h.position()
	if err != nil {
		return nil, err
	}

	err = h.seekTo(0)
	if err != nil {
		return nil, err
	}

	sig := make([]byte, SignatureLength)
	n, readErr := io.ReadFull(readerFunc(h.read), sig)

	err = h.seekTo(pos)
	if err != nil {
		return nil, err
	}

	if readErr != nil {
		if errors.Is(readErr, io.EOF) {
			readErr = io.ErrUnexpectedEOF
		}

		return sig[:n], readErr
	}

	return sig, nil
}

// position, read and seekTo expect h.mu to be held.
func (h *Handle) position() (int64, error) {
	if h.closed {
		return 0, os.ErrClosed
	}

	return h.file.Seek(0, io.SeekCurrent)
}

func (h *Handle) read(p []byte) (int, error) {
	if h.closed {
		return 0, os.ErrClosed
	}

	return h.file.Read(p)
}

func (h *Handle) seekTo(pos int64) error {
	if h.closed {
		return os.ErrClosed
	}

	_, err := h.file.Seek(pos, io.SeekStart)
	if err != nil {
		return fmt.Errorf("failed to seek %s to %d: %w", h.path, pos, err)
	}

	return nil
}

type readerFunc func(p []byte) (int, error)

func (f readerFunc) Read(p []byte) (int, error) {
	return f(p)
}
