package gifscan

// DefaultPathCapacity is the PathBuffer capacity used by PathByIndex and OpenByIndex
// unless overridden with WithPathCapacity.
const DefaultPathCapacity = 256

// PathBuffer is a caller-owned, fixed-capacity path holder.
// It stores at most Cap()-1 bytes; the last byte is reserved for the
// terminator in the on-device layout.
type PathBuffer struct {
	buf []byte
	n   int
}

// NewPathBuffer returns an empty buffer with the given capacity.
// Capacities below 1 are raised to 1, which holds only the empty path.
func NewPathBuffer(capacity int) *PathBuffer {
	if capacity < 1 {
		capacity = 1
	}

	return &PathBuffer{buf: make([]byte, capacity)}
}

// Cap returns the buffer capacity, terminator included.
func (b *PathBuffer) Cap() int {
	return len(b.buf)
}

// Len returns the length of the stored path.
func (b *PathBuffer) Len() int {
	return b.n
}

// String returns the stored path.
func (b *PathBuffer) String() string {
	return string(b.buf[:b.n])
}

// Reset clears the stored path.
func (b *PathBuffer) Reset() {
	b.n = 0
}

// set stores path, leaving the buffer unchanged if it does not fit.
func (b *PathBuffer) set(path string) error {
	if len(path) > len(b.buf)-1 {
		return ErrPathTooLong
	}

	b.n = copy(b.buf, path)
	b.buf[b.n] = 0

	return nil
}
