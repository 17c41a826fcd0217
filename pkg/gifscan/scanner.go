package gifscan

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/joe/gifpick/pkg/filesystem"
)

// Scanner enumerates animation files in a directory and owns the one file
// selected for playback. Its methods serialize on an internal mutex, so at
// most one directory traversal and one open Handle are live per Scanner.
type Scanner struct {
	mu           sync.Mutex
	fs           filesystem.FileSystem
	logger       *zap.Logger
	rng          *rand.Rand
	filter       *NameFilter
	pattern      string
	pathCapacity int
	current      *Handle
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Scanner) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPathCapacity sets the PathBuffer capacity used by PathByIndex, OpenByIndex and OpenRandom.
func WithPathCapacity(capacity int) Option {
	return func(s *Scanner) {
		if capacity > 0 {
			s.pathCapacity = capacity
		}
	}
}

// WithPattern restricts accepted files to base names matching a doublestar glob.
func WithPattern(pattern string) Option {
	return func(s *Scanner) {
		s.pattern = pattern
	}
}

// WithRand sets the pseudo-random source used by ChooseRandom.
func WithRand(rng *rand.Rand) Option {
	return func(s *Scanner) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed seeds the pseudo-random source so draws are reproducible.
func WithSeed(seed uint64) Option {
	return WithRand(rand.New(rand.NewPCG(seed, seed))) //nolint:gosec // Playback order, not security
}

// New creates a Scanner over fsys.
func New(fsys filesystem.FileSystem, opts ...Option) (*Scanner, error) {
	s := &Scanner{
		fs:           fsys,
		logger:       zap.NewNop(),
		rng:          rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())), //nolint:gosec // Playback order, not security
		pathCapacity: DefaultPathCapacity,
	}

	for _, opt := range opts {
		opt(s)
	}

	filter, err := NewNameFilter(s.pattern)
	if err != nil {
		return nil, err
	}
	s.filter = filter

	return s, nil
}

// ChooseRandom writes the path of a uniformly drawn animation file in dir into out.
// Returns ErrEmptyDirectory when dir holds no animation files.
func (s *Scanner) ChooseRandom(dir string, out *PathBuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.chooseRandom(dir, out)
}

// Close closes the Handle owned by the Scanner, if any.
func (s *Scanner) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.closeCurrent()
}

// Count returns the number of animation files in dir.
// On failure it returns InvalidCount and a *DirectoryOpenError.
func (s *Scanner) Count(dir string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.count(dir)
}

// Current returns the open Handle owned by the Scanner, or nil.
func (s *Scanner) Current() *Handle {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil || s.current.Closed() {
		return nil
	}

	return s.current
}

// FetchPathByIndex writes the path of the index-th animation file in dir into out.
// An index outside [0, Count(dir)) returns ErrIndexOutOfRange and a path longer
// than out can hold returns ErrPathTooLong; out is left unchanged in both cases.
func (s *Scanner) FetchPathByIndex(dir string, index int, out *PathBuffer) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.fetchPath(dir, index, out)
}

// List returns the paths of all animation files in dir in traversal order.
func (s *Scanner) List(dir string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var paths []string

	err := s.walk(dir, func(entry filesystem.FileEntry) bool {
		paths = append(paths, composePath(dir, entry))
		return true
	})
	if err != nil {
		return nil, err
	}

	return paths, nil
}

// OpenByIndex opens the index-th animation file in dir for reading.
// The previously opened Handle is closed first.
func (s *Scanner) OpenByIndex(dir string, index int) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := NewPathBuffer(s.pathCapacity)

	err := s.fetchPath(dir, index, buf)
	if err != nil {
		return nil, err
	}

	return s.open(buf.String())
}

// OpenRandom opens a uniformly drawn animation file in dir for reading.
// The previously opened Handle is closed first.
func (s *Scanner) OpenRandom(dir string) (*Handle, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	buf := NewPathBuffer(s.pathCapacity)

	err := s.chooseRandom(dir, buf)
	if err != nil {
		return nil, err
	}

	return s.open(buf.String())
}

// PathByIndex returns the path of the index-th animation file in dir.
func (s *Scanner) PathByIndex(dir string, index int) (string, error) {
	buf := NewPathBuffer(s.pathCapacity)

	err := s.FetchPathByIndex(dir, index, buf)
	if err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *Scanner) chooseRandom(dir string, out *PathBuffer) error {
	count, err := s.count(dir)
	if err != nil {
		return err
	}

	if count == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyDirectory, dir)
	}

	index := s.rng.IntN(count)
	s.logger.Debug("Drew random index", zap.String("dir", dir), zap.Int("index", index), zap.Int("count", count))

	return s.fetchPath(dir, index, out)
}

func (s *Scanner) closeCurrent() error {
	if s.current == nil {
		return nil
	}

	handle := s.current
	s.current = nil

	return handle.Close()
}

func (s *Scanner) count(dir string) (int, error) {
	count := 0

	err := s.walk(dir, func(filesystem.FileEntry) bool {
		count++
		return true
	})
	if err != nil {
		return InvalidCount, err
	}

	s.logger.Debug("Enumerated animation files", zap.String("dir", dir), zap.Int("count", count))

	return count, nil
}

func (s *Scanner) fetchPath(dir string, index int, out *PathBuffer) error {
	if index < 0 {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}

	var (
		path  string
		found bool
	)

	remaining := index

	err := s.walk(dir, func(entry filesystem.FileEntry) bool {
		if remaining > 0 {
			remaining--
			return true
		}
		path = composePath(dir, entry)
		found = true

		return false
	})
	if err != nil {
		return err
	}

	if !found {
		return fmt.Errorf("%w: %d (directory %s has %d)", ErrIndexOutOfRange, index, dir, index-remaining)
	}

	err = out.set(path)
	if err != nil {
		return fmt.Errorf("%w: %s needs %d bytes, buffer holds %d", err, path, len(path)+1, out.Cap())
	}

	s.logger.Info("Selected file", zap.String("path", path), zap.Int("index", index))

	return nil
}

func (s *Scanner) open(path string) (*Handle, error) {
	err := s.closeCurrent()
	if err != nil {
		s.logger.Warn("Failed to close previous file", zap.Error(err))
	}

	file, err := s.fs.Open(path)
	if err != nil {
		s.logger.Error("Error opening GIF file", zap.String("path", path), zap.Error(err))
		return nil, &FileOpenError{Path: path, Err: err}
	}

	s.current = newHandle(file, path)

	return s.current, nil
}

// qualifies reports whether entry is an accepted animation file, logging the verdict.
func (s *Scanner) qualifies(entry filesystem.FileEntry) bool {
	if entry.IsDir {
		s.logger.Debug("Ignoring directory", zap.String("name", entry.Name))
		return false
	}

	if reason := rejectReason(entry.Name); reason != "" {
		s.logger.Debug("Ignoring file", zap.String("name", entry.Name), zap.String("reason", reason))
		return false
	}

	if !s.filter.ShouldInclude(entry.Name) {
		s.logger.Debug("Ignoring file", zap.String("name", entry.Name),
			zap.String("reason", "doesn't match pattern "+s.filter.Pattern()))
		return false
	}

	s.logger.Debug("Found animation file", zap.String("name", entry.Name))

	return true
}

// walk calls fn for each animation file in dir, in traversal order, until fn
// returns false. The directory is closed on every return path.
func (s *Scanner) walk(dir string, fn func(entry filesystem.FileEntry) bool) error {
	it, err := s.fs.OpenDir(dir)
	if err != nil {
		s.logger.Warn("Failed to open directory", zap.String("dir", dir), zap.Error(err))
		return &DirectoryOpenError{Path: dir, Err: err}
	}

	defer func() {
		if cerr := it.Close(); cerr != nil {
			s.logger.Warn("Failed to close directory", zap.String("dir", dir), zap.Error(cerr))
		}
	}()

	for {
		entry, ok := it.Next()
		if !ok {
			break
		}

		if !s.qualifies(entry) {
			continue
		}

		if !fn(entry) {
			return nil
		}
	}

	if iterErr := it.Err(); iterErr != nil {
		return &DirectoryOpenError{Path: dir, Err: iterErr}
	}

	return nil
}

// composePath returns the full path of entry inside dir.
func composePath(dir string, entry filesystem.FileEntry) string {
	if entry.Qualified || dir == "" {
		return entry.Name
	}

	if strings.HasSuffix(dir, "/") {
		return dir + entry.Name
	}

	return dir + "/" + entry.Name
}
