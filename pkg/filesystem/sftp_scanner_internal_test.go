//nolint:varnamelen,testpackage // Test files use idiomatic short variable names
package filesystem

import (
	"errors"
	"os"
	"path"
	"strings"
	"testing"
	"time"
)

// fakeWalker replays a pre-order walk the way kr/fs does, honoring SkipDir.
type fakeWalker struct {
	nodes   []fakeNode
	index   int
	skipped string
	err     error
}

type fakeNode struct {
	path  string
	isDir bool
}

func (w *fakeWalker) Step() bool {
	for {
		w.index++
		if w.index >= len(w.nodes) {
			return false
		}

		current := w.nodes[w.index].path
		if w.skipped != "" && strings.HasPrefix(current, w.skipped+"/") {
			continue
		}

		return true
	}
}

func (w *fakeWalker) Err() error {
	if w.err != nil && w.index == len(w.nodes)-1 {
		return w.err
	}

	return nil
}

func (w *fakeWalker) Path() string { return w.nodes[w.index].path }

func (w *fakeWalker) Stat() os.FileInfo {
	node := w.nodes[w.index]
	return &fakeInfo{name: path.Base(node.path), isDir: node.isDir}
}

func (w *fakeWalker) SkipDir() { w.skipped = w.nodes[w.index].path }

type fakeInfo struct {
	name  string
	isDir bool
}

func (fi *fakeInfo) Name() string       { return fi.name }
func (fi *fakeInfo) Size() int64        { return 0 }
func (fi *fakeInfo) Mode() os.FileMode  { return 0o644 }
func (fi *fakeInfo) ModTime() time.Time { return time.Time{} }
func (fi *fakeInfo) IsDir() bool        { return fi.isDir }
func (fi *fakeInfo) Sys() interface{}   { return nil }

func newFakeWalker(nodes ...fakeNode) *fakeWalker {
	return &fakeWalker{nodes: nodes, index: -1}
}

// TestSFTPIterator_YieldsQualifiedChildrenOnly tests that the iterator yields
// full remote paths for immediate children and skips nested entries.
func TestSFTPIterator_YieldsQualifiedChildrenOnly(t *testing.T) {
	t.Parallel()

	walker := newFakeWalker(
		fakeNode{"/sd/gifs", true},
		fakeNode{"/sd/gifs/a.gif", false},
		fakeNode{"/sd/gifs/nested", true},
		fakeNode{"/sd/gifs/nested/deep.gif", false},
		fakeNode{"/sd/gifs/z.gif", false},
	)

	it := newSFTPIterator(walker, "/sd/gifs/")

	var got []FileEntry
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, entry)
	}

	if it.Err() != nil {
		t.Fatalf("Iterator should not have error: %v", it.Err())
	}

	want := []FileEntry{
		{Name: "/sd/gifs/a.gif", Qualified: true},
		{Name: "/sd/gifs/nested", IsDir: true, Qualified: true},
		{Name: "/sd/gifs/z.gif", Qualified: true},
	}

	if len(got) != len(want) {
		t.Fatalf("got %d entries %v, want %d", len(got), got, len(want))
	}

	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

// TestSFTPIterator_ErrorHandling tests that a walker error stops iteration
// and is reported by Err.
func TestSFTPIterator_ErrorHandling(t *testing.T) {
	t.Parallel()

	walkErr := errors.New("connection lost")
	walker := newFakeWalker(
		fakeNode{"/sd/gifs", true},
		fakeNode{"/sd/gifs/a.gif", false},
	)
	walker.err = walkErr

	it := newSFTPIterator(walker, "/sd/gifs")

	if _, ok := it.Next(); ok {
		t.Fatal("Next() should return false when the walker reports an error")
	}

	if !errors.Is(it.Err(), walkErr) {
		t.Errorf("Err() = %v, want %v", it.Err(), walkErr)
	}
}

// TestSFTPIterator_CloseStopsIteration tests that Close ends the walk early.
func TestSFTPIterator_CloseStopsIteration(t *testing.T) {
	t.Parallel()

	it := newSFTPIterator(newFakeWalker(
		fakeNode{"/gifs", true},
		fakeNode{"/gifs/a.gif", false},
	), "/gifs")

	if err := it.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	if _, ok := it.Next(); ok {
		t.Error("Next() after Close() should return false")
	}
}
