package gifscan_test

import (
	"testing"

	"github.com/joe/gifpick/pkg/filesystem"
)

// trackingFS counts open directories and files to verify resource release.
type trackingFS struct {
	filesystem.FileSystem

	openDirs     int
	openFiles    int
	maxOpenDirs  int
	maxOpenFiles int
	dirOpens     int
}

func newTrackingFS(inner filesystem.FileSystem) *trackingFS {
	return &trackingFS{FileSystem: inner}
}

func (t *trackingFS) Open(path string) (filesystem.File, error) {
	file, err := t.FileSystem.Open(path)
	if err != nil {
		return nil, err
	}

	t.openFiles++
	t.maxOpenFiles = max(t.maxOpenFiles, t.openFiles)

	return &trackedFile{File: file, fs: t}, nil
}

func (t *trackingFS) OpenDir(path string) (filesystem.DirIterator, error) {
	it, err := t.FileSystem.OpenDir(path)
	if err != nil {
		return nil, err
	}

	t.dirOpens++
	t.openDirs++
	t.maxOpenDirs = max(t.maxOpenDirs, t.openDirs)

	return &trackedIterator{DirIterator: it, fs: t}, nil
}

type trackedFile struct {
	filesystem.File

	fs     *trackingFS
	closed bool
}

func (f *trackedFile) Close() error {
	if !f.closed {
		f.closed = true
		f.fs.openFiles--
	}

	return f.File.Close()
}

type trackedIterator struct {
	filesystem.DirIterator

	fs     *trackingFS
	closed bool
}

func (it *trackedIterator) Close() error {
	if !it.closed {
		it.closed = true
		it.fs.openDirs--
	}

	return it.DirIterator.Close()
}

// memDir builds an in-memory /gifs directory holding the named files.
func memDir(t *testing.T, names ...string) *filesystem.BillyFileSystem {
	t.Helper()

	fs := filesystem.NewMemoryFileSystem()

	err := fs.MkdirAll("/gifs")
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	for _, name := range names {
		err := fs.AddFile("/gifs/"+name, []byte("GIF89a"+name))
		if err != nil {
			t.Fatalf("Failed to create test file: %v", err)
		}
	}

	return fs
}
