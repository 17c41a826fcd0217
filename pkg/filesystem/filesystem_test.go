package filesystem_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/gifpick/pkg/filesystem"
)

func collect(t *testing.T, it filesystem.DirIterator) []filesystem.FileEntry {
	t.Helper()

	var entries []filesystem.FileEntry
	for {
		entry, ok := it.Next()
		if !ok {
			break
		}
		entries = append(entries, entry)
	}

	if err := it.Err(); err != nil {
		t.Fatalf("Iterator error: %v", err)
	}

	return entries
}

func names(entries []filesystem.FileEntry) []string {
	result := make([]string, 0, len(entries))
	for _, entry := range entries {
		result = append(result, entry.Name)
	}
	sort.Strings(result)

	return result
}

func TestMemoryFileSystem_ListingAndOpen(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMemoryFileSystem()
	g.Expect(fs.AddFile("/gifs/a.gif", []byte("GIF89a"))).To(Succeed())
	g.Expect(fs.AddFile("/gifs/b.txt", []byte("notes"))).To(Succeed())
	g.Expect(fs.MkdirAll("/gifs/sub")).To(Succeed())

	it, err := fs.OpenDir("/gifs")
	g.Expect(err).ShouldNot(HaveOccurred())

	entries := collect(t, it)
	g.Expect(names(entries)).To(Equal([]string{"a.gif", "b.txt", "sub"}))
	for _, entry := range entries {
		g.Expect(entry.Qualified).To(BeFalse())
		g.Expect(entry.IsDir).To(Equal(entry.Name == "sub"))
	}
	g.Expect(it.Close()).To(Succeed())

	file, err := fs.Open("/gifs/a.gif")
	g.Expect(err).ShouldNot(HaveOccurred())
	defer func() {
		_ = file.Close()
	}()

	_, err = file.Seek(3, io.SeekStart)
	g.Expect(err).ShouldNot(HaveOccurred())
	rest, err := io.ReadAll(file)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(rest)).To(Equal("89a"))
}

func TestMemoryFileSystem_OpenDirFailures(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	fs := filesystem.NewMemoryFileSystem()
	g.Expect(fs.AddFile("/gifs/a.gif", []byte("GIF89a"))).To(Succeed())

	_, err := fs.OpenDir("/missing")
	g.Expect(err).To(HaveOccurred())

	_, err = fs.OpenDir("/gifs/a.gif")
	g.Expect(errors.Is(err, filesystem.ErrNotDirectory)).To(BeTrue())

	_, err = fs.Open("/gifs/none.gif")
	g.Expect(err).To(HaveOccurred())
}

func TestListingFileSystem_MatchesCursor(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	for _, name := range []string{"a.gif", "B.GIF", ".hidden.gif", "c.txt"} {
		g.Expect(os.WriteFile(filepath.Join(dir, name), []byte("GIF89a"), 0o644)).To(Succeed())
	}
	g.Expect(os.Mkdir(filepath.Join(dir, "sub"), 0o755)).To(Succeed())

	cursorIt, err := filesystem.NewLocalFileSystem().OpenDir(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	cursorEntries := collect(t, cursorIt)
	g.Expect(cursorIt.Close()).To(Succeed())

	listingIt, err := filesystem.NewListingFileSystem().OpenDir(dir)
	g.Expect(err).ShouldNot(HaveOccurred())
	listingEntries := collect(t, listingIt)
	g.Expect(listingIt.Close()).To(Succeed())

	g.Expect(names(listingEntries)).To(Equal(names(cursorEntries)))
	g.Expect(cursorEntries).To(HaveLen(5))
}

func TestListingFileSystem_OpenReadsHostFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "a.gif")
	g.Expect(os.WriteFile(path, []byte("GIF89a"), 0o644)).To(Succeed())

	file, err := filesystem.NewListingFileSystem().Open(path)
	g.Expect(err).ShouldNot(HaveOccurred())
	defer func() {
		_ = file.Close()
	}()

	data, err := io.ReadAll(file)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(data)).To(Equal("GIF89a"))
}

func TestCreateFileSystem_Local(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	dir := t.TempDir()

	fs, dirPath, closer, err := filesystem.CreateFileSystem(dir, filesystem.Options{})
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(closer).To(BeNil())
	g.Expect(dirPath).To(Equal(dir))
	g.Expect(fs).To(BeAssignableToTypeOf(&filesystem.LocalFileSystem{}))

	fs, dirPath, closer, err = filesystem.CreateFileSystem(dir, filesystem.Options{Backend: filesystem.BackendListing})
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(closer).To(BeNil())
	g.Expect(dirPath).To(Equal(dir))
	g.Expect(fs).To(BeAssignableToTypeOf(&filesystem.BillyFileSystem{}))
}

func TestCreateFileSystem_InvalidLocation(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	_, _, _, err := filesystem.CreateFileSystem("", filesystem.Options{})
	g.Expect(err).To(MatchError(filesystem.ErrEmptyLocation))

	_, _, _, err = filesystem.CreateFileSystem("sftp://host/gifs", filesystem.Options{})
	g.Expect(err).To(MatchError(filesystem.ErrMissingUser))
}

func TestBackend_ParseAndString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected filesystem.Backend
		wantErr  bool
	}{
		{"cursor", filesystem.BackendCursor, false},
		{"STREAM", filesystem.BackendCursor, false},
		{"listing", filesystem.BackendListing, false},
		{"flat", filesystem.BackendListing, false},
		{"fat32", filesystem.BackendCursor, true},
	}

	for _, tt := range tests {
		var backend filesystem.Backend

		err := backend.UnmarshalText([]byte(tt.input))
		if (err != nil) != tt.wantErr {
			t.Errorf("UnmarshalText(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}

		if !tt.wantErr && backend != tt.expected {
			t.Errorf("UnmarshalText(%q) = %v, want %v", tt.input, backend, tt.expected)
		}
	}

	if got := filesystem.BackendListing.String(); got != "listing" {
		t.Errorf("BackendListing.String() = %q, want %q", got, "listing")
	}
	if got := filesystem.Backend(9).String(); got != "unknown" {
		t.Errorf("Backend(9).String() = %q, want %q", got, "unknown")
	}
}
