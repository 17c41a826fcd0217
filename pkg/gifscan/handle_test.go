package gifscan_test

import (
	"errors"
	"io"
	"os"
	"sync"
	"testing"

	. "github.com/onsi/gomega" //nolint:revive // Dot import is idiomatic for Gomega matchers

	"github.com/joe/gifpick/pkg/gifscan"
)

func openFirst(t *testing.T, g *WithT, content string) (*gifscan.Scanner, *gifscan.Handle) {
	t.Helper()

	fs := memDir(t)
	g.Expect(fs.AddFile("/gifs/clip.gif", []byte(content))).To(Succeed())

	scanner, err := gifscan.New(fs)
	g.Expect(err).ShouldNot(HaveOccurred())

	handle, err := scanner.OpenByIndex("/gifs", 0)
	g.Expect(err).ShouldNot(HaveOccurred())

	return scanner, handle
}

func TestHandle_ReadBlockAndByte(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, handle := openFirst(t, g, "GIF89a-frames")
	defer func() {
		_ = scanner.Close()
	}()

	g.Expect(handle.Path()).To(Equal("/gifs/clip.gif"))

	header := make([]byte, 6)
	n, err := io.ReadFull(handle, header)
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(n).To(Equal(6))
	g.Expect(string(header)).To(Equal("GIF89a"))

	b, err := handle.ReadByte()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(b).To(Equal(byte('-')))
}

func TestHandle_SeekPositionSize(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, handle := openFirst(t, g, "0123456789")
	defer func() {
		_ = scanner.Close()
	}()

	g.Expect(handle.SeekTo(7)).To(Succeed())

	size, err := handle.Size()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(size).To(Equal(int64(10)))

	pos, err := handle.Position()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(pos).To(Equal(int64(7)))

	b, err := handle.ReadByte()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(b).To(Equal(byte('7')))

	g.Expect(handle.SeekTo(0)).To(Succeed())
	b, err = handle.ReadByte()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(b).To(Equal(byte('0')))
}

func TestHandle_ReadByteAtEOF(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, handle := openFirst(t, g, "x")
	defer func() {
		_ = scanner.Close()
	}()

	_, err := handle.ReadByte()
	g.Expect(err).ShouldNot(HaveOccurred())

	_, err = handle.ReadByte()
	g.Expect(errors.Is(err, io.EOF)).To(BeTrue())
}

func TestHandle_ClosedHandleRefusesIO(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, handle := openFirst(t, g, "GIF89a")

	g.Expect(handle.Close()).To(Succeed())
	g.Expect(handle.Close()).To(Succeed())
	g.Expect(scanner.Current()).To(BeNil())
	g.Expect(scanner.Close()).To(Succeed())

	_, err := handle.Read(make([]byte, 1))
	g.Expect(err).To(MatchError(os.ErrClosed))
	g.Expect(handle.SeekTo(0)).To(MatchError(os.ErrClosed))

	_, err = handle.Position()
	g.Expect(err).To(MatchError(os.ErrClosed))
}

func TestHandle_SignaturePreservesOffset(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, handle := openFirst(t, g, "GIF87a;rest")
	defer func() {
		_ = scanner.Close()
	}()

	g.Expect(handle.SeekTo(8)).To(Succeed())

	sig, err := handle.Signature()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(string(sig)).To(Equal("GIF87a"))

	pos, err := handle.Position()
	g.Expect(err).ShouldNot(HaveOccurred())
	g.Expect(pos).To(Equal(int64(8)))
}

func TestHandle_SignatureOfShortFile(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, handle := openFirst(t, g, "GIF")
	defer func() {
		_ = scanner.Close()
	}()

	sig, err := handle.Signature()
	g.Expect(err).To(MatchError(io.ErrUnexpectedEOF))
	g.Expect(string(sig)).To(Equal("GIF"))
}

// TestHandle_ConcurrentUseWhileScannerReopens mirrors the browser, where each
// selection runs on its own goroutine and closes the Handle another one may
// still be describing. Run with -race.
func TestHandle_ConcurrentUseWhileScannerReopens(t *testing.T) {
	t.Parallel()
	g := NewWithT(t)

	scanner, err := gifscan.New(memDir(t, "a.gif", "b.gif"))
	g.Expect(err).ShouldNot(HaveOccurred())

	const workers = 200

	errs := make(chan error, workers*2)

	var wg sync.WaitGroup
	for i := range workers {
		wg.Add(1)

		go func(index int) {
			defer wg.Done()

			handle, err := scanner.OpenByIndex("/gifs", index%2)
			if err != nil {
				errs <- err
				return
			}

			if _, err := handle.Size(); err != nil && !errors.Is(err, os.ErrClosed) {
				errs <- err
			}

			sig, err := handle.Signature()
			if err != nil && !errors.Is(err, os.ErrClosed) {
				errs <- err
			}

			if err == nil && string(sig) != "GIF89a" {
				errs <- errors.New("unexpected signature " + string(sig))
			}
		}(i)
	}

	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent handle use: %v", err)
	}

	g.Expect(scanner.Close()).To(Succeed())
	g.Expect(scanner.Current()).To(BeNil())
}
