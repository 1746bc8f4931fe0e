// Package logsource opens the log stream a scan reads from.
package logsource

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

var gzipMagic = []byte{0x1f, 0x8b}

// Opener opens a log source by path.
type Opener func(path string) (io.ReadCloser, error)

// Source is an open log stream. Gzip-compressed content is decompressed
// transparently.
type Source struct {
	reader  io.Reader
	closers []io.Closer
}

// Open opens the file at path, or standard input when path is "-".
// Standard input is never closed.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return NewReader(os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	src, err := newSource(f, f)
	if err != nil {
		_ = f.Close()
		return nil, err
	}
	return src, nil
}

// NewReader wraps r, decompressing it if it starts with a gzip header.
// Closing the result does not close r.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	src, err := newSource(r, nil)
	if err != nil {
		return nil, err
	}
	return src, nil
}

func newSource(r io.Reader, underlying io.Closer) (*Source, error) {
	buffered := bufio.NewReader(r)
	src := &Source{reader: buffered}
	if underlying != nil {
		src.closers = append(src.closers, underlying)
	}

	head, err := buffered.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read log header: %w", err)
	}
	if !bytes.Equal(head, gzipMagic) {
		return src, nil
	}

	zr, err := gzip.NewReader(buffered)
	if err != nil {
		return nil, fmt.Errorf("open gzip stream: %w", err)
	}
	src.reader = zr
	src.closers = append([]io.Closer{zr}, src.closers...)
	return src, nil
}

// Read implements io.Reader.
func (s *Source) Read(p []byte) (int, error) {
	return s.reader.Read(p)
}

// Close releases the decompressor and the underlying file.
func (s *Source) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
