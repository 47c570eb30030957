// Package lines reads and writes the line-oriented input and output of the
// lexsort command.
package lines

import (
	"bufio"
	"compress/gzip"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
)

// MaxLineLength is the longest line Read accepts.
const MaxLineLength = 16 << 20

// StdioName is the file name that refers to standard input or output.
const StdioName = "-"

// ErrLineTooLong is returned when an input line exceeds MaxLineLength.
var ErrLineTooLong = errors.New("line too long")

// FileError records the input file that failed to open or read.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string { return e.Path + ": " + e.Err.Error() }

func (e *FileError) Unwrap() error { return e.Err }

// Compression identifies the compression of an input or output file.
type Compression int

const (
	None Compression = iota
	XZ               // .xz, .txz
	Gzip             // .gz
)

// CompressionFor returns the compression implied by the extension of path.
func CompressionFor(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xz"), strings.HasSuffix(lower, ".txz"):
		return XZ
	case strings.HasSuffix(lower, ".gz"):
		return Gzip
	default:
		return None
	}
}

type readCloser struct {
	io.Reader
	closers []io.Closer
}

func (r *readCloser) Close() error {
	var errs []error
	for _, c := range r.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Open opens path for reading. StdioName ("-") reads from stdin. Compressed
// files are detected by their extension or, for xz, by their header, and are
// decompressed transparently.
func Open(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == StdioName {
		return NewReader(stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var r io.ReadCloser
	if CompressionFor(path) == Gzip {
		r, err = newGzipReader(f)
	} else {
		r, err = NewReader(f)
	}
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &readCloser{Reader: r, closers: []io.Closer{r, f}}, nil
}

// NewReader returns a reader that decompresses r if it starts with an xz
// header and passes it through otherwise.
func NewReader(r io.Reader) (io.ReadCloser, error) {
	br := bufio.NewReader(r)
	header, err := br.Peek(xz.HeaderLen)
	if err != nil || !xz.ValidHeader(header) {
		return io.NopCloser(br), nil
	}
	xr, err := xz.NewReader(br)
	if err != nil {
		return nil, fmt.Errorf("xz error: %w", err)
	}
	return io.NopCloser(xr), nil
}

func newGzipReader(r io.Reader) (io.ReadCloser, error) {
	gr, err := gzip.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("gzip error: %w", err)
	}
	return gr, nil
}

// Read returns the lines of r without their line terminators ("\n" or
// "\r\n"). A final line without a terminator is included.
func Read(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), MaxLineLength)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return lines, ErrLineTooLong
		}
		return lines, err
	}
	return lines, nil
}

// ReadFiles reads and concatenates the lines of all files. Without files, it
// reads stdin. Failures are returned as a *FileError.
func ReadFiles(paths []string, stdin io.Reader) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{StdioName}
	}

	var all []string
	for _, path := range paths {
		rc, err := Open(path, stdin)
		if err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
		lines, err := Read(rc)
		rc.Close()
		if err != nil {
			return nil, &FileError{Path: path, Err: err}
		}
		all = append(all, lines...)
	}
	return all, nil
}

// Write writes each line followed by "\n".
func Write(w io.Writer, lines []string) error {
	bw := bufio.NewWriter(w)
	for _, line := range lines {
		if _, err := bw.WriteString(line); err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}

type writeCloser struct {
	io.Writer
	closers []io.Closer
}

func (w *writeCloser) Close() error {
	var errs []error
	for _, c := range w.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// Create creates path for writing, compressing the output if the extension
// asks for it. StdioName ("-") writes to stdout, which is not closed.
func Create(path string, stdout io.Writer) (io.WriteCloser, error) {
	if path == StdioName {
		return &writeCloser{Writer: stdout}, nil
	}

	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	switch CompressionFor(path) {
	case XZ:
		xw, err := xz.NewWriter(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("xz error: %w", err)
		}
		return &writeCloser{Writer: xw, closers: []io.Closer{xw, f}}, nil
	case Gzip:
		gw := gzip.NewWriter(f)
		return &writeCloser{Writer: gw, closers: []io.Closer{gw, f}}, nil
	default:
		return &writeCloser{Writer: f, closers: []io.Closer{f}}, nil
	}
}

// Unique removes lines that compare Equal to their predecessor. The lines
// must be sorted with the same comparison function. The result shares the
// backing array of lines.
func Unique(lines []string, cmp func(a, b string) int) []string {
	if len(lines) == 0 {
		return lines
	}
	out := lines[:1]
	for _, line := range lines[1:] {
		if cmp(out[len(out)-1], line) != 0 {
			out = append(out, line)
		}
	}
	return out
}

// Digest returns the hex-encoded BLAKE3 hash of the lines as written by
// Write.
func Digest(lines []string) string {
	h := blake3.New()
	for _, line := range lines {
		h.WriteString(line)
		h.WriteString("\n")
	}
	return hex.EncodeToString(h.Sum(nil))
}
