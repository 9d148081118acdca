// Package input handles operand I/O for the uwc command: opening files and
// stdin, transparent lz4 decompression, --files0-from name lists, and the
// per-file worker pool.
package input

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"

	"github.com/kolkov/uwc"
)

// Stdin is the operand naming standard input.
const Stdin = "-"

// Open opens one operand for reading. "-" is stdin. Operands ending in
// ".lz4" are wrapped in a streaming lz4 frame reader, so counts describe the
// decompressed stream.
func Open(path string) (io.ReadCloser, error) {
	if path == Stdin {
		return io.NopCloser(os.Stdin), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if strings.HasSuffix(path, ".lz4") {
		return &lz4File{r: lz4.NewReader(f), f: f}, nil
	}
	return f, nil
}

// lz4File streams a decompressed lz4 frame, closing the underlying file.
type lz4File struct {
	r *lz4.Reader
	f *os.File
}

func (l *lz4File) Read(p []byte) (int, error) { return l.r.Read(p) }
func (l *lz4File) Close() error               { return l.f.Close() }

// CountPath opens and counts one operand. Failures come back as
// *uwc.InputError naming the operand.
func CountPath(path string, locale uwc.Locale, cfg *uwc.Config) (uwc.Counts, error) {
	r, err := Open(path)
	if err != nil {
		return uwc.Counts{}, &uwc.InputError{Path: path, Err: err}
	}
	defer r.Close()

	counts, err := uwc.CountReader(r, locale, cfg)
	if err != nil {
		return counts, &uwc.InputError{Path: path, Err: err}
	}
	return counts, nil
}

// ReadFiles0 parses a NUL-terminated name list, the format consumed by
// --files0-from. Empty names between separators are rejected, matching GNU
// wc's "invalid zero-length file name" diagnostic.
func ReadFiles0(r io.Reader) ([]string, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var names []string
	for i, name := range bytes.Split(data, []byte{0}) {
		if len(name) == 0 {
			// A trailing NUL leaves one empty entry at the end; only
			// interior empties are malformed.
			if i == bytes.Count(data, []byte{0}) {
				continue
			}
			return nil, errors.New("invalid zero-length file name")
		}
		names = append(names, string(name))
	}
	return names, nil
}
