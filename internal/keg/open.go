package keg

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/pgzip"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// OpenFile opens a .keg file for parsing. Gzip input is detected by magic
// number (1F 8B) or a .gz suffix and decompressed. The text is passed
// through NewTextReader.
func OpenFile(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("keg: open %s: %w", path, err)
	}
	br := bufio.NewReader(f)

	var r io.Reader = br
	closers := []io.Closer{f}

	sig, _ := br.Peek(2)
	if (len(sig) == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		zr, err := pgzip.NewReader(br)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("keg: gzip %s: %w", path, err)
		}
		r = zr
		closers = append([]io.Closer{zr}, closers...)
	}

	return &multiReadCloser{Reader: NewTextReader(r), closers: closers}, nil
}

// NewTextReader decodes r as UTF-8 (or UTF-16 when a BOM says so) and
// drops the BOM. Text is otherwise passed through byte for byte.
func NewTextReader(r io.Reader) io.Reader {
	return transform.NewReader(r, unicode.BOMOverride(unicode.UTF8.NewDecoder()))
}
