package table

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
)

const defaultBufSize = 64 * 1024 // 64KB

// Recorder is a row that can render itself as delimited fields.
type Recorder interface {
	Record() []string
}

// Option configures an Output.
type Option func(*Output)

// WithDelimiter sets the field delimiter. Default: ','.
func WithDelimiter(r rune) Option {
	return func(o *Output) { o.delimiter = r }
}

// WithBufSize sets the bufio.Writer buffer size. Default: 64KB.
func WithBufSize(bytes int) Option {
	return func(o *Output) { o.bufSize = bytes }
}

// Output writes a delimited table with a header row. Rows go to a temporary
// file in the destination directory, which Close renames into place, so the
// destination only ever holds a complete table.
type Output struct {
	w         *bufio.Writer
	cw        *csv.Writer
	f         *os.File
	path      string
	delimiter rune
	bufSize   int
	closed    bool
}

// New creates the parent directory of path if needed and writes the header.
func New(path string, columns []string, opts ...Option) (*Output, error) {
	o := &Output{
		path:      path,
		delimiter: ',',
		bufSize:   defaultBufSize,
	}
	for _, opt := range opts {
		opt(o)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("table output: mkdir %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, fmt.Errorf("table output: create %s: %w", path, err)
	}
	o.f = f
	if err := f.Chmod(0o644); err != nil {
		o.discard()
		return nil, fmt.Errorf("table output: chmod %s: %w", f.Name(), err)
	}
	o.w = bufio.NewWriterSize(f, o.bufSize)
	o.cw = csv.NewWriter(o.w)
	o.cw.Comma = o.delimiter

	if err := o.cw.Write(columns); err != nil {
		o.Abort()
		return nil, fmt.Errorf("table output: header: %w", err)
	}
	return o, nil
}

// Write appends one row.
func (o *Output) Write(row Recorder) error {
	if err := o.cw.Write(row.Record()); err != nil {
		return fmt.Errorf("table output: write: %w", err)
	}
	return nil
}

// Close flushes buffered rows and moves the table to its destination.
func (o *Output) Close() error {
	if o.closed {
		return nil
	}
	o.closed = true

	o.cw.Flush()
	if err := o.cw.Error(); err != nil {
		o.discard()
		return fmt.Errorf("table output: flush: %w", err)
	}
	if err := o.w.Flush(); err != nil {
		o.discard()
		return fmt.Errorf("table output: flush: %w", err)
	}
	if err := o.f.Close(); err != nil {
		os.Remove(o.f.Name())
		return fmt.Errorf("table output: close: %w", err)
	}
	if err := os.Rename(o.f.Name(), o.path); err != nil {
		os.Remove(o.f.Name())
		return fmt.Errorf("table output: rename to %s: %w", o.path, err)
	}
	return nil
}

// Abort drops everything written so far; the destination is left untouched.
func (o *Output) Abort() {
	if o.closed {
		return
	}
	o.closed = true
	o.discard()
}

func (o *Output) discard() {
	o.f.Close()
	os.Remove(o.f.Name())
}

// Write writes columns and rows to path in one call.
func Write[R Recorder](path string, columns []string, rows []R, opts ...Option) error {
	out, err := New(path, columns, opts...)
	if err != nil {
		return err
	}
	for _, row := range rows {
		if err := out.Write(row); err != nil {
			out.Abort()
			return err
		}
	}
	return out.Close()
}
