package keg

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedLine means a record is missing tokens its level requires.
	ErrMalformedLine = errors.New("malformed record")

	// ErrMissingContext means a C record appeared before any B record, or a
	// D record before any C record under the current group.
	ErrMissingContext = errors.New("record has no parent")
)

// LineError reports a parse failure at a specific line of the input.
type LineError struct {
	Line int    // 1-based line number in the file
	Text string // offending line
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error { return e.Err }
