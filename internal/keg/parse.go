package keg

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"
)

const (
	headerLines = 5
	maxLineSize = 1024 * 1024
)

// Parse reads a .keg stream and accumulates its B/C/D records.
// The first 5 lines are skipped as header. Failures are returned as
// *LineError wrapping ErrMalformedLine or ErrMissingContext.
func Parse(r io.Reader, policy DedupPolicy) (*Hierarchy, error) {
	h := newHierarchy(policy)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		if line <= headerLines {
			continue
		}
		text := sc.Text()
		if err := h.consume(strings.Fields(text)); err != nil {
			return nil, &LineError{Line: line, Text: text, Err: err}
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read line %d: %w", line+1, err)
	}
	return h, nil
}

// ParseFile opens path with OpenFile and parses it.
func ParseFile(path string, policy DedupPolicy) (*Hierarchy, error) {
	rc, err := OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	h, err := Parse(rc, policy)
	if err != nil {
		return nil, fmt.Errorf("keg: parse %s: %w", path, err)
	}
	slog.Debug("parsed keg file", "path", path, "records", h.Len(), "dedup", policy)
	return h, nil
}

// consume applies one tokenized record. Blank lines and unknown tags are
// ignored; so is a bare "B" separator line.
func (h *Hierarchy) consume(tokens []string) error {
	if len(tokens) == 0 {
		return nil
	}
	switch tokens[0] {
	case "B":
		if len(tokens) == 1 {
			return nil
		}
		if len(tokens) < 3 {
			return ErrMalformedLine
		}
		h.openGroup(strings.Join(tokens[2:], " "))
	case "C":
		// The trailing token is a reference tag such as [PATH:ko00010].
		if len(tokens) < 3 {
			return ErrMalformedLine
		}
		return h.openClass(strings.Join(tokens[2:len(tokens)-1], " "))
	case "D":
		if len(tokens) < 2 {
			return ErrMalformedLine
		}
		kept, err := h.addKO(tokens[1], strings.Join(tokens[2:], " "))
		if err != nil {
			return err
		}
		if !kept {
			slog.Debug("dropped repeated KO", "ko", tokens[1], "dedup", h.policy)
		}
	}
	return nil
}
