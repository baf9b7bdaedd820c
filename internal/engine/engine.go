package engine

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/crimson-sun/keggkit/internal/model"
)

var (
	// ErrMissingName means the entry has no "NAME <value>" line.
	ErrMissingName = errors.New("entry has no NAME field")

	// ErrUnexpectedShape means the entry mentions DESCRIPTION but NAME,
	// DESCRIPTION and CLASS are not consecutive tagged lines.
	ErrUnexpectedShape = errors.New("entry has DESCRIPTION but no consecutive NAME/DESCRIPTION/CLASS lines")
)

// descriptionTag switches extraction to the three-field pattern.
const descriptionTag = "DESCRIPTION"

// Engine extracts Name/Description/Class from raw KEGG entries.
type Engine struct {
	full *regexp.Regexp // NAME, DESCRIPTION, CLASS on consecutive lines
	name *regexp.Regexp // NAME alone
}

// New creates an Engine.
func New() *Engine {
	return &Engine{
		full: regexp.MustCompile(`NAME\s+(.+)\nDESCRIPTION\s+(.+)\nCLASS\s+(.+)`),
		name: regexp.MustCompile(`NAME\s+(.+)\n`),
	}
}

// Process extracts an InfoRow from a single raw entry.
//
// When the text contains "DESCRIPTION" all three fields are required and
// the first match wins. Otherwise only NAME is extracted and Description
// and Class are left nil.
func (e *Engine) Process(raw model.RawEntry) (model.InfoRow, error) {
	if strings.Contains(raw.Text, descriptionTag) {
		m := e.full.FindStringSubmatch(raw.Text)
		if m == nil {
			return model.InfoRow{}, fmt.Errorf("entry %q: %w", raw.ID, ErrUnexpectedShape)
		}
		desc, class := m[2], m[3]
		return model.InfoRow{Name: m[1], Description: &desc, Class: &class}, nil
	}

	m := e.name.FindStringSubmatch(raw.Text)
	if m == nil {
		return model.InfoRow{}, fmt.Errorf("entry %q: %w", raw.ID, ErrMissingName)
	}
	return model.InfoRow{Name: m[1]}, nil
}

// ProcessBatch extracts rows from a slice of raw entries, stopping at the
// first failure.
func (e *Engine) ProcessBatch(raws []model.RawEntry) ([]model.InfoRow, error) {
	rows := make([]model.InfoRow, 0, len(raws))
	for _, raw := range raws {
		row, err := e.Process(raw)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}
