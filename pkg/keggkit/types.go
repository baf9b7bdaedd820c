package keggkit

import (
	"github.com/crimson-sun/keggkit/internal/connector"
	"github.com/crimson-sun/keggkit/internal/engine"
	"github.com/crimson-sun/keggkit/internal/keg"
	"github.com/crimson-sun/keggkit/internal/model"
)

// Errors returned by this package, for use with errors.Is.
var (
	ErrInvalidIdentifier = connector.ErrInvalidIdentifier
	ErrMissingName       = engine.ErrMissingName
	ErrUnexpectedShape   = engine.ErrUnexpectedShape
	ErrMalformedLine     = keg.ErrMalformedLine
	ErrMissingContext    = keg.ErrMissingContext
)

// Info holds the fields extracted from one KEGG entry.
type Info struct {
	ID          string // identifier the entry was requested with
	Name        string
	Description string
	Class       string
	HasDetails  bool // false when the entry has no DESCRIPTION section
}

// KegRow is one KO of a flattened .keg hierarchy.
type KegRow struct {
	KO             string
	Group          string
	Classification string // distinct values joined by " | "
	Description    string // distinct values joined by " | "
}

func infoFromRow(id string, r model.InfoRow) Info {
	info := Info{ID: id, Name: r.Name}
	if r.Description != nil && r.Class != nil {
		info.Description = *r.Description
		info.Class = *r.Class
		info.HasDetails = true
	}
	return info
}

func kegRowFromGrouped(r keg.GroupedRow) KegRow {
	return KegRow{
		KO:             r.KO,
		Group:          r.Group,
		Classification: r.Classification,
		Description:    r.Description,
	}
}
