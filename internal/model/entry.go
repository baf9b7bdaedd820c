package model

// RawEntry is the flat-text record the KEGG "get" operation returns for one identifier.
type RawEntry struct {
	ID   string // identifier the entry was requested with
	Text string // unparsed multi-line record
}
