package testdata

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed corpus.json
var corpusJSON []byte

// CorpusEntry is a KEGG flat-text record paired with the fields extraction
// should produce. ExpectedError names the failure kind ("unexpected_shape",
// "missing_name") or is empty when extraction succeeds.
type CorpusEntry struct {
	ID                  string  `json:"id"`
	Raw                 string  `json:"raw"`
	ExpectedName        string  `json:"expected_name"`
	ExpectedDescription *string `json:"expected_description"`
	ExpectedClass       *string `json:"expected_class"`
	ExpectedError       string  `json:"expected_error"`
}

// LoadCorpus parses the embedded corpus.json and returns all entries.
func LoadCorpus() ([]CorpusEntry, error) {
	var entries []CorpusEntry
	if err := json.Unmarshal(corpusJSON, &entries); err != nil {
		return nil, fmt.Errorf("parse corpus.json: %w", err)
	}
	return entries, nil
}
