package catalog

import (
	"encoding/json"
	"fmt"
)

// CommandEntry describes one command known to the shell.
//
// Entries are read-only once loaded; everything downstream (scoring,
// prompting, heuristics) treats them as immutable values.
type CommandEntry struct {
	Name        string `json:"name"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Usage       string `json:"usage"`
}

// document is the wire shape produced by `picobox --commands-json`.
type document struct {
	Commands []CommandEntry `json:"commands"`
}

// Parse decodes a catalog JSON document into its ordered entry list.
//
// Missing fields decode to empty strings. The entry order of the document is
// preserved; ranking later relies on it as the tie-break order.
func Parse(data []byte) ([]CommandEntry, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid catalog JSON: %w", err)
	}
	if doc.Commands == nil {
		return []CommandEntry{}, nil
	}
	return doc.Commands, nil
}
