// Package heuristic produces a command suggestion from keyword rules alone.
// It is the resolver's floor: total, deterministic, and independent of any
// network or model availability.
package heuristic

import (
	"strings"

	"github.com/picobox/mysh-llm/internal/catalog"
	"github.com/picobox/mysh-llm/internal/search"
)

// Placeholders returned when the catalog gives the rules nothing to work with.
const (
	emptyCatalogSuggestion = "echo 'No commands available'"
	noRankedSuggestion     = "help"
)

// Suggest maps query to a command using an ordered keyword cascade over the
// full query text, falling back to the best-ranked catalog entry's name.
// It always returns a non-empty string, for any query and any catalog.
func Suggest(query string, entries []catalog.CommandEntry) string {
	if len(entries) == 0 {
		return emptyCatalogSuggestion
	}

	top := search.Select(query, entries, 1)
	if len(top) == 0 {
		// Unreachable: Select returns min(k, n) entries for a non-empty
		// catalog regardless of score. Kept as an invariant guard.
		return noRankedSuggestion
	}

	q := strings.ToLower(query)

	switch {
	case containsAny(q, "list", "show", "files", "directory"):
		if containsAny(q, "all", "hidden") {
			return "ls -la"
		}
		return "ls"
	case strings.Contains(q, "find"):
		return "find ."
	case containsAny(q, "count", "lines"):
		return "wc -l"
	case containsAny(q, "search", "grep"):
		return "grep"
	}

	return top[0].Name
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
