package search

import (
	"sort"

	"github.com/picobox/mysh-llm/internal/catalog"
)

// ScoredEntry pairs a catalog entry with its relevance score. It exists only
// while ranking; callers receive plain entries back.
type ScoredEntry struct {
	Entry catalog.CommandEntry
	Score int
}

// Select scores every catalog entry against query and returns the top k,
// ordered by score descending. The sort is stable: entries with equal scores
// keep their catalog order, so repeated runs over an unchanged catalog rank
// identically. Always returns exactly min(k, len(entries)) entries.
func Select(query string, entries []catalog.CommandEntry, k int) []catalog.CommandEntry {
	scored := make([]ScoredEntry, len(entries))
	for i, e := range entries {
		scored[i] = ScoredEntry{Entry: e, Score: Score(query, e)}
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].Score > scored[j].Score
	})

	if k < 0 {
		k = 0
	}
	if k > len(scored) {
		k = len(scored)
	}
	out := make([]catalog.CommandEntry, k)
	for i := range out {
		out[i] = scored[i].Entry
	}
	return out
}
