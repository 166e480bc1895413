package search

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/picobox/mysh-llm/internal/catalog"
)

// Field weights. Name hits score highest because users tend to type something
// close to the real command name; description hits are the weakest signal.
const (
	nameWeight        = 3
	summaryWeight     = 2
	descriptionWeight = 1
)

var lower = cases.Lower(language.Und)

// Tokenize lowercases the query and splits it into whitespace-separated
// words. An empty or blank query yields no tokens.
func Tokenize(query string) []string {
	return strings.Fields(lower.String(query))
}

// Score rates the relevance of entry to query by case-insensitive keyword
// matching: each query word adds 3 when it occurs in the entry name, 2 when
// it occurs in the summary, and 1 when it occurs in the description. A field
// contributes at most once per word. There is no stemming or fuzzy matching;
// the score is always >= 0 and is 0 for an empty query.
func Score(query string, entry catalog.CommandEntry) int {
	words := Tokenize(query)
	if len(words) == 0 {
		return 0
	}

	name := lower.String(entry.Name)
	summary := lower.String(entry.Summary)
	description := lower.String(entry.Description)

	score := 0
	for _, word := range words {
		if strings.Contains(name, word) {
			score += nameWeight
		}
		if strings.Contains(summary, word) {
			score += summaryWeight
		}
		if strings.Contains(description, word) {
			score += descriptionWeight
		}
	}
	return score
}
