package prompt

import (
	"strings"
	"testing"

	"github.com/picobox/mysh-llm/internal/catalog"
)

func TestBuild_ContainsQueryAndRetrievedNames(t *testing.T) {
	cat := []catalog.CommandEntry{
		{Name: "ls", Summary: "list directory contents", Usage: "ls [OPTIONS] [FILE]"},
		{Name: "grep", Summary: "search for patterns", Usage: "grep PATTERN [FILE]"},
		{Name: "wc", Summary: "count lines and words", Usage: "wc [FILE]"},
	}

	query := "list the files in here"
	p := Build(query, cat)

	if !strings.Contains(p, "User Request: "+query) {
		t.Fatal("prompt must contain the literal user query")
	}
	for _, name := range []string{"ls", "grep", "wc"} {
		if !strings.Contains(p, "Command: "+name) {
			t.Fatalf("prompt missing retrieved entry %q", name)
		}
	}
}

func TestBuild_OmitsEmptyDescription(t *testing.T) {
	cat := []catalog.CommandEntry{
		{Name: "pwd", Summary: "print working directory", Usage: "pwd"},
	}
	p := Build("where am i", cat)
	if strings.Contains(p, "Description:") {
		t.Fatal("empty descriptions must be omitted from the block")
	}
	if !strings.Contains(p, "Usage: pwd") {
		t.Fatal("usage line missing")
	}
}

func TestBuild_IncludesDescriptionWhenPresent(t *testing.T) {
	cat := []catalog.CommandEntry{
		{Name: "du", Summary: "disk usage", Description: "summarize disk usage of files", Usage: "du [FILE]"},
	}
	p := Build("how big is this directory", cat)
	if !strings.Contains(p, "Description: summarize disk usage of files") {
		t.Fatal("description line missing")
	}
}

func TestBuild_EmptyCatalog(t *testing.T) {
	p := Build("anything at all", nil)
	if !strings.Contains(p, "User Request: anything at all") {
		t.Fatal("prompt must contain the query even with no catalog")
	}
	if !strings.Contains(p, "Available Commands:") {
		t.Fatal("prompt structure must survive an empty catalog")
	}
}

func TestBuild_LimitsContextToTopFive(t *testing.T) {
	cat := []catalog.CommandEntry{
		{Name: "one"}, {Name: "two"}, {Name: "three"},
		{Name: "four"}, {Name: "five"}, {Name: "six"}, {Name: "seven"},
	}
	p := Build("zzz", cat)
	if got := strings.Count(p, "Command: "); got != 5 {
		t.Fatalf("expected 5 context blocks, got %d", got)
	}
}

func TestCleanResponse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"plain", "ls -la", "ls -la"},
		{"surrounding whitespace", "  ls -la \n", "ls -la"},
		{"code fence", "```sh\nls -la\n```", "ls -la"},
		{"bare fence", "```\ngrep -r foo .\n```", "grep -r foo ."},
		{"inline backticks", "`wc -l`", "wc -l"},
		{"prompt marker", "$ find . -name '*.go'", "find . -name '*.go'"},
		{"first line only", "ls -la\nThis lists all files.", "ls -la"},
		{"empty", "   \n ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CleanResponse(tt.raw); got != tt.want {
				t.Fatalf("CleanResponse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}
