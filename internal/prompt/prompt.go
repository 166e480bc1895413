// Package prompt renders the retrieved catalog context and user query into
// the instruction text sent to the model, and cleans up what comes back.
package prompt

import (
	"fmt"
	"strings"

	"github.com/picobox/mysh-llm/internal/catalog"
	"github.com/picobox/mysh-llm/internal/search"
)

// RetrievalLimit is how many catalog entries are included as context.
const RetrievalLimit = 5

// SystemInstruction is the system-role message sent alongside the prompt.
const SystemInstruction = "You are a Unix shell command expert. Respond with only the command, no explanation."

// Build synthesizes the full prompt for query: the top-ranked catalog entries
// rendered as documentation blocks, wrapped in fixed instructions, with the
// literal query appended. An empty catalog produces an empty context section;
// the prompt stays well-formed.
func Build(query string, entries []catalog.CommandEntry) string {
	relevant := search.Select(query, entries, RetrievalLimit)

	docs := make([]string, 0, len(relevant))
	for _, e := range relevant {
		docs = append(docs, renderEntry(e))
	}
	context := strings.Join(docs, "\n")

	return fmt.Sprintf(`You are a Unix shell command expert. Given the user's request, suggest the most appropriate command.

Available Commands:
%s

User Request: %s

Respond with ONLY the shell command, no explanation. The command should:
- Use commands from the list above
- Be a valid single-line command
- Use proper syntax (pipes, redirects allowed)
- Be executable as-is

Command:`, context, query)
}

func renderEntry(e catalog.CommandEntry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Command: %s\n", e.Name)
	fmt.Fprintf(&b, "Summary: %s\n", e.Summary)
	if e.Description != "" {
		fmt.Fprintf(&b, "Description: %s\n", e.Description)
	}
	fmt.Fprintf(&b, "Usage: %s\n", e.Usage)
	return b.String()
}

// CleanResponse extracts a single command line from raw model output.
// Models wrap answers in code fences, backticks, or "$ " prompt markers no
// matter how firmly the prompt forbids it; an answer that cleans down to
// nothing is treated by callers as no suggestion at all.
func CleanResponse(raw string) string {
	s := strings.TrimSpace(raw)
	if s == "" {
		return ""
	}

	if strings.HasPrefix(s, "```") {
		lines := strings.Split(s, "\n")
		if len(lines) > 1 {
			lines = lines[1:]
		}
		if len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "```" {
			lines = lines[:len(lines)-1]
		}
		s = strings.TrimSpace(strings.Join(lines, "\n"))
	}
	s = strings.TrimSpace(strings.Trim(s, "`"))

	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			s = line
			break
		}
	}

	return strings.TrimPrefix(s, "$ ")
}
