package cmd

import (
	"fmt"
	"os"

	"github.com/picobox/mysh-llm/internal/config"
)

// Diagnostics go to stderr only, prefixed so the shell can tell helper
// chatter apart from its own. Stdout carries nothing but the suggestion.

// debugfFor returns the diagnostic printer for cfg: a stderr writer when
// debug is enabled, nil otherwise (callers treat nil as a no-op).
func debugfFor(cfg *config.Config) func(format string, args ...any) {
	if !cfg.Debug {
		return nil
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, "[mysh-llm] "+format+"\n", args...)
	}
}
