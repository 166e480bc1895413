package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/picobox/mysh-llm/internal/config"
	"github.com/picobox/mysh-llm/internal/resolver"
)

var rootCmd = &cobra.Command{
	Use:          "mysh-llm <query>",
	Short:        "mysh-llm — natural-language command suggestions for the PicoBox shell",
	SilenceUsage: true, // usage noise would end up in the shell's output
	Long: `mysh-llm translates a free-text request into one executable command.
It retrieves the most relevant entries from the shell's command catalog,
asks an LLM when a credential is configured, and falls back to keyword
heuristics otherwise. It always prints exactly one command.`,
	Args: cobra.ArbitraryArgs,
	RunE: runSuggest,
}

// Execute is called by main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runSuggest(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("usage: mysh-llm <natural language query>")
	}

	query := strings.Join(args, " ")
	if strings.TrimSpace(query) == "" {
		fmt.Fprintln(cmd.OutOrStdout(), "echo 'LLM helper: empty query'")
		return nil
	}

	cfg := config.Load()
	debugf := debugfFor(cfg)
	if err := config.EnsureDotEnvTemplate(); err != nil {
		debugf("cannot create dotenv template: %v", err)
	}

	suggestion := resolver.New(cfg, debugf).Resolve(cmd.Context(), query)

	// Verbatim, no trailing newline: the shell consumes this directly.
	fmt.Fprint(cmd.OutOrStdout(), suggestion)
	return nil
}
