package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/picobox/mysh-llm/internal/catalog"
	"github.com/picobox/mysh-llm/internal/config"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List the commands the shell advertises",
	Long: `Loads the command catalog through the same acquisition path the
suggester uses (catalog command first, JSON file second) and prints it.
Useful for checking what the LLM and heuristics actually see.`,
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	cfg := config.Load()
	src := catalog.Source{
		Command: cfg.CatalogCommand,
		File:    cfg.CatalogFile,
		Debugf:  debugfFor(cfg),
	}

	entries := src.Load(cmd.Context())
	if len(entries) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No commands available.")
		return nil
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tSUMMARY")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\n", e.Name, e.Summary)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d commands\n", len(entries))
	return nil
}
