package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-jump/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all play modes",
	Long:  `Shows every registered play mode.`,
	Args:  cobra.NoArgs,
	Run:   runList,
}

func runList(cmd *cobra.Command, _ []string) {
	out := cmd.OutOrStdout()
	modes := registry.List()

	if len(modes) == 0 {
		fmt.Fprintln(out, "No modes available.")
		return
	}

	maxIDLen := 2 // "ID" header
	for _, m := range modes {
		maxIDLen = max(maxIDLen, len(m.ID))
	}

	fmt.Fprintln(out, "Play modes:")
	fmt.Fprintln(out)
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, m := range modes {
		fmt.Fprintf(out, "  %-*s  %s\n", maxIDLen, m.ID, m.Title)
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Run 'jump play <id>' to play a mode.")
}
