package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombietrap/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any levels loaded from --levels.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	lvls := registry.List()

	if len(lvls) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen, maxTitleLen := 2, 5 // "ID", "Title" headers
	for _, l := range lvls {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Size", "Source")
	fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "----", "------")

	for _, l := range lvls {
		size := fmt.Sprintf("%dx%d", l.Width, l.Height)
		fmt.Printf("  %-*s  %-*s  %-7s  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, size, l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'zombietrap solve <id>' to explore a level or 'zombietrap play <id>' to play it.")
}
