package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombietrap/internal/registry"
	"github.com/vovakirdan/zombietrap/internal/zombietrap/levels"
)

var exportCmd = &cobra.Command{
	Use:   "export <level>",
	Short: "Print a level as YAML",
	Long: `Write a registered level in the level file format, ready to be copied
into a --levels directory and edited.

Examples:
  zombietrap export lvl03 > my-level.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runExport,
}

func runExport(cmd *cobra.Command, args []string) {
	levelID := args[0]
	requireLevel(levelID)

	game, err := registry.Create(levelID)
	if err != nil {
		exitf("creating level: %v", err)
	}
	info, _ := registry.Info(levelID)

	data, err := levels.MarshalYAML(levels.Level{
		ID:     levelID,
		Name:   info.Title,
		Points: game.Points(),
		Rows:   game.Rows(),
	})
	if err != nil {
		exitf("encoding level: %v", err)
	}
	if _, err := os.Stdout.Write(data); err != nil {
		exitf("%v", err)
	}
	logger.Debug("exported level", "level", levelID, "bytes", len(data))
}
