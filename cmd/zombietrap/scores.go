package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombietrap/internal/registry"
	"github.com/vovakirdan/zombietrap/internal/storage"
)

var flagScoresLimit int

var scoresCmd = &cobra.Command{
	Use:   "scores [level]",
	Short: "Show play scores and solve history",
	Long: `Display the top play scores for a level together with the solve
summaries recorded by 'zombietrap solve --save'.

Without a level, lists the recorded solve summaries of every level.

Examples:
  zombietrap scores lvl01
  zombietrap scores --limit 20`,
	Args: cobra.MaximumNArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().IntVar(&flagScoresLimit, "limit", 10, "Maximum rows per table")
}

func runScores(cmd *cobra.Command, args []string) {
	levelID := ""
	if len(args) == 1 {
		levelID = args[0]
		requireLevel(levelID)
	}

	store, err := openStore()
	if err != nil {
		exitf("opening scores database: %v", err)
	}
	defer store.Close()

	if levelID != "" {
		if err := printPlayScores(store, levelID); err != nil {
			exitf("retrieving scores: %v", err)
		}
		fmt.Println()
	}

	solutions, err := store.Solutions(levelID, flagScoresLimit)
	if err != nil {
		exitf("retrieving solutions: %v", err)
	}

	fmt.Println("Solve history")
	fmt.Println()
	if len(solutions) == 0 {
		fmt.Println("No solve summaries recorded yet.")
		fmt.Println("Run 'zombietrap solve --save' to record one.")
		return
	}

	fmt.Printf("  %-10s  %-8s  %-10s  %-5s  %-6s  %-16s  %s\n", "Level", "Run", "States", "Best", "Depth", "Date", "Moves")
	fmt.Printf("  %-10s  %-8s  %-10s  %-5s  %-6s  %-16s  %s\n", "-----", "---", "------", "----", "-----", "----", "-----")
	for _, s := range solutions {
		moves := s.BestMoves
		if moves == "" {
			moves = "-"
		}
		fmt.Printf("  %-10s  %-8s  %-10d  %-5d  %-6d  %-16s  %s\n",
			s.LevelID, shortRunID(s.RunID), s.StateCount, s.BestScore, s.MaxDepth,
			s.CreatedAt.Format("2006-01-02 15:04"), moves)
	}
}

func printPlayScores(store *storage.Store, levelID string) error {
	scores, err := store.TopScores(levelID, flagScoresLimit)
	if err != nil {
		return err
	}

	title := levelID
	if info, ok := registry.Info(levelID); ok {
		title = info.Title
	}
	fmt.Printf("High Scores - %s\n", title)
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Printf("Play 'zombietrap play %s' to set the first high score!\n", levelID)
		return nil
	}

	fmt.Printf("  %-4s  %-14s  %-6s  %-6s  %s\n", "Rank", "Player", "Score", "Moves", "Date")
	fmt.Printf("  %-4s  %-14s  %-6s  %-6s  %s\n", "----", "------", "-----", "-----", "----")
	for i, e := range scores {
		fmt.Printf("  %-4d  %-14s  %-6d  %-6d  %s\n",
			i+1, e.Player, e.Score, e.Moves, e.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

// shortRunID trims a UUID to its first group for display.
func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
