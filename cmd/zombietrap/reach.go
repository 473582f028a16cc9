package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombietrap/internal/registry"
	"github.com/vovakirdan/zombietrap/internal/statespace"
	"github.com/vovakirdan/zombietrap/internal/zombietrap"
)

var flagReachBoard string

var reachCmd = &cobra.Command{
	Use:   "reach <level> [moves]",
	Short: "Check whether a board is reachable from a level's start",
	Long: `Build the level's state space and look up a target board.

The target is either the board produced by playing a move string from the
start (letters u/d/l/r or words up/down/left/right), or a board read from a
file with --board. A board file holds only the grid rows; its score is the
number of zombies missing from the start times the level's trap points.

When the target is reachable the shortest moves that reach it are printed.
An unreachable target exits with status 1.

Examples:
  zombietrap reach lvl01 r
  zombietrap reach lvl05 "up, down"
  zombietrap reach lvl03 --board ./target.txt`,
	Args: cobra.RangeArgs(1, 2),
	Run:  runReach,
}

func init() {
	reachCmd.Flags().StringVar(&flagReachBoard, "board", "", "Read the target board from a file")
}

func runReach(cmd *cobra.Command, args []string) {
	levelID := args[0]
	requireLevel(levelID)

	if (len(args) == 2) == (flagReachBoard != "") {
		exitf("give either a move string or --board, not both")
	}

	initial, err := registry.Create(levelID)
	if err != nil {
		exitf("creating level: %v", err)
	}

	var target *zombietrap.Game
	if flagReachBoard != "" {
		target, err = readBoard(flagReachBoard, initial)
	} else {
		var moves []statespace.Move
		moves, err = statespace.ParseMoves(args[1])
		if err == nil {
			target = statespace.Replay(initial, moves)
		}
	}
	if err != nil {
		exitf("%v", err)
	}

	space := statespace.New(initial, statespace.WithLogger(logger.With("level", levelID)))

	moves, err := space.MovesToReach(target)
	if errors.Is(err, statespace.ErrUnreachable) {
		fmt.Fprintf(os.Stderr, "Board is not reachable from %s (%d states searched):\n%s\n",
			levelID, space.StateCount(), target)
		os.Exit(1)
	}
	if err != nil {
		exitf("%v", err)
	}

	formatted := statespace.FormatMoves(moves)
	if formatted == "" {
		formatted = "(start)"
	}
	fmt.Printf("Reachable in %d moves: %s\n", len(moves), formatted)
	fmt.Printf("Score: %d (best reachable %d)\n", target.Score(), space.BestScore())
	fmt.Println()
	fmt.Println(target)
}

// readBoard parses a board file and derives its score from the start.
func readBoard(path string, initial *zombietrap.Game) (*zombietrap.Game, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading board %s: %w", path, err)
	}
	g, err := zombietrap.Parse(zombietrap.SplitRows(string(data)), initial.Points())
	if err != nil {
		return nil, fmt.Errorf("parsing board %s: %w", path, err)
	}
	trapped := initial.Zombies() - g.Zombies()
	return g.WithScore(initial.Score() + trapped*initial.Points()), nil
}
