package main

import (
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/zombietrap/internal/platform/tui"
	"github.com/vovakirdan/zombietrap/internal/registry"
)

var (
	flagPlayer string
	flagTheme  string
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Play a level in the terminal. Without a level, opens the level picker.

Controls:
  Arrows/WASD  - Shift all zombies
  H            - Hint (best next move from the current board)
  U            - Undo
  R            - Reset level
  Esc/B        - Back to level picker
  Q/Ctrl+C     - Quit

Your score is saved when the board reaches the best score the level allows.

Examples:
  zombietrap play
  zombietrap play lvl02
  zombietrap play lvl04 --theme mono --player alice`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", "", "Name recorded with scores (default: current user)")
	playCmd.Flags().StringVar(&flagTheme, "theme", "default", "Color theme: default, mono")
}

func runPlay(cmd *cobra.Command, args []string) {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		exitf("play needs an interactive terminal")
	}

	theme, ok := tui.ThemeByName(flagTheme)
	if !ok {
		exitf("unknown theme %q", flagTheme)
	}

	// Scores are optional; play continues without a database
	store, err := openStore()
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	player := playerName()

	if len(args) == 0 {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		err := tui.RunSession(tui.SessionOptions{
			Player: player,
			Store:  store,
			Theme:  theme,
			Logger: logger,
			Width:  width,
			Height: height,
		})
		if err != nil {
			exitf("%v", err)
		}
		return
	}

	levelID := args[0]
	requireLevel(levelID)

	game, err := registry.Create(levelID)
	if err != nil {
		exitf("creating level: %v", err)
	}
	info, _ := registry.Info(levelID)

	err = tui.Run(levelID, game, tui.PlayOptions{
		Title:  info.Title,
		Player: player,
		Store:  store,
		Theme:  theme,
		Logger: logger,
	})
	if err != nil {
		exitf("%v", err)
	}
}

// playerName picks the name stored with scores.
func playerName() string {
	if flagPlayer != "" {
		return flagPlayer
	}
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return "anonymous"
}
