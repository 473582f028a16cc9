// zombietrap explores and plays Zombie Trap shift puzzles in the terminal.
//
// Usage:
//
//	zombietrap list                  - List available levels
//	zombietrap solve <level>...      - Enumerate a level's state space
//	zombietrap reach <level> <moves> - Check whether a board is reachable
//	zombietrap play [level]          - Play a level (picker if omitted)
//	zombietrap serve                 - Start SSH server for remote play
//	zombietrap scores [level]        - Show play scores and solve history
//	zombietrap export <level>        - Print a level as YAML
//
// Global flags:
//
//	--config <path>    - Config file (default search: ~/.zombietrap, ./configs)
//	--db <path>        - Database path (default: ~/.zombietrap/zombietrap.db)
//	--levels <dir>     - Extra directory of level files
//	--log-level <lvl>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombietrap/internal/config"
	"github.com/vovakirdan/zombietrap/internal/registry"
	"github.com/vovakirdan/zombietrap/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagLevels   string
	flagLogLevel string

	// Set up by loadConfig before any command runs
	cfg    config.Config
	logger *log.Logger
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "zombietrap",
	Short: "Zombie Trap - explore and play zombie shift puzzles",
	Long: `Zombie Trap is a sliding puzzle: every shift moves all zombies as far
as they can go, and zombies that slide over a pit fall in and score.

The solver enumerates every board reachable from a level's start and
reports the best score together with the shortest moves that reach it.

Available commands:
  list     - Show all available levels
  solve    - Enumerate a level's state space
  reach    - Check whether a board is reachable
  play     - Play a level in the terminal
  serve    - Start SSH server for remote play
  scores   - View play scores and solve history
  export   - Print a level as YAML

Examples:
  zombietrap list
  zombietrap solve lvl03
  zombietrap solve --all --jobs 4 --save
  zombietrap reach lvl01 r
  zombietrap play lvl02
  zombietrap serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "", "Path to database (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLevels, "levels", "", "Extra level directory (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(solveCmd)
	rootCmd.AddCommand(reachCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadConfig resolves configuration, applies flag overrides, creates the
// logger and registers extra levels.
func loadConfig(cmd *cobra.Command, _ []string) error {
	loaded, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	cfg = loaded

	if flagDBPath != "" {
		cfg.Storage.Path = flagDBPath
	}
	if flagLevels != "" {
		cfg.Levels.Dir = flagLevels
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}

	logger = newLogger(cfg.Log, "zombietrap")

	if cfg.Levels.Dir != "" {
		dir, err := config.ExpandHome(cfg.Levels.Dir)
		if err != nil {
			return err
		}
		n, err := registry.RegisterDir(dir)
		if err != nil {
			// Duplicates and unreadable files are not fatal
			logger.Warn("some levels were not registered", "dir", dir, "error", err)
		}
		logger.Debug("registered levels", "dir", dir, "count", n)
	}
	return nil
}

// newLogger builds a charm logger writing to stderr.
func newLogger(lc config.LogConfig, prefix string) *log.Logger {
	l := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: lc.Timestamp,
		Prefix:          prefix,
	})
	level, err := log.ParseLevel(lc.Level)
	if err != nil {
		level = log.InfoLevel
	}
	l.SetLevel(level)
	return l
}

// openStore opens the configured database.
func openStore() (*storage.Store, error) {
	return storage.Open(cfg.Storage.Path)
}

// exitf prints an error line to stderr and exits with status 1.
func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}

// requireLevel exits unless the level is registered.
func requireLevel(id string) {
	if !registry.Exists(id) {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", id)
		fmt.Fprintln(os.Stderr, "Run 'zombietrap list' to see available levels.")
		os.Exit(1)
	}
}
