package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/zombietrap/internal/config"
	"github.com/vovakirdan/zombietrap/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout time.Duration
	flagServeTheme  string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the Zombie Trap SSH server",
	Long: `Start an SSH server that allows users to connect and play levels.

Each SSH connection gets its own session with a level picker. Scores are
stored per-server under the SSH user name (all users share the same
leaderboard).

Host key handling:
  - If --host-key (or server.host_key_path) is set, uses that key file
  - Otherwise, auto-generates a key at ~/.zombietrap/host_key

Examples:
  zombietrap serve                           # Listen on the configured address
  zombietrap serve --ssh :2222               # Listen on port 2222
  zombietrap serve --host-key ./my_host_key  # Use specific host key
  zombietrap serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23235`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address host:port (overrides config)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (overrides config)")
	serveCmd.Flags().DurationVar(&flagIdleTimeout, "idle-timeout", 0, "Idle timeout before disconnecting (overrides config)")
	serveCmd.Flags().StringVar(&flagServeTheme, "theme", "default", "Color theme: default, mono")
}

func runServe(_ *cobra.Command, _ []string) {
	sc := cfg.Server
	if flagSSHAddr != "" {
		sc.Address = flagSSHAddr
	}
	if flagHostKey != "" {
		sc.HostKeyPath = flagHostKey
	}
	if flagIdleTimeout > 0 {
		sc.IdleTimeout = flagIdleTimeout
	}

	theme, ok := tui.ThemeByName(flagServeTheme)
	if !ok {
		exitf("unknown theme %q", flagServeTheme)
	}

	hostKey, err := config.ExpandHome(sc.HostKeyPath)
	if err != nil {
		exitf("%v", err)
	}

	store, err := openStore()
	if err != nil {
		// Continue without storage
		logger.Warn("could not open scores database", "error", err)
	} else {
		defer store.Close()
	}

	server, err := tui.NewSSHServer(tui.SSHServerConfig{
		Address:     sc.Address,
		HostKeyPath: hostKey,
		IdleTimeout: sc.IdleTimeout,
		Theme:       theme,
	}, store, newLogger(cfg.Log, "zombietrap-ssh"))
	if err != nil {
		exitf("creating server: %v", err)
	}

	fmt.Printf("Starting Zombie Trap SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		exitf("server: %v", err)
	}
}
