// Package tui provides the Bubble Tea front end for Zombie Trap.
// It handles the level picker, the board screen, the scoreboard and the
// SSH server that serves them.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// statusTTL is how long a status line stays on screen.
const statusTTL = 3 * time.Second

// clearStatusMsg expires the status line set at generation gen.
type clearStatusMsg struct {
	gen int
}

// clearStatusCmd returns a command that expires the status line after statusTTL.
func clearStatusCmd(gen int) tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{gen: gen}
	})
}
