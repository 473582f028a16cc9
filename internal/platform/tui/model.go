package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombietrap/internal/statespace"
	"github.com/vovakirdan/zombietrap/internal/storage"
	"github.com/vovakirdan/zombietrap/internal/zombietrap"
)

// PlayOptions configures a board session.
type PlayOptions struct {
	Title  string
	Player string
	Store  *storage.Store // nil disables score saving
	Theme  Theme
	Logger *log.Logger
}

// PlayModel is the Bubble Tea model for playing one level.
type PlayModel struct {
	levelID string
	opts    PlayOptions

	initial *zombietrap.Game
	game    *zombietrap.Game
	history []*zombietrap.Game
	moves   []statespace.Move

	// solver is rebuilt from the current board whenever a hint is asked for.
	solver *statespace.Space[*zombietrap.Game]
	par    int // best score reachable from the initial board

	keys      PlayKeyMap
	help      help.Model
	status    string
	statusGen int
	width     int
	height    int

	saved      bool
	quitting   bool
	backToMenu bool
}

// NewPlayModel creates a board model for a level. The solver explores the
// level once up front so the screen can show the best achievable score.
func NewPlayModel(levelID string, initial *zombietrap.Game, opts PlayOptions) PlayModel {
	if opts.Title == "" {
		opts.Title = levelID
	}
	if opts.Player == "" {
		opts.Player = "anonymous"
	}

	solverOpts := []statespace.Option{}
	if opts.Logger != nil {
		solverOpts = append(solverOpts, statespace.WithLogger(opts.Logger))
	}
	solver := statespace.New(initial, solverOpts...)

	return PlayModel{
		levelID: levelID,
		opts:    opts,
		initial: initial.Copy(),
		game:    initial.Copy(),
		solver:  solver,
		par:     solver.BestScore(),
		keys:    DefaultPlayKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model.
func (m PlayModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m PlayModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case clearStatusMsg:
		if msg.gen == m.statusGen {
			m.status = ""
		}
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlayModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if mv, ok := m.keys.MoveFor(msg); ok {
		return m.move(mv)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Back):
		m.backToMenu = true
		return m, nil

	case key.Matches(msg, m.keys.Hint):
		return m.setStatus(m.hint())

	case key.Matches(msg, m.keys.Undo):
		if len(m.history) == 0 {
			return m.setStatus("nothing to undo")
		}
		last := len(m.history) - 1
		m.game = m.history[last]
		m.history = m.history[:last]
		m.moves = m.moves[:len(m.moves)-1]
		return m, nil

	case key.Matches(msg, m.keys.Reset):
		m.game = m.initial.Copy()
		m.history = nil
		m.moves = nil
		m.saved = false
		return m.setStatus("level reset")

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

// move applies one shift to the board.
func (m PlayModel) move(mv statespace.Move) (tea.Model, tea.Cmd) {
	if m.Solved() {
		return m, nil
	}

	next := statespace.Apply(m.game, mv)
	if next.Equal(m.game) {
		return m.setStatus("nothing moves " + mv.Name())
	}

	m.history = append(m.history, m.game)
	m.moves = append(m.moves, mv)
	m.game = next

	if m.Solved() && !m.saved {
		m.saved = true
		m.saveScore()
		return m.setStatus(fmt.Sprintf("solved in %d moves", len(m.moves)))
	}
	return m, nil
}

// hint rebuilds the state space from the current board and describes the
// first move of an optimal line.
func (m PlayModel) hint() string {
	m.solver.Rebuild(m.game)

	best := m.solver.BestScore()
	if best <= m.game.Score() {
		if m.game.Zombies() > 0 && m.game.Score() < m.par {
			return "no more zombies can be trapped from here, try undo"
		}
		return "nothing left to gain"
	}

	moves := m.solver.BestMoves()
	return fmt.Sprintf("try %s (%d more points in %d moves: %s)",
		moves[0].Name(), best-m.game.Score(), len(moves), statespace.FormatMoves(moves))
}

// saveScore records the finished run. Failures are logged and ignored.
func (m PlayModel) saveScore() {
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.SaveScore(m.levelID, m.opts.Player, m.game.Score(), len(m.moves)); err != nil && m.opts.Logger != nil {
		m.opts.Logger.Warn("could not save score", "level", m.levelID, "error", err)
	}
}

func (m PlayModel) setStatus(s string) (tea.Model, tea.Cmd) {
	m.status = s
	m.statusGen++
	return m, clearStatusCmd(m.statusGen)
}

// Solved reports whether the board has reached the best achievable score.
func (m PlayModel) Solved() bool {
	if m.par == 0 {
		return m.game.Done()
	}
	return m.game.Score() >= m.par
}

// Game returns the current board.
func (m PlayModel) Game() *zombietrap.Game {
	return m.game
}

// Moves returns the moves played so far.
func (m PlayModel) Moves() []statespace.Move {
	return m.moves
}

// Status returns the current status line.
func (m PlayModel) Status() string {
	return m.status
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlayModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to the level picker.
func (m PlayModel) BackToMenu() bool {
	return m.backToMenu
}

// View renders the current state to a string for display.
func (m PlayModel) View() string {
	if m.quitting {
		return ""
	}
	theme := m.opts.Theme

	var b strings.Builder
	b.WriteString(theme.HUDTitle.Render(m.opts.Title))
	b.WriteString("\n")

	hud := fmt.Sprintf("score %s / %s   moves %s   zombies %s",
		theme.HUDValue.Render(fmt.Sprint(m.game.Score())),
		theme.HUDValue.Render(fmt.Sprint(m.par)),
		theme.HUDValue.Render(fmt.Sprint(len(m.moves))),
		theme.HUDValue.Render(fmt.Sprint(m.game.Zombies())),
	)
	b.WriteString(theme.HUDControls.Render(hud))
	b.WriteString("\n\n")

	b.WriteString(RenderBoard(m.game, theme))
	b.WriteString("\n\n")

	switch {
	case m.Solved():
		b.WriteString(theme.Win.Render("SOLVED"))
		b.WriteString(" ")
	case len(m.moves) > 0:
		b.WriteString(theme.HUDControls.Render(statespace.FormatMoves(m.moves)))
		b.WriteString(" ")
	}
	if m.status != "" {
		b.WriteString(theme.Status.Render(m.status))
	}
	b.WriteString("\n\n")
	b.WriteString(theme.HUDControls.Render(m.help.View(m.keys)))

	view := b.String()
	if m.width > 0 {
		view = lipgloss.PlaceHorizontal(m.width, lipgloss.Center, view)
	}
	return view
}

// Run starts the Bubble Tea program for a single level.
func Run(levelID string, initial *zombietrap.Game, opts PlayOptions) error {
	model := NewPlayModel(levelID, initial, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
