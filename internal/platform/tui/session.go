package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/zombietrap/internal/registry"
	"github.com/vovakirdan/zombietrap/internal/storage"
)

// SessionOptions configures a full menu -> board -> menu session.
type SessionOptions struct {
	Player string
	Store  *storage.Store
	Theme  Theme
	Logger *log.Logger
	Width  int
	Height int
}

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenScores
)

// SessionModel manages the session flow between the level picker, the
// board and the scoreboard. It is the top-level model for SSH sessions and
// for the local play command when no level is given.
type SessionModel struct {
	opts     SessionOptions
	screen   screen
	menu     MenuModel
	play     PlayModel
	scores   ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(opts SessionOptions) SessionModel {
	return SessionModel{
		opts: opts,
		menu: NewMenuModel(opts.Store, opts.Theme, opts.Width, opts.Height),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.opts.Width = wsm.Width
		m.opts.Height = wsm.Height
	}

	switch m.screen {
	case screenPlay:
		return m.updatePlay(msg)
	case screenScores:
		return m.updateScores(msg)
	}
	return m.updateMenu(msg)
}

// updateMenu handles updates when in the level picker.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	switch {
	case m.menu.IsQuitting():
		m.quitting = true
		return m, tea.Quit

	case m.menu.WantsScoreboard():
		m.scores = NewScoreboardModel(m.opts.Store, m.opts.Width, m.opts.Height)
		m.screen = screenScores
		return m, m.scores.Init()

	case m.menu.Selected() != nil:
		lvl := *m.menu.Selected()
		game, err := registry.Create(lvl.ID)
		if err != nil {
			if m.opts.Logger != nil {
				m.opts.Logger.Error("cannot create level", "level", lvl.ID, "error", err)
			}
			m.menu = NewMenuModel(m.opts.Store, m.opts.Theme, m.opts.Width, m.opts.Height)
			return m, nil
		}

		m.play = NewPlayModel(lvl.ID, game, PlayOptions{
			Title:  lvl.Title,
			Player: m.opts.Player,
			Store:  m.opts.Store,
			Theme:  m.opts.Theme,
			Logger: m.opts.Logger,
		})
		m.screen = screenPlay
		// Size the board screen right away
		next, _ := m.play.Update(tea.WindowSizeMsg{Width: m.opts.Width, Height: m.opts.Height})
		m.play = next.(PlayModel)
		return m, m.play.Init()
	}

	return m, cmd
}

// updatePlay handles updates when on the board.
func (m SessionModel) updatePlay(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.play.Update(msg)
	if playModel, ok := newModel.(PlayModel); ok {
		m.play = playModel
	}

	if m.play.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.play.BackToMenu() {
		return m.backToMenu()
	}
	return m, cmd
}

// updateScores handles updates when on the scoreboard.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.scores.Update(msg)
	if sb, ok := newModel.(ScoreboardModel); ok {
		m.scores = sb
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}
	if m.scores.IsGoingBack() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.menu = NewMenuModel(m.opts.Store, m.opts.Theme, m.opts.Width, m.opts.Height)
	return m, m.menu.Init()
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch m.screen {
	case screenPlay:
		return m.play.View()
	case screenScores:
		return m.scores.View()
	}
	return m.menu.View()
}

// RunSession starts a local session on the current terminal.
func RunSession(opts SessionOptions) error {
	p := tea.NewProgram(
		NewSessionModel(opts),
		tea.WithAltScreen(),
	)
	_, err := p.Run()
	return err
}
