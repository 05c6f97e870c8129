package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/progress"
	"github.com/aucoeur/love-arcade/internal/registry"
	"github.com/aucoeur/love-arcade/internal/storage"
)

// SessionModel manages the full session flow: menu -> game -> menu, with
// the scoreboard reachable from the menu. One progression tracker spans
// the whole session, so points earned in one game level up across all.
type SessionModel struct {
	store    *storage.Store
	tracker  *progress.Tracker
	config   core.RuntimeConfig
	menu     MenuModel
	game     *GameModel
	scores   *ScoreboardModel
	quitting bool
}

// NewSessionModel creates a new session model.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig) SessionModel {
	tracker := progress.NewTracker(cfg.PlayerName, time.Now())

	return SessionModel{
		store:   store,
		tracker: tracker,
		config:  cfg,
		menu:    NewMenuModel(store, tracker, cfg),
	}
}

// Tracker exposes the session's progression state.
func (m SessionModel) Tracker() *progress.Tracker {
	return m.tracker
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Handle window resize globally
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch {
	case m.game != nil:
		return m.updateGame(msg)
	case m.scores != nil:
		return m.updateScores(msg)
	default:
		return m.updateMenu(msg)
	}
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// Transitions ride the session's single tick loop: the pending tick
	// from the menu keeps firing and the new child reschedules it, so no
	// child Init is called here (that would spawn a second loop).
	if m.menu.WantsScoreboard() {
		scores := NewScoreboardModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.scores = &scores
		m.menu = NewMenuModel(m.store, m.tracker, m.config)
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		game, err := registry.Create(selected.GameID)
		if err != nil {
			// Menu only lists registered games
			return m, nil
		}

		m.config = m.menu.Config()
		gameModel := NewGameModel(game, m.store, m.tracker, m.config)
		m.game = &gameModel
		return m, nil
	}

	return m, cmd
}

// updateGame handles updates when in game mode. Leaving a game discards
// its model entirely, so no pending delay can outlive it.
func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.game.Update(msg)
	if gameModel, ok := newModel.(GameModel); ok {
		m.game = &gameModel
	}

	if m.game.BackToMenu() {
		// Dropping the model discards every pending tick-derived delay.
		m.game = nil
		m.menu = NewMenuModel(m.store, m.tracker, m.config)
		return m, nil
	}

	if m.game.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// updateScores handles updates when viewing the scoreboard. The session
// owns the tick loop while the scoreboard is up: toasts keep expiring and
// the loop survives until the menu or a game takes it back.
func (m SessionModel) updateScores(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		m.tracker.Toasts().Expire(time.Now())
		return m, tickCmd(m.config.TickRate)
	}

	newModel, cmd := m.scores.Update(msg)
	if scoresModel, ok := newModel.(ScoreboardModel); ok {
		m.scores = &scoresModel
	}

	if m.scores.IsGoingBack() {
		m.scores = nil
		m.menu = NewMenuModel(m.store, m.tracker, m.config)
		// Swallow the scoreboard's quit command
		return m, nil
	}

	if m.scores.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.game != nil:
		return m.game.View()
	case m.scores != nil:
		return m.scores.View()
	default:
		return m.menu.View()
	}
}

// RunSession starts the full menu/game session in one program and records
// a session summary on exit.
func RunSession(store *storage.Store, cfg core.RuntimeConfig) error {
	startedAt := time.Now()
	model := NewSessionModel(store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if final, ok := finalModel.(SessionModel); ok {
		saveSession(store, final.Tracker(), startedAt)
	}
	return nil
}
