package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/progress"
	"github.com/aucoeur/love-arcade/internal/registry"
	"github.com/aucoeur/love-arcade/internal/storage"
)

// GameModel is the Bubble Tea model for running a single game inside the
// progression shell. The shared tracker outlives the game: points, level,
// streak, and toasts carry across game switches.
type GameModel struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	tracker    *progress.Tracker
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	logger     *log.Logger

	textInput  textinput.Model
	typing     bool
	confirming bool

	quitting   bool
	backToMenu bool
	scoreSaved bool
}

// NewGameModel creates a new model for the given game, reporting into the
// given tracker.
func NewGameModel(game registry.Game, store *storage.Store, tracker *progress.Tracker, cfg core.RuntimeConfig) GameModel {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	ti := textinput.New()
	ti.CharLimit = 200
	ti.Width = 50

	game.Reset(cfg)

	return GameModel{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		tracker:    tracker,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		logger:     log.NewWithOptions(os.Stderr, log.Options{Prefix: "lovearcade"}),
		textInput:  ti,
	}
}

// Init starts the tick loop. The game itself is reset in NewGameModel so
// the session can activate a game without spawning a second loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input. Prompt overlays swallow all keys.
func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.typing {
		return m.handleTypingKey(msg)
	}
	if m.confirming {
		return m.handleConfirmKey(msg)
	}

	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit
	case "ctrl+s":
		m.saveScreenshot()
		return m, nil
	case "esc", "b":
		m.backToMenu = true
		return m, nil
	}

	m.keyMapper.MapKeyToFrame(msg, &m.inputFrame)
	return m, nil
}

// handleTypingKey drives the text prompt overlay.
func (m GameModel) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.closePrompt("")
		return m, nil
	case "enter":
		m.closePrompt(m.textInput.Value())
		return m, nil
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

// closePrompt delivers the prompt result (empty string cancels) and tears
// down the overlay.
func (m *GameModel) closePrompt(text string) {
	if tr, ok := m.game.(registry.TextReceiver); ok {
		tr.SubmitText(text)
	}
	m.typing = false
	m.textInput.Reset()
	m.textInput.Blur()
}

// handleConfirmKey drives the yes/no overlay.
func (m GameModel) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	answer := false
	switch msg.String() {
	case "y", "enter":
		answer = true
	case "n", "esc":
		answer = false
	case "ctrl+c":
		m.quitting = true
		return m, tea.Quit
	default:
		return m, nil
	}

	if c, ok := m.game.(registry.Confirmer); ok {
		c.Confirm(answer)
	}
	m.confirming = false
	return m, nil
}

// handleMouse forwards pointer events to games that take them.
func (m *GameModel) handleMouse(msg tea.MouseMsg) {
	ph, ok := m.game.(registry.PointerHandler)
	if !ok || m.typing || m.confirming {
		return
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonLeft {
			ph.PointerDown(msg.X, msg.Y)
		}
	case tea.MouseActionMotion:
		ph.PointerMove(msg.X, msg.Y)
	case tea.MouseActionRelease:
		ph.PointerUp()
	}
}

// handleResize processes window resize events.
func (m GameModel) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)

	// Reinitialize game with new dimensions if needed
	if !m.gameState.GameOver {
		m.game.Reset(m.config)
	}

	return m, nil
}

// handleTick processes simulation ticks.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	now := time.Now()

	// Check for restart
	if m.inputFrame.Has(core.ActionRestart) && m.gameState.GameOver {
		m.config.Seed = now.UnixNano()
		m.game.Reset(m.config)
		m.gameState = m.game.State()
		m.scoreSaved = false
		m.inputFrame.Clear()
		return m, tickCmd(m.config.TickRate)
	}

	result := m.game.Step(m.inputFrame)
	m.gameState = result.State
	m.applyEvents(result.Events, now)

	// Calendar upkeep: same-day calls are no-ops, a date change mid-play
	// updates the streak.
	m.tracker.RecordVisit(now)
	m.tracker.Toasts().Expire(now)

	// Prompt overlays requested by the game
	if m.gameState.TextPrompt != "" && !m.typing {
		m.typing = true
		m.textInput.Placeholder = m.gameState.TextPrompt
		m.textInput.Focus()
	}
	m.confirming = m.gameState.ConfirmPrompt != ""

	// Save score on game over (once)
	if m.gameState.GameOver && !m.scoreSaved && m.gameState.Score > 0 {
		if m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(m.game.ID(), m.tracker.Name(), m.gameState.Score)
		}
		m.scoreSaved = true
	}

	m.inputFrame.Clear()
	return m, tickCmd(m.config.TickRate)
}

// applyEvents feeds game events into the progression shell: point deltas,
// achievement toasts, sound cues, and share requests.
func (m *GameModel) applyEvents(events []core.Event, now time.Time) {
	for _, ev := range events {
		if ev.Points > 0 {
			m.tracker.Award(ev.Points, now)
		}
		if ev.Message != "" {
			m.tracker.Toasts().Push(ev.Message, now)
		}
		if ev.Sound != "" {
			m.logger.Debug("sound", "cue", ev.Sound)
		}
		if ev.Share != "" {
			m.share(ev.Share, now)
		}
	}
}

// share appends text to the share file. Best-effort: failure is a silent
// no-op, success gets an informational toast.
func (m *GameModel) share(text string, now time.Time) {
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".lovearcade")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return
	}

	path := filepath.Join(dir, "shared.txt")
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "[%s] %s\n", now.Format("2006-01-02 15:04"), text); err != nil {
		return
	}
	m.tracker.Toasts().Push("Message shared! 💌", now)
}

// saveScreenshot saves the current screen to a file.
func (m *GameModel) saveScreenshot() {
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".lovearcade", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, game continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the game with the progression header and toast overlay.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	m.overlayHeader()
	m.overlayToasts()

	view := RenderScreen(m.screen)

	if m.typing {
		view += "\n " + m.gameState.TextPrompt + "\n " + m.textInput.View()
	}
	if m.confirming {
		view += "\n " + m.gameState.ConfirmPrompt + " (y/n)"
	}
	return view
}

// overlayHeader draws the shared progression line on the top row.
func (m GameModel) overlayHeader() {
	header := fmt.Sprintf("%s  💰%d  Lv%d  🔥%dd",
		m.tracker.Name(), m.tracker.Points(), m.tracker.Level(), m.tracker.Streak())
	m.screen.DrawTextColored(1, 0, header, core.ColorPink)
}

// overlayToasts draws live achievements right-aligned under the header.
func (m GameModel) overlayToasts() {
	for i, a := range m.tracker.Toasts().Items() {
		x := core.Max(0, m.screen.Width()-len([]rune(a.Text))-2)
		m.screen.DrawTextColored(x, 1+i, a.Text, core.ColorBrightYellow)
	}
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a standalone Bubble Tea program for a single game.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig) error {
	now := time.Now()
	tracker := progress.NewTracker(cfg.PlayerName, now)
	model := NewGameModel(game, store, tracker, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(), // Canvas consumes mouse drag
	)

	_, err := p.Run()
	saveSession(store, tracker, now)
	return err
}

// saveSession records the end-of-session progression summary.
func saveSession(store *storage.Store, tracker *progress.Tracker, startedAt time.Time) {
	if store == nil || tracker.Points() == 0 {
		return
	}
	//nolint:errcheck // Best-effort history write
	store.SaveSession(storage.SessionEntry{
		Player:   tracker.Name(),
		Points:   tracker.Points(),
		Level:    tracker.Level(),
		Streak:   tracker.Streak(),
		Duration: int(time.Since(startedAt).Seconds()),
	})
}
