package tui

import (
	"fmt"
	"strings"
	"time"

	bubbleprogress "github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/progress"
	"github.com/aucoeur/love-arcade/internal/registry"
	"github.com/aucoeur/love-arcade/internal/storage"
)

// MenuItem represents a selectable game in the menu.
type MenuItem struct {
	GameID string
	Title  string
	Icon   string
}

// menuIcons decorates the four games in the picker.
var menuIcons = map[string]string{
	"memory":   "🧠",
	"quiz":     "❓",
	"messages": "💌",
	"canvas":   "🎨",
}

// MenuModel is the Bubble Tea model for the game picker. It displays the
// shared progression header (points, level bar, streak) and live toasts.
type MenuModel struct {
	items          []MenuItem
	cursor         int
	width          int
	height         int
	store          *storage.Store
	tracker        *progress.Tracker
	levelBar       bubbleprogress.Model
	config         core.RuntimeConfig
	keyMapper      *KeyMapper
	quitting       bool
	selected       *MenuItem
	openScoreboard bool
}

// NewMenuModel creates a new menu model over the shared tracker.
func NewMenuModel(store *storage.Store, tracker *progress.Tracker, cfg core.RuntimeConfig) MenuModel {
	games := registry.List()
	items := make([]MenuItem, 0, len(games))
	for _, g := range games {
		items = append(items, MenuItem{
			GameID: g.ID,
			Title:  g.Title,
			Icon:   menuIcons[g.ID],
		})
	}

	bar := bubbleprogress.New(
		bubbleprogress.WithGradient("#FF69B4", "#9370DB"),
		bubbleprogress.WithWidth(30),
		bubbleprogress.WithoutPercentage(),
	)

	return MenuModel{
		items:     items,
		cursor:    0,
		width:     cfg.ScreenW,
		height:    cfg.ScreenH,
		store:     store,
		tracker:   tracker,
		levelBar:  bar,
		config:    cfg,
		keyMapper: NewKeyMapper(),
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	// Tick to expire toasts while idling on the menu.
	return tickCmd(m.config.TickRate)
}

// Update handles messages for the menu.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		return m, nil

	case TickMsg:
		m.tracker.Toasts().Expire(time.Now())
		return m, tickCmd(m.config.TickRate)
	}

	return m, nil
}

// handleKey processes keyboard input for menu navigation.
func (m MenuModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keyMapper.MapKeyToMenuAction(msg)

	switch action {
	case MenuActionQuit:
		m.quitting = true
		return m, tea.Quit

	case MenuActionUp:
		if m.cursor > 0 {
			m.cursor--
		}

	case MenuActionDown:
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}

	case MenuActionSelect:
		if len(m.items) > 0 {
			selected := m.items[m.cursor]
			m.selected = &selected
			return m, tea.Quit // Exit menu to start game
		}

	case MenuActionScoreboard:
		m.openScoreboard = true
		return m, tea.Quit // Exit menu to show scoreboard
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("205"))
	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("💕  L O V E   A R C A D E  💕"), m.width))
	b.WriteString("\n\n")

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	// Game list
	for i, item := range m.items {
		cursor := "  "
		style := lipgloss.NewStyle()
		if i == m.cursor {
			cursor = "❯ "
			style = style.Bold(true).Foreground(lipgloss.Color("205"))
		}

		line := fmt.Sprintf("%s%s %s", cursor, item.Icon, item.Title)
		b.WriteString(centerText(style.Render(line), m.width))
		b.WriteString("\n")
	}

	// Live toasts
	if toasts := m.tracker.Toasts().Items(); len(toasts) > 0 {
		b.WriteString("\n")
		toastStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
		for _, a := range toasts {
			b.WriteString(centerText(toastStyle.Render(a.Text), m.width))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(controls, m.width))
	b.WriteString("\n")

	return b.String()
}

// renderHeader draws the shared progression summary with the level bar.
func (m MenuModel) renderHeader() string {
	stats := fmt.Sprintf("%s   💰 %d pts   🔥 %d day streak",
		m.tracker.Name(), m.tracker.Points(), m.tracker.Streak())

	bar := fmt.Sprintf("Lv%d %s Lv%d",
		m.tracker.Level(),
		m.levelBar.ViewAs(m.tracker.LevelProgress()),
		m.tracker.Level()+1)

	return centerText(stats, m.width) + "\n" + centerText(bar, m.width)
}

// Selected returns the selected menu item, or nil if none selected.
func (m MenuModel) Selected() *MenuItem {
	return m.selected
}

// IsQuitting returns true if user requested to quit.
func (m MenuModel) IsQuitting() bool {
	return m.quitting
}

// WantsScoreboard returns true if user requested scoreboard.
func (m MenuModel) WantsScoreboard() bool {
	return m.openScoreboard
}

// Config returns the current runtime config (may have been updated by resize).
func (m MenuModel) Config() core.RuntimeConfig {
	return m.config
}

// centerText centers text within given width, ignoring ANSI styling noise
// only approximately (lipgloss renders its own padding for styled runs).
func centerText(text string, width int) string {
	plain := lipgloss.Width(text)
	if plain >= width {
		return text
	}
	padding := (width - plain) / 2
	return strings.Repeat(" ", padding) + text
}
