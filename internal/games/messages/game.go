// Package messages implements the love message gallery: curated
// categories plus session-authored messages, with favorites and sharing.
package messages

import (
	"strings"

	"github.com/aucoeur/love-arcade/internal/config"
	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/registry"
)

const (
	// MinCustomLength is the minimum trimmed length for an authored message.
	MinCustomLength = 5
	// MaxCustomLength caps authored message length.
	MaxCustomLength = 200

	// CustomAward is paid once per accepted authored message.
	CustomAward = 10
	// FavoriteAward is paid when a message gains favorite status.
	FavoriteAward = 2
)

// Category names a curated message list.
type Category string

const (
	CategoryMorning  Category = "morning"
	CategoryRomantic Category = "romantic"
	CategoryEvening  Category = "evening"
	CategoryFunny    Category = "funny"
)

var categories = []Category{CategoryMorning, CategoryRomantic, CategoryEvening, CategoryFunny}

var configPath string

// SetConfigPath sets a custom YAML config path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the message gallery.
type Game struct {
	cfg     config.MessagesConfig
	runtime core.RuntimeConfig
	tick    uint64

	category  Category
	index     int
	custom    []string // session-authored, newest first
	favorites map[int]bool
	points    int

	composing bool
	pending   []core.Event // produced by SubmitText, flushed on the next tick
	paused    bool
}

// New creates a new gallery on the morning category.
func New() *Game {
	return &Game{category: CategoryMorning}
}

func init() {
	registry.Register("messages", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "messages"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Love Messages"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0

	loaded, err := config.LoadMessages(configPath)
	if err != nil {
		loaded, _ = config.LoadMessages("")
	}
	g.cfg = loaded

	g.category = CategoryMorning
	g.index = 0
	g.custom = nil
	g.favorites = make(map[int]bool)
	g.points = 0
	g.composing = false
	g.pending = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	events := g.pending
	g.pending = nil

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.composing {
		return core.StepResult{State: g.State(), Events: events}
	}

	if slot := in.Slot(); slot >= 0 && slot < len(categories) {
		g.selectCategory(categories[slot])
	}

	switch {
	case in.Has(core.ActionRight):
		g.next()
	case in.Has(core.ActionLeft):
		g.previous()
	}

	if in.Has(core.ActionCompose) {
		g.composing = true
	}
	if in.Has(core.ActionFavorite) {
		events = append(events, g.toggleFavorite(g.index)...)
	}
	if in.Has(core.ActionShare) {
		if text := g.current(); text != "" {
			events = append(events, core.Event{Share: text, Sound: "share"})
		}
	}

	return core.StepResult{State: g.State(), Events: events}
}

// selectCategory switches the active list and rewinds to its first message.
func (g *Game) selectCategory(c Category) {
	if c == g.category {
		return
	}
	g.category = c
	g.index = 0
}

// next advances the viewing index, wrapping at the end.
func (g *Game) next() {
	if n := len(g.all()); n > 0 {
		g.index = (g.index + 1) % n
	}
}

// previous rewinds the viewing index, wrapping at the start.
func (g *Game) previous() {
	if n := len(g.all()); n > 0 {
		g.index = (g.index - 1 + n) % n
	}
}

// SubmitText receives an authored message from the host text prompt.
// Too-short input is silently rejected.
func (g *Game) SubmitText(text string) {
	g.composing = false

	trimmed := strings.TrimSpace(text)
	if len([]rune(trimmed)) < MinCustomLength {
		return
	}
	if r := []rune(trimmed); len(r) > MaxCustomLength {
		trimmed = string(r[:MaxCustomLength])
	}

	g.custom = append([]string{trimmed}, g.custom...)
	g.points += CustomAward
	g.pending = append(g.pending, core.Event{
		Points:  CustomAward,
		Message: "Custom message created! +10 pts 📝",
		Sound:   "message",
	})
}

// toggleFavorite flips favorite membership for an index. Gaining favorite
// status pays; losing it does not.
func (g *Game) toggleFavorite(index int) []core.Event {
	if g.favorites[index] {
		delete(g.favorites, index)
		return nil
	}
	g.favorites[index] = true
	g.points += FavoriteAward
	return []core.Event{{Points: FavoriteAward, Sound: "favorite"}}
}

// all returns the active list: the category's built-ins followed by every
// session-authored message.
func (g *Game) all() []string {
	builtins := g.builtins()
	out := make([]string, 0, len(builtins)+len(g.custom))
	for _, m := range builtins {
		out = append(out, strings.ReplaceAll(m, "{name}", g.runtime.PlayerName))
	}
	return append(out, g.custom...)
}

// builtins returns the raw curated list for the active category.
func (g *Game) builtins() []string {
	switch g.category {
	case CategoryRomantic:
		return g.cfg.Romantic
	case CategoryEvening:
		return g.cfg.Evening
	case CategoryFunny:
		return g.cfg.Funny
	default:
		return g.cfg.Morning
	}
}

// current returns the message at the viewing index, or "" on an empty list.
func (g *Game) current() string {
	all := g.all()
	if g.index < 0 || g.index >= len(all) {
		return ""
	}
	return all[g.index]
}

// customCount returns how many messages were authored this session.
func (g *Game) customCount() int {
	return len(g.custom)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Score:  g.points,
		Paused: g.paused,
	}
	if g.composing {
		s.TextPrompt = "Write your own love message (min. 5 characters)"
	}
	return s
}
