// Package memory implements the love-themed memory match game.
// The player flips pairs of face-down cards; matching symbols stay up and
// award points scaled by difficulty.
package memory

import (
	"fmt"
	"math/rand"

	"github.com/aucoeur/love-arcade/internal/config"
	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/registry"
)

// ResolveDelayMillis is how long both cards of a non-obvious pair stay
// visible before the match is evaluated.
const ResolveDelayMillis = 1200

// Package-level variables for config, set by the cmd layer before creation.
var configPath string

// SetConfigPath sets a custom YAML config path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the memory match state machine.
type Game struct {
	cfg     config.MemoryConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	difficulty Difficulty
	cards      []Card
	flipped    []int // IDs of face-up, not-yet-matched cards (0..2)
	moves      int
	score      int

	resolveTicks int // countdown while two cards are being evaluated
	cursor       int
	paused       bool
	complete     bool
}

// New creates a new memory game at easy difficulty.
func New() *Game {
	return &Game{difficulty: DifficultyEasy}
}

func init() {
	registry.Register("memory", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "memory"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Love Memory"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	loaded, err := config.LoadMemory(configPath)
	if err != nil {
		// Embedded defaults always validate; a broken custom file falls
		// back to them rather than killing the session.
		loaded, _ = config.LoadMemory("")
	}
	g.cfg = loaded

	g.startBoard()
}

// startBoard builds a fresh shuffled board for the current difficulty and
// clears all per-session counters.
func (g *Game) startBoard() {
	tier := tierFor(g.cfg, g.difficulty)
	g.cards = buildBoard(tier, g.rng)
	g.flipped = g.flipped[:0]
	g.moves = 0
	g.score = 0
	g.resolveTicks = 0
	g.cursor = 0
	g.complete = false
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Difficulty switch discards the current board, but not mid-resolve.
	if slot := in.Slot(); slot >= 0 && slot <= 2 && g.resolveTicks == 0 {
		if d := []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard}[slot]; d != g.difficulty {
			g.difficulty = d
			g.startBoard()
			return core.StepResult{State: g.State()}
		}
	}

	// Pending resolution takes priority over new flips.
	if g.resolveTicks > 0 {
		g.resolveTicks--
		if g.resolveTicks == 0 {
			events = append(events, g.resolve()...)
		}
		return core.StepResult{State: g.State(), Events: events}
	}

	if g.complete {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(in)

	if in.Has(core.ActionConfirm) {
		events = append(events, g.flip(g.cursor)...)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// moveCursor navigates the card grid.
func (g *Game) moveCursor(in core.InputFrame) {
	cols := columnsFor(g.difficulty)
	switch {
	case in.Has(core.ActionLeft):
		g.cursor = core.Max(0, g.cursor-1)
	case in.Has(core.ActionRight):
		g.cursor = core.Min(len(g.cards)-1, g.cursor+1)
	case in.Has(core.ActionUp):
		if g.cursor-cols >= 0 {
			g.cursor -= cols
		}
	case in.Has(core.ActionDown):
		if g.cursor+cols < len(g.cards) {
			g.cursor += cols
		}
	}
}

// flip reveals the card with the given ID. No-op while resolving, on
// matched cards, on an already face-up card, or when two cards are
// already up. The second flip of a pair arms the resolution delay.
func (g *Game) flip(cardID int) []core.Event {
	if g.resolveTicks > 0 || cardID < 0 || cardID >= len(g.cards) {
		return nil
	}
	if g.cards[cardID].Matched || g.isFlipped(cardID) || len(g.flipped) >= 2 {
		return nil
	}

	g.flipped = append(g.flipped, cardID)
	events := []core.Event{core.SoundEvent("flip")}

	if len(g.flipped) == 2 {
		g.moves++
		g.resolveTicks = core.MillisToTicks(g.runtime.TickRate, ResolveDelayMillis)
	}
	return events
}

// resolve evaluates the two face-up cards after the reveal delay.
func (g *Game) resolve() []core.Event {
	if len(g.flipped) != 2 {
		g.flipped = g.flipped[:0]
		return nil
	}

	a, b := g.flipped[0], g.flipped[1]
	g.flipped = g.flipped[:0]

	if g.cards[a].Symbol != g.cards[b].Symbol {
		return []core.Event{core.SoundEvent("nomatch")}
	}

	g.cards[a].Matched = true
	g.cards[b].Matched = true

	tier := tierFor(g.cfg, g.difficulty)
	g.score += tier.Points
	events := []core.Event{
		{Points: tier.Points, Sound: "match"},
	}

	if g.matchedCount() == len(g.cards) {
		g.complete = true
		events = append(events, core.Event{
			Message: fmt.Sprintf("Memory finished in %d moves! 🧠", g.moves),
		})
	}
	return events
}

// isFlipped reports whether the card is currently face-up outside the
// matched set.
func (g *Game) isFlipped(cardID int) bool {
	for _, id := range g.flipped {
		if id == cardID {
			return true
		}
	}
	return false
}

// matchedCount returns how many cards are matched.
func (g *Game) matchedCount() int {
	n := 0
	for _, c := range g.cards {
		if c.Matched {
			n++
		}
	}
	return n
}

// visible reports whether a card shows its symbol.
func (g *Game) visible(cardID int) bool {
	return g.cards[cardID].Matched || g.isFlipped(cardID)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.complete,
		Paused:   g.paused,
	}
}
