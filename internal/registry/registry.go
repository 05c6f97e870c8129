// Package registry provides a global registry for game factories.
// Games register themselves in init() functions, allowing the platform
// to discover and instantiate games without hardcoded dependencies.
package registry

import (
	"fmt"
	"sort"
	"sync"

	"github.com/aucoeur/love-arcade/internal/core"
)

// Game is the core interface that all arcade games must implement.
// Games contain pure logic with no external dependencies (especially no
// Bubble Tea). The platform handles input mapping, timing, and rendering,
// and forwards emitted events to the shared progression tracker.
type Game interface {
	// ID returns a unique identifier for this game (e.g., "memory", "quiz").
	// Used for CLI commands and score storage.
	ID() string

	// Title returns a human-readable name for display (e.g., "Love Memory").
	Title() string

	// Reset initializes or resets the game state.
	// Called once at start and again when restarting after completion.
	// The RuntimeConfig provides screen dimensions and RNG seed.
	Reset(cfg core.RuntimeConfig)

	// Step advances the simulation by one fixed tick.
	// Input is abstracted to platform-level actions (Confirm, Favorite, etc.).
	// Returns the result of this tick including state and emitted events.
	Step(in core.InputFrame) core.StepResult

	// Render draws the current game state into the provided screen buffer.
	// Games clear the buffer themselves before drawing.
	Render(dst *core.Screen)

	// State returns the current game state (score, game over, prompts).
	State() core.GameState
}

// TextReceiver is implemented by games that collect free-form text.
// A game requests input by returning a non-empty GameState.TextPrompt;
// the platform collects a line and delivers it here. An empty string
// means the player cancelled the prompt.
type TextReceiver interface {
	SubmitText(text string)
}

// PointerHandler is implemented by games that consume mouse input.
// Coordinates are screen cells. The platform forwards press, motion
// and release events while the game is active.
type PointerHandler interface {
	PointerDown(x, y int)
	PointerMove(x, y int)
	PointerUp()
}

// Confirmer is implemented by games that need a yes/no decision.
// A game requests one by returning a non-empty GameState.ConfirmPrompt.
type Confirmer interface {
	Confirm(yes bool)
}

// GameInfo contains metadata about a registered game.
type GameInfo struct {
	ID    string
	Title string
}

// Factory is a function that creates a new instance of a game.
type Factory func() Game

var (
	factories = make(map[string]Factory)
	titles    = make(map[string]string)
	mu        sync.RWMutex
)

// Register adds a game factory to the registry.
// Typically called from a game's init() function.
// Panics if a game with the same ID is already registered.
func Register(id string, f Factory) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := factories[id]; exists {
		panic(fmt.Sprintf("registry: game %q already registered", id))
	}

	factories[id] = f

	// Get title by creating a temporary instance
	g := f()
	titles[id] = g.Title()
}

// List returns information about all registered games, sorted by ID.
func List() []GameInfo {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]GameInfo, 0, len(factories))
	for id := range factories {
		result = append(result, GameInfo{
			ID:    id,
			Title: titles[id],
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result
}

// Create instantiates a new game by its ID.
// Returns an error if the game ID is not registered.
func Create(id string) (Game, error) {
	mu.RLock()
	defer mu.RUnlock()

	f, ok := factories[id]
	if !ok {
		return nil, fmt.Errorf("registry: unknown game %q", id)
	}

	return f(), nil
}

// Exists checks if a game with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := factories[id]
	return ok
}
