package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic behavior.
type RuntimeConfig struct {
	ScreenW    int    // Screen width in characters
	ScreenH    int    // Screen height in characters
	TickRate   int    // Simulation ticks per second (default 30)
	Seed       int64  // RNG seed for deterministic shuffles and placement
	PlayerName string // Display name shown in messages and result screens
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   30,
		Seed:       0, // 0 means use current time in platform layer
		PlayerName: "Mon Amour",
	}
}

// MillisToTicks converts a wall-clock delay in milliseconds to a tick count
// at the given tick rate. Always returns at least 1 so delayed transitions
// cannot fire on the same tick that armed them.
func MillisToTicks(tickRate, millis int) int {
	ticks := tickRate * millis / 1000
	if ticks < 1 {
		ticks = 1
	}
	return ticks
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Points earned in the current game session
	GameOver bool // Whether the session has reached a terminal state
	Paused   bool // Whether the game is paused

	// TextPrompt, when non-empty, asks the platform to collect a line of
	// text from the player and deliver it via registry.TextReceiver.
	TextPrompt string

	// ConfirmPrompt, when non-empty, asks the platform to collect a yes/no
	// decision and deliver it via registry.Confirmer.
	ConfirmPrompt string
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State  GameState
	Events []Event
}
