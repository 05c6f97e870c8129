package memory

// Phase identifies where the flip state machine currently is.
type Phase string

const (
	PhaseIdle       Phase = "idle"
	PhaseOneFlipped Phase = "one_flipped"
	PhaseResolving  Phase = "resolving"
	PhaseComplete   Phase = "complete"
)

// Snapshot captures the observable game state for tests.
type Snapshot struct {
	Tick       uint64
	Difficulty Difficulty
	Phase      Phase
	Moves      int
	Score      int
	Flipped    int // face-up cards outside the matched set
	Matched    int
	BoardSize  int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseIdle
	switch {
	case g.complete:
		phase = PhaseComplete
	case g.resolveTicks > 0:
		phase = PhaseResolving
	case len(g.flipped) == 1:
		phase = PhaseOneFlipped
	}

	return Snapshot{
		Tick:       g.tick,
		Difficulty: g.difficulty,
		Phase:      phase,
		Moves:      g.moves,
		Score:      g.score,
		Flipped:    len(g.flipped),
		Matched:    g.matchedCount(),
		BoardSize:  len(g.cards),
	}
}
