package quiz

// Phase identifies where the quiz state machine currently is.
type Phase string

const (
	PhaseAnswering Phase = "answering"
	PhaseFeedback  Phase = "feedback"
	PhaseResult    Phase = "result"
)

// Snapshot captures the observable game state for tests.
type Snapshot struct {
	Tick     uint64
	Mode     Mode
	Phase    Phase
	Index    int
	TimeLeft int
	Selected int
	Correct  int
	Points   int
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhaseAnswering
	switch g.phase {
	case phaseFeedback:
		phase = PhaseFeedback
	case phaseResult:
		phase = PhaseResult
	}

	return Snapshot{
		Tick:     g.tick,
		Mode:     g.mode,
		Phase:    phase,
		Index:    g.index,
		TimeLeft: g.timeLeft,
		Selected: g.selected,
		Correct:  g.correct,
		Points:   g.points,
	}
}
