package memory

import (
	"strings"
	"testing"

	"github.com/aucoeur/love-arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:    80,
		ScreenH:    24,
		TickRate:   10,
		Seed:       12345,
		PlayerName: "Mon Amour",
	}
}

// stepUntilResolved drives empty ticks through the resolution delay and
// returns every event emitted on the way.
func stepUntilResolved(t *testing.T, g *Game) []core.Event {
	t.Helper()

	var events []core.Event
	in := core.NewInputFrame()
	for i := 0; i < core.MillisToTicks(g.runtime.TickRate, ResolveDelayMillis)+1; i++ {
		res := g.Step(in)
		events = append(events, res.Events...)
		if g.resolveTicks == 0 {
			return events
		}
	}
	t.Fatal("resolution never completed")
	return nil
}

// pairIDs returns the IDs of the two cards carrying each symbol.
func pairIDs(g *Game) map[string][]int {
	pairs := make(map[string][]int)
	for _, c := range g.cards {
		pairs[c.Symbol] = append(pairs[c.Symbol], c.ID)
	}
	return pairs
}

func TestBoardComposition(t *testing.T) {
	tests := []struct {
		difficulty Difficulty
		pairs      int
	}{
		{DifficultyEasy, 6},
		{DifficultyMedium, 8},
		{DifficultyHard, 10},
	}

	for _, tt := range tests {
		g := New()
		g.difficulty = tt.difficulty
		g.Reset(testConfig())

		if len(g.cards) != tt.pairs*2 {
			t.Errorf("%s: board size = %d, want %d", tt.difficulty, len(g.cards), tt.pairs*2)
		}

		for symbol, ids := range pairIDs(g) {
			if len(ids) != 2 {
				t.Errorf("%s: symbol %s appears %d times, want 2", tt.difficulty, symbol, len(ids))
			}
		}
	}
}

func TestShuffleDeterminism(t *testing.T) {
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	for i := range g1.cards {
		if g1.cards[i].Symbol != g2.cards[i].Symbol {
			t.Fatalf("boards differ at %d for equal seeds: %s vs %s",
				i, g1.cards[i].Symbol, g2.cards[i].Symbol)
		}
	}
}

func TestFlipGuards(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.flip(0)
	if len(g.flipped) != 1 {
		t.Fatalf("flipped = %d, want 1", len(g.flipped))
	}

	// Same card again is a no-op.
	g.flip(0)
	if len(g.flipped) != 1 {
		t.Errorf("re-flipping a face-up card changed state: flipped = %d", len(g.flipped))
	}

	// Second card arms resolution; a third flip must be ignored.
	g.flip(1)
	if g.resolveTicks == 0 {
		t.Fatal("second flip did not arm resolution")
	}
	g.flip(2)
	if len(g.flipped) != 2 {
		t.Errorf("flip during resolution changed state: flipped = %d", len(g.flipped))
	}
	if g.moves != 1 {
		t.Errorf("moves = %d, want 1", g.moves)
	}
}

func TestMatchAwardsPoints(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	var ids []int
	for _, pair := range pairIDs(g) {
		ids = pair
		break
	}

	g.flip(ids[0])
	g.flip(ids[1])
	events := stepUntilResolved(t, g)

	if !g.cards[ids[0]].Matched || !g.cards[ids[1]].Matched {
		t.Error("matching cards were not marked matched")
	}
	if g.score != 10 {
		t.Errorf("score = %d, want 10 for easy", g.score)
	}

	total := 0
	for _, e := range events {
		total += e.Points
	}
	if total != 10 {
		t.Errorf("emitted point delta = %d, want 10", total)
	}
}

func TestMismatchFlipsBack(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Find two cards with different symbols.
	a := 0
	b := -1
	for i := 1; i < len(g.cards); i++ {
		if g.cards[i].Symbol != g.cards[a].Symbol {
			b = i
			break
		}
	}
	if b < 0 {
		t.Fatal("no mismatching pair on board")
	}

	g.flip(a)
	g.flip(b)
	events := stepUntilResolved(t, g)

	if g.cards[a].Matched || g.cards[b].Matched {
		t.Error("mismatching cards were marked matched")
	}
	if len(g.flipped) != 0 {
		t.Errorf("cards not returned face-down: flipped = %d", len(g.flipped))
	}
	if g.score != 0 {
		t.Errorf("score = %d, want 0 after mismatch", g.score)
	}
	for _, e := range events {
		if e.Points != 0 {
			t.Errorf("mismatch emitted points: %+v", e)
		}
	}
}

func TestCompletionEmitsAchievement(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	var all []core.Event
	for _, pair := range pairIDs(g) {
		g.flip(pair[0])
		g.flip(pair[1])
		all = append(all, stepUntilResolved(t, g)...)
	}

	if !g.complete {
		t.Fatal("game not complete after matching every pair")
	}
	if !g.State().GameOver {
		t.Error("State().GameOver = false on completed board")
	}

	found := false
	for _, e := range all {
		if strings.Contains(e.Message, "moves") {
			found = true
		}
	}
	if !found {
		t.Error("no completion achievement naming the move count")
	}
}

func TestDifficultySwitchDiscardsBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.flip(0)
	in := core.NewInputFrame()
	in.Set(core.ActionSlot2)
	g.Step(in)

	if g.difficulty != DifficultyMedium {
		t.Fatalf("difficulty = %s, want medium", g.difficulty)
	}
	if len(g.cards) != 16 {
		t.Errorf("board size = %d, want 16", len(g.cards))
	}
	if len(g.flipped) != 0 || g.moves != 0 || g.score != 0 {
		t.Error("switching difficulty did not reset session state")
	}
}

func TestSnapshotPhases(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if got := g.Snapshot().Phase; got != PhaseIdle {
		t.Errorf("initial phase = %s, want idle", got)
	}

	g.flip(0)
	if got := g.Snapshot().Phase; got != PhaseOneFlipped {
		t.Errorf("phase after one flip = %s, want one_flipped", got)
	}

	g.flip(1)
	if got := g.Snapshot().Phase; got != PhaseResolving {
		t.Errorf("phase after two flips = %s, want resolving", got)
	}
}
