package canvas

// Snapshot captures the observable game state for tests.
type Snapshot struct {
	Tick       uint64
	Elements   int
	Selected   int
	Gallery    int
	Points     int
	Composing  bool
	Confirming bool
	Dragging   bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:       g.tick,
		Elements:   len(g.elements),
		Selected:   g.selected,
		Gallery:    len(g.gallery),
		Points:     g.points,
		Composing:  g.composing,
		Confirming: g.confirmingClear,
		Dragging:   g.dragIdx >= 0,
	}
}
