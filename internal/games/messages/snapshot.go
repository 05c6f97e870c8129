package messages

// Snapshot captures the observable game state for tests.
type Snapshot struct {
	Tick      uint64
	Category  Category
	Index     int
	ListLen   int
	Custom    int
	Favorites int
	Points    int
	Composing bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Category:  g.category,
		Index:     g.index,
		ListLen:   len(g.all()),
		Custom:    len(g.custom),
		Favorites: len(g.favorites),
		Points:    g.points,
		Composing: g.composing,
	}
}
