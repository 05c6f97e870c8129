package canvas

import (
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aucoeur/love-arcade/internal/core"
)

// Kind distinguishes emoji stamps from free text.
type Kind string

const (
	KindEmoji Kind = "emoji"
	KindText  Kind = "text"
)

// Size and rotation limits for canvas elements.
const (
	MinSize      = 16
	MaxSize      = 48
	DefaultBrush = 32
	TextSize     = 16
	RotationStep = 45
)

// Element is a single placed item on the canvas. X and Y are cell
// coordinates local to the canvas area, clamped so the footprint stays
// inside the bounds.
type Element struct {
	ID       uuid.UUID
	Kind     Kind
	Content  string
	X, Y     int
	Size     int
	Color    string // hex, text elements only
	Rotation int    // degrees, wraps at 360
}

// Width returns the element's horizontal cell footprint. Emoji render
// double-width; text takes one cell per rune.
func (e Element) Width() int {
	if e.Kind == KindEmoji {
		return 2
	}
	return core.Max(1, utf8.RuneCountInString(e.Content))
}

// Height returns the element's vertical cell footprint.
func (e Element) Height() int {
	return 1
}

// contains reports whether a canvas-local point hits the element.
func (e Element) contains(x, y int) bool {
	return y == e.Y && x >= e.X && x < e.X+e.Width()
}
