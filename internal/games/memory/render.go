package memory

import (
	"fmt"

	"github.com/aucoeur/love-arcade/internal/core"
)

// Visual constants for the card grid.
const (
	cardBack  = "💝"
	cellW     = 6 // Horizontal spacing per card (emoji are double-width)
	cellH     = 2
	gridTop   = 6
	statusRow = 4
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCenteredColored(1, "Love Memory 💕", core.ColorPink)

	g.renderDifficultyRow(dst)

	tier := tierFor(g.cfg, g.difficulty)
	stats := fmt.Sprintf("Moves: %d   Points: %d   Pairs: %d/%d",
		g.moves, g.score, g.matchedCount()/2, tier.Pairs)
	dst.DrawTextCentered(statusRow, stats)

	g.renderGrid(dst)

	if g.complete {
		g.renderComplete(dst)
	} else if g.paused {
		dst.DrawTextCenteredColored(dst.Height()-3, "PAUSED", core.ColorYellow)
	} else {
		dst.DrawTextCenteredColored(dst.Height()-2,
			"Arrows: move  Enter: flip  1/2/3: difficulty  P: pause  Esc: menu", core.ColorGray)
	}
}

// renderDifficultyRow draws the difficulty selector line.
func (g *Game) renderDifficultyRow(dst *core.Screen) {
	row := ""
	for i, d := range []Difficulty{DifficultyEasy, DifficultyMedium, DifficultyHard} {
		label := fmt.Sprintf("[%d] %s", i+1, d)
		if d == g.difficulty {
			label = fmt.Sprintf("[%d]*%s*", i+1, d)
		}
		if i > 0 {
			row += "   "
		}
		row += label
	}
	dst.DrawTextCentered(2, row)
}

// renderGrid draws the card grid with the cursor highlighted.
func (g *Game) renderGrid(dst *core.Screen) {
	cols := columnsFor(g.difficulty)
	gridW := cols * cellW
	left := core.Max(0, (dst.Width()-gridW)/2)

	for i := range g.cards {
		x := left + (i%cols)*cellW
		y := gridTop + (i/cols)*cellH

		face := cardBack
		color := core.ColorMagenta
		switch {
		case g.cards[i].Matched:
			face = g.cards[i].Symbol
			color = core.ColorGreen
		case g.isFlipped(i):
			face = g.cards[i].Symbol
			color = core.ColorPink
		}

		cell := fmt.Sprintf(" %s ", face)
		if i == g.cursor && !g.complete {
			cell = fmt.Sprintf("[%s]", face)
			if color == core.ColorMagenta {
				color = core.ColorBrightWhite
			}
		}
		dst.DrawTextColored(x, y, cell, color)
	}
}

// renderComplete draws the completion banner with a performance line
// tiered by how close the move count came to the theoretical minimum.
func (g *Game) renderComplete(dst *core.Screen) {
	tier := tierFor(g.cfg, g.difficulty)

	perf := "Well played! 😊"
	switch {
	case g.moves <= tier.Pairs+2:
		perf = "Exceptional performance! 🏆"
	case float64(g.moves) <= float64(tier.Pairs)*1.5:
		perf = "Very well played! ⭐"
	}

	y := gridTop + (len(g.cards)/columnsFor(g.difficulty)+1)*cellH
	dst.DrawTextCenteredColored(y, fmt.Sprintf("🎉 Bravo %s!", g.runtime.PlayerName), core.ColorGreen)
	dst.DrawTextCentered(y+1, fmt.Sprintf("+%d points in %d moves", g.score, g.moves))
	dst.DrawTextCentered(y+2, perf)
	dst.DrawTextCenteredColored(y+4, "R: play again  Esc: menu", core.ColorGray)
}
