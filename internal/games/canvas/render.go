package canvas

import (
	"fmt"

	"github.com/aucoeur/love-arcade/internal/core"
)

// colorFor approximates a palette hex color with a terminal color.
var colorFor = map[string]core.Color{
	"#FF69B4": core.ColorPink,
	"#FF1493": core.ColorBrightMagenta,
	"#DC143C": core.ColorRed,
	"#B22222": core.ColorRed,
	"#FF6347": core.ColorBrightRed,
	"#FF8C00": core.ColorYellow,
	"#FFD700": core.ColorBrightYellow,
	"#ADFF2F": core.ColorBrightGreen,
	"#00CED1": core.ColorCyan,
	"#1E90FF": core.ColorBrightBlue,
	"#9370DB": core.ColorMagenta,
	"#BA55D3": core.ColorBrightMagenta,
	"#E75480": core.ColorPink,
	"#FFF0F5": core.ColorBrightWhite,
	"#FFEBCD": core.ColorWhite,
	"#F0E68C": core.ColorBrightYellow,
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCenteredColored(1, "Creative Canvas 🎨", core.ColorPink)
	g.renderPalette(dst)

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, "PAUSED", core.ColorYellow)
		return
	}

	if g.focus == focusGallery {
		g.renderGallery(dst)
		return
	}

	g.renderCanvas(dst)
	g.renderStatus(dst)
}

// renderPalette draws a window of the emoji and color rows around the
// current picks.
func (g *Game) renderPalette(dst *core.Screen) {
	marker := func(row int) string {
		if g.focus == focusPalette && g.paletteRow == row {
			return "▶"
		}
		return " "
	}

	emojis := paletteWindow(g.cfg.Emojis, g.emojiIdx, 8)
	row := marker(0) + " stamp: "
	for i, e := range emojis {
		if i == len(emojis)/2 {
			row += "[" + e + "]"
		} else {
			row += " " + e + " "
		}
	}
	dst.DrawText(canvasLeft, 2, row)

	colors := paletteWindow(g.cfg.Colors, g.colorIdx, 8)
	crow := marker(1) + " ink:   "
	x := canvasLeft
	dst.DrawText(x, 3, crow)
	x += len([]rune(crow))
	for i, c := range colors {
		swatch := " ██ "
		if i == len(colors)/2 {
			swatch = "[██]"
		}
		dst.DrawTextColored(x, 3, swatch, colorFor[c])
		x += 4
	}
}

// paletteWindow returns up to n entries centered on idx, wrapping.
func paletteWindow(items []string, idx, n int) []string {
	if len(items) <= n {
		return items
	}
	out := make([]string, 0, n)
	for i := -n / 2; i < n-n/2; i++ {
		out = append(out, items[((idx+i)%len(items)+len(items))%len(items)])
	}
	return out
}

// renderCanvas draws the bordered surface and every element on it.
func (g *Game) renderCanvas(dst *core.Screen) {
	dst.DrawBox(core.NewRect(canvasLeft, canvasTop, g.canvasW+2, g.canvasH+2))

	for i, e := range g.elements {
		x := canvasLeft + 1 + e.X
		y := canvasTop + 1 + e.Y

		color := core.ColorDefault
		if e.Kind == KindText {
			color = colorFor[e.Color]
		}
		if i == g.selected && g.focus == focusCanvas {
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(x, y, e.Content, color)
	}
}

// renderStatus draws the selection info and key hints.
func (g *Game) renderStatus(dst *core.Screen) {
	y := canvasTop + g.canvasH + 2

	info := fmt.Sprintf("Elements: %d   Saved: %d   Points: %d",
		len(g.elements), len(g.gallery), g.points)
	if g.selected >= 0 && g.selected < len(g.elements) {
		e := g.elements[g.selected]
		info += fmt.Sprintf("   ▸ %s size=%d rot=%d°", e.Content, e.Size, e.Rotation)
	}
	dst.DrawTextCentered(y, info)

	hint := "M: palette/canvas  Enter: stamp  N: text  Tab: select  R: rotate  +/-: size  D: delete  V: save  G: gallery  X: clear"
	if g.composing {
		hint = "Type your text, Enter to place, Esc to cancel"
	}
	dst.DrawTextCenteredColored(dst.Height()-2, hint, core.ColorGray)
}

// renderGallery lists saved creations with the cursor row highlighted.
func (g *Game) renderGallery(dst *core.Screen) {
	dst.DrawTextCenteredColored(canvasTop, "Saved Creations 🖼", core.ColorBrightWhite)

	if len(g.gallery) == 0 {
		dst.DrawTextCentered(canvasTop+2, "Nothing saved yet. V saves the canvas.")
	}
	for i, c := range g.gallery {
		line := fmt.Sprintf("  %s  (%d elements)", c.Title, c.Count)
		color := core.ColorWhite
		if i == g.galleryIdx {
			line = "▶" + line[1:]
			color = core.ColorCyan
		}
		dst.DrawTextColored(canvasLeft, canvasTop+2+i, line, color)
	}

	dst.DrawTextCenteredColored(dst.Height()-2,
		"←/→: browse  Enter: load  G: back", core.ColorGray)
}
