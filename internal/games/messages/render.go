package messages

import (
	"fmt"

	"github.com/aucoeur/love-arcade/internal/core"
)

var categoryIcons = map[Category]string{
	CategoryMorning:  "🌅",
	CategoryRomantic: "💕",
	CategoryEvening:  "🌙",
	CategoryFunny:    "😄",
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCenteredColored(1, "Love Messages 💌", core.ColorPink)
	g.renderCategoryRow(dst)

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, "PAUSED", core.ColorYellow)
		return
	}

	g.renderMessage(dst)
	g.renderStats(dst)

	hint := "←/→: browse  F: favorite  N: write  X: share  1-4: category  Esc: menu"
	if g.composing {
		hint = "Type your message, Enter to add, Esc to cancel"
	}
	dst.DrawTextCenteredColored(dst.Height()-2, hint, core.ColorGray)
}

// renderCategoryRow draws the category selector line.
func (g *Game) renderCategoryRow(dst *core.Screen) {
	row := ""
	for i, c := range categories {
		label := fmt.Sprintf("[%d]%s %s", i+1, categoryIcons[c], c)
		if c == g.category {
			label = fmt.Sprintf("[%d]%s *%s*", i+1, categoryIcons[c], c)
		}
		if i > 0 {
			row += "  "
		}
		row += label
	}
	dst.DrawTextCentered(3, row)
}

// renderMessage draws the boxed current message with its favorite mark.
func (g *Game) renderMessage(dst *core.Screen) {
	all := g.all()
	boxW := core.Min(dst.Width()-4, 64)
	boxX := (dst.Width() - boxW) / 2
	dst.DrawBox(core.NewRect(boxX, 6, boxW, 7))

	heart := "🤍"
	if g.favorites[g.index] {
		heart = "❤️"
	}
	dst.DrawText(boxX+boxW-4, 6, heart)

	text := g.current()
	if text == "" {
		text = "No messages in this category yet."
	}
	g.renderWrapped(dst, text, boxX+2, 8, boxW-4)

	if g.index >= len(g.builtins()) && len(all) > 0 {
		dst.DrawTextColored(boxX+2, 11, "✎ yours", core.ColorCyan)
	}
}

// renderWrapped draws text word-wrapped inside a width, up to 3 lines.
func (g *Game) renderWrapped(dst *core.Screen, text string, x, y, width int) {
	line := ""
	row := y
	for _, word := range splitWords(text) {
		candidate := word
		if line != "" {
			candidate = line + " " + word
		}
		if len([]rune(candidate)) > width && line != "" {
			dst.DrawText(x, row, line)
			row++
			if row > y+2 {
				return
			}
			line = word
			continue
		}
		line = candidate
	}
	if line != "" {
		dst.DrawText(x, row, line)
	}
}

// splitWords splits on spaces without pulling in strings.Fields churn for
// the common single-space case.
func splitWords(s string) []string {
	var words []string
	start := -1
	for i, r := range s {
		if r == ' ' {
			if start >= 0 {
				words = append(words, s[start:i])
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		words = append(words, s[start:])
	}
	return words
}

// renderStats draws the position and session counters.
func (g *Game) renderStats(dst *core.Screen) {
	all := g.all()
	pos := fmt.Sprintf("Message %d/%d", g.index+1, len(all))
	if len(all) == 0 {
		pos = "Message 0/0"
	}

	extras := ""
	if n := g.customCount(); n > 0 {
		extras += fmt.Sprintf("   %d custom ✎", n)
	}
	if n := len(g.favorites); n > 0 {
		extras += fmt.Sprintf("   %d favorites ❤️", n)
	}

	dst.DrawTextCentered(14, pos+extras)
	dst.DrawTextCentered(15, fmt.Sprintf("Points: %d", g.points))
}
