package quiz

import (
	"fmt"
	"strings"

	"github.com/aucoeur/love-arcade/internal/core"
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	dst.DrawTextCenteredColored(1, "Couple Quiz ❓💕", core.ColorPink)
	g.renderModeRow(dst)

	if g.paused {
		dst.DrawTextCenteredColored(dst.Height()/2, "PAUSED", core.ColorYellow)
		return
	}

	switch g.phase {
	case phaseResult:
		g.renderResult(dst)
	default:
		g.renderQuestion(dst)
	}
}

// renderModeRow draws the mode selector line.
func (g *Game) renderModeRow(dst *core.Screen) {
	row := "[m] mode:  "
	for i, m := range []Mode{ModeRomantic, ModeFun} {
		label := string(m)
		if m == g.mode {
			label = "*" + label + "*"
		}
		if i > 0 {
			row += "   "
		}
		row += label
	}
	dst.DrawTextCentered(2, row)
}

// renderQuestion draws the prompt, timer bar, and answer options.
func (g *Game) renderQuestion(dst *core.Screen) {
	q := g.question()

	dst.DrawTextCentered(4, fmt.Sprintf("Question %d/%d   Correct: %d   Points: %d",
		g.index+1, len(g.questions), g.correct, g.points))

	g.renderTimer(dst, 6)
	dst.DrawTextCenteredColored(8, q.Prompt, core.ColorBrightWhite)

	for i, opt := range q.Options {
		y := 10 + i*2
		line := fmt.Sprintf("  %d. %s  ", i+1, opt)
		color := core.ColorWhite

		switch {
		case g.phase == phaseFeedback && i == q.Correct:
			line = fmt.Sprintf("✔ %d. %s  ", i+1, opt)
			color = core.ColorGreen
		case g.phase == phaseFeedback && i == g.selected:
			line = fmt.Sprintf("✘ %d. %s  ", i+1, opt)
			color = core.ColorRed
		case g.phase == phaseAnswering && i == g.cursor:
			line = fmt.Sprintf("> %d. %s <", i+1, opt)
			color = core.ColorCyan
		}
		dst.DrawTextCenteredColored(y, line, color)
	}

	if g.phase == phaseFeedback {
		g.renderFeedback(dst, 10+len(q.Options)*2+1)
	} else {
		dst.DrawTextCenteredColored(dst.Height()-2,
			"1-4 or Enter: answer  M: mode  P: pause  Esc: menu", core.ColorGray)
	}
}

// renderTimer draws the per-question countdown as a depleting bar.
func (g *Game) renderTimer(dst *core.Screen, y int) {
	const width = 30
	filled := g.timeLeft * width / QuestionTimeSeconds

	color := core.ColorGreen
	switch {
	case g.timeLeft <= 5:
		color = core.ColorRed
	case g.timeLeft <= 10:
		color = core.ColorYellow
	}

	bar := fmt.Sprintf("⏱ %2ds [%s%s]", g.timeLeft,
		strings.Repeat("█", filled), strings.Repeat("░", width-filled))
	dst.DrawTextCenteredColored(y, bar, color)
}

// renderFeedback draws the correct/incorrect banner with the question's
// feedback line.
func (g *Game) renderFeedback(dst *core.Screen, y int) {
	q := g.question()
	if g.selected == q.Correct {
		dst.DrawTextCenteredColored(y, fmt.Sprintf("Correct! +%d pts ⚡", timeBonus(g.timeLeft)), core.ColorGreen)
	} else if g.selected == NoAnswer {
		dst.DrawTextCenteredColored(y, "Time's up! ⏰", core.ColorRed)
	} else {
		dst.DrawTextCenteredColored(y, "Not quite! 💭", core.ColorRed)
	}
	dst.DrawTextCentered(y+1, q.Feedback)
}

// renderResult draws the final score screen.
func (g *Game) renderResult(dst *core.Screen) {
	pct := g.percentage()

	face := "💖"
	switch {
	case pct == 100:
		face = "🏆"
	case pct >= 80:
		face = "🎉"
	case pct >= 60:
		face = "😊"
	case pct >= 40:
		face = "💕"
	}

	mid := dst.Height() / 2
	dst.DrawTextCentered(mid-3, face)
	dst.DrawTextCenteredColored(mid-1,
		fmt.Sprintf("Bravo %s!", g.runtime.PlayerName), core.ColorGreen)
	dst.DrawTextCentered(mid,
		fmt.Sprintf("Score: %d/%d (%d%%)", g.correct, len(g.questions), pct))
	if bonus := resultBonus(g.correct, len(g.questions)); bonus > 0 {
		dst.DrawTextCentered(mid+1, fmt.Sprintf("Completion bonus: +%d pts", bonus))
	}
	dst.DrawTextCentered(mid+2, fmt.Sprintf("Session points: %d", g.points))
	dst.DrawTextCenteredColored(mid+4, "R: play again  M: switch mode  Esc: menu", core.ColorGray)
}
