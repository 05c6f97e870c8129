// Package quiz implements the timed couple quiz. Each question runs a
// 15 second countdown; answering fast earns a larger bonus, and the
// result screen pays a one-time percentage bonus.
package quiz

import (
	"fmt"

	"github.com/aucoeur/love-arcade/internal/config"
	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/registry"
)

const (
	// QuestionTimeSeconds is the per-question countdown.
	QuestionTimeSeconds = 15
	// FeedbackDelayMillis is how long the correct/incorrect banner shows
	// before the next question.
	FeedbackDelayMillis = 2500
	// NoAnswer is the sentinel recorded when the timer runs out.
	NoAnswer = -1
)

// Mode selects a question set.
type Mode string

const (
	ModeRomantic Mode = "romantic"
	ModeFun      Mode = "fun"
)

// phase is the quiz state machine position.
type phase int

const (
	phaseAnswering phase = iota
	phaseFeedback
	phaseResult
)

var configPath string

// SetConfigPath sets a custom YAML config path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the quiz state machine.
type Game struct {
	cfg     config.QuizConfig
	runtime core.RuntimeConfig
	tick    uint64

	mode      Mode
	questions []config.QuizQuestion
	index     int
	correct   int // questions answered correctly
	points    int // session point total (time bonuses + result bonus)

	phase       phase
	selected    int
	answered    bool
	timeLeft    int // seconds remaining on the current question
	secondTicks int // ticks until the next whole-second decrement

	feedbackTicks int
	resultAwarded bool

	cursor int
	paused bool
}

// New creates a new quiz in romantic mode.
func New() *Game {
	return &Game{mode: ModeRomantic}
}

func init() {
	registry.Register("quiz", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "quiz"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Couple Quiz"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.tick = 0

	loaded, err := config.LoadQuiz(configPath)
	if err != nil {
		loaded, _ = config.LoadQuiz("")
	}
	g.cfg = loaded

	g.start(g.mode)
}

// start selects the question set and resets every per-run counter.
func (g *Game) start(mode Mode) {
	g.mode = mode
	g.questions = g.cfg.Romantic
	if mode == ModeFun {
		g.questions = g.cfg.Fun
	}

	g.index = 0
	g.correct = 0
	g.points = 0
	g.phase = phaseAnswering
	g.selected = NoAnswer
	g.answered = false
	g.timeLeft = QuestionTimeSeconds
	g.secondTicks = g.runtime.TickRate
	g.feedbackTicks = 0
	g.resultAwarded = false
	g.cursor = 0
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	var events []core.Event

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	// Mode toggle restarts from question 0 in any phase.
	if in.Has(core.ActionMode) {
		next := ModeFun
		if g.mode == ModeFun {
			next = ModeRomantic
		}
		g.start(next)
		return core.StepResult{State: g.State()}
	}

	switch g.phase {
	case phaseAnswering:
		events = append(events, g.stepAnswering(in)...)
	case phaseFeedback:
		events = append(events, g.stepFeedback()...)
	case phaseResult:
		// Terminal until a mode toggle or shell restart.
	}

	return core.StepResult{State: g.State(), Events: events}
}

// stepAnswering runs the countdown and handles answer selection.
func (g *Game) stepAnswering(in core.InputFrame) []core.Event {
	if slot := in.Slot(); slot >= 0 {
		return g.answer(slot)
	}

	switch {
	case in.Has(core.ActionUp):
		g.cursor = core.Max(0, g.cursor-1)
	case in.Has(core.ActionDown):
		g.cursor = core.Min(len(g.question().Options)-1, g.cursor+1)
	}
	if in.Has(core.ActionConfirm) {
		return g.answer(g.cursor)
	}

	// Whole-second timer decrement; hitting zero force-submits.
	g.secondTicks--
	if g.secondTicks <= 0 {
		g.secondTicks = g.runtime.TickRate
		g.timeLeft--
		if g.timeLeft <= 0 {
			g.timeLeft = 0
			return g.answer(NoAnswer)
		}
	}
	return nil
}

// answer records a selection, scores it, and enters feedback. Ignored
// outside the answering phase or when a selection is already recorded.
func (g *Game) answer(selected int) []core.Event {
	if g.phase != phaseAnswering || g.answered {
		return nil
	}
	g.selected = selected
	g.answered = true
	g.phase = phaseFeedback
	g.feedbackTicks = core.MillisToTicks(g.runtime.TickRate, FeedbackDelayMillis)

	if selected != g.question().Correct {
		return []core.Event{core.SoundEvent("wrong")}
	}

	g.correct++
	bonus := timeBonus(g.timeLeft)
	g.points += bonus
	return []core.Event{{Points: bonus, Sound: "correct"}}
}

// stepFeedback waits out the banner, then advances or finishes.
func (g *Game) stepFeedback() []core.Event {
	g.feedbackTicks--
	if g.feedbackTicks > 0 {
		return nil
	}

	if g.index+1 < len(g.questions) {
		g.index++
		g.selected = NoAnswer
		g.answered = false
		g.timeLeft = QuestionTimeSeconds
		g.secondTicks = g.runtime.TickRate
		g.cursor = 0
		g.phase = phaseAnswering
		return nil
	}

	g.phase = phaseResult
	return g.awardResult()
}

// awardResult pays the percentage bonus exactly once per result display.
func (g *Game) awardResult() []core.Event {
	if g.resultAwarded {
		return nil
	}
	g.resultAwarded = true

	bonus := resultBonus(g.correct, len(g.questions))
	if bonus == 0 {
		return nil
	}
	g.points += bonus
	return []core.Event{{
		Points:  bonus,
		Message: fmt.Sprintf("Quiz (%s) finished! +%d bonus pts 🎯", g.mode, bonus),
		Sound:   "win",
	}}
}

// timeBonus is the award for a correct answer given the seconds left.
func timeBonus(timeLeft int) int {
	switch {
	case timeLeft > 10:
		return 25
	case timeLeft > 5:
		return 20
	case timeLeft > 0:
		return 15
	default:
		return 10
	}
}

// resultBonus is floor(percentage/10)*5 for the final score.
func resultBonus(correct, total int) int {
	if total == 0 {
		return 0
	}
	percentage := 100 * correct / total
	return percentage / 10 * 5
}

// question returns the current question.
func (g *Game) question() config.QuizQuestion {
	return g.questions[g.index]
}

// percentage is the share of questions answered correctly, 0..100.
func (g *Game) percentage() int {
	if len(g.questions) == 0 {
		return 0
	}
	return 100 * g.correct / len(g.questions)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.points,
		GameOver: g.phase == phaseResult,
		Paused:   g.paused,
	}
}
