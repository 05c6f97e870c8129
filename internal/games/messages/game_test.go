package messages

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
		Seed:       3,
		PlayerName: "Chérie",
	}
}

func step(g *Game, actions ...core.Action) []core.Event {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in).Events
}

func TestBrowseWrapsBothDirections(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	n := len(g.all())
	if n == 0 {
		t.Fatal("morning category has no built-ins")
	}

	step(g, core.ActionLeft)
	if g.index != n-1 {
		t.Errorf("previous from 0 landed at %d, want %d", g.index, n-1)
	}

	step(g, core.ActionRight)
	if g.index != 0 {
		t.Errorf("next from last landed at %d, want 0", g.index)
	}

	for i := 0; i < n*2; i++ {
		step(g, core.ActionRight)
		if g.index < 0 || g.index >= n {
			t.Fatalf("index %d escaped [0,%d)", g.index, n)
		}
	}
}

func TestCategorySwitchRewinds(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	step(g, core.ActionRight)
	step(g, core.ActionRight)
	if g.index == 0 {
		t.Fatal("browsing did not move the index")
	}

	step(g, core.ActionSlot2)
	if g.category != CategoryRomantic {
		t.Fatalf("category = %s, want romantic", g.category)
	}
	if g.index != 0 {
		t.Errorf("index = %d after category switch, want 0", g.index)
	}

	// Re-selecting the active category keeps the position.
	step(g, core.ActionRight)
	step(g, core.ActionSlot2)
	if g.index != 1 {
		t.Errorf("re-selecting the active category moved the index to %d", g.index)
	}
}

func TestNameExpansion(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for _, m := range g.all() {
		if strings.Contains(m, "{name}") {
			t.Fatalf("unexpanded placeholder in %q", m)
		}
	}

	found := false
	for _, m := range g.all() {
		if strings.Contains(m, "Chérie") {
			found = true
		}
	}
	if !found {
		t.Error("no built-in message carries the player name")
	}
}

func TestAddCustomValidation(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.SubmitText("hi")
	if g.customCount() != 0 || g.points != 0 {
		t.Errorf("4-char message accepted: custom=%d points=%d", g.customCount(), g.points)
	}

	g.composing = true
	g.SubmitText("   ok   ") // trims to 2 chars
	if g.customCount() != 0 {
		t.Error("whitespace-padded short message accepted")
	}
	if g.composing {
		t.Error("rejected submit left the prompt open")
	}

	g.SubmitText("hello")
	if g.customCount() != 1 {
		t.Fatalf("5-char message rejected: custom = %d", g.customCount())
	}
	if g.points != CustomAward {
		t.Errorf("points = %d, want %d", g.points, CustomAward)
	}

	events := step(g) // pending achievement flushes on the next tick
	found := false
	for _, e := range events {
		if e.Points == CustomAward && e.Message != "" {
			found = true
		}
	}
	if !found {
		t.Errorf("no achievement event after accepted message: %+v", events)
	}
}

func TestCustomMessagesPrependAfterBuiltins(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	g.SubmitText("first custom")
	g.SubmitText("second custom")

	all := g.all()
	builtins := len(g.builtins())
	if all[builtins] != "second custom" {
		t.Errorf("newest custom not first in authored section: %q", all[builtins])
	}
	if all[builtins+1] != "first custom" {
		t.Errorf("older custom out of order: %q", all[builtins+1])
	}
}

func TestFavoriteAsymmetry(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	events := g.toggleFavorite(0)
	if !g.favorites[0] {
		t.Fatal("toggle did not set favorite")
	}
	if g.points != FavoriteAward {
		t.Errorf("points = %d, want %d on gain", g.points, FavoriteAward)
	}
	if len(events) != 1 || events[0].Points != FavoriteAward {
		t.Errorf("gain events = %+v", events)
	}

	events = g.toggleFavorite(0)
	if g.favorites[0] {
		t.Fatal("toggle did not clear favorite")
	}
	if g.points != FavoriteAward {
		t.Errorf("losing favorite changed points: %d", g.points)
	}
	if len(events) != 0 {
		t.Errorf("loss emitted events: %+v", events)
	}

	// Re-gaining pays again.
	g.toggleFavorite(0)
	if g.points != 2*FavoriteAward {
		t.Errorf("points = %d after re-gain, want %d", g.points, 2*FavoriteAward)
	}
}

func TestShareEmitsCurrentMessage(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	events := step(g, core.ActionShare)
	found := false
	for _, e := range events {
		if e.Share == g.current() && e.Share != "" {
			found = true
		}
	}
	if !found {
		t.Errorf("share did not carry the current message: %+v", events)
	}
}

func TestComposePromptLifecycle(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	step(g, core.ActionCompose)
	if g.State().TextPrompt == "" {
		t.Fatal("compose did not open a text prompt")
	}

	// Input is swallowed while composing.
	step(g, core.ActionRight)
	if g.index != 0 {
		t.Error("browse input leaked through the open prompt")
	}

	g.SubmitText("je t'aime")
	if g.State().TextPrompt != "" {
		t.Error("prompt still open after submit")
	}
}
