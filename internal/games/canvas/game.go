// Package canvas implements the creative love canvas: emoji stamps and
// free text placed, dragged, rotated and resized on a bounded surface,
// with a save-to-gallery snapshot history.
package canvas

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/aucoeur/love-arcade/internal/config"
	"github.com/aucoeur/love-arcade/internal/core"
	"github.com/aucoeur/love-arcade/internal/registry"
)

// SaveAwardCap bounds the points paid for a single save.
const SaveAwardCap = 100

// Canvas placement of the drawing area on screen, used to translate
// pointer coordinates.
const (
	canvasLeft = 2
	canvasTop  = 4
)

// focus selects which control group the keyboard drives.
type focus int

const (
	focusPalette focus = iota
	focusCanvas
	focusGallery
)

var configPath string

// SetConfigPath sets a custom YAML config path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// nowFn is swappable in tests.
var nowFn = time.Now

// Game implements the creative canvas.
type Game struct {
	cfg     config.CanvasConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand
	tick    uint64

	canvasW int
	canvasH int

	elements []Element
	selected int // index into elements, -1 when nothing selected
	gallery  []Creation
	points   int

	focus      focus
	paletteRow int // 0 emoji, 1 color
	emojiIdx   int
	colorIdx   int
	brushSize  int
	galleryIdx int

	dragIdx          int // index being dragged, -1 when idle
	dragOffX, dragOffY int

	composing       bool
	confirmingClear bool
	pending         []core.Event
	paused          bool
}

// New creates a new empty canvas.
func New() *Game {
	return &Game{selected: -1, dragIdx: -1, brushSize: DefaultBrush}
}

func init() {
	registry.Register("canvas", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "canvas"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Creative Canvas"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0

	loaded, err := config.LoadCanvas(configPath)
	if err != nil {
		loaded, _ = config.LoadCanvas("")
	}
	g.cfg = loaded

	g.canvasW = core.Max(20, cfg.ScreenW-2*canvasLeft-2)
	g.canvasH = core.Max(8, cfg.ScreenH-canvasTop-8)

	g.elements = nil
	g.selected = -1
	g.gallery = nil
	g.points = 0
	g.focus = focusPalette
	g.paletteRow = 0
	g.emojiIdx = 0
	g.colorIdx = 0
	g.brushSize = DefaultBrush
	g.galleryIdx = 0
	g.dragIdx = -1
	g.composing = false
	g.confirmingClear = false
	g.pending = nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	events := g.pending
	g.pending = nil

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused || g.composing || g.confirmingClear {
		return core.StepResult{State: g.State(), Events: events}
	}

	switch {
	case in.Has(core.ActionMode):
		if g.focus == focusPalette {
			g.focus = focusCanvas
		} else {
			g.focus = focusPalette
		}
	case in.Has(core.ActionGallery):
		if g.focus == focusGallery {
			g.focus = focusCanvas
		} else {
			g.focus = focusGallery
			g.galleryIdx = 0
		}
	}

	if in.Has(core.ActionCompose) {
		g.composing = true
	}
	if in.Has(core.ActionSave) {
		events = append(events, g.save()...)
	}
	if in.Has(core.ActionClear) && len(g.elements) > 0 {
		g.confirmingClear = true
	}

	switch g.focus {
	case focusPalette:
		events = append(events, g.stepPalette(in)...)
	case focusCanvas:
		g.stepCanvas(in)
	case focusGallery:
		g.stepGallery(in)
	}

	return core.StepResult{State: g.State(), Events: events}
}

// stepPalette drives the emoji/color picker.
func (g *Game) stepPalette(in core.InputFrame) []core.Event {
	if in.Has(core.ActionUp) || in.Has(core.ActionDown) {
		g.paletteRow = 1 - g.paletteRow
	}

	idx, size := &g.emojiIdx, len(g.cfg.Emojis)
	if g.paletteRow == 1 {
		idx, size = &g.colorIdx, len(g.cfg.Colors)
	}
	switch {
	case in.Has(core.ActionRight):
		*idx = (*idx + 1) % size
	case in.Has(core.ActionLeft):
		*idx = (*idx - 1 + size) % size
	}

	if in.Has(core.ActionConfirm) && g.paletteRow == 0 {
		return g.addElement(KindEmoji, g.cfg.Emojis[g.emojiIdx])
	}
	return nil
}

// stepCanvas drives selection and element manipulation.
func (g *Game) stepCanvas(in core.InputFrame) {
	if in.Has(core.ActionCycle) && len(g.elements) > 0 {
		g.selected = (g.selected + 1) % len(g.elements)
	}
	if g.selected < 0 || g.selected >= len(g.elements) {
		return
	}

	e := &g.elements[g.selected]
	switch {
	case in.Has(core.ActionLeft):
		e.X = core.Clamp(e.X-1, 0, g.canvasW-e.Width())
	case in.Has(core.ActionRight):
		e.X = core.Clamp(e.X+1, 0, g.canvasW-e.Width())
	case in.Has(core.ActionUp):
		e.Y = core.Clamp(e.Y-1, 0, g.canvasH-e.Height())
	case in.Has(core.ActionDown):
		e.Y = core.Clamp(e.Y+1, 0, g.canvasH-e.Height())
	}

	if in.Has(core.ActionRotate) {
		g.rotate(e.ID)
	}
	if in.Has(core.ActionGrow) {
		g.resize(e.ID, 4)
	}
	if in.Has(core.ActionShrink) {
		g.resize(e.ID, -4)
	}
	if in.Has(core.ActionDelete) {
		g.remove(e.ID)
	}
}

// stepGallery drives snapshot browsing and loading.
func (g *Game) stepGallery(in core.InputFrame) {
	if len(g.gallery) == 0 {
		return
	}
	switch {
	case in.Has(core.ActionRight):
		g.galleryIdx = (g.galleryIdx + 1) % len(g.gallery)
	case in.Has(core.ActionLeft):
		g.galleryIdx = (g.galleryIdx - 1 + len(g.gallery)) % len(g.gallery)
	}
	if in.Has(core.ActionConfirm) {
		g.load(g.gallery[g.galleryIdx].ID)
		g.focus = focusCanvas
	}
}

// addElement places a new element at a uniformly random position inside
// the bounds minus the element's footprint.
func (g *Game) addElement(kind Kind, content string) []core.Event {
	e := Element{
		ID:      uuid.New(),
		Kind:    kind,
		Content: content,
		Size:    g.brushSize,
	}
	if kind == KindText {
		e.Size = TextSize
		e.Color = g.cfg.Colors[g.colorIdx]
	}
	e.X = g.rng.Intn(core.Max(1, g.canvasW-e.Width()+1))
	e.Y = g.rng.Intn(core.Max(1, g.canvasH-e.Height()+1))

	g.elements = append(g.elements, e)
	g.selected = len(g.elements) - 1
	return []core.Event{core.SoundEvent("flip")}
}

// SubmitText receives free text from the host prompt and stamps it.
func (g *Game) SubmitText(text string) {
	g.composing = false
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return
	}
	g.pending = append(g.pending, g.addElement(KindText, trimmed)...)
}

// rotate adds 45 degrees, wrapping at 360.
func (g *Game) rotate(id uuid.UUID) {
	if e := g.find(id); e != nil {
		e.Rotation = (e.Rotation + RotationStep) % 360
	}
}

// resize adjusts size within [MinSize, MaxSize].
func (g *Game) resize(id uuid.UUID, delta int) {
	if e := g.find(id); e != nil {
		e.Size = core.Clamp(e.Size+delta, MinSize, MaxSize)
	}
}

// remove deletes an element. Unknown IDs are ignored.
func (g *Game) remove(id uuid.UUID) {
	for i := range g.elements {
		if g.elements[i].ID == id {
			g.elements = append(g.elements[:i], g.elements[i+1:]...)
			g.selected = -1
			g.dragIdx = -1
			return
		}
	}
}

// save snapshots the canvas into the gallery and pays by element count.
// An empty canvas produces only an informational toast.
func (g *Game) save() []core.Event {
	if len(g.elements) == 0 {
		return []core.Event{{Message: "Add some elements before saving! 🎨"}}
	}

	g.gallery = retain(g.gallery, snapshot(g.elements, nowFn()))

	award := core.Min(SaveAwardCap, len(g.elements)*5+20)
	g.points += award
	return []core.Event{{
		Points:  award,
		Message: fmt.Sprintf("Creation saved! +%d pts 🎨", award),
		Sound:   "save",
	}}
}

// load replaces the live canvas with a copy of a snapshot's elements.
func (g *Game) load(id uuid.UUID) {
	for _, c := range g.gallery {
		if c.ID == id {
			g.elements = make([]Element, len(c.Elements))
			copy(g.elements, c.Elements)
			g.selected = -1
			g.dragIdx = -1
			return
		}
	}
}

// Confirm resolves the pending clear confirmation.
func (g *Game) Confirm(ok bool) {
	if !g.confirmingClear {
		return
	}
	g.confirmingClear = false
	if ok {
		g.elements = nil
		g.selected = -1
		g.dragIdx = -1
		g.pending = append(g.pending, core.SoundEvent("clear"))
	}
}

// PointerDown starts a drag on the topmost element under the pointer and
// selects it. Screen coordinates are translated to canvas-local ones.
func (g *Game) PointerDown(x, y int) {
	cx, cy := x-canvasLeft-1, y-canvasTop-1
	for i := len(g.elements) - 1; i >= 0; i-- {
		if g.elements[i].contains(cx, cy) {
			g.dragIdx = i
			g.selected = i
			g.dragOffX = cx - g.elements[i].X
			g.dragOffY = cy - g.elements[i].Y
			g.focus = focusCanvas
			return
		}
	}
}

// PointerMove drags the held element, clamped to the bounds minus its
// footprint.
func (g *Game) PointerMove(x, y int) {
	if g.dragIdx < 0 || g.dragIdx >= len(g.elements) {
		return
	}
	cx, cy := x-canvasLeft-1, y-canvasTop-1
	e := &g.elements[g.dragIdx]
	e.X = core.Clamp(cx-g.dragOffX, 0, g.canvasW-e.Width())
	e.Y = core.Clamp(cy-g.dragOffY, 0, g.canvasH-e.Height())
}

// PointerUp ends the active drag.
func (g *Game) PointerUp() {
	g.dragIdx = -1
}

// find returns the element with the given ID, or nil.
func (g *Game) find(id uuid.UUID) *Element {
	for i := range g.elements {
		if g.elements[i].ID == id {
			return &g.elements[i]
		}
	}
	return nil
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	s := core.GameState{
		Score:  g.points,
		Paused: g.paused,
	}
	if g.composing {
		s.TextPrompt = "Write your love text ✍️"
	}
	if g.confirmingClear {
		s.ConfirmPrompt = "Clear the whole canvas?"
	}
	return s
}
