package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
// A single key may map to more than one action (e.g. 'r' is both Restart and
// Rotate); each game consumes only the actions it understands.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // W, Up arrow - move cursor/element up
	ActionDown            // S, Down arrow - move cursor/element down
	ActionLeft            // A, Left arrow - move cursor/element left, previous item
	ActionRight           // D, Right arrow - move cursor/element right, next item
	ActionConfirm         // Enter, Space - flip card, submit answer, place emoji
	ActionBack            // B, Escape - back to menu
	ActionRestart         // R - restart game after completion
	ActionQuit            // Q, Ctrl+C - exit game/session
	ActionPause           // P - pause/unpause
	ActionSlot1           // 1 - first answer option / easy difficulty / first category
	ActionSlot2           // 2 - second answer option / medium difficulty / second category
	ActionSlot3           // 3 - third answer option / hard difficulty / third category
	ActionSlot4           // 4 - fourth answer option / fourth category
	ActionFavorite        // F - toggle favorite on current message
	ActionShare           // X - share current message (same key as Clear)
	ActionCompose         // N - author a custom message / add canvas text
	ActionSave            // V - save the canvas to the gallery
	ActionClear           // X - clear the canvas (same key as Share)
	ActionRotate          // R - rotate selected canvas element (same key as Restart)
	ActionGrow            // +, = - grow selected canvas element
	ActionShrink          // - - shrink selected canvas element
	ActionDelete          // D(el), Backspace - remove selected canvas element
	ActionMode            // M - switch quiz question set
	ActionGallery         // G - open/close the creations gallery
	ActionCycle           // Tab - cycle canvas element selection
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	case ActionSlot1:
		return "Slot1"
	case ActionSlot2:
		return "Slot2"
	case ActionSlot3:
		return "Slot3"
	case ActionSlot4:
		return "Slot4"
	case ActionFavorite:
		return "Favorite"
	case ActionShare:
		return "Share"
	case ActionCompose:
		return "Compose"
	case ActionSave:
		return "Save"
	case ActionClear:
		return "Clear"
	case ActionRotate:
		return "Rotate"
	case ActionGrow:
		return "Grow"
	case ActionShrink:
		return "Shrink"
	case ActionDelete:
		return "Delete"
	case ActionMode:
		return "Mode"
	case ActionGallery:
		return "Gallery"
	case ActionCycle:
		return "Cycle"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state for a single simulation tick.
// It contains all actions that were triggered during this frame.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	// Using a map allows checking multiple actions without order dependency.
	Actions map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Slot returns the zero-based slot index triggered this frame, or -1.
func (f InputFrame) Slot() int {
	switch {
	case f.Has(ActionSlot1):
		return 0
	case f.Has(ActionSlot2):
		return 1
	case f.Has(ActionSlot3):
		return 2
	case f.Has(ActionSlot4):
		return 3
	}
	return -1
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	return clone
}
