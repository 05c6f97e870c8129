package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/aucoeur/love-arcade/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to game actions. A single key may map
// to several actions; each game consumes only the ones it understands
// (e.g. "r" restarts a finished game but rotates a canvas element).
// Returns the actions and whether the key was a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (actions []core.Action, isQuit bool) {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return []core.Action{core.ActionQuit}, true
	}

	switch key {
	case "w", "up":
		actions = append(actions, core.ActionUp)
	case "s", "down":
		actions = append(actions, core.ActionDown)
	case "a", "left":
		actions = append(actions, core.ActionLeft)
	case "d", "right":
		actions = append(actions, core.ActionRight)
	case "enter", " ":
		actions = append(actions, core.ActionConfirm)
	case "b", "esc":
		actions = append(actions, core.ActionBack)
	case "p":
		actions = append(actions, core.ActionPause)
	case "r":
		actions = append(actions, core.ActionRestart, core.ActionRotate)
	case "x":
		actions = append(actions, core.ActionShare, core.ActionClear)
	case "1":
		actions = append(actions, core.ActionSlot1)
	case "2":
		actions = append(actions, core.ActionSlot2)
	case "3":
		actions = append(actions, core.ActionSlot3)
	case "4":
		actions = append(actions, core.ActionSlot4)
	case "f":
		actions = append(actions, core.ActionFavorite)
	case "n":
		actions = append(actions, core.ActionCompose)
	case "v":
		actions = append(actions, core.ActionSave)
	case "m":
		actions = append(actions, core.ActionMode)
	case "g":
		actions = append(actions, core.ActionGallery)
	case "tab":
		actions = append(actions, core.ActionCycle)
	case "+", "=":
		actions = append(actions, core.ActionGrow)
	case "-", "_":
		actions = append(actions, core.ActionShrink)
	case "backspace", "delete":
		actions = append(actions, core.ActionDelete)
	}

	return actions, false
}

// MapKeyToFrame updates an input frame based on a key message.
// Returns true if the key was a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	actions, isQuit := km.MapKey(msg)
	for _, a := range actions {
		frame.Set(a)
	}
	return isQuit
}

// MenuAction represents a menu-specific action derived from input.
type MenuAction int

const (
	MenuActionNone MenuAction = iota
	MenuActionUp
	MenuActionDown
	MenuActionSelect
	MenuActionBack
	MenuActionQuit
	MenuActionScoreboard
)

// MapKeyToMenuAction translates a key to a menu action.
func (km *KeyMapper) MapKeyToMenuAction(msg tea.KeyMsg) MenuAction {
	key := msg.String()

	switch key {
	case "ctrl+c", "q":
		return MenuActionQuit
	case "w", "up", "k": // vim-style k for up
		return MenuActionUp
	case "s", "down", "j": // vim-style j for down
		return MenuActionDown
	case "enter", " ":
		return MenuActionSelect
	case "b", "esc":
		return MenuActionBack
	case "tab":
		return MenuActionScoreboard
	}

	return MenuActionNone
}
