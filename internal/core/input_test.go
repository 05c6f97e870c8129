package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Has(ActionConfirm) {
		t.Error("New frame should have no actions")
	}

	f.Set(ActionConfirm)
	f.Set(ActionUp)
	if !f.Has(ActionConfirm) || !f.Has(ActionUp) {
		t.Error("Set actions should be reported by Has")
	}

	f.Clear()
	if f.Has(ActionConfirm) || f.Has(ActionUp) {
		t.Error("Clear should drop all actions")
	}
}

func TestInputFrameSetOnZeroValue(t *testing.T) {
	// Games receive frames by value; Set must work on a zero frame too.
	var f InputFrame
	f.Set(ActionLeft)
	if !f.Has(ActionLeft) {
		t.Error("Set on zero-value frame should initialize the map")
	}
}

func TestInputFrameSlot(t *testing.T) {
	tests := []struct {
		name     string
		action   Action
		expected int
	}{
		{"slot1", ActionSlot1, 0},
		{"slot2", ActionSlot2, 1},
		{"slot3", ActionSlot3, 2},
		{"slot4", ActionSlot4, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			f.Set(tc.action)
			if got := f.Slot(); got != tc.expected {
				t.Errorf("Slot() = %d, expected %d", got, tc.expected)
			}
		})
	}

	empty := NewInputFrame()
	if empty.Slot() != -1 {
		t.Errorf("Slot() on empty frame = %d, expected -1", empty.Slot())
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionShare)

	clone := f.Clone()
	clone.Set(ActionClear)

	if f.Has(ActionClear) {
		t.Error("Mutating a clone should not affect the original")
	}
	if !clone.Has(ActionShare) {
		t.Error("Clone should carry the original's actions")
	}
}
