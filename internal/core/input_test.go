package core

import "testing"

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionLeft) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionPause)
	if !f.Has(ActionLeft) || !f.Has(ActionPause) {
		t.Error("Set() actions should be reported by Has()")
	}

	clone := f.Clone()
	f.Clear()
	if f.Has(ActionLeft) {
		t.Error("Clear() should reset actions")
	}
	if !clone.Has(ActionLeft) {
		t.Error("Clone() should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a        Action
		expected string
	}{
		{ActionLeft, "Left"},
		{ActionRight, "Right"},
		{ActionConfirm, "Confirm"},
		{ActionBack, "Back"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if tc.a.String() != tc.expected {
			t.Errorf("String() = %q, expected %q", tc.a.String(), tc.expected)
		}
	}
}
