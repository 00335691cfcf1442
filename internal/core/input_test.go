package core

import (
	"slices"
	"testing"
)

func TestInputFrameKeepsOrder(t *testing.T) {
	f := NewInputFrame()
	for _, a := range []Action{ActionLeft, ActionUp, ActionLeft, ActionDrop} {
		f.Set(a)
	}

	if want := []Action{ActionLeft, ActionUp, ActionLeft, ActionDrop}; !slices.Equal(f.Order, want) {
		t.Errorf("Order = %v, want %v", f.Order, want)
	}
	for _, a := range []Action{ActionLeft, ActionUp, ActionDrop} {
		if !f.Has(a) {
			t.Errorf("Has(%v) = false", a)
		}
	}
	if f.Has(ActionPause) || f.Has(ActionNone) {
		t.Error("Has reports actions that were never set")
	}

	f.Clear()
	if len(f.Order) != 0 || f.Has(ActionLeft) {
		t.Errorf("frame not cleared: %v", f.Order)
	}
}

func TestZeroInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionRestart) {
		t.Error("zero frame has an action")
	}
	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Set on a zero frame was lost")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionNone, "None"},
		{ActionDrop, "Drop"},
		{ActionPause, "Pause"},
		{Action(99), "Unknown"},
		{Action(-1), "Unknown"},
	}
	for _, tt := range tests {
		if got := tt.a.String(); got != tt.want {
			t.Errorf("Action(%d).String() = %q, want %q", int(tt.a), got, tt.want)
		}
	}
}
