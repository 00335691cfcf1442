package gesture

import (
	"reflect"
	"testing"
	"time"
)

var t0 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()
	want := Thresholds{MoveX: 25, MoveY: 20, TapMax: 150 * time.Millisecond, SwipeMinY: 100, SwipeMax: 200 * time.Millisecond}
	if th != want {
		t.Errorf("DefaultThresholds() = %+v, expected %+v", th, want)
	}
}

func TestMoveDrags(t *testing.T) {
	c := NewClassifier(DefaultThresholds())
	c.Begin(100, 100, t0)

	tests := []struct {
		name string
		x, y float64
		want []Gesture
	}{
		{"below threshold", 120, 110, nil},
		{"right step", 130, 110, []Gesture{DragRight}},
		{"measured from last fire", 150, 110, nil},
		{"left step", 100, 110, []Gesture{DragLeft}},
		{"down step", 100, 125, []Gesture{DragDown}},
		{"both axes", 130, 150, []Gesture{DragRight, DragDown}},
		{"upward ignored", 130, 50, nil},
	}

	for _, tc := range tests {
		got := c.Move(tc.x, tc.y)
		if !reflect.DeepEqual(got, tc.want) {
			t.Errorf("%s: Move(%v, %v) = %v, expected %v", tc.name, tc.x, tc.y, got, tc.want)
		}
	}
}

func TestEndClassification(t *testing.T) {
	tests := []struct {
		name    string
		dx, dy  float64
		elapsed time.Duration
		want    Gesture
	}{
		{"quick tap", 3, 4, 80 * time.Millisecond, Tap},
		{"slow press", 3, 4, 400 * time.Millisecond, None},
		{"tap limit is exclusive", 0, 0, 150 * time.Millisecond, None},
		{"fast swipe", 0, 140, 120 * time.Millisecond, SwipeDown},
		{"slow swipe", 0, 140, 300 * time.Millisecond, None},
		{"short swipe", 0, 90, 100 * time.Millisecond, None},
		{"swipe up", 0, -140, 100 * time.Millisecond, None},
		{"sideways", 60, 0, 100 * time.Millisecond, None},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := NewClassifier(DefaultThresholds())
			c.Begin(200, 200, t0)
			got := c.End(200+tc.dx, 200+tc.dy, t0.Add(tc.elapsed))
			if got != tc.want {
				t.Errorf("End() = %v, expected %v", got, tc.want)
			}
			if c.Active() {
				t.Error("classifier should be idle after End")
			}
		})
	}
}

func TestInactiveClassifier(t *testing.T) {
	c := NewClassifier(DefaultThresholds())

	if got := c.Move(500, 500); got != nil {
		t.Errorf("Move without Begin = %v, expected nil", got)
	}
	if got := c.End(0, 0, t0); got != None {
		t.Errorf("End without Begin = %v, expected None", got)
	}

	c.Begin(0, 0, t0)
	c.Cancel()
	if got := c.End(0, 0, t0); got != None {
		t.Errorf("End after Cancel = %v, expected None", got)
	}
}
