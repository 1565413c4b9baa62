package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{"overlapping rects", NewRect(0, 0, 10, 10), NewRect(5, 5, 10, 10), true},
		{"non-overlapping horizontal", NewRect(0, 0, 10, 10), NewRect(15, 0, 10, 10), false},
		{"adjacent horizontal (no overlap)", NewRect(0, 0, 10, 10), NewRect(10, 0, 10, 10), false},
		{"contained rect", NewRect(0, 0, 20, 20), NewRect(5, 5, 5, 5), true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Intersects(tc.b); got != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Intersects(tc.a); got != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestIntervalOverlaps(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Interval
		expected bool
	}{
		{"player inside vehicle", Interval{40, 55}, Interval{10, 70}, true},
		{"partial overlap left", Interval{0, 15}, Interval{10, 70}, true},
		{"partial overlap right", Interval{65, 80}, Interval{10, 70}, true},
		{"touching max edge", Interval{70, 85}, Interval{10, 70}, false},
		{"touching min edge", Interval{-5, 10}, Interval{10, 70}, false},
		{"disjoint", Interval{100, 130}, Interval{10, 70}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Overlaps(tc.b); got != tc.expected {
				t.Errorf("Overlaps() = %v, expected %v", got, tc.expected)
			}
			if got := tc.b.Overlaps(tc.a); got != tc.expected {
				t.Errorf("Overlaps() (reversed) = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAround(t *testing.T) {
	iv := Around(47.5, 7.5)
	if iv.Min != 40 || iv.Max != 55 {
		t.Errorf("Around(47.5, 7.5) = %+v, expected [40, 55]", iv)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(1.5, 0, 1); got != 1 {
		t.Errorf("ClampF(1.5, 0, 1) = %f, expected 1", got)
	}
	if got := ClampF(-0.5, 0, 1); got != 0 {
		t.Errorf("ClampF(-0.5, 0, 1) = %f, expected 0", got)
	}
}

func TestInputFrameKeepsMoveOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionForward)
	f.Set(ActionPause)
	f.Set(ActionLeft)
	f.Set(ActionForward)
	f.Set(ActionNone)

	moves := f.Moves()
	want := []Action{ActionForward, ActionLeft, ActionForward}
	if len(moves) != len(want) {
		t.Fatalf("Moves() = %v, expected %v", moves, want)
	}
	for i := range want {
		if moves[i] != want[i] {
			t.Errorf("Moves()[%d] = %v, expected %v", i, moves[i], want[i])
		}
	}
	if !f.Has(ActionPause) {
		t.Error("Has(ActionPause) should be true")
	}

	f.Clear()
	if len(f.Actions) != 0 {
		t.Error("Clear should drop all actions")
	}
}

func TestParseColor(t *testing.T) {
	if c, ok := ParseColor("red"); !ok || c != ColorBrightRed {
		t.Errorf("ParseColor(red) = %v, %v", c, ok)
	}
	if _, ok := ParseColor("plaid"); ok {
		t.Error("ParseColor accepted an unknown name")
	}
}
