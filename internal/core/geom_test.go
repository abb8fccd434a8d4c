package core

import "testing"

func TestRectEdges(t *testing.T) {
	r := NewRect(2, 3, 10, 4)

	if r.Right() != 12 {
		t.Errorf("Right() = %d, want 12", r.Right())
	}
	if r.Bottom() != 7 {
		t.Errorf("Bottom() = %d, want 7", r.Bottom())
	}

	cx, cy := r.Center()
	if cx != 7 || cy != 5 {
		t.Errorf("Center() = (%d, %d), want (7, 5)", cx, cy)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(0, 0, 5, 5)

	if !r.Contains(0, 0) || !r.Contains(4, 4) {
		t.Error("corner points should be inside")
	}
	if r.Contains(5, 0) || r.Contains(0, 5) || r.Contains(-1, 2) {
		t.Error("edge and outside points should not be inside")
	}
}

func TestClampMinMax(t *testing.T) {
	if got := Clamp(15, 0, 10); got != 10 {
		t.Errorf("Clamp(15, 0, 10) = %d", got)
	}
	if got := Clamp(-3, 0, 10); got != 0 {
		t.Errorf("Clamp(-3, 0, 10) = %d", got)
	}
	if got := Clamp(5, 0, 10); got != 5 {
		t.Errorf("Clamp(5, 0, 10) = %d", got)
	}
	if Min(2, 7) != 2 || Max(2, 7) != 7 {
		t.Error("Min/Max wrong")
	}
}
