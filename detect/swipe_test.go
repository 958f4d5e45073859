package detect

import (
	"testing"

	"github.com/lixenwraith/orchead/effect"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		dx, dy float64
		want   Direction
	}{
		{-60, 0, SwipeLeft},
		{60, 10, SwipeRight},
		{0, -51, SwipeUp},
		{5, 80, SwipeDown},
		{20, 0, NoSwipe},
		{50, 0, NoSwipe},
		{40, 45, NoSwipe},
		{-55, 55, SwipeDown}, // Ties go vertical
	}
	for _, tt := range tests {
		if got := Classify(tt.dx, tt.dy, 50); got != tt.want {
			t.Errorf("Classify(%v, %v) = %v, want %v", tt.dx, tt.dy, got, tt.want)
		}
	}
}

func TestSwipeDispatch(t *testing.T) {
	var s sink
	sw := NewSwipe(50, 8, 16, s.dispatch())

	sw.Down(100, 100)
	if dir := sw.Up(40, 100); dir != SwipeLeft {
		t.Fatalf("expected left, got %v", dir)
	}
	sw.Down(100, 100)
	if dir := sw.Up(120, 100); dir != NoSwipe {
		t.Fatalf("expected tap, got %v", dir)
	}
	if len(s.got) != 1 || s.got[0] != effect.Grond {
		t.Errorf("expected single grond dispatch, got %v", s.got)
	}
}

func TestSwipeCells(t *testing.T) {
	var s sink
	sw := NewSwipe(50, 8, 16, s.dispatch())

	// 4 rows at 16 units each is 64 units up
	sw.DownCell(10, 10)
	if dir := sw.UpCell(10, 6); dir != SwipeUp {
		t.Errorf("expected up, got %v", dir)
	}
	// 6 columns at 8 units is 48, below threshold
	sw.DownCell(10, 10)
	if dir := sw.UpCell(16, 10); dir != NoSwipe {
		t.Errorf("expected no swipe, got %v", dir)
	}
	if len(s.got) != 1 || s.got[0] != effect.Mellon {
		t.Errorf("unexpected dispatches %v", s.got)
	}
}

func TestUpWithoutDownIgnored(t *testing.T) {
	var s sink
	sw := NewSwipe(50, 8, 16, s.dispatch())
	if sw.Up(500, 0) != NoSwipe || len(s.got) != 0 {
		t.Error("stray release dispatched")
	}
}
