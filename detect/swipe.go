package detect

import (
	"math"

	"github.com/lixenwraith/orchead/effect"
)

// Direction is a classified swipe outcome
type Direction uint8

const (
	NoSwipe Direction = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

func (d Direction) String() string {
	switch d {
	case SwipeLeft:
		return "left"
	case SwipeRight:
		return "right"
	case SwipeUp:
		return "up"
	case SwipeDown:
		return "down"
	}
	return "none"
}

// SwipeOutcomes maps each direction to its effect
// Left rams the gate, right runs to Isengard, up opens the doors, down finds the ring
var SwipeOutcomes = map[Direction]effect.ID{
	SwipeLeft:  effect.Grond,
	SwipeRight: effect.Isengard,
	SwipeUp:    effect.Mellon,
	SwipeDown:  effect.Precious,
}

// Classify picks the dominant axis of (dx, dy) and reports a direction
// when its magnitude exceeds threshold; y grows downward
func Classify(dx, dy, threshold float64) Direction {
	if math.Abs(dx) > math.Abs(dy) {
		if math.Abs(dx) <= threshold {
			return NoSwipe
		}
		if dx < 0 {
			return SwipeLeft
		}
		return SwipeRight
	}
	if math.Abs(dy) <= threshold {
		return NoSwipe
	}
	if dy < 0 {
		return SwipeUp
	}
	return SwipeDown
}

// Swipe classifies pointer down/up pairs
type Swipe struct {
	threshold    float64
	cellW, cellH float64
	outcomes     map[Direction]effect.ID
	dispatch     Dispatch

	down   bool
	sx, sy float64
}

// NewSwipe creates a swipe matcher; cellW and cellH convert terminal cells to units
func NewSwipe(threshold, cellW, cellH float64, dispatch Dispatch) *Swipe {
	return &Swipe{
		threshold: threshold,
		cellW:     cellW,
		cellH:     cellH,
		outcomes:  SwipeOutcomes,
		dispatch:  dispatch,
	}
}

// Down records the start point in units
func (s *Swipe) Down(x, y float64) {
	s.down = true
	s.sx, s.sy = x, y
}

// Up classifies the gesture started by Down and dispatches its outcome
// An Up without a preceding Down is ignored
func (s *Swipe) Up(x, y float64) Direction {
	if !s.down {
		return NoSwipe
	}
	s.down = false
	dir := Classify(x-s.sx, y-s.sy, s.threshold)
	if dir != NoSwipe {
		s.dispatch.fire(s.outcomes[dir])
	}
	return dir
}

// DownCell is Down in terminal cell coordinates
func (s *Swipe) DownCell(col, row int) {
	s.Down(float64(col)*s.cellW, float64(row)*s.cellH)
}

// UpCell is Up in terminal cell coordinates
func (s *Swipe) UpCell(col, row int) Direction {
	return s.Up(float64(col)*s.cellW, float64(row)*s.cellH)
}

// Tracking reports whether a gesture is in progress
func (s *Swipe) Tracking() bool { return s.down }
