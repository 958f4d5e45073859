package detect

import (
	"testing"
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
)

func TestRateTenFiresOnce(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	var s sink
	r := NewRate(l, 2*time.Second, 10, effect.Frenzy, s.dispatch())

	fired := 0
	for i := 0; i < 10; i++ {
		if r.Hit() {
			fired++
		}
		l.Advance(150 * time.Millisecond)
	}
	if fired != 1 || len(s.got) != 1 {
		t.Fatalf("expected a single fire, got %d", fired)
	}
	if r.Recent() != 0 {
		t.Errorf("window should be cleared after firing, has %d", r.Recent())
	}
}

func TestRateNineDoesNotFire(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	var s sink
	r := NewRate(l, 2*time.Second, 10, effect.Frenzy, s.dispatch())

	for i := 0; i < 9; i++ {
		r.Hit()
	}
	if len(s.got) != 0 {
		t.Errorf("nine hits fired: %v", s.got)
	}
}

func TestRateWindowSlides(t *testing.T) {
	l := loop.NewManual(time.Unix(0, 0))
	var s sink
	r := NewRate(l, 2*time.Second, 10, effect.Frenzy, s.dispatch())

	// 300ms spacing puts at most 7 hits in any window
	for i := 0; i < 30; i++ {
		r.Hit()
		l.Advance(300 * time.Millisecond)
	}
	if len(s.got) != 0 {
		t.Errorf("slow clicking fired: %v", s.got)
	}
}
