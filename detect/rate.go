package detect

import (
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
)

// Rate fires when threshold events land inside a sliding window
type Rate struct {
	l         *loop.Loop
	window    time.Duration
	threshold int
	target    effect.ID
	dispatch  Dispatch

	stamps []time.Time
}

// NewRate creates a rate matcher dispatching target
func NewRate(l *loop.Loop, window time.Duration, threshold int, target effect.ID, dispatch Dispatch) *Rate {
	return &Rate{
		l:         l,
		window:    window,
		threshold: threshold,
		target:    target,
		dispatch:  dispatch,
	}
}

// Hit records one qualifying event, reporting whether it fired
func (r *Rate) Hit() bool {
	now := r.l.Now()
	r.stamps = append(r.stamps, now)

	keep := r.stamps[:0]
	for _, ts := range r.stamps {
		if now.Sub(ts) < r.window {
			keep = append(keep, ts)
		}
	}
	r.stamps = keep

	if len(r.stamps) < r.threshold {
		return false
	}
	r.stamps = r.stamps[:0]
	r.dispatch.fire(r.target)
	return true
}

// Recent returns the number of events inside the window as of the last hit
func (r *Rate) Recent() int { return len(r.stamps) }
