package schedule

import (
	"time"

	"github.com/lixenwraith/orchead/loop"
)

// RandomLoop fires a callback repeatedly, each time after a freshly sampled delay
// Start/Stop/Toggle never leave more than one pending firing
type RandomLoop struct {
	loop     *loop.Loop
	rng      Rand
	min, max time.Duration
	fire     func()

	running bool
	slot    Slot
}

// NewRandomLoop creates a stopped loop firing fn every [min, max)
func NewRandomLoop(l *loop.Loop, rng Rand, min, max time.Duration, fn func()) *RandomLoop {
	// Validate range eagerly so a bad config fails at construction
	RandomDelay(rng, min, max)
	return &RandomLoop{
		loop: l,
		rng:  rng,
		min:  min,
		max:  max,
		fire: fn,
	}
}

// Start begins scheduling; no-op while running
func (r *RandomLoop) Start() {
	if r.running {
		return
	}
	r.running = true
	r.scheduleNext()
}

// Stop cancels the pending firing and prevents rescheduling
func (r *RandomLoop) Stop() {
	r.running = false
	r.slot.Cancel()
}

// Toggle flips running state and returns the new state
func (r *RandomLoop) Toggle() bool {
	if r.running {
		r.Stop()
	} else {
		r.Start()
	}
	return r.running
}

// Running reports whether the loop is scheduling firings
func (r *RandomLoop) Running() bool {
	return r.running
}

// Pending reports whether a firing is queued
func (r *RandomLoop) Pending() bool {
	return r.slot.Pending()
}

func (r *RandomLoop) scheduleNext() {
	r.slot.Arm(r.loop, RandomDelay(r.rng, r.min, r.max), func() {
		if !r.running {
			return
		}
		r.fire()
		// fire may have stopped or restarted the loop
		if r.running && !r.slot.Pending() {
			r.scheduleNext()
		}
	})
}
