// Package ambient drives the unprompted focal animations and the quote ticker
package ambient

import (
	"log/slog"
	"time"

	"github.com/lixenwraith/orchead/constants"
	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// Focal animation names
const (
	PossessedSpin = effect.AnimPossessedSpin
	SauronZoom    = "sauron-zoom"
	WindWobble    = "wind-wobble"
	UrukRage      = effect.AnimUrukRage
	SpiritFloat   = effect.AnimSpiritFloat
	RingPulse     = "ring-pulse"
	SubtlePulse   = "subtle-pulse"
)

// Pool is the full-motion animation pool
var Pool = []string{PossessedSpin, SauronZoom, WindWobble, UrukRage, SpiritFloat, RingPulse}

// ReducedPool replaces Pool when reduced motion is preferred
var ReducedPool = []string{SubtlePulse}

var durations = map[string]time.Duration{
	PossessedSpin: 1000 * time.Millisecond,
	SauronZoom:    800 * time.Millisecond,
	WindWobble:    2000 * time.Millisecond,
	UrukRage:      500 * time.Millisecond,
	SpiritFloat:   2000 * time.Millisecond,
	RingPulse:     1500 * time.Millisecond,
	SubtlePulse:   2000 * time.Millisecond,
}

// Duration returns how long name stays applied
func Duration(name string) time.Duration {
	if d, ok := durations[name]; ok {
		return d
	}
	return constants.AnimationDefaultDuration
}

// Driver randomly animates the focal element while running
// Loop-goroutine only
type Driver struct {
	surface effect.Surface
	rng     schedule.Rand
	log     *slog.Logger
	l       *loop.Loop

	ticker  *schedule.RandomLoop
	removal schedule.Slot

	reduced bool
	current string
	applied int
}

// NewDriver creates a stopped driver; reduced is the initial motion preference
func NewDriver(l *loop.Loop, rng schedule.Rand, surface effect.Surface, reduced bool, log *slog.Logger) *Driver {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	d := &Driver{
		surface: surface,
		rng:     rng,
		log:     log,
		l:       l,
		reduced: reduced,
	}
	d.ticker = schedule.NewRandomLoop(l, rng, constants.AmbientMinDelay, constants.AmbientMaxDelay, func() {
		d.TriggerRandom()
	})
	return d
}

// Start schedules the first firing; no-op while running
func (d *Driver) Start() { d.ticker.Start() }

// Stop cancels the pending firing
// An animation already applied still removes itself on schedule
func (d *Driver) Stop() { d.ticker.Stop() }

// Toggle flips running state and returns the new state
func (d *Driver) Toggle() bool {
	on := d.ticker.Toggle()
	d.log.Info("ambient animation toggled", "running", on)
	return on
}

// Running reports whether the driver is scheduling animations
func (d *Driver) Running() bool { return d.ticker.Running() }

// Pending reports whether a firing is queued
func (d *Driver) Pending() bool { return d.ticker.Pending() }

// SetReducedMotion updates the motion preference used by later picks
func (d *Driver) SetReducedMotion(reduced bool) {
	if d.reduced != reduced {
		d.log.Info("motion preference changed", "reduced", reduced)
	}
	d.reduced = reduced
}

// ReducedMotion returns the current motion preference
func (d *Driver) ReducedMotion() bool { return d.reduced }

// TriggerRandom applies an animation picked from the active pool and returns its name
func (d *Driver) TriggerRandom() string {
	pool := Pool
	if d.reduced {
		pool = ReducedPool
	}
	name := schedule.Pick(d.rng, pool)
	d.Trigger(name)
	return name
}

// Trigger applies name to the focal element, restarting it if already running,
// and removes it after its duration
func (d *Driver) Trigger(name string) {
	if d.surface == nil || name == "" {
		return
	}
	d.clear()
	d.surface.Restart(effect.Focal, name)
	d.current = name
	d.applied++

	d.removal.Arm(d.l, Duration(name), func() {
		d.surface.RemoveClass(effect.Focal, name)
		if d.current == name {
			d.current = ""
		}
	})
}

// Current returns the animation on the focal element, or ""
func (d *Driver) Current() string { return d.current }

// Applied returns the number of animations applied so far
func (d *Driver) Applied() int { return d.applied }

func (d *Driver) clear() {
	for _, name := range Pool {
		d.surface.RemoveClass(effect.Focal, name)
	}
	for _, name := range ReducedPool {
		d.surface.RemoveClass(effect.Focal, name)
	}
}
