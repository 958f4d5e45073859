package detect

import (
	"math"
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/loop"
)

// Vec3 is one acceleration sample
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Shake fires when any axis jumps by more than threshold between samples,
// at most once per cooldown
type Shake struct {
	l         *loop.Loop
	threshold float64
	cooldown  time.Duration
	target    effect.ID
	dispatch  Dispatch

	prev     Vec3 // Zero until the first sample, matching a device at rest
	lastFire time.Time
	fired    bool
}

// NewShake creates a shake matcher dispatching target
func NewShake(l *loop.Loop, threshold float64, cooldown time.Duration, target effect.ID, dispatch Dispatch) *Shake {
	return &Shake{
		l:         l,
		threshold: threshold,
		cooldown:  cooldown,
		target:    target,
		dispatch:  dispatch,
	}
}

// Sample feeds one reading, reporting whether it fired
func (s *Shake) Sample(v Vec3) bool {
	jolt := math.Abs(v.X-s.prev.X) > s.threshold ||
		math.Abs(v.Y-s.prev.Y) > s.threshold ||
		math.Abs(v.Z-s.prev.Z) > s.threshold
	s.prev = v

	if !jolt {
		return false
	}
	now := s.l.Now()
	if s.fired && now.Sub(s.lastFire) < s.cooldown {
		return false
	}
	s.fired = true
	s.lastFire = now
	s.dispatch.fire(s.target)
	return true
}
