package schedule

import (
	"time"

	"github.com/lixenwraith/orchead/loop"
)

// Slot owns at most one live timer for a logical purpose
// Replacing the handle always stops the previous one first
// Loop-goroutine only
type Slot struct {
	timer *loop.Timer
}

// Replace stops any prior timer and takes ownership of t
func (s *Slot) Replace(t *loop.Timer) {
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = t
}

// Arm schedules fn after d on l, replacing any pending timer
// The slot forgets its handle once fn runs
func (s *Slot) Arm(l *loop.Loop, d time.Duration, fn func()) {
	var t *loop.Timer
	t = l.AfterFunc(d, func() {
		if s.timer == t {
			s.timer = nil
		}
		fn()
	})
	s.Replace(t)
}

// Cancel stops the pending timer, reporting whether one was pending
func (s *Slot) Cancel() bool {
	if s.timer == nil {
		return false
	}
	stopped := s.timer.Stop()
	s.timer = nil
	return stopped
}

// Pending reports whether the slot holds a timer that has not fired
func (s *Slot) Pending() bool {
	return s.timer != nil
}
