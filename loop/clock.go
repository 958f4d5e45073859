package loop

import (
	"sync"
	"time"
)

// Clock supplies the loop's notion of now
type Clock interface {
	Now() time.Time
}

// WallClock reads the monotonic system clock
type WallClock struct{}

// Now returns the current time with monotonic clock reading
func (WallClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for tests
// Only Loop.Advance moves it forward during normal use
type ManualClock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewManualClock creates a manual clock pinned at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current mocked time
func (c *ManualClock) Now() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.now
}

// Set pins the clock to t
func (c *ManualClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}
