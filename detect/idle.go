package detect

import (
	"time"

	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// DefaultIdleMessages is announced when nobody has touched the orc for a while
var DefaultIdleMessages = []string{
	"The orc head grows restless...",
	"Is anyone there? The orc head is lonely.",
	"Even the smallest person can change the course of the future.",
	"All we have to decide is what to do with the time that is given us.",
	"The Eye is always watching. Even when you are not.",
	"Orcs do not nap. Orcs wait.",
}

// Idle announces a random message after a quiet period, then keeps announcing
// Only Activity pushes the next announcement back; an announcement never does
type Idle struct {
	l       *loop.Loop
	rng     schedule.Rand
	timeout time.Duration
	pool    []string
	fire    func(msg string)

	slot    schedule.Slot
	running bool
	fired   int
}

// NewIdle creates a stopped idle matcher calling fire with a message from pool
func NewIdle(l *loop.Loop, rng schedule.Rand, timeout time.Duration, pool []string, fire func(string)) *Idle {
	if len(pool) == 0 {
		pool = DefaultIdleMessages
	}
	return &Idle{l: l, rng: rng, timeout: timeout, pool: pool, fire: fire}
}

// Start arms the countdown
func (i *Idle) Start() {
	i.running = true
	i.arm()
}

// Stop cancels the countdown
func (i *Idle) Stop() {
	i.running = false
	i.slot.Cancel()
}

// Activity restarts the countdown
func (i *Idle) Activity() {
	if i.running {
		i.arm()
	}
}

// Fired returns the number of announcements made
func (i *Idle) Fired() int { return i.fired }

// Pending reports whether a countdown is armed
func (i *Idle) Pending() bool { return i.slot.Pending() }

func (i *Idle) arm() {
	i.slot.Arm(i.l, i.timeout, func() {
		i.fired++
		if i.fire != nil {
			i.fire(schedule.Pick(i.rng, i.pool))
		}
		if i.running {
			i.arm()
		}
	})
}
