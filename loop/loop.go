package loop

import (
	"container/heap"
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"
)

// ErrRunning is returned when Run is called on a loop that is already running
var ErrRunning = errors.New("loop: already running")

// idleWait bounds the sleep when no timer is pending
const idleWait = time.Hour

// Loop is a single-threaded cooperative scheduler
// Timer callbacks and posted functions only ever run on the goroutine driving
// the loop (Run, RunDue or Advance), so components mutated exclusively from
// callbacks need no locking
//
// Thread-Safety:
//   - AfterFunc, Post, Timer.Stop: safe from any goroutine
//   - Run/RunDue/Advance: single driver
type Loop struct {
	clock Clock

	mu     sync.Mutex
	timers timerHeap
	seq    uint64
	posted []func()

	wake    chan struct{}
	running atomic.Bool
}

// Timer is the ownership token for one pending callback
type Timer struct {
	loop     *Loop
	fn       func()
	deadline time.Time
	seq      uint64
	index    int // Heap position, -1 once fired or stopped
}

// New creates a loop driven by the wall clock
func New() *Loop {
	return newLoop(WallClock{})
}

// NewManual creates a loop on a manual clock starting at start
// Time only moves through Advance
func NewManual(start time.Time) *Loop {
	return newLoop(NewManualClock(start))
}

func newLoop(c Clock) *Loop {
	return &Loop{
		clock: c,
		wake:  make(chan struct{}, 1),
	}
}

// Now returns the loop clock's current time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

// AfterFunc schedules fn to run once after d on the loop goroutine
// Negative durations are treated as zero
func (l *Loop) AfterFunc(d time.Duration, fn func()) *Timer {
	if d < 0 {
		d = 0
	}
	t := &Timer{loop: l, fn: fn, index: -1}

	l.mu.Lock()
	t.deadline = l.clock.Now().Add(d)
	l.seq++
	t.seq = l.seq
	heap.Push(&l.timers, t)
	l.mu.Unlock()

	l.signal()
	return t
}

// Post queues fn to run on the loop goroutine at the next turn
// This is the only entry point for goroutines outside the loop
func (l *Loop) Post(fn func()) {
	l.mu.Lock()
	l.posted = append(l.posted, fn)
	l.mu.Unlock()
	l.signal()
}

// Pending returns the number of queued timers
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.timers)
}

// Stop cancels the timer, reporting whether the call was prevented
// Stopping a fired or already stopped timer returns false
func (t *Timer) Stop() bool {
	if t == nil || t.loop == nil {
		return false
	}
	l := t.loop
	l.mu.Lock()
	defer l.mu.Unlock()
	if t.index < 0 {
		return false
	}
	heap.Remove(&l.timers, t.index)
	return true
}

// Run drives the loop against its clock until ctx is cancelled
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer l.running.Store(false)

	sleep := time.NewTimer(idleWait)
	defer sleep.Stop()

	for {
		l.RunDue()

		sleep.Reset(l.untilNext())
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.wake:
		case <-sleep.C:
		}
	}
}

// RunDue runs posted functions and every timer due at the current clock time
// Returns the number of callbacks executed
func (l *Loop) RunDue() int {
	n := l.runPosted()
	for {
		t := l.popDue(l.clock.Now())
		if t == nil {
			return n
		}
		t.fn()
		n++
		n += l.runPosted()
	}
}

// Advance moves a manual clock forward by d, firing due timers in deadline order
// Each callback observes Now() equal to its own deadline
func (l *Loop) Advance(d time.Duration) {
	mc, ok := l.clock.(*ManualClock)
	if !ok {
		panic("loop: Advance requires a manual clock")
	}
	target := mc.Now().Add(d)
	for {
		l.runPosted()
		t := l.popDue(target)
		if t == nil {
			break
		}
		if t.deadline.After(mc.Now()) {
			mc.Set(t.deadline)
		}
		t.fn()
	}
	mc.Set(target)
	l.runPosted()
}

func (l *Loop) runPosted() int {
	l.mu.Lock()
	batch := l.posted
	l.posted = nil
	l.mu.Unlock()

	for _, fn := range batch {
		fn()
	}
	return len(batch)
}

func (l *Loop) popDue(now time.Time) *Timer {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.timers) == 0 || l.timers[0].deadline.After(now) {
		return nil
	}
	return heap.Pop(&l.timers).(*Timer)
}

func (l *Loop) untilNext() time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(l.posted) > 0 {
		return 0
	}
	if len(l.timers) == 0 {
		return idleWait
	}
	d := l.timers[0].deadline.Sub(l.clock.Now())
	if d < 0 {
		return 0
	}
	return d
}

func (l *Loop) signal() {
	select {
	case l.wake <- struct{}{}:
	default:
	}
}
