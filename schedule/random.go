// Package schedule provides random-delay timers and single-owner timer slots on top of loop
package schedule

import (
	"fmt"
	"time"

	"github.com/lixenwraith/orchead/loop"
)

// Rand is the subset of *rand.Rand used for delay and pool sampling
type Rand interface {
	Int63n(n int64) int64
	Intn(n int) int
}

// RandomDelay samples a delay uniformly from [min, max)
// min == max returns min; max < min is a programming error and panics
func RandomDelay(rng Rand, min, max time.Duration) time.Duration {
	if max < min {
		panic(fmt.Sprintf("schedule: invalid delay range [%v, %v)", min, max))
	}
	if max == min {
		return min
	}
	return min + time.Duration(rng.Int63n(int64(max-min)))
}

// ScheduleRandom fires fn once after a uniformly random delay in [min, max)
func ScheduleRandom(l *loop.Loop, rng Rand, min, max time.Duration, fn func()) *loop.Timer {
	return l.AfterFunc(RandomDelay(rng, min, max), fn)
}

// Pick returns a uniformly chosen element of pool, or the zero value when pool is empty
func Pick[T any](rng Rand, pool []T) T {
	var zero T
	if len(pool) == 0 {
		return zero
	}
	return pool[rng.Intn(len(pool))]
}
