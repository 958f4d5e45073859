// Package detect holds the stateful input matchers that turn raw input into effect triggers
//
// Every detector owns its state privately and is driven from the loop goroutine.
// No detector observes another; the orchestrator fans each input out to all of them.
package detect

import "github.com/lixenwraith/orchead/effect"

// Dispatch receives the effect a detector matched
type Dispatch func(effect.ID)

func (d Dispatch) fire(id effect.ID) {
	if d != nil && id != "" {
		d(id)
	}
}
