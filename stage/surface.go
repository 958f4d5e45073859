// Package stage owns the shared visual state and draws it to a tcell screen
package stage

import (
	"sort"
	"sync"
	"time"

	"github.com/lixenwraith/orchead/effect"
	"github.com/lixenwraith/orchead/schedule"
)

// spritePrecision is the resolution of random sprite placement
const spritePrecision = 1000

// Sprite is one transient decoration, positioned as a fraction of the screen
type Sprite struct {
	Group string
	Text  string
	X, Y  float64 // [0, 1)
	Born  time.Time
}

// Surface is the class and spawn state behind effect.Surface
// Mutations come from the loop goroutine; the renderer reads through Snapshot
type Surface struct {
	mu      sync.RWMutex
	classes map[effect.Target]map[string]time.Time
	spawns  map[string][]Sprite

	rng schedule.Rand
	now func() time.Time
}

// NewSurface creates an empty surface; now stamps class and sprite start times
func NewSurface(rng schedule.Rand, now func() time.Time) *Surface {
	if now == nil {
		now = time.Now
	}
	return &Surface{
		classes: map[effect.Target]map[string]time.Time{
			effect.Focal: {},
			effect.Body:  {},
		},
		spawns: make(map[string][]Sprite),
		rng:    rng,
		now:    now,
	}
}

func (s *Surface) AddClass(target effect.Target, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.set(target)
	if _, ok := set[class]; !ok {
		set[class] = s.now()
	}
}

func (s *Surface) RemoveClass(target effect.Target, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.set(target), class)
}

// Restart re-stamps class so its animation phase starts over
func (s *Surface) Restart(target effect.Target, class string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	set := s.set(target)
	delete(set, class)
	set[class] = s.now()
}

func (s *Surface) Spawn(group, text string, count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	born := s.now()
	for i := 0; i < count; i++ {
		s.spawns[group] = append(s.spawns[group], Sprite{
			Group: group,
			Text:  text,
			X:     float64(s.rng.Intn(spritePrecision)) / spritePrecision,
			Y:     float64(s.rng.Intn(spritePrecision)) / spritePrecision,
			Born:  born,
		})
	}
}

func (s *Surface) ClearSpawn(group string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.spawns, group)
}

// Has reports whether class is applied to target
func (s *Surface) Has(target effect.Target, class string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.classes[target][class]
	return ok
}

// Classes returns the classes applied to target in sorted order
func (s *Surface) Classes(target effect.Target) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, 0, len(s.classes[target]))
	for c := range s.classes[target] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// SpriteCount returns the number of live sprites in group
func (s *Surface) SpriteCount(group string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.spawns[group])
}

// Snapshot is a consistent copy of the surface for one frame
type Snapshot struct {
	Focal   map[string]time.Time
	Body    map[string]time.Time
	Sprites []Sprite
}

// Snapshot copies the current state
func (s *Surface) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := Snapshot{
		Focal: make(map[string]time.Time, len(s.classes[effect.Focal])),
		Body:  make(map[string]time.Time, len(s.classes[effect.Body])),
	}
	for c, t := range s.classes[effect.Focal] {
		snap.Focal[c] = t
	}
	for c, t := range s.classes[effect.Body] {
		snap.Body[c] = t
	}

	groups := make([]string, 0, len(s.spawns))
	for g := range s.spawns {
		groups = append(groups, g)
	}
	sort.Strings(groups)
	for _, g := range groups {
		snap.Sprites = append(snap.Sprites, s.spawns[g]...)
	}
	return snap
}

func (s *Surface) set(target effect.Target) map[string]time.Time {
	set, ok := s.classes[target]
	if !ok {
		set = make(map[string]time.Time)
		s.classes[target] = set
	}
	return set
}
