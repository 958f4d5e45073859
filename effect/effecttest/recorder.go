// Package effecttest provides an in-memory effect environment for tests
package effecttest

import (
	"sort"

	"github.com/lixenwraith/orchead/effect"
)

// Recorder implements effect.Surface, effect.Messenger, effect.Sounder and
// effect.Animator, recording every call
type Recorder struct {
	classes  map[effect.Target]map[string]bool
	spawns   map[string]int
	Restarts []string
	Notices  []string
	Quotes   []string
	Played   []string
	Looping  map[string]bool
	Animated []string
}

// New creates an empty recorder
func New() *Recorder {
	return &Recorder{
		classes: map[effect.Target]map[string]bool{
			effect.Focal: {},
			effect.Body:  {},
		},
		spawns:  make(map[string]int),
		Looping: make(map[string]bool),
	}
}

// Env returns an effect.Env backed by the recorder
func (r *Recorder) Env() effect.Env {
	return effect.Env{Surface: r, Messages: r, Sound: r, Animator: r}
}

func (r *Recorder) AddClass(target effect.Target, class string) {
	r.classes[target][class] = true
}

func (r *Recorder) RemoveClass(target effect.Target, class string) {
	delete(r.classes[target], class)
}

func (r *Recorder) Restart(target effect.Target, class string) {
	delete(r.classes[target], class)
	r.classes[target][class] = true
	r.Restarts = append(r.Restarts, class)
}

func (r *Recorder) Spawn(group, _ string, count int) {
	r.spawns[group] += count
}

func (r *Recorder) ClearSpawn(group string) {
	delete(r.spawns, group)
}

func (r *Recorder) Notify(text string) { r.Notices = append(r.Notices, text) }
func (r *Recorder) Quote(text string)  { r.Quotes = append(r.Quotes, text) }

func (r *Recorder) Play(name string)  { r.Played = append(r.Played, name) }
func (r *Recorder) Start(name string) { r.Looping[name] = true }
func (r *Recorder) Stop(name string)  { delete(r.Looping, name) }

func (r *Recorder) Trigger(name string) { r.Animated = append(r.Animated, name) }

// Has reports whether class is applied on target
func (r *Recorder) Has(target effect.Target, class string) bool {
	return r.classes[target][class]
}

// Classes returns the sorted classes on target
func (r *Recorder) Classes(target effect.Target) []string {
	out := make([]string, 0, len(r.classes[target]))
	for c := range r.classes[target] {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// Spawned returns the live decoration count in group
func (r *Recorder) Spawned(group string) int {
	return r.spawns[group]
}

// LastNotice returns the most recent notification, or ""
func (r *Recorder) LastNotice() string {
	if len(r.Notices) == 0 {
		return ""
	}
	return r.Notices[len(r.Notices)-1]
}
