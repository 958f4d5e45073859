package effect

import (
	"log/slog"

	"github.com/google/uuid"

	"github.com/lixenwraith/orchead/loop"
	"github.com/lixenwraith/orchead/schedule"
)

// Executor plays registry timelines on the loop
// Overlap policy is restart: re-triggering a running timed effect cancels the
// earlier invocation's remaining steps and intervals, runs its cleanup, then
// starts over
// Loop-goroutine only
type Executor struct {
	loop *loop.Loop
	reg  *Registry
	env  Env
	log  *slog.Logger

	runs    map[ID]*run
	toggled map[ID]bool
	latched map[ID]bool

	observers []func(ID, Kind)
}

// run is one in-flight timed invocation
type run struct {
	id     string
	def    Definition
	steps  []*loop.Timer
	bursts []*schedule.Slot
	done   *loop.Timer
}

// NewExecutor creates an executor bound to env
func NewExecutor(l *loop.Loop, reg *Registry, env Env, log *slog.Logger) *Executor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Executor{
		loop:    l,
		reg:     reg,
		env:     env,
		log:     log,
		runs:    make(map[ID]*run),
		toggled: make(map[ID]bool),
		latched: make(map[ID]bool),
	}
}

// Observe registers fn to be called for every accepted trigger
func (e *Executor) Observe(fn func(ID, Kind)) {
	e.observers = append(e.observers, fn)
}

// Trigger starts the timeline for id
// Returns false when id is unknown or a latch is already set
func (e *Executor) Trigger(id ID) bool {
	def, ok := e.reg.Lookup(id)
	if !ok {
		e.log.Debug("unknown effect", "effect", string(id))
		return false
	}

	switch def.Kind {
	case KindTimed:
		e.startTimed(def)
	case KindToggle:
		e.flip(def)
	case KindLatch:
		if e.latched[id] {
			return false
		}
		e.latched[id] = true
		e.applySteps(def.Steps)
	}

	for _, fn := range e.observers {
		fn(id, def.Kind)
	}
	return true
}

// Active reports whether id currently has visible state applied
func (e *Executor) Active(id ID) bool {
	if _, ok := e.runs[id]; ok {
		return true
	}
	return e.toggled[id] || e.latched[id]
}

// InFlight returns the number of timed invocations awaiting cleanup
func (e *Executor) InFlight() int {
	return len(e.runs)
}

// Cancel stops a timed invocation early and cleans up after it
func (e *Executor) Cancel(id ID) bool {
	r, ok := e.runs[id]
	if !ok {
		return false
	}
	e.finish(r)
	return true
}

func (e *Executor) startTimed(def Definition) {
	if prev, ok := e.runs[def.ID]; ok {
		e.log.Debug("effect restarted", "effect", string(def.ID), "superseded", prev.id)
		e.finish(prev)
	}

	r := &run{id: uuid.NewString(), def: def}
	e.runs[def.ID] = r
	e.log.Debug("effect started", "effect", string(def.ID), "run", r.id)

	for _, s := range def.Steps {
		op := s.Op
		if s.At == 0 {
			e.apply(r, op)
			continue
		}
		r.steps = append(r.steps, e.loop.AfterFunc(s.At, func() { e.apply(r, op) }))
	}

	r.done = e.loop.AfterFunc(def.Duration, func() {
		if e.runs[def.ID] == r {
			e.finish(r)
		}
	})
}

// finish cancels r's pending work and asserts its cleanup
func (e *Executor) finish(r *run) {
	for _, t := range r.steps {
		t.Stop()
	}
	for _, b := range r.bursts {
		b.Cancel()
	}
	r.done.Stop()
	e.cleanup(r.def.Steps)
	if e.runs[r.def.ID] == r {
		delete(e.runs, r.def.ID)
	}
	e.log.Debug("effect finished", "effect", string(r.def.ID), "run", r.id)
}

func (e *Executor) flip(def Definition) {
	on := !e.toggled[def.ID]
	e.toggled[def.ID] = on
	if on {
		e.applySteps(def.Steps)
		return
	}
	e.cleanup(def.Steps)
	e.applySteps(def.Off)
}

// applySteps plays untracked steps for toggle and latch kinds
func (e *Executor) applySteps(steps []Step) {
	for _, s := range steps {
		op := s.Op
		if s.At == 0 {
			e.apply(nil, op)
			continue
		}
		e.loop.AfterFunc(s.At, func() { e.apply(nil, op) })
	}
}

func (e *Executor) apply(r *run, op Op) {
	env := e.env
	switch op.Kind {
	case OpAddClass:
		if env.Surface != nil {
			env.Surface.AddClass(op.Target, op.Class)
		}
	case OpMessage:
		if env.Messages != nil {
			env.Messages.Notify(op.Text)
		}
	case OpQuote:
		if env.Messages != nil {
			env.Messages.Quote(op.Text)
		}
	case OpSpawn:
		if env.Surface != nil {
			env.Surface.Spawn(op.Group, op.Text, op.Count)
		}
	case OpBurst:
		if env.Surface == nil || r == nil {
			return
		}
		slot := &schedule.Slot{}
		r.bursts = append(r.bursts, slot)
		e.burst(slot, op)
	case OpSound:
		if env.Sound != nil {
			env.Sound.Play(op.Name)
		}
	case OpLoopSound:
		if env.Sound != nil {
			env.Sound.Start(op.Name)
		}
	case OpAnimate:
		if env.Animator != nil {
			env.Animator.Trigger(op.Name)
		}
	}
}

func (e *Executor) burst(slot *schedule.Slot, op Op) {
	e.env.Surface.Spawn(op.Group, op.Text, op.Count)
	slot.Arm(e.loop, op.Every, func() { e.burst(slot, op) })
}

// cleanup removes everything steps may have applied; safe when already absent
func (e *Executor) cleanup(steps []Step) {
	env := e.env
	for _, s := range steps {
		op := s.Op
		switch op.Kind {
		case OpAddClass:
			if env.Surface != nil {
				env.Surface.RemoveClass(op.Target, op.Class)
			}
		case OpSpawn, OpBurst:
			if env.Surface != nil {
				env.Surface.ClearSpawn(op.Group)
			}
		case OpLoopSound:
			if env.Sound != nil {
				env.Sound.Stop(op.Name)
			}
		}
	}
}
