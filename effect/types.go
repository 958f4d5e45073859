// Package effect holds the declarative effect catalog and the executor that plays timelines
package effect

import "time"

// ID identifies one effect timeline
type ID string

// Target selects which shared visual handle an op mutates
type Target uint8

const (
	Focal Target = iota // The orc head
	Body                // The whole screen
)

func (t Target) String() string {
	switch t {
	case Focal:
		return "focal"
	case Body:
		return "body"
	}
	return "unknown"
}

// Surface is the visual state the executor mutates
// Every method must be idempotent set-membership: adding a present class or
// removing an absent one is a no-op
type Surface interface {
	AddClass(target Target, class string)
	RemoveClass(target Target, class string)
	// Restart removes class, forces the surface to observe the removal, then reapplies it
	// so re-applying a running animation starts it over
	Restart(target Target, class string)
	// Spawn adds count transient decorations under group at random positions
	Spawn(group, text string, count int)
	// ClearSpawn removes every decoration in group
	ClearSpawn(group string)
}

// Messenger shows text on the shared notification surface and the quote overlay
type Messenger interface {
	Notify(text string)
	Quote(text string)
}

// Sounder plays named sounds; failures are the implementation's concern
type Sounder interface {
	Play(name string)
	Start(name string) // Loops until Stop
	Stop(name string)
}

// Animator applies a named focal animation with its own restart/auto-remove contract
type Animator interface {
	Trigger(name string)
}

// Env bundles the collaborators a timeline acts on; nil members are skipped
type Env struct {
	Surface  Surface
	Messages Messenger
	Sound    Sounder
	Animator Animator
}

// Kind selects how a definition behaves across invocations
type Kind uint8

const (
	KindTimed  Kind = iota // Steps then cleanup at Duration; re-trigger restarts
	KindToggle             // Alternates between applied and cleaned up
	KindLatch              // Applies once for the process lifetime
)

func (k Kind) String() string {
	switch k {
	case KindTimed:
		return "timed"
	case KindToggle:
		return "toggle"
	case KindLatch:
		return "latch"
	}
	return "unknown"
}

// OpKind discriminates timeline mutations
type OpKind uint8

const (
	OpAddClass OpKind = iota
	OpMessage
	OpQuote
	OpSpawn
	OpBurst // Repeating spawn every Op.Every until cleanup
	OpSound
	OpLoopSound // Sound that runs until cleanup
	OpAnimate
)

// Op is one mutation descriptor; only the fields relevant to Kind are read
type Op struct {
	Kind   OpKind
	Target Target
	Class  string
	Text   string
	Group  string
	Count  int
	Every  time.Duration
	Name   string // Sound or animation name
}

// Step is an op at an offset from the invocation start
type Step struct {
	At time.Duration
	Op Op
}

// Definition is the declarative timeline for one effect
type Definition struct {
	ID       ID
	Kind     Kind
	Steps    []Step
	Off      []Step        // Toggle only: steps played when switching off
	Duration time.Duration // Timed only: cleanup offset
}

// At places op at offset d
func At(d time.Duration, op Op) Step {
	return Step{At: d, Op: op}
}

// Now places op at the invocation start
func Now(op Op) Step {
	return Step{Op: op}
}

func AddClass(target Target, class string) Op {
	return Op{Kind: OpAddClass, Target: target, Class: class}
}

func Message(text string) Op {
	return Op{Kind: OpMessage, Text: text}
}

func Quote(text string) Op {
	return Op{Kind: OpQuote, Text: text}
}

func Spawn(group, text string, count int) Op {
	return Op{Kind: OpSpawn, Group: group, Text: text, Count: count}
}

func Burst(group, text string, count int, every time.Duration) Op {
	return Op{Kind: OpBurst, Group: group, Text: text, Count: count, Every: every}
}

func Sound(name string) Op {
	return Op{Kind: OpSound, Name: name}
}

func LoopSound(name string) Op {
	return Op{Kind: OpLoopSound, Name: name}
}

func Animate(name string) Op {
	return Op{Kind: OpAnimate, Name: name}
}
