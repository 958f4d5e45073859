// Package tally counts kills and visits and turns kill milestones into effects
package tally

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/lixenwraith/orchead/effect"
)

// Rule is a milestone as written in config: a boolean expression over count
type Rule struct {
	When   string `toml:"when"`
	Effect string `toml:"effect"`
	Latch  bool   `toml:"latch"`
}

// DefaultRules pulse every tenth kill, salute the 69th and hand the 100th to Sauron
var DefaultRules = []Rule{
	{When: "count % 10 == 0", Effect: string(effect.SauronPulse)},
	{When: "count == 69", Effect: string(effect.Nice)},
	{When: "count == 100", Effect: string(effect.SauronMode), Latch: true},
}

// Env is the expression environment
type Env struct {
	Count int `expr:"count"`
}

// Milestone is a compiled rule
type Milestone struct {
	Rule
	program *vm.Program
	fired   bool
}

// Compile validates and compiles rules in order
// When reg is non-nil every rule must name a registered effect
func Compile(rules []Rule, reg *effect.Registry) ([]*Milestone, error) {
	out := make([]*Milestone, 0, len(rules))
	for i, r := range rules {
		if r.When == "" {
			return nil, fmt.Errorf("milestone %d: empty expression", i)
		}
		if r.Effect == "" {
			return nil, fmt.Errorf("milestone %d (%s): no effect", i, r.When)
		}
		if reg != nil && !reg.Has(effect.ID(r.Effect)) {
			return nil, fmt.Errorf("milestone %d (%s): unknown effect %q", i, r.When, r.Effect)
		}
		program, err := expr.Compile(r.When, expr.Env(Env{}), expr.AsBool())
		if err != nil {
			return nil, fmt.Errorf("milestone %d: compile %q: %w", i, r.When, err)
		}
		out = append(out, &Milestone{Rule: r, program: program})
	}
	return out, nil
}

// Match evaluates the milestone against count
// A latched milestone matches at most once
func (m *Milestone) Match(count int64) (bool, error) {
	if m.Latch && m.fired {
		return false, nil
	}
	res, err := expr.Run(m.program, Env{Count: int(count)})
	if err != nil {
		return false, err
	}
	hit, _ := res.(bool)
	if hit && m.Latch {
		m.fired = true
	}
	return hit, nil
}

// Latched reports whether a latching milestone has fired
func (m *Milestone) Latched() bool { return m.Latch && m.fired }
