package effect

import (
	"fmt"
	"sort"
)

// Registry maps effect IDs to definitions; immutable once built
type Registry struct {
	defs map[ID]Definition
}

// NewRegistry validates and indexes defs
func NewRegistry(defs ...Definition) (*Registry, error) {
	r := &Registry{defs: make(map[ID]Definition, len(defs))}
	for _, d := range defs {
		if d.ID == "" {
			return nil, fmt.Errorf("effect definition with empty id")
		}
		if _, dup := r.defs[d.ID]; dup {
			return nil, fmt.Errorf("effect %q registered twice", d.ID)
		}
		if err := validate(d); err != nil {
			return nil, fmt.Errorf("effect %q: %w", d.ID, err)
		}
		d.Steps = append([]Step(nil), d.Steps...)
		d.Off = append([]Step(nil), d.Off...)
		r.defs[d.ID] = d
	}
	return r, nil
}

func validate(d Definition) error {
	for i, s := range d.Steps {
		if s.At < 0 {
			return fmt.Errorf("step %d has negative offset", i)
		}
		if d.Kind == KindTimed && s.At > d.Duration {
			return fmt.Errorf("step %d at %v is after cleanup at %v", i, s.At, d.Duration)
		}
		if s.Op.Kind == OpBurst && s.Op.Every <= 0 {
			return fmt.Errorf("step %d burst needs a positive interval", i)
		}
		if d.Kind != KindTimed && (s.Op.Kind == OpBurst || s.Op.Kind == OpLoopSound) {
			return fmt.Errorf("step %d: %s effects cannot own intervals", i, d.Kind)
		}
	}
	return nil
}

// Lookup returns the definition for id
func (r *Registry) Lookup(id ID) (Definition, bool) {
	d, ok := r.defs[id]
	return d, ok
}

// Has reports whether id is registered
func (r *Registry) Has(id ID) bool {
	_, ok := r.defs[id]
	return ok
}

// IDs returns all registered IDs in sorted order
func (r *Registry) IDs() []ID {
	ids := make([]ID, 0, len(r.defs))
	for id := range r.defs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
