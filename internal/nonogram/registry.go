// Package nonogram: pass registry.
//
// # Pass Enable/Disable System
//
// The three line passes are normally driven in a fixed order by the
// Solver's scheduler (see solver.go), but the registry also supports
// disabling a pass at runtime. This is useful for:
//   - testing a single pass in isolation against a fixture line
//   - asserting that a given scenario needs DiscreteRange at all
//   - measuring how far CrowdedClue + ContinuousRange alone can get
//
// A disabled pass is skipped by the scheduler as if it always produced
// zero hints, which still drives fail_count and promotion/demotion the
// normal way.
package nonogram

import "nonogram/internal/nonogram/passes"

// PassDescriptor names one of the three passes and whether it is
// currently enabled.
type PassDescriptor struct {
	Name    string
	Pass    passes.LinePass
	Enabled bool
}

// PassRegistry holds the three passes in their fixed scheduling order.
type PassRegistry struct {
	order  []*PassDescriptor
	byName map[string]*PassDescriptor
}

// NewPassRegistry builds a registry with all three passes enabled, in
// the [CrowdedClue, ContinuousRange, DiscreteRange] scheduling order.
func NewPassRegistry() *PassRegistry {
	r := &PassRegistry{byName: make(map[string]*PassDescriptor)}
	r.register(passes.CrowdedCluePass{})
	r.register(passes.ContinuousRangePass{})
	r.register(passes.DiscreteRangePass{})
	return r
}

func (r *PassRegistry) register(p passes.LinePass) {
	d := &PassDescriptor{Name: p.Name(), Pass: p, Enabled: true}
	r.order = append(r.order, d)
	r.byName[p.Name()] = d
}

// At returns the pass descriptor at the given scheduler index.
func (r *PassRegistry) At(index int) (*PassDescriptor, bool) {
	if index < 0 || index >= len(r.order) {
		return nil, false
	}
	return r.order[index], true
}

// Len is the number of registered passes.
func (r *PassRegistry) Len() int { return len(r.order) }

// ByName looks up a pass descriptor by its constant name.
func (r *PassRegistry) ByName(name string) (*PassDescriptor, bool) {
	d, ok := r.byName[name]
	return d, ok
}

// SetEnabled toggles a pass by name. Unknown names are a no-op, mirroring
// the teacher registry's tolerant SetEnabled behavior.
func (r *PassRegistry) SetEnabled(name string, enabled bool) {
	if d, ok := r.byName[name]; ok {
		d.Enabled = enabled
	}
}

// Run executes the pass at index against clue/line, or returns nil
// without running it if the pass is disabled or the index is invalid.
func (r *PassRegistry) Run(index int, clue Clue, line Line) []LineHint {
	d, ok := r.At(index)
	if !ok || !d.Enabled {
		return nil
	}
	return d.Pass.Run(clue, line)
}
