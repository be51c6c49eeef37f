package nonogram

// LineHint is the capability set every hint variant implements: Check
// reports whether applying the hint would still change the line (a
// hint may go stale between being generated and being applied, if an
// earlier hint in the same batch already touched the same cells), and
// Apply performs the mutation.
type LineHint interface {
	Check(line Line) bool
	Apply(line LineMut)
}

// Hint pairs a LineHint payload with the axis and line index it applies
// to, so a driver can apply it to the right view of the grid without the
// pass itself needing to know about the grid as a whole.
type Hint struct {
	Axis    Axis
	Line    int
	Payload LineHint
}

// Apply runs the hint's payload against the appropriate mutable view of
// grid.
func (h Hint) Apply(grid *Grid) {
	h.Payload.Apply(grid.Mut(h.Axis, h.Line))
}

// Check reports whether the hint would still change the grid.
func (h Hint) Check(grid *Grid) bool {
	return h.Payload.Check(grid.View(h.Axis, h.Line))
}
