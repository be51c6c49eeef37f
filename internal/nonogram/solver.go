package nonogram

import (
	"nonogram/internal/core"
	"nonogram/pkg/constants"
)

// describer is implemented by hint payload types that want to surface a
// human-readable summary in a StepReport. It is checked by interface
// assertion rather than required by LineHint, so the passes package
// never needs to import core.
type describer interface {
	Describe() string
}

// StepResult is the outcome of one Solver.Step call: the pass and axis
// that ran, the hints it produced (already applied), and whether any of
// them changed the grid.
type StepResult struct {
	Pass       string
	Axis       Axis
	Hints      []Hint
	Progressed bool
}

// Report converts a StepResult into the introspection-facing
// core.StepReport shape, tagging it with the scheduler step index it
// occurred at.
func (r StepResult) Report(stepIndex int) core.StepReport {
	descriptions := make([]string, 0, len(r.Hints))
	for _, h := range r.Hints {
		if d, ok := h.Payload.(describer); ok {
			descriptions = append(descriptions, d.Describe())
		}
	}
	return core.StepReport{
		StepIndex: stepIndex,
		Pass:      r.Pass,
		Axis:      r.Axis,
		Hints:     descriptions,
	}
}

// Solver drives the three-pass schedule described by the hint
// dispenser: it runs one pass across every line of one axis per step,
// promoting to the next pass after two consecutive stalls, demoting
// back to ContinuousRange after any DiscreteRange success, and
// guaranteeing CrowdedClue runs exactly once per axis before
// ContinuousRange ever gets a turn.
type Solver struct {
	registry *PassRegistry
	puzzle   *Puzzle
	maxSteps int

	curPass   int
	curAxis   Axis
	failCount int
}

// NewSolver builds a Solver in its initial state (CrowdedClue, Horz, 0)
// against puzzle, using registry to resolve passes.
func NewSolver(puzzle *Puzzle, registry *PassRegistry) *Solver {
	return &Solver{
		registry: registry,
		puzzle:   puzzle,
		maxSteps: constants.MaxTotalSteps,
		curPass:  0,
		curAxis:  Horz,
	}
}

// SetMaxSteps overrides the safety-net step cap used by Run.
func (s *Solver) SetMaxSteps(n int) { s.maxSteps = n }

// Done reports whether the scheduler has exhausted every pass on both
// axes without the grid becoming complete, the grid is already complete,
// or the grid already holds a contradiction.
func (s *Solver) Done() bool {
	if _, _, found := s.puzzle.Grid.FirstImpossible(); found {
		return true
	}
	return s.puzzle.IsComplete() || s.curPass >= s.registry.Len()
}

// Step runs the current pass across every line of the current axis,
// applies every hint it produces, and advances the scheduler state. It
// returns a ContradictionError the moment any applied hint drives a
// cell to Impossible.
func (s *Solver) Step() (StepResult, error) {
	ranPass := s.curPass
	ranAxis := s.curAxis

	var hints []Hint
	n := s.puzzle.LineCount(ranAxis)
	for i := 0; i < n; i++ {
		clue := s.puzzle.Clue(ranAxis, i)
		line := s.puzzle.Grid.View(ranAxis, i)
		for _, payload := range s.registry.Run(ranPass, clue, line) {
			hints = append(hints, Hint{Axis: ranAxis, Line: i, Payload: payload})
		}
	}

	for _, h := range hints {
		h.Apply(s.puzzle.Grid)
	}

	if x, y, found := s.puzzle.Grid.FirstImpossible(); found {
		index := y
		if ranAxis == Vert {
			index = x
		}
		return StepResult{}, &core.ContradictionError{
			Axis:  ranAxis,
			Index: index,
			Cell:  y*s.puzzle.Width() + x,
		}
	}

	progressed := len(hints) > 0
	passName := ""
	if d, ok := s.registry.At(ranPass); ok {
		passName = d.Name
	}

	s.advance(progressed, ranPass, ranAxis)

	return StepResult{
		Pass:       passName,
		Axis:       ranAxis,
		Hints:      hints,
		Progressed: progressed,
	}, nil
}

// advance applies the scheduler's transition rules: reset-or-increment
// fail_count, demote out of DiscreteRange on success, flip axis,
// promote on two consecutive stalls, and force CrowdedClue to yield to
// ContinuousRange the moment it has run on both axes.
func (s *Solver) advance(progressed bool, ranPass int, ranAxis Axis) {
	if progressed {
		s.failCount = 0
		if ranPass > 1 {
			s.curPass = 1
		}
	} else {
		s.failCount++
	}

	s.curAxis = ranAxis.Flip()

	if !progressed && s.failCount >= constants.StallPromotions {
		s.curPass++
		s.failCount = 0
	}

	if s.curAxis == Horz && ranPass == 0 {
		s.curPass = 1
		s.failCount = 0
	}
}

// Run steps the scheduler until the puzzle is complete, it stalls with
// every pass exhausted on both axes, or a contradiction is found. It
// returns the terminal status plus a full StepReport trace for
// introspection and testing.
func (s *Solver) Run() (core.Status, []core.StepReport, error) {
	var reports []core.StepReport
	if x, y, found := s.puzzle.Grid.FirstImpossible(); found {
		return "", reports, &core.ContradictionError{Axis: s.curAxis, Index: y, Cell: y*s.puzzle.Width() + x}
	}
	for step := 0; step < s.maxSteps; step++ {
		if s.puzzle.IsComplete() {
			return core.StatusCompleted, reports, nil
		}
		if s.curPass >= s.registry.Len() {
			return core.StatusStalled, reports, nil
		}

		result, err := s.Step()
		if err != nil {
			return "", reports, err
		}
		reports = append(reports, result.Report(step))
	}
	return core.StatusStalled, reports, core.ErrStall
}
