package nonogram

import (
	"testing"

	"nonogram/internal/core"
)

// TestSolverCompletesSimplePuzzle exercises a 3x3 puzzle fully solvable by
// CrowdedClue/ContinuousRange alone (every clue fills its entire line),
// checking the scheduler reaches StatusCompleted with every cell Filled.
func TestSolverCompletesSimplePuzzle(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{3}, {3}, {3}}, ClueList{{3}, {3}, {3}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}

	registry := NewPassRegistry()
	solver := NewSolver(puzzle, registry)

	status, reports, err := solver.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != core.StatusCompleted {
		t.Fatalf("status = %v, want %v", status, core.StatusCompleted)
	}
	if !puzzle.IsComplete() {
		t.Fatalf("puzzle not complete after a Completed run")
	}
	if len(reports) == 0 {
		t.Fatalf("expected at least one step report")
	}

	for x := 0; x < 3; x++ {
		for y := 0; y < 3; y++ {
			if puzzle.Grid.Get(x, y) != Filled {
				t.Errorf("cell (%d,%d) = %v, want Filled", x, y, puzzle.Grid.Get(x, y))
			}
		}
	}
}

// TestSolverStallsOnAmbiguousPuzzle builds a 2x2 puzzle with two distinct
// solutions (a single filled cell on each diagonal) and confirms the
// scheduler exhausts every pass on both axes, reports StatusStalled
// rather than looping forever, and leaves no forced cell behind.
func TestSolverStallsOnAmbiguousPuzzle(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{1}, {1}}, ClueList{{1}, {1}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}

	registry := NewPassRegistry()
	solver := NewSolver(puzzle, registry)

	status, _, err := solver.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != core.StatusStalled {
		t.Fatalf("status = %v, want %v (this puzzle has two solutions)", status, core.StatusStalled)
	}
	for x := 0; x < 2; x++ {
		for y := 0; y < 2; y++ {
			if puzzle.Grid.Get(x, y) != Undecided {
				t.Errorf("cell (%d,%d) = %v, want Undecided (puzzle is genuinely ambiguous)", x, y, puzzle.Grid.Get(x, y))
			}
		}
	}
}

// TestPassRegistryByNameAndSetEnabled exercises the registry's
// introspection surface used for isolating a single pass in tests.
func TestPassRegistryByNameAndSetEnabled(t *testing.T) {
	registry := NewPassRegistry()
	d, ok := registry.ByName("discrete_range")
	if !ok || !d.Enabled {
		t.Fatalf("ByName(discrete_range) = %v, %v; want a known, enabled descriptor", d, ok)
	}

	registry.SetEnabled("discrete_range", false)
	d, _ = registry.ByName("discrete_range")
	if d.Enabled {
		t.Errorf("descriptor still enabled after SetEnabled(false)")
	}

	registry.SetEnabled("not_a_real_pass", true)
}

func TestSolverDoneOnAlreadyCompleteGrid(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{1}}, ClueList{{1}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	puzzle.Grid.Fill(0, 0)

	registry := NewPassRegistry()
	solver := NewSolver(puzzle, registry)
	if !solver.Done() {
		t.Errorf("Done() = false on an already-complete grid")
	}
}

// TestSolverDiscreteRangeMakesProgress builds a 4x1 puzzle whose single
// row has two pre-filled cells and two undecided gaps. CrowdedClue and
// ContinuousRange are disabled here, as the registry doc comment
// describes, so the scheduler cycles through them making no progress
// before reaching DiscreteRange, which crosses both gaps.
// It confirms DiscreteRange is the pass that actually completes the
// puzzle, invoked exactly once, with the last progressing step credited
// to it.
func TestSolverDiscreteRangeMakesProgress(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{1}, {}, {1}, {}}, ClueList{{1, 1}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	puzzle.Grid.Fill(0, 0)
	puzzle.Grid.Fill(2, 0)

	registry := NewPassRegistry()
	registry.SetEnabled("crowded_clue", false)
	registry.SetEnabled("continuous_range", false)
	solver := NewSolver(puzzle, registry)

	status, reports, err := solver.Run()
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if status != core.StatusCompleted {
		t.Fatalf("status = %v, want %v", status, core.StatusCompleted)
	}

	var discreteRangeSteps int
	for _, r := range reports {
		if r.Pass == "discrete_range" {
			discreteRangeSteps++
		}
	}
	if discreteRangeSteps != 1 {
		t.Fatalf("discrete_range ran %d times, want exactly 1: %#v", discreteRangeSteps, reports)
	}
	if len(reports) == 0 || reports[len(reports)-1].Pass != "discrete_range" {
		t.Fatalf("last step report = %#v, want Pass discrete_range", reports)
	}

	want := []Cell{Filled, Crossed, Filled, Crossed}
	for x, w := range want {
		if got := puzzle.Grid.Get(x, 0); got != w {
			t.Errorf("cell (%d,0) = %v, want %v", x, got, w)
		}
	}
}

func TestSolverReportsContradiction(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{1}}, ClueList{{1}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	puzzle.Grid.Fill(0, 0)
	puzzle.Grid.Cross(0, 0)

	registry := NewPassRegistry()
	solver := NewSolver(puzzle, registry)

	_, _, err = solver.Run()
	if err == nil {
		t.Fatalf("Run on a pre-contradicted grid returned nil error")
	}
	if _, ok := err.(*core.ContradictionError); !ok {
		t.Errorf("err = %T, want *core.ContradictionError", err)
	}
}
