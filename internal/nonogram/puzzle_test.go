package nonogram

import (
	"testing"

	"nonogram/internal/core"
)

func TestNewPuzzleDimensions(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{1}, {1}, {}}, ClueList{{1, 1}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if puzzle.Width() != 3 {
		t.Errorf("Width() = %d, want 3", puzzle.Width())
	}
	if puzzle.Height() != 1 {
		t.Errorf("Height() = %d, want 1", puzzle.Height())
	}
	if puzzle.LineCount(Vert) != 3 || puzzle.LineCount(Horz) != 1 {
		t.Errorf("LineCount mismatch: vert=%d horz=%d", puzzle.LineCount(Vert), puzzle.LineCount(Horz))
	}
	if puzzle.IsComplete() {
		t.Errorf("a freshly built puzzle should not be complete")
	}
}

func TestNewPuzzleRejectsOversizedClue(t *testing.T) {
	_, err := NewPuzzle(ClueList{{10}}, ClueList{{1}})
	if err == nil {
		t.Fatalf("NewPuzzle with an oversized vertical clue returned nil error")
	}
	if _, ok := err.(*core.IllFormedClueError); !ok {
		t.Errorf("err = %T, want *core.IllFormedClueError", err)
	}
}

func TestPuzzleClueLookup(t *testing.T) {
	puzzle, err := NewPuzzle(ClueList{{1}, {2}, {1}}, ClueList{{1, 1}, {1}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	if got := puzzle.Clue(Vert, 1); len(got) != 1 || got[0] != 2 {
		t.Errorf("Clue(Vert, 1) = %v, want [2]", got)
	}
	if got := puzzle.Clue(Horz, 0); len(got) != 2 || got[0] != 1 || got[1] != 1 {
		t.Errorf("Clue(Horz, 0) = %v, want [1 1]", got)
	}
}
