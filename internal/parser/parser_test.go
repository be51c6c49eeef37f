package parser

import (
	"testing"

	"nonogram/internal/display"
	"nonogram/internal/nonogram"
)

func TestParseCluesOnly(t *testing.T) {
	puzzle, err := Parse("[1;2|1;1]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if puzzle.Width() != 2 || puzzle.Height() != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", puzzle.Width(), puzzle.Height())
	}
	if got := puzzle.Clue(nonogram.Vert, 0); len(got) != 1 || got[0] != 1 {
		t.Errorf("vert clue 0 = %v, want [1]", got)
	}
	if got := puzzle.Clue(nonogram.Vert, 1); len(got) != 1 || got[0] != 2 {
		t.Errorf("vert clue 1 = %v, want [2]", got)
	}
	if got := puzzle.Clue(nonogram.Horz, 0); len(got) != 1 || got[0] != 1 {
		t.Errorf("horz clue 0 = %v, want [1]", got)
	}
}

func TestParseWithGrid(t *testing.T) {
	puzzle, err := Parse("[1|1|#]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if puzzle.Grid.Get(0, 0) != nonogram.Filled {
		t.Errorf("cell (0,0) = %v, want Filled", puzzle.Grid.Get(0, 0))
	}
}

func TestParseEmptyClues(t *testing.T) {
	puzzle, err := Parse("[;1|1]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := puzzle.Clue(nonogram.Vert, 0); len(got) != 0 {
		t.Errorf("empty clue = %v, want []", got)
	}
}

func TestParseRejectsMissingBrackets(t *testing.T) {
	if _, err := Parse("1|1"); err == nil {
		t.Errorf("Parse without brackets returned nil error")
	}
}

func TestParseRejectsBadShape(t *testing.T) {
	if _, err := Parse("[1|1|##]"); err == nil {
		t.Errorf("Parse with a grid row longer than width returned nil error")
	}
}

func TestParseRejectsBadCell(t *testing.T) {
	if _, err := Parse("[1|1|?]"); err == nil {
		t.Errorf("Parse with an unrecognized grid cell returned nil error")
	}
}

// TestRoundTripThroughBriefTheme checks that parsing a puzzle, rendering
// it in the Brief theme, and parsing the result again reproduces the same
// clues and grid state.
func TestRoundTripThroughBriefTheme(t *testing.T) {
	original, err := Parse("[2;1|1;2|#.;##]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	assertRoundTrips(t, original)
}

// TestRoundTripAllFourCellKinds extends the basic round-trip check to a
// grid containing Filled, Undecided, Crossed, and Impossible cells, since
// briefCell/parseGridInto both switch on all four.
func TestRoundTripAllFourCellKinds(t *testing.T) {
	original, err := Parse("[1;1;1|1;1|#.x;.!#]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got, want := original.Grid.Get(2, 0), nonogram.Crossed; got != want {
		t.Fatalf("cell (2,0) = %v, want %v", got, want)
	}
	if got, want := original.Grid.Get(1, 1), nonogram.Impossible; got != want {
		t.Fatalf("cell (1,1) = %v, want %v", got, want)
	}
	assertRoundTrips(t, original)
}

func assertRoundTrips(t *testing.T, original *nonogram.Puzzle) {
	t.Helper()

	rendered := display.RenderBrief(original)
	roundTripped, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Parse(RenderBrief(original)): %v; rendered = %q", err, rendered)
	}

	if roundTripped.Width() != original.Width() || roundTripped.Height() != original.Height() {
		t.Fatalf("dimensions changed across round trip: got %dx%d, want %dx%d",
			roundTripped.Width(), roundTripped.Height(), original.Width(), original.Height())
	}
	for y := 0; y < original.Height(); y++ {
		for x := 0; x < original.Width(); x++ {
			if roundTripped.Grid.Get(x, y) != original.Grid.Get(x, y) {
				t.Errorf("cell (%d,%d) = %v, want %v", x, y, roundTripped.Grid.Get(x, y), original.Grid.Get(x, y))
			}
		}
	}
	if display.RenderBrief(roundTripped) != rendered {
		t.Errorf("second round trip diverged: got %q, want %q", display.RenderBrief(roundTripped), rendered)
	}
}
