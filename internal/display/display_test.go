package display

import (
	"strings"
	"testing"

	"github.com/fatih/color"

	"nonogram/internal/nonogram"
)

func newTestPuzzle(t *testing.T) *nonogram.Puzzle {
	t.Helper()
	puzzle, err := nonogram.NewPuzzle(nonogram.ClueList{{1}, {1}}, nonogram.ClueList{{2}})
	if err != nil {
		t.Fatalf("NewPuzzle: %v", err)
	}
	puzzle.Grid.Fill(0, 0)
	puzzle.Grid.Fill(1, 0)
	return puzzle
}

func TestRenderAsciiContainsGlyphs(t *testing.T) {
	puzzle := newTestPuzzle(t)
	out := Render(puzzle, Ascii)
	if !strings.Contains(out, "#") {
		t.Errorf("ascii render %q does not contain a filled glyph", out)
	}
}

func TestRenderUnicodeContainsGlyphs(t *testing.T) {
	puzzle := newTestPuzzle(t)
	out := Render(puzzle, Unicode)
	if !strings.Contains(out, "■") {
		t.Errorf("unicode render %q does not contain a filled glyph", out)
	}
}

func TestRenderBriefRoutesThroughRender(t *testing.T) {
	puzzle := newTestPuzzle(t)
	if got, want := Render(puzzle, Brief), RenderBrief(puzzle); got != want {
		t.Errorf("Render(_, Brief) = %q, want RenderBrief(_) = %q", got, want)
	}
}

func TestThemeFlagSetAndString(t *testing.T) {
	f := NewThemeFlag(Unicode)
	if f.String() != "unicode" {
		t.Errorf("String() = %q, want unicode", f.String())
	}
	if err := f.Set("ascii"); err != nil {
		t.Fatalf("Set(ascii): %v", err)
	}
	if f.Theme != Ascii {
		t.Errorf("Theme = %v, want Ascii", f.Theme)
	}
	if err := f.Set("bogus"); err == nil {
		t.Errorf("Set(bogus) returned nil error")
	}
}

func TestApplyColorPolicyForcesNoColorOnBrief(t *testing.T) {
	ApplyColorPolicy(Brief, false)
	if !color.NoColor {
		t.Errorf("ApplyColorPolicy(Brief, false) left color.NoColor false")
	}
	ApplyColorPolicy(Unicode, false)
	if color.NoColor {
		t.Errorf("ApplyColorPolicy(Unicode, false) left color.NoColor true")
	}
}
