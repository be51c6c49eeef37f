package display

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"nonogram/internal/nonogram"
)

var (
	filledColor = color.New(color.FgGreen, color.Bold)
	crossColor  = color.New(color.FgHiBlack)
	impColor    = color.New(color.FgRed, color.Bold)
	clueColor   = color.New(color.FgCyan)
)

// Render draws puzzle in the given theme. Brief renders the puzzle text
// grammar itself (a round trip through internal/parser reproduces the
// same Puzzle); Ascii and Unicode render a human-readable grid with a
// staircase vertical-clue header and a per-row clue gutter, mirroring
// puzzle.rs's View.
func Render(puzzle *nonogram.Puzzle, theme Theme) string {
	if theme == Brief {
		return RenderBrief(puzzle)
	}

	var b strings.Builder
	w := puzzle.Width()
	maxVert := maxClueLen(puzzle.VertClues)
	maxHorz := maxClueLen(puzzle.HorzClues)

	for i := 0; i < maxVert; i++ {
		fmt.Fprint(&b, strings.Repeat(" ", 3*maxHorz))
		for _, clue := range puzzle.VertClues {
			if len(clue) > maxVert-i-1 {
				n := clue[len(clue)-(maxVert-i)]
				fmt.Fprint(&b, padClueCell(n))
			} else {
				fmt.Fprint(&b, "  ")
			}
		}
		b.WriteByte('\n')
	}

	for y, clue := range puzzle.HorzClues {
		for i := 0; i < maxHorz; i++ {
			if len(clue) > maxHorz-i-1 {
				n := clue[len(clue)-(maxHorz-i)]
				fmt.Fprint(&b, " "+padClueCell(n))
			} else {
				fmt.Fprint(&b, "   ")
			}
		}
		for x := 0; x < w; x++ {
			b.WriteByte(' ')
			b.WriteString(renderCell(puzzle.Grid.Get(x, y), theme))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

func renderCell(cell nonogram.Cell, theme Theme) string {
	switch cell {
	case nonogram.Filled:
		return filledColor.Sprint(theme.filled())
	case nonogram.Crossed:
		return crossColor.Sprint(theme.crossed())
	case nonogram.Impossible:
		return impColor.Sprint(theme.impossible())
	default:
		return theme.undecided()
	}
}

func padClueCell(n int) string {
	s := strconv.Itoa(n)
	if len(s) >= 2 {
		return clueColor.Sprint(s)
	}
	return clueColor.Sprint(" " + s)
}

func maxClueLen(list nonogram.ClueList) int {
	max := 0
	for _, clue := range list {
		if len(clue) > max {
			max = len(clue)
		}
	}
	return max
}

// RenderBrief serializes puzzle back into the puzzle text grammar,
// including its current grid state, so that internal/parser.Parse can
// round-trip it exactly.
func RenderBrief(puzzle *nonogram.Puzzle) string {
	var b strings.Builder
	b.WriteByte('[')
	writeClueList(&b, puzzle.VertClues)
	b.WriteByte('|')
	writeClueList(&b, puzzle.HorzClues)
	b.WriteByte('|')
	for y := 0; y < puzzle.Height(); y++ {
		if y > 0 {
			b.WriteByte(';')
		}
		for x := 0; x < puzzle.Width(); x++ {
			b.WriteString(briefCell(puzzle.Grid.Get(x, y)))
		}
	}
	b.WriteByte(']')
	return b.String()
}

func briefCell(cell nonogram.Cell) string {
	switch cell {
	case nonogram.Filled:
		return "#"
	case nonogram.Crossed:
		return "x"
	case nonogram.Impossible:
		return "!"
	default:
		return "."
	}
}

func writeClueList(b *strings.Builder, list nonogram.ClueList) {
	for i, clue := range list {
		if i > 0 {
			b.WriteByte(';')
		}
		writeClue(b, clue)
	}
}

func writeClue(b *strings.Builder, clue nonogram.Clue) {
	for i, n := range clue {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(n))
	}
}
