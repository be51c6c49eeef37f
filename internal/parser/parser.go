// Package parser reads the puzzle text grammar:
//
//	puzzle    := "[" clue_list "|" clue_list "|" grid "]"
//	           | "[" clue_list "|" clue_list "]"
//	clue_list := clue (";" clue)*
//	clue      := number ("," number)*  |  (* empty *)
//	grid      := grid_line (";" grid_line)*
//	grid_line := cell+
//	cell      := "#" | "x" | "." | "!"
//
// The first clue_list is the vertical (column) clues, the second is the
// horizontal (row) clues; an optional third section gives the initial
// grid state. This is a small, bespoke grammar with no recursion or
// precedence to speak of, so it is parsed by hand rather than through a
// parser-combinator or generated-parser library (see DESIGN.md).
package parser

import (
	"strconv"
	"strings"

	"nonogram/internal/core"
	"nonogram/internal/nonogram"
)

// Parse reads one puzzle from s, grounded on the original grammar's
// `puzzle` rule and puzzle.rs::try_from_ast's shape cross-check.
func Parse(s string) (*nonogram.Puzzle, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[0] != '[' || s[len(s)-1] != ']' {
		return nil, &core.ParseError{Input: s, Reason: "puzzle must be wrapped in [ ... ]"}
	}
	body := s[1 : len(s)-1]

	sections := strings.Split(body, "|")
	if len(sections) != 2 && len(sections) != 3 {
		return nil, &core.ParseError{Input: s, Reason: "expected 2 or 3 '|'-separated sections"}
	}

	vertClues, err := parseClueList(sections[0])
	if err != nil {
		return nil, err
	}
	horzClues, err := parseClueList(sections[1])
	if err != nil {
		return nil, err
	}

	puzzle, err := nonogram.NewPuzzle(vertClues, horzClues)
	if err != nil {
		return nil, err
	}

	if len(sections) == 3 {
		if err := parseGridInto(puzzle, sections[2]); err != nil {
			return nil, err
		}
	}
	return puzzle, nil
}

func parseClueList(s string) (nonogram.ClueList, error) {
	parts := strings.Split(s, ";")
	list := make(nonogram.ClueList, len(parts))
	for i, part := range parts {
		clue, err := parseClue(part)
		if err != nil {
			return nil, err
		}
		list[i] = clue
	}
	return list, nil
}

func parseClue(s string) (nonogram.Clue, error) {
	if s == "" {
		return nonogram.Clue{}, nil
	}
	parts := strings.Split(s, ",")
	clue := make(nonogram.Clue, len(parts))
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil || n <= 0 {
			return nil, &core.ParseError{Input: part, Reason: "clue run must be a positive integer"}
		}
		clue[i] = n
	}
	return clue, nil
}

func parseGridInto(puzzle *nonogram.Puzzle, s string) error {
	rows := strings.Split(s, ";")
	if len(rows) != puzzle.Height() {
		return &core.ShapeError{Reason: shapeMismatch("grid rows", puzzle.Height(), len(rows))}
	}
	for y, row := range rows {
		if len(row) != puzzle.Width() {
			return &core.ShapeError{Reason: shapeMismatch("grid row "+strconv.Itoa(y)+" columns", puzzle.Width(), len(row))}
		}
		for x, ch := range row {
			switch ch {
			case '#':
				puzzle.Grid.Fill(x, y)
			case 'x':
				puzzle.Grid.Cross(x, y)
			case '!':
				puzzle.Grid.Fill(x, y)
				puzzle.Grid.Cross(x, y)
			case '.':
			default:
				return &core.ParseError{Input: string(ch), Reason: "grid cell must be one of #, x, ., !"}
			}
		}
	}
	return nil
}

func shapeMismatch(what string, want, got int) string {
	return what + " mismatch: clues want " + strconv.Itoa(want) + ", grid has " + strconv.Itoa(got)
}
