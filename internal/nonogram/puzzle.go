package nonogram

// Puzzle owns a pair of clue lists and the grid they describe. It is
// complete iff no cell is Undecided.
type Puzzle struct {
	VertClues ClueList
	HorzClues ClueList
	Grid      *Grid
}

// NewPuzzle builds a Puzzle from clue lists, sizing the grid from them,
// and validates that every clue can possibly fit its line. width is the
// number of columns (len(vertClues)), height the number of rows
// (len(horzClues)).
func NewPuzzle(vertClues, horzClues ClueList) (*Puzzle, error) {
	width := len(vertClues)
	height := len(horzClues)

	if err := vertClues.Validate(Vert, height); err != nil {
		return nil, err
	}
	if err := horzClues.Validate(Horz, width); err != nil {
		return nil, err
	}

	return &Puzzle{
		VertClues: vertClues,
		HorzClues: horzClues,
		Grid:      NewGrid(width, height),
	}, nil
}

// Width is the number of columns (== len(VertClues)).
func (p *Puzzle) Width() int { return len(p.VertClues) }

// Height is the number of rows (== len(HorzClues)).
func (p *Puzzle) Height() int { return len(p.HorzClues) }

// IsComplete reports whether every cell of the grid is decided.
func (p *Puzzle) IsComplete() bool { return p.Grid.IsComplete() }

// Clue returns the clue for the given axis/index.
func (p *Puzzle) Clue(axis Axis, index int) Clue {
	if axis == Vert {
		return p.VertClues[index]
	}
	return p.HorzClues[index]
}

// LineCount returns the number of lines along the given axis: the
// number of columns for Vert, the number of rows for Horz.
func (p *Puzzle) LineCount(axis Axis) int {
	if axis == Vert {
		return p.Width()
	}
	return p.Height()
}
