package nonogram

import (
	"github.com/willf/bitset"
)

// Grid is the two-bit-per-cell store backing a puzzle: width W, height H,
// and two parallel bitsets (filled, crossed) of size W*H, indexed
// y*W+x. A cell's four-valued state is derived from the pair of bits; it
// is never stored directly.
type Grid struct {
	Width, Height int
	filled        *bitset.BitSet
	crossed       *bitset.BitSet
}

// NewGrid allocates an empty (all-Undecided) grid of the given size.
func NewGrid(width, height int) *Grid {
	n := uint(width * height)
	return &Grid{
		Width:   width,
		Height:  height,
		filled:  bitset.New(n),
		crossed: bitset.New(n),
	}
}

func (g *Grid) index(x, y int) uint {
	return uint(y*g.Width + x)
}

// Get returns the four-valued state of the cell at (x, y).
func (g *Grid) Get(x, y int) Cell {
	i := g.index(x, y)
	return cellFrom(g.filled.Test(i), g.crossed.Test(i))
}

// Fill sets the filled bit at (x, y) and reports whether it transitioned
// 0->1. Filling is idempotent and monotone: it never clears a bit.
func (g *Grid) Fill(x, y int) bool {
	i := g.index(x, y)
	was := g.filled.Test(i)
	g.filled.Set(i)
	return !was
}

// Cross sets the crossed bit at (x, y) and reports whether it
// transitioned 0->1.
func (g *Grid) Cross(x, y int) bool {
	i := g.index(x, y)
	was := g.crossed.Test(i)
	g.crossed.Set(i)
	return !was
}

// IsFilled reports whether the filled bit is set at (x, y).
func (g *Grid) IsFilled(x, y int) bool {
	return g.filled.Test(g.index(x, y))
}

// IsCrossed reports whether the crossed bit is set at (x, y).
func (g *Grid) IsCrossed(x, y int) bool {
	return g.crossed.Test(g.index(x, y))
}

// IsComplete reports whether every cell has been decided (filled or
// crossed, including Impossible).
func (g *Grid) IsComplete() bool {
	n := uint(g.Width * g.Height)
	for i := uint(0); i < n; i++ {
		if !g.filled.Test(i) && !g.crossed.Test(i) {
			return false
		}
	}
	return true
}

// FirstImpossible scans the grid in row-major order for the first cell
// driven to the Impossible state, reporting its coordinates.
func (g *Grid) FirstImpossible() (x, y int, found bool) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			i := g.index(col, row)
			if g.filled.Test(i) && g.crossed.Test(i) {
				return col, row, true
			}
		}
	}
	return 0, 0, false
}

// HorzView returns a read-only Line over row y.
func (g *Grid) HorzView(y int) Line { return horzLine{grid: g, y: y} }

// VertView returns a read-only Line over column x.
func (g *Grid) VertView(x int) Line { return vertLine{grid: g, x: x} }

// HorzMut returns a mutable Line over row y.
func (g *Grid) HorzMut(y int) LineMut { return horzLine{grid: g, y: y} }

// VertMut returns a mutable Line over column x.
func (g *Grid) VertMut(x int) LineMut { return vertLine{grid: g, x: x} }

// View returns a Line view over the given axis/index, matching the
// scheduler's (axis, line index) addressing.
func (g *Grid) View(axis Axis, index int) Line {
	if axis == Vert {
		return g.VertView(index)
	}
	return g.HorzView(index)
}

// Mut returns a mutable Line over the given axis/index.
func (g *Grid) Mut(axis Axis, index int) LineMut {
	if axis == Vert {
		return g.VertMut(index)
	}
	return g.HorzMut(index)
}
