package nonogram

// Line is a read-only, axis-oriented view of length N over a grid's row
// or column. It is a transient projection: it holds no state of its own,
// only a reference into the grid plus the fixed index of the row/column
// it looks at.
type Line interface {
	Len() int
	Get(i int) Cell
	IsFilled(i int) bool
	IsCrossed(i int) bool

	RangeContainsFilled(start, end int) bool
	RangeContainsUnfilled(start, end int) bool
	RangeContainsUncrossed(start, end int) bool

	// BumpStart returns the smallest index >= start where a run of
	// length n could legally begin, pushed right past any crossed cell
	// inside the tentative span and pulled right past any filled cell
	// immediately following it. See SPEC_FULL.md / spec.md §4.1.
	BumpStart(start, n int) int

	// BumpLast mirrors BumpStart from the right: scanning leftward from
	// the inclusive index last, it returns the largest exclusive end
	// index <= last+1 at which a run of length n could legally end,
	// pushed left past any crossed cell inside the tentative span and
	// pulled left past any filled cell immediately preceding it.
	BumpLast(last, n int) int
}

// LineMut extends Line with mutators. Mutations write through to the
// underlying grid; they are idempotent and monotone (never clear a bit).
type LineMut interface {
	Line
	Fill(i int)
	Cross(i int)
	FillRange(start, end int)
	CrossRange(start, end int)
}

// rangeContainsFilled/Unfilled/Uncrossed are shared by both line view
// implementations; Go has no default trait methods, so they're free
// functions taking a Line.
func rangeContainsFilled(l Line, start, end int) bool {
	for i := start; i < end; i++ {
		if l.IsFilled(i) {
			return true
		}
	}
	return false
}

func rangeContainsUnfilled(l Line, start, end int) bool {
	for i := start; i < end; i++ {
		if !l.IsFilled(i) {
			return true
		}
	}
	return false
}

func rangeContainsUncrossed(l Line, start, end int) bool {
	for i := start; i < end; i++ {
		if !l.IsCrossed(i) {
			return true
		}
	}
	return false
}

// bumpStart is the shared implementation of Line.BumpStart.
func bumpStart(l Line, start, n int) int {
	if start > 0 && l.IsFilled(start-1) {
		start++
	}
	focus := start
	for focus < start+n {
		if focus < l.Len() && l.IsCrossed(focus) {
			start = focus + 1
		}
		focus++
	}
	for focus < l.Len() && l.IsFilled(focus) {
		focus++
	}
	return focus - n
}

// bumpLast is the shared implementation of Line.BumpLast, operating on
// signed offsets since the scan can walk one position left of the line.
func bumpLast(l Line, last, n int) int {
	focus := last
	for focus >= 0 && focus+n >= last+1 {
		if l.IsCrossed(focus) {
			last = focus - 1
		}
		focus--
	}
	for focus >= 0 && l.IsFilled(focus) {
		focus--
	}
	return focus + n + 1
}

type horzLine struct {
	grid *Grid
	y    int
}

func (l horzLine) Len() int              { return l.grid.Width }
func (l horzLine) Get(x int) Cell        { return l.grid.Get(x, l.y) }
func (l horzLine) IsFilled(x int) bool   { return l.grid.IsFilled(x, l.y) }
func (l horzLine) IsCrossed(x int) bool  { return l.grid.IsCrossed(x, l.y) }
func (l horzLine) RangeContainsFilled(start, end int) bool   { return rangeContainsFilled(l, start, end) }
func (l horzLine) RangeContainsUnfilled(start, end int) bool { return rangeContainsUnfilled(l, start, end) }
func (l horzLine) RangeContainsUncrossed(start, end int) bool {
	return rangeContainsUncrossed(l, start, end)
}
func (l horzLine) BumpStart(start, n int) int { return bumpStart(l, start, n) }
func (l horzLine) BumpLast(last, n int) int   { return bumpLast(l, last, n) }
func (l horzLine) Fill(x int)                 { l.grid.Fill(x, l.y) }
func (l horzLine) Cross(x int)                { l.grid.Cross(x, l.y) }
func (l horzLine) FillRange(start, end int) {
	for i := start; i < end; i++ {
		l.Fill(i)
	}
}
func (l horzLine) CrossRange(start, end int) {
	for i := start; i < end; i++ {
		l.Cross(i)
	}
}

type vertLine struct {
	grid *Grid
	x    int
}

func (l vertLine) Len() int              { return l.grid.Height }
func (l vertLine) Get(y int) Cell        { return l.grid.Get(l.x, y) }
func (l vertLine) IsFilled(y int) bool   { return l.grid.IsFilled(l.x, y) }
func (l vertLine) IsCrossed(y int) bool  { return l.grid.IsCrossed(l.x, y) }
func (l vertLine) RangeContainsFilled(start, end int) bool   { return rangeContainsFilled(l, start, end) }
func (l vertLine) RangeContainsUnfilled(start, end int) bool { return rangeContainsUnfilled(l, start, end) }
func (l vertLine) RangeContainsUncrossed(start, end int) bool {
	return rangeContainsUncrossed(l, start, end)
}
func (l vertLine) BumpStart(start, n int) int { return bumpStart(l, start, n) }
func (l vertLine) BumpLast(last, n int) int   { return bumpLast(l, last, n) }
func (l vertLine) Fill(y int)                 { l.grid.Fill(l.x, y) }
func (l vertLine) Cross(y int)                { l.grid.Cross(l.x, y) }
func (l vertLine) FillRange(start, end int) {
	for i := start; i < end; i++ {
		l.Fill(i)
	}
}
func (l vertLine) CrossRange(start, end int) {
	for i := start; i < end; i++ {
		l.Cross(i)
	}
}

// LineString renders a Line using the puzzle text grammar's cell
// characters ('#', 'x', '!', '.'), mainly for debugging and test failure
// output.
func LineString(l Line) string {
	buf := make([]byte, l.Len())
	for i := 0; i < l.Len(); i++ {
		switch l.Get(i) {
		case Filled:
			buf[i] = '#'
		case Crossed:
			buf[i] = 'x'
		case Impossible:
			buf[i] = '!'
		default:
			buf[i] = '.'
		}
	}
	return string(buf)
}
