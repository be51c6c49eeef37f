package nonogram

import "nonogram/internal/core"

// Clue is the ordered, possibly-empty sequence of positive run-lengths
// for one line. An empty clue means the whole line must be crossed.
type Clue []int

// Sum returns the sum of the clue's run lengths.
func (c Clue) Sum() int {
	sum := 0
	for _, n := range c {
		sum += n
	}
	return sum
}

// Gaps returns the number of mandatory single-cell gaps between runs:
// len(c)-1, or 0 for an empty clue.
func (c Clue) Gaps() int {
	if len(c) == 0 {
		return 0
	}
	return len(c) - 1
}

// Validate reports an IllFormedClueError if the clue's runs, plus their
// mandatory gaps, cannot possibly fit a line of the given length.
func (c Clue) Validate(axis Axis, index, lineLen int) error {
	if c.Sum()+c.Gaps() > lineLen {
		return &core.IllFormedClueError{Axis: axis, Index: index, Sum: c.Sum(), Gaps: c.Gaps(), Len: lineLen}
	}
	return nil
}

// RangeStarts computes, for each run i, the earliest legal start index
// given the current state of line, by repeated application of
// BumpStart: start := 0; for each run, start := line.BumpStart(start,
// c[i]); record; start += c[i] + 1.
func (c Clue) RangeStarts(line Line) []int {
	starts := make([]int, len(c))
	start := 0
	for i, n := range c {
		start = line.BumpStart(start, n)
		starts[i] = start
		start += n + 1
	}
	return starts
}

// RangeEnds computes, for each run i, the latest legal exclusive end
// index given the current state of line, symmetric to RangeStarts but
// scanning from the right via BumpLast. Results are stored directly in
// forward (run-index) order: ends[i] belongs to run i.
func (c Clue) RangeEnds(line Line) []int {
	ends := make([]int, len(c))
	last := line.Len() - 1
	for i := len(c) - 1; i >= 0; i-- {
		n := c[i]
		last = line.BumpLast(last, n)
		ends[i] = last
		last -= n + 2
	}
	return ends
}

// ClueList holds one Clue per line along an axis.
type ClueList []Clue

// Validate checks every clue in the list against the given fixed line
// length (the orthogonal axis's extent).
func (cl ClueList) Validate(axis Axis, lineLen int) error {
	for i, c := range cl {
		if err := c.Validate(axis, i, lineLen); err != nil {
			return err
		}
	}
	return nil
}
