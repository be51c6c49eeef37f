package passes

import (
	"fmt"

	"github.com/willf/bitset"

	"nonogram/internal/nonogram"
	"nonogram/pkg/constants"
)

// filledRunHint fills a maximal run of cells that every legal placement
// of the clue's runs agrees must be filled. Numbers records which
// run-index(es) could occupy the run, for reporting only — it never
// affects Apply.
type filledRunHint struct {
	start, end int
	numbers    []bool
}

func (h filledRunHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUnfilled(h.start, h.end)
}

func (h filledRunHint) Apply(line nonogram.LineMut) {
	line.FillRange(h.start, h.end)
}

func (h filledRunHint) Describe() string {
	return fmt.Sprintf("discrete_range: fill run [%d,%d) from %v", h.start, h.end, h.Numbers())
}

// Numbers returns the run indices that could occupy this filled run.
func (h filledRunHint) Numbers() []int {
	var out []int
	for i, set := range h.numbers {
		if set {
			out = append(out, i)
		}
	}
	return out
}

// crossedRunHint crosses a maximal run of cells that every legal
// placement agrees no run occupies.
type crossedRunHint struct {
	start, end int
}

func (h crossedRunHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUncrossed(h.start, h.end)
}

func (h crossedRunHint) Apply(line nonogram.LineMut) {
	line.CrossRange(h.start, h.end)
}

func (h crossedRunHint) Describe() string {
	return fmt.Sprintf("discrete_range: cross run [%d,%d)", h.start, h.end)
}

// placementKind is the state of the small automaton walked by
// placementIter while scanning a line for the next legal start of a run.
type placementKind int

const (
	plEmpty placementKind = iota
	plFilled
	plEnd
)

type placementState struct {
	kind placementKind
	m, n int
}

func startPlacementState() placementState { return placementState{kind: plEmpty} }

// step advances the automaton by one cell, mirroring the original
// implementation's State::cell transition table.
func (s placementState) step(cell nonogram.Cell) placementState {
	switch s.kind {
	case plEmpty:
		switch cell {
		case nonogram.Crossed:
			return placementState{kind: plEmpty}
		case nonogram.Undecided:
			return placementState{kind: plEmpty, n: s.n + 1}
		case nonogram.Filled:
			return placementState{kind: plFilled, m: 1, n: s.n + 1}
		default: // Impossible
			return placementState{kind: plEnd}
		}
	case plFilled:
		switch cell {
		case nonogram.Undecided, nonogram.Filled:
			return placementState{kind: plFilled, m: s.m + 1, n: s.n + 1}
		default: // Crossed or Impossible
			return placementState{kind: plEnd}
		}
	default:
		return placementState{kind: plEnd}
	}
}

// placementIter enumerates the legal start positions of a run of length
// number, scanning a line from a given search start. A start is legal
// when the span of number cells ending at the current cell holds no
// crossed cell (n, the count of cells since the last cross, is >=
// number), the span still covers the first filled cell met since the
// search start (state Filled with m <= number), and the span is not
// immediately followed by another filled cell (which would make the run
// longer than clued).
type placementIter struct {
	line   nonogram.Line
	number int
	focus  int
	state  placementState
}

func newPlacementIter(line nonogram.Line, number, start int) *placementIter {
	return &placementIter{line: line, number: number, focus: start, state: startPlacementState()}
}

// Next returns the next legal start position, or false when exhausted.
func (it *placementIter) Next() (int, bool) {
	for focus := it.focus; focus < it.line.Len(); focus++ {
		it.state = it.state.step(it.line.Get(focus))
		if it.state.kind == plFilled && it.state.m > it.number {
			it.state = placementState{kind: plEnd}
		}

		emit := (it.state.kind == plFilled || it.state.kind == plEmpty) && it.state.n >= it.number
		if emit && (focus+1 >= it.line.Len() || !it.line.IsFilled(focus+1)) {
			it.focus = focus + 1
			return it.focus - it.number, true
		}
	}
	it.focus = it.line.Len()
	return 0, false
}

// possibilities accumulates, across every legal full placement of a
// clue's runs on a line, which cells every placement fills (mustFill),
// which every placement crosses (mustCross), and which run index(es)
// could occupy each cell (cellNumbers).
type possibilities struct {
	lineLen, clueLen    int
	mustFill, mustCross *bitset.BitSet
	cellNumbers         *bitset.BitSet
}

func newPossibilities(lineLen, clueLen int) *possibilities {
	p := &possibilities{
		lineLen:     lineLen,
		clueLen:     clueLen,
		mustFill:    bitset.New(uint(lineLen)),
		mustCross:   bitset.New(uint(lineLen)),
		cellNumbers: bitset.New(uint(lineLen * clueLen)),
	}
	for i := uint(0); i < uint(lineLen); i++ {
		p.mustFill.Set(i)
		p.mustCross.Set(i)
	}
	return p
}

// recordPlacement intersects mustFill/mustCross with one concrete,
// complete placement and records which run occupies each filled cell.
func (p *possibilities) recordPlacement(placement []int, clue nonogram.Clue) {
	oldEnd := 0
	for i, start := range placement {
		n := clue[i]
		for j := oldEnd; j < start; j++ {
			p.mustFill.Clear(uint(j))
		}
		for j := start; j < start+n; j++ {
			p.mustCross.Clear(uint(j))
			p.cellNumbers.Set(uint(j*p.clueLen + i))
		}
		oldEnd = start + n
	}
	for j := oldEnd; j < p.lineLen; j++ {
		p.mustFill.Clear(uint(j))
	}
}

// solve enumerates every legal complete placement of clue's runs on line
// by depth-first recursion, recording each one.
func (p *possibilities) solve(line nonogram.Line, clue nonogram.Clue, depth, start int, placement []int) {
	if depth < len(clue) {
		number := clue[depth]
		it := newPlacementIter(line, number, start)
		for s, ok := it.Next(); ok; s, ok = it.Next() {
			p.solve(line, clue, depth+1, s+number+1, append(placement, s))
		}
		return
	}
	if !line.RangeContainsFilled(start, line.Len()) {
		p.recordPlacement(placement, clue)
	}
}

// hints scans mustFill/mustCross for maximal runs and turns each into a
// FilledRun or CrossedRun hint.
func (p *possibilities) hints(line nonogram.Line) []nonogram.LineHint {
	var hints []nonogram.LineHint
	i := 0
	for i < p.lineLen {
		for i < p.lineLen && !p.mustFill.Test(uint(i)) && !p.mustCross.Test(uint(i)) {
			i++
		}
		if i >= p.lineLen {
			break
		}
		start := i
		if p.mustFill.Test(uint(i)) {
			for i < p.lineLen && p.mustFill.Test(uint(i)) {
				i++
			}
			numbers := make([]bool, p.clueLen)
			for j := 0; j < p.clueLen; j++ {
				numbers[j] = p.cellNumbers.Test(uint(start*p.clueLen + j))
			}
			h := filledRunHint{start: start, end: i, numbers: numbers}
			if h.Check(line) {
				hints = append(hints, h)
			}
		} else {
			for i < p.lineLen && p.mustCross.Test(uint(i)) {
				i++
			}
			h := crossedRunHint{start: start, end: i}
			if h.Check(line) {
				hints = append(hints, h)
			}
		}
	}
	return hints
}

// DiscreteRangePass enumerates every legal placement of a clue's runs on
// a line and intersects them, the most expensive but most powerful of
// the three passes.
type DiscreteRangePass struct{}

func (DiscreteRangePass) Name() string { return constants.PassDiscreteRange }

func (DiscreteRangePass) Run(clue nonogram.Clue, line nonogram.Line) []nonogram.LineHint {
	p := newPossibilities(line.Len(), len(clue))
	p.solve(line, clue, 0, 0, nil)
	return p.hints(line)
}
