package passes

import (
	"fmt"

	"nonogram/internal/nonogram"
	"nonogram/pkg/constants"
)

// unreachableHint crosses every cell outside the support of every run:
// before the first run's earliest start, or at/after the last run's
// latest end.
type unreachableHint struct {
	reachableStart, reachableEnd int
}

func (h unreachableHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUncrossed(0, h.reachableStart) ||
		line.RangeContainsUncrossed(h.reachableEnd, line.Len())
}

func (h unreachableHint) Apply(line nonogram.LineMut) {
	line.CrossRange(0, h.reachableStart)
	line.CrossRange(h.reachableEnd, line.Len())
}

func (h unreachableHint) Describe() string {
	return fmt.Sprintf("continuous_range: cross outside [%d,%d)", h.reachableStart, h.reachableEnd)
}

// kernelHint fills the cells every legal placement of a run agrees on,
// when the run's support interval is narrower than twice its length.
type kernelHint struct {
	kernelStart, kernelEnd int
}

func (h kernelHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUnfilled(h.kernelStart, h.kernelEnd)
}

func (h kernelHint) Apply(line nonogram.LineMut) {
	line.FillRange(h.kernelStart, h.kernelEnd)
}

func (h kernelHint) Describe() string {
	return fmt.Sprintf("continuous_range: fill kernel [%d,%d)", h.kernelStart, h.kernelEnd)
}

// terminationHint crosses the cells just outside a run whose support is
// exactly one placement wide (the run is fully pinned).
type terminationHint struct {
	rangeStart, rangeEnd int
}

func (h terminationHint) Check(line nonogram.Line) bool {
	return (h.rangeStart > 0 && !line.IsCrossed(h.rangeStart-1)) ||
		(h.rangeEnd < line.Len() && !line.IsCrossed(h.rangeEnd))
}

func (h terminationHint) Apply(line nonogram.LineMut) {
	if h.rangeStart > 0 {
		line.Cross(h.rangeStart - 1)
	}
	if h.rangeEnd < line.Len() {
		line.Cross(h.rangeEnd)
	}
}

func (h terminationHint) Describe() string {
	return fmt.Sprintf("continuous_range: terminate run [%d,%d)", h.rangeStart, h.rangeEnd)
}

// turfNearSingletonHint extends a single filled cell found between the
// turf's near edge and the kernel toward the kernel, and crosses the
// unreachable tail of the turf beyond it.
type turfNearSingletonHint struct {
	foundStart, kernelStart, reachableEnd, turfEnd int
}

func (h turfNearSingletonHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUnfilled(h.foundStart, h.kernelStart) ||
		line.RangeContainsUncrossed(h.reachableEnd, h.turfEnd)
}

func (h turfNearSingletonHint) Apply(line nonogram.LineMut) {
	line.FillRange(h.foundStart, h.kernelStart)
	line.CrossRange(h.reachableEnd, h.turfEnd)
}

func (h turfNearSingletonHint) Describe() string {
	return fmt.Sprintf("continuous_range: turf near singleton at %d", h.foundStart)
}

// turfFarSingletonHint mirrors turfNearSingletonHint for a filled cell
// found on the far side of the kernel.
type turfFarSingletonHint struct {
	turfStart, reachableStart, kernelEnd, foundEnd int
}

func (h turfFarSingletonHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUncrossed(h.turfStart, h.reachableStart) ||
		line.RangeContainsUnfilled(h.kernelEnd, h.foundEnd)
}

func (h turfFarSingletonHint) Apply(line nonogram.LineMut) {
	line.CrossRange(h.turfStart, h.reachableStart)
	line.FillRange(h.kernelEnd, h.foundEnd)
}

func (h turfFarSingletonHint) Describe() string {
	return fmt.Sprintf("continuous_range: turf far singleton at %d", h.foundEnd)
}

// turfPairHint handles two filled cells inside a turf with no kernel:
// the cells between them must belong to the same run and are filled;
// cells beyond either cell's reach are crossed.
type turfPairHint struct {
	turfStart, reachableStart, foundStart, foundEnd, reachableEnd, turfEnd int
}

func (h turfPairHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUncrossed(h.turfStart, h.reachableStart) ||
		line.RangeContainsUnfilled(h.foundStart+1, h.foundEnd) ||
		line.RangeContainsUncrossed(h.reachableEnd, h.turfEnd)
}

func (h turfPairHint) Apply(line nonogram.LineMut) {
	line.CrossRange(h.turfStart, h.reachableStart)
	line.FillRange(h.foundStart+1, h.foundEnd)
	line.CrossRange(h.reachableEnd, h.turfEnd)
}

func (h turfPairHint) Describe() string {
	return fmt.Sprintf("continuous_range: turf pair at %d,%d", h.foundStart, h.foundEnd)
}

// turfSingletonHint handles a single filled cell inside a turf with no
// kernel: cells beyond the run's reach on either side are crossed.
type turfSingletonHint struct {
	turfStart, reachableStart, reachableEnd, turfEnd int
}

func (h turfSingletonHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUncrossed(h.turfStart, h.reachableStart) ||
		line.RangeContainsUncrossed(h.reachableEnd, h.turfEnd)
}

func (h turfSingletonHint) Apply(line nonogram.LineMut) {
	line.CrossRange(h.turfStart, h.reachableStart)
	line.CrossRange(h.reachableEnd, h.turfEnd)
}

func (h turfSingletonHint) Describe() string {
	return fmt.Sprintf("continuous_range: turf singleton, reach [%d,%d)", h.reachableStart, h.reachableEnd)
}

// ContinuousRangePass derives hints from the support interval of each
// run (its range_start/range_end) and from the "turf" each run alone
// could reach, without enumerating concrete placements.
type ContinuousRangePass struct{}

func (ContinuousRangePass) Name() string { return constants.PassContinuousRange }

func (ContinuousRangePass) Run(clue nonogram.Clue, line nonogram.Line) []nonogram.LineHint {
	var hints []nonogram.LineHint
	k := len(clue)
	if k == 0 {
		return hints
	}

	starts := clue.RangeStarts(line)
	ends := clue.RangeEnds(line)

	unreachable := unreachableHint{reachableStart: starts[0], reachableEnd: ends[k-1]}
	if unreachable.Check(line) {
		hints = append(hints, unreachable)
	}

	len_ := line.Len()
	for i, number := range clue {
		rangeStart, rangeEnd := starts[i], ends[i]

		turfStart := rangeStart
		if i > 0 && ends[i-1]+1 > turfStart {
			turfStart = ends[i-1] + 1
		}
		turfEnd := rangeEnd
		if i < k-1 {
			if next := starts[i+1] - 1; next < turfEnd {
				turfEnd = next
			}
		} else if len_+1 < turfEnd {
			turfEnd = len_ + 1
		}

		if rangeStart+2*number > rangeEnd {
			kernelStart := rangeEnd - number
			kernelEnd := rangeStart + number

			kernel := kernelHint{kernelStart: kernelStart, kernelEnd: kernelEnd}
			if kernel.Check(line) {
				hints = append(hints, kernel)
			}

			if kernelStart == rangeStart && kernelEnd == rangeEnd {
				term := terminationHint{rangeStart: rangeStart, rangeEnd: rangeEnd}
				if term.Check(line) {
					hints = append(hints, term)
				}
				continue
			}

			if foundStart, ok := findFirstFilled(line, turfStart, kernelStart); ok {
				h := turfNearSingletonHint{
					foundStart:    foundStart,
					kernelStart:   kernelStart,
					reachableEnd:  foundStart + number,
					turfEnd:       turfEnd,
				}
				if h.Check(line) {
					hints = append(hints, h)
				}
			}
			if foundEnd, ok := findLastFilled(line, kernelEnd, turfEnd); ok {
				h := turfFarSingletonHint{
					turfStart:      turfStart,
					reachableStart: foundEnd - number,
					kernelEnd:      kernelEnd,
					foundEnd:       foundEnd,
				}
				if h.Check(line) {
					hints = append(hints, h)
				}
			}
		} else if foundStart, ok := findFirstFilled(line, turfStart, turfEnd); ok {
			reachableEnd := foundStart + number
			if foundEnd, ok := findLastFilled(line, foundStart+1, turfEnd); ok {
				h := turfPairHint{
					turfStart:      turfStart,
					reachableStart: satSub(foundEnd, number),
					foundStart:     foundStart,
					foundEnd:       foundEnd,
					reachableEnd:   reachableEnd,
					turfEnd:        turfEnd,
				}
				if h.Check(line) {
					hints = append(hints, h)
				}
			} else {
				h := turfSingletonHint{
					turfStart:      turfStart,
					reachableStart: satSub(foundStart, number),
					reachableEnd:   reachableEnd,
					turfEnd:        turfEnd,
				}
				if h.Check(line) {
					hints = append(hints, h)
				}
			}
		}
	}
	return hints
}

func findFirstFilled(line nonogram.Line, lo, hi int) (int, bool) {
	for i := lo; i < hi; i++ {
		if line.IsFilled(i) {
			return i, true
		}
	}
	return 0, false
}

func findLastFilled(line nonogram.Line, lo, hi int) (int, bool) {
	for i := hi - 1; i >= lo; i-- {
		if line.IsFilled(i) {
			return i, true
		}
	}
	return 0, false
}

func satSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
