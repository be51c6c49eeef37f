package passes

import (
	"fmt"

	"nonogram/internal/nonogram"
	"nonogram/pkg/constants"
)

// crowdedClueHint fills the kernel of forced overlap a single run must
// occupy purely because the clue is too cramped for the line, ignoring
// any pre-existing cell state.
type crowdedClueHint struct {
	kernelStart, kernelEnd int
}

func (h crowdedClueHint) Check(line nonogram.Line) bool {
	return line.RangeContainsUnfilled(h.kernelStart, h.kernelEnd)
}

func (h crowdedClueHint) Apply(line nonogram.LineMut) {
	line.FillRange(h.kernelStart, h.kernelEnd)
}

func (h crowdedClueHint) Describe() string {
	return fmt.Sprintf("crowded_clue: fill [%d,%d)", h.kernelStart, h.kernelEnd)
}

// CrowdedCluePass is purely clue-driven: it is useful only once per
// line, since it never looks at grid state beyond its own check.
type CrowdedCluePass struct{}

func (CrowdedCluePass) Name() string { return constants.PassCrowdedClue }

func (CrowdedCluePass) Run(clue nonogram.Clue, line nonogram.Line) []nonogram.LineHint {
	var hints []nonogram.LineHint

	sum := clue.Sum()
	freedom := line.Len() - (sum + clue.Gaps())

	x0 := 0
	for _, n := range clue {
		if n > freedom {
			hint := crowdedClueHint{kernelStart: x0 + freedom, kernelEnd: x0 + n}
			if hint.Check(line) {
				hints = append(hints, hint)
			}
		}
		x0 += n + 1
	}
	return hints
}
