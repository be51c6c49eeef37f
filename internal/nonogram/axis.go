package nonogram

import "nonogram/internal/core"

// Axis, Horz and Vert are re-exported from internal/core so that both the
// scheduler's reporting types and the line/grid views speak the same
// vocabulary without an import cycle.
type Axis = core.Axis

const (
	Horz = core.Horz
	Vert = core.Vert
)
