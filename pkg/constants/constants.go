package constants

// Pass names, in scheduler order. The scheduler's cur_p index is an
// index into this slice.
const (
	PassCrowdedClue     = "crowded_clue"
	PassContinuousRange = "continuous_range"
	PassDiscreteRange   = "discrete_range"
)

// PassOrder is the fixed [CrowdedClue, ContinuousRange, DiscreteRange]
// schedule the solver promotes through.
var PassOrder = []string{PassCrowdedClue, PassContinuousRange, PassDiscreteRange}

// Axis labels.
const (
	AxisHorz = "horz"
	AxisVert = "vert"
)

// Solver status.
const (
	StatusCompleted = "completed"
	StatusStalled   = "stalled"
)

// Theme names accepted by --theme/-t.
const (
	ThemeAscii   = "ascii"
	ThemeUnicode = "unicode"
	ThemeBrief   = "brief"
)

// DefaultTheme is used when --theme is not given.
const DefaultTheme = ThemeUnicode

// StallPromotions is the fail_count threshold at which the scheduler
// promotes to the next pass.
const StallPromotions = 2

// MaxTotalSteps is a safety-net cap on scheduler steps; the fixpoint
// detection in the scheduler itself is the primary termination guarantee.
const MaxTotalSteps = 100000
