package lake

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for board parsing and options.
var (
	// ErrEmptyGrid indicates the board has no rows or no columns.
	ErrEmptyGrid = errors.New("lake: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("lake: all rows must have the same length")
	// ErrBadCell indicates a letter outside S, F, '.', H, G.
	ErrBadCell = errors.New("lake: unknown cell letter")
	// ErrNoStart indicates the board has no S cell.
	ErrNoStart = errors.New("lake: grid has no start cell")
	// ErrMultipleStarts indicates the board has more than one S cell.
	ErrMultipleStarts = errors.New("lake: grid has more than one start cell")
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("lake: invalid option supplied")
)

// Cell letters.
const (
	cellStart  = 'S'
	cellFrozen = 'F'
	cellDot    = '.'
	cellHole   = 'H'
	cellGoal   = 'G'
)

// Built-in boards.
var (
	// Map4x4 is the classic 4×4 FrozenLake board.
	Map4x4 = []string{
		"SFFF",
		"FHFH",
		"FFFH",
		"HFFG",
	}

	// Map8x8 is the classic 8×8 FrozenLake board.
	Map8x8 = []string{
		"SFFFFFFF",
		"FFFFFFFF",
		"FFFHFFFF",
		"FFFFFHFF",
		"FFFHFFFF",
		"FHHFFFHF",
		"FHFFHFHF",
		"FFFHFFFG",
	}
)

// Option configures a Lake via functional arguments. Invalid values are
// recorded and surfaced as ErrOptionViolation by Parse.
type Option func(*Options)

// Options holds the tunable parameters of a Lake.
type Options struct {
	// Slip is the probability mass moved from the intended direction to the
	// two perpendicular directions, in [0, 1].
	Slip float64
	// GoalReward is paid on entering G.
	GoalReward float64
	// HoleReward is paid on entering H.
	HoleReward float64
	// StepReward is paid on entering S or F.
	StepReward float64

	err error
}

// DefaultOptions returns deterministic ice, goal reward 1, all other rewards 0.
func DefaultOptions() Options {
	return Options{GoalReward: 1}
}

// WithSlip sets the slip probability. p outside [0, 1] is an ErrOptionViolation.
func WithSlip(p float64) Option {
	return func(o *Options) {
		if math.IsNaN(p) || p < 0 || p > 1 {
			o.err = fmt.Errorf("%w: slip must be in [0,1] (%v)", ErrOptionViolation, p)
			return
		}
		o.Slip = p
	}
}

// WithGoalReward sets the reward for entering G.
func WithGoalReward(x float64) Option {
	return func(o *Options) { o.GoalReward = x }
}

// WithHoleReward sets the reward for entering H.
func WithHoleReward(x float64) Option {
	return func(o *Options) { o.HoleReward = x }
}

// WithStepReward sets the reward for entering S or F.
func WithStepReward(x float64) Option {
	return func(o *Options) { o.StepReward = x }
}
