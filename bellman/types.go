package bellman

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors.
var (
	// ErrUnknownMethod is returned for an evaluation method other than
	// MethodExact or MethodIterative. The offending name is appended.
	ErrUnknownMethod = errors.New("bellman: unknown method")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bellman: invalid option supplied")
)

// Method selects an evaluation strategy.
type Method string

const (
	// MethodExact solves the linear system directly.
	MethodExact Method = "exact"
	// MethodIterative applies successive Bellman backups.
	MethodIterative Method = "iterative"
)

// ParseMethod returns the Method named s.
func ParseMethod(s string) (Method, error) {
	switch m := Method(s); m {
	case MethodExact, MethodIterative:
		return m, nil
	default:
		return "", fmt.Errorf("%w %q", ErrUnknownMethod, s)
	}
}

// Defaults for iterative evaluation.
const (
	DefaultEpsilon  = 1e-6
	DefaultMaxIters = 100000
)

// Option configures Iterative and Evaluate.
type Option func(*Options)

// Options holds the iterative stopping parameters.
type Options struct {
	Epsilon  float64
	MaxIters int

	err error
}

// DefaultOptions returns ε = 1e-6 and a cap of 100000 backups.
func DefaultOptions() Options {
	return Options{Epsilon: DefaultEpsilon, MaxIters: DefaultMaxIters}
}

// WithEpsilon sets ε. It must be finite and positive.
func WithEpsilon(eps float64) Option {
	return func(o *Options) {
		if math.IsNaN(eps) || math.IsInf(eps, 0) || eps <= 0 {
			o.err = fmt.Errorf("%w: epsilon must be positive (%g)", ErrOptionViolation, eps)
			return
		}
		o.Epsilon = eps
	}
}

// WithMaxIters sets the backup cap. It must be positive.
func WithMaxIters(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: max iterations must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIters = n
	}
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// IterativeResult is the outcome of Iterative. V is always the last computed
// iterate; Converged is false when the cap was reached first.
type IterativeResult struct {
	V          []float64
	Converged  bool
	Iterations int
	Residual   float64
}

// Evaluation is the outcome of Evaluate. For MethodExact, Converged is true
// and Iterations is zero.
type Evaluation struct {
	Method     Method
	V          []float64
	Converged  bool
	Iterations int
	Residual   float64
}
