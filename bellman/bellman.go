package bellman

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lakepath/matrix"
)

const (
	opUpdate    = "bellman: Update"
	opExact     = "bellman: Exact"
	opIterative = "bellman: Iterative"
	opEvaluate  = "bellman: Evaluate"
)

func bellmanErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateSystem checks that P is square and r matches its order.
func validateSystem(P matrix.Matrix, r []float64) error {
	if err := matrix.ValidateSquareNonNil(P); err != nil {
		return err
	}

	return matrix.ValidateVecLen(r, P.Rows())
}

// Update returns r + γ·P·v as a fresh vector.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(n²).
func Update(v []float64, P matrix.Matrix, r []float64, gamma float64) ([]float64, error) {
	if err := validateSystem(P, r); err != nil {
		return nil, bellmanErrorf(opUpdate, err)
	}
	Pv, err := matrix.MatVec(P, v)
	if err != nil {
		return nil, bellmanErrorf(opUpdate, err)
	}
	out := make([]float64, len(r))
	for i := range out {
		out[i] = r[i] + gamma*Pv[i]
	}

	return out, nil
}

// Exact solves (I − γP)·v = r.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrDimensionMismatch, matrix.ErrSingular.
// Complexity: O(n³).
func Exact(P matrix.Matrix, r []float64, gamma float64) ([]float64, error) {
	if err := validateSystem(P, r); err != nil {
		return nil, bellmanErrorf(opExact, err)
	}
	I, err := matrix.NewIdentity(P.Rows())
	if err != nil {
		return nil, bellmanErrorf(opExact, err)
	}
	gP, err := matrix.Scale(P, gamma)
	if err != nil {
		return nil, bellmanErrorf(opExact, err)
	}
	A, err := matrix.Sub(I, gP)
	if err != nil {
		return nil, bellmanErrorf(opExact, err)
	}
	v, err := matrix.Solve(A, r)
	if err != nil {
		return nil, bellmanErrorf(opExact, err)
	}

	return v, nil
}

// Iterative applies Update from the zero vector until the sup-norm change
// drops below ε(1−γ)/γ or MaxIters backups have run.
//
// Errors: ErrOptionViolation, matrix.ErrNilMatrix, matrix.ErrDimensionMismatch.
// Complexity: O(k·n²) for k backups.
func Iterative(P matrix.Matrix, r []float64, gamma float64, opts ...Option) (*IterativeResult, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if err = validateSystem(P, r); err != nil {
		return nil, bellmanErrorf(opIterative, err)
	}

	threshold := o.Epsilon * (1 - gamma) / gamma
	res := &IterativeResult{V: make([]float64, len(r)), Residual: math.Inf(1)}
	for res.Iterations < o.MaxIters {
		next, err := Update(res.V, P, r, gamma)
		if err != nil {
			return nil, bellmanErrorf(opIterative, err)
		}
		res.Residual = supDiff(next, res.V)
		res.V = next
		res.Iterations++
		if res.Residual < threshold {
			res.Converged = true
			break
		}
	}

	return res, nil
}

// supDiff returns max_i |a_i − b_i|.
func supDiff(a, b []float64) float64 {
	var mx float64
	for i := range a {
		if d := math.Abs(a[i] - b[i]); d > mx {
			mx = d
		}
	}

	return mx
}

// Evaluate runs the named method. The method is checked before any work.
func Evaluate(method Method, P matrix.Matrix, r []float64, gamma float64, opts ...Option) (*Evaluation, error) {
	switch method {
	case MethodExact:
		v, err := Exact(P, r, gamma)
		if err != nil {
			return nil, bellmanErrorf(opEvaluate, err)
		}
		return &Evaluation{Method: method, V: v, Converged: true}, nil
	case MethodIterative:
		res, err := Iterative(P, r, gamma, opts...)
		if err != nil {
			return nil, bellmanErrorf(opEvaluate, err)
		}
		return &Evaluation{
			Method:     method,
			V:          res.V,
			Converged:  res.Converged,
			Iterations: res.Iterations,
			Residual:   res.Residual,
		}, nil
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, string(method))
	}
}
