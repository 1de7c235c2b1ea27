// Package bellman evaluates a fixed policy given its transition matrix P and
// reward-on-entry vector r, i.e. it finds v with v = r + γ·P·v.
//
// What
//
//   - Update: one Bellman expectation backup r + γ·P·v.
//   - Exact: solve (I − γP)·v = r by Doolittle LU without pivoting.
//   - Iterative: repeat Update from v = 0 until ‖Δv‖∞ < ε(1−γ)/γ or the
//     iteration cap is hit; the result reports whether it converged.
//   - Evaluate: dispatch on a Method name ("exact" or "iterative").
//
// Preconditions
//
//	P must be row-stochastic and γ in (0, 1]. Neither is validated here.
//	γ = 1 with an absorbing self-loop makes I − γP singular, so Exact fails
//	with matrix.ErrSingular; Iterative then runs to the cap.
//
// Errors
//
//   - ErrUnknownMethod     for a method name other than exact/iterative.
//   - ErrOptionViolation   for a non-positive epsilon or iteration cap.
//   - matrix.ErrDimensionMismatch, matrix.ErrNilMatrix for shape problems.
//   - matrix.ErrSingular   from Exact.
package bellman
