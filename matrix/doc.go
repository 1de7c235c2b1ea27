// Package matrix provides the dense linear-algebra substrate used to evaluate
// fixed policies: a row-major Dense matrix, matrix-vector products, and an
// LU-based solver for square systems such as (I − γP)·v = r.
//
// The package provides:
//
//   - Dense: row-major float64 storage with bounds-checked At/Set and an
//     optional finite-only numeric policy.
//   - MatVec, Sub, Scale: allocation-fresh kernels with *Dense fast paths and
//     interface fallbacks.
//   - LU and Solve: Doolittle factorization without pivoting and forward/back
//     substitution for a single right-hand side.
//   - Validators shared by all kernels (nil, shape, vector length,
//     row-stochastic checks).
//
// Determinism
//
//	Every kernel walks its operands in a fixed i→j order; identical inputs
//	always produce bit-identical outputs.
//
// Errors
//
//	All failures are sentinel errors (ErrDimensionMismatch, ErrSingular, ...)
//	wrapped with an operation tag; match them with errors.Is.
package matrix
