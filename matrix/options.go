// SPDX-License-Identifier: MIT
// Package matrix: numeric policy defaults.

package matrix

const (
	// DefaultEpsilon is the tolerance used by structural checks such as
	// ValidateRowStochastic.
	DefaultEpsilon = 1e-9

	// DefaultValidateNaNInf toggles strict finite-value validation in Set.
	DefaultValidateNaNInf = true

	// SingularTol is the relative pivot threshold used by LU and Solve.
	// A pivot p is rejected when |p| <= SingularTol * max|a_ij|.
	SingularTol = 1e-12
)
