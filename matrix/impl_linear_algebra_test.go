// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lakepath/matrix"
)

const tol = 1e-12

func TestSub_FastPathAndFallbackAgree(t *testing.T) {
	a := MustFrom(t, [][]float64{{5, 6, 7}, {8, 9, 10}})
	b := MustFrom(t, [][]float64{{1, 2, 3}, {4, 5, 6}})

	fast, err := matrix.Sub(a, b)
	require.NoError(t, err)
	slow, err := matrix.Sub(hide{a}, b)
	require.NoError(t, err)

	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			assert.Equal(t, 4.0, MustAt(t, fast, i, j))
			assert.Equal(t, MustAt(t, fast, i, j), MustAt(t, slow, i, j))
		}
	}
}

func TestSub_DimensionMismatch(t *testing.T) {
	_, err := matrix.Sub(MustDense(t, 2, 2), MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Sub(nil, MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestScale_FastPathAndFallbackAgree(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, -2}, {0.5, 4}})
	fast, err := matrix.Scale(m, 0.9)
	require.NoError(t, err)
	slow, err := matrix.Scale(hide{m}, 0.9)
	require.NoError(t, err)
	assert.InDelta(t, -1.8, MustAt(t, fast, 0, 1), tol)
	assert.Equal(t, fast.(*matrix.Dense).String(), slow.(*matrix.Dense).String())
	// input untouched
	assert.Equal(t, -2.0, MustAt(t, m, 0, 1))
}

func TestMatVec(t *testing.T) {
	m := MustFrom(t, [][]float64{{1, 2, 3}, {0, 1, 0}})
	x := []float64{1, 0, 2}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	assert.Equal(t, []float64{7, 0}, y)

	y2, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	assert.Equal(t, y, y2)
}

func TestMatVec_LengthMismatch(t *testing.T) {
	_, err := matrix.MatVec(MustDense(t, 2, 3), []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(MustDense(t, 2, 3), nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix)
}

func TestLU_Reconstructs(t *testing.T) {
	a := MustFrom(t, [][]float64{{4, 3}, {6, 3}})
	L, U, err := matrix.LU(a)
	require.NoError(t, err)

	assert.InDelta(t, 1.0, MustAt(t, L, 0, 0), tol)
	assert.InDelta(t, 1.5, MustAt(t, L, 1, 0), tol)
	assert.InDelta(t, 0.0, MustAt(t, L, 0, 1), tol)
	assert.InDelta(t, 4.0, MustAt(t, U, 0, 0), tol)
	assert.InDelta(t, 3.0, MustAt(t, U, 0, 1), tol)
	assert.InDelta(t, -1.5, MustAt(t, U, 1, 1), tol)
	assert.InDelta(t, 0.0, MustAt(t, U, 1, 0), tol)
}

func TestLU_NonSquare(t *testing.T) {
	_, _, err := matrix.LU(MustDense(t, 2, 3))
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

func TestSolve_TwoByTwo(t *testing.T) {
	a := MustFrom(t, [][]float64{{2, 1}, {1, 3}})
	b := []float64{3, 5}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, x[0], tol)
	assert.InDelta(t, 1.4, x[1], tol)
	assert.Equal(t, []float64{3, 5}, b, "right-hand side must not be mutated")

	x2, err := matrix.Solve(hide{a}, b)
	require.NoError(t, err)
	assert.Equal(t, x, x2)
}

func TestSolve_ResidualIsSmall(t *testing.T) {
	a := MustFrom(t, [][]float64{
		{1, -0.9, 0, 0},
		{0, 1, -0.9, 0},
		{0, 0, 1, -0.9},
		{0, 0, 0, 0.1},
	})
	b := []float64{0, 1, 0, 0}

	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	for i := range b {
		assert.InDelta(t, b[i], ax[i], 1e-12)
	}
}

func TestSolve_Singular(t *testing.T) {
	// Last row is all zeros: the system has no unique solution.
	a := MustFrom(t, [][]float64{{1, -1, 0}, {0, 1, -1}, {0, 0, 0}})
	_, err := matrix.Solve(a, []float64{0, 1, 0})
	assert.ErrorIs(t, err, matrix.ErrSingular)

	// Rank-deficient without an exact zero row.
	b := MustFrom(t, [][]float64{{1, 2}, {2, 4}})
	_, err = matrix.Solve(b, []float64{1, 2})
	assert.ErrorIs(t, err, matrix.ErrSingular)
}

func TestSolve_LengthMismatch(t *testing.T) {
	_, err := matrix.Solve(MustDense(t, 2, 2), []float64{1})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}
