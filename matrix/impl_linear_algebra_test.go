// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the linear-algebra kernels.
package matrix_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerovlm/matrix"
)

// ---------- Transpose ----------

func TestTranspose_FastPathAndFallback(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	fast, err := matrix.Transpose(m)
	require.NoError(t, err)
	slow, err := matrix.Transpose(hide{m})
	require.NoError(t, err)

	require.Equal(t, 3, fast.Rows())
	require.Equal(t, 2, fast.Cols())
	var i, j int
	for i = 0; i < 2; i++ {
		for j = 0; j < 3; j++ {
			require.Equal(t, MustAt(t, m, i, j), MustAt(t, fast, j, i))
			require.Equal(t, MustAt(t, fast, j, i), MustAt(t, slow, j, i))
		}
	}

	_, err = matrix.Transpose(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- MatVec ----------

func TestMatVec(t *testing.T) {
	t.Parallel()

	m := MustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	x := []float64{1, 0, -1}

	y, err := matrix.MatVec(m, x)
	require.NoError(t, err)
	require.Equal(t, []float64{-2, -2}, y)

	y2, err := matrix.MatVec(hide{m}, x)
	require.NoError(t, err)
	require.Equal(t, y, y2)

	_, err = matrix.MatVec(m, []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
	_, err = matrix.MatVec(nil, x)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// ---------- LU ----------

// TestLU_Reconstruction checks P·A = L·U on random well-conditioned inputs.
func TestLU_Reconstruction(t *testing.T) {
	for _, n := range []int{1, 2, 5, 12} {
		n := n
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()
			a := RandomDominant(t, n, int64(100+n))
			f, err := matrix.LU(a)
			require.NoError(t, err)
			require.Equal(t, n, f.N())

			l, u, piv := f.L(), f.U(), f.Pivots()
			var i, j, k int
			var sum float64
			for i = 0; i < n; i++ {
				for j = 0; j < n; j++ {
					sum = 0
					for k = 0; k < n; k++ {
						sum += MustAt(t, l, i, k) * MustAt(t, u, k, j)
					}
					require.InDelta(t, MustAt(t, a, piv[i], j), sum, 1e-10)
				}
			}
		})
	}
}

func TestLU_PivotsRows(t *testing.T) {
	t.Parallel()

	// Zero leading entry forces a row swap.
	a := MustFromRows(t, [][]float64{{0, 1}, {2, 3}})
	f, err := matrix.LU(a)
	require.NoError(t, err)
	require.Equal(t, []int{1, 0}, f.Pivots())
	require.InDelta(t, 0.5, f.PivotRatio(), tol)
}

func TestLU_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		m       matrix.Matrix
		wantErr error
	}{
		{"nil", nil, matrix.ErrNilMatrix},
		{"non-square", MustDense(t, 2, 3), matrix.ErrDimensionMismatch},
		{"zero matrix", MustDense(t, 3, 3), matrix.ErrSingular},
		{"rank deficient", MustFromRows(t, [][]float64{{1, 2}, {2, 4}}), matrix.ErrSingular},
		{"tiny pivot", MustFromRows(t, [][]float64{{1, 0}, {0, 1e-15}}), matrix.ErrIllConditioned},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			_, err := matrix.LU(tc.m)
			require.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLU_ConditionLimitOption(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{1, 0}, {0, 1e-15}})
	f, err := matrix.LU(a, matrix.WithConditionLimit(0))
	require.NoError(t, err)
	require.InDelta(t, 1e-15, f.PivotRatio(), 1e-20)

	_, err = matrix.LU(MustFromRows(t, [][]float64{{1, 0}, {0, 0.05}}), matrix.WithConditionLimit(0.1))
	require.ErrorIs(t, err, matrix.ErrIllConditioned)
}

func TestLU_FallbackMatchesFastPath(t *testing.T) {
	t.Parallel()

	a := RandomDominant(t, 6, 7)
	b := []float64{1, 2, 3, 4, 5, 6}
	x1, err := matrix.Solve(a, b)
	require.NoError(t, err)
	x2, err := matrix.Solve(hide{a}, b)
	require.NoError(t, err)
	require.Equal(t, x1, x2)
}

// ---------- Solve ----------

func TestSolve_KnownSystem(t *testing.T) {
	t.Parallel()

	// 2x + y = 3, x + 3y = 5 → x = 0.8, y = 1.4
	a := MustFromRows(t, [][]float64{{2, 1}, {1, 3}})
	x, err := matrix.Solve(a, []float64{3, 5})
	require.NoError(t, err)
	RequireVecClose(t, []float64{0.8, 1.4}, x, tol)
}

func TestSolve_ResidualRandom(t *testing.T) {
	t.Parallel()

	const n = 20
	a := RandomDominant(t, n, 2024)
	b := make([]float64, n)
	for i := range b {
		b[i] = math.Sin(float64(i))
	}
	x, err := matrix.Solve(a, b)
	require.NoError(t, err)
	ax, err := matrix.MatVec(a, x)
	require.NoError(t, err)
	RequireVecClose(t, b, ax, 1e-10)
}

func TestSolve_ReusedFactors(t *testing.T) {
	t.Parallel()

	a := RandomDominant(t, 4, 9)
	f, err := matrix.LU(a)
	require.NoError(t, err)
	for _, b := range [][]float64{{1, 0, 0, 0}, {0, 0, 0, 1}} {
		x, err := f.Solve(b)
		require.NoError(t, err)
		ax, err := matrix.MatVec(a, x)
		require.NoError(t, err)
		RequireVecClose(t, b, ax, 1e-12)
	}
}

func TestSolve_Errors(t *testing.T) {
	t.Parallel()

	a := MustFromRows(t, [][]float64{{2, 1}, {1, 3}})
	_, err := matrix.Solve(a, []float64{1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.Solve(a, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
	_, err = matrix.Solve(MustFromRows(t, [][]float64{{1, 1}, {1, 1}}), []float64{1, 2})
	require.ErrorIs(t, err, matrix.ErrSingular)
}
