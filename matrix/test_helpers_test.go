// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for the kernels.
//   - Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aerovlm/matrix"
)

// tol is the default absolute tolerance for floating comparisons in this package.
const tol = 1e-12

// hide wraps any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test.
func MustDense(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// MustFromRows builds a *Dense from literal rows or fails the test.
func MustFromRows(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(tb, err)

	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(tb testing.TB, m matrix.Matrix, i, j int) float64 {
	tb.Helper()
	v, err := m.At(i, j)
	require.NoError(tb, err)

	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(tb testing.TB, m matrix.Matrix, i, j int, v float64) {
	tb.Helper()
	require.NoError(tb, m.Set(i, j, v))
}

// RandomDominant fills an n×n matrix with seeded values in [-1,1) and a
// diagonal large enough to keep the system well-conditioned.
func RandomDominant(tb testing.TB, n int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := MustDense(tb, n, n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			MustSet(tb, m, i, j, 2*rng.Float64()-1)
		}
		MustSet(tb, m, i, i, float64(n)+rng.Float64())
	}

	return m
}

// RequireVecClose asserts element-wise |want-got| <= eps.
func RequireVecClose(tb testing.TB, want, got []float64, eps float64) {
	tb.Helper()
	require.Len(tb, got, len(want))
	for i := range want {
		require.LessOrEqualf(tb, math.Abs(want[i]-got[i]), eps,
			"index %d: want %.15g got %.15g", i, want[i], got[i])
	}
}
