// SPDX-License-Identifier: MIT
// Package matrix provides the linear-algebra kernels used by the circulation
// solve: transpose, matrix-vector product, LU factorization with partial
// pivoting and a dense linear solve. All functions perform strict fail-fast
// validation and return sentinel errors wrapped with an operation tag.
//
// Notes:
//   - All kernels use the central validators and wrap via matrixErrorf at the facade.
//   - *Dense operands unlock flat-slice fast-paths; other Matrix values go through At/Set.

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution and similar.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot in LU.
const ZeroPivot = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opTranspose = "Transpose"
	opMatVec    = "MatVec"
	opLU        = "LU"
	opSolve     = "Solve"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Input is validated non-nil; the original matrix is never mutated.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m). Allocate Dense(cols, rows).
//   - Stage 2: If m is *Dense, use contiguous slice mapping; else generic i→j loop.
//
// Errors:
//   - ErrNilMatrix (from ValidateNotNil).
//
// Complexity:
//   - Time O(r*c), Space O(r*c) for the returned matrix.
//
// AI-Hints:
//   - If you only need Aᵀ*x, MatVec on the transpose is still the clearest form
//     for the small systems in this module; hoist the transpose out of loops.
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	rows, cols := m.Rows(), m.Cols()
	res, err := NewDense(cols, rows) // dims flipped
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = false // values were already accepted by the source

	var i, j int
	if dm, ok := m.(*Dense); ok {
		// data[i*cols + j] → res.data[j*rows + i]
		var baseSrc int
		for i = 0; i < rows; i++ {
			baseSrc = i * cols
			for j = 0; j < cols; j++ {
				res.data[j*rows+i] = dm.data[baseSrc+j]
			}
		}
		res.validateNaNInf = dm.validateNaNInf

		return res, nil
	}

	// Fallback: interface path with fixed i→j order.
	var v float64
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opTranspose, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			res.data[j*rows+i] = v
		}
	}
	res.validateNaNInf = DefaultValidateNaNInf

	return res, nil
}

// MatVec computes y = m·x for an r×c matrix and a length-c vector.
//
// Implementation:
//   - Stage 1: ValidateNotNil(m), ValidateVecLen(x, c).
//   - Stage 2: row-wise dot products (flat fast-path on *Dense).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Determinism:
//   - Accumulation order j = 0..c-1 for every row.
//
// Complexity:
//   - Time O(r*c), Space O(r).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	rows, cols := m.Rows(), m.Cols()
	if err := ValidateVecLen(x, cols); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	y := make([]float64, rows)
	var (
		i, j int
		sum  float64
	)
	if dm, ok := m.(*Dense); ok {
		var base int
		for i = 0; i < rows; i++ {
			base = i * cols
			sum = ZeroSum
			for j = 0; j < cols; j++ {
				sum += dm.data[base+j] * x[j]
			}
			y[i] = sum
		}

		return y, nil
	}

	var v float64
	var err error
	for i = 0; i < rows; i++ {
		sum = ZeroSum
		for j = 0; j < cols; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return nil, matrixErrorf(opMatVec, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			sum += v * x[j]
		}
		y[i] = sum
	}

	return y, nil
}

// LUFactors holds the packed result of P·A = L·U.
// The strict lower triangle of lu stores L (unit diagonal implied), the upper
// triangle stores U; piv[i] is the source row of A that ended up in row i.
type LUFactors struct {
	lu  *Dense
	piv []int
	n   int
}

// LU factorizes a square matrix with Doolittle elimination and partial (row)
// pivoting. The input is never mutated.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy into a fresh *Dense, rejecting NaN/Inf.
//   - Stage 2: for each column k pick the row with the largest |a[i,k]| (i ≥ k),
//     swap it into place, then eliminate below the pivot.
//   - Stage 3: compute the pivot ratio min|Uᵢᵢ| / max|Uᵢᵢ| and compare it with
//     the conditioning limit (WithConditionLimit).
//
// Behavior highlights:
//   - Ties in the pivot search keep the first (lowest) row: deterministic.
//   - A column whose candidates are all exactly zero is reported as ErrSingular.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (ValidateSquare).
//   - ErrNaNInf for non-finite input entries.
//   - ErrSingular, ErrIllConditioned.
//
// Complexity:
//   - Time O(n³), Space O(n²).
//
// Notes:
//   - Partial pivoting is enough for the diagonally heavy horseshoe influence
//     matrices; complete pivoting is not offered.
func LU(m Matrix, opts ...Option) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	o := gatherOptions(opts...)

	n := m.Rows()
	lu, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	// Stage 1: copy with finiteness check.
	var (
		i, j, k int
		v       float64
	)
	if dm, ok := m.(*Dense); ok {
		for i = 0; i < len(dm.data); i++ {
			if isNonFinite(dm.data[i]) {
				return nil, matrixErrorf(opLU, denseErrorf(ctxAt, i/n, i%n, ErrNaNInf))
			}
		}
		copy(lu.data, dm.data)
	} else {
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, matrixErrorf(opLU, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				if err = lu.Set(i, j, v); err != nil {
					return nil, matrixErrorf(opLU, err)
				}
			}
		}
	}

	piv := make([]int, n)
	for i = 0; i < n; i++ {
		piv[i] = i
	}

	// Stage 2: elimination with row pivoting on the flat buffer.
	var (
		p              int
		maxAbs, factor float64
		rowK, rowI     int
		d              = lu.data
	)
	for k = 0; k < n; k++ {
		p, maxAbs = k, math.Abs(d[k*n+k])
		for i = k + 1; i < n; i++ {
			if v = math.Abs(d[i*n+k]); v > maxAbs {
				p, maxAbs = i, v
			}
		}
		if maxAbs == ZeroPivot {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", k, ErrSingular))
		}
		if p != k {
			rowK, rowI = k*n, p*n
			for j = 0; j < n; j++ {
				d[rowK+j], d[rowI+j] = d[rowI+j], d[rowK+j]
			}
			piv[k], piv[p] = piv[p], piv[k]
		}

		rowK = k * n
		for i = k + 1; i < n; i++ {
			rowI = i * n
			factor = d[rowI+k] / d[rowK+k]
			d[rowI+k] = factor // store L below the diagonal
			if factor == 0 {
				continue
			}
			for j = k + 1; j < n; j++ {
				d[rowI+j] -= factor * d[rowK+j]
			}
		}
	}

	f := &LUFactors{lu: lu, piv: piv, n: n}

	// Stage 3: conditioning guard.
	if ratio := f.PivotRatio(); isNonFinite(ratio) {
		return nil, matrixErrorf(opLU, ErrNaNInf)
	} else if ratio < o.conditionLimit {
		return nil, matrixErrorf(opLU, fmt.Errorf("pivot ratio %.3e below %.3e: %w", ratio, o.conditionLimit, ErrIllConditioned))
	}

	return f, nil
}

// N returns the order of the factorized matrix.
func (f *LUFactors) N() int { return f.n }

// Pivots returns a copy of the row permutation (row i of P·A is row Pivots()[i] of A).
func (f *LUFactors) Pivots() []int {
	out := make([]int, len(f.piv))
	copy(out, f.piv)

	return out
}

// PivotRatio returns min|Uᵢᵢ| / max|Uᵢᵢ|, a cheap conditioning indicator.
// Complexity: O(n).
func (f *LUFactors) PivotRatio() float64 {
	var minAbs, maxAbs = math.Inf(1), 0.0
	var u float64
	for i := 0; i < f.n; i++ {
		u = math.Abs(f.lu.data[i*f.n+i])
		minAbs = math.Min(minAbs, u)
		maxAbs = math.Max(maxAbs, u)
	}
	if maxAbs == 0 {
		return 0
	}

	return minAbs / maxAbs
}

// L returns the unit lower-triangular factor as a fresh Dense.
// Complexity: O(n²).
func (f *LUFactors) L() *Dense {
	out, _ := NewDense(f.n, f.n) // n > 0 guaranteed by LU
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = 0; j < i; j++ {
			out.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
		out.data[i*f.n+i] = 1
	}

	return out
}

// U returns the upper-triangular factor as a fresh Dense.
// Complexity: O(n²).
func (f *LUFactors) U() *Dense {
	out, _ := NewDense(f.n, f.n)
	var i, j int
	for i = 0; i < f.n; i++ {
		for j = i; j < f.n; j++ {
			out.data[i*f.n+j] = f.lu.data[i*f.n+j]
		}
	}

	return out
}

// Solve returns x with A·x = b using the stored factors.
//
// Implementation:
//   - Stage 1: ValidateVecLen(b, n), ValidateFinite(b).
//   - Stage 2: apply the permutation, forward-substitute L·y = P·b (top-down).
//   - Stage 3: back-substitute U·x = y (bottom-up).
//   - Stage 4: reject non-finite solutions.
//
// Errors:
//   - ErrNilMatrix / ErrDimensionMismatch for a bad right-hand side.
//   - ErrNaNInf for a non-finite right-hand side or solution.
//
// Complexity:
//   - Time O(n²), Space O(n).
func (f *LUFactors) Solve(b []float64) ([]float64, error) {
	if err := ValidateVecLen(b, f.n); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err := ValidateFinite(b); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n, d := f.n, f.lu.data
	x := make([]float64, n)
	var (
		i, k int
		sum  float64
	)
	// Forward substitution: L*y = P*b (y stored in x).
	for i = 0; i < n; i++ {
		sum = b[f.piv[i]]
		for k = 0; k < i; k++ {
			sum -= d[i*n+k] * x[k]
		}
		x[i] = sum
	}
	// Backward substitution: U*x = y.
	for i = n - 1; i >= 0; i-- {
		sum = x[i]
		for k = i + 1; k < n; k++ {
			sum -= d[i*n+k] * x[k]
		}
		x[i] = sum / d[i*n+i]
	}

	if err := ValidateFinite(x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return x, nil
}

// Solve factorizes a and solves a·x = b in one call.
// Prefer LU + (*LUFactors).Solve when several right-hand sides share a matrix.
//
// Errors:
//   - Everything LU and (*LUFactors).Solve can return, tagged with "Solve".
//
// Complexity:
//   - Time O(n³), Space O(n²).
func Solve(a Matrix, b []float64, opts ...Option) ([]float64, error) {
	f, err := LU(a, opts...)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	return f.Solve(b)
}
