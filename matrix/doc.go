// SPDX-License-Identifier: MIT

// Package matrix provides the dense linear-algebra kernels behind the
// circulation solve: a row-major Dense store, transpose, matrix-vector
// product, LU factorization with partial pivoting and a linear solve.
//
// The package provides:
//
//   - Dense with bounds-checked At/Set that return errors instead of panicking.
//   - Transpose and MatVec with *Dense fast-paths and interface fallbacks.
//   - LU (P·A = L·U, row pivoting) with a pivot-ratio conditioning guard, and
//     Solve for a single right-hand side.
//
// Influence matrices are small (tens to low hundreds of rows) and dense, so the
// kernels favour determinism and clear failure modes over blocking or BLAS.
//
// All sentinels live in errors.go; callers match them with errors.Is.
package matrix
