// Package matrix offers dense matrices over layout-aware flat buffers and an
// LU factorization whose pivot record is replayed through lapack.Dlaswp.
//
// The matrix package provides:
//
//   - Dense, stored row-major or column-major with an optional leading
//     dimension, or wrapped around a caller's buffer without copying.
//   - SwapRows / ApplyPivots: validated row interchanges in place.
//   - LU with partial pivoting (P·A = L·U) and its consumers: Solve, Det,
//     Inverse, Permute (P·B) and Unpermute (Pᵀ·B).
//   - Mul / MatVec for composing and checking results.
//
// Errors are package sentinels (errors.go) matched with errors.Is; public
// methods never panic on bad indices.
//
// See the examples in this package for usage patterns.
package matrix
