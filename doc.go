// Package lvlinalg is a small dense linear-algebra toolkit built around one
// kernel: applying a sequence of LAPACK-style row interchanges to a matrix
// held in a flat, strided buffer.
//
// What is inside?
//
//	lapack/: Layout, the row-interchange engine (Dlaswp, DlaswpOffset,
//	         DlaswpStrided), sentinel errors and functional options
//	matrix/: Dense storage in either layout, SwapRows / ApplyPivots,
//	         LU with partial pivoting, Solve, Det, Inverse, Mul, MatVec
//
// Pivot vectors are recorded in LAPACK form (row k was exchanged with row
// ipiv[k]) and can be replayed forward (incx > 0) or backward (incx < 0):
//
//	    ipiv = [2 2 2]
//	    A ──Dlaswp(+1)──▶ P·A ──Dlaswp(−1)──▶ A
//
// Everything is synchronous and allocation-light; buffers are mutated in
// place and owned by the caller for the duration of a call.
//
// See examples/lureplay for an end-to-end walk-through.
//
//	go get github.com/katalvlaran/lvlinalg
package lvlinalg
