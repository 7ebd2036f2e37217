// Package lapack provides the row-interchange kernel used by LU-style
// factorizations: Dlaswp and its explicit-offset and fully strided forms.
//
// What & Why:
//
//	Partial pivoting records, for every eliminated row k, the row ipiv[k] it was
//	exchanged with. Replaying that record (forward to form P·B, backward to undo
//	it) is the job of Dlaswp. The matrix lives in a flat []float64 owned by the
//	caller; the kernel swaps in place and hands back the same slice.
//
// Layouts:
//
//	RowMajor     a[row*lda + col]
//	ColumnMajor  a[row + col*lda]
//	(strided)    a[offsetA + row*strideA1 + col*strideA2]
//
// Pivot stride:
//
//	incx > 0   rows k1..k2 ascending
//	incx < 0   rows k2..k1 descending (inverse of the forward pass)
//	incx == 0  no-op
//
//	DlaswpStrided separates the two roles: inck sets the traversal order and
//	(offsetIPIV, strideIPIV) address ipiv as a strided vector indexed by row.
//
// Errors:
//
//	ErrInvalidLayout, ErrInvalidColumns and ErrBadLeadingDim are reported
//	before any write.
//	Pivot targets are trusted unless WithCheckedPivots is given.
//
// Concurrency:
//
//	Calls are synchronous and keep no state; the caller must not touch the
//	buffer from another goroutine while a call is running.
//
// Complexity:
//
//	O((k2-k1+1) · n) time, O(1) extra space.
package lapack
