// SPDX-License-Identifier: MIT

package lapack

// Call-site tags used in error wrappers.
const (
	opDlaswp        = "Dlaswp"
	opDlaswpOffset  = "DlaswpOffset"
	opDlaswpStrided = "DlaswpStrided"
)

// Dlaswp performs a series of row interchanges on the matrix A stored in a
// with the given layout and leading dimension: for each row k in [k1, k2],
// row k is swapped with row ipiv[k1 + (k-k1)*|incx|]. Indices are zero-based.
//
// If incx > 0 the swaps are applied from k1 to k2; if incx < 0 they are applied
// in reverse order from k2 to k1, which undoes a forward pass with the same
// ipiv. If incx == 0, n == 0 or k1 > k2, a is returned unchanged.
//
// Only the first n elements of each row take part. a is mutated in place and
// returned on success.
//
// Errors (checked before any write):
//   - ErrInvalidLayout if order is not RowMajor or ColumnMajor.
//   - ErrInvalidColumns if n < 0.
//   - ErrBadLeadingDim if lda is too small for the layout.
//
// Pivot targets are not bounds-checked: a target outside the matrix panics
// with an index error. Pass WithCheckedPivots to get ErrPivotOutOfRange or
// ErrShortBuffer instead.
func Dlaswp(order Layout, n int, a []float64, lda, k1, k2 int, ipiv []int, incx int, opts ...Option) ([]float64, error) {
	return laswpLayout(opDlaswp, order, n, a, lda, k1, k2, ipiv, incx, 0, opts)
}

// DlaswpOffset is Dlaswp with every pivot position shifted by offsetIPIV: the
// pivot of row k is read from ipiv[offsetIPIV + k1 + (k-k1)*|incx|]. For
// offsetIPIV >= 0 this is Dlaswp(order, n, a, lda, k1, k2, ipiv[offsetIPIV:], incx)
// without slicing. A negative offset is accepted as long as every position
// actually read lies inside ipiv.
func DlaswpOffset(order Layout, n int, a []float64, lda, k1, k2 int, ipiv []int, incx, offsetIPIV int, opts ...Option) ([]float64, error) {
	return laswpLayout(opDlaswpOffset, order, n, a, lda, k1, k2, ipiv, incx, offsetIPIV, opts)
}

// DlaswpStrided is the fully strided form.
//
// MAIN DESCRIPTION:
//   - Element (r, c) of A lives at a[offsetA + r*strideA1 + c*strideA2].
//     Strides may be negative, which views the matrix with reversed rows or columns.
//   - inck picks the traversal: inck > 0 walks rows k1..k2, inck < 0 walks
//     k2..k1, inck == 0 is a no-op. Only its sign matters.
//   - The pivot of row k is ipiv[offsetIPIV + k*strideIPIV], i.e. ipiv is a
//     strided vector indexed by row. strideIPIV may be negative or zero and is
//     independent of inck, so a reversed view of ipiv can be replayed in
//     either direction.
//
// Errors:
//   - ErrInvalidColumns if n < 0.
//   - ErrPivotOutOfRange, ErrShortBuffer in checked mode only.
//
// AI-Hints:
//   - Dlaswp(order, n, a, lda, k1, k2, ipiv, incx) equals DlaswpStrided with the
//     layout's strides, inck = incx, strideIPIV = |incx| and
//     offsetIPIV = k1 - k1*|incx|.
func DlaswpStrided(n int, a []float64, strideA1, strideA2, offsetA, k1, k2, inck int, ipiv []int, strideIPIV, offsetIPIV int, opts ...Option) ([]float64, error) {
	if err := ValidateColumns(n); err != nil {
		return nil, lapackErrorf(opDlaswpStrided, err)
	}

	return laswp(opDlaswpStrided, n, a, strideA1, strideA2, offsetA, k1, k2, inck,
		ipiv, offsetIPIV+k1*strideIPIV, strideIPIV, gatherOptions(opts...))
}

// laswpLayout validates the layout-tagged arguments and resolves them into strides.
func laswpLayout(tag string, order Layout, n int, a []float64, lda, k1, k2 int, ipiv []int, incx, offsetIPIV int, opts []Option) ([]float64, error) {
	if err := ValidateLayout(order); err != nil {
		return nil, lapackErrorf(tag, err)
	}
	if err := ValidateColumns(n); err != nil {
		return nil, lapackErrorf(tag, err)
	}
	if err := ValidateLeadingDim(order, n, lda); err != nil {
		return nil, lapackErrorf(tag, err)
	}
	strideRow, strideCol := order.strides(lda)

	return laswp(tag, n, a, strideRow, strideCol, 0, k1, k2, incx,
		ipiv, offsetIPIV+k1, abs(incx), gatherOptions(opts...))
}
