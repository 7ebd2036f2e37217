// SPDX-License-Identifier: MIT

// Package matrix - row interchanges on Dense.
//
// Purpose:
//   - Bridge Dense storage to lapack.Dlaswp: (RawData, Layout, Stride) is
//     exactly the kernel's (A, order, LDA) triple, so no copy is involved.
//   - Keep the safe-surface contract: ranges and pivot targets are validated
//     here, so the kernel can run on its unchecked fast path.

package matrix

import "github.com/katalvlaran/lvlinalg/lapack"

const (
	opSwapRows    = "SwapRows"
	opApplyPivots = "ApplyPivots"
)

// SwapRows exchanges rows i and j in place.
// Errors: ErrOutOfRange if either index is outside [0, Rows()).
// Complexity: O(c).
func (m *Dense) SwapRows(i, j int) error {
	if i < 0 || i >= m.r || j < 0 || j >= m.r {
		return denseErrorf(opSwapRows, i, j, ErrOutOfRange)
	}
	if i == j {
		return nil
	}
	// a zero pivot stride makes row i read ipiv[0].
	sr, sc := m.strides()
	_, err := lapack.DlaswpStrided(m.c, m.data, sr, sc, 0, i, i, 1, []int{j}, 0, 0)
	if err != nil {
		return matrixErrorf(opSwapRows, err)
	}

	return nil
}

// ApplyPivots performs the row interchanges recorded in ipiv on rows k1..k2:
// row k is exchanged with row ipiv[k1+(k-k1)*|incx|]. incx > 0 applies them
// in ascending order (P·A), incx < 0 in descending order (the inverse).
//
// Errors (checked before any write):
//   - ErrOutOfRange for a range outside the matrix, a short ipiv, or a target
//     outside [0, Rows()).
//
// Complexity: O((k2-k1+1)·c).
func (m *Dense) ApplyPivots(k1, k2 int, ipiv []int, incx int) error {
	if err := ValidatePivots(m.r, k1, k2, ipiv, incx); err != nil {
		return matrixErrorf(opApplyPivots, err)
	}
	if _, err := lapack.Dlaswp(m.layout, m.c, m.data, m.stride, k1, k2, ipiv, incx); err != nil {
		return matrixErrorf(opApplyPivots, err)
	}

	return nil
}
