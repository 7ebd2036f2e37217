// SPDX-License-Identifier: MIT
// Package: lapack
//
// Purpose:
//  - Single source of truth for argument checks shared by the entry points.
//  - Return plain sentinel errors (no wrapping) so call sites wrap uniformly.
//
// Note:
//  - Validators are pure and allocate nothing.

package lapack

// ValidateLayout returns ErrInvalidLayout unless l is RowMajor or ColumnMajor.
func ValidateLayout(l Layout) error {
	if !l.Valid() {
		return ErrInvalidLayout
	}

	return nil
}

// ValidateColumns returns ErrInvalidColumns when n < 0. n == 0 is a valid empty sweep.
func ValidateColumns(n int) error {
	if n < 0 {
		return ErrInvalidColumns
	}

	return nil
}

// ValidateLeadingDim checks lda against the layout.
//
// Row-major rows hold n elements each, so lda >= max(1, n).
// Column-major rows are interleaved and the number of rows is unknown here,
// so only lda >= 1 is enforced.
// Assumes l has already passed ValidateLayout.
func ValidateLeadingDim(l Layout, n, lda int) error {
	if l == RowMajor && lda < max(1, n) {
		return ErrBadLeadingDim
	}
	if lda < 1 {
		return ErrBadLeadingDim
	}

	return nil
}
