// SPDX-License-Identifier: MIT
// Package lapack: sentinel error set.
// Every exported routine returns these sentinels (possibly wrapped with a
// call-site tag); callers and tests match them via errors.Is.
// Validation always completes before the first write into A, so a returned
// error means the buffer was not touched.

package lapack

import (
	"errors"
	"fmt"
)

// ERROR CLASSES
// -------------
// ErrInvalidLayout is the "type" class: the layout tag itself is unusable.
// ErrBadLeadingDim and ErrInvalidColumns are the "range" class: a well-typed
// argument is out of range.
// ErrPivotOutOfRange / ErrShortBuffer are reported only in checked mode
// (WithCheckedPivots); the default fast path trusts the caller.

var (
	// ErrInvalidLayout is returned when the order argument is neither RowMajor
	// nor ColumnMajor, or when ParseLayout receives an unknown tag.
	ErrInvalidLayout = errors.New("lapack: invalid layout")

	// ErrBadLeadingDim is returned when the leading dimension is too small for
	// the declared layout: row-major needs lda >= max(1,n), column-major lda >= 1.
	ErrBadLeadingDim = errors.New("lapack: invalid leading dimension")

	// ErrInvalidColumns is returned when the number of columns n is negative.
	ErrInvalidColumns = errors.New("lapack: number of columns must be >= 0")

	// ErrPivotOutOfRange is returned in checked mode when a consumed pivot
	// position lies outside ipiv, or a pivot target is a negative row.
	ErrPivotOutOfRange = errors.New("lapack: pivot index out of range")

	// ErrShortBuffer is returned in checked mode when a row addressed by the
	// interchange sequence does not fit inside A.
	ErrShortBuffer = errors.New("lapack: matrix buffer too short")
)

// lapackErrorf wraps a sentinel with the routine tag, e.g. "Dlaswp: lapack: ...".
func lapackErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
