// SPDX-License-Identifier: MIT

package lapack

import "fmt"

// Layout selects how a (row, col) pair maps onto a flat buffer.
//
//   - RowMajor:    offset = row*lda + col
//   - ColumnMajor: offset = row + col*lda
//
// The zero value is not a valid layout, so an uninitialized Layout is
// rejected instead of silently picking a convention.
type Layout uint8

const (
	// RowMajor stores each row contiguously; lda is the distance between rows.
	RowMajor Layout = iota + 1

	// ColumnMajor stores each column contiguously; lda is the distance between columns.
	ColumnMajor
)

// Textual tags accepted by ParseLayout and produced by String.
const (
	tagRowMajor    = "row-major"
	tagColumnMajor = "column-major"
)

// ParseLayout converts "row-major" or "column-major" into a Layout.
// Any other tag yields ErrInvalidLayout.
func ParseLayout(s string) (Layout, error) {
	switch s {
	case tagRowMajor:
		return RowMajor, nil
	case tagColumnMajor:
		return ColumnMajor, nil
	}

	return 0, fmt.Errorf("ParseLayout(%q): %w", s, ErrInvalidLayout)
}

// Valid reports whether l is one of the two recognized layouts.
func (l Layout) Valid() bool {
	return l == RowMajor || l == ColumnMajor
}

// String implements fmt.Stringer.
func (l Layout) String() string {
	switch l {
	case RowMajor:
		return tagRowMajor
	case ColumnMajor:
		return tagColumnMajor
	}

	return fmt.Sprintf("Layout(%d)", uint8(l))
}

// strides resolves the layout into the (row, column) element strides used by
// the strided kernel. It is called once per entry, never per element.
func (l Layout) strides(lda int) (strideRow, strideCol int) {
	if l == RowMajor {
		return lda, 1
	}

	return 1, lda
}
