// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/pivot checks here.
//  - Return tagged sentinel errors so call sites can wrap uniformly.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A typed nil *Dense is treated as nil as well.
// Returns ErrNilMatrix. Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquare", err)
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulCompatible – Composite: NotNil(a) → NotNil(b) → a.Cols == b.Rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSameRows ensures b has exactly n rows (right-hand sides, permutations).
// Errors: ErrNilMatrix, ErrDimensionMismatch. Complexity: O(1).
func ValidateSameRows(b Matrix, n int) error {
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateSameRows", err)
	}
	if b.Rows() != n {
		return validatorErrorf("ValidateSameRows", ErrDimensionMismatch)
	}

	return nil
}

// ValidatePivots checks a pivot sequence against a matrix with the given row count:
// the range [k1,k2] must lie inside [0,rows), every consumed position
// k1+(k-k1)*|incx| must lie inside ipiv, and every target inside [0,rows).
// An empty range (k1 > k2) or incx == 0 is always valid.
// Errors: ErrOutOfRange. Complexity: O(k2-k1+1).
func ValidatePivots(rows, k1, k2 int, ipiv []int, incx int) error {
	if incx == 0 || k1 > k2 {
		return nil
	}
	if k1 < 0 || k2 >= rows {
		return validatorErrorf("ValidatePivots: range", ErrOutOfRange)
	}
	step := incx
	if step < 0 {
		step = -step
	}
	var pos int
	for k := k1; k <= k2; k++ {
		pos = k1 + (k-k1)*step
		if pos >= len(ipiv) {
			return validatorErrorf("ValidatePivots: ipiv length", ErrOutOfRange)
		}
		if p := ipiv[pos]; p < 0 || p >= rows {
			return validatorErrorf(fmt.Sprintf("ValidatePivots: ipiv[%d]=%d", pos, p), ErrOutOfRange)
		}
	}

	return nil
}
