// SPDX-License-Identifier: MIT
// Package matrix - products used to verify and consume factorizations.
//
// Notes:
//   - All kernels validate through validators.go and wrap with matrixErrorf.
//   - The *Dense fast path reads through the offset formula, so mixed layouts
//     multiply correctly; the result is always row-major.

package matrix

import "fmt"

const (
	opMul    = "Mul"
	opMatVec = "MatVec"
)

// Mul returns the matrix product a × b as a new row-major Dense.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(a, b). Allocate result Dense(a.Rows, b.Cols).
//   - Stage 2: fast path when both are *Dense (i-k-j loop, zero skip);
//     otherwise a generic i-j-k loop through At.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r·n·c), Space O(r·c).
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols, WithNoValidateNaNInf())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
		rowR            int
	)
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for i = 0; i < aRows; i++ {
			rowR = i * bCols
			for k = 0; k < aCols; k++ {
				av = da.data[da.offset(i, k)]
				if av == 0 {
					continue // skip zero for performance
				}
				for j = 0; j < bCols; j++ {
					res.data[rowR+j] += av * db.data[db.offset(k, j)]
				}
			}
		}
		return res, nil
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[rowR+j] = current
		}
		rowR += bCols
	}

	return res, nil
}

// MatVec returns y = m·x.
// Errors: ErrNilMatrix, ErrDimensionMismatch (len(x) != Cols).
// Complexity: O(r·c).
func MatVec(m Matrix, x []float64) ([]float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	if len(x) != m.Cols() {
		return nil, matrixErrorf(opMatVec, ErrDimensionMismatch)
	}
	y := make([]float64, m.Rows())
	var (
		v   float64
		err error
	)
	for i := range y {
		for j, xj := range x {
			if v, err = m.At(i, j); err != nil {
				return nil, matrixErrorf(opMatVec, err)
			}
			y[i] += v * xj
		}
	}

	return y, nil
}
