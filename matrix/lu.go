// SPDX-License-Identifier: MIT

// Package matrix - LU factorization with partial pivoting.
//
// Purpose:
//   - Factor a square A as P·A = L·U, with L unit lower triangular and U upper
//     triangular, recording the row interchanges in LAPACK form: at step j,
//     row j was exchanged with row ipiv[j] (ipiv[j] >= j).
//   - Reuse the recorded pivots through lapack.Dlaswp: forward to form P·B
//     before a solve, backward to undo the permutation.
//
// Determinism:
//   - Pivot choice is max |a(i,j)| over i >= j; ties keep the smallest i.
//   - Fixed loop orders; no data-dependent reordering beyond the pivot choice.
//
// Complexity quicksheet:
//   - LU: O(n^3); Solve: O(n^2·nrhs); Det: O(n); Permute/Unpermute: O(n·nrhs).

package matrix

import (
	"fmt"
	"math"
)

// ZeroSum is the initial sum value for forward/backward substitution.
const ZeroSum = 0.0

// ZeroPivot is the sentinel for detecting a zero pivot column.
const ZeroPivot = 0.0

// Operation tags for error wrapping.
const (
	opLU        = "LU"
	opSolve     = "Solve"
	opPermute   = "Permute"
	opUnpermute = "Unpermute"
	opInverse   = "Inverse"
)

// LUFactors holds a packed factorization: L strictly below the diagonal
// (unit diagonal implied) and U on and above it, plus the pivot record.
type LUFactors struct {
	lu   *Dense // packed factors, same layout as the input when it was *Dense
	ipiv []int  // ipiv[j]: row exchanged with row j at step j
}

// LU factors a square matrix with partial pivoting.
// MAIN DESCRIPTION:
//   - Right-looking elimination (Doolittle ordering) on a private copy of m.
//
// Implementation:
//   - Stage 1: ValidateSquare(m); copy into a Dense (keeps *Dense layout).
//   - Stage 2: for each column j, pick the pivot row p = argmax_{i>=j} |a(i,j)|,
//     record ipiv[j] = p and exchange rows j and p across all columns.
//   - Stage 3: scale the sub-column by 1/a(j,j) and apply the rank-1 update
//     to the trailing block.
//
// Behavior highlights:
//   - m is never mutated.
//   - Exchanging whole rows keeps the multipliers already stored in L aligned
//     with P, which is what makes P·A = L·U hold with the final ipiv.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square), ErrSingular (a column
//     whose candidates are all exactly zero).
//
// Complexity:
//   - Time O(n^3), Space O(n^2).
func LU(m Matrix) (*LUFactors, error) {
	if err := ValidateSquare(m); err != nil {
		return nil, matrixErrorf(opLU, err)
	}
	a, err := denseCopy(m)
	if err != nil {
		return nil, matrixErrorf(opLU, err)
	}

	n := a.r
	ipiv := make([]int, n)
	var (
		i, j, k, p int
		best, v, l float64
		pivot, akj float64
		colJ, colK int
	)
	for j = 0; j < n; j++ {
		// Stage 2: pivot search (first index wins ties).
		p, best = j, math.Abs(a.data[a.offset(j, j)])
		for i = j + 1; i < n; i++ {
			if v = math.Abs(a.data[a.offset(i, j)]); v > best {
				p, best = i, v
			}
		}
		ipiv[j] = p
		if best == ZeroPivot {
			return nil, matrixErrorf(opLU, fmt.Errorf("column %d: %w", j, ErrSingular))
		}
		if p != j {
			if err = a.SwapRows(j, p); err != nil {
				return nil, matrixErrorf(opLU, err)
			}
		}

		// Stage 3: multipliers and trailing update.
		pivot = a.data[a.offset(j, j)]
		for i = j + 1; i < n; i++ {
			colJ = a.offset(i, j)
			a.data[colJ] /= pivot
			l = a.data[colJ]
			if l == 0 {
				continue
			}
			for k = j + 1; k < n; k++ {
				akj = a.data[a.offset(j, k)]
				colK = a.offset(i, k)
				a.data[colK] -= l * akj
			}
		}
	}

	return &LUFactors{lu: a, ipiv: ipiv}, nil
}

// denseCopy returns an independent compact *Dense holding m's values.
// A *Dense input keeps its layout and numeric policy.
func denseCopy(m Matrix) (*Dense, error) {
	if d, ok := m.(*Dense); ok {
		return d.clone(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols(), WithNoValidateNaNInf())
	if err != nil {
		return nil, err
	}
	var v float64
	for i := 0; i < m.Rows(); i++ {
		for j := 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			out.data[out.offset(i, j)] = v
		}
	}

	return out, nil
}

// Size returns n for the n×n factored matrix.
func (f *LUFactors) Size() int { return f.lu.r }

// Pivots returns a copy of the pivot record.
func (f *LUFactors) Pivots() []int {
	return append([]int(nil), f.ipiv...)
}

// L returns the unit lower-triangular factor as a new Dense.
// Complexity: O(n^2).
func (f *LUFactors) L() *Dense {
	n := f.lu.r
	out, _ := NewDense(n, n, WithLayout(f.lu.layout)) // n > 0 is guaranteed by LU
	for i := 0; i < n; i++ {
		for j := 0; j < i; j++ {
			out.data[out.offset(i, j)] = f.lu.data[f.lu.offset(i, j)]
		}
		out.data[out.offset(i, i)] = 1
	}

	return out
}

// U returns the upper-triangular factor as a new Dense.
// Complexity: O(n^2).
func (f *LUFactors) U() *Dense {
	n := f.lu.r
	out, _ := NewDense(n, n, WithLayout(f.lu.layout))
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			out.data[out.offset(i, j)] = f.lu.data[f.lu.offset(i, j)]
		}
	}

	return out
}

// Det returns det(A) = (-1)^s · Π U(i,i), s = number of effective interchanges.
func (f *LUFactors) Det() float64 {
	det := 1.0
	for i, p := range f.ipiv {
		if p != i {
			det = -det
		}
		det *= f.lu.data[f.lu.offset(i, i)]
	}

	return det
}

// Permute applies P to b in place (b := P·b) by replaying the pivots forward.
// Errors: ErrNilMatrix, ErrDimensionMismatch if b.Rows() != n.
// Complexity: O(n·b.Cols()).
func (f *LUFactors) Permute(b *Dense) error {
	if err := ValidateSameRows(b, f.lu.r); err != nil {
		return matrixErrorf(opPermute, err)
	}
	if err := b.ApplyPivots(0, f.lu.r-1, f.ipiv, 1); err != nil {
		return matrixErrorf(opPermute, err)
	}

	return nil
}

// Unpermute undoes Permute (b := Pᵀ·b) by replaying the same pivots with a
// negative stride, i.e. in reverse order.
// Errors: ErrNilMatrix, ErrDimensionMismatch if b.Rows() != n.
func (f *LUFactors) Unpermute(b *Dense) error {
	if err := ValidateSameRows(b, f.lu.r); err != nil {
		return matrixErrorf(opUnpermute, err)
	}
	if err := b.ApplyPivots(0, f.lu.r-1, f.ipiv, -1); err != nil {
		return matrixErrorf(opUnpermute, err)
	}

	return nil
}

// Solve returns X with A·X = B. B is not mutated; X has B's layout.
// MAIN DESCRIPTION:
//   - X := P·B (pivot replay), then L·Y = X (forward, unit diagonal),
//     then U·X = Y (backward), column by column.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (B.Rows() != n).
//
// Complexity:
//   - Time O(n^2·nrhs), Space O(n·nrhs).
func (f *LUFactors) Solve(b Matrix) (*Dense, error) {
	if err := ValidateSameRows(b, f.lu.r); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	x, err := denseCopy(b)
	if err != nil {
		return nil, matrixErrorf(opSolve, err)
	}
	if err = f.Permute(x); err != nil {
		return nil, matrixErrorf(opSolve, err)
	}

	n, lu := f.lu.r, f.lu
	var sum float64
	for c := 0; c < x.c; c++ {
		// forward: L·y = P·b
		for i := 1; i < n; i++ {
			sum = ZeroSum
			for k := 0; k < i; k++ {
				sum += lu.data[lu.offset(i, k)] * x.data[x.offset(k, c)]
			}
			x.data[x.offset(i, c)] -= sum
		}
		// backward: U·x = y
		for i := n - 1; i >= 0; i-- {
			sum = ZeroSum
			for k := i + 1; k < n; k++ {
				sum += lu.data[lu.offset(i, k)] * x.data[x.offset(k, c)]
			}
			x.data[x.offset(i, c)] = (x.data[x.offset(i, c)] - sum) / lu.data[lu.offset(i, i)]
		}
	}

	return x, nil
}

// Inverse returns A^{-1} computed as the solution of A·X = I.
// Errors: those of LU (ErrSingular included) and Solve.
// Complexity: O(n^3).
func Inverse(m Matrix) (*Dense, error) {
	f, err := LU(m)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	I, err := NewIdentity(f.Size(), WithLayout(f.lu.layout))
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}
	inv, err := f.Solve(I)
	if err != nil {
		return nil, matrixErrorf(opInverse, err)
	}

	return inv, nil
}
