// SPDX-License-Identifier: MIT
// Package lapack_test contains test helpers.
//
// Purpose:
//   - Convert between flat buffers and nested rows for either layout.
//   - Provide a naive nested-row interchange used as a reference result.

package lapack_test

import (
	"math/rand"
	"testing"

	"github.com/samber/lo"

	"github.com/katalvlaran/lvlinalg/lapack"
)

// toRows reads an r×c matrix out of buf using the layout and leading dimension.
func toRows(buf []float64, r, c, lda int, order lapack.Layout) [][]float64 {
	return lo.Map(lo.Range(r), func(i int, _ int) []float64 {
		return lo.Map(lo.Range(c), func(j int, _ int) float64 {
			if order == lapack.RowMajor {
				return buf[i*lda+j]
			}
			return buf[i+j*lda]
		})
	})
}

// fromRows writes rows back into a fresh buffer of length r*lda (row-major)
// or c*lda (column-major).
func fromRows(rows [][]float64, lda int, order lapack.Layout) []float64 {
	r, c := len(rows), len(rows[0])
	if order == lapack.RowMajor {
		out := make([]float64, r*lda)
		for i, row := range rows {
			copy(out[i*lda:], row)
		}
		return out
	}
	out := make([]float64, c*lda)
	for i, row := range rows {
		for j, v := range row {
			out[i+j*lda] = v
		}
	}

	return out
}

// naiveInterchange applies the pivots to a copy of rows, swapping whole rows.
// Row k pairs with ipiv[k1+(k-k1)*|inc|]; inc < 0 walks k2..k1.
func naiveInterchange(rows [][]float64, k1, k2 int, ipiv []int, inc int) [][]float64 {
	step := inc
	if step < 0 {
		step = -step
	}

	return naiveSweep(rows, k1, k2, inc, func(k int) int { return ipiv[k1+(k-k1)*step] })
}

// naiveStrided is the reference for DlaswpStrided: row k pairs with
// ipiv[offsetIPIV + k*strideIPIV] and inck alone sets the direction.
func naiveStrided(rows [][]float64, k1, k2, inck int, ipiv []int, strideIPIV, offsetIPIV int) [][]float64 {
	return naiveSweep(rows, k1, k2, inck, func(k int) int { return ipiv[offsetIPIV+k*strideIPIV] })
}

// naiveSweep swaps row k with row pivot(k) for k in k1..k2 (dir > 0) or k2..k1 (dir < 0).
func naiveSweep(rows [][]float64, k1, k2, dir int, pivot func(k int) int) [][]float64 {
	out := lo.Map(rows, func(row []float64, _ int) []float64 { return append([]float64(nil), row...) })
	apply := func(k int) {
		p := pivot(k)
		out[k], out[p] = out[p], out[k]
	}
	switch {
	case dir > 0:
		for k := k1; k <= k2; k++ {
			apply(k)
		}
	case dir < 0:
		for k := k2; k >= k1; k-- {
			apply(k)
		}
	}

	return out
}

// stridedView lays rows out in a buffer with element (r,c) at
// offsetA + r*s1 + c*s2, surrounded by pad sentinel cells on each side.
// Every cell outside the view holds sentinel.
func stridedView(rows [][]float64, s1, s2, pad int, sentinel float64) (buf []float64, offsetA int) {
	r, c := len(rows), len(rows[0])
	lowest := min(0, (r-1)*s1) + min(0, (c-1)*s2)
	highest := max(0, (r-1)*s1) + max(0, (c-1)*s2)
	offsetA = pad - lowest
	buf = lo.Times(offsetA+highest+1+pad, func(_ int) float64 { return sentinel })
	for i, row := range rows {
		for j, v := range row {
			buf[offsetA+i*s1+j*s2] = v
		}
	}

	return buf, offsetA
}

// fromView reads an r×c matrix back out of a strided buffer.
func fromView(buf []float64, r, c, s1, s2, offsetA int) [][]float64 {
	return lo.Map(lo.Range(r), func(i int, _ int) []float64 {
		return lo.Map(lo.Range(c), func(j int, _ int) float64 { return buf[offsetA+i*s1+j*s2] })
	})
}

// randomPivots returns count targets drawn from [0, rows).
func randomPivots(rng *rand.Rand, count, rows int) []int {
	return lo.Times(count, func(_ int) int { return rng.Intn(rows) })
}

// randomBuffer returns n values in [-1, 1).
func randomBuffer(rng *rand.Rand, n int) []float64 {
	return lo.Times(n, func(_ int) float64 { return 2*rng.Float64() - 1 })
}

// oneTo returns [1, 2, ..., n] as float64.
func oneTo(n int) []float64 {
	return lo.Map(lo.RangeFrom(1, n), func(v int, _ int) float64 { return float64(v) })
}

// cloneBuf returns an independent copy of buf.
func cloneBuf(t testing.TB, buf []float64) []float64 {
	t.Helper()
	return append([]float64(nil), buf...)
}
