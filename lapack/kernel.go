// SPDX-License-Identifier: MIT

// Package lapack - strided interchange kernel.
//
// Purpose:
//   - One kernel serves every entry point: layouts are resolved into a pair of
//     element strides (strideRow, strideCol) before the kernel runs.
//   - Row k of the range pairs with ipiv[base + (k-k1)*step]. The layout-tagged
//     calls use base = offsetIPIV + k1 and step = |incx| (reference IX0 rule);
//     the strided call uses base = offsetIPIV + k1*strideIPIV, step = strideIPIV.
//   - Traversal order comes from inck alone; the sign of step only decides
//     which way the pivot cursor moves through ipiv.
//
// Determinism:
//   - Swaps are applied sequentially in place; step t observes steps 0..t-1.
//   - Blocking by columns never changes the result, only the memory order.
//
// Complexity quicksheet:
//   - Time O((k2-k1+1) * n), Space O(1).

package lapack

import (
	"gonum.org/v1/gonum/blas"
	"gonum.org/v1/gonum/blas/blas64"
)

// interchange is the resolved form of one kernel call.
type interchange struct {
	n         int       // elements swapped per interchange
	a         []float64 // matrix buffer, mutated in place
	strideRow int       // distance between (r,c) and (r+1,c)
	strideCol int       // distance between (r,c) and (r,c+1)
	offsetA   int       // position of element (0,0)
	k1, k2    int       // inclusive row range
	forward   bool      // true: k1..k2, false: k2..k1
	ipiv      []int     // pivot buffer
	ipivBase  int       // position in ipiv paired with row k1
	ipivStep  int       // signed distance between pivots of adjacent rows
	bi        blas.Float64
}

// pivotPos returns the ipiv position paired with row k.
func (x *interchange) pivotPos(k int) int {
	return x.ipivBase + (k-x.k1)*x.ipivStep
}

// rowStart returns the buffer position of element (row, col).
func (x *interchange) rowStart(row, col int) int {
	return x.offsetA + row*x.strideRow + col*x.strideCol
}

// rowFits reports whether all n elements of row lie inside a.
func (x *interchange) rowFits(row int) bool {
	first := x.rowStart(row, 0)
	last := first + (x.n-1)*x.strideCol
	lo, hi := min(first, last), max(first, last)

	return lo >= 0 && hi < len(x.a)
}

// check walks the interchange sequence without writing and reports the first
// violation. Only used in checked mode.
func (x *interchange) check() error {
	var pos, p int
	for k := x.k1; k <= x.k2; k++ {
		pos = x.pivotPos(k)
		if pos < 0 || pos >= len(x.ipiv) {
			return ErrPivotOutOfRange
		}
		p = x.ipiv[pos]
		if p < 0 {
			return ErrPivotOutOfRange
		}
		if p == k {
			continue // self-swap never touches A
		}
		if !x.rowFits(k) || !x.rowFits(p) {
			return ErrShortBuffer
		}
	}

	return nil
}

// sweep applies the whole pivot sequence to columns [col, col+width).
func (x *interchange) sweep(col, width int) {
	var p int
	if x.forward {
		for k := x.k1; k <= x.k2; k++ {
			if p = x.ipiv[x.pivotPos(k)]; p != k {
				x.swap(width, x.rowStart(k, col), x.rowStart(p, col))
			}
		}
		return
	}
	for k := x.k2; k >= x.k1; k-- {
		if p = x.ipiv[x.pivotPos(k)]; p != k {
			x.swap(width, x.rowStart(k, col), x.rowStart(p, col))
		}
	}
}

// swap exchanges width elements starting at ia and ib, both stepping by strideCol.
// Dswap addresses vectors from their lowest element, so a negative stride is
// rebased; both vectors are reversed together and pairs stay aligned.
func (x *interchange) swap(width, ia, ib int) {
	inc := x.strideCol
	if inc == 0 {
		// every column aliases one element; Dswap rejects a zero increment.
		for j := 0; j < width; j++ {
			x.a[ia], x.a[ib] = x.a[ib], x.a[ia]
		}
		return
	}
	if inc < 0 {
		shift := (width - 1) * inc
		ia, ib, inc = ia+shift, ib+shift, -inc
	}
	x.bi.Dswap(width, x.a[ia:], inc, x.a[ib:], inc)
}

// run executes the interchange. Rows stored contiguously are swapped in one
// pass; otherwise columns are processed in blocks of nb so every pass over the
// pivot range stays within a narrow band of memory.
func (x *interchange) run(nb int) {
	if abs(x.strideCol) <= abs(x.strideRow) {
		x.sweep(0, x.n)
		return
	}
	for col := 0; col < x.n; col += nb {
		x.sweep(col, min(nb, x.n-col))
	}
}

// laswp is the common body of every entry point. Arguments have already passed
// the argument validation of the caller. inck > 0 walks k1..k2, inck < 0 walks
// k2..k1; ipivBase is the ipiv position of row k1.
func laswp(tag string, n int, a []float64, strideRow, strideCol, offsetA, k1, k2, inck int,
	ipiv []int, ipivBase, ipivStep int, o Options) ([]float64, error) {
	// Zero direction is the documented no-op sentinel.
	if inck == 0 || n == 0 || k1 > k2 {
		return a, nil
	}

	x := interchange{
		n:         n,
		a:         a,
		strideRow: strideRow,
		strideCol: strideCol,
		offsetA:   offsetA,
		k1:        k1,
		k2:        k2,
		forward:   inck > 0,
		ipiv:      ipiv,
		ipivBase:  ipivBase,
		ipivStep:  ipivStep,
		bi:        blas64.Implementation(),
	}
	if o.checkedPivots {
		if err := x.check(); err != nil {
			return nil, lapackErrorf(tag, err)
		}
	}
	x.run(o.blockSize)

	return a, nil
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
