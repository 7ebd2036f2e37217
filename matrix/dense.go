// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row- or column-major) & safe accessors.
//
// Purpose:
//   - Provide a flat buffer addressed through a layout and a leading dimension,
//     the same convention the lapack kernels use.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Keep algorithmic determinism (fixed loop orders, no map iteration).
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// AI-Hints:
//   - Use NewDenseFrom to wrap an existing buffer without copying; row swaps
//     through SwapRows/ApplyPivots are then visible to the buffer's owner.
//   - Operate on raw data (offset formula) in hot loops inside the package.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; NewDenseFrom: O(1) (+O(r*c) NaN scan); At/Set: O(1); Clone: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"github.com/katalvlaran/lvlinalg/lapack"
)

// ---------- error context tags ----------

const (
	ctxAt   = "At"  // method tag used in error wrappers
	ctxSet  = "Set" // method tag used in error wrappers
	opNew   = "NewDense"
	opFrom  = "NewDenseFrom"
	opIdent = "NewIdentity"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Dense is a concrete matrix over a flat buffer.
//   - r,c hold dimensions (rows, cols).
//   - element (i,j) lives at i*stride+j (row-major) or i+j*stride (column-major).
//   - validateNaNInf enables NaN/Inf rejection in Set.
type Dense struct {
	r, c           int           // row and column counts (> 0)
	stride         int           // leading dimension
	layout         lapack.Layout // storage order
	data           []float64     // backing storage, possibly caller-owned
	validateNaNInf bool          // numeric guard
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix.
// MAIN DESCRIPTION:
//   - Public constructor with strict shape validation; layout, leading dimension
//     and numeric policy come from opts.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: resolve options and the leading dimension (ErrBadShape if too small).
//   - Stage 3: allocate a zero-filled buffer of the exact required length.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape.
//
// Complexity:
//   - Time O(lda*major), Space O(lda*major).
func NewDense(rows, cols int, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opNew, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	lda, err := leadingDim(rows, cols, o)
	if err != nil {
		return nil, matrixErrorf(opNew, err)
	}

	return &Dense{
		r:              rows,
		c:              cols,
		stride:         lda,
		layout:         o.layout,
		data:           make([]float64, requiredLen(rows, cols, lda, o.layout)),
		validateNaNInf: o.validateNaNInf,
	}, nil
}

// NewDenseFrom wraps data as an r×c matrix without copying.
// MAIN DESCRIPTION:
//   - The caller keeps ownership of data; every mutation through the Dense
//     (Set, SwapRows, ApplyPivots, LU in place) is visible in data.
//
// Implementation:
//   - Stage 1: validate shape and leading dimension.
//   - Stage 2: require len(data) to reach the last element.
//   - Stage 3: when the numeric policy is on, reject NaN/±Inf among addressed elements.
//
// Errors:
//   - ErrInvalidDimensions, ErrBadShape, ErrNaNInf.
//
// Complexity:
//   - Time O(1), or O(r*c) with NaN/Inf validation.
func NewDenseFrom(rows, cols int, data []float64, opts ...Option) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf(opFrom, ErrInvalidDimensions)
	}
	o := gatherOptions(opts...)
	lda, err := leadingDim(rows, cols, o)
	if err != nil {
		return nil, matrixErrorf(opFrom, err)
	}
	if len(data) < requiredLen(rows, cols, lda, o.layout) {
		return nil, matrixErrorf(opFrom, ErrBadShape)
	}
	m := &Dense{r: rows, c: cols, stride: lda, layout: o.layout, data: data, validateNaNInf: o.validateNaNInf}
	if m.validateNaNInf {
		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				if isNonFinite(m.data[m.offset(i, j)]) {
					return nil, matrixErrorf(opFrom, denseErrorf(ctxSet, i, j, ErrNaNInf))
				}
			}
		}
	}

	return m, nil
}

// NewIdentity returns I_n (n×n identity) in the requested storage.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int, opts ...Option) (*Dense, error) {
	I, err := NewDense(n, n, opts...)
	if err != nil {
		return nil, matrixErrorf(opIdent, err)
	}
	for i := 0; i < n; i++ {
		I.data[I.offset(i, i)] = 1.0
	}

	return I, nil
}

// leadingDim resolves the effective lda for the layout. Compact when o.lda == 0.
func leadingDim(rows, cols int, o Options) (int, error) {
	extent := cols // row-major: a row spans cols elements
	if o.layout == lapack.ColumnMajor {
		extent = rows
	}
	if o.lda == DefaultLeadingDim {
		return extent, nil
	}
	if o.lda < extent {
		return 0, ErrBadShape
	}

	return o.lda, nil
}

// requiredLen is the minimal buffer length reaching element (rows-1, cols-1).
func requiredLen(rows, cols, lda int, l lapack.Layout) int {
	if l == lapack.ColumnMajor {
		return (cols-1)*lda + rows
	}

	return (rows-1)*lda + cols
}

// offset maps (i, j) to a buffer position. No bounds check.
func (m *Dense) offset(i, j int) int {
	if m.layout == lapack.RowMajor {
		return i*m.stride + j
	}

	return i + j*m.stride
}

// strides returns the (row, column) element strides of the buffer.
func (m *Dense) strides() (strideRow, strideCol int) {
	if m.layout == lapack.RowMajor {
		return m.stride, 1
	}

	return 1, m.stride
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Layout reports the storage order.
func (m *Dense) Layout() lapack.Layout { return m.layout }

// Stride reports the leading dimension.
func (m *Dense) Stride() int { return m.stride }

// RawData exposes the backing buffer (shared, not copied).
// Together with Layout and Stride it is the argument triple of lapack.Dlaswp.
func (m *Dense) RawData() []float64 { return m.data }

// indexOf computes the buffer position for (row, col) or returns ErrOutOfRange.
func (m *Dense) indexOf(method string, row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, denseErrorf(method, row, col, ErrOutOfRange)
	}

	return m.offset(row, col), nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(ctxAt, row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
// Errors: ErrOutOfRange, ErrNaNInf (when validation is on).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(ctxSet, row, col)
	if err != nil {
		return err
	}
	if m.validateNaNInf && isNonFinite(v) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[idx] = v

	return nil
}

// Clone returns a deep copy with the same layout and numeric policy.
// Padding is dropped: the copy is always compact.
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.clone()
}

// clone is the typed variant used inside the package.
func (m *Dense) clone() *Dense {
	lda := m.c
	if m.layout == lapack.ColumnMajor {
		lda = m.r
	}
	out := &Dense{
		r:              m.r,
		c:              m.c,
		stride:         lda,
		layout:         m.layout,
		data:           make([]float64, m.r*m.c),
		validateNaNInf: m.validateNaNInf,
	}
	if lda == m.stride {
		copy(out.data, m.data[:len(out.data)])
		return out
	}
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			out.data[out.offset(i, j)] = m.data[m.offset(i, j)]
		}
	}

	return out
}

// String renders rows as lines with comma-separated values.
// Not for hot paths; intended for logs and debugging.
func (m *Dense) String() string {
	var b strings.Builder
	for i := 0; i < m.r; i++ {
		b.WriteString(_fmtRowOpen)
		for j := 0; j < m.c; j++ {
			b.WriteString(fmt.Sprintf("%g", m.data[m.offset(i, j)]))
			if j+1 < m.c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
