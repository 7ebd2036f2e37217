// SPDX-License-Identifier: MIT
// Package lapack_test contains tests for functional options.
package lapack_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlinalg/lapack"
)

// TestWithBlockSize_PanicsOnInvalid ensures nonsensical block sizes are programmer errors.
func TestWithBlockSize_PanicsOnInvalid(t *testing.T) {
	assert.Panics(t, func() { lapack.WithBlockSize(0) })
	assert.Panics(t, func() { lapack.WithBlockSize(-3) })
	assert.NotPanics(t, func() { lapack.WithBlockSize(1) })
}

// TestWithBlockSize_SameResult checks that column blocking never changes the result.
func TestWithBlockSize_SameResult(t *testing.T) {
	t.Parallel()

	const m, n = 7, 70
	rng := rand.New(rand.NewSource(2024))
	orig := randomBuffer(rng, m*n)
	ipiv := randomPivots(rng, m, m)

	want := naiveInterchange(toRows(orig, m, n, m, lapack.ColumnMajor), 0, m-1, ipiv, 1)
	for _, nb := range []int{1, 3, 32, 69, 70, 500} {
		a := cloneBuf(t, orig)
		_, err := lapack.Dlaswp(lapack.ColumnMajor, n, a, m, 0, m-1, ipiv, 1, lapack.WithBlockSize(nb))
		require.NoError(t, err)
		require.Equal(t, want, toRows(a, m, n, m, lapack.ColumnMajor), "nb=%d", nb)
	}
}

// TestWithCheckedPivots_Errors covers each checked-mode violation and the
// untouched-buffer guarantee.
func TestWithCheckedPivots_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		order   lapack.Layout
		ipiv    []int
		incx    int
		offset  int
		wantErr error
	}{
		{"pivot target past last row", lapack.RowMajor, []int{1, 3, 2}, 1, 0, lapack.ErrShortBuffer},
		{"negative pivot target", lapack.RowMajor, []int{-1, 1, 2}, 1, 0, lapack.ErrPivotOutOfRange},
		{"ipiv too short for stride", lapack.ColumnMajor, []int{0, 1, 2}, 2, 0, lapack.ErrPivotOutOfRange},
		{"offset past ipiv", lapack.RowMajor, []int{0, 1, 2}, 1, 2, lapack.ErrPivotOutOfRange},
		{"column-major target past last row", lapack.ColumnMajor, []int{2, 1, 5}, -1, 0, lapack.ErrShortBuffer},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			a := oneTo(6) // 3×2
			lda := 2
			if tc.order == lapack.ColumnMajor {
				lda = 3
			}
			out, err := lapack.DlaswpOffset(tc.order, 2, a, lda, 0, 2, tc.ipiv, tc.incx, tc.offset, lapack.WithCheckedPivots())
			require.ErrorIs(t, err, tc.wantErr)
			require.Nil(t, out)
			require.Equal(t, oneTo(6), a, "checked mode must fail before any write")
		})
	}
}

// TestWithCheckedPivots_ValidInput verifies checked mode returns the same result as the fast path.
func TestWithCheckedPivots_ValidInput(t *testing.T) {
	t.Parallel()

	ipiv := []int{2, 2, 2}
	fast, err := lapack.Dlaswp(lapack.RowMajor, 2, oneTo(6), 2, 0, 2, ipiv, 1)
	require.NoError(t, err)
	checked, err := lapack.Dlaswp(lapack.RowMajor, 2, oneTo(6), 2, 0, 2, ipiv, 1, lapack.WithCheckedPivots())
	require.NoError(t, err)
	require.Equal(t, fast, checked)

	// self-pivots never address A, so even a row past the buffer is accepted.
	_, err = lapack.DlaswpStrided(2, oneTo(4), 2, 1, 0, 0, 3, 1, []int{0, 1, 2, 3}, 1, 0, lapack.WithCheckedPivots())
	require.NoError(t, err)
}

// TestNilOptionIgnored ensures a nil Option in the variadic list is skipped.
func TestNilOptionIgnored(t *testing.T) {
	out, err := lapack.Dlaswp(lapack.RowMajor, 1, []float64{1, 2}, 1, 0, 0, []int{1}, 1, nil)
	require.NoError(t, err)
	require.Equal(t, []float64{2, 1}, out)
}
