// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for Dense and LU tests.
//   • Keep all data finite and well-formed to avoid numeric-policy interference.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvlinalg/lapack"
	"github.com/katalvlaran/lvlinalg/matrix"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the generic (non-*Dense) paths in code under test.
type hide struct{ matrix.Matrix }

// layouts lists both storage orders for table loops.
var layouts = []lapack.Layout{lapack.RowMajor, lapack.ColumnMajor}

// NewFilledDense builds an r×c *Dense in the given layout from row-major vals.
// Fails the test if len(vals) != r*c or construction fails.
func NewFilledDense(t testing.TB, r, c int, layout lapack.Layout, vals []float64) *matrix.Dense {
	t.Helper()
	if len(vals) != r*c {
		t.Fatalf("NewFilledDense: len(vals)=%d, want %d", len(vals), r*c)
	}
	m, err := matrix.NewDense(r, c, matrix.WithLayout(layout))
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err = m.Set(i, j, vals[i*c+j]); err != nil {
				t.Fatalf("Set(%d,%d): %v", i, j, err)
			}
		}
	}

	return m
}

// RandomDense returns an r×c Dense with entries in [-1,1) from a fixed seed.
func RandomDense(t testing.TB, r, c int, layout lapack.Layout, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = 2*rng.Float64() - 1
	}

	return NewFilledDense(t, r, c, layout, vals)
}

// rowsOf reads a Matrix into nested rows via At.
func rowsOf(t testing.TB, m matrix.Matrix) [][]float64 {
	t.Helper()
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			if err != nil {
				t.Fatalf("At(%d,%d): %v", i, j, err)
			}
			out[i][j] = v
		}
	}

	return out
}

// requireClose fails unless a and b have equal shapes and |a-b| <= tol elementwise.
func requireClose(t testing.TB, want, got matrix.Matrix, tol float64) {
	t.Helper()
	w, g := rowsOf(t, want), rowsOf(t, got)
	if len(w) != len(g) {
		t.Fatalf("rows: want %d, got %d", len(w), len(g))
	}
	for i := range w {
		if len(w[i]) != len(g[i]) {
			t.Fatalf("cols: want %d, got %d", len(w[i]), len(g[i]))
		}
		for j := range w[i] {
			if d := w[i][j] - g[i][j]; d > tol || d < -tol {
				t.Fatalf("(%d,%d): want %g, got %g (tol %g)", i, j, w[i][j], g[i][j], tol)
			}
		}
	}
}
