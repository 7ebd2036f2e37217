// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Dense storage and numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - Storage layout and leading dimension are fixed at construction; a Dense
//     never changes its layout afterwards.
//   - A zero leading dimension means "compact": cols for row-major, rows for
//     column-major.
package matrix

import "github.com/katalvlaran/lvlinalg/lapack"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultLayout is the storage order used when WithLayout is not given.
	DefaultLayout = lapack.RowMajor

	// DefaultLeadingDim requests compact storage (no padding between rows/columns).
	DefaultLeadingDim = 0

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicLayoutInvalid     = "matrix: WithLayout: layout must be RowMajor or ColumnMajor"
	panicLeadingDimInvalid = "matrix: WithLeadingDim: lda must be >= 1"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	layout         lapack.Layout // DefaultLayout
	lda            int           // DefaultLeadingDim (0 = compact)
	validateNaNInf bool          // DefaultValidateNaNInf
}

// WithLayout selects row-major or column-major storage.
// Panics if l is not a recognized layout.
func WithLayout(l lapack.Layout) Option {
	if !l.Valid() {
		panic(panicLayoutInvalid)
	}

	return func(o *Options) { o.layout = l }
}

// WithLeadingDim sets the distance between consecutive rows (row-major) or
// columns (column-major). Constructors reject an lda smaller than the
// contiguous extent with ErrBadShape; this setter only rejects lda < 1.
//
// AI-Hints:
//   - Use a padded lda to view the top-left block of a larger buffer via NewDenseFrom.
func WithLeadingDim(lda int) Option {
	if lda < 1 {
		panic(panicLeadingDimInvalid)
	}

	return func(o *Options) { o.lda = lda }
}

// WithValidateNaNInf enables strict finite-value validation (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation on ingestion and Set.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		layout:         DefaultLayout,
		lda:            DefaultLeadingDim,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies opts over the defaults, skipping nil entries.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
