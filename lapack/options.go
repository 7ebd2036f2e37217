// SPDX-License-Identifier: MIT

// Package lapack: functional configuration for the interchange kernels.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// Design goals:
//   - No global state: every call resolves its own Options.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Panics only on invalid option parameters (programmer error).
package lapack

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultCheckedPivots keeps the reference contract: pivot targets and
	// buffer extents are the caller's responsibility.
	DefaultCheckedPivots = false

	// DefaultBlockSize is the number of columns swapped per pass over the
	// pivot range when rows are not contiguous (same value as reference dlaswp).
	DefaultBlockSize = 32
)

const panicBlockSizeInvalid = "lapack: WithBlockSize: nb must be >= 1"

// Option mutates internal options. Applying the same Option twice is harmless.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; entry points accept ...Option.
type Options struct {
	checkedPivots bool // DefaultCheckedPivots
	blockSize     int  // DefaultBlockSize
}

// WithCheckedPivots enables the defensive path.
//
// Behavior highlights:
//   - Every pivot position read from ipiv is checked against len(ipiv).
//   - Every element of every row touched by a swap is checked against len(a).
//   - All checks run before the first write, preserving all-or-nothing semantics.
//
// Complexity:
//   - Adds one O(k2-k1+1) pass; the swap loop itself is unchanged.
//
// AI-Hints:
//   - Use on pivots coming from outside your own factorization code.
func WithCheckedPivots() Option {
	return func(o *Options) { o.checkedPivots = true }
}

// WithBlockSize sets the column block width used for column-oriented storage.
// Panics if nb < 1.
func WithBlockSize(nb int) Option {
	if nb < 1 {
		panic(panicBlockSizeInvalid)
	}

	return func(o *Options) { o.blockSize = nb }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		checkedPivots: DefaultCheckedPivots,
		blockSize:     DefaultBlockSize,
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
