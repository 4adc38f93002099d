// SPDX-License-Identifier: MIT

// Package sparse: functional configuration for matrix construction policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state, each flag impacts behavior
//     and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer
//     error); user-triggered conditions surface as sentinel errors.
//   - Options fields are unexported; public entry points consume ...Option.

package sparse

import log "github.com/sirupsen/logrus"

// DuplicatePolicy selects how a second Set for an already staged (i, j)
// position is handled while the pattern is OPEN.
type DuplicatePolicy uint8

const (
	// DuplicateReject fails the second insertion with ErrDuplicateEntry.
	// This is the default: a duplicated pattern position is almost always a
	// construction bug, and storing it twice would make later reads depend
	// on storage order.
	DuplicateReject DuplicatePolicy = iota

	// DuplicateOverwrite keeps the original storage slot (and therefore the
	// original insertion order) and replaces its value.
	DuplicateOverwrite
)

// DEFAULTS - single source of truth for zero-value behavior.
const (
	// DefaultDuplicatePolicy rejects repeated pattern positions.
	DefaultDuplicatePolicy = DuplicateReject

	// DefaultDiagonalCheck enforces the leading-diagonal convention at
	// Close/NewFromCSR time for every non-empty row. Disable it only for
	// matrices used exclusively with MatVec, which never reads the diagonal.
	DefaultDiagonalCheck = true
)

// Internal panic messages (no magic strings).
const (
	panicUnknownDuplicatePolicy = "sparse: WithDuplicatePolicy: unknown policy"
	panicNilLogger              = "sparse: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported to prevent external mutation; public constructors
// accept `...Option` and resolve them via gatherOptions.
type Options struct {
	dupPolicy DuplicatePolicy // DefaultDuplicatePolicy
	diagCheck bool            // DefaultDiagonalCheck
	logger    *log.Logger     // destination for Close diagnostics
}

// WithDuplicatePolicy selects the duplicate-insertion policy for Set.
// Panics with a stable message when p is not a declared policy value.
func WithDuplicatePolicy(p DuplicatePolicy) Option {
	if p != DuplicateReject && p != DuplicateOverwrite {
		panic(panicUnknownDuplicatePolicy)
	}

	return func(o *Options) { o.dupPolicy = p }
}

// WithDiagonalCheck toggles the Close/NewFromCSR validation that every
// non-empty row stores its diagonal entry first. The relaxation kernels
// independently refuse to run on a matrix without a complete leading
// diagonal, so disabling the check only defers the failure.
func WithDiagonalCheck(enabled bool) Option {
	return func(o *Options) { o.diagCheck = enabled }
}

// WithLogger sets the sink for non-fatal construction diagnostics (the
// per-empty-row warning emitted by Close). Panics when logger is nil; use
// a logger with a raised level to silence diagnostics instead.
func WithLogger(logger *log.Logger) Option {
	if logger == nil {
		panic(panicNilLogger)
	}

	return func(o *Options) { o.logger = logger }
}

// gatherOptions applies setters over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		dupPolicy: DefaultDuplicatePolicy,
		diagCheck: DefaultDiagonalCheck,
		logger:    log.StandardLogger(),
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
