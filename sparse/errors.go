// SPDX-License-Identifier: MIT
// Package sparse: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the
// sparse package. All operations return these sentinels and tests check
// them via errors.Is. No operation panics on user-triggered conditions —
// including the historically fatal write outside the frozen pattern, which
// is surfaced as the recoverable ErrUnpatternedCell.

package sparse

import (
	"errors"
	"fmt"
)

// Every message is prefixed with "sparse: ..." for consistency and easy
// grepping across logs. Do not %w-wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers still match via errors.Is.

var (
	// ErrInvalidDimension is returned when a requested row count is not positive.
	ErrInvalidDimension = errors.New("sparse: number of rows must be > 0")

	// ErrInvalidState indicates a structural mutation attempted outside the
	// OPEN construction phase, a Close on an already closed matrix, or a
	// kernel invoked before the pattern was frozen.
	ErrInvalidState = errors.New("sparse: operation not permitted in current state")

	// ErrIndexOutOfRange indicates a row or column index outside [0, Rows).
	ErrIndexOutOfRange = errors.New("sparse: index out of range")

	// ErrLengthMismatch indicates a vector operand whose length differs from
	// the matrix dimension.
	ErrLengthMismatch = errors.New("sparse: vector length mismatch")

	// ErrDuplicateEntry indicates a second Set for the same (i, j) position
	// under the DuplicateReject policy.
	ErrDuplicateEntry = errors.New("sparse: duplicate entry in sparsity pattern")

	// ErrMissingDiagonal indicates a row whose first stored entry is not the
	// diagonal, or a row with no stored entries where a diagonal is required.
	// The relaxation kernels divide by the leading entry of each row; this
	// sentinel turns the storage convention into an enforced invariant.
	ErrMissingDiagonal = errors.New("sparse: diagonal is not the first stored entry of its row")

	// ErrUnpatternedCell indicates a value write targeting a position that is
	// not part of the frozen sparsity pattern. The pattern is immutable after
	// Close; the entry is never auto-inserted.
	ErrUnpatternedCell = errors.New("sparse: cell not in sparsity pattern")

	// ErrInvalidTriple indicates a caller-supplied CSR triple that violates
	// the structural invariants (lengths, monotone row offsets, column bounds).
	ErrInvalidTriple = errors.New("sparse: invalid CSR triple")

	// ErrNonFinite indicates a NaN or ±Inf scalar where a finite value is
	// required by the numeric policy (e.g. the SOR relaxation factor).
	ErrNonFinite = errors.New("sparse: non-finite scalar")

	// ErrNilVector indicates a nil vector operand passed to a kernel.
	ErrNilVector = errors.New("sparse: nil vector operand")
)

// sparseErrorf wraps err with an operation tag, preserving the original
// sentinel via %w. Use only when err != nil.
func sparseErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
