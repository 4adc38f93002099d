// SPDX-License-Identifier: MIT

// Package sparse: canonical validation checks shared across the package.
// All checks are pure, deterministic and allocate nothing; they return
// plain sentinels so call sites can wrap uniformly via sparseErrorf.

package sparse

import (
	"fmt"

	"github.com/katalvlaran/sparsekit/vector"
)

// validateRowIndex ensures 0 <= i < nrow.
// Complexity: O(1).
func (m *Matrix) validateRowIndex(i int) error {
	if i < 0 || i >= m.nrow {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateOpen ensures the pattern is still under construction.
// Complexity: O(1).
func (m *Matrix) validateOpen() error {
	if m.st != stateOpen {
		return ErrInvalidState
	}

	return nil
}

// validateClosed ensures the pattern has been frozen.
// Complexity: O(1).
func (m *Matrix) validateClosed() error {
	if m.st != stateClosed {
		return ErrInvalidState
	}

	return nil
}

// validateVecLen ensures v is non-nil and of length nrow.
// Complexity: O(1).
func (m *Matrix) validateVecLen(v *vector.Vector) error {
	if v == nil {
		return ErrNilVector
	}
	if v.Len() != m.nrow {
		return ErrLengthMismatch
	}

	return nil
}

// validateTriple checks the structural CSR invariants of a caller-supplied
// triple: rowPtr holds at least two offsets starting at 0, offsets are
// non-decreasing and end at the common length of colInd/val (which must be
// positive), and every column index is inside [0, nrow).
// Complexity: O(nrow + nnz).
func validateTriple(rowPtr, colInd []int, val []float64) error {
	if len(rowPtr) < 2 {
		return fmt.Errorf("rowPtr needs >= 2 offsets, got %d: %w", len(rowPtr), ErrInvalidTriple)
	}
	if rowPtr[0] != 0 {
		return fmt.Errorf("rowPtr[0] = %d, want 0: %w", rowPtr[0], ErrInvalidTriple)
	}
	if len(colInd) != len(val) {
		return fmt.Errorf("len(colInd)=%d != len(val)=%d: %w", len(colInd), len(val), ErrInvalidTriple)
	}
	if len(val) == 0 {
		return fmt.Errorf("triple has no stored entries: %w", ErrInvalidTriple)
	}

	nrow := len(rowPtr) - 1
	for i := 1; i <= nrow; i++ {
		if rowPtr[i] < rowPtr[i-1] {
			return fmt.Errorf("rowPtr not non-decreasing at %d: %w", i, ErrInvalidTriple)
		}
	}
	if rowPtr[nrow] != len(val) {
		return fmt.Errorf("rowPtr[%d]=%d != nnz=%d: %w", nrow, rowPtr[nrow], len(val), ErrInvalidTriple)
	}
	for d, j := range colInd {
		if j < 0 || j >= nrow {
			return fmt.Errorf("colInd[%d]=%d outside [0,%d): %w", d, j, nrow, ErrInvalidTriple)
		}
	}

	return nil
}
