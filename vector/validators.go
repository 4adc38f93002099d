// SPDX-License-Identifier: MIT
// Package vector: canonical validation checks shared by all operations.
// All checks are pure, deterministic and allocate nothing; they return plain
// sentinels so call sites can wrap uniformly via vectorErrorf.

package vector

// validateIndex ensures 0 <= i < n.
// Complexity: O(1).
func validateIndex(i, n int) error {
	if i < 0 || i >= n {
		return ErrIndexOutOfRange
	}

	return nil
}

// validateSameLen ensures both vectors are non-nil and of equal length.
// Nil is checked first so binary operations never dereference a nil operand.
// Complexity: O(1).
func validateSameLen(a, b *Vector) error {
	if a == nil || b == nil {
		return ErrNilVector
	}
	if len(a.data) != len(b.data) {
		return ErrLengthMismatch
	}

	return nil
}
