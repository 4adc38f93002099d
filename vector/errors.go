// SPDX-License-Identifier: MIT
// Package vector: sentinel error set.
// All operations return these sentinels and tests check them via errors.Is.
// No operation panics on user-triggered error conditions.

package vector

import "errors"

var (
	// ErrInvalidSize is returned when a requested vector length is not positive.
	ErrInvalidSize = errors.New("vector: length must be > 0")

	// ErrIndexOutOfRange indicates an element index outside [0, Len).
	ErrIndexOutOfRange = errors.New("vector: index out of range")

	// ErrLengthMismatch indicates operands of unequal length passed to a
	// binary operation (Add, AddInPlace, Dot).
	ErrLengthMismatch = errors.New("vector: length mismatch")

	// ErrNilVector indicates a nil *Vector receiver or argument.
	ErrNilVector = errors.New("vector: nil vector")
)
