// SPDX-License-Identifier: MIT
// Package vector: the Vector type and its operations.
// Element-wise arithmetic delegates to gonum/floats; validation lives in
// validators.go and returns plain sentinels for uniform wrapping here.

package vector

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Vector is a fixed-length dense vector of float64 values.
// The length is set at construction and never changes afterwards.
type Vector struct {
	data []float64 // backing storage, length fixed at construction
}

// vectorErrorf wraps err with an operation tag, preserving the sentinel via %w.
// Use only when err != nil.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// New creates a zero-initialized Vector of length n.
//
// Inputs:
//   - n: requested length, must be > 0.
//
// Returns:
//   - *Vector: freshly allocated vector with all elements 0.
//
// Errors:
//   - ErrInvalidSize when n <= 0.
//
// Complexity: O(n) time and space.
func New(n int) (*Vector, error) {
	if n <= 0 {
		return nil, vectorErrorf("New", ErrInvalidSize)
	}

	return &Vector{data: make([]float64, n)}, nil
}

// FromSlice creates a Vector holding a copy of data.
// The input slice is not retained; later mutation of data does not affect
// the returned Vector.
//
// Errors:
//   - ErrInvalidSize when data is empty.
//
// Complexity: O(n).
func FromSlice(data []float64) (*Vector, error) {
	if len(data) == 0 {
		return nil, vectorErrorf("FromSlice", ErrInvalidSize)
	}
	cp := make([]float64, len(data))
	copy(cp, data)

	return &Vector{data: cp}, nil
}

// Len returns the fixed length of the vector.
// Complexity: O(1).
func (v *Vector) Len() int {
	return len(v.data)
}

// At retrieves the element at index i.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (v *Vector) At(i int) (float64, error) {
	if err := validateIndex(i, len(v.data)); err != nil {
		return 0, vectorErrorf(fmt.Sprintf("At(%d)", i), err)
	}

	return v.data[i], nil
}

// Set assigns value x at index i.
//
// Errors:
//   - ErrIndexOutOfRange when i < 0 or i >= Len().
//
// Complexity: O(1).
func (v *Vector) Set(i int, x float64) error {
	if err := validateIndex(i, len(v.data)); err != nil {
		return vectorErrorf(fmt.Sprintf("Set(%d)", i), err)
	}
	v.data[i] = x

	return nil
}

// Add returns a fresh Vector holding the element-wise sum v + other.
// Neither operand is mutated.
//
// Errors:
//   - ErrNilVector when other is nil.
//   - ErrLengthMismatch when lengths differ.
//
// Complexity: O(n) time and space.
func (v *Vector) Add(other *Vector) (*Vector, error) {
	if err := validateSameLen(v, other); err != nil {
		return nil, vectorErrorf("Add", err)
	}
	res := make([]float64, len(v.data))
	floats.AddTo(res, v.data, other.data)

	return &Vector{data: res}, nil
}

// AddInPlace accumulates other into v element-wise (v += other).
// On error v is left untouched.
//
// Errors:
//   - ErrNilVector when other is nil.
//   - ErrLengthMismatch when lengths differ.
//
// Complexity: O(n) time, O(1) space.
func (v *Vector) AddInPlace(other *Vector) error {
	if err := validateSameLen(v, other); err != nil {
		return vectorErrorf("AddInPlace", err)
	}
	floats.Add(v.data, other.data)

	return nil
}

// Dot returns the inner product Σ a[i]*b[i]. Neither operand is mutated.
//
// Errors:
//   - ErrNilVector when a or b is nil.
//   - ErrLengthMismatch when lengths differ.
//
// Complexity: O(n).
func Dot(a, b *Vector) (float64, error) {
	if err := validateSameLen(a, b); err != nil {
		return 0, vectorErrorf("Dot", err)
	}

	return floats.Dot(a.data, b.data), nil
}

// Norm returns the Euclidean (L2) norm of v: sqrt(Σ v[i]²).
// Complexity: O(n).
func (v *Vector) Norm() float64 {
	return floats.Norm(v.data, 2)
}

// Clone returns a deep copy of v, independent of the original.
// Complexity: O(n).
func (v *Vector) Clone() *Vector {
	cp := make([]float64, len(v.data))
	copy(cp, v.data)

	return &Vector{data: cp}
}

// Data exposes the backing slice for zero-copy numeric kernels.
// The slice aliases the vector's storage: writes through it are visible to
// the Vector, and it must not be grown or retained past the vector's use.
// Complexity: O(1).
func (v *Vector) Data() []float64 {
	return v.data
}

// String implements fmt.Stringer for easy debugging.
// Complexity: O(n) for string construction.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", x)
	}
	sb.WriteByte(']')

	return sb.String()
}
