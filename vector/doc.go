// Package vector provides a fixed-length dense vector of float64 values —
// the companion type consumed by the sparse matrix kernels.
//
// The vector package provides:
//
//   - Bounds-checked element access (At, Set) with sentinel errors.
//   - Element-wise addition, both allocating (Add) and in-place (AddInPlace).
//   - Dot products and the Euclidean norm, delegated to gonum/floats.
//
// A Vector's length is fixed at construction and never changes; all
// operations validate operand lengths up front and fail fast with
// ErrLengthMismatch before touching any output.
package vector
