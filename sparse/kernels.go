// SPDX-License-Identifier: MIT

// Package sparse: numeric kernels over the frozen CSR structure.
// All kernels perform strict fail-fast validation before touching any
// output: a rejected call never leaves a partially mutated vector behind.
// Only the stored entry set contributes; implicit zeros never do.
//
// The relaxation kernels (JacobiStep, SORStep, SSORStep) divide by each
// row's leading stored entry and therefore require a complete leading
// diagonal, verified once per call via the flag computed at Close. A stored
// diagonal of value zero is not screened: division by it yields ±Inf, which
// is the caller's responsibility to avoid by construction (the kernels are
// intended for diagonally dominant systems).

package sparse

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/sparsekit/vector"
)

// Operation name constants for unified error wrapping.
const (
	opMatVec = "MatVec"
	opJacobi = "JacobiStep"
	opSOR    = "SORStep"
	opSSOR   = "SSORStep"
)

// validateKernel is the shared precondition check for all kernels:
// the pattern must be frozen and every vector operand non-nil with length
// equal to the matrix dimension.
// Complexity: O(len(vecs)).
func (m *Matrix) validateKernel(vecs ...*vector.Vector) error {
	if err := m.validateClosed(); err != nil {
		return err
	}
	for _, v := range vecs {
		if err := m.validateVecLen(v); err != nil {
			return err
		}
	}

	return nil
}

// validateStep extends validateKernel with the relaxation preconditions:
// a complete leading diagonal and, when supplied, a finite relaxation
// factor.
// Complexity: O(1) beyond validateKernel.
func (m *Matrix) validateStep(x, rhs *vector.Vector, omega float64) error {
	if err := m.validateKernel(x, rhs); err != nil {
		return err
	}
	if !m.diagComplete {
		return ErrMissingDiagonal
	}
	if math.IsNaN(omega) || math.IsInf(omega, 0) {
		return ErrNonFinite
	}

	return nil
}

// matVec computes yd = scalar * A * xd over raw slices.
// Preconditions (enforced by callers): matrix closed, len(xd) == len(yd)
// == nrow, xd and yd do not alias.
// Complexity: O(nnz).
func (m *Matrix) matVec(xd, yd []float64, scalar float64) {
	for i := 0; i < m.nrow; i++ {
		sum := 0.0
		for d := m.rowPtr[i]; d < m.rowPtr[i+1]; d++ {
			sum += m.val[d] * xd[m.colInd[d]]
		}
		yd[i] = scalar * sum
	}
}

// sorRow applies one relaxed Gauss–Seidel update to row i:
// r = rhs[i] − Σ_j A[i,j]·x[j] over the stored entries (x reflects every
// update already made in the current sweep), then x[i] += omega·r/diag(i).
// Returns the pre-update residual r.
// Complexity: O(entries in row i).
func (m *Matrix) sorRow(i int, xd, bd []float64, omega float64) float64 {
	r := bd[i]
	for d := m.rowPtr[i]; d < m.rowPtr[i+1]; d++ {
		r -= m.val[d] * xd[m.colInd[d]]
	}
	xd[i] += omega * r / m.val[m.rowPtr[i]]

	return r
}

// MatVec computes y = scalar·A·x, overwriting y entirely.
//
// Implementation:
//   - Stage 1: validate state and both vector lengths (no output mutation
//     on failure).
//   - Stage 2: row-major CSR traversal, one accumulator per row, scaled on
//     write-out.
//
// Behavior highlights:
//   - Pure with respect to x; prior contents of y never contribute.
//   - Deterministic ascending row/entry order.
//
// Inputs:
//   - x: input vector of length Rows(); must not alias y.
//   - y: output vector of length Rows(), fully overwritten.
//   - scalar: multiplier applied to every component of A·x.
//
// Errors:
//   - ErrInvalidState when the pattern is not frozen.
//   - ErrNilVector / ErrLengthMismatch from operand validation.
//
// Complexity: Time O(nnz), Space O(1).
func (m *Matrix) MatVec(x, y *vector.Vector, scalar float64) error {
	if err := m.validateKernel(x, y); err != nil {
		return sparseErrorf(opMatVec, err)
	}
	m.matVec(x.Data(), y.Data(), scalar)

	return nil
}

// JacobiStep performs one iteration of the Jacobi method on x in place:
// r = rhs − A·x, then x[i] += r[i]/diag(i) for every row independently.
//
// Returns the Euclidean norm of the pre-update residual r, so callers can
// drive their own convergence loop.
//
// Inputs:
//   - x: current iterate, length Rows(); mutated in place.
//   - rhs: right-hand side b, length Rows(); read-only.
//
// Errors:
//   - ErrInvalidState / ErrNilVector / ErrLengthMismatch from validation.
//   - ErrMissingDiagonal when any row lacks a leading diagonal entry.
//
// Determinism: fixed ascending row order; every component update uses only
// pre-sweep values of x.
//
// Complexity: Time O(nnz), Space O(nrow) for the residual.
func (m *Matrix) JacobiStep(x, rhs *vector.Vector) (float64, error) {
	if err := m.validateStep(x, rhs, 0); err != nil {
		return 0, sparseErrorf(opJacobi, err)
	}

	// r = -A·x, then r += rhs.
	rd := make([]float64, m.nrow)
	m.matVec(x.Data(), rd, -1)
	floats.Add(rd, rhs.Data())

	xd := x.Data()
	for i := 0; i < m.nrow; i++ {
		xd[i] += rd[i] / m.val[m.rowPtr[i]]
	}

	return floats.Norm(rd, 2), nil
}

// SORStep performs one forward sweep of successive over-relaxation on x in
// place: rows in ascending order, each update immediately visible to later
// rows (Gauss–Seidel style), relaxed by omega.
//
// Returns sqrt(Σ r_i²) over the pre-update per-row residuals encountered
// during the sweep — not a recomputed global residual after all updates.
//
// Inputs:
//   - x: current iterate, length Rows(); mutated in place.
//   - rhs: right-hand side b, length Rows(); read-only.
//   - omega: relaxation factor; must be finite. omega == 1 degenerates to
//     plain Gauss–Seidel.
//
// Errors:
//   - ErrInvalidState / ErrNilVector / ErrLengthMismatch from validation.
//   - ErrMissingDiagonal when any row lacks a leading diagonal entry.
//   - ErrNonFinite when omega is NaN or ±Inf.
//
// Complexity: Time O(nnz), Space O(1).
func (m *Matrix) SORStep(x, rhs *vector.Vector, omega float64) (float64, error) {
	if err := m.validateStep(x, rhs, omega); err != nil {
		return 0, sparseErrorf(opSOR, err)
	}

	xd, bd := x.Data(), rhs.Data()
	res := 0.0
	for i := 0; i < m.nrow; i++ {
		r := m.sorRow(i, xd, bd, omega)
		res += r * r
	}

	return math.Sqrt(res), nil
}

// SSORStep performs one symmetric SOR iteration on x in place: a forward
// sweep (ascending rows, residual norm discarded) followed immediately by a
// backward sweep (descending rows) over the same x.
//
// Returns the backward sweep's accumulated pre-update residual norm,
// computed exactly as in SORStep.
//
// Inputs and errors match SORStep.
//
// Complexity: Time O(2·nnz), Space O(1).
func (m *Matrix) SSORStep(x, rhs *vector.Vector, omega float64) (float64, error) {
	if err := m.validateStep(x, rhs, omega); err != nil {
		return 0, sparseErrorf(opSSOR, err)
	}

	xd, bd := x.Data(), rhs.Data()
	for i := 0; i < m.nrow; i++ {
		m.sorRow(i, xd, bd, omega)
	}

	res := 0.0
	for i := m.nrow - 1; i >= 0; i-- {
		r := m.sorRow(i, xd, bd, omega)
		res += r * r
	}

	return math.Sqrt(res), nil
}
