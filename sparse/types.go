// SPDX-License-Identifier: MIT

// Package sparse: domain types for the CSR matrix and its construction state.
// Errors live in errors.go, options in options.go, validators in
// validators.go per the package conventions.

package sparse

// state tracks the one-way construction lifecycle of a Matrix.
type state uint8

const (
	// stateOpen: the sparsity pattern is under construction; Set may stage
	// new entries and the compressed triple is not yet materialized.
	stateOpen state = iota

	// stateClosed: the pattern is frozen; only stored values may change.
	stateClosed
)

// stagedRow holds one row's entries while the matrix is OPEN.
// cols/vals preserve insertion order exactly — the leading-diagonal
// convention depends on the first inserted entry staying first. pos maps a
// column index to its slot in cols/vals for O(1) duplicate detection.
type stagedRow struct {
	cols []int
	vals []float64
	pos  map[int]int
}

// Matrix is a square nrow×nrow sparse matrix in compressed sparse row form.
//
// While OPEN, entries live in staged (one stagedRow per row) and the
// compressed triple is empty. Close flattens staged into (rowPtr, colInd,
// val) and releases the staging buffers. Once CLOSED:
//
//   - rowPtr has nrow+1 non-decreasing offsets, rowPtr[0] == 0 and
//     rowPtr[nrow] == len(colInd) == len(val);
//   - row i's stored entries occupy colInd[rowPtr[i]:rowPtr[i+1]] and the
//     parallel span of val;
//   - the triple's structure is immutable — only values may be overwritten
//     through SetStored.
//
// A Matrix is exclusively owned by its caller; there is no internal locking.
type Matrix struct {
	nrow int // dimension (square)

	// Compressed storage, populated at Close (or by NewFromCSR).
	rowPtr []int
	colInd []int
	val    []float64

	st state

	// diagComplete records whether every row is non-empty and stores its
	// diagonal entry first — the precondition for the relaxation kernels.
	diagComplete bool

	// Construction state. Explicit fields on the matrix, so several matrices
	// may be under construction at once without shared hidden state.
	staged []stagedRow // nil once closed
	nnz    int         // entries staged so far

	opts Options
}

// Rows returns the matrix dimension (number of rows and columns).
// Complexity: O(1).
func (m *Matrix) Rows() int {
	return m.nrow
}

// NNZ returns the number of stored entries (staged while OPEN, compressed
// once CLOSED).
// Complexity: O(1).
func (m *Matrix) NNZ() int {
	if m.st == stateClosed {
		return len(m.val)
	}

	return m.nnz
}

// Closed reports whether the sparsity pattern has been frozen.
// Complexity: O(1).
func (m *Matrix) Closed() bool {
	return m.st == stateClosed
}
