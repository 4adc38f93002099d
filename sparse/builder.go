// SPDX-License-Identifier: MIT

// Package sparse: construction of the sparsity pattern.
// New opens an empty pattern, Set stages entries row by row, Close freezes
// them into the compressed triple. NewFromCSR skips the protocol entirely
// for callers that already hold a valid triple.
//
// Policy & Contracts:
//   - Entries are staged per row on the matrix itself; several matrices may
//     be under construction at once without shared state.
//   - Within-row insertion order is preserved verbatim — the relaxation
//     kernels read each row's first stored entry as its diagonal.
//   - Duplicate (i,j) positions follow the configured DuplicatePolicy.
//   - Close validates the leading-diagonal convention (unless disabled via
//     WithDiagonalCheck) before mutating anything, so a failed Close leaves
//     the matrix OPEN and unchanged.

package sparse

import "fmt"

// New creates an nrow×nrow matrix with an empty sparsity pattern in the
// OPEN state. Populate it with Set and freeze it with Close.
//
// Inputs:
//   - nrow: matrix dimension, must be > 0.
//   - opts: construction policy (duplicates, diagonal check, logger).
//
// Errors:
//   - ErrInvalidDimension when nrow <= 0.
//
// Complexity: O(nrow) time and space for the staging table.
func New(nrow int, opts ...Option) (*Matrix, error) {
	if nrow <= 0 {
		return nil, sparseErrorf("New", ErrInvalidDimension)
	}

	return &Matrix{
		nrow:   nrow,
		st:     stateOpen,
		staged: make([]stagedRow, nrow),
		opts:   gatherOptions(opts...),
	}, nil
}

// NewFromCSR creates a matrix directly from a caller-supplied CSR triple.
// The triple is validated structurally (see validateTriple) and copied, so
// the caller's slices are not retained. The matrix is immediately CLOSED
// and usable; there is no construction phase.
//
// When the diagonal check is enabled (default), every non-empty row must
// store its diagonal entry first, as the relaxation kernels require.
//
// Errors:
//   - ErrInvalidTriple on structural violations.
//   - ErrMissingDiagonal when the check is enabled and a non-empty row's
//     first stored column is not the row index.
//
// Complexity: O(nrow + nnz).
func NewFromCSR(rowPtr, colInd []int, val []float64, opts ...Option) (*Matrix, error) {
	if err := validateTriple(rowPtr, colInd, val); err != nil {
		return nil, sparseErrorf("NewFromCSR", err)
	}

	m := &Matrix{
		nrow:   len(rowPtr) - 1,
		rowPtr: append([]int(nil), rowPtr...),
		colInd: append([]int(nil), colInd...),
		val:    append([]float64(nil), val...),
		st:     stateClosed,
		opts:   gatherOptions(opts...),
	}

	m.diagComplete = m.leadingDiagonalComplete()
	if m.opts.diagCheck {
		if err := m.checkLeadingDiagonal(); err != nil {
			return nil, sparseErrorf("NewFromCSR", err)
		}
	}

	return m, nil
}

// Set stages value v at position (i, j) of the pattern under construction.
//
// Implementation:
//   - Stage 1: validate state and both indices.
//   - Stage 2: duplicate lookup in the row's position table; apply policy.
//   - Stage 3: append (j, v) to the row, preserving insertion order.
//
// The diagonal entry of each row should be inserted first when the matrix
// will feed the relaxation kernels; Close validates this convention.
//
// Errors:
//   - ErrInvalidState when the pattern is already closed.
//   - ErrIndexOutOfRange when i or j is outside [0, Rows).
//   - ErrDuplicateEntry for a repeated (i, j) under DuplicateReject.
//
// Complexity: amortized O(1).
func (m *Matrix) Set(i, j int, v float64) error {
	if err := m.validateOpen(); err != nil {
		return sparseErrorf("Set", err)
	}
	if err := m.validateRowIndex(i); err != nil {
		return sparseErrorf(fmt.Sprintf("Set(%d,%d): row", i, j), err)
	}
	if err := m.validateRowIndex(j); err != nil {
		return sparseErrorf(fmt.Sprintf("Set(%d,%d): column", i, j), err)
	}

	row := &m.staged[i]
	if row.pos == nil {
		row.pos = make(map[int]int)
	}
	if slot, dup := row.pos[j]; dup {
		if m.opts.dupPolicy == DuplicateOverwrite {
			// Keep the original slot so insertion order stays intact.
			row.vals[slot] = v

			return nil
		}

		return sparseErrorf(fmt.Sprintf("Set(%d,%d)", i, j), ErrDuplicateEntry)
	}

	row.pos[j] = len(row.cols)
	row.cols = append(row.cols, j)
	row.vals = append(row.vals, v)
	m.nnz++

	return nil
}

// Close freezes the sparsity pattern, flattening the staged rows into the
// compressed (rowPtr, colInd, val) triple and transitioning to CLOSED.
//
// Implementation:
//   - Stage 1: validate state; validate the leading-diagonal convention for
//     every non-empty row (unless disabled) before touching the matrix.
//   - Stage 2: flatten rows in ascending order; an empty row k keeps
//     rowPtr[k] == rowPtr[k+1] and emits one warning to the configured
//     logger (a structurally valid all-zero row, not an error).
//   - Stage 3: release the staging buffers and flip the state.
//
// A failed Close leaves the matrix OPEN and unchanged.
//
// Errors:
//   - ErrInvalidState when the matrix is already closed.
//   - ErrMissingDiagonal when the check is enabled and a non-empty row's
//     first staged column is not the row index.
//
// Complexity: O(nrow + nnz).
func (m *Matrix) Close() error {
	if err := m.validateOpen(); err != nil {
		return sparseErrorf("Close", err)
	}

	if m.opts.diagCheck {
		for i := range m.staged {
			if len(m.staged[i].cols) > 0 && m.staged[i].cols[0] != i {
				return sparseErrorf(fmt.Sprintf("Close: row %d leads with column %d", i, m.staged[i].cols[0]), ErrMissingDiagonal)
			}
		}
	}

	rowPtr := make([]int, m.nrow+1)
	colInd := make([]int, 0, m.nnz)
	val := make([]float64, 0, m.nnz)

	diagComplete := true
	for i := range m.staged {
		row := &m.staged[i]
		if len(row.cols) == 0 {
			m.opts.logger.Warnf("sparse: row %d is empty", i)
			diagComplete = false
		} else if row.cols[0] != i {
			diagComplete = false
		}
		colInd = append(colInd, row.cols...)
		val = append(val, row.vals...)
		rowPtr[i+1] = len(val)
	}

	m.rowPtr = rowPtr
	m.colInd = colInd
	m.val = val
	m.diagComplete = diagComplete
	m.staged = nil
	m.st = stateClosed

	return nil
}

// leadingDiagonalComplete reports whether every row is non-empty and stores
// its diagonal entry first. Only meaningful on a closed matrix.
// Complexity: O(nrow).
func (m *Matrix) leadingDiagonalComplete() bool {
	for i := 0; i < m.nrow; i++ {
		beg, end := m.rowPtr[i], m.rowPtr[i+1]
		if beg == end || m.colInd[beg] != i {
			return false
		}
	}

	return true
}

// checkLeadingDiagonal returns ErrMissingDiagonal for the first non-empty
// row whose first stored column is not the row index. Empty rows pass: they
// are structurally valid and only disqualify the relaxation kernels.
// Complexity: O(nrow).
func (m *Matrix) checkLeadingDiagonal() error {
	for i := 0; i < m.nrow; i++ {
		beg, end := m.rowPtr[i], m.rowPtr[i+1]
		if beg < end && m.colInd[beg] != i {
			return fmt.Errorf("row %d leads with column %d: %w", i, m.colInd[beg], ErrMissingDiagonal)
		}
	}

	return nil
}
