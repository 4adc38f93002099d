// SPDX-License-Identifier: MIT

// Package sparse: element access over the sparsity pattern.
// At treats the matrix as conceptually dense: positions outside the stored
// pattern read as zero. SetStored mutates stored values only — the pattern
// itself is frozen after Close and a write outside it is a recoverable
// error, never an implicit insertion.

package sparse

import "fmt"

// At returns the value at position (i, j) in any state.
//
// Implementation:
//   - Stage 1: validate the row index (the column is range-checked only
//     implicitly: a j outside the stored pattern reads as zero).
//   - Stage 2: linear scan of row i's stored entries; first match wins.
//
// Errors:
//   - ErrIndexOutOfRange when i is outside [0, Rows).
//
// Complexity: O(entries in row i); OPEN-state lookups are O(1) via the
// staging position table.
func (m *Matrix) At(i, j int) (float64, error) {
	if err := m.validateRowIndex(i); err != nil {
		return 0, sparseErrorf(fmt.Sprintf("At(%d,%d)", i, j), err)
	}

	if m.st == stateOpen {
		row := &m.staged[i]
		if slot, ok := row.pos[j]; ok {
			return row.vals[slot], nil
		}

		return 0, nil
	}

	for d := m.rowPtr[i]; d < m.rowPtr[i+1]; d++ {
		if m.colInd[d] == j {
			return m.val[d], nil
		}
	}

	return 0, nil
}

// SetStored overwrites the value of the stored entry at (i, j) on a closed
// matrix. The sparsity pattern is immutable after Close: a position outside
// the pattern is rejected with ErrUnpatternedCell and is never inserted.
//
// Errors:
//   - ErrInvalidState when the pattern is still open (use Set instead).
//   - ErrIndexOutOfRange when i is outside [0, Rows).
//   - ErrUnpatternedCell when (i, j) is not part of the pattern.
//
// Complexity: O(entries in row i).
func (m *Matrix) SetStored(i, j int, v float64) error {
	if err := m.validateClosed(); err != nil {
		return sparseErrorf(fmt.Sprintf("SetStored(%d,%d)", i, j), err)
	}
	if err := m.validateRowIndex(i); err != nil {
		return sparseErrorf(fmt.Sprintf("SetStored(%d,%d)", i, j), err)
	}

	for d := m.rowPtr[i]; d < m.rowPtr[i+1]; d++ {
		if m.colInd[d] == j {
			m.val[d] = v

			return nil
		}
	}

	return sparseErrorf(fmt.Sprintf("SetStored(%d,%d)", i, j), ErrUnpatternedCell)
}

// Diag returns the diagonal entry of row i, read as the row's first stored
// entry — no column search, matching the storage convention the relaxation
// kernels divide by. The convention is verified on read: an empty row, or a
// row whose first stored column is not i, reports ErrMissingDiagonal
// instead of silently returning a neighbouring value.
//
// Errors:
//   - ErrInvalidState when the pattern is still open.
//   - ErrIndexOutOfRange when i is outside [0, Rows).
//   - ErrMissingDiagonal when row i does not lead with its diagonal.
//
// Complexity: O(1).
func (m *Matrix) Diag(i int) (float64, error) {
	if err := m.validateClosed(); err != nil {
		return 0, sparseErrorf(fmt.Sprintf("Diag(%d)", i), err)
	}
	if err := m.validateRowIndex(i); err != nil {
		return 0, sparseErrorf(fmt.Sprintf("Diag(%d)", i), err)
	}

	beg, end := m.rowPtr[i], m.rowPtr[i+1]
	if beg == end || m.colInd[beg] != i {
		return 0, sparseErrorf(fmt.Sprintf("Diag(%d)", i), ErrMissingDiagonal)
	}

	return m.val[beg], nil
}
