// SPDX-License-Identifier: MIT

package sparse

// Test-Bridge (White-Box) for the compressed triple and internal flags.
//
// Purpose:
//   - Expose the UNEXPORTED CSR storage to sparse_test ONLY, so structural
//     invariants (row offsets, entry order) can be asserted without
//     widening the production API.
//
// Provided Surface:
//   - *_TestOnly accessors: read-only views of rowPtr/colInd/val and the
//     diagComplete flag.
//   - Panic message exports to avoid magic strings in option tests.

// RowPtr_TestOnly returns the internal row offset slice.
func RowPtr_TestOnly(m *Matrix) []int { return m.rowPtr }

// ColInd_TestOnly returns the internal column index slice.
func ColInd_TestOnly(m *Matrix) []int { return m.colInd }

// Val_TestOnly returns the internal value slice.
func Val_TestOnly(m *Matrix) []float64 { return m.val }

// DiagComplete_TestOnly reports the internal leading-diagonal flag.
func DiagComplete_TestOnly(m *Matrix) bool { return m.diagComplete }

// Panic message exports to avoid magic strings in tests.
const (
	PanicUnknownDuplicatePolicy_TestOnly = panicUnknownDuplicatePolicy
	PanicNilLogger_TestOnly              = panicNilLogger
)
