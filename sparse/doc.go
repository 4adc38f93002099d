// Package sparse implements a square sparse matrix in compressed sparse row
// (CSR) form together with the classical relaxation kernels used to
// approximately solve A·x = b.
//
// The sparse package provides:
//
//   - An explicit OPEN→CLOSED construction protocol: New(nrow) opens an
//     empty pattern, Set(i, j, v) stages entries, Close() freezes the
//     pattern into the compressed triple (rowPtr, colInd, val).
//   - Direct construction from a caller-supplied, validated CSR triple
//     (NewFromCSR), which is immediately usable.
//   - Element access over the frozen pattern: At (implicit zeros outside
//     the pattern), SetStored (value-only mutation, never a new position),
//     and Diag (first stored entry per row, by storage convention).
//   - Kernels: MatVec (y = scalar·A·x) and one-sweep JacobiStep, SORStep
//     and SSORStep, each returning the pre-update residual norm so callers
//     can run their own convergence loop.
//
// The relaxation kernels rely on the leading-diagonal storage convention:
// the diagonal entry of every row must be the row's first stored entry.
// Close() validates this convention by default (see WithDiagonalCheck) so
// a malformed pattern fails at construction time with ErrMissingDiagonal
// rather than producing silently wrong iterates at solve time.
//
// All operations are single-threaded and synchronous; a matrix is owned by
// one caller at a time and provides no internal locking.
package sparse
