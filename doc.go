// Package sparsekit is a small, deterministic toolkit for sparse linear
// systems in compressed sparse row (CSR) form — incremental pattern
// construction, matrix–vector products, and classical relaxation kernels.
//
// 🚀 What is sparsekit?
//
//	A focused numeric library that brings together:
//		• vector/  — fixed-length dense vectors: indexed access, addition,
//		             dot products and Euclidean norms
//		• sparse/  — CSR matrices with an explicit OPEN→CLOSED construction
//		             protocol, value-only mutation after freeze, and
//		             Jacobi / SOR / SSOR stepping kernels for A·x = b
//
// ✨ Why choose sparsekit?
//
//   - Deterministic by construction – fixed loop orders, no hidden state
//   - Sentinel errors everywhere – match with errors.Is, never panic on
//     user input; the one historically fatal case (writing outside the
//     frozen sparsity pattern) is a typed, recoverable error
//   - Convention made invariant – the leading-diagonal storage convention
//     required by the relaxation kernels is validated when the pattern is
//     frozen, not silently assumed at solve time
//
// Callers drive the iteration themselves: each *Step kernel performs one
// sweep, mutates x in place, and returns the residual norm, so any stopping
// rule can be layered on top.
//
//	go get github.com/katalvlaran/sparsekit
package sparsekit
