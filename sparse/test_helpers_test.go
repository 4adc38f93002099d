// SPDX-License-Identifier: MIT
// Package sparse_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures (identity, tridiagonal) and
//     boilerplate-reducing constructors for builder/kernel tests.
//   - Keep all data finite and diagonally dominant so relaxation kernels
//     converge and numeric policy never interferes.

package sparse_test

import (
	"testing"

	"github.com/katalvlaran/sparsekit/sparse"
	"github.com/katalvlaran/sparsekit/vector"
)

// entry is one stored position of a pattern under construction.
type entry struct {
	i, j int
	v    float64
}

// mustMatrix builds a matrix via the full New→Set→Close protocol or fails
// the test. Entries are inserted in the given order, so fixtures control
// the leading-diagonal convention explicitly.
func mustMatrix(t *testing.T, nrow int, entries []entry, opts ...sparse.Option) *sparse.Matrix {
	t.Helper()
	m, err := sparse.New(nrow, opts...)
	if err != nil {
		t.Fatalf("sparse.New(%d): %v", nrow, err)
	}
	for _, e := range entries {
		if err = m.Set(e.i, e.j, e.v); err != nil {
			t.Fatalf("Set(%d,%d,%g): %v", e.i, e.j, e.v, err)
		}
	}
	if err = m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	return m
}

// mustVector wraps vector.FromSlice with a fatal on error.
func mustVector(t *testing.T, data ...float64) *vector.Vector {
	t.Helper()
	v, err := vector.FromSlice(data)
	if err != nil {
		t.Fatalf("vector.FromSlice(%v): %v", data, err)
	}

	return v
}

// identityEntries returns the n×n identity pattern, diagonal first (trivially).
func identityEntries(n int) []entry {
	es := make([]entry, 0, n)
	for i := 0; i < n; i++ {
		es = append(es, entry{i, i, 1})
	}

	return es
}

// tridiagEntries returns a diagonally dominant tridiagonal pattern
// (diag on the main diagonal, off on both neighbours), with the diagonal
// entry of every row inserted first per the storage convention.
func tridiagEntries(n int, diag, off float64) []entry {
	es := make([]entry, 0, 3*n)
	for i := 0; i < n; i++ {
		es = append(es, entry{i, i, diag})
		if i > 0 {
			es = append(es, entry{i, i - 1, off})
		}
		if i < n-1 {
			es = append(es, entry{i, i + 1, off})
		}
	}

	return es
}

// tridiagDense returns the same tridiagonal system as a flat row-major
// n×n slice, for gonum reference computations.
func tridiagDense(n int, diag, off float64) []float64 {
	data := make([]float64, n*n)
	for i := 0; i < n; i++ {
		data[i*n+i] = diag
		if i > 0 {
			data[i*n+i-1] = off
		}
		if i < n-1 {
			data[i*n+i+1] = off
		}
	}

	return data
}
