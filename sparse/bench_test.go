// SPDX-License-Identifier: MIT

package sparse_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/sparsekit/sparse"
	"github.com/katalvlaran/sparsekit/vector"
)

const benchDim = 1000

// benchTridiag builds the benchDim×benchDim diagonally dominant
// tridiagonal fixture outside the timed region.
func benchTridiag(b *testing.B) *sparse.Matrix {
	b.Helper()
	m, err := sparse.New(benchDim)
	if err != nil {
		b.Fatalf("New: %v", err)
	}
	for i := 0; i < benchDim; i++ {
		_ = m.Set(i, i, 4)
		if i > 0 {
			_ = m.Set(i, i-1, -1)
		}
		if i < benchDim-1 {
			_ = m.Set(i, i+1, -1)
		}
	}
	if err = m.Close(); err != nil {
		b.Fatalf("Close: %v", err)
	}

	return m
}

// benchVec returns a deterministic pseudo-random vector of length benchDim.
func benchVec(b *testing.B, seed int64) *vector.Vector {
	b.Helper()
	rng := rand.New(rand.NewSource(seed))
	data := make([]float64, benchDim)
	for i := range data {
		data[i] = rng.Float64()
	}
	v, err := vector.FromSlice(data)
	if err != nil {
		b.Fatalf("FromSlice: %v", err)
	}

	return v
}

func BenchmarkMatVec(b *testing.B) {
	m := benchTridiag(b)
	x := benchVec(b, 1)
	y, err := vector.New(benchDim)
	if err != nil {
		b.Fatalf("New: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err = m.MatVec(x, y, 1.0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkJacobiStep(b *testing.B) {
	m := benchTridiag(b)
	x := benchVec(b, 2)
	rhs := benchVec(b, 3)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.JacobiStep(x, rhs); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSORStep(b *testing.B) {
	m := benchTridiag(b)
	x := benchVec(b, 4)
	rhs := benchVec(b, 5)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.SORStep(x, rhs, 1.1); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSSORStep(b *testing.B) {
	m := benchTridiag(b)
	x := benchVec(b, 6)
	rhs := benchVec(b, 7)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := m.SSORStep(x, rhs, 1.1); err != nil {
			b.Fatal(err)
		}
	}
}
