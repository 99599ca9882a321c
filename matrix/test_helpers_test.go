// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.
//   • Keep all data finite and well-formed so NaN/Inf checks never interfere.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvnmf/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) paths.
type hide struct{ matrix.Matrix }

// MustDense ALLOCATES an r×c *Dense or fails the test.
func MustDense(t *testing.T, r, c int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(r, c)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", r, c, err)
	}

	return m
}

// NewFilledDense BUILDS r×c *Dense from a row-major flat slice.
func NewFilledDense(t *testing.T, r, c int, vals []float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(r, c, vals)
	if err != nil {
		t.Fatalf("NewDenseFrom(%d,%d): %v", r, c, err)
	}

	return d
}

// RandomDense BUILDS r×c *Dense with deterministic U(0,1) values by seed.
func RandomDense(t *testing.T, r, c int, seed int64) *matrix.Dense {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	vals := make([]float64, r*c)
	for i := range vals {
		vals[i] = rng.Float64()
	}

	return NewFilledDense(t, r, c, vals)
}

// MustAt READS m[i,j] or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}

	return v
}

// transposed BUILDS mᵀ entry by entry, as an independent oracle for the
// transposed products.
func transposed(t *testing.T, m *matrix.Dense) *matrix.Dense {
	t.Helper()
	r, c := m.Shape()
	out := MustDense(t, c, r)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			if err := out.Set(j, i, MustAt(t, m, i, j)); err != nil {
				t.Fatalf("Set(%d,%d): %v", j, i, err)
			}
		}
	}

	return out
}
