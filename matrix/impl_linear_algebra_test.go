// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix products
// (Mul, MulTransA, MulTransB).
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMulKnownProduct checks C = A×B on a hand-computed case, fast and fallback paths.
func TestMulKnownProduct(t *testing.T) {
	a := NewFilledDense(t, 2, 3, []float64{1, 2, 3, 4, 5, 6})
	b := NewFilledDense(t, 3, 2, []float64{7, 8, 9, 10, 11, 12})
	want := []float64{58, 64, 139, 154}

	fast, err := matrix.Mul(a, b)
	require.NoError(t, err)
	assert.Equal(t, want, fast.RawCopy())

	slow, err := matrix.Mul(hide{a}, hide{b})
	require.NoError(t, err)
	assert.Equal(t, want, slow.RawCopy())

	_, err = matrix.Mul(a, a)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMulTransAMatchesTranspose compares Aᵀ×B against Mul on an explicit transpose.
func TestMulTransAMatchesTranspose(t *testing.T) {
	a := RandomDense(t, 5, 3, 1)
	b := RandomDense(t, 5, 4, 2)

	got, err := matrix.MulTransA(a, b)
	require.NoError(t, err)
	require.Equal(t, 3, got.Rows())
	require.Equal(t, 4, got.Cols())

	want, err := matrix.Mul(transposed(t, a), b)
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.RawCopy(), got.RawCopy(), 1e-12)

	_, err = matrix.MulTransA(a, RandomDense(t, 4, 4, 3))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.MulTransA(nil, b)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestMulTransBMatchesTranspose compares A×Bᵀ against Mul on an explicit transpose.
func TestMulTransBMatchesTranspose(t *testing.T) {
	a := RandomDense(t, 4, 3, 4)
	b := RandomDense(t, 6, 3, 5)

	got, err := matrix.MulTransB(a, b)
	require.NoError(t, err)
	require.Equal(t, 4, got.Rows())
	require.Equal(t, 6, got.Cols())

	want, err := matrix.Mul(a, hide{transposed(t, b)})
	require.NoError(t, err)
	assert.InDeltaSlice(t, want.RawCopy(), got.RawCopy(), 1e-12)

	_, err = matrix.MulTransB(a, RandomDense(t, 6, 2, 6))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestKernelsDoNotMutateOperands guards the allocation-only contract.
func TestKernelsDoNotMutateOperands(t *testing.T) {
	a := RandomDense(t, 3, 3, 7)
	b := RandomDense(t, 3, 3, 8)
	aBefore, bBefore := a.RawCopy(), b.RawCopy()

	_, err := matrix.Mul(a, b)
	require.NoError(t, err)
	_, err = matrix.MulTransA(a, b)
	require.NoError(t, err)
	_, err = matrix.MulTransB(a, b)
	require.NoError(t, err)

	require.Equal(t, aBefore, a.RawCopy())
	require.Equal(t, bBefore, b.RawCopy())
}
