// SPDX-License-Identifier: MIT
// Package matrix provides the matrix products used by the factorizers:
// the plain product on any Matrix implementation and the two transposed
// products on *Dense. All functions validate first and return clear errors
// on dimension mismatches.
//
// Notes:
//   - Every kernel allocates a fresh Dense result; operands are never mutated.
//   - In-place kernels for iterative solvers live in ops_elementwise.go.

package matrix

import (
	"fmt"
)

// ZeroSum is the initial value of every dot-product accumulator.
const ZeroSum = 0.0

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMul       = "Mul"
	opMulTransA = "MulTransA"
	opMulTransB = "MulTransB"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting across kernels.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
//   - Keep `tag` to the canonical constants to simplify log/search pipelines.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul performs standard matrix multiplication C = A × B (no aliasing).
//
// Implementation:
//   - Stage 1: Validate A,B (not nil) and inner dimensions (A.Cols == B.Rows).
//   - Stage 2: If A and B are *Dense, use i→k→j with row-major strides and skip zeros;
//     otherwise use i→j→k with a fixed order and zero-skip on A[i,k].
//
// Determinism:
//   - Fixed loop orders; every C[i,j] accumulates its k terms in ascending k.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Skipping zero A[i,k] avoids useless multiplies.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	var (
		i, j, k         int
		av, bv, current float64
	)
	// Fast-path for two Dense matrices
	if da, okA := a.(*Dense); okA {
		if db, okB := b.(*Dense); okB {
			// da.data layout: i*aCols + k
			// db.data layout: k*bCols + j
			var rowOffsetA, rowOffsetB, rowOffsetR int
			for i = 0; i < aRows; i++ {
				rowOffsetA = i * aCols
				rowOffsetR = i * bCols
				for k = 0; k < aCols; k++ {
					av = da.data[rowOffsetA+k]
					if av == 0 {
						continue // skip zero for performance
					}
					rowOffsetB = k * bCols
					for j = 0; j < bCols; j++ {
						res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
					}
				}
			}
			return res, nil
		}
	}

	// Fallback: generic interface triple-loop (i-j-k)
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				if av, err = a.At(i, k); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				if av == 0 {
					continue
				}
				if bv, err = b.At(k, j); err != nil {
					return nil, matrixErrorf(opMul, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv
			}
			res.data[i*bCols+j] = current
		}
	}

	return res, nil
}

// MulTransA computes C = Aᵀ × B without materializing Aᵀ.
// A is (n × p), B is (n × q); C is (p × q).
//
// Implementation:
//   - Both operands are *Dense (the solvers always hold Dense factors).
//   - Loop t→i→j: row t of A scales row t of B into row i of C, so both
//     inputs are read along contiguous rows.
//
// Determinism:
//   - Every C[i,j] accumulates its n terms in ascending t.
//
// Complexity:
//   - Time O(n*p*q), Space O(p*q).
//
// AI-Hints:
//   - Use for WᵀV and WᵀW in multiplicative updates; it avoids one
//     transpose allocation per call.
func MulTransA(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMulTransA, ErrNilMatrix)
	}
	if a.r != b.r {
		return nil, matrixErrorf(opMulTransA, fmt.Errorf("rows %d vs %d: %w", a.r, b.r, ErrDimensionMismatch))
	}
	res, err := NewDense(a.c, b.c)
	if err != nil {
		return nil, matrixErrorf(opMulTransA, err)
	}

	var (
		t, i, j          int
		rowA, rowB, rowR int
		av               float64
	)
	for t = 0; t < a.r; t++ {
		rowA = t * a.c
		rowB = t * b.c
		for i = 0; i < a.c; i++ {
			av = a.data[rowA+i]
			if av == 0 {
				continue
			}
			rowR = i * b.c
			for j = 0; j < b.c; j++ {
				res.data[rowR+j] += av * b.data[rowB+j]
			}
		}
	}

	return res, nil
}

// MulTransB computes C = A × Bᵀ without materializing Bᵀ.
// A is (r × p), B is (q × p); C is (r × q).
//
// Implementation:
//   - Each C[i,j] is the dot product of row i of A and row j of B, both contiguous.
//
// Determinism:
//   - Dot products accumulate in ascending column order.
//
// Complexity:
//   - Time O(r*q*p), Space O(r*q).
//
// AI-Hints:
//   - Use for VHᵀ and HHᵀ in multiplicative updates.
func MulTransB(a, b *Dense) (*Dense, error) {
	if a == nil || b == nil {
		return nil, matrixErrorf(opMulTransB, ErrNilMatrix)
	}
	if a.c != b.c {
		return nil, matrixErrorf(opMulTransB, fmt.Errorf("cols %d vs %d: %w", a.c, b.c, ErrDimensionMismatch))
	}
	res, err := NewDense(a.r, b.r)
	if err != nil {
		return nil, matrixErrorf(opMulTransB, err)
	}

	var (
		i, j, t    int
		rowA, rowB int
		acc        float64
	)
	for i = 0; i < a.r; i++ {
		rowA = i * a.c
		for j = 0; j < b.r; j++ {
			rowB = j * b.c
			acc = ZeroSum
			for t = 0; t < a.c; t++ {
				acc += a.data[rowA+t] * b.data[rowB+t]
			}
			res.data[i*b.r+j] = acc
		}
	}

	return res, nil
}
