// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide the in-place element-wise kernels used by iterative factorizers
//     (multiplicative update, accumulation) and the norms used to track them.
//   - Keep all loops deterministic and cache-friendly on the flat Dense buffer.
//
// Determinism & Performance:
//   - Fixed loop orders (flat 0..n-1 or i→j).
//   - In-place kernels allocate nothing; callers reuse their buffers across iterations.
//
// AI-Hints:
//   - Prefer passing *Dense; the in-place kernels require it.
//   - FrobeniusNorm uses scaled accumulation, so very large entries do not overflow.

package matrix

import (
	"fmt"
	"math"
)

// Operation tags for the element-wise kernels.
const (
	opMultiplicativeUpdate = "MultiplicativeUpdate"
	opAddInPlace           = "AddInPlace"
	opFrobeniusNorm        = "FrobeniusNorm"
	opFrobeniusDistance    = "FrobeniusDistance"
)

// MultiplicativeUpdate rescales dst in place: dst[i] = dst[i] * num[i] / (den[i] + eps).
// All three operands must share a shape.
//
// Behavior highlights:
//   - Non-negative dst, num and den with eps > 0 keep dst non-negative.
//   - A non-finite result aborts with ErrNaNInf tagged with its coordinates;
//     entries written before the failure stay updated.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func MultiplicativeUpdate(dst, num, den *Dense, eps float64) error {
	if dst == nil || num == nil || den == nil {
		return matrixErrorf(opMultiplicativeUpdate, ErrNilMatrix)
	}
	if err := ValidateSameShape(dst, num); err != nil {
		return matrixErrorf(opMultiplicativeUpdate, err)
	}
	if err := ValidateSameShape(dst, den); err != nil {
		return matrixErrorf(opMultiplicativeUpdate, err)
	}

	var nv float64
	for idx := range dst.data {
		nv = dst.data[idx] * num.data[idx] / (den.data[idx] + eps)
		if math.IsNaN(nv) || math.IsInf(nv, 0) {
			return matrixErrorf(opMultiplicativeUpdate, fmt.Errorf("(%d,%d): %w", idx/dst.c, idx%dst.c, ErrNaNInf))
		}
		dst.data[idx] = nv
	}

	return nil
}

// AddInPlace accumulates src into dst: dst[i] += src[i].
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func AddInPlace(dst, src *Dense) error {
	if dst == nil || src == nil {
		return matrixErrorf(opAddInPlace, ErrNilMatrix)
	}
	if err := ValidateSameShape(dst, src); err != nil {
		return matrixErrorf(opAddInPlace, err)
	}
	for idx, v := range src.data {
		dst.data[idx] += v
	}

	return nil
}

// ssq folds v into a scaled sum of squares: the true sum is scale²·sumsq.
// Zero entries leave the state untouched.
func ssq(scale, sumsq, v float64) (float64, float64) {
	if v == 0 {
		return scale, sumsq
	}
	a := math.Abs(v)
	if scale < a {
		r := scale / a
		return a, 1 + sumsq*r*r
	}
	r := a / scale
	return scale, sumsq + r*r
}

// FrobeniusNorm returns sqrt(Σ m[i,j]²), accumulated in row-major order
// with scaling so that intermediate squares never overflow.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when the result is not finite.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FrobeniusNorm(m Matrix) (float64, error) {
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opFrobeniusNorm, err)
	}

	scale, sumsq := 0.0, 1.0
	if d, ok := m.(*Dense); ok {
		for _, v := range d.data {
			scale, sumsq = ssq(scale, sumsq, v)
		}
	} else {
		var (
			v   float64
			err error
		)
		for i := 0; i < m.Rows(); i++ {
			for j := 0; j < m.Cols(); j++ {
				if v, err = m.At(i, j); err != nil {
					return 0, matrixErrorf(opFrobeniusNorm, err)
				}
				scale, sumsq = ssq(scale, sumsq, v)
			}
		}
	}

	norm := scale * math.Sqrt(sumsq)
	if math.IsNaN(norm) || math.IsInf(norm, 0) {
		return 0, matrixErrorf(opFrobeniusNorm, ErrNaNInf)
	}

	return norm, nil
}

// FrobeniusDistance returns ‖a − b‖_F without materializing the difference.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch, ErrNaNInf.
//
// Complexity:
//   - Time O(r*c), Space O(1).
func FrobeniusDistance(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opFrobeniusDistance, err)
	}

	scale, sumsq := 0.0, 1.0
	da, okA := a.(*Dense)
	db, okB := b.(*Dense)
	if okA && okB {
		for idx := range da.data {
			scale, sumsq = ssq(scale, sumsq, da.data[idx]-db.data[idx])
		}
	} else {
		var (
			av, bv float64
			err    error
		)
		for i := 0; i < a.Rows(); i++ {
			for j := 0; j < a.Cols(); j++ {
				if av, err = a.At(i, j); err != nil {
					return 0, matrixErrorf(opFrobeniusDistance, err)
				}
				if bv, err = b.At(i, j); err != nil {
					return 0, matrixErrorf(opFrobeniusDistance, err)
				}
				scale, sumsq = ssq(scale, sumsq, av-bv)
			}
		}
	}

	dist := scale * math.Sqrt(sumsq)
	if math.IsNaN(dist) || math.IsInf(dist, 0) {
		return 0, matrixErrorf(opFrobeniusDistance, ErrNaNInf)
	}

	return dist, nil
}
