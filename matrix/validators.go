// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating nil/shape/sign/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - Element scans (ValidateNonNegative, ValidateFinite) run O(r*c) and stop at the first violation.
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//  - Each validator describes what it validates and what it assumes (e.g. no nil check).

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
// A typed nil *Dense stored in the interface is rejected as well.
//
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape – Ensures both dimensions are strictly positive.
// Custom Matrix implementations may report 0×N shapes; Dense never does.
//
// Errors: ErrInvalidDimensions.
// Complexity: O(1).
func ValidateShape(m Matrix) error {
	if m.Rows() <= 0 || m.Cols() <= 0 {
		return validatorErrorf("ValidateShape", ErrInvalidDimensions)
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: Combines ErrNilMatrix and ErrDimensionMismatch.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateFinite scans m and rejects the first NaN/±Inf entry.
//
// Errors: ErrNilMatrix, ErrNaNInf (wrapped with the offending coordinates).
// Complexity: O(r*c) worst case, O(1) extra space.
func ValidateFinite(m Matrix) error {
	return scanEntries("ValidateFinite", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		return nil
	})
}

// ValidateNonNegative scans m and rejects the first entry that is negative
// or not finite. NaN is reported as ErrNaNInf since it has no sign.
//
// Errors: ErrNilMatrix, ErrNaNInf, ErrNegative.
// Complexity: O(r*c) worst case, O(1) extra space.
//
// AI-Hints: Use on factorization inputs before the first update; the
// multiplicative kernels only preserve the sign, they do not restore it.
func ValidateNonNegative(m Matrix) error {
	return scanEntries("ValidateNonNegative", m, func(v float64) error {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
		return nil
	})
}

// scanEntries walks m in row-major order and stops at the first entry for
// which check returns a non-nil error. Dense operands are scanned on the
// flat buffer; other implementations go through At.
func scanEntries(tag string, m Matrix, check func(v float64) error) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf(tag, err)
	}
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if err := check(v); err != nil {
				return validatorErrorf(tag, denseErrorf(ctxAt, idx/d.c, idx%d.c, err))
			}
		}
		return nil
	}

	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf(tag, err)
			}
			if err = check(v); err != nil {
				return validatorErrorf(tag, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}
