// SPDX-License-Identifier: MIT

package nmf

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Sentinel errors returned by the factorizers. Callers match with errors.Is.
var (
	// ErrInvalidShape indicates a non-positive requested shape or an empty input set.
	ErrInvalidShape = errors.New("nmf: invalid shape")

	// ErrInvalidDimension indicates a factorization rank k < 1.
	ErrInvalidDimension = errors.New("nmf: rank must be >= 1")

	// ErrInvalidIteration indicates a non-positive iteration count.
	ErrInvalidIteration = errors.New("nmf: iteration count must be >= 1")

	// ErrInconsistentRowCount indicates joint observations with different row counts.
	ErrInconsistentRowCount = errors.New("nmf: observations must share the row count")

	// ErrNumericInstability indicates a NaN or ±Inf produced during an update or residual.
	ErrNumericInstability = errors.New("nmf: numeric instability (NaN or Inf)")

	// ErrNilMatrix indicates a nil observation matrix.
	ErrNilMatrix = errors.New("nmf: nil observation matrix")

	// ErrNegativeValue indicates an observation with a negative or non-finite entry.
	ErrNegativeValue = errors.New("nmf: observation must be non-negative and finite")
)

// Operation tags used when wrapping errors.
const (
	opFactorize      = "Factorize"
	opFactorizeJoint = "FactorizeJoint"
	opInitialize     = "Initialize"
	opResidual       = "Residual"
)

// nmfErrorf wraps err with an operation tag; errors.Is keeps matching the cause.
func nmfErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// kernelErrorf wraps a matrix kernel failure. A kernel ErrNaNInf is reported
// as ErrNumericInstability while the kernel cause stays reachable.
func kernelErrorf(tag string, err error) error {
	if errors.Is(err, matrix.ErrNaNInf) {
		return fmt.Errorf("%s: %w: %w", tag, ErrNumericInstability, err)
	}

	return nmfErrorf(tag, err)
}
