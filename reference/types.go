// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"errors"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Factorizer computes V ≈ W·H independently of package nmf.
type Factorizer interface {
	Factorize(ctx context.Context, v matrix.Matrix, k, nIter int, seed int64) (*Result, error)
}

// Result is the outcome of a reference run.
type Result struct {
	W, H       *matrix.Dense
	Residual   float64 // ‖V − W·H‖_F of the returned factors
	Iterations int     // outer iterations actually performed
}

var (
	// ErrInvalidArgument indicates k < 1 or nIter < 1.
	ErrInvalidArgument = errors.New("reference: invalid argument")

	// ErrNilFactorizer indicates Compare was called without a reference routine.
	ErrNilFactorizer = errors.New("reference: nil factorizer")

	// ErrNilResult indicates Compare was called without a core result.
	ErrNilResult = errors.New("reference: nil core result")
)
