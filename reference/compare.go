// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
)

// defaultEpsilon mirrors the core default denominator guard.
const defaultEpsilon = nmf.DefaultEpsilon

// Report summarizes a core result against a reference run on the same input.
type Report struct {
	CoreResidual      float64
	ReferenceResidual float64
	// Ratio is CoreResidual / ReferenceResidual: 1 for equal residuals,
	// +Inf when only the reference is exact.
	Ratio float64
	// RelativeResidual is CoreResidual / ‖V‖_F, 0 for an all-zero V.
	RelativeResidual float64
	Iterations       int
	Elapsed          time.Duration
}

// Compare runs ref on v with the parameters of the core run and reports both
// final residuals. The core residual is the last entry of core.Norms.
//
// Errors: ErrNilFactorizer, ErrNilResult, ErrNilMatrix or ErrNaNInf from
// the norm of v, or the reference error.
func Compare(ctx context.Context, ref Factorizer, v matrix.Matrix, core *nmf.Result, k, nIter int, seed int64) (Report, error) {
	if ref == nil {
		return Report{}, fmt.Errorf("Compare: %w", ErrNilFactorizer)
	}
	if core == nil || len(core.Norms) == 0 {
		return Report{}, fmt.Errorf("Compare: %w", ErrNilResult)
	}

	vNorm, err := matrix.FrobeniusNorm(v)
	if err != nil {
		return Report{}, fmt.Errorf("Compare: %w", err)
	}

	start := time.Now()
	res, err := ref.Factorize(ctx, v, k, nIter, seed)
	if err != nil {
		return Report{}, fmt.Errorf("Compare: %w", err)
	}

	rep := Report{
		CoreResidual:      nmf.Trace(core.Norms).Last(),
		ReferenceResidual: res.Residual,
		Iterations:        res.Iterations,
		Elapsed:           time.Since(start),
	}
	rep.Ratio = ratio(rep.CoreResidual, rep.ReferenceResidual)
	if vNorm > 0 {
		rep.RelativeResidual = rep.CoreResidual / vNorm
	}

	return rep, nil
}

func ratio(core, ref float64) float64 {
	switch {
	case ref == 0 && core == 0:
		return 1
	case ref == 0:
		return math.Inf(1)
	default:
		return core / ref
	}
}
