// SPDX-License-Identifier: MIT

package nmf

import (
	"context"
	"fmt"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Factorize runs FactorizeContext with a background context.
func Factorize(v matrix.Matrix, k, nIter int, seed int64, opts ...Option) (*Result, error) {
	return FactorizeContext(context.Background(), v, k, nIter, seed, opts...)
}

// FactorizeContext factorizes V (m×n) into W (m×k) and H (k×n) with exactly
// nIter multiplicative-update iterations. W is drawn first, then H, from one
// generator seeded with seed. Each iteration updates H, then W with the new H,
// then records ‖V − WH‖_F.
//
// V is read only. The returned factors are owned by the caller.
// ctx is checked before every iteration; on cancellation the wrapped
// ctx.Err() is returned and no partial result.
//
// Errors: ErrInvalidIteration, ErrInvalidDimension, ErrNilMatrix,
// ErrInvalidShape, ErrNegativeValue, ErrNumericInstability, ctx errors.
//
// Complexity: O(nIter·k·m·n) time, O(k·(m+n) + m·n) extra space per iteration.
func FactorizeContext(ctx context.Context, v matrix.Matrix, k, nIter int, seed int64, opts ...Option) (*Result, error) {
	cfg := newConfig(opts)
	if err := validateRun(k, nIter); err != nil {
		return nil, nmfErrorf(opFactorize, err)
	}
	if err := validateShape(v); err != nil {
		return nil, nmfErrorf(opFactorize, err)
	}
	vd, err := observation(v)
	if err != nil {
		return nil, nmfErrorf(opFactorize, err)
	}

	gen := NewInitializer(seed)
	w, err := gen.Initialize(vd.Rows(), k)
	if err != nil {
		return nil, nmfErrorf(opFactorize, err)
	}
	h, err := gen.Initialize(k, vd.Cols())
	if err != nil {
		return nil, nmfErrorf(opFactorize, err)
	}

	norms := make(Trace, 0, nIter)
	for it := 0; it < nIter; it++ {
		if err = ctx.Err(); err != nil {
			return nil, nmfErrorf(opFactorize, err)
		}
		wtw, err := matrix.MulTransA(w, w)
		if err != nil {
			return nil, kernelErrorf(opFactorize, err)
		}
		if err = updateCoefficients(vd, w, wtw, h, cfg.epsilon); err != nil {
			return nil, iterationErrorf(opFactorize, it, err)
		}
		num, hht, err := basisTerms(vd, h)
		if err != nil {
			return nil, iterationErrorf(opFactorize, it, err)
		}
		if err = updateBasis(w, num, hht, cfg.epsilon); err != nil {
			return nil, iterationErrorf(opFactorize, it, err)
		}
		r, err := Residual(vd, w, h)
		if err != nil {
			return nil, iterationErrorf(opFactorize, it, err)
		}
		norms.Append(r)
		cfg.report(it, nIter, []float64{r})
	}

	return &Result{W: w, H: h, Norms: norms}, nil
}

// updateCoefficients applies H ← H ⊙ (WᵀV) ⊘ (WᵀW·H + ε) in place.
// wtw must hold WᵀW for the current W; it is only read, so concurrent calls
// for different H may share it.
func updateCoefficients(v, w, wtw, h *matrix.Dense, eps float64) error {
	num, err := matrix.MulTransA(w, v) // k×n
	if err != nil {
		return kernelErrorf("H update", err)
	}
	den, err := matrix.Mul(wtw, h) // k×n
	if err != nil {
		return kernelErrorf("H update", err)
	}
	if err = matrix.MultiplicativeUpdate(h, num, den, eps); err != nil {
		return kernelErrorf("H update", err)
	}

	return nil
}

// basisTerms returns the W-update numerator V·Hᵀ (m×k) and the Gram matrix
// H·Hᵀ (k×k) contributed by one observation.
func basisTerms(v, h *matrix.Dense) (*matrix.Dense, *matrix.Dense, error) {
	num, err := matrix.MulTransB(v, h)
	if err != nil {
		return nil, nil, kernelErrorf("W terms", err)
	}
	hht, err := matrix.MulTransB(h, h)
	if err != nil {
		return nil, nil, kernelErrorf("W terms", err)
	}

	return num, hht, nil
}

// updateBasis applies W ← W ⊙ num ⊘ (W·hht + ε) in place.
func updateBasis(w, num, hht *matrix.Dense, eps float64) error {
	den, err := matrix.Mul(w, hht) // m×k
	if err != nil {
		return kernelErrorf("W update", err)
	}
	if err = matrix.MultiplicativeUpdate(w, num, den, eps); err != nil {
		return kernelErrorf("W update", err)
	}

	return nil
}

// validateRun checks the scalar arguments: iterations first, then rank.
func validateRun(k, nIter int) error {
	if nIter <= 0 {
		return fmt.Errorf("nIter=%d: %w", nIter, ErrInvalidIteration)
	}
	if k < 1 {
		return fmt.Errorf("k=%d: %w", k, ErrInvalidDimension)
	}

	return nil
}

// validateShape rejects nil and degenerate observations.
func validateShape(v matrix.Matrix) error {
	if matrix.ValidateNotNil(v) != nil {
		return ErrNilMatrix
	}
	if err := matrix.ValidateShape(v); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidShape, err)
	}

	return nil
}

// observation returns V as *Dense (no copy for *Dense input) after checking
// that every entry is non-negative and finite.
func observation(v matrix.Matrix) (*matrix.Dense, error) {
	if err := matrix.ValidateNonNegative(v); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrNegativeValue, err)
	}
	vd, err := matrix.DenseOf(v)
	if err != nil {
		return nil, err
	}

	return vd, nil
}

// iterationErrorf tags err with the zero-based iteration index.
func iterationErrorf(tag string, it int, err error) error {
	return nmfErrorf(tag, fmt.Errorf("iteration %d: %w", it, err))
}

// report forwards per-iteration progress to the registered callback.
func (c config) report(it, total int, residuals []float64) {
	if c.progress == nil {
		return
	}
	c.progress(Progress{Iteration: it + 1, Total: total, Residuals: residuals})
}
