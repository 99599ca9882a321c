// SPDX-License-Identifier: MIT

package nmf

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvnmf/matrix"
)

// FactorizeJoint runs FactorizeJointContext with a background context.
func FactorizeJoint(vs []matrix.Matrix, k, nIter int, seed int64, opts ...Option) (*JointResult, error) {
	return FactorizeJointContext(context.Background(), vs, k, nIter, seed, opts...)
}

// FactorizeJointContext factorizes every V_i (m×n_i) as W·H_i with one shared
// basis W (m×k). W is drawn first, then H_1 … H_count in input order, all
// from one generator seeded with seed.
//
// Each iteration:
//
//  1. Phase 1: every H_i is updated against the start-of-iteration W.
//     With WithWorkers(n > 1) up to n updates run concurrently; each task
//     reads V_i, W and WᵀW and writes only H_i.
//  2. Barrier: Phase 2 starts only after every H_i is done.
//  3. Phase 2: W ← W ⊙ (Σ V_i H_iᵀ) ⊘ (W·Σ H_i H_iᵀ + ε), summed in input order.
//  4. ‖V_i − W H_i‖_F is appended to Norms[i].
//
// All observations must share the row count m; this is checked before any
// arithmetic. The column counts may differ. With a single observation the
// result is identical to Factorize.
//
// Errors: ErrInvalidIteration, ErrInvalidDimension, ErrInvalidShape (empty
// input or degenerate matrix), ErrNilMatrix, ErrInconsistentRowCount,
// ErrNegativeValue, ErrNumericInstability, ctx errors.
//
// Complexity: O(nIter·k·m·Σn_i) time.
func FactorizeJointContext(ctx context.Context, vs []matrix.Matrix, k, nIter int, seed int64, opts ...Option) (*JointResult, error) {
	cfg := newConfig(opts)
	if err := validateRun(k, nIter); err != nil {
		return nil, nmfErrorf(opFactorizeJoint, err)
	}
	dvs, err := jointObservations(vs)
	if err != nil {
		return nil, nmfErrorf(opFactorizeJoint, err)
	}

	gen := NewInitializer(seed)
	w, err := gen.Initialize(dvs[0].Rows(), k)
	if err != nil {
		return nil, nmfErrorf(opFactorizeJoint, err)
	}
	hs := make([]*matrix.Dense, len(dvs))
	for i, v := range dvs {
		if hs[i], err = gen.Initialize(k, v.Cols()); err != nil {
			return nil, nmfErrorf(opFactorizeJoint, err)
		}
	}

	traces := newJointTrace(len(dvs), nIter)
	for it := 0; it < nIter; it++ {
		if err = ctx.Err(); err != nil {
			return nil, nmfErrorf(opFactorizeJoint, err)
		}
		if err = updateAllCoefficients(dvs, w, hs, cfg); err != nil {
			return nil, iterationErrorf(opFactorizeJoint, it, err)
		}
		if err = updateSharedBasis(dvs, w, hs, cfg.epsilon); err != nil {
			return nil, iterationErrorf(opFactorizeJoint, it, err)
		}
		for i := range dvs {
			r, err := Residual(dvs[i], w, hs[i])
			if err != nil {
				return nil, iterationErrorf(opFactorizeJoint, it, fmt.Errorf("V[%d]: %w", i, err))
			}
			traces[i].Append(r)
		}
		cfg.report(it, nIter, traces.Last())
	}

	return &JointResult{W: w, Hs: hs, Norms: traces.Norms()}, nil
}

// jointObservations validates the input set in a fixed order: emptiness,
// nil and shape of each matrix, shared row count, then entry values.
func jointObservations(vs []matrix.Matrix) ([]*matrix.Dense, error) {
	if len(vs) == 0 {
		return nil, fmt.Errorf("no observations: %w", ErrInvalidShape)
	}
	for i, v := range vs {
		if err := validateShape(v); err != nil {
			return nil, fmt.Errorf("V[%d]: %w", i, err)
		}
	}
	rows := vs[0].Rows()
	for i, v := range vs[1:] {
		if v.Rows() != rows {
			return nil, fmt.Errorf("V[%d] has %d rows, V[0] has %d: %w", i+1, v.Rows(), rows, ErrInconsistentRowCount)
		}
	}

	dvs := make([]*matrix.Dense, len(vs))
	for i, v := range vs {
		d, err := observation(v)
		if err != nil {
			return nil, fmt.Errorf("V[%d]: %w", i, err)
		}
		dvs[i] = d
	}

	return dvs, nil
}

// updateAllCoefficients is Phase 1 plus the barrier. WᵀW is computed once and
// shared read-only by every task. It returns after every H_i update finished.
func updateAllCoefficients(vs []*matrix.Dense, w *matrix.Dense, hs []*matrix.Dense, cfg config) error {
	wtw, err := matrix.MulTransA(w, w)
	if err != nil {
		return kernelErrorf("H update", err)
	}

	if cfg.workers <= 1 || len(vs) == 1 {
		for i := range vs {
			if err = updateCoefficients(vs[i], w, wtw, hs[i], cfg.epsilon); err != nil {
				return fmt.Errorf("H[%d]: %w", i, err)
			}
		}
		return nil
	}

	var g errgroup.Group
	g.SetLimit(cfg.workers)
	for i := range vs {
		i := i
		g.Go(func() error {
			if err := updateCoefficients(vs[i], w, wtw, hs[i], cfg.epsilon); err != nil {
				return fmt.Errorf("H[%d]: %w", i, err)
			}
			return nil
		})
	}

	return g.Wait()
}

// updateSharedBasis is Phase 2: one W update from the per-observation terms
// accumulated in input order. The first observation's terms seed the sums,
// so a single observation follows exactly the Factorize arithmetic.
func updateSharedBasis(vs []*matrix.Dense, w *matrix.Dense, hs []*matrix.Dense, eps float64) error {
	num, hht, err := basisTerms(vs[0], hs[0])
	if err != nil {
		return err
	}
	for i := 1; i < len(vs); i++ {
		ni, gi, err := basisTerms(vs[i], hs[i])
		if err != nil {
			return fmt.Errorf("V[%d]: %w", i, err)
		}
		if err = matrix.AddInPlace(num, ni); err != nil {
			return kernelErrorf("W terms", err)
		}
		if err = matrix.AddInPlace(hht, gi); err != nil {
			return kernelErrorf("W terms", err)
		}
	}

	return updateBasis(w, num, hht, eps)
}
