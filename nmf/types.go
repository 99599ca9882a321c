// SPDX-License-Identifier: MIT

package nmf

import (
	"math"

	"github.com/katalvlaran/lvnmf/matrix"
)

// DefaultEpsilon is added to every update denominator.
const DefaultEpsilon = 1e-10

// Result holds the factors of a single-matrix factorization.
// W is m×k, H is k×n and Norms has exactly one residual per iteration.
type Result struct {
	W     *matrix.Dense
	H     *matrix.Dense
	Norms []float64
}

// JointResult holds the shared basis and per-observation coefficients of a
// joint factorization. Hs[i] and Norms[i] belong to the i-th input matrix;
// every Norms[i] has exactly one residual per iteration.
type JointResult struct {
	W     *matrix.Dense
	Hs    []*matrix.Dense
	Norms [][]float64
}

// Progress is reported after every completed iteration when WithProgress is set.
// Residuals holds the residual of each observation at this iteration
// (a single entry in single-matrix mode).
type Progress struct {
	Iteration int
	Total     int
	Residuals []float64
}

// Option configures a factorization call.
type Option func(*config)

type config struct {
	epsilon  float64
	workers  int
	progress func(Progress)
}

func newConfig(opts []Option) config {
	cfg := config{epsilon: DefaultEpsilon, workers: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithEpsilon overrides the denominator guard ε (default DefaultEpsilon).
// Zero is accepted and makes a 0/0 update fail with ErrNumericInstability.
// Panics on negative or non-finite values.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic("nmf: WithEpsilon(eps<0 or non-finite)")
	}
	return func(c *config) {
		c.epsilon = eps
	}
}

// WithWorkers bounds the number of goroutines updating coefficient matrices
// in joint mode. 1 (the default) runs Phase 1 sequentially. Single-matrix
// factorization ignores it. Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("nmf: WithWorkers(n<1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithProgress registers a callback invoked synchronously after each
// iteration. The Residuals slice is owned by the callee. Panics on nil.
func WithProgress(fn func(Progress)) Option {
	if fn == nil {
		panic("nmf: WithProgress(nil)")
	}
	return func(c *config) {
		c.progress = fn
	}
}
