// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Multiplicative runs the Lee–Seung updates (H first, then W) on gonum
// matrices for exactly nIter iterations. Epsilon guards every denominator;
// zero selects nmf.DefaultEpsilon.
type Multiplicative struct {
	Epsilon float64
}

var _ Factorizer = Multiplicative{}

// Factorize implements Factorizer.
func (mu Multiplicative) Factorize(ctx context.Context, v matrix.Matrix, k, nIter int, seed int64) (*Result, error) {
	if k < 1 || nIter < 1 {
		return nil, fmt.Errorf("Multiplicative: k=%d nIter=%d: %w", k, nIter, ErrInvalidArgument)
	}
	eps := mu.Epsilon
	if eps == 0 {
		eps = defaultEpsilon
	}
	V, err := ToGonum(v)
	if err != nil {
		return nil, fmt.Errorf("Multiplicative: %w", err)
	}
	W, H, err := startingFactors(V, k, seed)
	if err != nil {
		return nil, fmt.Errorf("Multiplicative: %w", err)
	}

	for it := 0; it < nIter; it++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("Multiplicative: %w", err)
		}
		updateH(H, W, V, eps)
		updateW(W, H, V, eps)
		if hasNonFinite(W) || hasNonFinite(H) {
			return nil, fmt.Errorf("Multiplicative: iteration %d: %w", it, matrix.ErrNaNInf)
		}
	}

	return finish("Multiplicative", v, W, H, nIter)
}

// updateH applies H ← H ⊙ (WᵀV) ⊘ (WᵀW·H + ε).
func updateH(H, W, V *mat.Dense, eps float64) {
	var num, wtw, den mat.Dense
	num.Mul(W.T(), V)
	wtw.Mul(W.T(), W)
	den.Mul(&wtw, H)
	H.Apply(func(i, j int, h float64) float64 {
		return h * num.At(i, j) / (den.At(i, j) + eps)
	}, H)
}

// updateW applies W ← W ⊙ (V·Hᵀ) ⊘ (W·H·Hᵀ + ε).
func updateW(W, H, V *mat.Dense, eps float64) {
	var num, hht, den mat.Dense
	num.Mul(V, H.T())
	hht.Mul(H, H.T())
	den.Mul(W, &hht)
	W.Apply(func(i, j int, w float64) float64 {
		return w * num.At(i, j) / (den.At(i, j) + eps)
	}, W)
}

func hasNonFinite(m *mat.Dense) bool {
	for _, x := range m.RawMatrix().Data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return true
		}
	}
	return false
}
