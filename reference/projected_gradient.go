// SPDX-License-Identifier: MIT

package reference

import (
	"context"
	"fmt"
	"math"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
)

// ProjectedGradient factorizes by alternating non-negative least squares,
// each subproblem solved with projected gradient steps and an Armijo-type
// step-size search.
//
// The outer loop runs at most nIter times and stops earlier when the
// projected gradient norm falls below Tolerance times its initial value,
// or when Limit has elapsed (Limit == 0 means no time limit).
type ProjectedGradient struct {
	Tolerance   float64
	MaxOuterSub int
	MaxInnerSub int
	Limit       time.Duration
}

// DefaultProjectedGradient returns the settings used by the driver.
func DefaultProjectedGradient() ProjectedGradient {
	return ProjectedGradient{Tolerance: 1e-5, MaxOuterSub: 1000, MaxInnerSub: 20}
}

var _ Factorizer = ProjectedGradient{}

// Factorize implements Factorizer. ctx is checked before every outer iteration.
func (pg ProjectedGradient) Factorize(ctx context.Context, v matrix.Matrix, k, nIter int, seed int64) (*Result, error) {
	if k < 1 || nIter < 1 {
		return nil, fmt.Errorf("ProjectedGradient: k=%d nIter=%d: %w", k, nIter, ErrInvalidArgument)
	}
	if pg.MaxOuterSub < 1 || pg.MaxInnerSub < 1 {
		return nil, fmt.Errorf("ProjectedGradient: subproblem limits %d/%d: %w", pg.MaxOuterSub, pg.MaxInnerSub, ErrInvalidArgument)
	}
	V, err := ToGonum(v)
	if err != nil {
		return nil, fmt.Errorf("ProjectedGradient: %w", err)
	}
	W, H, err := startingFactors(V, k, seed)
	if err != nil {
		return nil, fmt.Errorf("ProjectedGradient: %w", err)
	}

	start := time.Now()

	// Initial gradients: gW = W·H·Hᵀ − V·Hᵀ, gH = WᵀW·H − WᵀV.
	var tmp, vhT, wTv mat.Dense
	gW := new(mat.Dense)
	tmp.Mul(H, H.T())
	gW.Mul(W, &tmp)
	vhT.Mul(V, H.T())
	gW.Sub(gW, &vhT)

	gH := new(mat.Dense)
	tmp.Reset()
	tmp.Mul(W.T(), W)
	gH.Mul(&tmp, H)
	wTv.Mul(W.T(), V)
	gH.Sub(gH, &wTv)

	grad := math.Hypot(mat.Norm(gW, 2), mat.Norm(gH, 2))
	tolW := math.Max(0.001, pg.Tolerance) * grad
	tolH := tolW

	// Keep only gradient entries that may move a factor: negative ones, or
	// any entry whose factor value is still positive.
	projected := func(g, f *mat.Dense) {
		g.Apply(func(r, c int, x float64) float64 {
			if x < 0 || f.At(r, c) > 0 {
				return x
			}
			return 0
		}, g)
	}

	iters := 0
	for ; iters < nIter; iters++ {
		if err = ctx.Err(); err != nil {
			return nil, fmt.Errorf("ProjectedGradient: %w", err)
		}
		projected(gW, W)
		projected(gH, H)
		proj := math.Hypot(mat.Norm(gW, 2), mat.Norm(gH, 2))
		if proj < pg.Tolerance*grad || (pg.Limit > 0 && time.Since(start) > pg.Limit) {
			break
		}

		// W subproblem on the transposed system Vᵀ ≈ Hᵀ·Wᵀ.
		var vT, hT, wT mat.Dense
		vT.CloneFrom(V.T())
		hT.CloneFrom(H.T())
		wT.CloneFrom(W.T())
		wTn, gWT, sub := nnlsSubproblem(&vT, &hT, &wT, tolW, pg.MaxOuterSub, pg.MaxInnerSub)
		if sub == 0 {
			tolW *= 0.1
		}
		W = new(mat.Dense)
		W.CloneFrom(wTn.T())
		gW = new(mat.Dense)
		gW.CloneFrom(gWT.T())

		H, gH, sub = nnlsSubproblem(V, W, H, tolH, pg.MaxOuterSub, pg.MaxInnerSub)
		if sub == 0 {
			tolH *= 0.1
		}
	}

	return finish("ProjectedGradient", v, W, H, iters)
}

// nnlsSubproblem solves min ‖V − W·H‖² over H ≥ 0 starting from Ho and
// returns the solution, its projected gradient and the outer iterations used.
func nnlsSubproblem(V, W, Ho *mat.Dense, tol float64, outer, inner int) (*mat.Dense, *mat.Dense, int) {
	H := new(mat.Dense)
	H.CloneFrom(Ho)

	var WtV, WtW mat.Dense
	WtV.Mul(W.T(), V)
	WtW.Mul(W.T(), W)

	alpha, beta := 1.0, 0.1
	G := new(mat.Dense)

	i := 0
	for ; i < outer; i++ {
		G.Mul(&WtW, H)
		G.Sub(G, &WtV)
		G.Apply(func(r, c int, x float64) float64 {
			if x < 0 || H.At(r, c) > 0 {
				return x
			}
			return 0
		}, G)

		if mat.Norm(G, 2) < tol {
			break
		}

		var (
			reduce bool
			Hp     *mat.Dense
		)
		for j := 0; j < inner; j++ {
			Hn := new(mat.Dense)
			Hn.Scale(alpha, G)
			Hn.Sub(H, Hn)
			Hn.Apply(func(_, _ int, x float64) float64 { return math.Max(x, 0) }, Hn)

			var d, dQ mat.Dense
			d.Sub(Hn, H)
			dQ.Mul(&WtW, &d)
			dQ.MulElem(&dQ, &d)
			d.MulElem(G, &d)

			sufficient := 0.99*mat.Sum(&d)+0.5*mat.Sum(&dQ) < 0

			if j == 0 {
				reduce = !sufficient
				Hp = H
			}
			if reduce {
				if sufficient {
					H = Hn
					break
				}
				alpha *= beta
			} else {
				if !sufficient || mat.Equal(Hp, Hn) {
					H = Hp
					break
				}
				alpha /= beta
				Hp = Hn
			}
		}
	}

	return H, G, i
}

// finish converts gonum factors back and measures the residual with the
// same tracker the core uses.
func finish(tag string, v matrix.Matrix, W, H *mat.Dense, iters int) (*Result, error) {
	w, err := FromGonum(W)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	h, err := FromGonum(H)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}
	r, err := nmf.Residual(v, w, h)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", tag, err)
	}

	return &Result{W: w, H: h, Residual: r, Iterations: iters}, nil
}
