// SPDX-License-Identifier: MIT
// Package: lvnmf/builder
//
// impl_observation.go: seeded synthetic observation matrices.
//
// Draw order (part of the reproducibility contract):
//   • RandomObservation:  rows·cols uniforms, row-major.
//   • LowRankObservation: W₀ (rows×rank) row-major, H₀ (rank×cols) row-major,
//     then one normal per entry of V when σ > 0.
//   • JointObservations:  W₀ once, then for each observation in order its H₀
//     followed by its noise.

package builder

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/lvnmf/matrix"
)

// RandomObservation returns a rows×cols matrix of independent uniform
// [0,scale) entries.
//
// Errors: ErrBadSize (rows or cols < 1), ErrNeedRandSource (no WithSeed/WithRand).
// Complexity: O(rows·cols).
func RandomObservation(rows, cols int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodRandomObservation, "rows", rows, MinDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodRandomObservation, "cols", cols, MinDim); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodRandomObservation, cfg); err != nil {
		return nil, err
	}

	v, err := uniformDense(cfg.rng, rows, cols, cfg.scale)
	if err != nil {
		return nil, builderErrorf(MethodRandomObservation, "%w", err)
	}

	return v, nil
}

// LowRankObservation returns V = W₀·H₀ + |N(0,σ²)| with W₀ uniform
// [0,scale) of shape rows×rank and H₀ uniform [0,1) of shape rank×cols.
// Without WithNoise the result has rank ≤ rank exactly.
//
// Errors: ErrBadSize, ErrNeedRandSource.
// Complexity: O(rows·rank·cols).
func LowRankObservation(rows, cols, rank int, opts ...BuilderOption) (*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodLowRankObservation, "rows", rows, MinDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodLowRankObservation, "cols", cols, MinDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodLowRankObservation, "rank", rank, MinRank); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodLowRankObservation, cfg); err != nil {
		return nil, err
	}

	w0, err := uniformDense(cfg.rng, rows, rank, cfg.scale)
	if err != nil {
		return nil, builderErrorf(MethodLowRankObservation, "%w", err)
	}
	v, err := lowRankFrom(cfg, w0, cols)
	if err != nil {
		return nil, builderErrorf(MethodLowRankObservation, "%w", err)
	}

	return v, nil
}

// JointObservations returns one observation per entry of cols, all sharing
// the row count and one basis W₀ (rows×rank): V_i = W₀·H₀_i + |N(0,σ²)|.
//
// Errors: ErrBadSize (empty cols or any size < 1), ErrNeedRandSource.
// Complexity: O(rows·rank·Σcols).
func JointObservations(rows int, cols []int, rank int, opts ...BuilderOption) ([]*matrix.Dense, error) {
	cfg := newBuilderConfig(opts...)
	if err := validateMin(MethodJointObservations, "rows", rows, MinDim); err != nil {
		return nil, err
	}
	if err := validateMin(MethodJointObservations, "matrices", len(cols), MinMatrices); err != nil {
		return nil, err
	}
	for i, c := range cols {
		if err := validateMin(MethodJointObservations, fmt.Sprintf("cols[%d]", i), c, MinDim); err != nil {
			return nil, err
		}
	}
	if err := validateMin(MethodJointObservations, "rank", rank, MinRank); err != nil {
		return nil, err
	}
	if err := validateRNG(MethodJointObservations, cfg); err != nil {
		return nil, err
	}

	w0, err := uniformDense(cfg.rng, rows, rank, cfg.scale)
	if err != nil {
		return nil, builderErrorf(MethodJointObservations, "%w", err)
	}
	out := make([]*matrix.Dense, len(cols))
	for i, c := range cols {
		if out[i], err = lowRankFrom(cfg, w0, c); err != nil {
			return nil, builderErrorf(MethodJointObservations, "V[%d]: %w", i, err)
		}
	}

	return out, nil
}

// lowRankFrom draws H₀ (w0.Cols()×cols), multiplies and adds noise in place.
func lowRankFrom(cfg builderConfig, w0 *matrix.Dense, cols int) (*matrix.Dense, error) {
	h0, err := uniformDense(cfg.rng, w0.Cols(), cols, 1)
	if err != nil {
		return nil, err
	}
	v, err := matrix.Mul(w0, h0)
	if err != nil {
		return nil, err
	}
	if cfg.noiseSigma == 0 {
		return v, nil
	}
	sigma, rng := cfg.noiseSigma, cfg.rng
	if err = v.Apply(func(_, _ int, x float64) float64 {
		return x + math.Abs(rng.NormFloat64()*sigma)
	}); err != nil {
		return nil, err
	}

	return v, nil
}

// uniformDense fills a rows×cols matrix with uniform [0,scale) draws, row-major.
func uniformDense(rng *rand.Rand, rows, cols int, scale float64) (*matrix.Dense, error) {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = rng.Float64() * scale
	}

	return matrix.NewDenseFrom(rows, cols, data)
}
