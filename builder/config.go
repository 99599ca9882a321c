// SPDX-License-Identifier: MIT
// Package: lvnmf/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Deterministic defaults (no surprises):
//   • rng         = nil   (stochastic constructors then fail with ErrNeedRandSource)
//   • scale       = 1.0
//   • noiseSigma  = 0.0
//
// AI-Hints:
//   • Set WithSeed for reproducible fixtures.
//   • WithScale stretches factor entries; WithNoise perturbs the product.

package builder

import (
	"math/rand" // RNG for stochastic builders
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand

	scale      float64 // >0, upper bound of uniform entries
	noiseSigma float64 // >=0, stdev of the |N(0,σ²)| noise
}

// Deterministic defaults (named, no magic numbers).
const (
	defaultScale      = 1.0 // uniform [0,1) entries
	defaultNoiseSigma = 0.0 // noiseless
)

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		rng:        nil,               // no RNG unless explicitly set
		scale:      defaultScale,      // 1.0
		noiseSigma: defaultNoiseSigma, // 0.0
	}

	// Apply options in the given order; last-wins semantics.
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
