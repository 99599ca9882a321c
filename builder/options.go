// SPDX-License-Identifier: MIT
// Package: lvnmf/builder
//
// options.go: functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Algorithms themselves MUST NOT panic.
//   • Determinism is explicit: seeding is done via WithSeed or WithRand.
//   • No hidden globals; everything flows through builderConfig.

package builder

import (
	"math"
	"math/rand" // RNG source for stochastic builders
)

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before the matrix is generated.
// Complexity: applying N options costs O(N) time, O(1) space.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG for stochastic builders.
// Panics on nil; prefer WithSeed for reproducible runs.
// Complexity: O(1) time, O(1) space.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		// Fail fast to avoid silent non-determinism later.
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Use this in tests and examples to lock outcomes.
// Complexity: O(1) time, O(1) space.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		// Seeded source → reproducible draws.
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithScale sets the upper bound s (>0, finite) of uniform entries.
// Panics otherwise.
// Complexity: O(1) time, O(1) space.
func WithScale(s float64) BuilderOption {
	if s <= 0 || math.IsInf(s, 0) || math.IsNaN(s) {
		panic("builder: WithScale(s<=0 or non-finite)")
	}
	return func(c *builderConfig) {
		c.scale = s
	}
}

// WithNoise sets the noise sigma (>=0, finite) of low-rank observations.
// Noise is |N(0,σ²)| so entries stay non-negative. Panics if sigma < 0.
// Complexity: O(1) time, O(1) space.
func WithNoise(sigma float64) BuilderOption {
	if sigma < 0 || math.IsInf(sigma, 0) || math.IsNaN(sigma) {
		panic("builder: WithNoise(sigma<0 or non-finite)")
	}
	return func(c *builderConfig) {
		// 0 means noiseless.
		c.noiseSigma = sigma
	}
}
