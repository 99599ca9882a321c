// SPDX-License-Identifier: MIT

// Package builder generates seeded synthetic observation matrices for
// exercising and benchmarking the factorizers.
//
// The package offers the following key components:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds the RNG, the value scale and the noise level.
//   - Observation constructors:
//     – RandomObservation:  independent uniform [0,scale) entries.
//     – LowRankObservation: V = W₀·H₀ + |N(0,σ²)|, an exact rank-r signal
//     plus non-negative noise.
//     – JointObservations:  several low-rank matrices sharing one W₀, the
//     input shape expected by nmf.FactorizeJoint.
//   - Validation helpers:
//     – validateMin:       ensure integer ≥ minimum.
//
// Guarantees:
//
//   - Every entry is finite and ≥ 0.
//   - Reproducible: the same seed and options give the same matrices. Draws
//     are taken in a documented order (factor entries row-major, then noise).
//   - Fast-fail on invalid option parameters via panics in option constructors;
//     invalid sizes surface as errors wrapping ErrBadSize / ErrNeedRandSource.
//
// See individual function documentation for draw order and complexity.
package builder
