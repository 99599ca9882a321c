// SPDX-License-Identifier: MIT

// Package nmf computes non-negative matrix factorizations V ≈ W·H with the
// Lee–Seung multiplicative update rules.
//
// What:
//
//   - Factorize / FactorizeContext: one observation matrix V (m×n) into a
//     basis W (m×k) and coefficients H (k×n).
//   - FactorizeJoint / FactorizeJointContext: several observations V_1…V_n
//     with the same row count into one shared W and one H_i per V_i.
//   - Initializer: the seeded uniform [0,1) generator for starting factors.
//   - Residual and Trace: the Frobenius residual ‖V − WH‖_F and its history.
//
// Algorithm (one iteration, single matrix):
//
//  1. H ← H ⊙ (WᵀV) ⊘ (WᵀWH + ε)
//  2. W ← W ⊙ (VHᵀ) ⊘ (WHHᵀ + ε), using the H from step 1
//  3. append ‖V − WH‖_F to the trace
//
// Joint mode runs step 1 for every H_i against the same W (Phase 1, optionally
// in parallel), waits for all of them, then performs a single W update from the
// summed numerators Σ V_i H_iᵀ and denominators W·Σ H_i H_iᵀ (Phase 2).
//
// Determinism:
//
//   - Every call builds its own generator from the seed; W is drawn first,
//     then H (then H_2 … in joint mode), each in row-major order.
//   - All kernels and sums run in a fixed order, so equal inputs produce
//     bit-identical outputs. Joint mode with a single V reproduces
//     Factorize exactly.
//
// Complexity:
//
//   - Time O(nIter · k · m · n) per matrix; memory O(k·(m+n)) besides V.
//
// Errors:
//
//   - ErrInvalidIteration (nIter ≤ 0), ErrInvalidDimension (k < 1),
//     ErrInvalidShape (empty or degenerate input), ErrInconsistentRowCount,
//     ErrNilMatrix, ErrNegativeValue, ErrNumericInstability.
//
// There is no early stopping: exactly nIter iterations always run.
package nmf
