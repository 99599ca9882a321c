// SPDX-License-Identifier: MIT

// Package reference provides independent factorization routines, built on
// gonum.org/v1/gonum/mat, to sanity-check the results of package nmf.
//
// Comparison is advisory: package nmf never imports this package, and a
// reference result never changes a core result.
//
// Two routines implement Factorizer:
//
//   - ProjectedGradient: alternating non-negative least squares solved by
//     projected gradients (Lin 2007, "Projected Gradient Methods for
//     Non-negative Matrix Factorization", Neural Computation 19:2756).
//   - Multiplicative: the Lee–Seung multiplicative updates written against
//     gonum, used to cross-check the nmf kernels.
//
// Both draw their starting factors with nmf.NewInitializer, so a reference
// run and a core run with the same seed start from the same W and H.
package reference
