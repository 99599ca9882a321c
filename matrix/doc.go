// SPDX-License-Identifier: MIT

// Package matrix is the dense linear-algebra substrate of lvnmf.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with error-returning accessors.
//   - Products (Mul, MulTransA, MulTransB) with a flat-slice fast path for
//     *Dense operands.
//   - In-place kernels for iterative solvers (MultiplicativeUpdate, AddInPlace).
//   - Norms (FrobeniusNorm, FrobeniusDistance) and central validators
//     (ValidateNonNegative, ValidateFinite, ValidateMulCompatible, ...).
//
// Every kernel walks its operands in a fixed order, so identical inputs give
// bit-identical outputs across runs.
//
// See the examples in this package and the nmf package for usage patterns.
package matrix
