// SPDX-License-Identifier: MIT

// Package builder provides validation helpers to enforce
// parameter contracts in the observation constructors.
//
// Each function returns an error wrapping ErrBadSize or ErrNeedRandSource
// when its precondition is violated.
package builder

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
// Returns an error "<Method>: <what> must be ≥ <min>, got <got>" otherwise.
//
// Complexity: O(1) time and space.
func validateMin(method, what string, got, min int) error {
	if got < min {
		return builderErrorf(method, "%s must be ≥ %d, got %d: %w", what, min, got, ErrBadSize)
	}

	return nil
}

// validateRNG ensures a stochastic constructor has a generator to draw from.
// Complexity: O(1).
func validateRNG(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, "%w", ErrNeedRandSource)
	}

	return nil
}
