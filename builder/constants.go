// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by the observation
// constructors, ensuring consistent defaults and validation.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodRandomObservation is the canonical name for the RandomObservation constructor.
	MethodRandomObservation = "RandomObservation"
	// MethodLowRankObservation is the canonical name for the LowRankObservation constructor.
	MethodLowRankObservation = "LowRankObservation"
	// MethodJointObservations is the canonical name for the JointObservations constructor.
	MethodJointObservations = "JointObservations"
)

//-----------------------------------------------------------------------------
// Minimum Sizes
//-----------------------------------------------------------------------------

// MinDim is the smallest allowed dimension (rows or cols) of an observation.
const MinDim = 1

// MinRank is the smallest allowed rank of a synthetic low-rank signal.
const MinRank = 1

// MinMatrices is the smallest number of observations JointObservations builds.
const MinMatrices = 1
