// SPDX-License-Identifier: MIT

package nmf

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/lvnmf/matrix"
)

// Initializer draws starting factors from one seeded uniform [0,1) stream.
// Successive Initialize calls continue the same stream, so drawing W and then
// H is reproducible for a given seed. An Initializer is not safe for
// concurrent use; each factorization call owns its own.
type Initializer struct {
	rng *rand.Rand
}

// NewInitializer returns an Initializer backed by a fresh generator seeded with seed.
func NewInitializer(seed int64) *Initializer {
	return &Initializer{rng: rand.New(rand.NewSource(seed))}
}

// Initialize returns a rows×cols matrix of independent uniform [0,1) draws
// filled in row-major order.
//
// Errors: ErrInvalidShape when rows ≤ 0 or cols ≤ 0.
// Complexity: O(rows·cols).
func (in *Initializer) Initialize(rows, cols int) (*matrix.Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, nmfErrorf(opInitialize, fmt.Errorf("%dx%d: %w", rows, cols, ErrInvalidShape))
	}
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = in.rng.Float64()
	}

	m, err := matrix.NewDenseFrom(rows, cols, data)
	if err != nil {
		return nil, nmfErrorf(opInitialize, err)
	}

	return m, nil
}
