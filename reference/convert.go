// SPDX-License-Identifier: MIT

package reference

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/katalvlaran/lvnmf/nmf"
)

// ToGonum copies m into a new gonum dense matrix.
// Complexity: O(r·c).
func ToGonum(m matrix.Matrix) (*mat.Dense, error) {
	d, err := matrix.DenseOf(m)
	if err != nil {
		return nil, fmt.Errorf("ToGonum: %w", err)
	}
	r, c := d.Shape()

	return mat.NewDense(r, c, d.RawCopy()), nil
}

// FromGonum copies a gonum matrix into a new matrix.Dense.
// Non-finite entries are rejected with matrix.ErrNaNInf.
// Complexity: O(r·c).
func FromGonum(g mat.Matrix) (*matrix.Dense, error) {
	r, c := g.Dims()
	data := make([]float64, 0, r*c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			data = append(data, g.At(i, j))
		}
	}
	d, err := matrix.NewDenseFrom(r, c, data)
	if err != nil {
		return nil, fmt.Errorf("FromGonum: %w", err)
	}

	return d, nil
}

// startingFactors draws W (m×k) then H (k×n) exactly as nmf.Factorize does.
func startingFactors(v *mat.Dense, k int, seed int64) (*mat.Dense, *mat.Dense, error) {
	m, n := v.Dims()
	gen := nmf.NewInitializer(seed)
	w, err := gen.Initialize(m, k)
	if err != nil {
		return nil, nil, err
	}
	h, err := gen.Initialize(k, n)
	if err != nil {
		return nil, nil, err
	}
	gw, _ := ToGonum(w)
	gh, _ := ToGonum(h)

	return gw, gh, nil
}
