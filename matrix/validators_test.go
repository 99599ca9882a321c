// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the matrix validators.
package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/stretchr/testify/require"
)

// TestValidateSameShape covers nil inputs, matching and mismatched dimensions.
func TestValidateSameShape(t *testing.T) {
	t.Parallel()

	// helper matrix implementation
	zeros := func(r, c int) matrix.Matrix {
		m, err := matrix.NewDense(r, c)
		require.NoError(t, err)
		return m
	}

	tests := []struct {
		name    string
		a, b    matrix.Matrix
		wantErr error
	}{
		{"both nil", nil, nil, matrix.ErrNilMatrix},
		{"first nil", nil, zeros(2, 2), matrix.ErrNilMatrix},
		{"second nil", zeros(2, 2), nil, matrix.ErrNilMatrix},
		{"typed nil", (*matrix.Dense)(nil), zeros(2, 2), matrix.ErrNilMatrix},
		{"equal 2x3", zeros(2, 3), zeros(2, 3), nil},
		{"row mismatch", zeros(2, 3), zeros(3, 3), matrix.ErrDimensionMismatch},
		{"col mismatch", zeros(2, 3), zeros(2, 4), matrix.ErrDimensionMismatch},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			err := matrix.ValidateBinarySameShape(tc.a, tc.b)
			if tc.wantErr == nil {
				require.NoError(t, err)
			} else {
				require.Error(t, err)
				require.Truef(t, errors.Is(err, tc.wantErr),
					"expected errors.Is(%v, %v)", err, tc.wantErr)
			}
		})
	}
}

// TestValidateMulCompatible checks the inner-dimension rule.
func TestValidateMulCompatible(t *testing.T) {
	require.NoError(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 3, 1)))
	require.ErrorIs(t, matrix.ValidateMulCompatible(MustDense(t, 2, 3), MustDense(t, 2, 3)), matrix.ErrDimensionMismatch)
}

// TestValidateNonNegative reports the first negative entry and passes zeros.
func TestValidateNonNegative(t *testing.T) {
	require.NoError(t, matrix.ValidateNonNegative(MustDense(t, 2, 2)))

	m := NewFilledDense(t, 2, 2, []float64{0, 1, -0.5, 2})
	err := matrix.ValidateNonNegative(m)
	require.ErrorIs(t, err, matrix.ErrNegative)
	require.Contains(t, err.Error(), "(1,0)") // coordinates of the offender

	require.ErrorIs(t, matrix.ValidateNonNegative(hide{m}), matrix.ErrNegative)
	require.ErrorIs(t, matrix.ValidateNonNegative(nil), matrix.ErrNilMatrix)
}

// TestValidateFinite passes finite data.
func TestValidateFinite(t *testing.T) {
	require.NoError(t, matrix.ValidateFinite(RandomDense(t, 3, 3, 1)))
	require.NoError(t, matrix.ValidateFinite(hide{RandomDense(t, 3, 3, 1)}))
}

// TestValidateShape rejects degenerate custom implementations.
func TestValidateShape(t *testing.T) {
	require.NoError(t, matrix.ValidateShape(MustDense(t, 1, 1)))
	require.ErrorIs(t, matrix.ValidateShape(emptyMatrix{}), matrix.ErrInvalidDimensions)
}

// emptyMatrix reports a 0×0 shape, which Dense can never do.
type emptyMatrix struct{ matrix.Matrix }

func (emptyMatrix) Rows() int { return 0 }
func (emptyMatrix) Cols() int { return 0 }
