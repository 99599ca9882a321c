// SPDX-License-Identifier: MIT
// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvnmf/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4                    // define expected row and column counts
	m, err := matrix.NewDense(rows, cols) // create a Dense matrix of size 3x4
	require.NoError(t, err)               // assert no error on valid dimensions

	require.Equal(t, rows, m.Rows()) // assert Rows() equals expected rows
	require.Equal(t, cols, m.Cols()) // assert Cols() equals expected cols
	r, c := m.Shape()
	require.Equal(t, rows, r)
	require.Equal(t, cols, c)
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m := MustDense(t, 2, 2) // create a 2x2 Dense matrix

	_, err := m.At(-1, 0)                         // negative row index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	_, err = m.At(0, 2)                           // column index out of range
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange

	err = m.Set(2, 0, 1.23)                             // row index out of range
	require.ErrorIs(t, err, matrix.ErrIndexOutOfBounds) // alias still matches

	err = m.Set(0, -1, 4.56)                      // negative column index
	require.ErrorIs(t, err, matrix.ErrOutOfRange) // expect ErrOutOfRange
}

// TestSetRejectsNaNInf checks that every write path rejects non-finite values,
// on fresh matrices and on clones alike.
func TestSetRejectsNaNInf(t *testing.T) {
	fresh := MustDense(t, 1, 2)
	for name, m := range map[string]matrix.Matrix{"fresh": fresh, "clone": fresh.Clone()} {
		t.Run(name, func(t *testing.T) {
			require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
			require.ErrorIs(t, m.Set(0, 1, math.Inf(1)), matrix.ErrNaNInf)
			require.Equal(t, 0.0, MustAt(t, m, 0, 0), "rejected value is not stored")
		})
	}

	err := fresh.Apply(func(_, _ int, _ float64) float64 { return math.Inf(-1) })
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFrom covers flat ingestion: copy semantics, length and NaN/Inf errors.
func TestNewDenseFrom(t *testing.T) {
	src := []float64{1, 2, 3, 4, 5, 6}
	m, err := matrix.NewDenseFrom(2, 3, src)
	require.NoError(t, err)
	require.Equal(t, 6.0, MustAt(t, m, 1, 2))

	src[0] = 100                              // mutate the source slice
	require.Equal(t, 1.0, MustAt(t, m, 0, 0)) // Dense did not alias it

	_, err = matrix.NewDenseFrom(2, 2, src)
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(1, 2, []float64{1, math.NaN()})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestNewDenseFromRows covers rectangular and ragged inputs.
func TestNewDenseFromRows(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2]\n[3, 4]\n", m.String())

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestDenseOf returns the same pointer for *Dense and copies anything else.
func TestDenseOf(t *testing.T) {
	d := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	same, err := matrix.DenseOf(d)
	require.NoError(t, err)
	require.Same(t, d, same)

	cp, err := matrix.DenseOf(hide{d})
	require.NoError(t, err)
	require.NotSame(t, d, cp)
	require.Equal(t, d.RawCopy(), cp.RawCopy())

	_, err = matrix.DenseOf(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 0, 0, 2})

	clone := m.Clone() // clone the matrix

	// modify the clone, but not the original
	require.NoError(t, clone.Set(0, 0, 3.0))

	require.Equal(t, 1.0, MustAt(t, m, 0, 0))     // original remains unchanged
	require.Equal(t, 3.0, MustAt(t, clone, 0, 0)) // clone reflects new value
}

// TestStringOutput checks that String() formats the matrix as expected.
func TestStringOutput(t *testing.T) {
	m := NewFilledDense(t, 2, 2, []float64{1, 2, 3, 4})

	expected := "[1, 2]\n[3, 4]\n"         // define expected string output
	require.Equal(t, expected, m.String()) // assert String() output matches expected format
}
