// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikanov/matinv/matrix"
)

// TestValidateInvertible_Order verifies the composite gate reports the
// highest-priority violation: nil → square → bound → finite.
func TestValidateInvertible_Order(t *testing.T) {
	assert.ErrorIs(t, matrix.ValidateInvertible(nil), matrix.ErrNilMatrix, "nil first")

	rect, err := matrix.NewDense(1, 3)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateInvertible(rect), matrix.ErrNonSquare, "square before bound")

	tiny, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateInvertible(tiny), matrix.ErrDimensionBound, "bound before finiteness")

	bad, err := matrix.NewDenseFromRows([][]float64{{math.Inf(1), 0}, {0, 1}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateInvertible(bad), matrix.ErrNaNInf, "finiteness last")

	ok, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {0, 1}})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateInvertible(ok), "valid input passes the whole gate")
}

// TestValidateFinite verifies both the NaN and ±Inf rejections.
func TestValidateFinite(t *testing.T) {
	nan, err := matrix.NewDenseFromRows([][]float64{{0, math.NaN()}, {0, 0}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateFinite(nan), matrix.ErrNaNInf, "NaN rejected")

	neg, err := matrix.NewDenseFromRows([][]float64{{0, 0}, {math.Inf(-1), 0}})
	require.NoError(t, err)
	assert.ErrorIs(t, matrix.ValidateFinite(neg), matrix.ErrNaNInf, "-Inf rejected")

	fin, err := matrix.NewDenseFromRows([][]float64{{1e308, -1e308}, {0, 1}})
	require.NoError(t, err)
	assert.NoError(t, matrix.ValidateFinite(fin), "large finite values accepted")
}

// TestValidateDimensionBound verifies the inclusive [2,10] policy range.
func TestValidateDimensionBound(t *testing.T) {
	for _, n := range []int{matrix.MinDimension, matrix.MaxDimension} {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		assert.NoError(t, matrix.ValidateDimensionBound(m), "order %d is inside the bound", n)
	}
	for _, n := range []int{1, 11} {
		m, err := matrix.NewDense(n, n)
		require.NoError(t, err)
		assert.ErrorIs(t, matrix.ValidateDimensionBound(m), matrix.ErrDimensionBound, "order %d is outside the bound", n)
	}
}
