// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velikanov/matinv/matrix"
)

// mustAug builds an Augmented from row slices, failing the test on error.
func mustAug(t *testing.T, rows [][]float64) *matrix.Augmented {
	t.Helper()
	d, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err, "test input must be rectangular")
	aug, err := matrix.NewAugmented(d)
	require.NoError(t, err, "test input must pass the ingestion gate")

	return aug
}

// augAt reads one element, failing the test on error.
func augAt(t *testing.T, a *matrix.Augmented, i, j int) float64 {
	t.Helper()
	v, err := a.At(i, j)
	require.NoError(t, err)

	return v
}

// TestNewAugmented_SeedsIdentity verifies the left half copies the input
// and the right half is the identity.
func TestNewAugmented_SeedsIdentity(t *testing.T) {
	aug := mustAug(t, [][]float64{{4, 7}, {2, 6}})
	require.Equal(t, 2, aug.N(), "order")

	// Left half: the input values.
	assert.Equal(t, 4.0, augAt(t, aug, 0, 0))
	assert.Equal(t, 7.0, augAt(t, aug, 0, 1))
	assert.Equal(t, 2.0, augAt(t, aug, 1, 0))
	assert.Equal(t, 6.0, augAt(t, aug, 1, 1))
	// Right half: I.
	assert.Equal(t, 1.0, augAt(t, aug, 0, 2))
	assert.Equal(t, 0.0, augAt(t, aug, 0, 3))
	assert.Equal(t, 0.0, augAt(t, aug, 1, 2))
	assert.Equal(t, 1.0, augAt(t, aug, 1, 3))
}

// TestNewAugmented_Preconditions verifies every ingestion failure maps to
// its documented sentinel and produces no workspace.
func TestNewAugmented_Preconditions(t *testing.T) {
	_, err := matrix.NewAugmented(nil)
	assert.ErrorIs(t, err, matrix.ErrNilMatrix, "nil input")

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.NewAugmented(rect)
	assert.ErrorIs(t, err, matrix.ErrNonSquare, "rectangular input")

	tiny, err := matrix.NewDense(1, 1)
	require.NoError(t, err)
	_, err = matrix.NewAugmented(tiny)
	assert.ErrorIs(t, err, matrix.ErrDimensionBound, "1x1 is below MinDimension")

	big, err := matrix.NewDense(11, 11)
	require.NoError(t, err)
	_, err = matrix.NewAugmented(big)
	assert.ErrorIs(t, err, matrix.ErrDimensionBound, "11x11 is above MaxDimension")

	bad, err := matrix.NewDenseFromRows([][]float64{{1, math.NaN()}, {0, 1}})
	require.NoError(t, err)
	_, err = matrix.NewAugmented(bad)
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "NaN entry")

	inf, err := matrix.NewDenseFromRows([][]float64{{1, 0}, {math.Inf(1), 1}})
	require.NoError(t, err)
	_, err = matrix.NewAugmented(inf)
	assert.ErrorIs(t, err, matrix.ErrNaNInf, "+Inf entry")
}

// TestAugmented_NoInputRetention verifies the workspace is detached from
// the input matrix after construction.
func TestAugmented_NoInputRetention(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	aug, err := matrix.NewAugmented(d)
	require.NoError(t, err)

	require.NoError(t, d.Set(0, 0, 99), "mutate the input after construction")
	assert.Equal(t, 1.0, augAt(t, aug, 0, 0), "workspace must not observe input mutation")
}

// TestAugmented_SwapRows verifies the swap kernel over the full width,
// the accepted self-swap no-op, and index validation.
func TestAugmented_SwapRows(t *testing.T) {
	aug := mustAug(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, aug.SwapRows(0, 1), "valid swap")
	assert.Equal(t, 3.0, augAt(t, aug, 0, 0), "left half swapped")
	assert.Equal(t, 1.0, augAt(t, aug, 0, 2), "right half swapped with the row")
	assert.Equal(t, 1.0, augAt(t, aug, 1, 0))
	assert.Equal(t, 0.0, augAt(t, aug, 1, 2))

	require.NoError(t, aug.SwapRows(1, 1), "self-swap is an accepted no-op")
	assert.Equal(t, 1.0, augAt(t, aug, 1, 0), "self-swap must not change the row")

	assert.ErrorIs(t, aug.SwapRows(0, 2), matrix.ErrOutOfRange, "row index past N")
	assert.ErrorIs(t, aug.SwapRows(-1, 0), matrix.ErrOutOfRange, "negative row index")
}

// TestAugmented_ScaleRow verifies scaling across the full width and the
// finite-factor guard.
func TestAugmented_ScaleRow(t *testing.T) {
	aug := mustAug(t, [][]float64{{4, 8}, {1, 1}})

	require.NoError(t, aug.ScaleRow(0, 0.25), "valid scale")
	assert.Equal(t, 1.0, augAt(t, aug, 0, 0))
	assert.Equal(t, 2.0, augAt(t, aug, 0, 1))
	assert.Equal(t, 0.25, augAt(t, aug, 0, 2), "identity half scales too")

	assert.ErrorIs(t, aug.ScaleRow(2, 1), matrix.ErrOutOfRange, "row index past N")
	assert.ErrorIs(t, aug.ScaleRow(0, math.NaN()), matrix.ErrNaNInf, "NaN factor")
	assert.ErrorIs(t, aug.ScaleRow(0, math.Inf(-1)), matrix.ErrNaNInf, "-Inf factor")
}

// TestAugmented_AddScaledRow verifies the elimination kernel, the
// no-alias invariant and the finite-factor guard.
func TestAugmented_AddScaledRow(t *testing.T) {
	aug := mustAug(t, [][]float64{{1, 2}, {3, 4}})

	require.NoError(t, aug.AddScaledRow(1, 0, -3), "valid elimination step")
	assert.Equal(t, 0.0, augAt(t, aug, 1, 0), "column entry eliminated")
	assert.Equal(t, -2.0, augAt(t, aug, 1, 1))
	assert.Equal(t, -3.0, augAt(t, aug, 1, 2), "identity half accumulates too")
	assert.Equal(t, 1.0, augAt(t, aug, 1, 3))

	assert.ErrorIs(t, aug.AddScaledRow(0, 0, 1), matrix.ErrOutOfRange, "aliased rows rejected")
	assert.ErrorIs(t, aug.AddScaledRow(0, 2, 1), matrix.ErrOutOfRange, "source past N")
	assert.ErrorIs(t, aug.AddScaledRow(1, 0, math.NaN()), matrix.ErrNaNInf, "NaN factor")
}

// TestAugmented_Halves verifies LeftHalf/RightHalf extract detached
// copies of the correct column ranges.
func TestAugmented_Halves(t *testing.T) {
	aug := mustAug(t, [][]float64{{5, 6}, {7, 8}})

	left := aug.LeftHalf()
	right := aug.RightHalf()

	v, err := left.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 7.0, v, "left half holds the input")

	v, err = right.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "right half starts as identity")

	// Halves are copies: mutating the workspace afterwards is invisible.
	require.NoError(t, aug.Set(0, 2, 42))
	v, err = right.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "extracted half must be detached")
}

// TestAugmented_Clone verifies deep-copy semantics of the workspace.
func TestAugmented_Clone(t *testing.T) {
	aug := mustAug(t, [][]float64{{1, 0}, {0, 1}})
	cp := aug.Clone()

	require.NoError(t, aug.Set(0, 0, 9))
	assert.Equal(t, 1.0, augAt(t, cp, 0, 0), "clone must not observe later mutation")
}
