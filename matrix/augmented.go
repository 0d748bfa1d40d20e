// SPDX-License-Identifier: MIT

// Package matrix: the Augmented working matrix [A|I] and its elementary
// row kernels. The elimination engine mutates an Augmented exclusively
// through SwapRows/ScaleRow/AddScaledRow so that every state change maps
// one-to-one onto a recordable elementary row operation.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opNewAugmented = "NewAugmented"
	opSwapRows     = "SwapRows"
	opScaleRow     = "ScaleRow"
	opAddScaledRow = "AddScaledRow"
)

// augErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func augErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Augmented is the N×2N working matrix for Gauss-Jordan elimination:
// columns [0,N) hold the evolving left half (A at construction, identity
// after a successful elimination) and columns [N,2N) hold the evolving
// right half (identity at construction, A⁻¹ after success).
//
// Augmented is transient per-call state: it is created from one input
// matrix, mutated in place by row kernels, and discarded once the halves
// have been extracted. It holds no reference to the input after
// construction and is not safe for concurrent mutation.
type Augmented struct {
	n   int    // order of the original matrix; the store is n×2n
	mat *Dense // flat row-major backing, n rows of width 2n
}

// NewAugmented builds the augmented form [m | I].
// Stage 1 (Validate): ValidateInvertible — non-nil, square, order within
// [MinDimension, MaxDimension], all entries finite.
// Stage 2 (Prepare): allocate n×2n Dense.
// Stage 3 (Execute): copy m into the left half, seed the right half with
// the identity, fixed i→j order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionBound, ErrNaNInf —
// all wrapped with the NewAugmented tag.
// Complexity: O(n²) time and memory.
func NewAugmented(m Matrix) (*Augmented, error) {
	// Validate the full ingestion gate before any allocation.
	if err := ValidateInvertible(m); err != nil {
		return nil, augErrorf(opNewAugmented, err)
	}

	// Allocate the n×2n workspace.
	n := m.Rows()
	wide, err := NewDense(n, 2*n)
	if err != nil {
		return nil, augErrorf(opNewAugmented, err)
	}

	var i, j int
	// Fast-path: copy Dense rows directly into the left half.
	if d, ok := m.(*Dense); ok {
		for i = 0; i < n; i++ {
			copy(wide.data[i*2*n:i*2*n+n], d.data[i*n:(i+1)*n])
		}
	} else {
		// Fallback: interface path with fixed i→j order.
		var v float64
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				v, err = m.At(i, j)
				if err != nil {
					return nil, augErrorf(opNewAugmented, fmt.Errorf("At(%d,%d): %w", i, j, err))
				}
				wide.data[i*2*n+j] = v
			}
		}
	}

	// Seed the right half with the identity: column n+i of row i.
	for i = 0; i < n; i++ {
		wide.data[i*2*n+n+i] = 1.0
	}

	return &Augmented{n: n, mat: wide}, nil
}

// N returns the order of the original matrix (the store is N×2N).
// Complexity: O(1).
func (a *Augmented) N() int {
	return a.n
}

// At retrieves the element at (row, col) over the full N×2N store.
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (a *Augmented) At(row, col int) (float64, error) {
	return a.mat.At(row, col)
}

// Set assigns value v at (row, col) over the full N×2N store.
// Errors: ErrOutOfRange on invalid indices.
// Complexity: O(1).
func (a *Augmented) Set(row, col int, v float64) error {
	return a.mat.Set(row, col, v)
}

// validRow reports whether r is a legal row index.
func (a *Augmented) validRow(r int) bool {
	return r >= 0 && r < a.n
}

// SwapRows exchanges rows i and j across the full 2N width.
// Swapping a row with itself is a no-op and is accepted (callers decide
// whether such a swap is worth recording; the engine never records one).
//
// Errors: ErrOutOfRange when either index is invalid.
// Complexity: O(n).
func (a *Augmented) SwapRows(i, j int) error {
	// Validate both row indices.
	if !a.validRow(i) || !a.validRow(j) {
		return augErrorf(opSwapRows, ErrOutOfRange)
	}
	// Self-swap leaves the store untouched.
	if i == j {
		return nil
	}

	// Exchange the two flat row segments element by element.
	width := 2 * a.n
	baseI, baseJ := i*width, j*width
	for k := 0; k < width; k++ {
		a.mat.data[baseI+k], a.mat.data[baseJ+k] = a.mat.data[baseJ+k], a.mat.data[baseI+k]
	}

	return nil
}

// ScaleRow multiplies every element of row i by factor across the full
// 2N width. The factor must be finite: scaling by NaN/±Inf would poison
// the workspace and can only arise from dividing by a zero pivot, which
// the engine must rule out before calling.
//
// Errors: ErrOutOfRange on an invalid row, ErrNaNInf on a non-finite factor.
// Complexity: O(n).
func (a *Augmented) ScaleRow(i int, factor float64) error {
	// Validate the row index.
	if !a.validRow(i) {
		return augErrorf(opScaleRow, ErrOutOfRange)
	}
	// Reject non-finite factors before touching the row.
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return augErrorf(opScaleRow, ErrNaNInf)
	}

	// Scale the flat row segment in place.
	width := 2 * a.n
	base := i * width
	for k := 0; k < width; k++ {
		a.mat.data[base+k] *= factor
	}

	return nil
}

// AddScaledRow performs dst += factor·src across the full 2N width.
// dst and src must be distinct rows; an aliased update would read values
// it has already overwritten.
//
// Errors: ErrOutOfRange on invalid or aliased rows, ErrNaNInf on a
// non-finite factor.
// Complexity: O(n).
func (a *Augmented) AddScaledRow(dst, src int, factor float64) error {
	// Validate both rows and the no-alias invariant.
	if !a.validRow(dst) || !a.validRow(src) || dst == src {
		return augErrorf(opAddScaledRow, ErrOutOfRange)
	}
	// Reject non-finite factors before touching the row.
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return augErrorf(opAddScaledRow, ErrNaNInf)
	}

	// Accumulate factor·src into dst over the flat segments.
	width := 2 * a.n
	baseDst, baseSrc := dst*width, src*width
	for k := 0; k < width; k++ {
		a.mat.data[baseDst+k] += factor * a.mat.data[baseSrc+k]
	}

	return nil
}

// half extracts the n×n submatrix starting at column offset.
func (a *Augmented) half(offset int) *Dense {
	out := &Dense{r: a.n, c: a.n, data: make([]float64, a.n*a.n)}
	width := 2 * a.n
	for i := 0; i < a.n; i++ {
		copy(out.data[i*a.n:(i+1)*a.n], a.mat.data[i*width+offset:i*width+offset+a.n])
	}

	return out
}

// LeftHalf returns a copy of columns [0, N) — the identity after a
// successful elimination. Used by replay verification and tests.
// Complexity: O(n²).
func (a *Augmented) LeftHalf() *Dense {
	return a.half(0)
}

// RightHalf returns a copy of columns [N, 2N) — the inverse after a
// successful elimination.
// Complexity: O(n²).
func (a *Augmented) RightHalf() *Dense {
	return a.half(a.n)
}

// Clone returns a deep copy of the working matrix.
// Complexity: O(n²).
func (a *Augmented) Clone() *Augmented {
	d, _ := a.mat.Clone().(*Dense) // Dense.Clone always returns *Dense

	return &Augmented{n: a.n, mat: d}
}

// String implements fmt.Stringer for easy debugging.
func (a *Augmented) String() string {
	return a.mat.String()
}
