// SPDX-License-Identifier: MIT

// Package matrix: the public Matrix interface and the dimension policy
// constants. Errors live in errors.go, validators in validators.go per
// the package conventions.
package matrix

// Supported order for invertible inputs. The bound is a product policy
// (the consumer collects at most a 10×10 grid), not an algorithmic limit;
// it is enforced at ingestion so the engine never sees anything else.
const (
	// MinDimension is the smallest accepted order of an input matrix.
	MinDimension = 2

	// MaxDimension is the largest accepted order of an input matrix.
	MaxDimension = 10
)

// Matrix represents a two-dimensional mutable array of float64 values.
// Each method enforces bounds checking and returns clear errors on
// misuse. Users can implement this interface to provide custom storage
// layouts; Dense is the canonical implementation.
//
// Complexity notes: all methods are expected O(1) except Clone (O(r*c)).
type Matrix interface {
	// Rows returns the number of rows in the matrix.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns in the matrix.
	// Complexity: O(1).
	Cols() int

	// At retrieves the element at position (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	// Complexity: O(1).
	At(i, j int) (float64, error)

	// Set assigns the value v at position (i, j).
	// Returns ErrOutOfRange if indices are invalid.
	// Complexity: O(1).
	Set(i, j int, v float64) error

	// Clone returns a deep copy of the matrix.
	// The returned Matrix is independent of the original.
	// Complexity: O(rows*cols).
	Clone() Matrix
}
