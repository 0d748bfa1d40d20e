// SPDX-License-Identifier: MIT

// Package matrix provides the value store for Gauss-Jordan elimination:
// the Matrix interface, the row-major Dense implementation, and the
// Augmented N×2N working matrix [A|I] with its elementary row kernels.
//
// What & Why:
//
//	The elimination engine never touches raw slices directly; it drives
//	an Augmented workspace through exactly three mutation paths —
//	SwapRows, ScaleRow and AddScaledRow — so every state change maps
//	one-to-one onto a recordable elementary row operation. Dense backs
//	both the caller-facing N×N values and the workspace with a flat
//	row-major slice for cache friendliness.
//
// Validation:
//
//	All checks are centralized in validators.go and return plain
//	sentinel errors (errors.go); facades wrap them with an operation
//	tag. Inputs to inversion must be square, within [MinDimension,
//	MaxDimension], and fully finite — NaN and ±Inf are rejected before
//	any work happens.
//
// Complexity:
//
//	At/Set are O(1) with bounds checks; the row kernels are O(N) over a
//	2N-wide row; Mul is O(n³); everything allocates at most one result.
package matrix
