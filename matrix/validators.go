// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels/facades minimal by delegating nil/shape/finiteness checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.
//  - ValidateFinite runs O(r*c) over the full element set; the rest are O(1).
//
// Note:
//  - Each composite validator follows a fixed sequence (e.g. NotNil → Square
//    → Bound → Finite) so callers always observe the highest-priority error.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	// Provides consistent error tagging for all validation errors.
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil – Ensures the matrix reference is non-nil.
//
// Inputs: Matrix interface value.
// Returns ErrNilMatrix if m == nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	// If the matrix is nil, fail with the unified sentinel.
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix) // single source of truth for "nil argument"
	}

	// Otherwise accept.
	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
//
// Implementation: Assumes m is not nil (caller must ensure).
// Errors: ErrNonSquare if Rows != Cols.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	// Check the square condition explicitly.
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateDimensionBound checks that a square matrix order lies within
// [MinDimension, MaxDimension].
//
// Implementation: Assumes m is not nil and square (caller must ensure).
// Errors: ErrDimensionBound when the order is outside the policy range.
// Complexity: O(1).
func ValidateDimensionBound(m Matrix) error {
	// Compare against the package-level policy constants.
	if n := m.Rows(); n < MinDimension || n > MaxDimension {
		return validatorErrorf("ValidateDimensionBound", ErrDimensionBound)
	}

	return nil
}

// ValidateFinite scans every element and rejects NaN and ±Inf.
//
// Implementation: Assumes m is not nil (caller must ensure). Fast-path on
// *Dense walks the flat slice; fallback reads via At in fixed i→j order.
// Errors: ErrNaNInf on the first non-finite element.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	// Fast-path: flat scan over the Dense backing slice.
	if d, ok := m.(*Dense); ok {
		for idx, v := range d.data {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite: element %d", idx), ErrNaNInf)
			}
		}

		return nil
	}

	// Fallback: interface path with fixed i→j order.
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			v, err = m.At(i, j)
			if err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite: (%d,%d)", i, j), ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateSameShape – Ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	// Execute comparisons
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateBinarySameShape composes NotNil on both operands with ValidateSameShape.
// Complexity: O(1).
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible ensures a.Cols == b.Rows for matrix multiplication.
// Errors: ErrNilMatrix on nil operands, ErrDimensionMismatch on inner mismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateInvertible is the composite ingestion gate for inversion inputs:
// NotNil → Square → DimensionBound → Finite, in that fixed order.
//
// Errors: ErrNilMatrix, ErrNonSquare, ErrDimensionBound, ErrNaNInf.
// Complexity: O(n²) dominated by the finiteness scan.
func ValidateInvertible(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateDimensionBound(m); err != nil {
		return err
	}

	return ValidateFinite(m)
}
