package gaussjordan

import (
	"fmt"
	"math"

	"github.com/velikanov/matinv/matrix"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opInvert = "Invert"
	opDet    = "Det"
	opReplay = "Replay"
)

// gjErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can match sentinels with errors.Is. Use only when
// err != nil to avoid wrapping a nil cause.
func gjErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Invert computes A⁻¹ by Gauss-Jordan elimination with partial pivoting
// and returns the tagged Result together with the full operation log.
//
// Implementation:
//   - Stage 1: Resolve options; build the augmented workspace [A|I]
//     (validates non-nil, square, order within [2,10], finite entries).
//   - Stage 2: For each pivot column c = 0..N-1:
//     a. select the row r ≥ c maximizing |aug[r,c]| — always, even when
//     the diagonal entry is already non-zero (stability policy);
//     b. if that maximum is below Tolerance, return Result{Singular}
//     with the log snapshot — before any swap is applied or recorded;
//     c. swap rows c and r when they differ, recording a SWAP
//     (a no-op swap is never logged);
//     d. scale row c by 1/pivot so the pivot becomes 1, recording a
//     SCALE (skipped entirely for unit pivots under SkipUnitScale);
//     e. for every other row whose column-c entry exceeds Tolerance,
//     add −entry times row c, recording an ADD_MULTIPLE (entries
//     already within Tolerance of zero are skipped unlogged).
//   - Stage 3: Extract the right half as the inverse; snapshot the log.
//
// Behavior highlights:
//   - Deterministic: fixed pivot rule, fixed loop orders, fixed tolerance
//     ⇒ identical Result (values and log) for identical inputs.
//   - Singularity is a first-class outcome, not an error: callers must
//     branch on Result.Singular explicitly.
//   - The input is read once into the workspace and never retained or
//     mutated; each call owns its workspace and log, so independent
//     calls may run concurrently.
//
// Inputs:
//   - m: square matrix, order in [2,10], all entries finite.
//   - opts: engine options; nil selects DefaultOptions.
//
// Returns:
//   - Result: success (Inverse + full Log) or singular (partial Log).
//   - error : precondition failures only, with no partial state.
//
// Errors:
//   - ErrBadTolerance            (invalid Options.Tolerance).
//   - matrix.ErrNilMatrix        (nil input).
//   - matrix.ErrNonSquare        (input not square).
//   - matrix.ErrDimensionBound   (order outside [2,10]).
//   - matrix.ErrNaNInf           (non-finite entry).
//
// Complexity:
//   - Time O(N³), Space O(N²) for the transient workspace; the log holds
//     at most N² + N operations.
//
// Notes:
//   - Invertible but ill-conditioned inputs still succeed, with reduced
//     numeric accuracy; the engine detects only the hard near-zero pivot.
func Invert(m matrix.Matrix, opts *Options) (Result, error) {
	// Resolve and validate options.
	o, err := resolveOptions(opts)
	if err != nil {
		return Result{}, gjErrorf(opInvert, err)
	}

	// Build [A|I]; this is the single precondition gate.
	aug, err := matrix.NewAugmented(m)
	if err != nil {
		return Result{}, gjErrorf(opInvert, err)
	}

	n := aug.N()
	var (
		hist           Log     // append-only operation history
		c, r, pivotRow int     // pivot column, row iterator, selected pivot row
		v, best        float64 // candidate value and best |candidate| so far
		pivot, entry   float64 // pivot value and elimination entry
		factor         float64 // scale or add-multiple factor
	)
	for c = 0; c < n; c++ {
		// a. Partial pivoting: largest |value| among rows c..n-1 of column c.
		pivotRow, best = c, 0
		for r = c; r < n; r++ {
			v, err = aug.At(r, c)
			if err != nil {
				return Result{}, gjErrorf(opInvert, fmt.Errorf("At(%d,%d): %w", r, c, err))
			}
			if math.Abs(v) > best {
				best, pivotRow = math.Abs(v), r
			}
		}

		// b. Singularity: the best candidate is effectively zero. Checked
		// before the swap so the partial log ends at the last completed
		// pivot column, with no trailing SWAP for a column that failed.
		if best < o.Tolerance {
			return Result{Singular: true, Log: hist.Snapshot()}, nil
		}

		// c. Bring the pivot row into place; never log a no-op swap.
		if pivotRow != c {
			if err = aug.SwapRows(c, pivotRow); err != nil {
				return Result{}, gjErrorf(opInvert, err)
			}
			hist.Record(newSwap(c, pivotRow))
		}

		// d. Normalize the pivot row so the pivot becomes exactly 1.
		pivot, err = aug.At(c, c)
		if err != nil {
			return Result{}, gjErrorf(opInvert, fmt.Errorf("At(%d,%d): %w", c, c, err))
		}
		if o.SkipUnitScale && math.Abs(pivot-1) <= o.Tolerance {
			// Unit pivot under the skip policy: nothing applied, nothing logged.
		} else {
			factor = 1 / pivot
			if err = aug.ScaleRow(c, factor); err != nil {
				return Result{}, gjErrorf(opInvert, err)
			}
			hist.Record(newScale(c, factor))
		}

		// e. Eliminate column c from every other row, above and below.
		for r = 0; r < n; r++ {
			if r == c {
				continue
			}
			entry, err = aug.At(r, c)
			if err != nil {
				return Result{}, gjErrorf(opInvert, fmt.Errorf("At(%d,%d): %w", r, c, err))
			}
			if math.Abs(entry) <= o.Tolerance {
				continue // already zero; skip unlogged
			}
			factor = -entry
			if err = aug.AddScaledRow(r, c, factor); err != nil {
				return Result{}, gjErrorf(opInvert, err)
			}
			hist.Record(newAddMultiple(r, c, factor))
		}
	}

	// The left half is now the identity; the right half is A⁻¹.
	return Result{Inverse: aug.RightHalf(), Log: hist.Snapshot()}, nil
}

// Det computes the determinant of A by forward elimination with the same
// partial-pivoting rule as Invert, tracking the sign flip of each swap.
//
// Implementation:
//   - Stage 1: Resolve options; validate the input with the same gate as
//     Invert (non-nil, square, order within [2,10], finite); copy A into
//     a flat scratch buffer.
//   - Stage 2: For each column, pivot on the largest-magnitude candidate;
//     a pivot below Tolerance short-circuits to exactly 0. Otherwise the
//     running product accumulates the pivot and rows below are reduced.
//
// Inputs:
//   - m: square matrix, order in [2,10], all entries finite.
//   - opts: engine options; nil selects DefaultOptions (SkipUnitScale has
//     no effect here).
//
// Returns:
//   - float64: det(A); exactly 0 when a pivot falls below Tolerance.
//   - error  : precondition failures, as for Invert.
//
// Complexity:
//   - Time O(N³), Space O(N²) for the scratch copy.
func Det(m matrix.Matrix, opts *Options) (float64, error) {
	// Resolve and validate options.
	o, err := resolveOptions(opts)
	if err != nil {
		return 0, gjErrorf(opDet, err)
	}

	// Same ingestion gate as inversion.
	if err = matrix.ValidateInvertible(m); err != nil {
		return 0, gjErrorf(opDet, err)
	}

	// Copy A into a flat row-major scratch buffer.
	n := m.Rows()
	work := make([]float64, n*n)
	var i, j int
	var v float64
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, err = m.At(i, j)
			if err != nil {
				return 0, gjErrorf(opDet, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			work[i*n+j] = v
		}
	}

	// Forward elimination with partial pivoting and swap-sign tracking.
	det := 1.0
	var (
		c, r, k, pivotRow int
		best, pivot, f    float64
	)
	for c = 0; c < n; c++ {
		// Select the largest-magnitude candidate in column c, rows c..n-1.
		pivotRow, best = c, 0
		for r = c; r < n; r++ {
			if a := math.Abs(work[r*n+c]); a > best {
				best, pivotRow = a, r
			}
		}
		// A near-zero pivot column means det(A) = 0 exactly.
		if best < o.Tolerance {
			return 0, nil
		}
		// Swap flips the sign of the determinant.
		if pivotRow != c {
			baseC, baseP := c*n, pivotRow*n
			for k = c; k < n; k++ {
				work[baseC+k], work[baseP+k] = work[baseP+k], work[baseC+k]
			}
			det = -det
		}
		// Accumulate the pivot and reduce the rows below.
		pivot = work[c*n+c]
		det *= pivot
		for r = c + 1; r < n; r++ {
			f = work[r*n+c] / pivot
			if f == 0 {
				continue // nothing to eliminate in this row
			}
			for k = c; k < n; k++ {
				work[r*n+k] -= f * work[c*n+k]
			}
		}
	}

	return det, nil
}
