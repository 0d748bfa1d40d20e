package gaussjordan

import (
	"errors"
	"fmt"

	"github.com/velikanov/matinv/matrix"
)

// ErrUnknownOp indicates a RowOperation whose Kind is not one of
// OpSwap, OpScale, OpAddMultiple.
var ErrUnknownOp = errors.New("gaussjordan: unknown operation kind")

// Replay rebuilds the augmented matrix [m | I] and re-applies each
// recorded operation, in order, through the same row kernels the engine
// uses. Replaying the log of a successful Invert(m) reproduces the
// engine's final working matrix: left half the identity, right half the
// inverse. Replaying a partial (singular) log reproduces the workspace
// as of the failing pivot column.
//
// Implementation:
//   - Stage 1: Build [m|I] via matrix.NewAugmented (full ingestion gate).
//   - Stage 2: Dispatch each operation on its Kind to SwapRows /
//     ScaleRow / AddScaledRow; fail fast on the first invalid record.
//
// Inputs:
//   - m: the original matrix the log was recorded against.
//   - ops: the recorded history, in application order (e.g. Result.Log).
//
// Returns:
//   - *matrix.Augmented: the reconstructed working matrix.
//   - error: precondition failures from NewAugmented; ErrUnknownOp for an
//     unrecognized Kind; matrix.ErrOutOfRange / matrix.ErrNaNInf for
//     records whose indices or factors do not fit the workspace.
//
// Complexity:
//   - Time O(len(ops)·N + N²), Space O(N²).
//
// Notes:
//   - Replay applies records verbatim: a SWAP of equal rows would be a
//     no-op, but the engine never records one.
func Replay(m matrix.Matrix, ops []RowOperation) (*matrix.Augmented, error) {
	// Rebuild the starting workspace [m | I].
	aug, err := matrix.NewAugmented(m)
	if err != nil {
		return nil, gjErrorf(opReplay, err)
	}

	// Re-apply every record in order, failing fast on the first bad one.
	for idx, op := range ops {
		switch op.Kind {
		case OpSwap:
			err = aug.SwapRows(op.Row, op.Other)
		case OpScale:
			err = aug.ScaleRow(op.Row, op.Factor)
		case OpAddMultiple:
			err = aug.AddScaledRow(op.Row, op.Other, op.Factor)
		default:
			err = ErrUnknownOp
		}
		if err != nil {
			return nil, gjErrorf(opReplay, fmt.Errorf("op %d (%s): %w", idx, op.Kind, err))
		}
	}

	return aug, nil
}
