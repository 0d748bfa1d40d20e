// Package gaussjordan defines the operation records and result types of
// the elimination engine.
package gaussjordan

import "github.com/velikanov/matinv/matrix"

// OpKind identifies the elementary row-operation type. The numeric values
// follow the classical numbering of elementary operations (type 1 swap,
// type 2 scale, type 3 add-multiple) and are stable across releases.
type OpKind int

const (
	// OpSwap exchanges two rows: Eᵢ,ⱼ.
	OpSwap OpKind = iota + 1

	// OpScale multiplies one row by a scalar: Eᵢ(k).
	OpScale

	// OpAddMultiple adds k times one row to another: Eᵢ,ⱼ(k).
	OpAddMultiple
)

// String returns the canonical name of the operation kind.
func (k OpKind) String() string {
	switch k {
	case OpSwap:
		return "SWAP"
	case OpScale:
		return "SCALE"
	case OpAddMultiple:
		return "ADD_MULTIPLE"
	default:
		return "UNKNOWN"
	}
}

// RowOperation is an immutable record of one elementary transformation
// applied to the working matrix. It is created by the engine at the
// moment the operation is applied and never mutated afterwards.
//
// Field semantics by kind (all row indices 0-based):
//   - OpSwap:        Row and Other are the exchanged rows; Factor unused.
//   - OpScale:       Row was multiplied by Factor; Other unused.
//   - OpAddMultiple: Row += Factor·Other.
//
// Desc holds the human-readable E-notation (1-based, unicode subscripts)
// built at record time, e.g. "E₂,₁(-2)".
type RowOperation struct {
	Kind   OpKind
	Row    int
	Other  int
	Factor float64
	Desc   string
}

// String returns the human-readable description of the operation.
func (op RowOperation) String() string {
	return op.Desc
}

// newSwap builds the record for exchanging rows i and j.
func newSwap(i, j int) RowOperation {
	return RowOperation{Kind: OpSwap, Row: i, Other: j, Desc: swapDesc(i, j)}
}

// newScale builds the record for multiplying row i by factor.
func newScale(i int, factor float64) RowOperation {
	return RowOperation{Kind: OpScale, Row: i, Factor: factor, Desc: scaleDesc(i, factor)}
}

// newAddMultiple builds the record for row dst += factor·row src.
func newAddMultiple(dst, src int, factor float64) RowOperation {
	return RowOperation{Kind: OpAddMultiple, Row: dst, Other: src, Factor: factor, Desc: addMultipleDesc(dst, src, factor)}
}

// Result is the tagged outcome of one inversion call.
//
// Exactly one of two shapes is produced:
//   - success:  Singular == false, Inverse is the N×N inverse, Log the
//     full operation history in application order;
//   - singular: Singular == true, Inverse is nil, Log the partial history
//     accumulated up to (and excluding) the failing pivot column.
//
// Log is a snapshot: the engine's live log cannot retroactively alter it.
type Result struct {
	Inverse  *matrix.Dense
	Log      []RowOperation
	Singular bool
}
