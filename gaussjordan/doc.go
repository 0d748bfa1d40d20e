// Package gaussjordan inverts square matrices by Gauss-Jordan elimination
// with partial pivoting, recording every elementary row operation so the
// computation can be audited and replayed step by step.
//
// 🚀 What is Gauss-Jordan elimination?
//
//	Starting from the augmented matrix [A | I], elementary row operations
//	drive the left half to the identity; whatever those same operations
//	turn the right half into is A⁻¹. Three operation kinds suffice:
//	  • SWAP          — exchange two rows            (Eᵢ,ⱼ)
//	  • SCALE         — multiply a row by a scalar   (Eᵢ(k))
//	  • ADD_MULTIPLE  — add k times a row to another (Eᵢ,ⱼ(k))
//
// ✨ Key features:
//   - partial pivoting: each column pivots on the largest-magnitude
//     candidate, even when the diagonal entry would do
//   - tagged singularity: a near-zero pivot yields Result.Singular with
//     the partial log, never an error
//   - replayable log: Replay re-applies a recorded log to a fresh [A|I]
//     and reproduces the engine's final working matrix
//   - determinant via the same pivoting rule (Det)
//
// ⚙️ Usage:
//
//	import "github.com/velikanov/matinv/gaussjordan"
//
//	opts := gaussjordan.DefaultOptions()
//	res, err := gaussjordan.Invert(m, &opts)
//	if err != nil {
//	  // precondition failure: nil, non-square, out of [2,10], NaN/Inf
//	}
//	if res.Singular {
//	  // no inverse; res.Log holds the steps up to the failing column
//	}
//	// res.Inverse is A⁻¹, res.Log the full derivation
//
// Performance:
//
//   - Time:   O(N³) — well under a millisecond for N ≤ 10
//   - Memory: O(N²) for the transient [A|I] workspace
//
// See examples in example_test.go.
package gaussjordan
