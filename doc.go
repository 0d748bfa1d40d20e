// Package matinv is an in-memory engine for inverting small square
// matrices by Gauss-Jordan elimination — and for auditing exactly how
// the inverse was obtained, one elementary row operation at a time.
//
// 🚀 What is matinv?
//
//	A small, deterministic library that brings together:
//		• Value store: a row-major Dense matrix + the N×2N augmented [A|I] workspace
//		• Elimination: Gauss-Jordan with partial pivoting over columns 0..N-1
//		• Audit log: every SWAP / SCALE / ADD_MULTIPLE recorded in replay order
//		• Replay: re-apply a recorded log to a fresh [A|I] and land on [I|A⁻¹]
//		• Determinant: forward elimination with swap-sign tracking
//
// ✨ Why choose matinv?
//
//   - Replayable results – the log is a faithful, step-by-step derivation
//   - Singular-safe – near-zero pivots yield a tagged result, not a fault
//   - Pure Go – no cgo, no hidden deps, no I/O
//   - Deterministic – fixed pivot rule, fixed loop orders, fixed tolerance
//
// Everything is organized under two subpackages:
//
//	matrix/      — Matrix interface, Dense storage, the Augmented [A|I] workspace,
//	               validators and the Mul/Sub/Identity support kernels
//	gaussjordan/ — Invert, Det, Replay, RowOperation, Log and Options
//
// Quick sketch:
//
//	[ A | I ]  --row ops-->  [ I | A⁻¹ ]
//
// Supported sizes are 2×2 through 10×10; larger inputs are rejected up
// front, never truncated.
//
//	go get github.com/velikanov/matinv/gaussjordan
package matinv
