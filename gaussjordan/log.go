package gaussjordan

// Log accumulates an ordered, append-only history of row operations.
// Insertion order equals chronological application order. The zero value
// is an empty log, ready to use.
//
// A Log is owned by a single inversion call and is not safe for
// concurrent mutation; snapshots handed to callers are independent
// copies and may be read freely.
type Log struct {
	ops []RowOperation
}

// Record appends one operation to the end of the history.
// Append-only: recorded operations are never modified or removed.
// Complexity: amortized O(1).
func (l *Log) Record(op RowOperation) {
	l.ops = append(l.ops, op)
}

// Len returns the number of recorded operations.
// Complexity: O(1).
func (l *Log) Len() int {
	return len(l.ops)
}

// Snapshot returns a copy of the full ordered history as of the call.
// Copy semantics: later Records cannot retroactively alter a snapshot
// already handed to a caller. An empty log yields a nil slice.
// Complexity: O(len).
func (l *Log) Snapshot() []RowOperation {
	if len(l.ops) == 0 {
		return nil
	}
	out := make([]RowOperation, len(l.ops))
	copy(out, l.ops)

	return out
}
