package diag

// FurthestSlot is the single-slot error memo backing the parser's
// ordered-choice backtracking: of every alternative that failed, only the
// diagnostic whose span begins latest in the source is kept. On a tie the
// later failure wins, since it was discovered deeper into the same
// backtracking attempt.
type FurthestSlot struct {
	err *Diagnostic
}

// Record replaces the stored diagnostic if d starts at or after the
// currently stored one (or if nothing is stored yet).
func (f *FurthestSlot) Record(d *Diagnostic) {
	if d == nil {
		return
	}
	if f.err == nil || d.Span.Start >= f.err.Span.Start {
		f.err = d
	}
}

// Err returns the furthest diagnostic recorded so far, or nil.
func (f *FurthestSlot) Err() *Diagnostic {
	return f.err
}

// Reset clears the slot, used when a caller wants to retry parsing fresh.
func (f *FurthestSlot) Reset() {
	f.err = nil
}
