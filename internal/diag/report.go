package diag

import (
	"sort"

	"rue/internal/source"
)

// FileDiagnostic pairs a diagnostic with the file it belongs to, so a
// multi-file driver can report results for a whole batch at once.
type FileDiagnostic struct {
	File source.FileID
	Path string
	Diag *Diagnostic
}

// Report collects at most one diagnostic per file across a batch of
// lex/parse runs. Unlike the single Diagnostic returned by Lex/Parse for
// one file, Report exists purely for ambient multi-file tooling (a
// directory-wide `rue tokenize`/`rue parse` run) and never influences the
// single-file semantics described by Lex and Parse themselves.
type Report struct {
	items []FileDiagnostic
}

// NewReport creates an empty report.
func NewReport() *Report {
	return &Report{}
}

// Add records a diagnostic for a file. Passing a nil diag is a no-op,
// which lets callers add unconditionally after every Lex/Parse call.
func (r *Report) Add(file source.FileID, path string, d *Diagnostic) {
	if d == nil {
		return
	}
	r.items = append(r.items, FileDiagnostic{File: file, Path: path, Diag: d})
}

// Len returns the number of recorded diagnostics.
func (r *Report) Len() int { return len(r.items) }

// HasErrors reports whether any diagnostic was recorded.
func (r *Report) HasErrors() bool { return len(r.items) > 0 }

// Items returns the recorded diagnostics in source order (do not mutate).
func (r *Report) Items() []FileDiagnostic { return r.items }

// Sort orders diagnostics by path, then by span start, for deterministic
// batch output.
func (r *Report) Sort() {
	sort.SliceStable(r.items, func(i, j int) bool {
		a, b := r.items[i], r.items[j]
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return a.Diag.Span.Start < b.Diag.Span.Start
	})
}
