package diag

import (
	"fmt"

	"rue/internal/source"
)

// FormatGolden renders a single diagnostic into a stable, single-line
// representation suitable for golden-file test fixtures:
// "<phase> <code> <line>:<col>-<line>:<col> <message>".
func FormatGolden(d *Diagnostic, fs *source.FileSet) string {
	if d == nil {
		return ""
	}
	start, end := fs.Resolve(d.Span)
	return fmt.Sprintf("%s %s %d:%d-%d:%d %s", d.Phase, d.Code, start.Line, start.Col, end.Line, end.Col, d.Message)
}
