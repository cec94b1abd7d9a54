package diagfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rue/internal/diag"
	"rue/internal/source"
)

// RenderError renders a diagnostic as a caret-underlined source excerpt:
// a file/line header, the offending source line (tabs expanded, truncated
// and horizontally scrolled to fit the terminal), a caret underline sized
// to the diagnostic's span, and a trailing message line. An IO-phase
// diagnostic has no source position and renders as a single
// "filename: code: message" line.
func RenderError(d *diag.Diagnostic, filename string, fs *source.FileSet, opts Options) string {
	if d == nil {
		return ""
	}
	if d.Phase == diag.IO {
		return fmt.Sprintf("%s: %s: %s", filename, d.Code, d.Message)
	}
	start, end := fs.Resolve(d.Span)
	file := fs.Get(d.Span.File)
	rawLine := strings.TrimRight(file.GetLine(start.Line), "\r\n")

	expanded, byteToCol := expandLine(rawLine)
	runes := []rune(expanded)

	startCol := lookupCol(byteToCol, int(start.Col)-1, len(rawLine))
	endCol := lookupCol(byteToCol, int(end.Col)-1, len(rawLine))
	if endCol <= startCol {
		endCol = startCol + 1
	}
	caretLen := endCol - startCol

	width := opts.resolveWidth()
	threshold := caretLen
	if threshold < 30 {
		threshold = 30
	}

	displayRunes := runes
	displayStart := startCol
	prefix := ""
	if startCol > threshold {
		winStart := startCol - threshold/2
		if winStart < 0 {
			winStart = 0
		}
		if winStart > len(runes) {
			winStart = len(runes)
		}
		displayRunes = runes[winStart:]
		displayStart = startCol - winStart
		prefix = "… "
	}
	maxLen := width - utf8.RuneCountInString(prefix)
	if maxLen < 1 {
		maxLen = 1
	}
	truncated := false
	if len(displayRunes) > maxLen {
		displayRunes = displayRunes[:maxLen]
		truncated = true
	}
	lineOut := prefix + string(displayRunes)
	if truncated {
		lineOut += " …"
	}

	caretPad := utf8.RuneCountInString(prefix) + displayStart
	caret := strings.Repeat(" ", caretPad) + strings.Repeat("^", caretLen)
	if opts.resolveColor() {
		caret = color.New(color.FgRed, color.Bold).Sprint(caret)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s:%d\n", filename, start.Line)
	fmt.Fprintf(&b, "%s\n", lineOut)
	fmt.Fprintf(&b, "%s\n", caret)
	fmt.Fprintf(&b, "%s: %s (at %d:%d)", d.Code, d.Message, start.Line, start.Col)
	return b.String()
}

// expandLine expands tabs to the next 4-column stop and returns the
// resulting display string plus a map from each original byte offset to
// its display column, used to translate the diagnostic's byte-based
// columns into positions in the expanded line.
func expandLine(line string) (string, map[int]int) {
	byteToCol := make(map[int]int, len(line)+1)
	var b strings.Builder
	col := 0
	i := 0
	for i < len(line) {
		byteToCol[i] = col
		r, size := utf8.DecodeRuneInString(line[i:])
		if r == '\t' {
			step := 4 - (col % 4)
			b.WriteString(strings.Repeat(" ", step))
			col += step
		} else {
			w := runewidth.RuneWidth(r)
			if w <= 0 {
				w = 1
			}
			b.WriteRune(r)
			col += w
		}
		i += size
	}
	byteToCol[len(line)] = col
	return b.String(), byteToCol
}

func lookupCol(byteToCol map[int]int, byteOffset, lineLen int) int {
	if byteOffset < 0 {
		byteOffset = 0
	}
	if byteOffset > lineLen {
		byteOffset = lineLen
	}
	if c, ok := byteToCol[byteOffset]; ok {
		return c
	}
	return byteToCol[lineLen]
}
