// Package diagfmt renders diagnostics and CST/token trees for humans:
// RenderError produces the caret-underlined source excerpt used by every
// consumer of Lex/Parse errors, and Stringify is the debug pretty-printer
// used by tests and the CLI's inspection commands.
package diagfmt

import (
	"os"

	"golang.org/x/term"
)

// Options configures RenderError. The zero value auto-detects a terminal
// width and enables color only when stdout is a real terminal.
type Options struct {
	// Width caps the rendered source line; 0 auto-detects from the
	// terminal, falling back to 80 columns when detection fails.
	Width int
	// Color forces ANSI coloring on or off. Use ColorAuto to detect.
	Color ColorMode
}

// ColorMode controls whether RenderError emits ANSI color codes.
type ColorMode uint8

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

func (o Options) resolveWidth() int {
	if o.Width > 0 {
		return o.Width
	}
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	return 80
}

func (o Options) resolveColor() bool {
	switch o.Color {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	default:
		return term.IsTerminal(int(os.Stdout.Fd()))
	}
}
