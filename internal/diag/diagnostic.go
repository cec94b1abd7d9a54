package diag

import (
	"fmt"

	"rue/internal/source"
)

// Diagnostic is the single value type behind both LexError and ParseError:
// a phase, a short human message, an optional offending snippet, and the
// byte span of the offending region. Diagnostics are value-like and
// immutable after construction.
type Diagnostic struct {
	Phase   Phase
	Code    Code
	Message string
	// Content is the offending snippet for lexical errors (typically a
	// single rune rendered as a string); empty for parse errors.
	Content string
	Span    source.Span
}

// Error implements the error interface so a Diagnostic can be returned
// directly from Lex and Parse.
func (d *Diagnostic) Error() string {
	if d == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", d.Phase, d.Message)
}

// LexError is the diagnostic kind returned when tokenizing fails. Lexing
// aborts immediately at the first offending byte.
type LexError = Diagnostic

// ParseError is the diagnostic kind returned when parsing fails. Only the
// furthest error encountered across all backtracked alternatives surfaces.
type ParseError = Diagnostic

// NewLexError constructs a lex-phase diagnostic.
func NewLexError(code Code, sp source.Span, message, content string) *Diagnostic {
	return &Diagnostic{Phase: Lex, Code: code, Message: message, Content: content, Span: sp}
}

// NewParseError constructs a parse-phase diagnostic.
func NewParseError(code Code, sp source.Span, message string) *Diagnostic {
	return &Diagnostic{Phase: Parse, Code: code, Message: message, Span: sp}
}

// NewIOError constructs a diagnostic for a file that could not be loaded,
// carrying no span since the file was never read into a FileSet.
func NewIOError(path string, cause error) *Diagnostic {
	return &Diagnostic{Phase: IO, Code: IOLoadFileError, Message: "failed to load " + path + ": " + cause.Error()}
}
