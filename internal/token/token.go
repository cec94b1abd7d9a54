package token

import (
	"rue/internal/source"
)

// Token is a single lexeme with its kind, decoded text, and source span.
// For every kind except StringLiteral, Text is the exact source slice; for
// StringLiteral it is the decoded content with the surrounding quotes
// stripped, since escapes were resolved at lex time and can no longer be a
// borrow into the original bytes.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// Start returns the inclusive byte offset where the token begins.
func (t Token) Start() uint32 { return t.Span.Start }

// Stop returns the exclusive byte offset where the token ends.
func (t Token) Stop() uint32 { return t.Span.End }

// IsAssignOp reports whether the token is one of the assignment operators
// admitted by AssignmentExpression.
func (t Token) IsAssignOp() bool {
	switch t.Kind {
	case Assign, PlusAssign, MinusAssign, StarAssign, SlashAssign, PercentAssign,
		AmpAssign, PipeAssign, CaretAssign, ShlAssign, ShrAssign, UShrAssign, CoalesceAssign:
		return true
	default:
		return false
	}
}
