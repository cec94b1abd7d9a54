package lexer

import (
	"rue/internal/diag"
	"rue/internal/source"
	"rue/internal/token"
)

// fail records the first lexical error encountered (later ones are
// ignored: lexing is all-or-nothing and stops at the first offending
// byte) and returns an Invalid token spanning the offending region.
func (lx *Lexer) fail(code diag.Code, sp source.Span, message, content string) token.Token {
	if lx.err == nil {
		lx.err = diag.NewLexError(code, sp, message, content)
	}
	lx.report(uint16(code), sp.Start, sp.End, message, content)
	return token.Token{Kind: token.Invalid, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// Err returns the first lexical error recorded, or nil.
func (lx *Lexer) Err() *diag.Diagnostic {
	return lx.err
}
