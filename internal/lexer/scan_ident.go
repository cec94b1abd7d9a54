package lexer

import (
	"rue/internal/token"
)

// scanIdentOrKeyword scans an identifier matching [A-Za-z](?:_?[A-Za-z0-9]+)*
// and looks it up against the keyword table. Keywords are case-sensitive:
// only the lowercase spelling is recognized, so "If" or "IF" lexes as
// Identifier, not KwIf. The repeated group means a single trailing or
// doubled underscore is not absorbed into the identifier: "a_" lexes as
// Identifier "a" followed by Underscore, since the group requires at
// least one alphanumeric after its optional leading underscore.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()

	if !isIdentStartByte(lx.cursor.Peek()) {
		return lx.scanOperatorOrPunct()
	}
	lx.cursor.Bump()

	for {
		mark := lx.cursor.Mark()
		if lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
		n := 0
		for isAlnum(lx.cursor.Peek()) {
			lx.cursor.Bump()
			n++
		}
		if n == 0 {
			lx.cursor.Reset(mark)
			break
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Identifier, Span: sp, Text: text}
}
