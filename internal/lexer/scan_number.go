package lexer

import (
	"rue/internal/diag"
	"rue/internal/token"
)

// scanNumber scans a numeric literal. The four bases are tried in a fixed
// order — hex, octal, binary, then decimal — since only a "0[xXoObB]"
// prefix can commit to one of the first three; anything else falls
// through to a decimal float or integer. There are no digit-group
// separators in any of the four forms.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '0' {
		switch b1 {
		case 'x', 'X':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadix(start, token.HexadecimalLiteral, isHex)
		case 'o', 'O':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadix(start, token.OctalLiteral, isOctal)
		case 'b', 'B':
			lx.cursor.Bump()
			lx.cursor.Bump()
			return lx.finishRadix(start, token.BinaryLiteral, isBinary)
		}
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	kind := token.IntLiteral
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		kind = token.FloatLiteral
		lx.cursor.Bump() // '.'
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	lx.scanOptionalExponent()

	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// finishRadix consumes one or more digits valid in the given radix after a
// "0x"/"0o"/"0b" prefix has already been consumed. An empty digit run is a
// lex error: the prefix alone is not a valid literal.
func (lx *Lexer) finishRadix(start Mark, kind token.Kind, digit func(byte) bool) token.Token {
	n := 0
	for digit(lx.cursor.Peek()) {
		lx.cursor.Bump()
		n++
	}
	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	if n == 0 {
		return lx.fail(diag.LexBadNumber, sp, "expected digit after numeric prefix", text)
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanOptionalExponent consumes a "[eE][+-]?[0-9]+" suffix if one is
// present, leaving the cursor untouched if 'e'/'E' isn't followed by a
// valid exponent (so "5e" lexes as IntLiteral "5" followed by an
// identifier "e").
func (lx *Lexer) scanOptionalExponent() {
	mark := lx.cursor.Mark()
	if lx.cursor.Peek() != 'e' && lx.cursor.Peek() != 'E' {
		return
	}
	lx.cursor.Bump()
	if lx.cursor.Peek() == '+' || lx.cursor.Peek() == '-' {
		lx.cursor.Bump()
	}
	if !isDec(lx.cursor.Peek()) {
		lx.cursor.Reset(mark)
		return
	}
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
