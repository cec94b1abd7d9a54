package lexer

import (
	"rue/internal/diag"
	"rue/internal/token"
)

// tryLit consumes the literal s if it is a prefix of the remaining input.
func (lx *Lexer) tryLit(s string) bool {
	end := lx.cursor.Off + uint32(len(s))
	if end > lx.cursor.Limit || string(lx.file.Content[lx.cursor.Off:end]) != s {
		return false
	}
	lx.cursor.Off = end
	return true
}

// operator/punctuator table ordering is semantically load-bearing: longer
// lexemes are tried before any shorter lexeme that is one of their
// prefixes, so this list is grouped by descending length. Within a
// length group order is irrelevant, since distinct lexemes of equal
// length never share a prefix relationship.
var opTable = []struct {
	lit  string
	kind token.Kind
}{
	{">>>=", token.UShrAssign},

	{"<<=", token.ShlAssign},
	{">>>", token.UShr},
	{"...", token.DotDotDot},

	{">>=", token.ShrAssign},
	{"<<", token.Shl},
	{">>", token.Shr},
	{"<=", token.LtEq},
	{">=", token.GtEq},
	{"==", token.EqEq},
	{"!=", token.BangEq},
	{"+=", token.PlusAssign},
	{"-=", token.MinusAssign},
	{"*=", token.StarAssign},
	{"/=", token.SlashAssign},
	{"%=", token.PercentAssign},
	{"&=", token.AmpAssign},
	{"|=", token.PipeAssign},
	{"^=", token.CaretAssign},
	{"?=", token.CoalesceAssign},
	{"=>", token.FatArrow},
	{"?:", token.QuestionColon},
	{"?.", token.QuestionDot},
	{"..", token.DotDot},

	{"<", token.Lt},
	{">", token.Gt},
	{"=", token.Assign},
	{"+", token.Plus},
	{"-", token.Minus},
	{"*", token.Star},
	{"/", token.Slash},
	{"%", token.Percent},
	{"&", token.Amp},
	{"|", token.Pipe},
	{"^", token.Caret},
	{"~", token.Tilde},
	{"?", token.Question},
	{":", token.Colon},
	{";", token.Semicolon},
	{",", token.Comma},
	{".", token.Dot},
	{"(", token.OpenParenthesis},
	{")", token.CloseParenthesis},
	{"[", token.OpenBracket},
	{"]", token.CloseBracket},
	{"{", token.OpenBrace},
	{"}", token.CloseBrace},
	{"_", token.Underscore},
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	for _, op := range opTable {
		if lx.tryLit(op.lit) {
			sp := lx.cursor.SpanFrom(start)
			return token.Token{Kind: op.kind, Span: sp, Text: op.lit}
		}
	}

	b := lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return lx.fail(diag.LexUnexpectedCharacter, sp, "unexpected character", string(b))
}
