package lexer

import (
	"testing"

	"rue/internal/source"
	"rue/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *Lexer) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("<test>", []byte(src))
	file := fs.Get(id)
	lx := New(file, Options{})
	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			break
		}
	}
	return toks, lx
}

func kinds(toks []token.Token) []token.Kind {
	ks := make([]token.Kind, len(toks))
	for i, t := range toks {
		ks[i] = t.Kind
	}
	return ks
}

func TestSkipTriviaWhitespaceAndComments(t *testing.T) {
	toks, lx := lexAll(t, "  x // trailing\n /* block */ y  ")
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
	got := kinds(toks)
	want := []token.Kind{token.Identifier, token.Identifier, token.EOF}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestIdentifierUnderscoreSplit(t *testing.T) {
	toks, lx := lexAll(t, "a_ __ a_b")
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
	want := []struct {
		kind token.Kind
		text string
	}{
		{token.Identifier, "a"},
		{token.Underscore, "_"},
		{token.Underscore, "_"},
		{token.Underscore, "_"},
		{token.Identifier, "a_b"},
		{token.EOF, ""},
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens %+v, want %d", len(toks), toks, len(want))
	}
	for i, w := range want {
		if toks[i].Kind != w.kind || toks[i].Text != w.text {
			t.Fatalf("token %d: got %v %q, want %v %q", i, toks[i].Kind, toks[i].Text, w.kind, w.text)
		}
	}
}

func TestKeywordsCaseSensitive(t *testing.T) {
	toks, lx := lexAll(t, "if If IF")
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
	want := []token.Kind{token.KwIf, token.Identifier, token.Identifier, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestOperatorLongestMatch(t *testing.T) {
	cases := []struct {
		src  string
		want token.Kind
	}{
		{">>>=", token.UShrAssign},
		{">>>", token.UShr},
		{">>=", token.ShrAssign},
		{">>", token.Shr},
		{">=", token.GtEq},
		{">", token.Gt},
		{"<<=", token.ShlAssign},
		{"<<", token.Shl},
		{"<=", token.LtEq},
		{"<", token.Lt},
		{"...", token.DotDotDot},
		{"..", token.DotDot},
		{".", token.Dot},
		{"?:", token.QuestionColon},
		{"?.", token.QuestionDot},
		{"?", token.Question},
		{"?=", token.CoalesceAssign},
	}
	for _, c := range cases {
		toks, lx := lexAll(t, c.src)
		if lx.Err() != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, lx.Err())
		}
		if len(toks) != 2 || toks[0].Kind != c.want {
			t.Fatalf("%q: got %v, want single %v token", c.src, kinds(toks), c.want)
		}
	}
}

func TestNumberForms(t *testing.T) {
	cases := []struct {
		src  string
		kind token.Kind
	}{
		{"0", token.IntLiteral},
		{"123", token.IntLiteral},
		{"1e10", token.IntLiteral},
		{"1.5", token.FloatLiteral},
		{"1.5e-3", token.FloatLiteral},
		{"0x1F", token.HexadecimalLiteral},
		{"0o17", token.OctalLiteral},
		{"0b101", token.BinaryLiteral},
	}
	for _, c := range cases {
		toks, lx := lexAll(t, c.src)
		if lx.Err() != nil {
			t.Fatalf("%q: unexpected error: %v", c.src, lx.Err())
		}
		if toks[0].Kind != c.kind {
			t.Fatalf("%q: got %v, want %v", c.src, toks[0].Kind, c.kind)
		}
	}
}

func TestNumberTrailingDotWithoutDigitIsNotFloat(t *testing.T) {
	toks, lx := lexAll(t, "5.")
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
	want := []token.Kind{token.IntLiteral, token.Dot, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
}

func TestStringEscapes(t *testing.T) {
	toks, lx := lexAll(t, `"hi\n\x41"`)
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
	if toks[0].Kind != token.StringLiteral || toks[0].Text != "hi\nA" {
		t.Fatalf("got %q, want %q", toks[0].Text, "hi\nA")
	}
}

func TestStringHexEscapeLowercaseIsError(t *testing.T) {
	_, lx := lexAll(t, `"\xff"`)
	if lx.Err() == nil {
		t.Fatalf("expected lex error for lowercase hex escape")
	}
}

func TestStringUnicodeEscapeBraced(t *testing.T) {
	toks, lx := lexAll(t, `"\u{1F600}"`)
	if lx.Err() != nil {
		t.Fatalf("unexpected error: %v", lx.Err())
	}
	r := []rune(toks[0].Text)
	if len(r) != 1 || r[0] != 0x1F600 {
		t.Fatalf("got %q", toks[0].Text)
	}
}

func TestStringUnicodeEscapeOutOfRange(t *testing.T) {
	_, lx := lexAll(t, `"\u{110000}"`)
	if lx.Err() == nil {
		t.Fatalf("expected out-of-range lex error")
	}
}

func TestUnterminatedString(t *testing.T) {
	_, lx := lexAll(t, `"abc`)
	if lx.Err() == nil {
		t.Fatalf("expected unterminated string error")
	}
}

func TestUnknownCharacter(t *testing.T) {
	_, lx := lexAll(t, "$")
	if lx.Err() == nil {
		t.Fatalf("expected unexpected character error")
	}
}
