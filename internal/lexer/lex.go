package lexer

import (
	"rue/internal/diag"
	"rue/internal/source"
	"rue/internal/token"
)

// LexAll drains file into a token vector terminated by a single EOF
// token, or returns the diagnostic that stopped it. Since lexing is
// all-or-nothing, a non-nil error means the returned slice is nil.
//
// The trailing EOF token is a terminator the parser's cursor relies on,
// not a token drawn from source text: it carries a zero-width span and is
// exempt from the token span invariant that governs every other kind.
func LexAll(file *source.File, opts Options) ([]token.Token, *diag.Diagnostic) {
	lx := New(file, opts)
	var toks []token.Token
	for {
		t := lx.Next()
		toks = append(toks, t)
		if t.Kind == token.EOF {
			break
		}
	}
	if err := lx.Err(); err != nil {
		return nil, err
	}
	return toks, nil
}
