// Package rue is the public entry point for the Rue front end: lexing
// source bytes into tokens, parsing tokens into a concrete syntax tree,
// and rendering both diagnostics and trees for humans.
package rue

import (
	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/diagfmt"
	"rue/internal/lexer"
	"rue/internal/parser"
	"rue/internal/source"
	"rue/internal/token"
)

// Diagnostic is re-exported so callers never need to import internal/diag
// directly.
type Diagnostic = diag.Diagnostic

// Tree is re-exported so callers never need to import internal/cst directly.
type Tree = cst.Tree

// RenderOptions controls RenderError's terminal width and coloring.
type RenderOptions = diagfmt.Options

// Lex tokenizes src into a vector terminated by a single EOF token, or
// returns the diagnostic that stopped it. Lexing is all-or-nothing: on
// error the returned slice is nil. The trailing EOF token is a zero-width
// terminator, not a token drawn from source text.
func Lex(src []byte) ([]token.Token, *Diagnostic) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("<input>", src)
	return lexer.LexAll(fs.Get(id), lexer.Options{})
}

// Parse builds a concrete syntax tree from a token vector produced by Lex.
// src is accepted to mirror the source-aware public contract, but the
// parser itself only ever consumes the spans already carried by toks.
func Parse(toks []token.Token, src []byte) (*Tree, *Diagnostic) {
	_ = src
	return parser.Parse(toks)
}

// RenderError renders a diagnostic as a caret-underlined source excerpt
// against the given filename and source bytes.
func RenderError(err *Diagnostic, filename string, src []byte, opts RenderOptions) string {
	fs := source.NewFileSet()
	fs.AddVirtual(filename, src)
	return diagfmt.RenderError(err, filename, fs, opts)
}

// Stringify is the debug pretty-printer for a Tree or a raw token vector.
func Stringify(v any) string {
	return diagfmt.Stringify(v)
}
