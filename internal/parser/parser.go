// Package parser implements a hand-written recursive-descent parser with
// speculative execution: every production may attempt and abandon input
// freely, and only the diagnostic that got furthest into the source
// survives across all abandoned attempts.
package parser

import (
	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/source"
	"rue/internal/token"
)

// Parser walks a fixed, already-lexed token vector. Because the vector
// never mutates, "cloning a cursor view" is just saving an integer index
// (Mark) — the cheap view-cloning the backtracking design calls for. Each
// token already carries its own file-qualified span from lexing, so the
// parser itself needs no file identity of its own.
type Parser struct {
	toks     []token.Token
	pos      int
	furthest diag.FurthestSlot
}

// New creates a Parser over toks, which must end with an EOF token.
func New(toks []token.Token) *Parser {
	return &Parser{toks: toks}
}

// Mark is a saved parser position, restored by reset on a failed attempt.
type Mark int

func (p *Parser) mark() Mark { return Mark(p.pos) }

func (p *Parser) reset(m Mark) { p.pos = int(m) }

func (p *Parser) cur() token.Token { return p.toks[p.pos] }

func (p *Parser) advance() token.Token {
	t := p.toks[p.pos]
	if t.Kind != token.EOF {
		p.pos++
	}
	return t
}

func (p *Parser) here() source.Span { return p.cur().Span }

func (p *Parser) match(k token.Kind) (token.Token, bool) {
	if p.cur().Kind == k {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) matchAny(ks ...token.Kind) (token.Token, bool) {
	c := p.cur().Kind
	for _, k := range ks {
		if c == k {
			return p.advance(), true
		}
	}
	return token.Token{}, false
}

func (p *Parser) matchAssignOp() (token.Token, bool) {
	if p.cur().IsAssignOp() {
		return p.advance(), true
	}
	return token.Token{}, false
}

func (p *Parser) peekIs(k token.Kind) bool { return p.cur().Kind == k }

// expect consumes k or records a diagnostic and fails. Unlike match, a
// failed expect always contributes to the furthest-error slot: the
// caller has committed to this alternative and a missing token here is
// a genuine defect, not just "try something else".
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if t, ok := p.match(k); ok {
		return t, true
	}
	p.recordFurthest(code, p.here(), msg)
	return token.Token{}, false
}

func (p *Parser) recordFurthest(code diag.Code, sp source.Span, msg string) {
	p.furthest.Record(diag.NewParseError(code, sp, msg))
}

// Parse consumes the whole token vector into a Body. Parsing is
// all-or-nothing: on the first irrecoverable error, no tree is returned.
//
// parseBody never fails outright: its last parseStatement attempt at EOF
// runs every alternative down to their no-match fallbacks, each of which
// records into the furthest-error slot on its way out. That slot being
// populated is therefore not itself a failure signal — it only reflects
// abandoned speculative attempts. The only real failure is leftover input:
// if the cursor reached EOF, every token was consumed by some statement
// and the body is a success, whatever the speculative probes recorded.
func Parse(toks []token.Token) (*cst.Tree, *diag.ParseError) {
	p := New(toks)
	body := p.parseBody()
	if !p.peekIs(token.EOF) {
		p.recordFurthest(diag.SynUnexpectedToken, p.here(), "Unexpected token")
		return nil, p.furthest.Err()
	}
	return body, nil
}
