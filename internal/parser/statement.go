package parser

import (
	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/token"
)

// parseBody consumes statements greedily; it never fails, since zero
// statements is a valid Body (used both at the top level and as the
// fallback arm of a match).
func (p *Parser) parseBody() *cst.Tree {
	start := p.here().Start
	var children []cst.Node
	for {
		stmt, ok := p.parseStatement()
		if !ok {
			break
		}
		children = append(children, stmt)
	}
	stop := start
	if len(children) > 0 {
		stop = children[len(children)-1].Stop()
	}
	return &cst.Tree{Kind: cst.Body, Start: start, Stop: stop, Children: children}
}

// parseStatement dispatches to the first alternative that matches. It
// never wraps the result in a "Statement" node of its own — Body's
// children are the concrete statement kinds directly.
func (p *Parser) parseStatement() (cst.Node, bool) {
	if n, ok := p.parseLabeled(); ok {
		return n, true
	}
	if n, ok := p.parseField(); ok {
		return n, true
	}
	if n, ok := p.parseExprStatement(); ok {
		return n, true
	}
	if n, ok := p.parseDef(); ok {
		return n, true
	}
	if n, ok := p.parseIf(); ok {
		return n, true
	}
	if n, ok := p.parseWhile(); ok {
		return n, true
	}
	if n, ok := p.parseMatch(); ok {
		return n, true
	}
	if n, ok := p.parseDo(); ok {
		return n, true
	}
	if n, ok := p.parseFor(); ok {
		return n, true
	}
	if n, ok := p.parseReturn(); ok {
		return n, true
	}
	if n, ok := p.parseContinue(); ok {
		return n, true
	}
	if n, ok := p.parseBreak(); ok {
		return n, true
	}
	if n, ok := p.parseBlock(); ok {
		return n, true
	}
	if n, ok := p.parseEmpty(); ok {
		return n, true
	}
	return cst.Node{}, false
}

func (p *Parser) parseLabeled() (cst.Node, bool) {
	m := p.mark()
	identTok, ok := p.match(token.Identifier)
	if !ok {
		return cst.Node{}, false
	}
	colonTok, ok := p.match(token.Colon)
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	stmt, ok := p.parseStatement()
	if !ok {
		p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Labeled,
		Start:    identTok.Start(),
		Stop:     stmt.Stop(),
		Children: []cst.Node{cst.Leaf(identTok), cst.Leaf(colonTok), stmt},
	}), true
}

func (p *Parser) parseField() (cst.Node, bool) {
	m := p.mark()
	kwTok, ok := p.matchAny(token.KwVal, token.KwVar)
	if !ok {
		return cst.Node{}, false
	}
	identTok, ok := p.expect(token.Identifier, diag.SynExpectedIdentifier, "Expected identifier")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(kwTok), cst.Leaf(identTok)}
	if colonTok, matched := p.match(token.Colon); matched {
		typ, ok := p.parseUnionType()
		if !ok {
			p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected type")
			p.reset(m)
			return cst.Node{}, false
		}
		children = append(children, cst.Leaf(colonTok), typ)
	}
	if assignTok, matched := p.match(token.Assign); matched {
		val, ok := p.parseAssignment()
		if !ok {
			p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
			p.reset(m)
			return cst.Node{}, false
		}
		children = append(children, cst.Leaf(assignTok), val)
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectedToken, "Expected ';'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(semiTok))
	return cst.Interior(&cst.Tree{Kind: cst.Field, Start: kwTok.Start(), Stop: semiTok.Stop(), Children: children}), true
}

func (p *Parser) parseExprStatement() (cst.Node, bool) {
	m := p.mark()
	expr, ok := p.parseExpressionSequence()
	if !ok {
		return cst.Node{}, false
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectedToken, "Expected ';'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Expression,
		Start:    expr.Start(),
		Stop:     semiTok.Stop(),
		Children: []cst.Node{expr, cst.Leaf(semiTok)},
	}), true
}

func (p *Parser) parseDef() (cst.Node, bool) {
	m := p.mark()
	defTok, ok := p.match(token.KwDef)
	if !ok {
		return cst.Node{}, false
	}
	identTok, ok := p.expect(token.Identifier, diag.SynExpectedIdentifier, "Expected identifier")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	params, ok := p.parseParameters()
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(defTok), cst.Leaf(identTok), params}
	if colonTok, matched := p.match(token.Colon); matched {
		typ, ok := p.parseUnaryType()
		if !ok {
			p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected type")
			p.reset(m)
			return cst.Node{}, false
		}
		children = append(children, cst.Leaf(colonTok), typ)
	}
	body, ok := p.parseBlock()
	if !ok {
		body, ok = p.parseEmpty()
	}
	if !ok {
		p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected '{' or ';'")
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, body)
	return cst.Interior(&cst.Tree{Kind: cst.Def, Start: defTok.Start(), Stop: body.Stop(), Children: children}), true
}

func (p *Parser) parseParameters() (cst.Node, bool) {
	openTok, ok := p.expect(token.OpenParenthesis, diag.SynExpectedToken, "Expected '('")
	if !ok {
		return cst.Node{}, false
	}
	m := p.mark()
	children := []cst.Node{cst.Leaf(openTok)}
	if !p.peekIs(token.CloseParenthesis) {
		for {
			param, ok := p.parseParameter()
			if !ok {
				p.reset(m)
				return cst.Node{}, false
			}
			children = append(children, param)
			commaTok, matched := p.match(token.Comma)
			if !matched {
				break
			}
			children = append(children, cst.Leaf(commaTok))
		}
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(closeTok))
	return cst.Interior(&cst.Tree{Kind: cst.Parameters, Start: openTok.Start(), Stop: closeTok.Stop(), Children: children}), true
}

func (p *Parser) parseParameter() (cst.Node, bool) {
	m := p.mark()
	if dotsTok, ok := p.match(token.DotDotDot); ok {
		return cst.Interior(&cst.Tree{
			Kind:     cst.Parameter,
			Start:    dotsTok.Start(),
			Stop:     dotsTok.Stop(),
			Children: []cst.Node{cst.Leaf(dotsTok)},
		}), true
	}
	identTok, ok := p.match(token.Identifier)
	if !ok {
		p.recordFurthest(diag.SynExpectedIdentifier, p.here(), "Expected identifier")
		return cst.Node{}, false
	}
	colonTok, ok := p.expect(token.Colon, diag.SynExpectedToken, "Expected ':'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	typ, ok := p.parseUnaryType()
	if !ok {
		p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected type")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Parameter,
		Start:    identTok.Start(),
		Stop:     typ.Stop(),
		Children: []cst.Node{cst.Leaf(identTok), cst.Leaf(colonTok), typ},
	}), true
}

func (p *Parser) parseBlock() (cst.Node, bool) {
	m := p.mark()
	openTok, ok := p.match(token.OpenBrace)
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(openTok)}
	for {
		stmt, ok := p.parseStatement()
		if !ok {
			break
		}
		children = append(children, stmt)
	}
	closeTok, ok := p.expect(token.CloseBrace, diag.SynExpectedToken, "Expected '}'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(closeTok))
	return cst.Interior(&cst.Tree{Kind: cst.Block, Start: openTok.Start(), Stop: closeTok.Stop(), Children: children}), true
}

func (p *Parser) parseIf() (cst.Node, bool) {
	m := p.mark()
	ifTok, ok := p.match(token.KwIf)
	if !ok {
		return cst.Node{}, false
	}
	openTok, ok := p.expect(token.OpenParenthesis, diag.SynExpectedToken, "Expected '('")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	cond, ok := p.parseExpressionSequence()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	thenStmt, ok := p.parseStatement()
	if !ok {
		p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
		p.reset(m)
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(ifTok), cst.Leaf(openTok), cond, cst.Leaf(closeTok), thenStmt}
	stop := thenStmt.Stop()
	// The following else, if present, is consumed here before this call
	// returns — the nested parseStatement above already greedily bound
	// any 'else' belonging to an inner if, so a dangling else attaches to
	// the innermost enclosing if by construction.
	if elseTok, matched := p.match(token.KwElse); matched {
		elseStmt, ok := p.parseStatement()
		if !ok {
			p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
			p.reset(m)
			return cst.Node{}, false
		}
		children = append(children, cst.Leaf(elseTok), elseStmt)
		stop = elseStmt.Stop()
	}
	return cst.Interior(&cst.Tree{Kind: cst.If, Start: ifTok.Start(), Stop: stop, Children: children}), true
}

func (p *Parser) parseWhile() (cst.Node, bool) {
	m := p.mark()
	whileTok, ok := p.match(token.KwWhile)
	if !ok {
		return cst.Node{}, false
	}
	openTok, ok := p.expect(token.OpenParenthesis, diag.SynExpectedToken, "Expected '('")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	cond, ok := p.parseExpressionSequence()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	body, ok := p.parseStatement()
	if !ok {
		p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:  cst.While,
		Start: whileTok.Start(), Stop: body.Stop(),
		Children: []cst.Node{cst.Leaf(whileTok), cst.Leaf(openTok), cond, cst.Leaf(closeTok), body},
	}), true
}

func (p *Parser) parseDo() (cst.Node, bool) {
	m := p.mark()
	doTok, ok := p.match(token.KwDo)
	if !ok {
		return cst.Node{}, false
	}
	body, ok := p.parseStatement()
	if !ok {
		p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
		p.reset(m)
		return cst.Node{}, false
	}
	whileTok, ok := p.expect(token.KwWhile, diag.SynExpectedToken, "Expected 'while'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	openTok, ok := p.expect(token.OpenParenthesis, diag.SynExpectedToken, "Expected '('")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	cond, ok := p.parseExpressionSequence()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:  cst.Do,
		Start: doTok.Start(), Stop: closeTok.Stop(),
		Children: []cst.Node{cst.Leaf(doTok), body, cst.Leaf(whileTok), cst.Leaf(openTok), cond, cst.Leaf(closeTok)},
	}), true
}

func (p *Parser) parseFor() (cst.Node, bool) {
	m := p.mark()
	forTok, ok := p.match(token.KwFor)
	if !ok {
		return cst.Node{}, false
	}
	openTok, ok := p.expect(token.OpenParenthesis, diag.SynExpectedToken, "Expected '('")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	identTok, ok := p.expect(token.Identifier, diag.SynExpectedIdentifier, "Expected identifier")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	inTok, ok := p.expect(token.KwIn, diag.SynExpectedToken, "Expected 'in'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	iter, ok := p.parseAssignment()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	body, ok := p.parseStatement()
	if !ok {
		p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:  cst.For,
		Start: forTok.Start(), Stop: body.Stop(),
		Children: []cst.Node{cst.Leaf(forTok), cst.Leaf(openTok), cst.Leaf(identTok), cst.Leaf(inTok), iter, cst.Leaf(closeTok), body},
	}), true
}

func (p *Parser) parseReturn() (cst.Node, bool) {
	m := p.mark()
	retTok, ok := p.match(token.KwReturn)
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(retTok)}
	if !p.peekIs(token.Semicolon) {
		if expr, ok := p.parseExpressionSequence(); ok {
			children = append(children, expr)
		}
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectedToken, "Expected ';'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(semiTok))
	return cst.Interior(&cst.Tree{Kind: cst.Return, Start: retTok.Start(), Stop: semiTok.Stop(), Children: children}), true
}

func (p *Parser) parseContinue() (cst.Node, bool) {
	m := p.mark()
	kwTok, ok := p.match(token.KwContinue)
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(kwTok)}
	if identTok, matched := p.match(token.Identifier); matched {
		children = append(children, cst.Leaf(identTok))
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectedToken, "Expected ';'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(semiTok))
	return cst.Interior(&cst.Tree{Kind: cst.Continue, Start: kwTok.Start(), Stop: semiTok.Stop(), Children: children}), true
}

func (p *Parser) parseBreak() (cst.Node, bool) {
	m := p.mark()
	kwTok, ok := p.match(token.KwBreak)
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(kwTok)}
	if identTok, matched := p.match(token.Identifier); matched {
		children = append(children, cst.Leaf(identTok))
	}
	semiTok, ok := p.expect(token.Semicolon, diag.SynExpectedToken, "Expected ';'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(semiTok))
	return cst.Interior(&cst.Tree{Kind: cst.Break, Start: kwTok.Start(), Stop: semiTok.Stop(), Children: children}), true
}

func (p *Parser) parseEmpty() (cst.Node, bool) {
	semiTok, ok := p.match(token.Semicolon)
	if !ok {
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Empty,
		Start:    semiTok.Start(),
		Stop:     semiTok.Stop(),
		Children: []cst.Node{cst.Leaf(semiTok)},
	}), true
}

// parseMatch implements the relaxed reading of the grammar: zero or more
// MatchOptions followed by an optional fallback Body, rather than
// requiring the fallback to be distinguished up front.
func (p *Parser) parseMatch() (cst.Node, bool) {
	m := p.mark()
	matchTok, ok := p.match(token.KwMatch)
	if !ok {
		return cst.Node{}, false
	}
	openTok, ok := p.expect(token.OpenParenthesis, diag.SynExpectedToken, "Expected '('")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	subject, ok := p.parseExpressionSequence()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	braceTok, ok := p.expect(token.OpenBrace, diag.SynExpectedToken, "Expected '{'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(matchTok), cst.Leaf(openTok), subject, cst.Leaf(closeTok), cst.Leaf(braceTok)}
	for {
		opt, ok := p.parseMatchOption()
		if !ok {
			break
		}
		children = append(children, opt)
	}
	if !p.peekIs(token.CloseBrace) {
		fallback := p.parseBody()
		if len(fallback.Children) > 0 {
			children = append(children, cst.Interior(fallback))
		}
	}
	closeBraceTok, ok := p.expect(token.CloseBrace, diag.SynExpectedToken, "Expected '}'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(closeBraceTok))
	return cst.Interior(&cst.Tree{Kind: cst.Match, Start: matchTok.Start(), Stop: closeBraceTok.Stop(), Children: children}), true
}

func (p *Parser) parseMatchOption() (cst.Node, bool) {
	m := p.mark()
	cond, ok := p.parseAssignment()
	if !ok {
		return cst.Node{}, false
	}
	arrowTok, ok := p.match(token.FatArrow)
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	stmt, ok := p.parseStatement()
	if !ok {
		p.recordFurthest(diag.SynExpectedStatement, p.here(), "Expected statement")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.MatchOption,
		Start:    cond.Start(),
		Stop:     stmt.Stop(),
		Children: []cst.Node{cond, cst.Leaf(arrowTok), stmt},
	}), true
}
