package parser

import (
	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/token"
)

// parseBinaryLevel implements a single left-associative precedence tier:
// next ( op next )*. A tier that never matches its own operator collapses
// to whatever next() produced — no wrapper node is introduced unless the
// tier actually contributes structure.
func (p *Parser) parseBinaryLevel(kind cst.Kind, next func() (cst.Node, bool), ops ...token.Kind) (cst.Node, bool) {
	m := p.mark()
	left, ok := next()
	if !ok {
		return cst.Node{}, false
	}
	for {
		opTok, matched := p.matchAny(ops...)
		if !matched {
			break
		}
		right, ok := next()
		if !ok {
			p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
			p.reset(m)
			return cst.Node{}, false
		}
		left = cst.Interior(&cst.Tree{
			Kind:     kind,
			Start:    left.Start(),
			Stop:     right.Stop(),
			Children: []cst.Node{left, cst.Leaf(opTok), right},
		})
	}
	return left, true
}

func (p *Parser) parseExpressionSequence() (cst.Node, bool) {
	m := p.mark()
	first, ok := p.parseAssignment()
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{first}
	matchedAny := false
	for {
		commaTok, matched := p.match(token.Comma)
		if !matched {
			break
		}
		next, ok := p.parseAssignment()
		if !ok {
			p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
			p.reset(m)
			return cst.Node{}, false
		}
		children = append(children, cst.Leaf(commaTok), next)
		matchedAny = true
	}
	if !matchedAny {
		return first, true
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.ExpressionSequence,
		Start:    first.Start(),
		Stop:     children[len(children)-1].Stop(),
		Children: children,
	}), true
}

func (p *Parser) parseAssignment() (cst.Node, bool) {
	m := p.mark()
	left, ok := p.parseTernary()
	if !ok {
		return cst.Node{}, false
	}
	opTok, matched := p.matchAssignOp()
	if !matched {
		return left, true
	}
	right, ok := p.parseTernary()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Assignment,
		Start:    left.Start(),
		Stop:     right.Stop(),
		Children: []cst.Node{left, cst.Leaf(opTok), right},
	}), true
}

func (p *Parser) parseTernary() (cst.Node, bool) {
	m := p.mark()
	cond, ok := p.parseCoalesce()
	if !ok {
		return cst.Node{}, false
	}
	qTok, matched := p.match(token.Question)
	if !matched {
		return cond, true
	}
	thenExpr, ok := p.parseAssignment()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	colonTok, ok := p.expect(token.Colon, diag.SynExpectedToken, "Expected ':'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	elseExpr, ok := p.parseAssignment()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Ternary,
		Start:    cond.Start(),
		Stop:     elseExpr.Stop(),
		Children: []cst.Node{cond, cst.Leaf(qTok), thenExpr, cst.Leaf(colonTok), elseExpr},
	}), true
}

func (p *Parser) parseCoalesce() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.Coalesce, p.parseLogicalOr, token.QuestionColon)
}

func (p *Parser) parseLogicalOr() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.LogicalOr, p.parseLogicalAnd, token.KwOr)
}

func (p *Parser) parseLogicalAnd() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.LogicalAnd, p.parseBitwiseOr, token.KwAnd)
}

func (p *Parser) parseBitwiseOr() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.BitwiseOr, p.parseBitwiseXor, token.Pipe)
}

func (p *Parser) parseBitwiseXor() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.BitwiseXor, p.parseBitwiseAnd, token.Caret)
}

func (p *Parser) parseBitwiseAnd() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.BitwiseAnd, p.parseEquality, token.Amp)
}

func (p *Parser) parseEquality() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.Equality, p.parseComparison, token.EqEq, token.BangEq)
}

// parseComparison handles two distinct right-hand shapes at the same
// precedence tier: a Shift operand for the relational/'in' operators, or a
// UnaryType operand for 'as'/'is'.
func (p *Parser) parseComparison() (cst.Node, bool) {
	m := p.mark()
	left, ok := p.parseShift()
	if !ok {
		return cst.Node{}, false
	}
	for {
		if opTok, matched := p.matchAny(token.LtEq, token.GtEq, token.Lt, token.Gt, token.KwIn); matched {
			right, ok := p.parseShift()
			if !ok {
				p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
				p.reset(m)
				return cst.Node{}, false
			}
			left = cst.Interior(&cst.Tree{
				Kind:     cst.Comparison,
				Start:    left.Start(),
				Stop:     right.Stop(),
				Children: []cst.Node{left, cst.Leaf(opTok), right},
			})
			continue
		}
		if opTok, matched := p.matchAny(token.KwAs, token.KwIs); matched {
			typ, ok := p.parseUnaryType()
			if !ok {
				p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected type")
				p.reset(m)
				return cst.Node{}, false
			}
			left = cst.Interior(&cst.Tree{
				Kind:     cst.Comparison,
				Start:    left.Start(),
				Stop:     typ.Stop(),
				Children: []cst.Node{left, cst.Leaf(opTok), typ},
			})
			continue
		}
		break
	}
	return left, true
}

func (p *Parser) parseShift() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.Shift, p.parseTerm, token.Shl, token.Shr, token.UShr)
}

func (p *Parser) parseTerm() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.Term, p.parseFactor, token.Plus, token.Minus)
}

func (p *Parser) parseFactor() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.Factor, p.parseRange, token.Star, token.Slash, token.Percent)
}

// parseRange implements Unary? ( '..' | '...' ) Unary? — a single optional
// step, not a repetition, where at least one of the left operand, the
// operator, or the right operand must be present.
func (p *Parser) parseRange() (cst.Node, bool) {
	m := p.mark()
	left, hasLeft := p.parseUnary()
	opTok, hasOp := p.matchAny(token.DotDot, token.DotDotDot)
	if !hasOp {
		if hasLeft {
			return left, true
		}
		p.recordFurthest(diag.SynEmptyRange, p.here(), "Expected expression")
		p.reset(m)
		return cst.Node{}, false
	}
	right, hasRight := p.parseUnary()
	children := make([]cst.Node, 0, 3)
	start := opTok.Start()
	stop := opTok.Stop()
	if hasLeft {
		children = append(children, left)
		start = left.Start()
	}
	children = append(children, cst.Leaf(opTok))
	if hasRight {
		children = append(children, right)
		stop = right.Stop()
	}
	return cst.Interior(&cst.Tree{Kind: cst.Range, Start: start, Stop: stop, Children: children}), true
}

// parseUnary handles the zero-or-more prefix operator chain via right
// recursion: each matched operator wraps one more Unary layer around the
// remaining chain.
func (p *Parser) parseUnary() (cst.Node, bool) {
	m := p.mark()
	opTok, matched := p.matchAny(token.KwNot, token.Tilde, token.Plus, token.Minus, token.Star, token.Amp)
	if !matched {
		return p.parseReference()
	}
	inner, ok := p.parseUnary()
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Unary,
		Start:    opTok.Start(),
		Stop:     inner.Stop(),
		Children: []cst.Node{cst.Leaf(opTok), inner},
	}), true
}

// parseReference chains LiteralValue against zero or more postfix suffixes:
// PropertyAccess, OptionalAccess, ArrayIndex, or Call.
func (p *Parser) parseReference() (cst.Node, bool) {
	primary, ok := p.parseLiteralValue()
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{primary}
	matchedAny := false
	for {
		suffix, ok := p.tryPropertyAccess()
		if !ok {
			suffix, ok = p.tryOptionalAccess()
		}
		if !ok {
			suffix, ok = p.tryArrayIndex()
		}
		if !ok {
			suffix, ok = p.tryCall()
		}
		if !ok {
			break
		}
		children = append(children, suffix)
		matchedAny = true
	}
	if !matchedAny {
		return primary, true
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.Reference,
		Start:    primary.Start(),
		Stop:     children[len(children)-1].Stop(),
		Children: children,
	}), true
}

func (p *Parser) tryPropertyAccess() (cst.Node, bool) {
	m := p.mark()
	dotTok, ok := p.match(token.Dot)
	if !ok {
		return cst.Node{}, false
	}
	identTok, ok := p.expect(token.Identifier, diag.SynExpectedIdentifier, "Expected identifier")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.PropertyAccess,
		Start:    dotTok.Start(),
		Stop:     identTok.Stop(),
		Children: []cst.Node{cst.Leaf(dotTok), cst.Leaf(identTok)},
	}), true
}

// tryOptionalAccess covers '?.' Identifier, '?.' ArrayIndex and '?.' Call;
// the last two fold the '?.' token onto the front of an ordinary
// ArrayIndex/MethodCall node rather than inventing new kinds for them.
func (p *Parser) tryOptionalAccess() (cst.Node, bool) {
	m := p.mark()
	qdotTok, ok := p.match(token.QuestionDot)
	if !ok {
		return cst.Node{}, false
	}
	if identTok, ok := p.match(token.Identifier); ok {
		return cst.Interior(&cst.Tree{
			Kind:     cst.OptionalPropertyAccess,
			Start:    qdotTok.Start(),
			Stop:     identTok.Stop(),
			Children: []cst.Node{cst.Leaf(qdotTok), cst.Leaf(identTok)},
		}), true
	}
	if openTok, ok := p.match(token.OpenBracket); ok {
		tree, ok := p.parseArrayIndexTail(openTok)
		if !ok {
			p.reset(m)
			return cst.Node{}, false
		}
		tree.Children = append([]cst.Node{cst.Leaf(qdotTok)}, tree.Children...)
		tree.Start = qdotTok.Start()
		return cst.Interior(tree), true
	}
	if openTok, ok := p.match(token.OpenParenthesis); ok {
		tree, ok := p.parseCallTail(openTok)
		if !ok {
			p.reset(m)
			return cst.Node{}, false
		}
		tree.Children = append([]cst.Node{cst.Leaf(qdotTok)}, tree.Children...)
		tree.Start = qdotTok.Start()
		return cst.Interior(tree), true
	}
	p.reset(m)
	return cst.Node{}, false
}

func (p *Parser) tryArrayIndex() (cst.Node, bool) {
	m := p.mark()
	openTok, ok := p.match(token.OpenBracket)
	if !ok {
		return cst.Node{}, false
	}
	tree, ok := p.parseArrayIndexTail(openTok)
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(tree), true
}

func (p *Parser) parseArrayIndexTail(openTok token.Token) (*cst.Tree, bool) {
	idx, ok := p.parseExpressionSequence()
	if !ok {
		p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
		return nil, false
	}
	closeTok, ok := p.expect(token.CloseBracket, diag.SynExpectedToken, "Expected ']'")
	if !ok {
		return nil, false
	}
	return &cst.Tree{
		Kind:     cst.ArrayIndex,
		Start:    openTok.Start(),
		Stop:     closeTok.Stop(),
		Children: []cst.Node{cst.Leaf(openTok), idx, cst.Leaf(closeTok)},
	}, true
}

func (p *Parser) tryCall() (cst.Node, bool) {
	m := p.mark()
	openTok, ok := p.match(token.OpenParenthesis)
	if !ok {
		return cst.Node{}, false
	}
	tree, ok := p.parseCallTail(openTok)
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(tree), true
}

func (p *Parser) parseCallTail(openTok token.Token) (*cst.Tree, bool) {
	children := []cst.Node{cst.Leaf(openTok)}
	if !p.peekIs(token.CloseParenthesis) {
		for {
			arg, ok := p.parseAssignment()
			if !ok {
				p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
				return nil, false
			}
			children = append(children, cst.Interior(&cst.Tree{
				Kind:     cst.MethodCallArgument,
				Start:    arg.Start(),
				Stop:     arg.Stop(),
				Children: []cst.Node{arg},
			}))
			commaTok, matched := p.match(token.Comma)
			if !matched {
				break
			}
			children = append(children, cst.Leaf(commaTok))
		}
	}
	closeTok, ok := p.expect(token.CloseParenthesis, diag.SynExpectedToken, "Expected ')'")
	if !ok {
		return nil, false
	}
	children = append(children, cst.Leaf(closeTok))
	return &cst.Tree{Kind: cst.MethodCall, Start: openTok.Start(), Stop: closeTok.Stop(), Children: children}, true
}

func (p *Parser) tryCast() (cst.Node, bool) {
	m := p.mark()
	openTok, ok := p.match(token.OpenParenthesis)
	if !ok {
		return cst.Node{}, false
	}
	typ, ok := p.parseUnaryType()
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	closeTok, ok := p.match(token.CloseParenthesis)
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	operand, ok := p.parseLiteralValue()
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.TypeCast,
		Start:    openTok.Start(),
		Stop:     operand.Stop(),
		Children: []cst.Node{cst.Leaf(openTok), typ, cst.Leaf(closeTok), operand},
	}), true
}

func (p *Parser) tryArrayInitializer() (cst.Node, bool) {
	m := p.mark()
	openTok, ok := p.match(token.OpenBracket)
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(openTok)}
	if !p.peekIs(token.CloseBracket) {
		for {
			val, ok := p.parseAssignment()
			if !ok {
				p.reset(m)
				return cst.Node{}, false
			}
			children = append(children, cst.Interior(&cst.Tree{
				Kind:     cst.ArrayValue,
				Start:    val.Start(),
				Stop:     val.Stop(),
				Children: []cst.Node{val},
			}))
			commaTok, matched := p.match(token.Comma)
			if !matched {
				break
			}
			children = append(children, cst.Leaf(commaTok))
		}
	}
	closeTok, ok := p.expect(token.CloseBracket, diag.SynExpectedToken, "Expected ']'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(closeTok))
	return cst.Interior(&cst.Tree{
		Kind:     cst.ArrayInitializer,
		Start:    openTok.Start(),
		Stop:     closeTok.Stop(),
		Children: children,
	}), true
}

// parseLiteralValue is the base of the expression grammar: an atom, in
// order Cast is tried before the bare-parenthesized fallback so "(int)x"
// resolves as a cast and "(x)" backtracks into a parenthesized sequence.
func (p *Parser) parseLiteralValue() (cst.Node, bool) {
	m := p.mark()
	if n, ok := p.tryArrayInitializer(); ok {
		return n, true
	}
	if tok, ok := p.matchAny(
		token.Identifier, token.StringLiteral, token.IntLiteral, token.FloatLiteral,
		token.BinaryLiteral, token.OctalLiteral, token.HexadecimalLiteral, token.BoolLiteral,
		token.KwNull, token.KwThis, token.KwSuper,
	); ok {
		return cst.Leaf(tok), true
	}
	if n, ok := p.tryCast(); ok {
		return n, true
	}
	if openTok, ok := p.match(token.OpenParenthesis); ok {
		inner, ok := p.parseExpressionSequence()
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
			Kind:     cst.LiteralValue,
			Start:    openTok.Start(),
			Stop:     closeTok.Stop(),
			Children: []cst.Node{cst.Leaf(openTok), inner, cst.Leaf(closeTok)},
		}), true
	}
	p.recordFurthest(diag.SynExpectedExpression, p.here(), "Expected expression")
	return cst.Node{}, false
}
