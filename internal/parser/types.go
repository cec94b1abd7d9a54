package parser

import (
	"rue/internal/cst"
	"rue/internal/diag"
	"rue/internal/token"
)

func (p *Parser) parseUnionType() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.UnionType, p.parseIntersectionType, token.Pipe)
}

func (p *Parser) parseIntersectionType() (cst.Node, bool) {
	return p.parseBinaryLevel(cst.IntersectionType, p.parseUnaryType, token.Amp)
}

func (p *Parser) parseTypeBase() (cst.Node, bool) {
	if tok, ok := p.matchAny(
		token.Identifier, token.IntegerType, token.UnsignedIntegerType,
		token.FloatType, token.BooleanType, token.StringType, token.VoidType,
	); ok {
		return cst.Leaf(tok), true
	}
	p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected type")
	return cst.Node{}, false
}

// parseUnaryType parses TypeBase followed by zero or more postfix
// modifiers: a generic argument list, an array suffix, a pointer '*', or
// an optional '?'. Like the expression tiers, it collapses to the base
// when no modifier is present.
func (p *Parser) parseUnaryType() (cst.Node, bool) {
	base, ok := p.parseTypeBase()
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{base}
	matchedAny := false
	for {
		if generic, ok := p.tryGenericType(); ok {
			children = append(children, generic)
			matchedAny = true
			continue
		}
		if arr, ok := p.tryArrayType(); ok {
			children = append(children, arr)
			matchedAny = true
			continue
		}
		if starTok, ok := p.match(token.Star); ok {
			children = append(children, cst.Leaf(starTok))
			matchedAny = true
			continue
		}
		if qTok, ok := p.match(token.Question); ok {
			children = append(children, cst.Leaf(qTok))
			matchedAny = true
			continue
		}
		break
	}
	if !matchedAny {
		return base, true
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.UnaryType,
		Start:    base.Start(),
		Stop:     children[len(children)-1].Stop(),
		Children: children,
	}), true
}

func (p *Parser) tryGenericType() (cst.Node, bool) {
	m := p.mark()
	ltTok, ok := p.match(token.Lt)
	if !ok {
		return cst.Node{}, false
	}
	children := []cst.Node{cst.Leaf(ltTok)}
	first, ok := p.parseUnionType()
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, first)
	for {
		commaTok, matched := p.match(token.Comma)
		if !matched {
			break
		}
		next, ok := p.parseUnionType()
		if !ok {
			p.recordFurthest(diag.SynExpectedToken, p.here(), "Expected type")
			p.reset(m)
			return cst.Node{}, false
		}
		children = append(children, cst.Leaf(commaTok), next)
	}
	gtTok, ok := p.expect(token.Gt, diag.SynExpectedToken, "Expected '>'")
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	children = append(children, cst.Leaf(gtTok))
	return cst.Interior(&cst.Tree{
		Kind:     cst.GenericType,
		Start:    ltTok.Start(),
		Stop:     gtTok.Stop(),
		Children: children,
	}), true
}

func (p *Parser) tryArrayType() (cst.Node, bool) {
	m := p.mark()
	openTok, ok := p.match(token.OpenBracket)
	if !ok {
		return cst.Node{}, false
	}
	closeTok, ok := p.match(token.CloseBracket)
	if !ok {
		p.reset(m)
		return cst.Node{}, false
	}
	return cst.Interior(&cst.Tree{
		Kind:     cst.ArrayType,
		Start:    openTok.Start(),
		Stop:     closeTok.Stop(),
		Children: []cst.Node{cst.Leaf(openTok), cst.Leaf(closeTok)},
	}), true
}
