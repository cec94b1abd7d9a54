package parser_test

import (
	"testing"

	"rue/internal/cst"
	"rue/internal/lexer"
	"rue/internal/parser"
	"rue/internal/source"
	"rue/internal/testkit"
)

func mustParse(t *testing.T, src string) *cst.Tree {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rue", []byte(src))
	file := fs.Get(id)
	toks, lexErr := lexer.LexAll(file, lexer.Options{})
	if lexErr != nil {
		t.Fatalf("lex error: %v", lexErr)
	}
	tree, parseErr := parser.Parse(toks)
	if parseErr != nil {
		t.Fatalf("parse error: %v", parseErr)
	}
	if err := testkit.CheckTreeInvariants(tree); err != nil {
		t.Fatalf("tree invariant violated: %v", err)
	}
	return tree
}

func mustFailParse(t *testing.T, src string) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rue", []byte(src))
	file := fs.Get(id)
	toks, lexErr := lexer.LexAll(file, lexer.Options{})
	if lexErr != nil {
		return
	}
	_, parseErr := parser.Parse(toks)
	if parseErr == nil {
		t.Fatalf("expected parse error for %q", src)
	}
}

func onlyChild(t *testing.T, tree *cst.Tree) cst.Node {
	t.Helper()
	if len(tree.Children) != 1 {
		t.Fatalf("expected exactly one child, got %d", len(tree.Children))
	}
	return tree.Children[0]
}

func TestFieldDeclaration(t *testing.T) {
	body := mustParse(t, "val x = 5;")
	if body.Kind != cst.Body {
		t.Fatalf("expected Body, got %v", body.Kind)
	}
	field := onlyChild(t, body)
	if !field.IsTree() || field.Sub.Kind != cst.Field {
		t.Fatalf("expected Field, got %+v", field)
	}
	if len(field.Sub.Children) != 5 {
		t.Fatalf("expected 5 children (val, x, =, 5, ;) got %d", len(field.Sub.Children))
	}
}

func TestIfElseWithComparisonCondition(t *testing.T) {
	body := mustParse(t, "if (a > 0) { x += 1; } else { x -= 1; }")
	stmt := onlyChild(t, body)
	if stmt.Sub.Kind != cst.If {
		t.Fatalf("expected If, got %v", stmt.Sub.Kind)
	}
	cond := stmt.Sub.Children[2]
	if !cond.IsTree() || cond.Sub.Kind != cst.Comparison {
		t.Fatalf("expected Comparison condition, got %+v", cond)
	}
}

func TestDefWithParametersAndReturn(t *testing.T) {
	body := mustParse(t, "def f(a: int, b: int): int { return a + b; }")
	stmt := onlyChild(t, body)
	def := stmt.Sub
	if def.Kind != cst.Def {
		t.Fatalf("expected Def, got %v", def.Kind)
	}
	var params *cst.Tree
	var block *cst.Tree
	for _, c := range def.Children {
		if c.IsTree() && c.Sub.Kind == cst.Parameters {
			params = c.Sub
		}
		if c.IsTree() && c.Sub.Kind == cst.Block {
			block = c.Sub
		}
	}
	if params == nil {
		t.Fatalf("no Parameters node found")
	}
	count := 0
	for _, c := range params.Children {
		if c.IsTree() && c.Sub.Kind == cst.Parameter {
			count++
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 Parameters, got %d", count)
	}
	if block == nil {
		t.Fatalf("no Block found")
	}
	returns := 0
	for _, c := range block.Children {
		if c.IsTree() && c.Sub.Kind == cst.Return {
			returns++
		}
	}
	if returns != 1 {
		t.Fatalf("expected 1 Return in block, got %d", returns)
	}
}

func TestOptionalChainReferenceSequence(t *testing.T) {
	body := mustParse(t, "a.b?.c[0](x, y);")
	stmt := onlyChild(t, body)
	expr := stmt.Sub.Children[0]
	if !expr.IsTree() || expr.Sub.Kind != cst.Reference {
		t.Fatalf("expected Reference, got %+v", expr)
	}
	kinds := make([]cst.Kind, 0, len(expr.Sub.Children))
	for _, c := range expr.Sub.Children {
		if c.IsTree() {
			kinds = append(kinds, c.Sub.Kind)
		}
	}
	want := []cst.Kind{cst.PropertyAccess, cst.OptionalPropertyAccess, cst.ArrayIndex, cst.MethodCall}
	if len(kinds) != len(want) {
		t.Fatalf("suffix kinds = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Fatalf("suffix[%d] = %v, want %v", i, kinds[i], want[i])
		}
	}
}

func TestMatchWithFallbackBody(t *testing.T) {
	body := mustParse(t, "match (n) { 1 => a; 2 => b; c; }")
	stmt := onlyChild(t, body)
	match := stmt.Sub
	if match.Kind != cst.Match {
		t.Fatalf("expected Match, got %v", match.Kind)
	}
	options := 0
	var fallback *cst.Tree
	for _, c := range match.Children {
		if !c.IsTree() {
			continue
		}
		switch c.Sub.Kind {
		case cst.MatchOption:
			options++
		case cst.Body:
			fallback = c.Sub
		}
	}
	if options != 2 {
		t.Fatalf("expected 2 MatchOptions, got %d", options)
	}
	if fallback == nil || len(fallback.Children) != 1 {
		t.Fatalf("expected a one-statement fallback body, got %+v", fallback)
	}
}

func TestOperatorPrecedenceNesting(t *testing.T) {
	body := mustParse(t, "1 + 2 * 3;")
	stmt := onlyChild(t, body)
	term := stmt.Sub.Children[0]
	if !term.IsTree() || term.Sub.Kind != cst.Term {
		t.Fatalf("expected Term at top, got %+v", term)
	}
	if len(term.Sub.Children) != 3 {
		t.Fatalf("expected 3 children in Term, got %d", len(term.Sub.Children))
	}
	left, op, right := term.Sub.Children[0], term.Sub.Children[1], term.Sub.Children[2]
	if !left.IsToken() || left.Tok.Text != "1" {
		t.Fatalf("expected left operand token '1', got %+v", left)
	}
	if !op.IsToken() {
		t.Fatalf("expected operator token")
	}
	if !right.IsTree() || right.Sub.Kind != cst.Factor {
		t.Fatalf("expected right operand Factor, got %+v", right)
	}
}

func TestAssignmentIsNotRightAssociative(t *testing.T) {
	body := mustParse(t, "a = b;")
	if body == nil {
		t.Fatalf("expected a = b to parse")
	}
	mustFailParse(t, "a = b = c;")
}

func TestDanglingElseAttachesToInnermostIf(t *testing.T) {
	body := mustParse(t, "if (a) if (b) x; else y;")
	outer := onlyChild(t, body).Sub
	if outer.Kind != cst.If {
		t.Fatalf("expected outer If, got %v", outer.Kind)
	}
	// The outer if has no 'else' of its own: thenStmt (index 4) is the inner
	// if, which consumed the else, leaving the outer with exactly 5 children.
	if len(outer.Children) != 5 {
		t.Fatalf("expected outer If without its own else (5 children), got %d", len(outer.Children))
	}
	inner := outer.Children[4]
	if !inner.IsTree() || inner.Sub.Kind != cst.If {
		t.Fatalf("expected inner If as then-branch, got %+v", inner)
	}
	if len(inner.Sub.Children) != 7 {
		t.Fatalf("expected inner If to carry the else clause (7 children), got %d", len(inner.Sub.Children))
	}
}

func TestCastBacktracksToParenthesizedExpression(t *testing.T) {
	body := mustParse(t, "(int)x;")
	stmt := onlyChild(t, body)
	expr := stmt.Sub.Children[0]
	if !expr.IsTree() || expr.Sub.Kind != cst.TypeCast {
		t.Fatalf("expected TypeCast, got %+v", expr)
	}

	body2 := mustParse(t, "(x);")
	stmt2 := onlyChild(t, body2)
	expr2 := stmt2.Sub.Children[0]
	if !expr2.IsTree() || expr2.Sub.Kind != cst.LiteralValue {
		t.Fatalf("expected parenthesized LiteralValue, got %+v", expr2)
	}
}

func TestEmptyStatementAndLabeled(t *testing.T) {
	body := mustParse(t, "outer: ;")
	stmt := onlyChild(t, body)
	if stmt.Sub.Kind != cst.Labeled {
		t.Fatalf("expected Labeled, got %v", stmt.Sub.Kind)
	}
	inner := stmt.Sub.Children[2]
	if !inner.IsTree() || inner.Sub.Kind != cst.Empty {
		t.Fatalf("expected Empty inner statement, got %+v", inner)
	}
}

func TestUnexpectedLeftoverTokenFails(t *testing.T) {
	mustFailParse(t, "val x = 5; )")
}

func TestMissingExpressionAfterEqualsFails(t *testing.T) {
	mustFailParse(t, "val x = ;")
}
