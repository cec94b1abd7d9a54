package cst

import (
	"testing"

	"rue/internal/source"
	"rue/internal/token"
)

func TestNodeStartStopDelegatesToVariant(t *testing.T) {
	tok := token.Token{Kind: token.Identifier, Span: source.Span{Start: 3, End: 7}, Text: "abcd"}
	leaf := Leaf(tok)
	if leaf.Start() != 3 || leaf.Stop() != 7 {
		t.Fatalf("leaf span = [%d,%d), want [3,7)", leaf.Start(), leaf.Stop())
	}
	if !leaf.IsToken() || leaf.IsTree() {
		t.Fatalf("leaf classified wrong: token=%v tree=%v", leaf.IsToken(), leaf.IsTree())
	}

	sub := &Tree{Kind: Expression, Start: 10, Stop: 20}
	inner := Interior(sub)
	if inner.Start() != 10 || inner.Stop() != 20 {
		t.Fatalf("interior span = [%d,%d), want [10,20)", inner.Start(), inner.Stop())
	}
	if !inner.IsTree() || inner.IsToken() {
		t.Fatalf("interior classified wrong")
	}
}

func TestKindStringUnknown(t *testing.T) {
	if got := Kind(255).String(); got != "Unknown" {
		t.Fatalf("got %q, want Unknown", got)
	}
	if got := Body.String(); got != "Body" {
		t.Fatalf("got %q, want Body", got)
	}
}
