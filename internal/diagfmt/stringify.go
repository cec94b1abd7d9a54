package diagfmt

import (
	"fmt"
	"strings"

	"rue/internal/cst"
	"rue/internal/token"
)

// Stringify is the debug pretty-printer for a parsed tree or a raw token
// vector. A tree with exactly one child collapses to that child's own
// rendering; otherwise each level indents by depth and prints
// "Kind (start-stop)" with children on subsequent lines.
func Stringify(v any) string {
	switch t := v.(type) {
	case []token.Token:
		return stringifyTokens(t)
	case *cst.Tree:
		if t == nil {
			return ""
		}
		var b strings.Builder
		stringifyNode(&b, cst.Interior(t), 0)
		return b.String()
	case cst.Node:
		var b strings.Builder
		stringifyNode(&b, t, 0)
		return b.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

func stringifyTokens(toks []token.Token) string {
	lines := make([]string, 0, len(toks))
	for _, t := range toks {
		lines = append(lines, fmt.Sprintf("%s %q (%d-%d)", t.Kind, t.Text, t.Start(), t.Stop()))
	}
	return strings.Join(lines, "\n")
}

func stringifyNode(b *strings.Builder, n cst.Node, depth int) {
	if n.IsToken() {
		writeIndent(b, depth)
		fmt.Fprintf(b, "%s %q (%d-%d)\n", n.Tok.Kind, n.Tok.Text, n.Start(), n.Stop())
		return
	}
	tree := n.Sub
	if len(tree.Children) == 1 {
		stringifyNode(b, tree.Children[0], depth)
		return
	}
	writeIndent(b, depth)
	fmt.Fprintf(b, "%s (%d-%d)\n", tree.Kind, tree.Start, tree.Stop)
	for _, child := range tree.Children {
		stringifyNode(b, child, depth+1)
	}
}

func writeIndent(b *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		b.WriteString("  ")
	}
}
