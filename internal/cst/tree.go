package cst

import (
	"rue/internal/token"
)

// Tree is an interior CST node: a production kind, the byte span it
// covers, and its children in source order. Start equals the first
// child's start (or the parse cursor at attempt time if there are no
// children); Stop equals the cursor position after the last child was
// consumed.
type Tree struct {
	Kind     Kind
	Start    uint32
	Stop     uint32
	Children []Node
}

// Node is the tagged sum children = tokens ∪ subtrees. Exactly one of
// Tok or Sub is set; there is no third state besides the zero Node.
type Node struct {
	Tok *token.Token
	Sub *Tree
}

// Leaf wraps a token as a child node.
func Leaf(t token.Token) Node { return Node{Tok: &t} }

// Interior wraps a subtree as a child node.
func Interior(t *Tree) Node { return Node{Sub: t} }

// IsToken reports whether the node is a leaf token.
func (n Node) IsToken() bool { return n.Tok != nil }

// IsTree reports whether the node is an interior subtree.
func (n Node) IsTree() bool { return n.Sub != nil }

// Start returns the byte offset where the node begins.
func (n Node) Start() uint32 {
	if n.Tok != nil {
		return n.Tok.Start()
	}
	return n.Sub.Start
}

// Stop returns the byte offset where the node ends.
func (n Node) Stop() uint32 {
	if n.Tok != nil {
		return n.Tok.Stop()
	}
	return n.Sub.Stop
}
