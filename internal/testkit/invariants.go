// Package testkit holds the CST invariant check used by the parser test
// suite.
package testkit

import (
	"fmt"

	"rue/internal/cst"
)

// CheckTreeInvariants walks tree and verifies the structural invariants
// every CST node must satisfy:
//  1. no node's span is inverted (start <= stop)
//  2. every child's span is fully contained in its parent's span
//  3. children appear in non-decreasing source order
func CheckTreeInvariants(tree *cst.Tree) error {
	if tree == nil {
		return fmt.Errorf("nil tree")
	}
	return checkNode(cst.Interior(tree))
}

func checkNode(n cst.Node) error {
	if n.Start() > n.Stop() {
		return fmt.Errorf("node has inverted span: %d > %d", n.Start(), n.Stop())
	}
	if !n.IsTree() {
		return nil
	}
	sub := n.Sub
	prevStop := sub.Start
	for i, child := range sub.Children {
		if child.Start() < prevStop {
			return fmt.Errorf("child %d of %s starts before previous child ended: %d < %d", i, sub.Kind, child.Start(), prevStop)
		}
		if child.Start() < sub.Start || child.Stop() > sub.Stop {
			return fmt.Errorf("child %d of %s span [%d,%d) escapes parent span [%d,%d)", i, sub.Kind, child.Start(), child.Stop(), sub.Start, sub.Stop)
		}
		if err := checkNode(child); err != nil {
			return err
		}
		prevStop = child.Stop()
	}
	return nil
}
