package pyast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// Walk traverses named nodes in pre-order, which matches source order. The
// visitor returns false to prune the node's subtree.
func Walk(n *sitter.Node, visit func(*sitter.Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for i := 0; i < int(n.NamedChildCount()); i++ {
		Walk(n.NamedChild(i), visit)
	}
}

// Line returns the 1-based source line of n.
func Line(n *sitter.Node) int {
	return int(n.StartPoint().Row) + 1
}
