package pyast

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// SyntaxError reports the first point where the parser could not make sense
// of the source.
type SyntaxError struct {
	Line int
	Msg  string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Msg)
}

// Tree is a parsed Python module. It owns the underlying tree-sitter tree
// and must be closed by the run that created it.
type Tree struct {
	source []byte
	tree   *sitter.Tree
}

// Parse parses Python source text. On malformed input it returns a
// *SyntaxError located at the first unparsable node; no Tree exists in that
// case.
func Parse(ctx context.Context, source []byte) (*Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, err
	}

	root := tree.RootNode()
	if root.HasError() {
		serr := firstSyntaxError(root)
		tree.Close()
		return nil, serr
	}
	return &Tree{source: source, tree: tree}, nil
}

// Root returns the module node.
func (t *Tree) Root() *sitter.Node {
	return t.tree.RootNode()
}

// Close releases the parse tree.
func (t *Tree) Close() {
	t.tree.Close()
}

// Text returns the source text covered by n.
func (t *Tree) Text(n *sitter.Node) string {
	return n.Content(t.source)
}

// firstSyntaxError locates the first ERROR or missing node in pre-order.
// tree-sitter has no error messages, so the description is synthesized from
// the node itself.
func firstSyntaxError(root *sitter.Node) *SyntaxError {
	var bad *sitter.Node
	var walk func(n *sitter.Node) bool
	walk = func(n *sitter.Node) bool {
		switch {
		case n.IsMissing(), n.Type() == "ERROR":
			bad = n
			return false
		case !n.HasError():
			return true
		}
		for i := 0; i < int(n.ChildCount()); i++ {
			if !walk(n.Child(i)) {
				return false
			}
		}
		return true
	}
	walk(root)
	if bad == nil {
		bad = root
	}

	msg := "invalid syntax"
	if bad.IsMissing() {
		msg = fmt.Sprintf("missing %q", bad.Type())
	}
	return &SyntaxError{Line: Line(bad), Msg: msg}
}
