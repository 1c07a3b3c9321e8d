package rules

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mcpbuilder/mcpbuilder/internal/pyast"
)

// Decorator is one decorator attached to a function, with its expression
// resolved to a dotted name. Call is set when the decorator was written as a
// call, e.g. @mcp.tool().
type Decorator struct {
	Node *sitter.Node
	Call *sitter.Node
	Name string
}

// Handler is a transient view over a decorated function definition. It holds
// no ownership of the tree and is recomputed for every run.
type Handler struct {
	Node       *sitter.Node
	Name       string
	Decorators []Decorator
	Async      bool

	Tool     bool
	Resource bool
	Prompt   bool
}

// IsHandler reports whether the function carries at least one tool, resource,
// or prompt decorator.
func (h Handler) IsHandler() bool {
	return h.Tool || h.Resource || h.Prompt
}

// Line returns the source line of the function's def statement.
func (h Handler) Line() int {
	return pyast.Line(h.Node)
}

// ExtractHandlers collects every decorated function definition in source
// order, with decorator expressions resolved to dotted names and classified
// by substring into the tool, resource, and prompt categories. Nested and
// method definitions are included, matching a whole-tree walk.
func ExtractHandlers(t *pyast.Tree) []Handler {
	var out []Handler
	pyast.Walk(t.Root(), func(n *sitter.Node) bool {
		if n.Type() != "decorated_definition" {
			return true
		}
		def := n.ChildByFieldName("definition")
		if def == nil || def.Type() != "function_definition" {
			return true
		}

		h := Handler{Node: def, Async: pyast.IsAsync(def)}
		if name := def.ChildByFieldName("name"); name != nil {
			h.Name = t.Text(name)
		}

		for i := 0; i < int(n.NamedChildCount()); i++ {
			c := n.NamedChild(i)
			if c.Type() != "decorator" {
				continue
			}
			expr := c.NamedChild(0)
			if expr == nil {
				continue
			}
			d := Decorator{Node: expr, Name: resolveDottedName(t, expr)}
			if expr.Type() == "call" {
				d.Call = expr
			}
			h.Decorators = append(h.Decorators, d)

			switch {
			case strings.Contains(d.Name, "tool"):
				h.Tool = true
			case strings.Contains(d.Name, "resource"):
				h.Resource = true
			case strings.Contains(d.Name, "prompt"):
				h.Prompt = true
			}
		}

		out = append(out, h)
		return true
	})
	return out
}

// resolveDottedName renders a decorator expression as a dotted name: bare
// names stay as-is, attribute access becomes "obj.attr", and calls resolve
// to their callee. Any other expression shape resolves to "".
func resolveDottedName(t *pyast.Tree, n *sitter.Node) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case "identifier":
		return t.Text(n)
	case "attribute":
		obj := n.ChildByFieldName("object")
		attr := n.ChildByFieldName("attribute")
		if obj == nil || attr == nil {
			return ""
		}
		return t.Text(obj) + "." + t.Text(attr)
	case "call":
		return resolveDottedName(t, n.ChildByFieldName("function"))
	}
	return ""
}
