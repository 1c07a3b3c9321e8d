package pyast

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// IsAsync reports whether a function_definition node is declared async.
func IsAsync(fn *sitter.Node) bool {
	c := fn.Child(0)
	return c != nil && c.Type() == "async"
}

// HasDocstring reports whether the first statement of fn's body is a bare
// string literal.
func (t *Tree) HasDocstring(fn *sitter.Node) bool {
	body := fn.ChildByFieldName("body")
	if body == nil {
		return false
	}
	for i := 0; i < int(body.NamedChildCount()); i++ {
		stmt := body.NamedChild(i)
		if stmt.Type() == "comment" {
			continue
		}
		return stmt.Type() == "expression_statement" &&
			stmt.NamedChildCount() > 0 &&
			stmt.NamedChild(0).Type() == "string"
	}
	return false
}

// ReturnType returns the rendered return annotation of fn, or "" when the
// function declares none.
func (t *Tree) ReturnType(fn *sitter.Node) string {
	r := fn.ChildByFieldName("return_type")
	if r == nil {
		return ""
	}
	return t.Text(r)
}

// Param describes one entry of a function's parameter list. Type is the
// rendered annotation text, "" when absent.
type Param struct {
	Node *sitter.Node
	Name string
	Type string
}

// Params flattens fn's parameter list in declaration order. Splat parameters
// and the bare * and / separators are skipped.
func (t *Tree) Params(fn *sitter.Node) []Param {
	list := fn.ChildByFieldName("parameters")
	if list == nil {
		return nil
	}

	var out []Param
	for i := 0; i < int(list.NamedChildCount()); i++ {
		p := list.NamedChild(i)
		switch p.Type() {
		case "identifier":
			out = append(out, Param{Node: p, Name: t.Text(p)})
		case "typed_parameter":
			name := p.NamedChild(0)
			typ := p.ChildByFieldName("type")
			if name == nil || typ == nil {
				continue
			}
			out = append(out, Param{Node: p, Name: t.Text(name), Type: t.Text(typ)})
		case "default_parameter":
			name := p.ChildByFieldName("name")
			if name == nil {
				continue
			}
			out = append(out, Param{Node: p, Name: t.Text(name)})
		case "typed_default_parameter":
			name := p.ChildByFieldName("name")
			typ := p.ChildByFieldName("type")
			if name == nil || typ == nil {
				continue
			}
			out = append(out, Param{Node: p, Name: t.Text(name), Type: t.Text(typ)})
		}
	}
	return out
}

// PositionalArgCount counts the non-keyword arguments of a call node.
func PositionalArgCount(call *sitter.Node) int {
	args := call.ChildByFieldName("arguments")
	if args == nil {
		return 0
	}
	n := 0
	for i := 0; i < int(args.NamedChildCount()); i++ {
		switch args.NamedChild(i).Type() {
		case "keyword_argument", "comment":
		default:
			n++
		}
	}
	return n
}
