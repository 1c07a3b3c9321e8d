package rules

import (
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/mcpbuilder/mcpbuilder/internal/findings"
	"github.com/mcpbuilder/mcpbuilder/internal/pyast"
)

const (
	frameworkModule = "fastmcp"
	frameworkClass  = "FastMCP"
	contextType     = "Context"
)

// promptReturnTypes are the return annotations a prompt handler is expected
// to declare.
var promptReturnTypes = []string{"str", "list[PromptMessage]"}

// Input carries the per-run state shared by every rule.
type Input struct {
	Tree     *pyast.Tree
	Handlers []Handler
	Strict   bool
}

// Rule is one independent check over the parsed module.
type Rule struct {
	Name  string
	Check func(in *Input) []findings.Finding
}

// All returns the rule battery in its fixed execution order. The order is
// part of the output contract: findings are reported rule by rule, in source
// order within a rule.
func All() []Rule {
	return []Rule{
		{Name: "import-check", Check: checkImports},
		{Name: "server-init", Check: checkServerInit},
		{Name: "handler-inventory", Check: checkHandlerInventory},
		{Name: "tool-docstring", Check: checkToolDocstrings},
		{Name: "resource-uri", Check: checkResourceURIs},
		{Name: "prompt-return-type", Check: checkPromptReturnTypes},
		{Name: "type-hints", Check: checkTypeHints},
		{Name: "async-await", Check: checkAsyncAwait},
		{Name: "context-param", Check: checkContextParams},
		{Name: "entrypoint-guard", Check: checkEntrypointGuard},
	}
}

// Run executes every rule. A panicking rule contributes a single error
// finding naming it and never aborts the rest of the battery.
func Run(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, r := range All() {
		out = append(out, runOne(r, in)...)
	}
	return out
}

func runOne(r Rule, in *Input) (out []findings.Finding) {
	defer func() {
		if v := recover(); v != nil {
			f := findings.Error(0, fmt.Sprintf("rule %s failed internally: %v", r.Name, v), "")
			f.Rule = r.Name
			out = []findings.Finding{f}
		}
	}()

	out = r.Check(in)
	for i := range out {
		if out[i].Rule == "" {
			out[i].Rule = r.Name
		}
	}
	return out
}

// checkImports requires a from-import of the fastmcp module and warns when
// the FastMCP symbol itself is not among the imported names.
func checkImports(in *Input) []findings.Finding {
	var out []findings.Finding
	imported := false
	pyast.Walk(in.Tree.Root(), func(n *sitter.Node) bool {
		if n.Type() != "import_from_statement" {
			return true
		}
		mod := n.ChildByFieldName("module_name")
		if mod == nil || in.Tree.Text(mod) != frameworkModule {
			return true
		}
		imported = true
		if !importsSymbol(in.Tree, n, frameworkClass) {
			out = append(out, findings.Warning(pyast.Line(n),
				"FastMCP class not imported from fastmcp",
				"Add: from fastmcp import FastMCP"))
		}
		return true
	})
	if !imported {
		out = append(out, findings.Error(0,
			"Missing FastMCP import",
			"Add: from fastmcp import FastMCP"))
	}
	return out
}

// importsSymbol reports whether the import_from_statement imports the given
// symbol, alias sources included.
func importsSymbol(t *pyast.Tree, stmt *sitter.Node, symbol string) bool {
	mod := stmt.ChildByFieldName("module_name")
	for i := 0; i < int(stmt.NamedChildCount()); i++ {
		c := stmt.NamedChild(i)
		if mod != nil && c.StartByte() == mod.StartByte() {
			continue
		}
		switch c.Type() {
		case "dotted_name":
			if t.Text(c) == symbol {
				return true
			}
		case "aliased_import":
			if name := c.ChildByFieldName("name"); name != nil && t.Text(name) == symbol {
				return true
			}
		}
	}
	return false
}

// checkServerInit scans assignments, nested ones included, for a FastMCP
// constructor call. The server name argument is mandatory.
func checkServerInit(in *Input) []findings.Finding {
	var out []findings.Finding
	found := false
	pyast.Walk(in.Tree.Root(), func(n *sitter.Node) bool {
		if n.Type() != "assignment" {
			return true
		}
		right := n.ChildByFieldName("right")
		if right == nil || right.Type() != "call" {
			return true
		}
		fn := right.ChildByFieldName("function")
		if fn == nil || fn.Type() != "identifier" || in.Tree.Text(fn) != frameworkClass {
			return true
		}
		found = true
		if pyast.PositionalArgCount(right) == 0 {
			out = append(out, findings.Error(pyast.Line(n),
				"FastMCP initialized without server name",
				`Use: mcp = FastMCP("server-name")`))
		}
		return true
	})
	if !found {
		out = append(out, findings.Error(0,
			"No FastMCP server initialization found",
			`Add: mcp = FastMCP("server-name")`))
	}
	return out
}

// checkHandlerInventory counts the three handler categories. The summary is
// info-severity and therefore surfaces only in strict mode.
func checkHandlerInventory(in *Input) []findings.Finding {
	var tools, resources, prompts int
	for _, h := range in.Handlers {
		if h.Tool {
			tools++
		}
		if h.Resource {
			resources++
		}
		if h.Prompt {
			prompts++
		}
	}
	if tools+resources+prompts == 0 {
		return []findings.Finding{findings.Warning(0,
			"No tools, resources, or prompts defined",
			"Add @mcp.tool(), @mcp.resource(), or @mcp.prompt() decorators")}
	}
	return []findings.Finding{findings.Info(0,
		fmt.Sprintf("Found: %d tools, %d resources, %d prompts", tools, resources, prompts), "")}
}

func checkToolDocstrings(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, h := range in.Handlers {
		if !h.Tool {
			continue
		}
		if !in.Tree.HasDocstring(h.Node) {
			out = append(out, findings.Warning(h.Line(),
				fmt.Sprintf("Tool '%s' missing docstring", h.Name),
				"Add comprehensive docstring with Args and Returns sections"))
		}
	}
	return out
}

// checkResourceURIs requires a URI template on resource decorators written
// as calls. A resource without one cannot be routed.
func checkResourceURIs(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, h := range in.Handlers {
		if !h.Resource {
			continue
		}
		for _, d := range h.Decorators {
			if d.Call == nil || !strings.Contains(d.Name, "resource") {
				continue
			}
			if pyast.PositionalArgCount(d.Call) == 0 {
				out = append(out, findings.Error(h.Line(),
					fmt.Sprintf("Resource '%s' missing URI", h.Name),
					`Use: @mcp.resource("resource://path")`))
			}
		}
	}
	return out
}

func checkPromptReturnTypes(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, h := range in.Handlers {
		if !h.Prompt {
			continue
		}
		ret := in.Tree.ReturnType(h.Node)
		if ret == "" {
			continue
		}
		expected := false
		for _, want := range promptReturnTypes {
			if ret == want {
				expected = true
				break
			}
		}
		if !expected {
			out = append(out, findings.Warning(h.Line(),
				fmt.Sprintf("Prompt '%s' has unusual return type: %s", h.Name, ret),
				"Prompts typically return str or list[PromptMessage]"))
		}
	}
	return out
}

// checkTypeHints warns per unannotated non-self parameter and once for a
// missing return annotation, on handler-decorated functions only.
func checkTypeHints(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, h := range in.Handlers {
		if !h.IsHandler() {
			continue
		}
		for _, p := range in.Tree.Params(h.Node) {
			if p.Name == "self" {
				continue
			}
			if p.Type == "" {
				out = append(out, findings.Warning(h.Line(),
					fmt.Sprintf("Parameter '%s' in '%s' missing type hint", p.Name, h.Name),
					fmt.Sprintf("Add type hint: %s: str", p.Name)))
			}
		}
		if in.Tree.ReturnType(h.Node) == "" {
			out = append(out, findings.Warning(h.Line(),
				fmt.Sprintf("Function '%s' missing return type hint", h.Name),
				"Add return type hint: -> str"))
		}
	}
	return out
}

// checkAsyncAwait flags await inside a handler that is not declared async, a
// hard bug in the framework's execution model. The scan covers the whole
// function subtree, so an await inside a nested synchronous helper also
// flags the enclosing handler.
func checkAsyncAwait(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, h := range in.Handlers {
		if !h.IsHandler() || h.Async {
			continue
		}
		if containsAwait(h.Node) {
			out = append(out, findings.Error(h.Line(),
				fmt.Sprintf("Function '%s' uses await but is not async", h.Name),
				fmt.Sprintf("Change to: async def %s(...)", h.Name)))
		}
	}
	return out
}

func containsAwait(fn *sitter.Node) bool {
	found := false
	pyast.Walk(fn, func(n *sitter.Node) bool {
		if n.Type() == "await" {
			found = true
		}
		return !found
	})
	return found
}

// checkContextParams requires a Context-typed annotation on ctx/context
// parameters and warns when such a parameter sits on a non-async function,
// since the context API is async-only.
func checkContextParams(in *Input) []findings.Finding {
	var out []findings.Finding
	for _, h := range in.Handlers {
		if !h.IsHandler() {
			continue
		}
		hasCtx, typed := false, false
		for _, p := range in.Tree.Params(h.Node) {
			if p.Name != "ctx" && p.Name != "context" {
				continue
			}
			hasCtx = true
			if strings.Contains(p.Type, contextType) {
				typed = true
			}
		}
		if hasCtx && !typed {
			out = append(out, findings.Error(h.Line(),
				fmt.Sprintf("Context parameter in '%s' missing type hint", h.Name),
				"Add type hint: ctx: Context"))
		}
		if hasCtx && !h.Async {
			out = append(out, findings.Warning(h.Line(),
				fmt.Sprintf("Function '%s' has Context parameter but is not async", h.Name),
				"Context methods are async - make function async"))
		}
	}
	return out
}

// checkEntrypointGuard looks for a module-level __name__ == "__main__"
// conditional. Info-severity, strict mode only.
func checkEntrypointGuard(in *Input) []findings.Finding {
	root := in.Tree.Root()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "if_statement" {
			continue
		}
		cond := stmt.ChildByFieldName("condition")
		if cond != nil && isMainGuard(in.Tree, cond) {
			return nil
		}
	}
	return []findings.Finding{findings.Info(0,
		"Missing if __name__ == '__main__' block",
		"Add: if __name__ == '__main__': mcp.run()")}
}

// isMainGuard matches a comparison between __name__ and the "__main__"
// literal, in either operand order.
func isMainGuard(t *pyast.Tree, cond *sitter.Node) bool {
	if cond.Type() == "parenthesized_expression" {
		return cond.NamedChildCount() > 0 && isMainGuard(t, cond.NamedChild(0))
	}
	if cond.Type() != "comparison_operator" {
		return false
	}
	name, literal := false, false
	for i := 0; i < int(cond.NamedChildCount()); i++ {
		c := cond.NamedChild(i)
		switch c.Type() {
		case "identifier":
			if t.Text(c) == "__name__" {
				name = true
			}
		case "string":
			if strings.Contains(t.Text(c), "__main__") {
				literal = true
			}
		}
	}
	return name && literal
}
