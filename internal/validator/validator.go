package validator

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"

	"github.com/mcpbuilder/mcpbuilder/internal/findings"
	"github.com/mcpbuilder/mcpbuilder/internal/pyast"
	"github.com/mcpbuilder/mcpbuilder/internal/rules"
)

// Result is the outcome of one validation run, consumed once by a reporter.
type Result struct {
	FilePath string
	Findings []findings.Finding
	Passed   bool
}

// Count returns the number of findings of the given severity.
func (r *Result) Count(severity findings.Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// Run validates a single FastMCP server file: read the file fully, parse it,
// execute the rule battery, aggregate the findings. A read or parse failure
// short-circuits into a single error finding and a failing verdict.
type Run struct {
	FilePath string
	Strict   bool
	logger   hclog.Logger
}

// New creates a run for one invocation. Runs hold no state across
// invocations.
func New(filePath string, strict bool, logger hclog.Logger) *Run {
	return &Run{FilePath: filePath, Strict: strict, logger: logger}
}

// Execute performs the full pass. The file handle is released before any
// rule evaluates; rules operate purely over the in-memory tree.
func (r *Run) Execute(ctx context.Context) *Result {
	set := findings.NewSet(r.Strict)

	source, err := os.ReadFile(r.FilePath)
	if err != nil {
		r.logger.Error("failed to read server file", "path", r.FilePath, "error", err)
		f := findings.Error(0, readFailureMessage(r.FilePath, err), "")
		f.Rule = "read-file"
		set.Add(f)
		return r.result(set)
	}

	tree, err := pyast.Parse(ctx, source)
	if err != nil {
		r.logger.Debug("parse failed", "path", r.FilePath, "error", err)
		set.Add(parseFailureFinding(err))
		return r.result(set)
	}
	defer tree.Close()

	in := &rules.Input{
		Tree:     tree,
		Handlers: rules.ExtractHandlers(tree),
		Strict:   r.Strict,
	}
	set.Add(rules.Run(in)...)
	return r.result(set)
}

func readFailureMessage(path string, err error) string {
	if os.IsNotExist(err) {
		return fmt.Sprintf("File not found: %s", path)
	}
	return fmt.Sprintf("Failed to read file: %v", err)
}

func parseFailureFinding(err error) findings.Finding {
	var serr *pyast.SyntaxError
	var f findings.Finding
	if errors.As(err, &serr) {
		f = findings.Error(serr.Line, fmt.Sprintf("Python syntax error: %s", serr.Msg), "")
	} else {
		f = findings.Error(0, fmt.Sprintf("Failed to parse file: %v", err), "")
	}
	f.Rule = "syntax"
	return f
}

func (r *Run) result(set *findings.Set) *Result {
	res := &Result{
		FilePath: r.FilePath,
		Findings: set.Items(),
		Passed:   !set.HasErrors(),
	}
	r.logger.Debug("validation finished",
		"path", r.FilePath,
		"errors", set.Count(findings.SeverityError),
		"warnings", set.Count(findings.SeverityWarning),
		"info", set.Count(findings.SeverityInfo),
		"passed", res.Passed,
	)
	return res
}
