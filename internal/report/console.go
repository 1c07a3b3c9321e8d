package report

import (
	"fmt"
	"io"

	"github.com/mcpbuilder/mcpbuilder/internal/findings"
	"github.com/mcpbuilder/mcpbuilder/internal/validator"
)

// Report format names accepted by the validate command.
const (
	FormatConsole = "console"
	FormatSarif   = "sarif"
)

// WriteConsole renders the grouped human-readable report. It is called once,
// after the full rule pass, so the report is atomic.
func WriteConsole(w io.Writer, res *validator.Result) {
	fmt.Fprintf(w, "Validating FastMCP server: %s\n\n", res.FilePath)

	if len(res.Findings) == 0 {
		fmt.Fprintln(w, "No issues found!")
		return
	}

	groups := []struct {
		label    string
		severity findings.Severity
	}{
		{"Errors", findings.SeverityError},
		{"Warnings", findings.SeverityWarning},
		{"Info", findings.SeverityInfo},
	}
	for _, g := range groups {
		group := filter(res.Findings, g.severity)
		if len(group) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s (%d):\n", g.label, len(group))
		for _, f := range group {
			writeFinding(w, f)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Summary: %d errors, %d warnings, %d info\n",
		res.Count(findings.SeverityError),
		res.Count(findings.SeverityWarning),
		res.Count(findings.SeverityInfo),
	)
}

func writeFinding(w io.Writer, f findings.Finding) {
	location := "General"
	if f.Line > 0 {
		location = fmt.Sprintf("Line %d", f.Line)
	}
	fmt.Fprintf(w, "  [%s] %s\n", location, f.Message)
	if f.Suggestion != "" {
		fmt.Fprintf(w, "    suggestion: %s\n", f.Suggestion)
	}
}

func filter(items []findings.Finding, severity findings.Severity) []findings.Finding {
	var out []findings.Finding
	for _, f := range items {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}
