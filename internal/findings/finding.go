package findings

// Severity classifies a finding. Only error-severity findings fail a run.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)

// Finding is a single validation observation. Findings are plain immutable
// records: a run collects many of them and reports them in one pass. Line is
// 1-based; 0 means the finding applies to the file as a whole.
type Finding struct {
	Severity   Severity `json:"severity"`
	Line       int      `json:"line,omitempty"`
	Message    string   `json:"message"`
	Suggestion string   `json:"suggestion,omitempty"`
	Rule       string   `json:"rule,omitempty"`
}

// Error builds an error-severity finding.
func Error(line int, message, suggestion string) Finding {
	return Finding{Severity: SeverityError, Line: line, Message: message, Suggestion: suggestion}
}

// Warning builds a warning-severity finding.
func Warning(line int, message, suggestion string) Finding {
	return Finding{Severity: SeverityWarning, Line: line, Message: message, Suggestion: suggestion}
}

// Info builds an info-severity finding. Info findings are only retained by a
// strict-mode Set.
func Info(line int, message, suggestion string) Finding {
	return Finding{Severity: SeverityInfo, Line: line, Message: message, Suggestion: suggestion}
}
