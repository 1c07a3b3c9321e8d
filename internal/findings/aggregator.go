package findings

// Set accumulates findings in emission order. When the Set was not built for
// strict mode, info findings are dropped on Add rather than stored and
// filtered later, so no suppressed state ever exists.
type Set struct {
	strict bool
	items  []Finding
}

// NewSet creates an aggregator for one validation run.
func NewSet(strict bool) *Set {
	return &Set{strict: strict}
}

// Add appends findings, preserving their order. Identical findings are not
// deduplicated: repeated issues on distinct parameters or lines are each
// reported.
func (s *Set) Add(items ...Finding) {
	for _, f := range items {
		if f.Severity == SeverityInfo && !s.strict {
			continue
		}
		s.items = append(s.items, f)
	}
}

// Items returns the accumulated findings in emission order.
func (s *Set) Items() []Finding {
	return s.items
}

// BySeverity returns the findings of the given severity, in emission order.
func (s *Set) BySeverity(severity Severity) []Finding {
	var out []Finding
	for _, f := range s.items {
		if f.Severity == severity {
			out = append(out, f)
		}
	}
	return out
}

// Count returns the number of findings of the given severity.
func (s *Set) Count(severity Severity) int {
	n := 0
	for _, f := range s.items {
		if f.Severity == severity {
			n++
		}
	}
	return n
}

// HasErrors reports whether any error-severity finding was recorded. The
// run's verdict is the negation of this.
func (s *Set) HasErrors() bool {
	return s.Count(SeverityError) > 0
}
