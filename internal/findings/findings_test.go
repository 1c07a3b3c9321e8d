package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetDropsInfoUnlessStrict(t *testing.T) {
	loose := NewSet(false)
	loose.Add(
		Error(1, "broken", ""),
		Info(0, "observation", ""),
		Warning(2, "untidy", ""),
	)
	assert.Len(t, loose.Items(), 2)
	assert.Empty(t, loose.BySeverity(SeverityInfo))

	strict := NewSet(true)
	strict.Add(Info(0, "observation", ""))
	assert.Len(t, strict.Items(), 1)
}

func TestSetPreservesEmissionOrderAndDuplicates(t *testing.T) {
	s := NewSet(true)
	s.Add(
		Warning(3, "missing type hint", ""),
		Warning(3, "missing type hint", ""),
		Error(1, "broken", ""),
	)

	items := s.Items()
	assert.Len(t, items, 3)
	assert.Equal(t, SeverityWarning, items[0].Severity)
	assert.Equal(t, items[0], items[1])
	assert.Equal(t, SeverityError, items[2].Severity)
}

func TestVerdictLawOverArbitrarySets(t *testing.T) {
	tests := []struct {
		name  string
		items []Finding
	}{
		{"empty", nil},
		{"warnings only", []Finding{Warning(1, "w", ""), Info(0, "i", "")}},
		{"single error", []Finding{Error(0, "e", "")}},
		{"mixed", []Finding{Warning(1, "w", ""), Error(2, "e", ""), Info(0, "i", "")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSet(true)
			s.Add(tt.items...)
			assert.Equal(t, s.Count(SeverityError) > 0, s.HasErrors())
		})
	}
}

func TestCounts(t *testing.T) {
	s := NewSet(true)
	s.Add(
		Error(1, "e1", ""),
		Error(2, "e2", ""),
		Warning(3, "w", ""),
		Info(0, "i", ""),
	)

	assert.Equal(t, 2, s.Count(SeverityError))
	assert.Equal(t, 1, s.Count(SeverityWarning))
	assert.Equal(t, 1, s.Count(SeverityInfo))
	assert.Len(t, s.BySeverity(SeverityError), 2)
}
