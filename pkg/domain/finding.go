package domain

import "fmt"

// Severity classifies a verification finding.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Finding is a single diagnostic produced by a verification rule.
// Findings are collected, never returned as errors: a verification run reports
// everything it saw instead of stopping at the first problem.
type Finding struct {
	Rule      string   `json:"rule"`
	Severity  Severity `json:"severity"`
	ChapterID string   `json:"chapter_id,omitempty"`
	Offset    int      `json:"offset,omitempty"`
	Message   string   `json:"message"`
}

func (f Finding) String() string {
	loc := f.ChapterID
	if loc == "" {
		loc = "book"
	}
	return fmt.Sprintf("[%s] %s: %s (%s)", f.Severity, loc, f.Message, f.Rule)
}

// HasErrors reports whether any finding in the slice is an error.
func HasErrors(findings []Finding) bool {
	for _, f := range findings {
		if f.Severity == SeverityError {
			return true
		}
	}
	return false
}
