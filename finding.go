package compliance

import "fmt"

// Severity represents the severity of a validation finding.
type Severity string

const (
	// SeverityError indicates a rule violation that makes the file non-compliant.
	SeverityError Severity = "error"
	// SeverityWarning indicates a potential problem that should be reviewed.
	SeverityWarning Severity = "warning"
	// SeverityInfo indicates advisory feedback.
	SeverityInfo Severity = "info"
)

// Valid reports whether s is one of the known severities.
func (s Severity) Valid() bool {
	switch s {
	case SeverityError, SeverityWarning, SeverityInfo:
		return true
	}
	return false
}

// Finding represents a single validation observation. A Finding is a value
// type and is never mutated after it is built.
//
// Count is the number of source rows the finding summarizes. Rules that scan
// row data collapse all affected rows into one Finding whose Count carries
// the row total; per-row findings are never emitted.
type Finding struct {
	// Severity of the finding (error, warning, info)
	Severity Severity `json:"severity"`

	// Rule is the stable rule code (e.g. "csv.coding.present")
	Rule string `json:"rule"`

	// Message contains human-readable details
	Message string `json:"message"`

	// Expected describes what the rule wanted, when known
	Expected string `json:"expected,omitempty"`

	// Actual describes what was observed instead, when known
	Actual string `json:"actual,omitempty"`

	// Field is the raw or canonical header, or the document path, involved
	Field string `json:"field,omitempty"`

	// Count is the number of source rows this finding summarizes (>= 1)
	Count int `json:"count"`
}

// IsError returns true if this is an error finding.
func (f Finding) IsError() bool {
	return f.Severity == SeverityError
}

// String returns a human-readable representation of the finding.
func (f Finding) String() string {
	loc := ""
	if f.Field != "" {
		loc = " at " + f.Field
	}
	return string(f.Severity) + " [" + f.Rule + "]: " + f.Message + loc
}

// FindingBuilder provides a fluent API for building findings.
type FindingBuilder struct {
	finding Finding
}

// NewFinding creates a new FindingBuilder with Count preset to 1.
func NewFinding(severity Severity, rule string) *FindingBuilder {
	return &FindingBuilder{
		finding: Finding{
			Severity: severity,
			Rule:     rule,
			Count:    1,
		},
	}
}

// Error creates an error finding builder.
func Error(rule string) *FindingBuilder {
	return NewFinding(SeverityError, rule)
}

// Warning creates a warning finding builder.
func Warning(rule string) *FindingBuilder {
	return NewFinding(SeverityWarning, rule)
}

// Info creates an info finding builder.
func Info(rule string) *FindingBuilder {
	return NewFinding(SeverityInfo, rule)
}

// Message sets the human-readable message.
func (b *FindingBuilder) Message(msg string) *FindingBuilder {
	b.finding.Message = msg
	return b
}

// Messagef sets a formatted human-readable message.
func (b *FindingBuilder) Messagef(format string, args ...any) *FindingBuilder {
	b.finding.Message = fmt.Sprintf(format, args...)
	return b
}

// Expected sets the expected value description.
func (b *FindingBuilder) Expected(expected string) *FindingBuilder {
	b.finding.Expected = expected
	return b
}

// Actual sets the observed value description.
func (b *FindingBuilder) Actual(actual string) *FindingBuilder {
	b.finding.Actual = actual
	return b
}

// Field sets the header or document path the finding refers to.
func (b *FindingBuilder) Field(field string) *FindingBuilder {
	b.finding.Field = field
	return b
}

// Count sets the number of rows the finding summarizes.
// Values below 1 are clamped to 1.
func (b *FindingBuilder) Count(n int) *FindingBuilder {
	if n < 1 {
		n = 1
	}
	b.finding.Count = n
	return b
}

// Build returns the constructed finding.
func (b *FindingBuilder) Build() Finding {
	return b.finding
}
