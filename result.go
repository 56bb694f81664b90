package compliance

// FileType identifies the classified shape of the validated file.
type FileType string

const (
	// FileTypeTabularTall is a spreadsheet with one row per item-payer combination.
	FileTypeTabularTall FileType = "tabular-tall"
	// FileTypeTabularWide is a spreadsheet with repeated payer-specific column groups.
	FileTypeTabularWide FileType = "tabular-wide"
	// FileTypeInNetworkRates is a structured negotiated-rate document.
	FileTypeInNetworkRates FileType = "structured-in-network-rates"
	// FileTypeAllowedAmounts is a structured allowed-amount document.
	FileTypeAllowedAmounts FileType = "structured-allowed-amounts"
	// FileTypeProviderReference is a structured provider-reference document.
	FileTypeProviderReference FileType = "structured-provider-reference"
	// FileTypeStructuredUnknown is a structured document matching no known schema.
	FileTypeStructuredUnknown FileType = "structured-unknown"
	// FileTypeUnknown means the input could not be classified at all.
	FileTypeUnknown FileType = "unknown"
)

// Counts holds finding totals by severity.
type Counts struct {
	Errors   int `json:"errors"`
	Warnings int `json:"warnings"`
	Info     int `json:"info"`
}

// Total returns the number of findings across all severities.
func (c Counts) Total() int {
	return c.Errors + c.Warnings + c.Info
}

// ValidationResult contains the outcome of validating one file.
// It is assembled once per validation call and never mutated afterwards.
//
// Invariants: OK == (Counts.Errors == 0), and Counts tallies Findings by
// severity (each Finding contributes one, regardless of its row Count).
type ValidationResult struct {
	// OK is true if no error findings were produced
	OK bool `json:"ok"`

	// FileType is the classified shape of the input
	FileType FileType `json:"file_type"`

	// Counts holds finding totals by severity
	Counts Counts `json:"counts"`

	// Findings in rule-registration order, stable for identical input
	Findings []Finding `json:"findings"`

	// Metadata holds the parsed preamble or header info, opaque to callers
	Metadata map[string]string `json:"metadata"`

	// RunID correlates results in batch validation; empty otherwise
	RunID string `json:"run_id,omitempty"`
}

// Assemble builds a frozen ValidationResult from the findings of a single
// validation call, computing Counts and OK.
func Assemble(fileType FileType, metadata map[string]string, findings []Finding) *ValidationResult {
	if metadata == nil {
		metadata = map[string]string{}
	}
	if findings == nil {
		findings = []Finding{}
	}

	var counts Counts
	for _, f := range findings {
		switch f.Severity {
		case SeverityError:
			counts.Errors++
		case SeverityWarning:
			counts.Warnings++
		case SeverityInfo:
			counts.Info++
		}
	}

	return &ValidationResult{
		OK:       counts.Errors == 0,
		FileType: fileType,
		Counts:   counts,
		Findings: findings,
		Metadata: metadata,
	}
}

// HasErrors returns true if any error findings are present.
func (r *ValidationResult) HasErrors() bool {
	return r.Counts.Errors > 0
}

// ErrorCount returns the number of error findings.
func (r *ValidationResult) ErrorCount() int {
	return r.Counts.Errors
}

// WarningCount returns the number of warning findings.
func (r *ValidationResult) WarningCount() int {
	return r.Counts.Warnings
}

// InfoCount returns the number of info findings.
func (r *ValidationResult) InfoCount() int {
	return r.Counts.Info
}

// Errors returns all error findings.
func (r *ValidationResult) Errors() []Finding {
	return r.bySeverity(SeverityError)
}

// Warnings returns all warning findings.
func (r *ValidationResult) Warnings() []Finding {
	return r.bySeverity(SeverityWarning)
}

// Infos returns all info findings.
func (r *ValidationResult) Infos() []Finding {
	return r.bySeverity(SeverityInfo)
}

func (r *ValidationResult) bySeverity(s Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == s {
			out = append(out, f)
		}
	}
	return out
}

// RowsAffected returns the total number of source rows summarized by
// findings of the given severity.
func (r *ValidationResult) RowsAffected(s Severity) int {
	total := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			total += f.Count
		}
	}
	return total
}
