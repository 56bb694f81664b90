// Package report renders a ValidationResult into its consumable forms: a
// field-for-field JSON body, a human-readable summary grouped by
// severity, and a flat CSV with one row per finding for archiving.
package report

import (
	"fmt"
	"io"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// Format selects an output renderer.
type Format string

const (
	FormatHuman Format = "human"
	FormatJSON  Format = "json"
	FormatCSV   Format = "csv"
)

// Valid reports whether the format is a known renderer.
func (f Format) Valid() bool {
	switch f {
	case FormatHuman, FormatJSON, FormatCSV:
		return true
	}
	return false
}

// Write renders the result to w in the requested format.
func Write(w io.Writer, res *compliance.ValidationResult, format Format) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, res)
	case FormatCSV:
		return writeCSV(w, res)
	case FormatHuman:
		return writeHuman(w, res)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}
