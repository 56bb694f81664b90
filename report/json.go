package report

import (
	"encoding/json"
	"io"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// writeJSON emits the result verbatim: the upload boundary consumes this
// body unchanged, so the field names are part of the external contract.
func writeJSON(w io.Writer, res *compliance.ValidationResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
