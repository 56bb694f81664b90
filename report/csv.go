package report

import (
	"encoding/csv"
	"io"
	"strconv"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// csvHeader is the archivable flat form consumed by the evidence-pack
// boundary; column names and order are part of the external contract.
var csvHeader = []string{"severity", "rule", "field", "message", "expected", "actual", "count"}

func writeCSV(w io.Writer, res *compliance.ValidationResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for _, f := range res.Findings {
		rec := []string{
			string(f.Severity),
			f.Rule,
			f.Field,
			f.Message,
			f.Expected,
			f.Actual,
			strconv.Itoa(f.Count),
		}
		if err := cw.Write(rec); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
