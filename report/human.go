package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

var (
	passLabel = color.New(color.FgGreen, color.Bold).Sprint("PASS")
	failLabel = color.New(color.FgRed, color.Bold).Sprint("FAIL")

	severityLabels = map[compliance.Severity]string{
		compliance.SeverityError:   color.New(color.FgRed).Sprint("error"),
		compliance.SeverityWarning: color.New(color.FgYellow).Sprint("warning"),
		compliance.SeverityInfo:    color.New(color.FgCyan).Sprint("info"),
	}
)

// writeHuman renders the summary line, then the findings grouped by
// severity with errors first.
func writeHuman(w io.Writer, res *compliance.ValidationResult) error {
	verdict := passLabel
	if !res.OK {
		verdict = failLabel
	}
	fmt.Fprintf(w, "%s  %s  (%d error(s), %d warning(s), %d info)\n\n",
		verdict, res.FileType, res.Counts.Errors, res.Counts.Warnings, res.Counts.Info)

	if len(res.Findings) == 0 {
		fmt.Fprintln(w, "No findings.")
		return nil
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.AppendHeader(table.Row{"Severity", "Rule", "Message", "Expected", "Actual", "Rows"})
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, WidthMax: 60},
		{Number: 4, WidthMax: 30},
		{Number: 5, WidthMax: 30},
	})
	for _, sev := range []compliance.Severity{
		compliance.SeverityError, compliance.SeverityWarning, compliance.SeverityInfo,
	} {
		for _, f := range res.Findings {
			if f.Severity != sev {
				continue
			}
			tw.AppendRow(table.Row{
				severityLabels[sev], f.Rule, f.Message, f.Expected, f.Actual, f.Count,
			})
		}
	}
	tw.Render()
	return nil
}
