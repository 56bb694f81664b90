package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

func sampleResult() *compliance.ValidationResult {
	findings := []compliance.Finding{
		compliance.Error("csv.coding.present").
			Message("3 row(s) have an empty billing code").
			Field("billing_code").
			Count(3).
			Build(),
		compliance.Info("csv.coding.modifiers").
			Message("no code modifiers column found").
			Expected("modifiers").
			Build(),
	}
	return compliance.Assemble(compliance.FileTypeTabularTall,
		map[string]string{"mrf date": "2024-07-01"}, findings)
}

func TestWriteJSONContract(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatJSON); err != nil {
		t.Fatalf("Write: %v", err)
	}

	var body map[string]any
	if err := json.Unmarshal(buf.Bytes(), &body); err != nil {
		t.Fatalf("invalid JSON output: %v", err)
	}
	for _, key := range []string{"ok", "file_type", "counts", "findings", "metadata"} {
		if _, present := body[key]; !present {
			t.Errorf("JSON body missing %q", key)
		}
	}
	if body["ok"] != false {
		t.Errorf("ok = %v, want false", body["ok"])
	}
	counts := body["counts"].(map[string]any)
	if counts["errors"] != float64(1) {
		t.Errorf("counts.errors = %v, want 1", counts["errors"])
	}
	first := body["findings"].([]any)[0].(map[string]any)
	if first["count"] != float64(3) {
		t.Errorf("findings[0].count = %v, want 3", first["count"])
	}
}

func TestWriteCSVFlatForm(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatCSV); err != nil {
		t.Fatalf("Write: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("output is not parseable CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 findings", len(records))
	}
	if records[0][0] != "severity" || records[0][6] != "count" {
		t.Errorf("header = %v", records[0])
	}
	if records[1][1] != "csv.coding.present" || records[1][6] != "3" {
		t.Errorf("first finding row = %v", records[1])
	}
}

func TestWriteHumanGroupsBySeverity(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, sampleResult(), FormatHuman); err != nil {
		t.Fatalf("Write: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "FAIL") {
		t.Errorf("missing verdict in output:\n%s", out)
	}
	if !strings.Contains(out, "csv.coding.present") {
		t.Errorf("missing finding rule in output:\n%s", out)
	}
	if strings.Index(out, "csv.coding.present") > strings.Index(out, "csv.coding.modifiers") {
		t.Error("errors must be listed before info findings")
	}
}

func TestWriteHumanCleanResult(t *testing.T) {
	res := compliance.Assemble(compliance.FileTypeTabularTall, nil, nil)
	var buf bytes.Buffer
	if err := Write(&buf, res, FormatHuman); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if !strings.Contains(buf.String(), "PASS") {
		t.Errorf("missing PASS verdict:\n%s", buf.String())
	}
	if !strings.Contains(buf.String(), "No findings.") {
		t.Errorf("missing empty-findings line:\n%s", buf.String())
	}
}

func TestUnknownFormat(t *testing.T) {
	if err := Write(&bytes.Buffer{}, sampleResult(), Format("xml")); err == nil {
		t.Error("expected error for unknown format")
	}
	if Format("xml").Valid() {
		t.Error("xml must not be a valid format")
	}
}
