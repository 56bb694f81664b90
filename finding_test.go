package compliance

import "testing"

func TestFindingBuilder(t *testing.T) {
	f := Error("tabular.coding.present").
		Message("Code type and code required").
		Expected("billing_code_type, billing_code").
		Actual("code type blank").
		Field("billing_code_type").
		Count(12).
		Build()

	if f.Severity != SeverityError {
		t.Errorf("Severity = %v; want %v", f.Severity, SeverityError)
	}
	if f.Rule != "tabular.coding.present" {
		t.Errorf("Rule = %q", f.Rule)
	}
	if f.Count != 12 {
		t.Errorf("Count = %d; want 12", f.Count)
	}
	if f.Field != "billing_code_type" {
		t.Errorf("Field = %q", f.Field)
	}
}

func TestFindingBuilder_DefaultCount(t *testing.T) {
	f := Warning("schema.unknown").Message("no schema matched").Build()
	if f.Count != 1 {
		t.Errorf("Count = %d; want default 1", f.Count)
	}
}

func TestFindingBuilder_CountClamped(t *testing.T) {
	f := Info("tabular.headers.unmapped").Count(0).Build()
	if f.Count != 1 {
		t.Errorf("Count = %d; want clamp to 1", f.Count)
	}
	f = Info("tabular.headers.unmapped").Count(-5).Build()
	if f.Count != 1 {
		t.Errorf("Count = %d; want clamp to 1", f.Count)
	}
}

func TestFinding_IsError(t *testing.T) {
	if !Error("x").Build().IsError() {
		t.Error("error finding should report IsError")
	}
	if Warning("x").Build().IsError() {
		t.Error("warning finding should not report IsError")
	}
	if Info("x").Build().IsError() {
		t.Error("info finding should not report IsError")
	}
}

func TestFinding_String(t *testing.T) {
	f := Error("tabular.charges.required").
		Message("missing charge columns").
		Field("standard_charge_gross").
		Build()

	got := f.String()
	want := "error [tabular.charges.required]: missing charge columns at standard_charge_gross"
	if got != want {
		t.Errorf("String() = %q; want %q", got, want)
	}
}

func TestSeverity_Valid(t *testing.T) {
	for _, s := range []Severity{SeverityError, SeverityWarning, SeverityInfo} {
		if !s.Valid() {
			t.Errorf("%v should be valid", s)
		}
	}
	if Severity("fatal").Valid() {
		t.Error("unknown severity should be invalid")
	}
}
