package specs

import "testing"

func TestPreamble(t *testing.T) {
	p := Preamble()

	if len(p.RequiredLabels) != 2 {
		t.Fatalf("RequiredLabels = %v; want 2 strict labels", p.RequiredLabels)
	}
	if p.RequiredLabels[0] != "mrf date" {
		t.Errorf("RequiredLabels[0] = %q", p.RequiredLabels[0])
	}
	if len(p.AlternateIndicators) == 0 {
		t.Error("AlternateIndicators should be populated")
	}
	if len(p.DataIndicators) == 0 {
		t.Error("DataIndicators should be populated")
	}
}

func TestTall(t *testing.T) {
	spec := Tall()

	if len(spec.RequiredItemFields) == 0 {
		t.Error("tall spec should list item fields")
	}
	if len(spec.RequiredChargeFields) == 0 {
		t.Error("tall spec should list charge fields")
	}
	if len(spec.RequiredPayerFields) != 2 {
		t.Errorf("RequiredPayerFields = %v; want payer_name and plan_name", spec.RequiredPayerFields)
	}
	if !spec.Rules.RequireCoding || !spec.Rules.RequireDescription {
		t.Error("tall layout rules should require coding and description")
	}
	if !spec.Rules.PairDrugUnitAndType {
		t.Error("tall layout should pair drug unit and type")
	}
}

func TestWide(t *testing.T) {
	spec := Wide()

	if spec.PayerPlanSeparator != "|" {
		t.Errorf("PayerPlanSeparator = %q; want pipe", spec.PayerPlanSeparator)
	}
	if spec.Rules.PairDrugUnitAndType {
		t.Error("wide layout does not carry the drug pair rule")
	}
}

func TestSpecsStableAcrossCalls(t *testing.T) {
	a := Tall()
	b := Tall()
	if len(a.RequiredChargeFields) != len(b.RequiredChargeFields) {
		t.Error("spec should be identical across calls")
	}
}
