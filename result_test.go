package compliance

import "testing"

func TestAssemble_Counts(t *testing.T) {
	findings := []Finding{
		Error("a").Message("one").Build(),
		Warning("b").Message("two").Build(),
		Warning("c").Message("three").Build(),
		Info("d").Message("four").Build(),
	}

	res := Assemble(FileTypeTabularTall, nil, findings)

	if res.Counts.Errors != 1 || res.Counts.Warnings != 2 || res.Counts.Info != 1 {
		t.Errorf("Counts = %+v; want 1/2/1", res.Counts)
	}
	if res.Counts.Total() != len(res.Findings) {
		t.Errorf("Counts.Total() = %d; want %d", res.Counts.Total(), len(res.Findings))
	}
	if res.OK {
		t.Error("OK should be false when errors are present")
	}
}

func TestAssemble_OKImpliesNoErrors(t *testing.T) {
	res := Assemble(FileTypeTabularWide, nil, []Finding{
		Warning("b").Build(),
		Info("d").Build(),
	})
	if !res.OK {
		t.Error("OK should be true when only warnings and info are present")
	}
	if res.HasErrors() {
		t.Error("HasErrors should be false")
	}
}

func TestAssemble_EmptyInputs(t *testing.T) {
	res := Assemble(FileTypeUnknown, nil, nil)
	if !res.OK {
		t.Error("empty result should be OK")
	}
	if res.Findings == nil {
		t.Error("Findings should be non-nil for JSON stability")
	}
	if res.Metadata == nil {
		t.Error("Metadata should be non-nil for JSON stability")
	}
}

func TestResult_SeverityAccessors(t *testing.T) {
	res := Assemble(FileTypeInNetworkRates, nil, []Finding{
		Error("a").Build(),
		Error("b").Build(),
		Warning("c").Build(),
		Info("d").Build(),
	})

	if got := len(res.Errors()); got != 2 {
		t.Errorf("len(Errors()) = %d; want 2", got)
	}
	if got := len(res.Warnings()); got != 1 {
		t.Errorf("len(Warnings()) = %d; want 1", got)
	}
	if got := len(res.Infos()); got != 1 {
		t.Errorf("len(Infos()) = %d; want 1", got)
	}
	if res.ErrorCount() != 2 || res.WarningCount() != 1 || res.InfoCount() != 1 {
		t.Errorf("count accessors = %d/%d/%d; want 2/1/1",
			res.ErrorCount(), res.WarningCount(), res.InfoCount())
	}
}

func TestResult_RowsAffected(t *testing.T) {
	res := Assemble(FileTypeTabularTall, nil, []Finding{
		Error("a").Count(10).Build(),
		Error("b").Count(5).Build(),
		Warning("c").Count(3).Build(),
	})

	if got := res.RowsAffected(SeverityError); got != 15 {
		t.Errorf("RowsAffected(error) = %d; want 15", got)
	}
	if got := res.RowsAffected(SeverityWarning); got != 3 {
		t.Errorf("RowsAffected(warning) = %d; want 3", got)
	}
}
