package compliance

import "testing"

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()

	if o.MaxSampleRows != 10000 {
		t.Errorf("MaxSampleRows = %d; want 10000", o.MaxSampleRows)
	}
	if o.MaxScanLines != 30 {
		t.Errorf("MaxScanLines = %d; want 30", o.MaxScanLines)
	}
	if o.AlternateMetadataSeverity != SeverityInfo {
		t.Errorf("AlternateMetadataSeverity = %v; want info", o.AlternateMetadataSeverity)
	}
	if o.StrictMetadata {
		t.Error("StrictMetadata should default to false")
	}
}

func TestOptions_Apply(t *testing.T) {
	o := DefaultOptions()
	for _, opt := range []Option{
		WithMaxSampleRows(50),
		WithMaxScanLines(5),
		WithAlternateMetadataSeverity(SeverityWarning),
		WithForceSchema("in-network-rates"),
		WithArrayItemLimit(10),
		WithMetrics(false),
	} {
		opt(o)
	}

	if o.MaxSampleRows != 50 {
		t.Errorf("MaxSampleRows = %d; want 50", o.MaxSampleRows)
	}
	if o.MaxScanLines != 5 {
		t.Errorf("MaxScanLines = %d; want 5", o.MaxScanLines)
	}
	if o.AlternateMetadataSeverity != SeverityWarning {
		t.Errorf("AlternateMetadataSeverity = %v; want warning", o.AlternateMetadataSeverity)
	}
	if o.ForceSchema != "in-network-rates" {
		t.Errorf("ForceSchema = %q", o.ForceSchema)
	}
	if o.ArrayItemLimit != 10 {
		t.Errorf("ArrayItemLimit = %d; want 10", o.ArrayItemLimit)
	}
	if o.CollectMetrics {
		t.Error("CollectMetrics should be disabled")
	}
}

func TestOptions_EffectiveAlternateSeverity(t *testing.T) {
	o := DefaultOptions()
	if got := o.EffectiveAlternateSeverity(); got != SeverityInfo {
		t.Errorf("default = %v; want info", got)
	}

	o.AlternateMetadataSeverity = SeverityWarning
	if got := o.EffectiveAlternateSeverity(); got != SeverityWarning {
		t.Errorf("configured = %v; want warning", got)
	}

	o.StrictMetadata = true
	if got := o.EffectiveAlternateSeverity(); got != SeverityError {
		t.Errorf("strict = %v; want error", got)
	}

	o = &Options{AlternateMetadataSeverity: Severity("bogus")}
	if got := o.EffectiveAlternateSeverity(); got != SeverityInfo {
		t.Errorf("invalid severity = %v; want info fallback", got)
	}
}

func TestOptions_NegativeValuesIgnored(t *testing.T) {
	o := DefaultOptions()
	WithMaxSampleRows(-1)(o)
	if o.MaxSampleRows != 10000 {
		t.Errorf("negative MaxSampleRows should be ignored, got %d", o.MaxSampleRows)
	}
	WithMaxScanLines(0)(o)
	if o.MaxScanLines != 30 {
		t.Errorf("zero MaxScanLines should be ignored, got %d", o.MaxScanLines)
	}
}
