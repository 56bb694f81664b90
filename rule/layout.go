package rule

import (
	"strings"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
	"github.com/RichardJoy94/clearcare-compliance/tabular"
)

// layoutRule enforces the shape-specific column requirements: tall files
// identify payers through dedicated payer and plan columns, wide files
// through repeated payer column groups the classifier already verified.
// Generic-profile files are not held to payer requirements.
type layoutRule struct{}

func (layoutRule) Name() string { return RuleLayoutPayerFields }

func (layoutRule) Evaluate(ctx *pipeline.Context) []compliance.Finding {
	if ctx.Layout != tabular.LayoutTall || len(ctx.Spec.RequiredPayerFields) == 0 {
		return nil
	}
	var missing []string
	for _, field := range ctx.Spec.RequiredPayerFields {
		if !ctx.HasField(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Error(RuleLayoutPayerFields).
			Messagef("payer identification columns missing: %s", strings.Join(missing, ", ")).
			Expected(strings.Join(ctx.Spec.RequiredPayerFields, ", ")).
			Build(),
	}
}

// drugPairRule requires the drug unit-of-measure and drug type fields to
// travel together, at both levels: a column for one without the other is
// a violation, and so is a row that fills one cell while leaving its
// partner blank. Either way, one finding names both canonical fields.
type drugPairRule struct{}

func (drugPairRule) Name() string { return RulePairsDrugUnit }

func (drugPairRule) Evaluate(ctx *pipeline.Context) []compliance.Finding { return nil }

func (drugPairRule) Scanner(ctx *pipeline.Context) pipeline.RowScanner {
	return &drugPairScanner{ctx: ctx}
}

type drugPairScanner struct {
	ctx        *pipeline.Context
	mismatched int
}

func (s *drugPairScanner) Scan(row []string) {
	if !s.ctx.Spec.Rules.PairDrugUnitAndType {
		return
	}
	if !s.ctx.HasField(colmap.FieldDrugUnit) || !s.ctx.HasField(colmap.FieldDrugType) {
		return
	}
	if cellSet(s.ctx, row, colmap.FieldDrugUnit) != cellSet(s.ctx, row, colmap.FieldDrugType) {
		s.mismatched++
	}
}

func (s *drugPairScanner) Finish() []compliance.Finding {
	if !s.ctx.Spec.Rules.PairDrugUnitAndType {
		return nil
	}
	hasUnit := s.ctx.HasField(colmap.FieldDrugUnit)
	hasType := s.ctx.HasField(colmap.FieldDrugType)
	if hasUnit != hasType {
		present, absent := colmap.FieldDrugUnit, colmap.FieldDrugType
		if hasType {
			present, absent = colmap.FieldDrugType, colmap.FieldDrugUnit
		}
		return []compliance.Finding{
			compliance.Error(RulePairsDrugUnit).
				Messagef("%s is present but %s is missing; both must appear together", present, absent).
				Expected(colmap.FieldDrugUnit + " with " + colmap.FieldDrugType).
				Actual(present + " only").
				Build(),
		}
	}
	if s.mismatched == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Error(RulePairsDrugUnit).
			Messagef("%d row(s) fill one of %s and %s while leaving the other blank", s.mismatched, colmap.FieldDrugUnit, colmap.FieldDrugType).
			Expected(colmap.FieldDrugUnit + " with " + colmap.FieldDrugType).
			Count(s.mismatched).
			Build(),
	}
}

// unmappedRule notes headers that matched no canonical field. The columns
// are preserved and visible to validation, but unmapped headers usually
// indicate naming drift worth fixing.
type unmappedRule struct{}

func (unmappedRule) Name() string { return RuleColumnsUnmapped }

func (unmappedRule) Evaluate(ctx *pipeline.Context) []compliance.Finding {
	var raw []string
	for _, m := range ctx.Mappings {
		if !m.Mapped() && strings.TrimSpace(m.Raw) != "" {
			raw = append(raw, m.Raw)
		}
	}
	if len(raw) == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Info(RuleColumnsUnmapped).
			Messagef("%d column(s) did not match any canonical field: %s", len(raw), strings.Join(raw, ", ")).
			Count(len(raw)).
			Build(),
	}
}
