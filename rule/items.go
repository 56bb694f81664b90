package rule

import (
	"strings"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
)

// descriptionRule requires every item row to carry a service description.
// A missing description column is one violation; blank descriptions in
// data rows are counted and reported as a single summary finding.
type descriptionRule struct{}

func (descriptionRule) Name() string { return RuleItemsDescription }

func (descriptionRule) Evaluate(ctx *pipeline.Context) []compliance.Finding { return nil }

func (descriptionRule) Scanner(ctx *pipeline.Context) pipeline.RowScanner {
	return &descriptionScanner{ctx: ctx}
}

type descriptionScanner struct {
	ctx   *pipeline.Context
	blank int
}

func (s *descriptionScanner) Scan(row []string) {
	if !s.ctx.Spec.Rules.RequireDescription || !s.ctx.HasField(colmap.FieldDescription) {
		return
	}
	cell, _ := s.ctx.Cell(row, colmap.FieldDescription)
	if strings.TrimSpace(cell) == "" {
		s.blank++
	}
}

func (s *descriptionScanner) Finish() []compliance.Finding {
	if !s.ctx.Spec.Rules.RequireDescription {
		return nil
	}
	if !s.ctx.HasField(colmap.FieldDescription) {
		return []compliance.Finding{
			compliance.Error(RuleItemsDescription).
				Message("no item description column found").
				Expected(colmap.FieldDescription).
				Field(colmap.FieldDescription).
				Build(),
		}
	}
	if s.blank == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Error(RuleItemsDescription).
			Messagef("%d row(s) have an empty item description", s.blank).
			Field(colmap.FieldDescription).
			Count(s.blank).
			Build(),
	}
}

// codingRule requires billing code and code type columns, and counts data
// rows whose billing code cell is blank.
type codingRule struct{}

func (codingRule) Name() string { return RuleCodingPresent }

func (codingRule) Evaluate(ctx *pipeline.Context) []compliance.Finding { return nil }

func (codingRule) Scanner(ctx *pipeline.Context) pipeline.RowScanner {
	return &codingScanner{ctx: ctx}
}

type codingScanner struct {
	ctx   *pipeline.Context
	blank int
}

func (s *codingScanner) Scan(row []string) {
	if !s.ctx.Spec.Rules.RequireCoding || !s.ctx.HasField(colmap.FieldBillingCode) {
		return
	}
	cell, _ := s.ctx.Cell(row, colmap.FieldBillingCode)
	if strings.TrimSpace(cell) == "" {
		s.blank++
	}
}

func (s *codingScanner) Finish() []compliance.Finding {
	if !s.ctx.Spec.Rules.RequireCoding {
		return nil
	}
	var missing []string
	for _, f := range []string{colmap.FieldBillingCode, colmap.FieldBillingCodeType} {
		if !s.ctx.HasField(f) {
			missing = append(missing, f)
		}
	}
	if len(missing) > 0 {
		return []compliance.Finding{
			compliance.Error(RuleCodingPresent).
				Messagef("coding columns missing: %s", strings.Join(missing, ", ")).
				Expected(colmap.FieldBillingCode + ", " + colmap.FieldBillingCodeType).
				Build(),
		}
	}
	if s.blank == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Error(RuleCodingPresent).
			Messagef("%d row(s) have an empty billing code", s.blank).
			Field(colmap.FieldBillingCode).
			Count(s.blank).
			Build(),
	}
}

// modifiersRule is advisory: a modifiers column helps consumers
// disambiguate procedure variants but is not required by every layout.
type modifiersRule struct{}

func (modifiersRule) Name() string { return RuleCodingModifiers }

func (modifiersRule) Evaluate(ctx *pipeline.Context) []compliance.Finding {
	if ctx.HasField(colmap.FieldModifiers) {
		return nil
	}
	return []compliance.Finding{
		compliance.Info(RuleCodingModifiers).
			Message("no code modifiers column found").
			Expected(colmap.FieldModifiers).
			Field(colmap.FieldModifiers).
			Build(),
	}
}
