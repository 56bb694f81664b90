package rule

import (
	"strings"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
)

// estimatedRule: rows that express a negotiated charge only as a
// percentage or algorithm must also carry an estimated allowed amount,
// otherwise consumers cannot derive a dollar figure.
type estimatedRule struct{}

func (estimatedRule) Name() string { return RuleChargesEstimated }

func (estimatedRule) Evaluate(ctx *pipeline.Context) []compliance.Finding { return nil }

func (estimatedRule) Scanner(ctx *pipeline.Context) pipeline.RowScanner {
	return &estimatedScanner{ctx: ctx}
}

type estimatedScanner struct {
	ctx   *pipeline.Context
	count int
}

func (s *estimatedScanner) Scan(row []string) {
	if !s.ctx.Spec.Rules.RequireEstimatedAmount {
		return
	}
	indirect := cellSet(s.ctx, row, colmap.FieldChargeNegotiatedPercentage) ||
		cellSet(s.ctx, row, colmap.FieldChargeNegotiatedAlgorithm)
	if !indirect {
		return
	}
	if !cellSet(s.ctx, row, colmap.FieldEstimatedAllowedAmount) {
		s.count++
	}
}

func (s *estimatedScanner) Finish() []compliance.Finding {
	if s.count == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Warning(RuleChargesEstimated).
			Messagef("%d row(s) price by percentage or algorithm without an estimated allowed amount", s.count).
			Expected(colmap.FieldEstimatedAllowedAmount).
			Field(colmap.FieldEstimatedAllowedAmount).
			Count(s.count).
			Build(),
	}
}

// cellSet reports whether any column mapped to the field holds a
// non-blank value in the row.
func cellSet(ctx *pipeline.Context, row []string, field string) bool {
	for _, col := range ctx.Columns(field) {
		if col < len(row) && strings.TrimSpace(row[col]) != "" {
			return true
		}
	}
	return false
}
