package rule

import (
	"strings"

	"github.com/shopspring/decimal"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
)

// dollarFields are the canonical charge fields that must hold dollar
// amounts when populated.
var dollarFields = []string{
	colmap.FieldChargeGross,
	colmap.FieldChargeDiscountedCash,
	colmap.FieldChargeNegotiatedDollar,
	colmap.FieldChargeMin,
	colmap.FieldChargeMax,
	colmap.FieldEstimatedAllowedAmount,
}

// chargesRequiredRule checks that every charge field the active layout
// requires has a mapped column. Missing fields are reported together in
// one finding, not one per field.
type chargesRequiredRule struct{}

func (chargesRequiredRule) Name() string { return RuleChargesRequired }

func (chargesRequiredRule) Evaluate(ctx *pipeline.Context) []compliance.Finding {
	var missing []string
	for _, field := range ctx.Spec.RequiredChargeFields {
		if !ctx.HasField(field) {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	return []compliance.Finding{
		compliance.Error(RuleChargesRequired).
			Messagef("required charge columns missing: %s", strings.Join(missing, ", ")).
			Expected(strings.Join(ctx.Spec.RequiredChargeFields, ", ")).
			Build(),
	}
}

// parseCharge normalizes a raw charge cell and parses it as a decimal
// amount. Currency symbols, thousands separators and surrounding
// whitespace are tolerated.
func parseCharge(raw string) (decimal.Decimal, bool) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")
	if s == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// chargesNumericRule samples every mapped charge column and flags cells
// that carry a value but do not parse as an amount. Advisory only: some
// columns legitimately hold algorithm descriptions.
type chargesNumericRule struct{}

func (chargesNumericRule) Name() string { return RuleChargesNumeric }

func (chargesNumericRule) Evaluate(ctx *pipeline.Context) []compliance.Finding { return nil }

func (chargesNumericRule) Scanner(ctx *pipeline.Context) pipeline.RowScanner {
	return &chargeValueScanner{
		cols: dollarColumns(ctx),
		violated: func(d decimal.Decimal, ok bool) bool {
			return !ok
		},
		finish: func(n int) compliance.Finding {
			return compliance.Warning(RuleChargesNumeric).
				Messagef("%d row(s) carry non-numeric values in dollar charge columns", n).
				Expected("numeric amount").
				Count(n).
				Build()
		},
	}
}

// chargesNegativeRule flags negative amounts in dollar charge columns.
type chargesNegativeRule struct{}

func (chargesNegativeRule) Name() string { return RuleChargesNegative }

func (chargesNegativeRule) Evaluate(ctx *pipeline.Context) []compliance.Finding { return nil }

func (chargesNegativeRule) Scanner(ctx *pipeline.Context) pipeline.RowScanner {
	return &chargeValueScanner{
		cols: dollarColumns(ctx),
		violated: func(d decimal.Decimal, ok bool) bool {
			return ok && d.IsNegative()
		},
		finish: func(n int) compliance.Finding {
			return compliance.Error(RuleChargesNegative).
				Messagef("%d row(s) carry negative charge amounts", n).
				Expected("amount >= 0").
				Count(n).
				Build()
		},
	}
}

// chargeValueScanner counts rows with at least one violating cell among
// the watched columns and emits a single summary finding.
type chargeValueScanner struct {
	cols     []int
	violated func(decimal.Decimal, bool) bool
	finish   func(int) compliance.Finding
	count    int
}

func (s *chargeValueScanner) Scan(row []string) {
	for _, col := range s.cols {
		if col >= len(row) {
			continue
		}
		cell := strings.TrimSpace(row[col])
		if cell == "" {
			continue
		}
		d, ok := parseCharge(cell)
		if s.violated(d, ok) {
			s.count++
			return
		}
	}
}

func (s *chargeValueScanner) Finish() []compliance.Finding {
	if s.count == 0 {
		return nil
	}
	return []compliance.Finding{s.finish(s.count)}
}

// dollarColumns returns the mapped columns that must hold numeric dollar
// amounts. Percentage and algorithm columns are excluded.
func dollarColumns(ctx *pipeline.Context) []int {
	var cols []int
	for _, field := range dollarFields {
		cols = append(cols, ctx.Columns(field)...)
	}
	return cols
}
