// Package rule implements the tabular regulatory rule set. Each rule
// corresponds to one clause of the price-transparency regulation and emits
// at most one summary finding per violation class; per-row findings are
// never produced. Rules register in a fixed order so finding output is
// deterministic for identical input.
package rule

import (
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
)

// Stable rule codes reported on findings.
const (
	RuleMetadataPresent   = "csv.metadata.present"
	RuleEntityIdentity    = "csv.entity.identity"
	RuleChargesRequired   = "csv.charges.required"
	RuleItemsDescription  = "csv.items.description"
	RuleCodingPresent     = "csv.coding.present"
	RuleCodingModifiers   = "csv.coding.modifiers"
	RuleLayoutPayerFields = "csv.layout.payer_fields"
	RulePairsDrugUnit     = "csv.pairs.drug_unit_type"
	RuleChargesNumeric    = "csv.charges.numeric"
	RuleChargesNegative   = "csv.charges.nonnegative"
	RuleChargesEstimated  = "csv.charges.estimated"
	RuleColumnsUnmapped   = "csv.columns.unmapped"
)

// DefaultRegistry builds the rule registry in canonical order. The order
// is part of the output contract: findings always appear in this sequence.
func DefaultRegistry() *pipeline.Registry {
	reg := &pipeline.Registry{}
	reg.Register(
		metadataRule{},
		entityRule{},
		chargesRequiredRule{},
		descriptionRule{},
		codingRule{},
		modifiersRule{},
		layoutRule{},
		drugPairRule{},
		chargesNumericRule{},
		chargesNegativeRule{},
		estimatedRule{},
		unmappedRule{},
	)
	return reg
}
