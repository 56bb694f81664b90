package colmap

// The mapping registry is built once at package init and treated as
// immutable for the lifetime of the process. Exact entries always win over
// heuristic rules; among heuristic rules the one matching the most tokens
// wins, and ties resolve to the earliest-registered rule.

// heuristicRule maps a set of required tokens (and optional excluded
// tokens) to a canonical field.
type heuristicRule struct {
	tokens   []string
	excludes []string
	field    string
}

// score is the number of matched tokens; 0 means no match.
func (r heuristicRule) score(tokens map[string]bool) int {
	for _, x := range r.excludes {
		if tokens[x] {
			return 0
		}
	}
	for _, tok := range r.tokens {
		if !tokens[tok] {
			return 0
		}
	}
	return len(r.tokens)
}

// exactTable maps a normalized raw header to its canonical field.
// Canonical names map to themselves so compliant files take the fast path.
var exactTable = map[string]string{
	FieldBillingCode:            FieldBillingCode,
	FieldBillingCodeType:        FieldBillingCodeType,
	FieldBillingCodeTypeVersion: FieldBillingCodeTypeVersion,
	FieldDescription:            FieldDescription,
	FieldModifiers:              FieldModifiers,
	FieldSetting:                FieldSetting,
	FieldPayerName:              FieldPayerName,
	FieldPlanName:               FieldPlanName,

	FieldChargeGross:                FieldChargeGross,
	FieldChargeDiscountedCash:       FieldChargeDiscountedCash,
	FieldChargeNegotiatedDollar:     FieldChargeNegotiatedDollar,
	FieldChargeNegotiatedPercentage: FieldChargeNegotiatedPercentage,
	FieldChargeNegotiatedAlgorithm:  FieldChargeNegotiatedAlgorithm,
	FieldChargeMin:                  FieldChargeMin,
	FieldChargeMax:                  FieldChargeMax,
	FieldChargeMethodology:          FieldChargeMethodology,
	FieldEstimatedAllowedAmount:     FieldEstimatedAllowedAmount,

	FieldDrugUnit: FieldDrugUnit,
	FieldDrugType: FieldDrugType,

	FieldHospitalName:     FieldHospitalName,
	FieldHospitalLocation: FieldHospitalLocation,
	FieldHospitalAddress:  FieldHospitalAddress,
	FieldLicenseNumber:    FieldLicenseNumber,
	FieldLastUpdated:      FieldLastUpdated,

	// Common real-world aliases
	"code":                                FieldBillingCode,
	"code_type":                           FieldBillingCodeType,
	"modifier":                            FieldModifiers,
	"payer":                               FieldPayerName,
	"plan":                                FieldPlanName,
	"standard_charge":                     FieldChargeGross,
	"gross_charge":                        FieldChargeGross,
	"cash_price":                          FieldChargeDiscountedCash,
	"cash_discount_price":                 FieldChargeDiscountedCash,
	"discounted_cash_price":               FieldChargeDiscountedCash,
	"de_identified_min_negotiated_charge": FieldChargeMin,
	"de_identified_max_negotiated_charge": FieldChargeMax,
	"estimated_amount":                    FieldEstimatedAllowedAmount,
	"last_updated":                        FieldLastUpdated,
	"effective_date":                      FieldLastUpdated,
	"hospital_license_number":             FieldLicenseNumber,
}

// heuristicRules is the ordered rule table. Order matters only for
// breaking score ties, so more specific rules sit first as documentation
// of intent rather than necessity.
var heuristicRules = []heuristicRule{
	{tokens: []string{"code", "type"}, field: FieldBillingCodeType},
	{tokens: []string{"code"}, excludes: []string{"type"}, field: FieldBillingCode},

	{tokens: []string{"standard", "charge", "negotiated", "dollar"}, field: FieldChargeNegotiatedDollar},
	{tokens: []string{"standard", "charge", "negotiated", "percentage"}, field: FieldChargeNegotiatedPercentage},
	{tokens: []string{"standard", "charge", "negotiated", "algorithm"}, field: FieldChargeNegotiatedAlgorithm},
	{tokens: []string{"negotiated", "dollar"}, field: FieldChargeNegotiatedDollar},
	{tokens: []string{"negotiated", "percentage"}, field: FieldChargeNegotiatedPercentage},
	{tokens: []string{"negotiated", "algorithm"}, field: FieldChargeNegotiatedAlgorithm},
	{tokens: []string{"gross", "charge"}, field: FieldChargeGross},
	{tokens: []string{"discounted", "cash"}, field: FieldChargeDiscountedCash},
	{tokens: []string{"charge", "min"}, field: FieldChargeMin},
	{tokens: []string{"charge", "max"}, field: FieldChargeMax},
	{tokens: []string{"methodology"}, field: FieldChargeMethodology},
	{tokens: []string{"estimated", "allowed"}, field: FieldEstimatedAllowedAmount},
	{tokens: []string{"estimated", "amount"}, field: FieldEstimatedAllowedAmount},

	{tokens: []string{"payer", "name"}, field: FieldPayerName},
	{tokens: []string{"plan", "name"}, field: FieldPlanName},

	{tokens: []string{"drug", "unit"}, field: FieldDrugUnit},
	{tokens: []string{"drug", "type"}, field: FieldDrugType},

	{tokens: []string{"hospital", "name"}, field: FieldHospitalName},
	{tokens: []string{"hospital", "location"}, field: FieldHospitalLocation},
	{tokens: []string{"hospital", "address"}, field: FieldHospitalAddress},
	{tokens: []string{"license", "number"}, field: FieldLicenseNumber},
	{tokens: []string{"last", "updated"}, field: FieldLastUpdated},

	{tokens: []string{"description"}, field: FieldDescription},
	{tokens: []string{"setting"}, field: FieldSetting},
	{tokens: []string{"modifiers"}, field: FieldModifiers},
}
