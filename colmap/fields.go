package colmap

// Canonical field names a raw tabular header can normalize to. These are
// the regulation-defined names the rule evaluator works with; raw hospital
// headers are mapped onto them and never inspected directly by rules.
const (
	FieldBillingCode            = "billing_code"
	FieldBillingCodeType        = "billing_code_type"
	FieldBillingCodeTypeVersion = "billing_code_type_version"
	FieldDescription            = "description"
	FieldModifiers              = "modifiers"
	FieldSetting                = "setting"

	FieldPayerName = "payer_name"
	FieldPlanName  = "plan_name"

	FieldChargeGross                = "standard_charge_gross"
	FieldChargeDiscountedCash       = "standard_charge_discounted_cash"
	FieldChargeNegotiatedDollar     = "standard_charge_negotiated_dollar"
	FieldChargeNegotiatedPercentage = "standard_charge_negotiated_percentage"
	FieldChargeNegotiatedAlgorithm  = "standard_charge_negotiated_algorithm"
	FieldChargeMin                  = "standard_charge_min"
	FieldChargeMax                  = "standard_charge_max"
	FieldChargeMethodology          = "standard_charge_methodology"
	FieldEstimatedAllowedAmount     = "estimated_allowed_amount"

	FieldDrugUnit = "drug_unit_of_measurement"
	FieldDrugType = "drug_type_of_measurement"

	FieldHospitalName     = "hospital_name"
	FieldHospitalLocation = "hospital_location"
	FieldHospitalAddress  = "hospital_address"
	FieldLicenseNumber    = "license_number"
	FieldLastUpdated      = "last_updated_on"
)

// ChargeFields lists the canonical dollar-valued charge fields, used by the
// charge sanity rules to pick which mapped columns to scan.
var ChargeFields = []string{
	FieldChargeGross,
	FieldChargeDiscountedCash,
	FieldChargeNegotiatedDollar,
	FieldChargeMin,
	FieldChargeMax,
	FieldEstimatedAllowedAmount,
}

// IdentityFields lists the canonical entity-identity fields checked against
// both the preamble metadata and the mapped headers.
var IdentityFields = []string{
	FieldHospitalName,
	FieldHospitalLocation,
	FieldHospitalAddress,
	FieldLicenseNumber,
}
