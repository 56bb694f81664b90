// Package schema detects which structured-document variant a JSON file
// follows and validates it against that variant's shape. Three variants
// are known: negotiated-rate files, allowed-amount files and
// provider-reference files. The descriptor registry is built at process
// start and never mutated.
package schema

import (
	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// Kind is the JSON type a field must hold.
type Kind string

const (
	KindString Kind = "string"
	KindNumber Kind = "number"
	KindBool   Kind = "boolean"
	KindObject Kind = "object"
	KindArray  Kind = "array"
)

// Field is one property constraint inside an object.
type Field struct {
	Name     string
	Type     Kind
	Required bool

	// Items constrains the elements of an array-typed field when the
	// elements are objects. Nil means element shape is unconstrained.
	Items *Object
}

// Object is the shape constraint for a JSON object.
type Object struct {
	Fields []Field
}

// Descriptor ties a schema identifier to its detection signature and its
// validation body.
type Descriptor struct {
	// ID is the stable schema identifier, also usable as a forced
	// override from configuration.
	ID string

	// FileType is reported on the ValidationResult when this schema is
	// selected.
	FileType compliance.FileType

	// Signature is the minimal top-level key set whose joint presence
	// selects this schema.
	Signature []string

	Body Object
}

// Known schema identifiers.
const (
	SchemaInNetworkRates    = "in-network-rates"
	SchemaAllowedAmounts    = "allowed-amounts"
	SchemaProviderReference = "provider-reference"
)

// registry holds the known variants. Read-only after init.
var registry = []Descriptor{
	{
		ID:        SchemaInNetworkRates,
		FileType:  compliance.FileTypeInNetworkRates,
		Signature: []string{"in_network", "provider_references"},
		Body: Object{Fields: []Field{
			{Name: "reporting_entity_name", Type: KindString, Required: true},
			{Name: "reporting_entity_type", Type: KindString, Required: true},
			{Name: "last_updated_on", Type: KindString, Required: true},
			{Name: "version", Type: KindString, Required: true},
			{Name: "provider_references", Type: KindArray, Required: true},
			{Name: "in_network", Type: KindArray, Required: true, Items: &Object{Fields: []Field{
				{Name: "negotiation_arrangement", Type: KindString, Required: true},
				{Name: "name", Type: KindString, Required: true},
				{Name: "billing_code_type", Type: KindString, Required: true},
				{Name: "billing_code", Type: KindString, Required: true},
				{Name: "description", Type: KindString, Required: true},
				{Name: "negotiated_rates", Type: KindArray, Required: true},
			}}},
		}},
	},
	{
		ID:        SchemaAllowedAmounts,
		FileType:  compliance.FileTypeAllowedAmounts,
		Signature: []string{"allowed_amounts", "provider_references"},
		Body: Object{Fields: []Field{
			{Name: "reporting_entity_name", Type: KindString, Required: true},
			{Name: "reporting_entity_type", Type: KindString, Required: true},
			{Name: "last_updated_on", Type: KindString, Required: true},
			{Name: "version", Type: KindString, Required: true},
			{Name: "provider_references", Type: KindArray, Required: true},
			{Name: "allowed_amounts", Type: KindArray, Required: true, Items: &Object{Fields: []Field{
				{Name: "billing_code_type", Type: KindString, Required: true},
				{Name: "billing_code", Type: KindString, Required: true},
				{Name: "description", Type: KindString, Required: true},
				{Name: "payments", Type: KindArray, Required: true},
			}}},
		}},
	},
	{
		ID:        SchemaProviderReference,
		FileType:  compliance.FileTypeProviderReference,
		Signature: []string{"provider_group_id", "provider_groups"},
		Body: Object{Fields: []Field{
			{Name: "provider_group_id", Type: KindNumber, Required: true},
			{Name: "provider_groups", Type: KindArray, Required: true, Items: &Object{Fields: []Field{
				{Name: "npi", Type: KindArray, Required: true},
				{Name: "tin", Type: KindObject, Required: true},
			}}},
		}},
	},
}

// Registry returns the known descriptors in registration order.
func Registry() []Descriptor {
	return registry
}

// ByID looks up a descriptor for a forced schema override.
func ByID(id string) (*Descriptor, bool) {
	for i := range registry {
		if registry[i].ID == id {
			return &registry[i], true
		}
	}
	return nil, false
}
