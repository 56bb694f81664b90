package schema

import (
	"encoding/json"
	"fmt"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// Finding codes emitted by structural validation.
const (
	RuleRequiredMissing = "json.required.missing"
	RuleTypeMismatch    = "json.type.mismatch"
)

// Validate runs full structural validation of a parsed document against a
// descriptor. Each violation becomes one finding whose Field is the
// dotted/bracketed path to the offending node. arrayLimit bounds how many
// elements of each array are inspected; findings for array elements carry
// the exact element index in their path.
func Validate(doc map[string]any, d *Descriptor, arrayLimit int) []compliance.Finding {
	if arrayLimit <= 0 {
		arrayLimit = int(^uint(0) >> 1) // 0 means validate every element
	}
	v := &validator{limit: arrayLimit}
	v.object(doc, d.Body, "")
	return v.findings
}

type validator struct {
	limit    int
	findings []compliance.Finding
}

func (v *validator) object(obj map[string]any, shape Object, path string) {
	for _, f := range shape.Fields {
		fieldPath := f.Name
		if path != "" {
			fieldPath = path + "." + f.Name
		}
		val, ok := obj[f.Name]
		if !ok {
			if f.Required {
				v.findings = append(v.findings,
					compliance.Error(RuleRequiredMissing).
						Messagef("required property %s is missing", fieldPath).
						Expected(string(f.Type)).
						Field(fieldPath).
						Build())
			}
			continue
		}
		v.value(val, f, fieldPath)
	}
}

func (v *validator) value(val any, f Field, path string) {
	actual := kindOf(val)
	if actual != f.Type {
		v.findings = append(v.findings,
			compliance.Error(RuleTypeMismatch).
				Messagef("property %s has the wrong type", path).
				Expected(string(f.Type)).
				Actual(string(actual)).
				Field(path).
				Build())
		return
	}
	switch f.Type {
	case KindArray:
		if f.Items == nil {
			return
		}
		arr := val.([]any)
		for i, elem := range arr {
			if i >= v.limit {
				break
			}
			elemPath := fmt.Sprintf("%s[%d]", path, i)
			obj, ok := elem.(map[string]any)
			if !ok {
				v.findings = append(v.findings,
					compliance.Error(RuleTypeMismatch).
						Messagef("property %s has the wrong type", elemPath).
						Expected(string(KindObject)).
						Actual(string(kindOf(elem))).
						Field(elemPath).
						Build())
				continue
			}
			v.object(obj, *f.Items, elemPath)
		}
	case KindObject:
		// Nested object shapes beyond array elements are not
		// constrained by the known variants.
	}
}

// kindOf maps an encoding/json value onto the schema type vocabulary.
func kindOf(val any) Kind {
	switch val.(type) {
	case string:
		return KindString
	case float64, int, int64, json.Number:
		return KindNumber
	case bool:
		return KindBool
	case map[string]any:
		return KindObject
	case []any:
		return KindArray
	default:
		return Kind("null")
	}
}
