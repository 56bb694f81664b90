package schema

import (
	"fmt"
	"sort"
	"strings"

	"github.com/buger/jsonparser"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// Finding codes for the structured path.
const (
	RuleSchemaUnknown = "json.schema.unknown"
)

// TopLevelKeys extracts the key set of the document's root object without
// materializing the whole document. A root that is not a JSON object
// (such as a bare array) yields an empty set.
func TopLevelKeys(data []byte) (map[string]bool, error) {
	keys := make(map[string]bool)
	err := jsonparser.ObjectEach(data, func(key, _ []byte, _ jsonparser.ValueType, _ int) error {
		keys[string(key)] = true
		return nil
	})
	if err != nil {
		if _, dt, _, aerr := jsonparser.Get(data); aerr == nil && dt == jsonparser.Array {
			return map[string]bool{}, nil
		}
		return nil, fmt.Errorf("inspect top-level keys: %w", err)
	}
	return keys, nil
}

// Match selects the schema whose signature keys are all present in the
// document's root. When several signatures match, the largest signature
// wins as the most specific. A nil descriptor plus one warning finding
// means no known variant matched; validation does not abort on it.
func Match(keys map[string]bool) (*Descriptor, []compliance.Finding) {
	var best *Descriptor
	for i := range registry {
		d := &registry[i]
		if !signaturePresent(d.Signature, keys) {
			continue
		}
		if best == nil || len(d.Signature) > len(best.Signature) {
			best = d
		}
	}
	if best != nil {
		return best, nil
	}

	known := make([]string, 0, len(registry))
	for _, d := range registry {
		known = append(known, d.ID)
	}
	return nil, []compliance.Finding{
		compliance.Warning(RuleSchemaUnknown).
			Message("document matches no known schema signature").
			Expected(strings.Join(known, ", ")).
			Actual(joinKeys(keys)).
			Build(),
	}
}

func signaturePresent(sig []string, keys map[string]bool) bool {
	for _, k := range sig {
		if !keys[k] {
			return false
		}
	}
	return len(sig) > 0
}

func joinKeys(keys map[string]bool) string {
	out := make([]string, 0, len(keys))
	for k := range keys {
		out = append(out, k)
	}
	sort.Strings(out)
	return strings.Join(out, ", ")
}
