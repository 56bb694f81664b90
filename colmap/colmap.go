// Package colmap maps raw tabular column headers onto the canonical field
// vocabulary used by the validation rules. Resolution runs in two stages:
// an exact-match table of known aliases, then an ordered table of
// token-inclusion heuristics for headers that embed payer or variant
// suffixes (for example "standard_charge|negotiated_dollar").
package colmap

import (
	"strings"

	"github.com/RichardJoy94/clearcare-compliance/cache"
)

// Method records how a header was resolved.
type Method string

const (
	MethodExact     Method = "exact"
	MethodHeuristic Method = "heuristic"
	MethodNone      Method = "none"
)

// Mapping is the result of resolving one raw header.
type Mapping struct {
	Raw       string `json:"raw"`
	Canonical string `json:"canonical,omitempty"`
	Method    Method `json:"method"`
}

// Mapped reports whether the header resolved to a canonical field.
func (m Mapping) Mapped() bool { return m.Method != MethodNone }

// mapCache memoizes Map results across files in a batch. Mapping is a
// pure function of the raw header, so cached entries never go stale.
var mapCache = cache.New[string, Mapping](2048)

// Normalize lowercases a header, trims surrounding whitespace and
// collapses internal runs of whitespace to single spaces.
func Normalize(raw string) string {
	s := strings.ToLower(strings.TrimSpace(raw))
	return strings.Join(strings.Fields(s), " ")
}

// normalizeKey produces the exact-table lookup key: normalized text with
// spaces and hyphens folded to underscores.
func normalizeKey(norm string) string {
	s := strings.ReplaceAll(norm, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	return s
}

// tokenize splits a normalized header into its token set. Pipe segments,
// underscores, hyphens, slashes and spaces all act as separators, so
// "standard_charge|negotiated_dollar" yields the same tokens as
// "standard charge negotiated dollar".
func tokenize(norm string) map[string]bool {
	tokens := make(map[string]bool, 8)
	for _, tok := range strings.FieldsFunc(norm, func(r rune) bool {
		switch r {
		case '_', '|', '/', '-', ' ':
			return true
		}
		return false
	}) {
		tokens[tok] = true
	}
	return tokens
}

// Map resolves a single raw header. Headers that match no alias and no
// heuristic rule come back with Method set to MethodNone and an empty
// Canonical. Map is deterministic: the same raw header always yields the
// same Mapping.
func Map(raw string) Mapping {
	if m, ok := mapCache.Get(raw); ok {
		return m
	}
	m := resolve(raw)
	mapCache.Set(raw, m)
	return m
}

func resolve(raw string) Mapping {
	norm := Normalize(raw)
	if norm == "" {
		return Mapping{Raw: raw, Method: MethodNone}
	}
	if field, ok := exactTable[normalizeKey(norm)]; ok {
		return Mapping{Raw: raw, Canonical: field, Method: MethodExact}
	}
	tokens := tokenize(norm)
	best := -1
	bestScore := 0
	for i, rule := range heuristicRules {
		if s := rule.score(tokens); s > bestScore {
			best, bestScore = i, s
		}
	}
	if best >= 0 {
		return Mapping{Raw: raw, Canonical: heuristicRules[best].field, Method: MethodHeuristic}
	}
	return Mapping{Raw: raw, Method: MethodNone}
}

// MapAll resolves a full header row, preserving column order.
func MapAll(headers []string) []Mapping {
	out := make([]Mapping, len(headers))
	for i, h := range headers {
		out[i] = Map(h)
	}
	return out
}
