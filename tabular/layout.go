package tabular

import (
	"strings"

	"github.com/RichardJoy94/clearcare-compliance/colmap"
)

// Layout is the classified row-shape of a tabular file.
type Layout string

const (
	// LayoutTall has one row per item-payer combination.
	LayoutTall Layout = "tall"

	// LayoutWide has one row per item with repeated payer-specific
	// column groups.
	LayoutWide Layout = "wide"

	// LayoutGeneric is the fallback profile for files whose shape could
	// not be classified. Rule evaluation still runs against it.
	LayoutGeneric Layout = "generic"
)

// payerWords mark a pipe segment as payer-identifying.
var payerWords = []string{"payer", "plan", "insurance", "hmo", "ppo"}

// Classify decides the layout from mapped headers. Wide layout is chosen
// only when at least two distinct payer-identifying column groups appear;
// a single ambiguous payer group defaults to tall. Files with neither
// payer columns nor any mapped charge column fall back to the generic
// profile.
func Classify(mappings []colmap.Mapping) Layout {
	if countPayerGroups(mappings) >= 2 {
		return LayoutWide
	}

	var hasPayer, hasPlan, hasCharge bool
	for _, m := range mappings {
		switch m.Canonical {
		case colmap.FieldPayerName:
			hasPayer = true
		case colmap.FieldPlanName:
			hasPlan = true
		}
		for _, f := range colmap.ChargeFields {
			if m.Canonical == f {
				hasCharge = true
			}
		}
	}
	if hasPayer && hasPlan {
		return LayoutTall
	}
	if hasCharge {
		return LayoutTall
	}
	return LayoutGeneric
}

// countPayerGroups counts distinct payer groups among pipe-delimited
// headers. A header like "standard_charge|Aetna|PPO|negotiated_dollar"
// contributes the group "aetna|ppo"; two headers differing only in their
// trailing variant segment share one group.
func countPayerGroups(mappings []colmap.Mapping) int {
	groups := make(map[string]bool)
	for _, m := range mappings {
		raw := strings.ToLower(m.Raw)
		if !strings.Contains(raw, "|") {
			continue
		}
		segs := strings.Split(raw, "|")
		var payerSegs []string
		for _, seg := range segs {
			seg = strings.TrimSpace(seg)
			for _, w := range payerWords {
				if strings.Contains(seg, w) {
					payerSegs = append(payerSegs, seg)
					break
				}
			}
		}
		if len(payerSegs) > 0 {
			groups[strings.Join(payerSegs, "|")] = true
		}
	}
	return len(groups)
}
