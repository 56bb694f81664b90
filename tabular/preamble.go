// Package tabular parses the CSV shape of price-transparency files: the
// three-row metadata preamble, the header row, and a bounded-memory row
// stream for rule evaluation.
package tabular

import (
	"strings"

	"github.com/RichardJoy94/clearcare-compliance/specs"
)

// MetadataKind classifies how the preamble was recognized.
type MetadataKind string

const (
	// MetadataStrict means the preamble carries the canonical label set.
	MetadataStrict MetadataKind = "strict"

	// MetadataInformal means the preamble carries a recognizable hospital
	// metadata block that does not use the canonical labels.
	MetadataInformal MetadataKind = "informal"

	// MetadataNone means no preamble was found and the first non-empty
	// record was taken as the header row.
	MetadataNone MetadataKind = "none"
)

// Preamble is the parsed metadata block of a tabular file.
type Preamble struct {
	Kind     MetadataKind
	Metadata map[string]string
	Headers  []string

	// HeaderIndex is the zero-based record index of the header row.
	HeaderIndex int
}

// parsePreamble inspects the buffered records and locates the header row.
// The canonical shape is three rows: labels, values, headers. Hospitals
// sometimes put a title or blank rows above the block, so the block is
// searched for anywhere in the buffered records, not just at the top.
// Files with no recognizable block get their first non-empty record
// treated as the header row.
func parsePreamble(records [][]string) Preamble {
	spec := specs.Preamble()

	for i := 0; i+2 < len(records); i++ {
		labels := records[i]
		switch {
		case countMatches(labels, spec.RequiredLabels) >= 2:
			return Preamble{
				Kind:        MetadataStrict,
				Metadata:    zipMetadata(labels, records[i+1]),
				Headers:     records[i+2],
				HeaderIndex: i + 2,
			}
		case countMatches(labels, spec.AlternateIndicators) >= 2 &&
			countMatches(records[i+2], spec.DataIndicators) >= 2:
			return Preamble{
				Kind:        MetadataInformal,
				Metadata:    zipMetadata(labels, records[i+1]),
				Headers:     records[i+2],
				HeaderIndex: i + 2,
			}
		}
	}

	for i, rec := range records {
		if !emptyRecord(rec) {
			return Preamble{
				Kind:        MetadataNone,
				Metadata:    map[string]string{},
				Headers:     rec,
				HeaderIndex: i,
			}
		}
	}
	return Preamble{Kind: MetadataNone, Metadata: map[string]string{}, HeaderIndex: -1}
}

// countMatches counts the cells containing at least one of the given
// tokens. Matching is case-insensitive substring inclusion, since
// hospitals routinely decorate labels ("Hospital Name:", "MRF Date ").
func countMatches(cells, tokens []string) int {
	n := 0
	for _, cell := range cells {
		c := strings.ToLower(cell)
		for _, tok := range tokens {
			if strings.Contains(c, tok) {
				n++
				break
			}
		}
	}
	return n
}

// zipMetadata pairs a label row with its value row. Labels are normalized
// to lowercase keys; trailing colons and whitespace are stripped. Labels
// without a value column map to the empty string.
func zipMetadata(labels, values []string) map[string]string {
	md := make(map[string]string, len(labels))
	for i, label := range labels {
		key := strings.TrimSuffix(strings.TrimSpace(strings.ToLower(label)), ":")
		if key == "" {
			continue
		}
		var val string
		if i < len(values) {
			val = strings.TrimSpace(values[i])
		}
		md[key] = val
	}
	return md
}

func emptyRecord(rec []string) bool {
	for _, cell := range rec {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}
