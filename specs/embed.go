// Package specs provides the embedded canonical rule tables for tabular
// price-transparency files.
//
// The embedded YAML files describe the regulation-defined layout
// requirements:
//   - preamble.yaml: metadata labels expected before the header row
//   - tall.yaml: canonical fields required in the tall layout
//   - wide.yaml: canonical fields required in the wide layout
//
// The tables are parsed once at first use and are read-only for the
// lifetime of the process.
package specs

import (
	"embed"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed csv/*.yaml
var csvSpecs embed.FS

// PreambleSpec describes the metadata block preceding the header row.
type PreambleSpec struct {
	// RequiredLabels is the strict canonical label set.
	RequiredLabels []string `yaml:"required_labels"`

	// AlternateIndicators are tokens of the informal hospital label set.
	AlternateIndicators []string `yaml:"alternate_indicators"`

	// DataIndicators are tokens marking a plausible data header row.
	DataIndicators []string `yaml:"data_indicators"`
}

// LayoutRules toggles the per-layout data rules.
type LayoutRules struct {
	RequireDescription     bool `yaml:"require_description"`
	RequireCoding          bool `yaml:"require_coding"`
	RequireEstimatedAmount bool `yaml:"require_estimated_when_percent_or_algorithm"`
	PairDrugUnitAndType    bool `yaml:"pair_drug_unit_and_type"`
}

// LayoutSpec describes the canonical field requirements of one tabular layout.
type LayoutSpec struct {
	RequiredItemFields   []string    `yaml:"required_item_fields"`
	RequiredChargeFields []string    `yaml:"required_charge_fields"`
	RequiredPayerFields  []string    `yaml:"required_payer_fields"`
	PayerPlanSeparator   string      `yaml:"payer_plan_separator"`
	Rules                LayoutRules `yaml:"rules"`
}

var (
	loadOnce sync.Once
	loadErr  error

	preamble PreambleSpec
	tall     LayoutSpec
	wide     LayoutSpec
)

func load() {
	loadOnce.Do(func() {
		if err := parse("csv/preamble.yaml", &preamble); err != nil {
			loadErr = err
			return
		}
		if err := parse("csv/tall.yaml", &tall); err != nil {
			loadErr = err
			return
		}
		loadErr = parse("csv/wide.yaml", &wide)
	})
}

func parse(name string, v any) error {
	data, err := csvSpecs.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read embedded spec %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse embedded spec %s: %w", name, err)
	}
	return nil
}

// Preamble returns the preamble label spec.
func Preamble() PreambleSpec {
	load()
	mustLoad()
	return preamble
}

// Tall returns the tall-layout spec.
func Tall() LayoutSpec {
	load()
	mustLoad()
	return tall
}

// Wide returns the wide-layout spec.
func Wide() LayoutSpec {
	load()
	mustLoad()
	return wide
}

// mustLoad panics on a broken embedded table. The tables ship inside the
// binary, so a failure here is a build defect, not a runtime condition.
func mustLoad() {
	if loadErr != nil {
		panic(loadErr)
	}
}
