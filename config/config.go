// Package config loads validator configuration from an optional JSON file
// and CLEARCARE_-prefixed environment variables, in that order of
// precedence (environment wins). The loaded configuration is validated
// before use; a config carrying an unknown severity or schema identifier
// never reaches the engine.
package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	kjson "github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// envPrefix namespaces the environment variables, e.g.
// CLEARCARE_MAX_SAMPLE_ROWS.
const envPrefix = "CLEARCARE_"

// Config mirrors the engine options plus the batch worker count.
type Config struct {
	MaxSampleRows             int    `koanf:"max_sample_rows" validate:"gte=0"`
	MaxScanLines              int    `koanf:"max_scan_lines" validate:"gte=0"`
	AlternateMetadataSeverity string `koanf:"alternate_metadata_severity" validate:"omitempty,oneof=error warning info"`
	StrictMetadata            bool   `koanf:"strict_metadata"`
	ForceSchema               string `koanf:"force_schema" validate:"omitempty,oneof=in-network-rates allowed-amounts provider-reference"`
	ArrayItemLimit            int    `koanf:"array_item_limit" validate:"gte=0"`
	CollectMetrics            bool   `koanf:"collect_metrics"`
	Workers                   int    `koanf:"workers" validate:"gte=0"`
}

// Default mirrors compliance.DefaultOptions.
func Default() Config {
	o := compliance.DefaultOptions()
	return Config{
		MaxSampleRows:             o.MaxSampleRows,
		MaxScanLines:              o.MaxScanLines,
		AlternateMetadataSeverity: string(o.AlternateMetadataSeverity),
		StrictMetadata:            o.StrictMetadata,
		ForceSchema:               o.ForceSchema,
		ArrayItemLimit:            o.ArrayItemLimit,
		CollectMetrics:            o.CollectMetrics,
		Workers:                   0,
	}
}

// Load builds the effective configuration. path may be empty to skip the
// file layer.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if path != "" {
		if err := k.Load(file.Provider(path), kjson.Parser()); err != nil {
			return Config{}, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(key string) string {
		return strings.ToLower(strings.TrimPrefix(key, envPrefix))
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("load environment config: %w", err)
	}

	cfg := Default()
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks value constraints.
func (c Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	return nil
}

// Options converts the configuration into engine options.
func (c Config) Options() []compliance.Option {
	return []compliance.Option{
		compliance.WithMaxSampleRows(c.MaxSampleRows),
		compliance.WithMaxScanLines(c.MaxScanLines),
		compliance.WithAlternateMetadataSeverity(compliance.Severity(c.AlternateMetadataSeverity)),
		compliance.WithStrictMetadata(c.StrictMetadata),
		compliance.WithForceSchema(c.ForceSchema),
		compliance.WithArrayItemLimit(c.ArrayItemLimit),
		compliance.WithMetrics(c.CollectMetrics),
	}
}
