package compliance

// Option configures a validation engine.
type Option func(*Options)

// Options holds all configuration for a validation engine.
type Options struct {
	// MaxSampleRows bounds how many data rows the rule evaluator scans.
	// 0 means scan every row. Bounding the sample never changes the
	// one-summary-finding-per-rule contract, only the Count totals.
	MaxSampleRows int

	// MaxScanLines bounds how many leading records the preamble parser
	// inspects while looking for the metadata block.
	MaxScanLines int

	// AlternateMetadataSeverity is the severity of the finding emitted when
	// a tabular file carries the informal metadata label set instead of the
	// strict canonical one. The boundary between "acceptable alternate
	// form" and "non-compliant" is deliberately configuration, not code.
	AlternateMetadataSeverity Severity

	// StrictMetadata upgrades the alternate-label finding to an error,
	// regardless of AlternateMetadataSeverity.
	StrictMetadata bool

	// ForceSchema forces the structured validator to a schema variant
	// identifier, bypassing signature detection. Empty means detect.
	ForceSchema string

	// ArrayItemLimit bounds how many elements of a structured array are
	// validated. 0 means validate every element.
	ArrayItemLimit int

	// CollectMetrics enables validation metric collection.
	CollectMetrics bool
}

// DefaultOptions returns the default engine configuration.
func DefaultOptions() *Options {
	return &Options{
		MaxSampleRows:             10000,
		MaxScanLines:              30,
		AlternateMetadataSeverity: SeverityInfo,
		StrictMetadata:            false,
		ForceSchema:               "",
		ArrayItemLimit:            1000,
		CollectMetrics:            true,
	}
}

// EffectiveAlternateSeverity resolves the severity used for the
// alternate-metadata finding after applying StrictMetadata.
func (o *Options) EffectiveAlternateSeverity() Severity {
	if o.StrictMetadata {
		return SeverityError
	}
	if o.AlternateMetadataSeverity.Valid() {
		return o.AlternateMetadataSeverity
	}
	return SeverityInfo
}

// WithMaxSampleRows bounds the number of data rows scanned per validation.
func WithMaxSampleRows(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.MaxSampleRows = n
		}
	}
}

// WithMaxScanLines bounds the preamble scan window.
func WithMaxScanLines(n int) Option {
	return func(o *Options) {
		if n > 0 {
			o.MaxScanLines = n
		}
	}
}

// WithAlternateMetadataSeverity sets the severity for the informal-metadata
// finding. Invalid severities fall back to info.
func WithAlternateMetadataSeverity(s Severity) Option {
	return func(o *Options) {
		o.AlternateMetadataSeverity = s
	}
}

// WithStrictMetadata treats the informal metadata label set as an error.
func WithStrictMetadata(strict bool) Option {
	return func(o *Options) {
		o.StrictMetadata = strict
	}
}

// WithForceSchema bypasses structured schema detection.
func WithForceSchema(id string) Option {
	return func(o *Options) {
		o.ForceSchema = id
	}
}

// WithArrayItemLimit bounds structured array validation.
func WithArrayItemLimit(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.ArrayItemLimit = n
		}
	}
}

// WithMetrics enables or disables metric collection.
func WithMetrics(enable bool) Option {
	return func(o *Options) {
		o.CollectMetrics = enable
	}
}
