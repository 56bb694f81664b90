// Package engine wires the full validation pipeline: detection, the
// tabular layout/mapping/rule path, the structured schema path, and
// result assembly. A Validator is safe for concurrent use; all per-call
// state is local to the call.
package engine

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/detect"
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
	"github.com/RichardJoy94/clearcare-compliance/rule"
	"github.com/RichardJoy94/clearcare-compliance/schema"
	"github.com/RichardJoy94/clearcare-compliance/specs"
	"github.com/RichardJoy94/clearcare-compliance/tabular"
)

// RuleUnknownType is the finding code for inputs that classify as neither
// tabular nor structured.
const RuleUnknownType = "detect.unknown_type"

// Validator runs validations against a fixed option set and rule
// registry.
type Validator struct {
	opts     *compliance.Options
	registry *pipeline.Registry
	metrics  *compliance.Metrics
}

// New builds a Validator. Options default per compliance.DefaultOptions.
func New(opts ...compliance.Option) *Validator {
	o := compliance.DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Validator{
		opts:     o,
		registry: rule.DefaultRegistry(),
		metrics:  compliance.NewMetrics(),
	}
}

// Metrics exposes the validator's accumulated counters.
func (v *Validator) Metrics() *compliance.Metrics { return v.metrics }

// sniffPrefixSize bounds how much of the input is buffered up front for
// the UTF-8 gate and format detection. Tabular inputs are streamed past
// this point; structured documents are read in full for decoding.
const sniffPrefixSize = 64 * 1024

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Validate classifies and validates one input. The returned error is
// non-nil only for fatal parse failures (undecodable text, structurally
// broken documents) and configuration mistakes; every other condition is
// reported as a finding inside the ValidationResult.
func (v *Validator) Validate(data []byte, filename string) (*compliance.ValidationResult, error) {
	return v.ValidateReader(bytes.NewReader(data), filename)
}

// ValidateReader validates the content of r. Tabular inputs are streamed
// row by row rather than materialized; structured documents are buffered
// in full, since schema matching needs the whole object.
func (v *Validator) ValidateReader(r io.Reader, filename string) (*compliance.ValidationResult, error) {
	start := time.Now()
	res, err := v.validate(bufio.NewReaderSize(r, sniffPrefixSize), filename)
	if err != nil {
		return nil, err
	}
	if v.opts.CollectMetrics {
		v.metrics.RecordValidation(time.Since(start), res)
	}
	return res, nil
}

// ValidateFile validates the file at path without loading it whole.
func (v *Validator) ValidateFile(path string) (*compliance.ValidationResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return v.ValidateReader(f, filepath.Base(path))
}

func (v *Validator) validate(br *bufio.Reader, filename string) (*compliance.ValidationResult, error) {
	prefix, err := br.Peek(sniffPrefixSize)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("read input: %w", err)
	}
	if !validPrefix(prefix, len(prefix) == sniffPrefixSize) {
		return nil, compliance.NewParseError("text", errors.New("input is not valid UTF-8"))
	}

	kind := detect.Detect(prefix, filename)
	if bytes.HasPrefix(prefix, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	switch kind {
	case detect.KindTabular:
		return v.validateTabular(br)
	case detect.KindStructured:
		data, err := io.ReadAll(br)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if !utf8.Valid(data) {
			return nil, compliance.NewParseError("text", errors.New("input is not valid UTF-8"))
		}
		return v.validateStructured(data)
	default:
		finding := compliance.Error(RuleUnknownType).
			Message("input is neither delimiter-separated nor structured data").
			Build()
		return compliance.Assemble(compliance.FileTypeUnknown, nil, []compliance.Finding{finding}), nil
	}
}

// validPrefix checks the sniffed bytes for valid UTF-8. A truncated
// prefix may end mid-rune, so up to UTFMax-1 trailing bytes are
// tolerated before the check fails.
func validPrefix(p []byte, truncated bool) bool {
	if utf8.Valid(p) {
		return true
	}
	if !truncated {
		return false
	}
	for i := 0; i < utf8.UTFMax-1 && len(p) > 0; i++ {
		p = p[:len(p)-1]
		if utf8.Valid(p) {
			return true
		}
	}
	return false
}

func (v *Validator) validateTabular(r io.Reader) (*compliance.ValidationResult, error) {
	tab, err := tabular.Parse(r, v.opts.MaxScanLines)
	if err != nil {
		return nil, compliance.NewParseError("csv", err)
	}

	mappings := colmap.MapAll(tab.Headers())
	layout := tabular.Classify(mappings)
	ctx := pipeline.NewContext(tab.Headers(), mappings, tab.Preamble, layout, specFor(layout), *v.opts)

	var metrics *compliance.Metrics
	if v.opts.CollectMetrics {
		metrics = v.metrics
	}
	findings, scanErr := pipeline.Evaluate(ctx, tab, v.registry, metrics)
	if scanErr != nil {
		return nil, compliance.NewParseError("csv", scanErr)
	}
	return compliance.Assemble(fileTypeFor(layout), tab.Preamble.Metadata, findings), nil
}

func (v *Validator) validateStructured(data []byte) (*compliance.ValidationResult, error) {
	keys, err := schema.TopLevelKeys(data)
	if err != nil {
		return nil, compliance.NewParseError("json", err)
	}

	desc, matchFindings := v.selectSchema(keys)
	if desc == nil {
		return compliance.Assemble(compliance.FileTypeStructuredUnknown, nil, matchFindings), nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc map[string]any
	if err := dec.Decode(&doc); err != nil {
		return nil, compliance.NewParseError("json", err)
	}

	findings := append(matchFindings, schema.Validate(doc, desc, v.opts.ArrayItemLimit)...)
	return compliance.Assemble(desc.FileType, documentMetadata(doc), findings), nil
}

// selectSchema honors a forced override before signature matching. An
// override naming an unknown schema falls through to matching; the
// mismatch surfaces through the usual unknown-schema warning.
func (v *Validator) selectSchema(keys map[string]bool) (*schema.Descriptor, []compliance.Finding) {
	if v.opts.ForceSchema != "" {
		if d, ok := schema.ByID(v.opts.ForceSchema); ok {
			return d, nil
		}
	}
	return schema.Match(keys)
}

// documentMetadata lifts the identifying top-level strings into the
// result metadata, mirroring what the tabular preamble provides.
func documentMetadata(doc map[string]any) map[string]string {
	md := make(map[string]string)
	for _, key := range []string{"reporting_entity_name", "reporting_entity_type", "last_updated_on", "version"} {
		if s, ok := doc[key].(string); ok {
			md[key] = s
		}
	}
	return md
}

// specFor picks the layout spec. The generic profile borrows the tall
// item requirements with the wide layout's reduced charge set and skips
// payer requirements entirely.
func specFor(layout tabular.Layout) specs.LayoutSpec {
	switch layout {
	case tabular.LayoutWide:
		return specs.Wide()
	case tabular.LayoutTall:
		return specs.Tall()
	default:
		return specs.LayoutSpec{
			RequiredItemFields:   specs.Tall().RequiredItemFields,
			RequiredChargeFields: specs.Wide().RequiredChargeFields,
			Rules: specs.LayoutRules{
				RequireDescription: true,
				RequireCoding:      true,
			},
		}
	}
}

// fileTypeFor maps the layout onto the reported file type. The generic
// profile reports as tall, the default row shape.
func fileTypeFor(layout tabular.Layout) compliance.FileType {
	if layout == tabular.LayoutWide {
		return compliance.FileTypeTabularWide
	}
	return compliance.FileTypeTabularTall
}
