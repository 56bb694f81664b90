// Package pipeline runs the tabular rule set over a mapped header row and
// a bounded row stream. Rules are registered once in a fixed order; the
// evaluator emits findings in that registration order regardless of how
// rows are iterated, so identical input always produces identical output.
package pipeline

import (
	"errors"
	"io"
	"time"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/specs"
	"github.com/RichardJoy94/clearcare-compliance/tabular"
)

// Context carries the per-file state every rule consumes. It is built once
// per validation and read-only from the rules' perspective.
type Context struct {
	Headers      []string
	Mappings     []colmap.Mapping
	Metadata     map[string]string
	MetadataKind tabular.MetadataKind
	Layout       tabular.Layout
	Spec         specs.LayoutSpec
	Options      compliance.Options

	byCanonical map[string][]int
}

// NewContext indexes the mappings by canonical field for rule lookups.
func NewContext(headers []string, mappings []colmap.Mapping, pre tabular.Preamble, layout tabular.Layout, spec specs.LayoutSpec, opts compliance.Options) *Context {
	idx := make(map[string][]int)
	for i, m := range mappings {
		if m.Mapped() {
			idx[m.Canonical] = append(idx[m.Canonical], i)
		}
	}
	return &Context{
		Headers:      headers,
		Mappings:     mappings,
		Metadata:     pre.Metadata,
		MetadataKind: pre.Kind,
		Layout:       layout,
		Spec:         spec,
		Options:      opts,
		byCanonical:  idx,
	}
}

// HasField reports whether any header mapped to the canonical field.
func (c *Context) HasField(field string) bool {
	return len(c.byCanonical[field]) > 0
}

// Columns returns the column indexes mapped to the canonical field.
func (c *Context) Columns(field string) []int {
	return c.byCanonical[field]
}

// Column returns the first column index mapped to the canonical field.
func (c *Context) Column(field string) (int, bool) {
	cols := c.byCanonical[field]
	if len(cols) == 0 {
		return 0, false
	}
	return cols[0], true
}

// Cell fetches a mapped field's value from a row, tolerating short rows.
func (c *Context) Cell(row []string, field string) (string, bool) {
	col, ok := c.Column(field)
	if !ok || col >= len(row) {
		return "", false
	}
	return row[col], true
}

// Rule is one regulatory check evaluated against the header-level context.
type Rule interface {
	// Name is the stable rule code reported on findings.
	Name() string

	Evaluate(ctx *Context) []compliance.Finding
}

// RowRule is a Rule that also needs to see data rows. Its scanner
// accumulates violation state during the single row pass; findings are
// produced only by Finish, never per row.
type RowRule interface {
	Rule
	Scanner(ctx *Context) RowScanner
}

// RowScanner receives each sampled row exactly once.
type RowScanner interface {
	Scan(row []string)
	Finish() []compliance.Finding
}

// RowSource yields data rows until io.EOF.
type RowSource interface {
	Next() ([]string, error)
}

// Registry holds rules in registration order. It is populated once at
// process start and read-only afterwards.
type Registry struct {
	rules []Rule
}

func (r *Registry) Register(rules ...Rule) {
	r.rules = append(r.rules, rules...)
}

func (r *Registry) Rules() []Rule {
	return r.rules
}

// Evaluate runs the registry against the context and row stream. The row
// stream is consumed once, bounded by Options.MaxSampleRows, feeding every
// row rule's scanner; findings are then collected rule by rule in
// registration order. A decode error mid-stream stops sampling for the
// remaining rows and is returned alongside the findings gathered so far.
func Evaluate(ctx *Context, rows RowSource, reg *Registry, metrics *compliance.Metrics) ([]compliance.Finding, error) {
	scanners := make(map[string]RowScanner, len(reg.rules))
	for _, r := range reg.rules {
		if rr, ok := r.(RowRule); ok {
			scanners[r.Name()] = rr.Scanner(ctx)
		}
	}

	limit := ctx.Options.MaxSampleRows
	if limit <= 0 {
		limit = int(^uint(0) >> 1) // 0 means scan every row
	}
	var scanErr error
	if len(scanners) > 0 && rows != nil {
		for n := 0; n < limit; n++ {
			row, err := rows.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				scanErr = err
				break
			}
			for _, r := range reg.rules {
				if sc, ok := scanners[r.Name()]; ok {
					sc.Scan(row)
				}
			}
		}
	}

	var findings []compliance.Finding
	for _, r := range reg.rules {
		start := time.Now()
		var fs []compliance.Finding
		if sc, ok := scanners[r.Name()]; ok {
			fs = sc.Finish()
		} else {
			fs = r.Evaluate(ctx)
		}
		if metrics != nil {
			metrics.RecordRule(r.Name(), time.Since(start), len(fs))
		}
		findings = append(findings, fs...)
	}
	return findings, scanErr
}
