package rule

import (
	"sort"
	"strings"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/colmap"
	"github.com/RichardJoy94/clearcare-compliance/pipeline"
	"github.com/RichardJoy94/clearcare-compliance/specs"
	"github.com/RichardJoy94/clearcare-compliance/tabular"
)

// metadataRule checks the preamble. The canonical label set passes
// silently; a recognizable informal block gets one advisory suggesting
// the canonical form; no preamble at all is a violation.
type metadataRule struct{}

func (metadataRule) Name() string { return RuleMetadataPresent }

func (metadataRule) Evaluate(ctx *pipeline.Context) []compliance.Finding {
	strict := strings.Join(specs.Preamble().RequiredLabels, ", ")
	switch ctx.MetadataKind {
	case tabular.MetadataStrict:
		return nil
	case tabular.MetadataInformal:
		sev := ctx.Options.EffectiveAlternateSeverity()
		return []compliance.Finding{
			compliance.NewFinding(sev, RuleMetadataPresent).
				Message("preamble uses informal metadata labels; the canonical label set is recommended").
				Expected(strict).
				Actual(strings.Join(metadataKeys(ctx.Metadata), ", ")).
				Build(),
		}
	default:
		return []compliance.Finding{
			compliance.Error(RuleMetadataPresent).
				Message("no metadata preamble found before the header row").
				Expected(strict).
				Build(),
		}
	}
}

// entityRule verifies the file identifies its reporting organization:
// name, location, address and license. Fields may arrive either as
// preamble metadata or as mapped columns. A missing organization name is
// a violation; missing secondary fields alone are advisory. All missing
// fields are reported together in one finding.
type entityRule struct{}

func (entityRule) Name() string { return RuleEntityIdentity }

func (entityRule) Evaluate(ctx *pipeline.Context) []compliance.Finding {
	var missing []string
	for _, field := range colmap.IdentityFields {
		if !identityPresent(ctx, field) {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sev := compliance.SeverityWarning
	for _, f := range missing {
		if f == colmap.FieldHospitalName {
			sev = compliance.SeverityError
		}
	}
	return []compliance.Finding{
		compliance.NewFinding(sev, RuleEntityIdentity).
			Messagef("organization identity fields missing: %s", strings.Join(missing, ", ")).
			Expected(strings.Join(colmap.IdentityFields, ", ")).
			Build(),
	}
}

// identityPresent accepts either a mapped column or a metadata key whose
// canonicalized form matches the field.
func identityPresent(ctx *pipeline.Context, field string) bool {
	if ctx.HasField(field) {
		return true
	}
	for key, val := range ctx.Metadata {
		if val == "" {
			continue
		}
		if m := colmap.Map(key); m.Canonical == field {
			return true
		}
	}
	return false
}

func metadataKeys(md map[string]string) []string {
	keys := make([]string, 0, len(md))
	for k := range md {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
