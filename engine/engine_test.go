package engine

import (
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	compliance "github.com/RichardJoy94/clearcare-compliance"
	"github.com/RichardJoy94/clearcare-compliance/schema"
)

const tallCSV = `MRF Date,CMS Template Version,Hospital Name,Hospital Location,Hospital Address,License Number
2024-07-01,2.0.0,General Hospital,Springfield,1 Main St,LIC-42
description,billing_code,billing_code_type,modifiers,payer_name,plan_name,standard_charge|gross,standard_charge|discounted_cash,standard_charge|negotiated_dollar,standard_charge|min,standard_charge|max
Office visit,99213,CPT,,Aetna,PPO,125.00,100.00,95.00,90.00,130.00
MRI scan,70551,CPT,,Aetna,PPO,900.00,750.00,700.00,650.00,950.00
`

const informalCSV = `Hospital Name,Hospital Location,Hospital Address,License Number,Last Updated,Version
General Hospital,Springfield,1 Main St,LIC-42,2024-07-01,1.1
description,billing_code,billing_code_type,modifiers,payer_name,plan_name,standard_charge|gross,standard_charge|discounted_cash,standard_charge|negotiated_dollar,standard_charge|min,standard_charge|max
Office visit,99213,CPT,,Aetna,PPO,125.00,100.00,95.00,90.00,130.00
`

const wideCSV = `MRF Date,CMS Template Version,Hospital Name,Hospital Location,Hospital Address,License Number
2024-07-01,2.0.0,General Hospital,Springfield,1 Main St,LIC-42
description,billing_code,billing_code_type,modifiers,standard_charge|gross,standard_charge|discounted_cash,standard_charge|payer_aetna|negotiated_dollar,standard_charge|payer_cigna|negotiated_dollar
Office visit,99213,CPT,,125.00,100.00,95.00,93.00
`

const inNetworkJSON = `{
	"reporting_entity_name": "Acme Health",
	"reporting_entity_type": "payer",
	"last_updated_on": "2024-07-01",
	"version": "1.0.0",
	"provider_references": [],
	"in_network": []
}`

func TestValidateCompliantTallFile(t *testing.T) {
	res, err := New().Validate([]byte(tallCSV), "charges.csv")
	require.NoError(t, err)
	assert.True(t, res.OK, "findings: %v", res.Findings)
	assert.Equal(t, compliance.FileTypeTabularTall, res.FileType)
	assert.Equal(t, 0, res.Counts.Errors)
	assert.Equal(t, "2024-07-01", res.Metadata["mrf date"])
}

func TestValidateInformalPreambleIsOneInfo(t *testing.T) {
	res, err := New().Validate([]byte(informalCSV), "charges.csv")
	require.NoError(t, err)
	assert.True(t, res.OK)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, compliance.SeverityInfo, res.Findings[0].Severity)
	assert.Contains(t, res.Findings[0].Expected, "mrf date")
}

func TestValidateStrictMetadataUpgradesInformal(t *testing.T) {
	v := New(compliance.WithStrictMetadata(true))
	res, err := v.Validate([]byte(informalCSV), "charges.csv")
	require.NoError(t, err)
	assert.False(t, res.OK)
	assert.Equal(t, 1, res.Counts.Errors)
}

func TestValidateWideFile(t *testing.T) {
	res, err := New().Validate([]byte(wideCSV), "charges.csv")
	require.NoError(t, err)
	assert.Equal(t, compliance.FileTypeTabularWide, res.FileType)
	assert.True(t, res.OK, "findings: %v", res.Findings)
}

func TestValidateUnknownInput(t *testing.T) {
	res, err := New().Validate([]byte("<html><body>hi</body></html>"), "page.bin")
	require.NoError(t, err, "classification failure is a finding, not an error")
	assert.False(t, res.OK)
	assert.Equal(t, compliance.FileTypeUnknown, res.FileType)
	require.Len(t, res.Findings, 1)
	assert.Equal(t, RuleUnknownType, res.Findings[0].Rule)
}

func TestValidateInvalidUTF8IsFatal(t *testing.T) {
	_, err := New().Validate([]byte{0xff, 0xfe, 0x01}, "charges.csv")
	var perr *compliance.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestValidateBrokenJSONIsFatal(t *testing.T) {
	_, err := New().Validate([]byte(`{"in_network": [`), "rates.json")
	var perr *compliance.ParseError
	require.ErrorAs(t, err, &perr)
}

func TestValidateReaderStreamsTabular(t *testing.T) {
	fromBytes, err := New().Validate([]byte(tallCSV), "charges.csv")
	require.NoError(t, err)

	fromReader, err := New().ValidateReader(iotest.OneByteReader(strings.NewReader(tallCSV)), "charges.csv")
	require.NoError(t, err)

	assert.Equal(t, fromBytes.FileType, fromReader.FileType)
	assert.Equal(t, fromBytes.Counts, fromReader.Counts)
	assert.Equal(t, fromBytes.Findings, fromReader.Findings)
	assert.Equal(t, fromBytes.Metadata, fromReader.Metadata)
}

func TestValidateReaderInvalidUTF8PastSniffPrefixIsFatal(t *testing.T) {
	var b strings.Builder
	b.WriteString(tallCSV)
	row := "Office visit,99213,CPT,,Aetna,PPO,125.00,100.00,95.00,90.00,130.00\n"
	for b.Len() < sniffPrefixSize+len(row) {
		b.WriteString(row)
	}
	b.WriteString("Broken row,\xff\xfe,CPT,,Aetna,PPO,1,1,1,1,1\n")

	_, err := New().ValidateReader(strings.NewReader(b.String()), "charges.csv")
	var perr *compliance.ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, "csv", perr.Format)
}

func TestValidateStructuredDocument(t *testing.T) {
	res, err := New().Validate([]byte(inNetworkJSON), "rates.json")
	require.NoError(t, err)
	assert.True(t, res.OK, "findings: %v", res.Findings)
	assert.Equal(t, compliance.FileTypeInNetworkRates, res.FileType)
	assert.Equal(t, "Acme Health", res.Metadata["reporting_entity_name"])
}

func TestValidateUnknownSchemaIsWarning(t *testing.T) {
	res, err := New().Validate([]byte(`{"foo": 1, "bar": 2}`), "data.json")
	require.NoError(t, err)
	assert.True(t, res.OK, "warnings never affect ok")
	assert.Equal(t, compliance.FileTypeStructuredUnknown, res.FileType)
	assert.Equal(t, 1, res.Counts.Warnings)
}

func TestValidateForcedSchema(t *testing.T) {
	v := New(compliance.WithForceSchema(schema.SchemaProviderReference))
	res, err := v.Validate([]byte(inNetworkJSON), "rates.json")
	require.NoError(t, err)
	assert.Equal(t, compliance.FileTypeProviderReference, res.FileType)
	assert.False(t, res.OK, "document does not satisfy the forced schema")
}

func TestValidateDeterministic(t *testing.T) {
	v := New()
	first, err := v.Validate([]byte(wideCSV), "charges.csv")
	require.NoError(t, err)
	second, err := v.Validate([]byte(wideCSV), "charges.csv")
	require.NoError(t, err)

	assert.Equal(t, first.OK, second.OK)
	assert.Equal(t, first.Counts, second.Counts)
	assert.Equal(t, first.Findings, second.Findings)
}

func TestCountsConsistentWithFindings(t *testing.T) {
	// A file with mixed severities keeps counts in sync with findings.
	badCSV := "description,billing_code\nVisit,\nVisit,\n"
	res, err := New().Validate([]byte(badCSV), "charges.csv")
	require.NoError(t, err)

	want := compliance.Counts{}
	for _, f := range res.Findings {
		switch f.Severity {
		case compliance.SeverityError:
			want.Errors++
		case compliance.SeverityWarning:
			want.Warnings++
		case compliance.SeverityInfo:
			want.Info++
		}
	}
	assert.Equal(t, want, res.Counts)
	assert.Equal(t, res.OK, res.Counts.Errors == 0)
}

func TestMetricsRecorded(t *testing.T) {
	v := New()
	_, err := v.Validate([]byte(tallCSV), "charges.csv")
	require.NoError(t, err)

	snap := v.Metrics().Snapshot()
	assert.Equal(t, uint64(1), snap.ValidationsTotal)
	assert.Equal(t, uint64(1), snap.ValidationsOK)
}
