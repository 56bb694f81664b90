// Package compliance provides the shared data model for the ClearCare
// price-transparency validation engine: findings, validation results,
// configuration options, and metrics.
//
// The engine itself lives in the engine package; this package holds the
// types every other package exchanges.
//
// Basic usage:
//
//	v := engine.New()
//	res, err := v.ValidateFile("standardcharges.csv")
//	if err != nil {
//	    // fatal parse error: no ValidationResult was produced
//	}
//	if !res.OK {
//	    // res.Findings holds the error findings
//	}
package compliance
