package compliance

import "fmt"

// ParseError reports that the input could not be decoded or parsed at all.
// It is the only failure the engine surfaces as a Go error: once decoding
// succeeds, every downstream condition becomes a Finding instead.
type ParseError struct {
	// Format is the input format that failed to decode ("json", "csv", "text")
	Format string

	// Err is the underlying decode error
	Err error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("cannot parse %s input", e.Format)
	}
	return fmt.Sprintf("cannot parse %s input: %v", e.Format, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// NewParseError wraps err as a fatal parse error for the given format.
func NewParseError(format string, err error) *ParseError {
	return &ParseError{Format: format, Err: err}
}
