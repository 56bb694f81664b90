// Package worker runs validations for many files in parallel. Each job
// carries one input file; results come back tagged with the job ID and
// the batch run identifier so callers can correlate them with stored
// artifacts.
package worker

import (
	"time"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// Job is one input file to validate.
type Job struct {
	// ID is a caller-chosen identifier; empty IDs get a generated one.
	ID string

	// Filename is the hint passed to file-type detection.
	Filename string

	// Data is the raw file content.
	Data []byte
}

// JobResult is the outcome of one job.
type JobResult struct {
	// ID matches the Job.ID that produced this result.
	ID string

	// Result is nil when Err is a fatal parse error.
	Result *compliance.ValidationResult

	// Err holds the fatal error, if any.
	Err error

	// Duration is the wall time spent validating this job.
	Duration time.Duration
}

// BatchResult aggregates all job results of one run.
type BatchResult struct {
	// RunID identifies this batch; every contained ValidationResult
	// carries the same value.
	RunID string

	Results []JobResult

	TotalJobs     int
	CompletedJobs int
	FailedJobs    int
}

// HasErrors reports whether any job failed fatally or produced
// error-severity findings.
func (br *BatchResult) HasErrors() bool {
	for _, r := range br.Results {
		if r.Err != nil {
			return true
		}
		if r.Result != nil && r.Result.HasErrors() {
			return true
		}
	}
	return false
}

// ErrorCount sums the error findings across all results.
func (br *BatchResult) ErrorCount() int {
	n := 0
	for _, r := range br.Results {
		if r.Result != nil {
			n += r.Result.ErrorCount()
		}
	}
	return n
}
