package worker

import (
	"context"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"

	compliance "github.com/RichardJoy94/clearcare-compliance"
)

// Validator is the engine surface the pool needs.
type Validator interface {
	Validate(data []byte, filename string) (*compliance.ValidationResult, error)
}

// Pool fans a batch of jobs out over worker goroutines. A Pool is
// stateless between runs and safe for concurrent Run calls.
type Pool struct {
	validator Validator
	workers   int
}

// NewPool builds a pool. workers <= 0 selects one worker per CPU.
func NewPool(v Validator, workers int) *Pool {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Pool{validator: v, workers: workers}
}

// Run validates every job and returns the aggregated batch. Results come
// back in job submission order. Cancelling the context stops dispatching
// new jobs; in-flight jobs finish and absent results are reported as
// failed with the context error.
func (p *Pool) Run(ctx context.Context, jobs []Job) *BatchResult {
	runID := uuid.NewString()
	br := &BatchResult{
		RunID:     runID,
		Results:   make([]JobResult, len(jobs)),
		TotalJobs: len(jobs),
	}
	if len(jobs) == 0 {
		return br
	}

	workers := p.workers
	if workers > len(jobs) {
		workers = len(jobs)
	}

	type indexed struct {
		i   int
		job Job
	}
	jobCh := make(chan indexed)

	var wg sync.WaitGroup
	var mu sync.Mutex
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for ij := range jobCh {
				start := time.Now()
				res, err := p.validator.Validate(ij.job.Data, ij.job.Filename)
				if res != nil {
					res.RunID = runID
				}
				jr := JobResult{
					ID:       ij.job.ID,
					Result:   res,
					Err:      err,
					Duration: time.Since(start),
				}
				mu.Lock()
				br.Results[ij.i] = jr
				br.CompletedJobs++
				if err != nil {
					br.FailedJobs++
				}
				mu.Unlock()
			}
		}()
	}

	ids := make([]string, len(jobs))
	for i, job := range jobs {
		ids[i] = job.ID
		if ids[i] == "" {
			ids[i] = uuid.NewString()
		}
	}

	dispatched := make([]bool, len(jobs))
dispatch:
	for i, job := range jobs {
		job.ID = ids[i]
		select {
		case <-ctx.Done():
			break dispatch
		case jobCh <- indexed{i: i, job: job}:
			dispatched[i] = true
		}
	}
	close(jobCh)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		for i, sent := range dispatched {
			if !sent {
				br.Results[i] = JobResult{ID: ids[i], Err: err}
				br.FailedJobs++
			}
		}
	}
	return br
}
