package compliance

import (
	"sync"
	"sync/atomic"
	"time"
)

// Metrics tracks validation performance using lock-free atomic counters.
// All methods are safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsOK    atomic.Uint64

	// Timing, stored as nanoseconds
	timeTotal atomic.Uint64
	timeMin   atomic.Uint64
	timeMax   atomic.Uint64

	// Finding counts by severity
	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	// Per-rule timing
	ruleTiming sync.Map // map[string]*ruleMetrics
}

// ruleMetrics tracks metrics for a single rule.
type ruleMetrics struct {
	invocations   atomic.Uint64
	totalTime     atomic.Uint64 // nanoseconds
	findingsFound atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	// Initialize min to max uint64 so the first sample becomes the minimum
	m.timeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed validation.
func (m *Metrics) RecordValidation(duration time.Duration, result *ValidationResult) {
	m.validationsTotal.Add(1)
	if result != nil {
		if result.OK {
			m.validationsOK.Add(1)
		}
		m.errorsTotal.Add(uint64(result.Counts.Errors))
		m.warningsTotal.Add(uint64(result.Counts.Warnings))
		m.infosTotal.Add(uint64(result.Counts.Info))
	}

	ns := uint64(duration.Nanoseconds())
	m.timeTotal.Add(ns)

	for {
		old := m.timeMin.Load()
		if ns >= old || m.timeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.timeMax.Load()
		if ns <= old || m.timeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordRule records one execution of a named rule.
func (m *Metrics) RecordRule(rule string, duration time.Duration, findings int) {
	v, _ := m.ruleTiming.LoadOrStore(rule, &ruleMetrics{})
	rm := v.(*ruleMetrics)
	rm.invocations.Add(1)
	rm.totalTime.Add(uint64(duration.Nanoseconds()))
	rm.findingsFound.Add(uint64(findings))
}

// Snapshot is a point-in-time copy of the collected metrics.
type Snapshot struct {
	ValidationsTotal uint64
	ValidationsOK    uint64

	TimeTotal time.Duration
	TimeMin   time.Duration
	TimeMax   time.Duration

	ErrorsTotal   uint64
	WarningsTotal uint64
	InfosTotal    uint64

	Rules map[string]RuleSnapshot
}

// RuleSnapshot is a point-in-time copy of one rule's metrics.
type RuleSnapshot struct {
	Invocations   uint64
	TimeTotal     time.Duration
	FindingsFound uint64
}

// Snapshot returns a consistent copy of the current metrics.
func (m *Metrics) Snapshot() Snapshot {
	s := Snapshot{
		ValidationsTotal: m.validationsTotal.Load(),
		ValidationsOK:    m.validationsOK.Load(),
		TimeTotal:        time.Duration(m.timeTotal.Load()),
		TimeMax:          time.Duration(m.timeMax.Load()),
		ErrorsTotal:      m.errorsTotal.Load(),
		WarningsTotal:    m.warningsTotal.Load(),
		InfosTotal:       m.infosTotal.Load(),
		Rules:            make(map[string]RuleSnapshot),
	}

	if min := m.timeMin.Load(); min != ^uint64(0) {
		s.TimeMin = time.Duration(min)
	}

	m.ruleTiming.Range(func(key, value any) bool {
		rm := value.(*ruleMetrics)
		s.Rules[key.(string)] = RuleSnapshot{
			Invocations:   rm.invocations.Load(),
			TimeTotal:     time.Duration(rm.totalTime.Load()),
			FindingsFound: rm.findingsFound.Load(),
		}
		return true
	})

	return s
}
