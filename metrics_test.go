package compliance

import (
	"sync"
	"testing"
	"time"
)

func TestMetrics_RecordValidation(t *testing.T) {
	m := NewMetrics()

	ok := Assemble(FileTypeTabularTall, nil, nil)
	bad := Assemble(FileTypeTabularTall, nil, []Finding{
		Error("a").Build(),
		Warning("b").Build(),
	})

	m.RecordValidation(10*time.Millisecond, ok)
	m.RecordValidation(20*time.Millisecond, bad)

	s := m.Snapshot()
	if s.ValidationsTotal != 2 {
		t.Errorf("ValidationsTotal = %d; want 2", s.ValidationsTotal)
	}
	if s.ValidationsOK != 1 {
		t.Errorf("ValidationsOK = %d; want 1", s.ValidationsOK)
	}
	if s.ErrorsTotal != 1 || s.WarningsTotal != 1 {
		t.Errorf("severity totals = %d/%d; want 1/1", s.ErrorsTotal, s.WarningsTotal)
	}
	if s.TimeMin != 10*time.Millisecond {
		t.Errorf("TimeMin = %v; want 10ms", s.TimeMin)
	}
	if s.TimeMax != 20*time.Millisecond {
		t.Errorf("TimeMax = %v; want 20ms", s.TimeMax)
	}
}

func TestMetrics_SnapshotEmpty(t *testing.T) {
	m := NewMetrics()
	s := m.Snapshot()
	if s.TimeMin != 0 {
		t.Errorf("TimeMin = %v; want 0 when nothing recorded", s.TimeMin)
	}
}

func TestMetrics_RecordRule(t *testing.T) {
	m := NewMetrics()
	m.RecordRule("tabular.coding.present", time.Millisecond, 1)
	m.RecordRule("tabular.coding.present", time.Millisecond, 0)

	s := m.Snapshot()
	rs, ok := s.Rules["tabular.coding.present"]
	if !ok {
		t.Fatal("rule snapshot missing")
	}
	if rs.Invocations != 2 {
		t.Errorf("Invocations = %d; want 2", rs.Invocations)
	}
	if rs.FindingsFound != 1 {
		t.Errorf("FindingsFound = %d; want 1", rs.FindingsFound)
	}
}

func TestMetrics_Concurrent(t *testing.T) {
	m := NewMetrics()
	res := Assemble(FileTypeTabularTall, nil, nil)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				m.RecordValidation(time.Microsecond, res)
				m.RecordRule("r", time.Microsecond, 0)
			}
		}()
	}
	wg.Wait()

	s := m.Snapshot()
	if s.ValidationsTotal != 800 {
		t.Errorf("ValidationsTotal = %d; want 800", s.ValidationsTotal)
	}
	if s.Rules["r"].Invocations != 800 {
		t.Errorf("rule Invocations = %d; want 800", s.Rules["r"].Invocations)
	}
}
