package metrics

import (
	"errors"
	"testing"
)

type recordSink struct {
	count int
	err   error
}

func (s *recordSink) RecordPrediction(PredictionEvent) error {
	s.count++
	return s.err
}

func TestMultiSink_FanOut(t *testing.T) {
	a := &recordSink{}
	b := &recordSink{}
	m := NewMultiSink(a, b, NopSink{})
	if err := m.RecordPrediction(PredictionEvent{Records: 1, Outcome: OutcomeOK}); err != nil {
		t.Fatalf("record: %v", err)
	}
	if a.count != 1 || b.count != 1 {
		t.Fatalf("expected both sinks recorded once, got %d/%d", a.count, b.count)
	}
}

func TestMultiSink_FirstError(t *testing.T) {
	boom := errors.New("boom")
	a := &recordSink{err: boom}
	b := &recordSink{}
	m := NewMultiSink(a, b)
	if err := m.RecordPrediction(PredictionEvent{}); !errors.Is(err, boom) {
		t.Fatalf("expected first error, got %v", err)
	}
	if b.count != 0 {
		t.Fatalf("later sinks should not run after an error")
	}
}
