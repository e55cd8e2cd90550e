package metrics

import "time"

// Outcome labels how a prediction request ended.
type Outcome string

const (
	OutcomeOK               Outcome = "ok"
	OutcomeModelUnavailable Outcome = "model_unavailable"
	OutcomePredictionError  Outcome = "prediction_error"
)

// PredictionEvent represents a served prediction request to be recorded.
type PredictionEvent struct {
	Records   int
	Outcome   Outcome
	Duration  time.Duration
	MeanPrice float64
	Time      time.Time
}

// Sink records prediction events for observability purposes.
type Sink interface {
	RecordPrediction(ev PredictionEvent) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPrediction(PredictionEvent) error { return nil }
