package pricing

// MockPredictor returns deterministic prices for tests. When Prices is set it
// is returned as-is (truncated or cycled to the input length); otherwise Fixed
// is returned for every record. Err, when non-nil, is returned instead.
type MockPredictor struct {
	Prices []float64
	Fixed  float64
	Err    error
}

// Predict implements Predictor.
func (m MockPredictor) Predict(records []FeatureRecord) ([]float64, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	out := make([]float64, len(records))
	for i := range records {
		if len(m.Prices) > 0 {
			out[i] = m.Prices[i%len(m.Prices)]
		} else {
			out[i] = m.Fixed
		}
	}
	return out, nil
}
