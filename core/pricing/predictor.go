package pricing

// Predictor is the opaque capability exposed by a loaded pricing model.
// Implementations must be safe for concurrent read-only use.
type Predictor interface {
	// Predict returns one predicted daily price per input record, in input
	// order. It must not be called with an empty slice.
	Predict(records []FeatureRecord) ([]float64, error)
}
