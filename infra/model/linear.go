package model

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/getaroundlab/pricing/core/pricing"
)

// LinearModel is the exported regression: price = intercept + w·x where x is
// the numeric columns concatenated with the one-hot encoded categoricals.
type LinearModel struct {
	Type        string                        `json:"type"`
	Intercept   float64                       `json:"intercept"`
	Numeric     map[string]float64            `json:"numeric"`
	Categorical map[string]map[string]float64 `json:"categorical"`
}

// Validate checks the exported model only references columns the feature
// schema provides and declares at least one weight.
func (m *LinearModel) Validate() error {
	if m.Type != "linear" {
		return fmt.Errorf("unsupported model type %q", m.Type)
	}
	if len(m.Numeric)+len(m.Categorical) == 0 {
		return fmt.Errorf("model declares no feature weights")
	}
	known := pricing.FeatureRecord{}
	for col := range m.Numeric {
		if _, ok := known.Numeric()[col]; !ok {
			return fmt.Errorf("unknown numeric column %q", col)
		}
	}
	for col := range m.Categorical {
		if _, ok := known.Categorical()[col]; !ok {
			return fmt.Errorf("unknown categorical column %q", col)
		}
	}
	return nil
}

// Predict implements pricing.Predictor. Encoding a level absent from the
// training data is an inference error, mirroring a strict one-hot encoder.
func (m *LinearModel) Predict(records []pricing.FeatureRecord) ([]float64, error) {
	numericCols := sortedKeys(m.Numeric)
	categoricalCols := sortedKeys(m.Categorical)

	weights := make([]float64, 0, len(numericCols)+len(categoricalCols))
	for _, col := range numericCols {
		weights = append(weights, m.Numeric[col])
	}
	w := mat.NewVecDense(len(numericCols), weights)

	out := make([]float64, len(records))
	for i, rec := range records {
		values := make([]float64, 0, len(numericCols))
		numeric := rec.Numeric()
		for _, col := range numericCols {
			values = append(values, numeric[col])
		}

		price := m.Intercept
		if len(values) > 0 {
			price += mat.Dot(w, mat.NewVecDense(len(values), values))
		}

		categorical := rec.Categorical()
		for _, col := range categoricalCols {
			level := categorical[col]
			coef, ok := m.Categorical[col][level]
			if !ok {
				return nil, fmt.Errorf("record %d: unseen %s category %q", i, col, level)
			}
			price += coef
		}

		if math.IsNaN(price) || math.IsInf(price, 0) {
			return nil, fmt.Errorf("record %d: non-finite prediction", i)
		}
		out[i] = price
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
