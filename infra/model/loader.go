package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/getaroundlab/pricing/core/pricing"
)

// ErrModelUnavailable marks requests rejected because the model never loaded.
// The condition is permanent until process restart.
var ErrModelUnavailable = errors.New("pricing model unavailable")

// Info describes the loaded artifact shape for the health endpoint.
type Info struct {
	Wrapped    bool     `json:"wrapped"`
	BundleKeys []string `json:"bundle_keys"`
	InnerType  string   `json:"inner_type"`
}

// Handle is the process-wide model state, built once at startup and threaded
// through the service wiring. Either Predictor or Err is set, never both.
// Handles are immutable and safe to share across requests.
type Handle struct {
	Path      string
	Predictor pricing.Predictor
	Info      *Info
	Err       error
}

// Loaded reports whether the artifact loaded successfully.
func (h *Handle) Loaded() bool { return h.Predictor != nil }

// Predict forwards to the loaded predictor, failing fast with the stored
// load error when the model is unavailable.
func (h *Handle) Predict(records []pricing.FeatureRecord) ([]float64, error) {
	if h.Predictor == nil {
		return nil, fmt.Errorf("%w: %v", ErrModelUnavailable, h.Err)
	}
	return h.Predictor.Predict(records)
}

// bundle is the wrapping artifact shape produced by the training export when
// it saves metadata next to the model.
type bundle struct {
	Model    *LinearModel   `json:"model"`
	Metadata map[string]any `json:"metadata"`
}

// Load reads the artifact at path. Load never fails the caller: a missing or
// corrupt artifact yields a handle whose Err is set, so every prediction
// rejects with the stored error instead of crashing the process.
func Load(path string) *Handle {
	h := &Handle{Path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		h.Err = fmt.Errorf("read artifact: %w", err)
		return h
	}

	// Probe the top-level keys to tell a bundle from a direct model document.
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		h.Err = fmt.Errorf("parse artifact: %w", err)
		return h
	}

	if _, wrapped := raw["model"]; wrapped {
		var b bundle
		if err := json.Unmarshal(data, &b); err != nil {
			h.Err = fmt.Errorf("parse bundle: %w", err)
			return h
		}
		if b.Model == nil {
			h.Err = fmt.Errorf("bundle has no model document")
			return h
		}
		if err := b.Model.Validate(); err != nil {
			h.Err = fmt.Errorf("invalid model: %w", err)
			return h
		}
		h.Predictor = b.Model
		h.Info = &Info{Wrapped: true, BundleKeys: sortedKeys(raw), InnerType: b.Model.Type}
		return h
	}

	var m LinearModel
	if err := json.Unmarshal(data, &m); err != nil {
		h.Err = fmt.Errorf("parse model: %w", err)
		return h
	}
	if err := m.Validate(); err != nil {
		h.Err = fmt.Errorf("invalid model: %w", err)
		return h
	}
	h.Predictor = &m
	h.Info = &Info{Wrapped: false, InnerType: m.Type}
	return h
}
