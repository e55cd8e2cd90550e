// Package client implements the outbound side of the pricing service: the
// dashboard's call to POST /predict with a fixed timeout and no retry.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/getaroundlab/pricing/core/pricing"
)

// Client quotes prices against a running pricing service.
type Client struct {
	url  string
	http *http.Client
}

// New creates a client for the given /predict endpoint URL. The timeout
// bounds the whole call; a timed-out or failed call is surfaced once to the
// caller, never retried.
func New(url string, timeout time.Duration) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

type predictRequest struct {
	Input []pricing.FeatureRecord `json:"input"`
}

type predictResponse struct {
	Prediction []float64 `json:"prediction"`
}

type errorResponse struct {
	ErrorType string `json:"error_type"`
	Message   string `json:"message"`
}

// Quote requests one price per record, in record order.
func (c *Client) Quote(ctx context.Context, records []pricing.FeatureRecord) ([]float64, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("no records to quote")
	}

	body, err := json.Marshal(predictRequest{Input: records})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("call pricing service: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var e errorResponse
		if err := json.Unmarshal(data, &e); err == nil && e.Message != "" {
			return nil, fmt.Errorf("pricing service %s: %s (%s)", resp.Status, e.Message, e.ErrorType)
		}
		return nil, fmt.Errorf("pricing service %s", resp.Status)
	}

	var out predictResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if out.Prediction == nil {
		return nil, fmt.Errorf("unexpected response: prediction key absent")
	}
	if len(out.Prediction) != len(records) {
		return nil, fmt.Errorf("unexpected response: %d predictions for %d records", len(out.Prediction), len(records))
	}
	return out.Prediction, nil
}

// QuoteOne is a convenience wrapper for a single vehicle.
func (c *Client) QuoteOne(ctx context.Context, record pricing.FeatureRecord) (float64, error) {
	prices, err := c.Quote(ctx, []pricing.FeatureRecord{record})
	if err != nil {
		return 0, err
	}
	return prices[0], nil
}
