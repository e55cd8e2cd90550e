package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/getaroundlab/pricing/core/pricing"
)

func record() pricing.FeatureRecord {
	return pricing.FeatureRecord{
		ModelKey:    "Volkswagen Golf",
		Mileage:     80000,
		EnginePower: 110,
		Fuel:        "petrol",
		PaintColor:  "black",
		CarType:     "suv",
	}
}

func TestQuote(t *testing.T) {
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode request: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"prediction": []float64{118.5}})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	price, err := c.QuoteOne(context.Background(), record())
	if err != nil {
		t.Fatalf("quote: %v", err)
	}
	if price != 118.5 {
		t.Fatalf("expected 118.5, got %v", price)
	}

	input, ok := gotBody["input"].([]any)
	if !ok || len(input) != 1 {
		t.Fatalf("request body should hold one input record: %v", gotBody)
	}
	rec := input[0].(map[string]any)
	if rec["model_key"] != "Volkswagen Golf" {
		t.Fatalf("record not sent verbatim: %v", rec)
	}
}

func TestQuote_CountMismatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"prediction": []float64{1, 2}})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.QuoteOne(context.Background(), record()); err == nil {
		t.Fatal("expected error for count mismatch")
	}
}

func TestQuote_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error_type": "model_unavailable",
			"message":    "pricing model unavailable: read artifact",
		})
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	_, err := c.QuoteOne(context.Background(), record())
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "model_unavailable") {
		t.Fatalf("error should surface the service detail: %v", err)
	}
}

func TestQuote_MalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"price": 10}`))
	}))
	defer srv.Close()

	c := New(srv.URL, time.Second)
	if _, err := c.QuoteOne(context.Background(), record()); err == nil {
		t.Fatal("expected error for missing prediction key")
	}
}

func TestQuote_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	c := New(srv.URL, 20*time.Millisecond)
	if _, err := c.QuoteOne(context.Background(), record()); err == nil {
		t.Fatal("expected timeout error")
	}
}

func TestQuote_EmptyInput(t *testing.T) {
	c := New("http://localhost:1", time.Second)
	if _, err := c.Quote(context.Background(), nil); err == nil {
		t.Fatal("expected error for empty input")
	}
}
