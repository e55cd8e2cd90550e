package scenario

import (
	"errors"
	"testing"
)

func row(scope string, buffer int, resolved, blocked float64) Row {
	return Row{
		Scope:                  scope,
		BufferHours:            buffer,
		BlockedRatio:           blocked,
		ConflictsResolvedRatio: resolved,
	}
}

func TestRecommend_SmallestQualifyingBuffer(t *testing.T) {
	rows := []Row{
		row("all", 0, 0.10, 0.00),
		row("all", 2, 0.85, 0.05),
		row("all", 4, 0.95, 0.20),
	}
	rec, err := Recommend(rows)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.BufferHours != 2 {
		t.Fatalf("expected buffer 2, got %d", rec.BufferHours)
	}
	if rec.BlockedRatio != 0.05 || rec.ConflictsResolvedRatio != 0.85 {
		t.Fatalf("ratios not taken from the selected row: %+v", rec)
	}
}

func TestRecommend_NeverPicksLargerQualifier(t *testing.T) {
	// Both buffers qualify; the rule must take the smaller one even though
	// the larger resolves more conflicts.
	rows := []Row{
		row("all", 6, 0.99, 0.01),
		row("all", 3, 0.81, 0.06),
	}
	rec, err := Recommend(rows)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.BufferHours != 3 {
		t.Fatalf("expected buffer 3, got %d", rec.BufferHours)
	}
}

func TestRecommend_ThresholdBoundariesInclusive(t *testing.T) {
	rows := []Row{row("all", 1, 0.80, 0.07)}
	rec, err := Recommend(rows)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.BufferHours != 1 {
		t.Fatalf("row exactly on thresholds should qualify, got %+v", rec)
	}
}

func TestRecommend_FallbackMaximizesScore(t *testing.T) {
	// No row clears both thresholds: pick argmax(resolved - blocked).
	rows := []Row{
		row("connect_only", 0, 0.00, 0.00), // score 0.00
		row("connect_only", 1, 0.50, 0.09), // score 0.41
		row("connect_only", 2, 0.70, 0.12), // score 0.58
		row("connect_only", 4, 0.90, 0.40), // score 0.50
	}
	rec, err := Recommend(rows)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.BufferHours != 2 {
		t.Fatalf("expected fallback buffer 2, got %d", rec.BufferHours)
	}
}

func TestRecommend_FallbackTieBrokenBySmallerBuffer(t *testing.T) {
	rows := []Row{
		row("all", 5, 0.70, 0.20),
		row("all", 3, 0.70, 0.20),
	}
	rec, err := Recommend(rows)
	if err != nil {
		t.Fatalf("recommend: %v", err)
	}
	if rec.BufferHours != 3 {
		t.Fatalf("equal scores must prefer the smaller buffer, got %d", rec.BufferHours)
	}
}

func TestRecommend_EmptyScope(t *testing.T) {
	if _, err := Recommend(nil); !errors.Is(err, ErrEmptyScope) {
		t.Fatalf("expected ErrEmptyScope, got %v", err)
	}
}

func TestRecommendAll_PerScope(t *testing.T) {
	table := NewTable([]Row{
		row("all", 0, 0.10, 0.00),
		row("all", 2, 0.85, 0.05),
		row("connect_only", 0, 0.10, 0.00),
		row("connect_only", 3, 0.70, 0.12),
	})
	recs, err := RecommendAll(table)
	if err != nil {
		t.Fatalf("recommend all: %v", err)
	}
	if len(recs) != 2 {
		t.Fatalf("expected 2 scopes, got %d", len(recs))
	}
	if recs["all"].BufferHours != 2 {
		t.Errorf("all: expected buffer 2, got %d", recs["all"].BufferHours)
	}
	if recs["connect_only"].BufferHours != 3 {
		t.Errorf("connect_only: expected fallback buffer 3, got %d", recs["connect_only"].BufferHours)
	}
}
