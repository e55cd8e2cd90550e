package scenario

import (
	"errors"
	"fmt"
	"sort"
)

// Row is one measured outcome for a (scope, buffer_hours) configuration.
// Ratios are fractions in [0,1]. RevenueBlockedRatio is nil when the source
// data does not provide revenue figures.
type Row struct {
	Scope                  string   `json:"scope"`
	BufferHours            int      `json:"buffer_hours"`
	BlockedRatio           float64  `json:"blocked_ratio"`
	ConflictsResolvedRatio float64  `json:"conflicts_resolved_ratio"`
	ConflictRatio          float64  `json:"conflict_ratio"`
	RevenueBlockedRatio    *float64 `json:"revenue_blocked_ratio,omitempty"`
	NRentals               int      `json:"n_rentals"`
}

// ErrNotFound is returned when a (scope, buffer) combination has no row.
var ErrNotFound = errors.New("scenario not found")

// Table holds the immutable scenario row set, one row per distinct
// (scope, buffer_hours) pair.
type Table struct {
	rows []Row
}

// NewTable builds a Table from the given rows. Rows are copied so later
// mutation of the input slice does not affect the table.
func NewTable(rows []Row) *Table {
	cp := make([]Row, len(rows))
	copy(cp, rows)
	return &Table{rows: cp}
}

// Len returns the total number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Scopes returns the distinct scopes in deterministic (sorted) order.
func (t *Table) Scopes() []string {
	seen := make(map[string]struct{})
	var scopes []string
	for _, r := range t.rows {
		if _, ok := seen[r.Scope]; !ok {
			seen[r.Scope] = struct{}{}
			scopes = append(scopes, r.Scope)
		}
	}
	sort.Strings(scopes)
	return scopes
}

// Rows returns the rows for a scope sorted by ascending buffer hours.
func (t *Table) Rows(scope string) []Row {
	var out []Row
	for _, r := range t.rows {
		if r.Scope == scope {
			out = append(out, r)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].BufferHours < out[j].BufferHours })
	return out
}

// BufferValues returns the distinct buffer values of a scope in ascending order.
func (t *Table) BufferValues(scope string) []int {
	rows := t.Rows(scope)
	out := make([]int, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.BufferHours)
	}
	return out
}

// Lookup returns the row for the given scope and buffer. It returns
// ErrNotFound when the combination is absent from the table.
func (t *Table) Lookup(scope string, bufferHours int) (Row, error) {
	for _, r := range t.rows {
		if r.Scope == scope && r.BufferHours == bufferHours {
			return r, nil
		}
	}
	return Row{}, fmt.Errorf("scope %q buffer %dh: %w", scope, bufferHours, ErrNotFound)
}
