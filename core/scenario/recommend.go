package scenario

import (
	"errors"
	"sort"
)

// Thresholds of the recommendation policy. A buffer qualifies when it
// resolves at least MinResolvedRatio of conflicts while blocking at most
// MaxBlockedRatio of rentals. Fixed policy constants, not tunable per call.
const (
	MinResolvedRatio = 0.80
	MaxBlockedRatio  = 0.07
)

// ErrEmptyScope is returned when a recommendation is requested for a scope
// with no rows.
var ErrEmptyScope = errors.New("no scenario rows for scope")

// Recommendation is the selected buffer for one scope together with the
// outcome ratios measured at that buffer.
type Recommendation struct {
	BufferHours            int     `json:"buffer_hours"`
	BlockedRatio           float64 `json:"blocked_ratio"`
	ConflictsResolvedRatio float64 `json:"conflicts_resolved_ratio"`
}

// Recommend selects the buffer for one scope's rows. Among rows clearing
// both policy thresholds it picks the smallest buffer, preferring the least
// disruptive option that still works. When no row qualifies it falls back to
// maximizing conflicts_resolved - blocked, with ties broken by the smaller
// buffer value.
func Recommend(rows []Row) (Recommendation, error) {
	if len(rows) == 0 {
		return Recommendation{}, ErrEmptyScope
	}

	var candidates []Row
	for _, r := range rows {
		if r.ConflictsResolvedRatio >= MinResolvedRatio && r.BlockedRatio <= MaxBlockedRatio {
			candidates = append(candidates, r)
		}
	}

	var best Row
	if len(candidates) > 0 {
		sort.Slice(candidates, func(i, j int) bool {
			return candidates[i].BufferHours < candidates[j].BufferHours
		})
		best = candidates[0]
	} else {
		scored := make([]Row, len(rows))
		copy(scored, rows)
		sort.Slice(scored, func(i, j int) bool {
			si := scored[i].ConflictsResolvedRatio - scored[i].BlockedRatio
			sj := scored[j].ConflictsResolvedRatio - scored[j].BlockedRatio
			if si != sj {
				return si > sj
			}
			return scored[i].BufferHours < scored[j].BufferHours
		})
		best = scored[0]
	}

	return Recommendation{
		BufferHours:            best.BufferHours,
		BlockedRatio:           best.BlockedRatio,
		ConflictsResolvedRatio: best.ConflictsResolvedRatio,
	}, nil
}

// RecommendAll computes one recommendation per scope present in the table.
func RecommendAll(t *Table) (map[string]Recommendation, error) {
	out := make(map[string]Recommendation)
	for _, scope := range t.Scopes() {
		rec, err := Recommend(t.Rows(scope))
		if err != nil {
			return nil, err
		}
		out[scope] = rec
	}
	return out, nil
}
