package scenario

// Status qualifies a (blocked, resolved) outcome.
type Status string

const (
	StatusOptimal    Status = "optimal"
	StatusAcceptable Status = "acceptable"
	StatusRisky      Status = "risky"
)

// Classify labels a scenario outcome. Rules are evaluated in order with
// inclusive thresholds; the first match wins. The function is total over
// [0,1]x[0,1] and performs no range validation.
func Classify(blockedRatio, resolvedRatio float64) Status {
	if blockedRatio <= 0.05 && resolvedRatio >= 0.80 {
		return StatusOptimal
	}
	if blockedRatio <= 0.10 && resolvedRatio >= 0.60 {
		return StatusAcceptable
	}
	return StatusRisky
}
