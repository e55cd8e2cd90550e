// Package scenario implements the buffer trade-off analysis over precomputed
// rental scenario rows. It selects a recommended buffer per scope and
// classifies individual (blocked, resolved) outcomes. All functions are pure
// over an immutable row set loaded elsewhere.
package scenario
