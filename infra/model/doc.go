// Package model loads the fitted pricing pipeline artifact and exposes it as
// an immutable handle implementing the core pricing.Predictor capability.
// The artifact is a JSON export of a linear one-hot regression: an intercept,
// one weight per numeric column and one weight per observed level of each
// categorical column. The file may hold the model document directly or wrap
// it in a bundle with training metadata; both shapes normalize to the same
// handle at load time.
package model
