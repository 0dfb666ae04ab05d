// SPDX-License-Identifier: MIT
// Package: lvknap/instance
//
// options.go - functional options for Generate.
//
// Options only record values; domain checks happen in Generate so that a bad
// option surfaces as a sentinel error instead of a panic.

package instance

import "math/rand"

// GenOption customizes Generate.
type GenOption func(*genConfig)

// WithSeed selects a deterministic random stream. Seed 0 selects the fixed
// default seed. Ignored when WithRand is also given.
func WithSeed(seed int64) GenOption {
	return func(c *genConfig) { c.seed = seed }
}

// WithRand supplies the random source directly. The generator consumes it;
// do not share it across goroutines.
func WithRand(r *rand.Rand) GenOption {
	return func(c *genConfig) { c.rng = r }
}

// WithRange sets the coefficient range R (weights in [1, R]). R must lie in
// [1, MaxRange].
func WithRange(r float64) GenOption {
	return func(c *genConfig) { c.rangeR = r }
}

// WithCapacityRatio sets capacity = floor(f·Σw). f must lie in (0, 1].
func WithCapacityRatio(f float64) GenOption {
	return func(c *genConfig) { c.ratio = f }
}

// WithLabelFunc names item i with fn(i). nil keeps decimal labels.
func WithLabelFunc(fn func(int) string) GenOption {
	return func(c *genConfig) { c.labelFn = fn }
}

// WithName sets the instance name. Empty keeps "<class>-<n>".
func WithName(name string) GenOption {
	return func(c *genConfig) { c.name = name }
}
