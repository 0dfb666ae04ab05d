// SPDX-License-Identifier: MIT
// Package: lvknap/instance
//
// config.go - internal generator configuration and deterministic defaults.
//
// Design:
//   • genConfig is the single source of truth for all generator knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newGenConfig applies options in order (later overrides earlier).
//
// Deterministic defaults:
//   • seed     = 0 (resolved to defaultRNGSeed)
//   • rng      = nil (built from seed)
//   • R        = 1000
//   • ratio    = 0.5
//   • labelFn  = decimal index ("0","1","2",...)
//   • name     = "<class>-<n>"

package instance

import (
	"math/rand"
	"strconv"
)

// genConfig aggregates all knobs used by Generate. Passed by value.
type genConfig struct {
	seed    int64
	rng     *rand.Rand
	rangeR  float64
	ratio   float64
	labelFn func(int) string
	name    string
}

const (
	defaultRange = 1000.0
	defaultRatio = 0.5
)

// newGenConfig constructs a config with deterministic defaults and applies opts.
// Complexity: O(len(opts)).
func newGenConfig(opts ...GenOption) genConfig {
	cfg := genConfig{
		seed:    0,
		rng:     nil,
		rangeR:  defaultRange,
		ratio:   defaultRatio,
		labelFn: decimalLabel,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rngFromSeed(cfg.seed)
	}
	if cfg.labelFn == nil {
		cfg.labelFn = decimalLabel
	}

	return cfg
}

// decimalLabel renders an index as a base-10 string.
func decimalLabel(i int) string {
	return strconv.Itoa(i)
}
