// SPDX-License-Identifier: MIT
// Package: lvknap/instance
//
// generate.go - correlation-class generators.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewItems).
//   • 1 ≤ R ≤ MaxRange (else ErrInvalidRange); R is floored to an integer.
//   • 0 < ratio ≤ 1 (else ErrInvalidRatio).
//   • Items are drawn in index order 0..n-1, weight before value except for the
//     inverse class; the draw order is part of the determinism contract.
//
// Complexity: O(n) time and space.

package instance

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvknap/knapsack"
)

// MaxRange is the largest coefficient range R: every integer up to 2^53 is
// exact as a float64, and the int64 draws cannot overflow.
const MaxRange = 1 << 53

// Class selects how values correlate with weights.
type Class int

// Supported classes; see the package documentation for their definitions.
const (
	Uncorrelated Class = iota
	WeaklyCorrelated
	StronglyCorrelated
	InverseStronglyCorrelated
	SubsetSum
)

var classNames = [...]string{
	Uncorrelated:              "uncorrelated",
	WeaklyCorrelated:          "weakly-correlated",
	StronglyCorrelated:        "strongly-correlated",
	InverseStronglyCorrelated: "inverse-strongly-correlated",
	SubsetSum:                 "subset-sum",
}

func (c Class) String() string {
	if c < 0 || int(c) >= len(classNames) {
		return fmt.Sprintf("class(%d)", int(c))
	}

	return classNames[c]
}

// Classes lists every supported class in declaration order.
func Classes() []Class {
	return []Class{Uncorrelated, WeaklyCorrelated, StronglyCorrelated, InverseStronglyCorrelated, SubsetSum}
}

// ParseClass maps a class name (case-insensitive, '_' accepted for '-') to a Class.
func ParseClass(s string) (Class, error) {
	name := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "_", "-")
	for i, cn := range classNames {
		if cn == name {
			return Class(i), nil
		}
	}

	return 0, fmt.Errorf("%q: %w", s, ErrUnknownClass)
}

// Generate returns a deterministic instance of the given class and size.
func Generate(class Class, n int, opts ...GenOption) (Instance, error) {
	cfg := newGenConfig(opts...)

	if n < 1 {
		return Instance{}, wrapf(methodGenerate, "n=%d", ErrTooFewItems, n)
	}
	if !(cfg.rangeR >= 1 && cfg.rangeR <= MaxRange) {
		return Instance{}, wrapf(methodGenerate, "R=%g", ErrInvalidRange, cfg.rangeR)
	}
	if !(cfg.ratio > 0 && cfg.ratio <= 1) {
		return Instance{}, wrapf(methodGenerate, "ratio=%g", ErrInvalidRatio, cfg.ratio)
	}
	if class < 0 || int(class) >= len(classNames) {
		return Instance{}, wrapf(methodGenerate, "class=%d", ErrUnknownClass, int(class))
	}

	var (
		r       = cfg.rng
		maxR    = int64(math.Floor(cfg.rangeR))
		shift   = maxR / 10
		items   = make([]knapsack.Item, n)
		labels  = make([]string, n)
		weights = make([]float64, n)
		p, w    int64
		i       int
	)
	for i = 0; i < n; i++ {
		switch class {
		case Uncorrelated:
			w = uniformInt(r, 1, maxR)
			p = uniformInt(r, 1, maxR)
		case WeaklyCorrelated:
			w = uniformInt(r, 1, maxR)
			p = w + uniformInt(r, -shift, shift)
			if p < 1 {
				p = 1
			}
		case StronglyCorrelated:
			w = uniformInt(r, 1, maxR)
			p = w + shift
		case InverseStronglyCorrelated:
			p = uniformInt(r, 1, maxR)
			w = p + shift
		case SubsetSum:
			w = uniformInt(r, 1, maxR)
			p = w
		}
		items[i] = knapsack.Item{Value: float64(p), Weight: float64(w)}
		weights[i] = float64(w)
		labels[i] = cfg.labelFn(i)
	}

	capacity := math.Floor(cfg.ratio * floats.Sum(weights))
	if maxW := floats.Max(weights); capacity < maxW {
		capacity = maxW
	}

	name := cfg.name
	if name == "" {
		name = fmt.Sprintf("%s-%d", class, n)
	}

	return Instance{Name: name, Capacity: capacity, Items: items, Labels: labels}, nil
}
