// SPDX-License-Identifier: MIT

// Package instance builds 0/1 knapsack instances for the knapsack package.
//
// Generation follows the standard correlation classes used to benchmark
// knapsack algorithms. Weights w are integers drawn uniformly from [1, R]:
//
//	Uncorrelated               p uniform in [1, R]
//	WeaklyCorrelated           p uniform in [w-R/10, w+R/10], at least 1
//	StronglyCorrelated         p = w + R/10
//	InverseStronglyCorrelated  p uniform in [1, R], w = p + R/10
//	SubsetSum                  p = w
//
// The capacity is floor(ratio·Σw), raised to the largest weight when smaller.
// Strongly correlated and subset-sum instances are the hard ones for
// branch-and-bound; uncorrelated ones are easy.
//
// Determinism: the same class, size and options produce the same instance.
// Seed 0 selects a fixed default seed; no time-based randomness anywhere.
//
// Files: Decode/Encode read and write YAML documents (JSON is accepted on
// input, being a YAML subset):
//
//	name: demo
//	capacity: 50
//	items:
//	  - {label: a, value: 60, weight: 10}
//	  - {label: b, value: 100, weight: 20}
//
// Errors are sentinels (see errors.go) wrapped with method context; knapsack
// validation errors pass through unchanged, so errors.Is works for both.
package instance
