// SPDX-License-Identifier: MIT

// Package knapsack - input validation shared by every solver entry point.
//
// Validation runs before any search state is built. Nothing is clamped or
// coerced: a bad number is reported once, with the item index and field.
package knapsack

import (
	"fmt"
	"math"
)

// Validate checks a problem instance.
//
// Contract:
//   - capacity is finite and ≥ 0 (ErrNonFinite, ErrNegativeCapacity).
//   - every item has finite Value ≥ 0 and finite Weight ≥ 0
//     (*ItemError wrapping ErrNonFinite, ErrNegativeValue or ErrNegativeWeight).
//   - an empty item slice is valid.
//
// The first offending item (lowest index, value before weight) is reported.
//
// Complexity: O(n).
func Validate(items []Item, capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return fmt.Errorf("%w: capacity=%g", ErrNonFinite, capacity)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity=%g", ErrNegativeCapacity, capacity)
	}

	var i int
	for i = range items {
		if err := checkField(i, FieldValue, items[i].Value, ErrNegativeValue); err != nil {
			return err
		}
		if err := checkField(i, FieldWeight, items[i].Weight, ErrNegativeWeight); err != nil {
			return err
		}
	}

	return nil
}

// checkField rejects non-finite and negative numbers for one item field.
func checkField(index int, field string, x float64, negErr error) error {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return &ItemError{Index: index, Field: field, Value: x, Err: ErrNonFinite}
	}
	if x < 0 {
		return &ItemError{Index: index, Field: field, Value: x, Err: negErr}
	}

	return nil
}

// zipItems pairs parallel value/weight slices into items.
func zipItems(values, weights []float64) ([]Item, error) {
	if len(values) != len(weights) {
		return nil, fmt.Errorf("%w: %d values, %d weights", ErrLengthMismatch, len(values), len(weights))
	}
	items := make([]Item, len(values))
	var i int
	for i = range values {
		items[i] = Item{Value: values[i], Weight: weights[i]}
	}

	return items, nil
}
