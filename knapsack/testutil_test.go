// Package knapsack_test provides helpers shared across *_test.go files in this
// package: canonical instances and the result invariants every solve must keep.
package knapsack_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvknap/knapsack"
)

const (
	// seedDet is the base seed for generated instances.
	seedDet = int64(7)

	// nSmall is the largest generated size checked against the exhaustive oracle.
	nSmall = 14

	// workersPar is the worker count used by concurrent-engine tests.
	workersPar = 4
)

// classic is the three-item instance used throughout the docs: capacity 50,
// optimum 220 with items 1 and 2.
func classic() []knapsack.Item {
	return []knapsack.Item{
		{Value: 60, Weight: 10},
		{Value: 100, Weight: 20},
		{Value: 120, Weight: 30},
	}
}

// checkResult asserts feasibility, value consistency and index validity.
// Sums are taken the way the solvers take them: floats.Sum in ascending
// index order, so they compare exactly on fractional data too.
func checkResult(t *testing.T, items []knapsack.Item, capacity float64, res knapsack.Result) {
	t.Helper()

	var vals, wts []float64
	prev := -1
	for _, idx := range res.Selected {
		require.Greater(t, idx, prev, "selected indices must be strictly ascending")
		require.Less(t, idx, len(items), "selected index out of range")
		vals = append(vals, items[idx].Value)
		wts = append(wts, items[idx].Weight)
		prev = idx
	}
	value, weight := floats.Sum(vals), floats.Sum(wts)
	require.NotNil(t, res.Selected)
	require.LessOrEqual(t, weight, capacity, "selection exceeds capacity")
	require.Equal(t, value, res.Value, "reported value differs from selection")
	require.Equal(t, weight, res.Weight, "reported weight differs from selection")
}

// relTol is the relative tolerance for comparing optima on fractional data.
const relTol = 1e-9

// requireSameOptimum asserts that got reaches want's value up to relTol.
func requireSameOptimum(t *testing.T, want, got float64, name string) {
	t.Helper()
	require.True(t, scalar.EqualWithinAbsOrRel(want, got, relTol, relTol),
		"%s: optimum %v, got %v", name, want, got)
}

// fractional is a seven-item instance with one-decimal data whose optimal
// subsets weigh 2.7 in exact arithmetic.
func fractional() []knapsack.Item {
	return []knapsack.Item{
		it(0.2, 0.7), it(0.5, 0.7), it(0.3, 0.7), it(0.5, 0.3),
		it(0.8, 0.4), it(1, 0.6), it(0.2, 0.4),
	}
}

// fractionalCapacity is 2.7 rounded one ulp down, below the index-order sum
// of the best subset.
const fractionalCapacity = 2.6999999999999997

// it builds an item.
func it(value, weight float64) knapsack.Item {
	return knapsack.Item{Value: value, Weight: weight}
}
