// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"time"
)

// MaxExhaustiveItems is the largest instance Exhaustive accepts (2^24 subsets).
const MaxExhaustiveItems = 24

// Exhaustive solves the instance by enumerating every subset. It is the
// reference oracle for Solve on small instances.
//
// Subsets are visited in increasing bit-mask order (bit i = item i) and the
// first one reaching the maximum value wins, so the result is deterministic.
// Each subset is measured like Solve measures its candidates: floats.Sum in
// ascending index order, feasible when the weight is within capacity.
// NodesExpanded reports the number of subsets visited.
//
// Errors: those of Validate, and ErrTooManyItems when len(items) exceeds
// MaxExhaustiveItems.
//
// Complexity: O(2^n · n) time, O(n) space.
func Exhaustive(items []Item, capacity float64) (Result, error) {
	if err := Validate(items, capacity); err != nil {
		return Result{}, err
	}
	n := len(items)
	if n > MaxExhaustiveItems {
		return Result{}, fmt.Errorf("%w: n=%d > %d", ErrTooManyItems, n, MaxExhaustiveItems)
	}

	var (
		start     = time.Now()
		total     = uint32(1) << uint(n)
		bestMask  uint32
		bestValue float64
		sel       = make([]int, 0, n)
		vals      = make([]float64, 0, n)
		wts       = make([]float64, 0, n)
		mask      uint32
	)
	for mask = 0; mask < total; mask++ {
		v, w := measureInto(items, maskIndices(mask, n, sel), vals, wts)
		if w <= capacity && v > bestValue {
			bestValue, bestMask = v, mask
		}
	}

	best := maskIndices(bestMask, n, make([]int, 0, n))
	value, weight := measure(items, best)

	return Result{
		Value:         value,
		Weight:        weight,
		Selected:      best,
		NodesExpanded: int(total),
		Status:        StatusOptimal,
		Stats:         Stats{Elapsed: time.Since(start), Workers: 1},
	}, nil
}

// maskIndices writes the set bits of mask (below n) into buf, ascending.
func maskIndices(mask uint32, n int, buf []int) []int {
	buf = buf[:0]
	var i int
	for i = 0; i < n; i++ {
		if mask&(1<<uint(i)) != 0 {
			buf = append(buf, i)
		}
	}

	return buf
}
