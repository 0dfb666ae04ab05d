// SPDX-License-Identifier: MIT

package knapsack

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// roundingSlack is the relative difference two summation orders of n+1
// non-negative terms can show, per term: (n+1)·2^-52 bounds it for the sums
// used here.
const roundingSlack = 0x1p-52

// problem is a validated instance prefetched into density order.
// Position k in val/wt is the k-th item by density; order[k] is its original index.
//
// The tree is walked with path sums in density order. The include test checks
// them against limit, which exceeds capacity only by the rounding slack; bounds
// use the exact capacity. Whether a subset is feasible, and what it is worth,
// is decided by measure alone.
type problem struct {
	n        int
	capacity float64
	limit    float64 // capacity widened by the rounding slack
	slack    float64 // relative slack, (n+1)·2^-52
	items    []Item
	order    []int
	val      []float64
	wt       []float64
}

// density is value per unit of weight; zero-weight items are free value.
func density(it Item) float64 {
	if it.Weight > 0 {
		return it.Value / it.Weight
	}

	return math.Inf(1)
}

// densityOrder implements sort.Interface: density descending, original index ascending.
type densityOrder struct {
	idx []int
	key []float64
}

func (d densityOrder) Len() int { return len(d.idx) }
func (d densityOrder) Less(i, j int) bool {
	ki, kj := d.key[d.idx[i]], d.key[d.idx[j]]
	if ki == kj {
		return d.idx[i] < d.idx[j]
	}

	return ki > kj
}
func (d densityOrder) Swap(i, j int) { d.idx[i], d.idx[j] = d.idx[j], d.idx[i] }

// newProblem sorts items by density into dense buffers. items must be validated.
//
// Complexity: O(n log n).
func newProblem(items []Item, capacity float64) *problem {
	var (
		n = len(items)
		p = &problem{
			n:        n,
			capacity: capacity,
			items:    items,
			order:    make([]int, n),
			val:      make([]float64, n),
			wt:       make([]float64, n),
		}
		key = make([]float64, n)
		i   int
	)
	for i = 0; i < n; i++ {
		p.order[i] = i
		key[i] = density(items[i])
	}
	sort.Sort(densityOrder{idx: p.order, key: key})
	p.slack = float64(n+1) * roundingSlack
	p.limit = capacity * (1 + p.slack)
	for i = 0; i < n; i++ {
		p.val[i] = items[p.order[i]].Value
		p.wt[i] = items[p.order[i]].Weight
	}

	return p
}

// measure returns the value and weight of the items at sel (original
// indices, ascending), each summed in that order with floats.Sum. It is the one
// summation that decides feasibility and reported sums, in every solver.
func measure(items []Item, sel []int) (value, weight float64) {
	return measureInto(items, sel, make([]float64, 0, len(sel)), make([]float64, 0, len(sel)))
}

// measureInto is measure with caller-owned scratch buffers.
func measureInto(items []Item, sel []int, vals, wts []float64) (value, weight float64) {
	vals, wts = vals[:0], wts[:0]
	for _, idx := range sel {
		vals = append(vals, items[idx].Value)
		wts = append(wts, items[idx].Weight)
	}

	return floats.Sum(vals), floats.Sum(wts)
}
