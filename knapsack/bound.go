// SPDX-License-Identifier: MIT

package knapsack

// bound returns the fractional-relaxation upper bound for a node that has
// decided positions [0, index) with the given accumulated value and weight.
//
// Items from index onward are added in density order: whole while they fit,
// then one fractional item, then stop. Relaxing integrality can only raise the
// achievable value, so the bound is admissible. The sum starts from value and
// adds item by item, matching how include children accumulate. The room is
// measured against the exact capacity, so a node whose relaxation equals the
// optimum is pruned once that optimum is the incumbent. A path weight
// inside the rounding slack above capacity leaves no room.
//
// Complexity: O(n - index).
func (p *problem) bound(index int, value, weight float64) float64 {
	var (
		room = p.capacity - weight
		b    = value
		k    int
	)
	if room < 0 {
		room = 0
	}
	for k = index; k < p.n; k++ {
		if p.wt[k] <= room {
			room -= p.wt[k]
			b += p.val[k]
			continue
		}
		// room < wt[k] implies wt[k] > 0.
		b += p.val[k] * (room / p.wt[k])
		break
	}

	return b
}

// RelaxationBound returns the value of the fractional relaxation of the whole
// instance (the root bound). It is an upper bound on the 0/1 optimum; the gap
// to Solve's value measures how tight the relaxation is.
//
// Errors: those of Validate.
//
// Complexity: O(n log n).
func RelaxationBound(items []Item, capacity float64) (float64, error) {
	if err := Validate(items, capacity); err != nil {
		return 0, err
	}

	return newProblem(items, capacity).bound(0, 0, 0), nil
}
