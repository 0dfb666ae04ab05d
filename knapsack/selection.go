// SPDX-License-Identifier: MIT

package knapsack

import "sort"

// selection is a persistent cons list of density-order positions.
// Children share their parent's tail; nil is the empty selection.
type selection struct {
	pos  int
	next *selection
}

// with returns a new selection that adds pos in front of s. s is unchanged.
func (s *selection) with(pos int) *selection {
	return &selection{pos: pos, next: s}
}

// originals maps the positions back to original item indices, ascending.
func (s *selection) originals(order []int) []int {
	out := make([]int, 0, s.len())
	var cur *selection
	for cur = s; cur != nil; cur = cur.next {
		out = append(out, order[cur.pos])
	}
	sort.Ints(out)

	return out
}

func (s *selection) len() int {
	var (
		n   int
		cur *selection
	)
	for cur = s; cur != nil; cur = cur.next {
		n++
	}

	return n
}
