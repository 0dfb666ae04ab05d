// SPDX-License-Identifier: MIT

package knapsack

import "container/heap"

// node is a partial decision state. Positions [0, index) of the density order
// are decided; weight ≤ the problem limit holds for every node on the frontier.
type node struct {
	index  int
	value  float64
	weight float64
	bound  float64
	taken  *selection
	seq    uint64 // insertion order, tie-breaker only
}

// frontier is a max-heap of nodes. The ranking key is bound alone (descending);
// seq (ascending) only breaks ties so expansion order is reproducible.
type frontier struct {
	items []*node
	next  uint64
}

// before is the explicit ranking comparator: does a come out before b?
func before(a, b *node) bool {
	if a.bound != b.bound {
		return a.bound > b.bound
	}

	return a.seq < b.seq
}

// frontierHeap adapts frontier to container/heap.
type frontierHeap frontier

func (h *frontierHeap) Len() int           { return len(h.items) }
func (h *frontierHeap) Less(i, j int) bool { return before(h.items[i], h.items[j]) }
func (h *frontierHeap) Swap(i, j int)      { h.items[i], h.items[j] = h.items[j], h.items[i] }

// Push is called by heap.Push; x must be a *node.
func (h *frontierHeap) Push(x interface{}) { h.items = append(h.items, x.(*node)) }

// Pop is called by heap.Pop and returns the last element.
func (h *frontierHeap) Pop() interface{} {
	old := h.items
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	h.items = old[:n-1]

	return it
}

// push stamps nd with the next sequence number and inserts it.
func (f *frontier) push(nd *node) {
	nd.seq = f.next
	f.next++
	heap.Push((*frontierHeap)(f), nd)
}

// pop removes the highest-ranked node. The frontier must be non-empty.
func (f *frontier) pop() *node {
	return heap.Pop((*frontierHeap)(f)).(*node)
}

// Len returns the number of pending nodes.
func (f *frontier) Len() int { return len(f.items) }
