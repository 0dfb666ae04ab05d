// SPDX-License-Identifier: MIT

// Package knapsack - best-first Branch-and-Bound engine.
//
// The engine walks the include/exclude decision tree over the density order.
//
//  1. Validation runs first; nothing is built for invalid input.
//  2. Items are prefetched into density order (dense buffers, no interface
//     overhead in the hot loop).
//  3. The root, like every child, enters the frontier only when its bound
//     exceeds the incumbent. An instance whose root bound is 0 therefore
//     finishes with zero pops.
//  4. Each pop is counted, then: prune when bound ≤ incumbent; record a
//     terminal node; otherwise branch on the next item. The include child is
//     pushed when it fits and its bound exceeds the incumbent, and its subset
//     (already a complete solution: the rest excluded) may raise the
//     incumbent immediately. The exclude child is pushed when its bound
//     exceeds the incumbent.
//  5. Path sums accumulate in density order, so "fits" is tested against
//     the capacity widened by a rounding slack; bounds use the exact
//     capacity, so they stay tight enough to prune. A subset only becomes the
//     incumbent after measure (floats.Sum in ascending index order) finds
//     it within the exact capacity; Exhaustive applies the same rule.
//  6. Budgets are tested between pops: node limit on every pop, deadline and
//     context every budgetCheckEvery pops (and before the first pop).
package knapsack

import (
	"context"
	"fmt"
	"time"
)

// The deadline and the context are consulted once every budgetCheckEvery pops.
const (
	budgetCheckEvery = 1024
	budgetCheckMask  = budgetCheckEvery - 1
)

// incumbent is the best-known solution seen by expand.
type incumbent interface {
	// best returns the current incumbent value.
	best() float64
	// offer replaces the incumbent when v strictly exceeds it. v is the
	// measured value of taken, which is known to be feasible.
	offer(v float64, taken *selection)
}

// expand processes one popped node against inc and returns the children to
// push (nil when not worth pushing). pruned reports a bound-test discard.
func (p *problem) expand(nd *node, inc incumbent) (include, exclude *node, pruned bool) {
	if nd.bound <= inc.best() {
		return nil, nil, true
	}
	if nd.index == p.n {
		p.consider(inc, nd.value, nd.taken)

		return nil, nil, false
	}

	k := nd.index
	if w := nd.weight + p.wt[k]; w <= p.limit {
		v := nd.value + p.val[k]
		taken := nd.taken.with(k)
		if b := p.bound(k+1, v, w); b > inc.best() {
			include = &node{index: k + 1, value: v, weight: w, bound: b, taken: taken}
		}
		p.consider(inc, v, taken)
	}
	if b := p.bound(k+1, nd.value, nd.weight); b > inc.best() {
		exclude = &node{index: k + 1, value: nd.value, weight: nd.weight, bound: b, taken: nd.taken}
	}

	return include, exclude, false
}

// consider offers taken to inc when its path value v may beat the incumbent.
// The candidate is re-measured first: only a measured weight within capacity
// is feasible, and the measured value is what gets recorded.
func (p *problem) consider(inc incumbent, v float64, taken *selection) {
	if v*(1+p.slack) <= inc.best() {
		return
	}
	value, weight := measure(p.items, taken.originals(p.order))
	if weight > p.capacity {
		return
	}
	inc.offer(value, taken)
}

// root returns the root node, or nil when nothing can beat an empty knapsack.
func (p *problem) root() *node {
	b := p.bound(0, 0, 0)
	if b <= 0 {
		return nil
	}

	return &node{index: 0, bound: b}
}

// result maps a selection back to original indices and measures it.
func (p *problem) result(taken *selection, nodes int, st Status, stats Stats) Result {
	sel := taken.originals(p.order)
	value, weight := measure(p.items, sel)

	return Result{
		Value:         value,
		Weight:        weight,
		Selected:      sel,
		NodesExpanded: nodes,
		Status:        st,
		Stats:         stats,
	}
}

// budget holds the caller-imposed limits of one solve.
type budget struct {
	ctx         context.Context
	nodeLimit   int
	useDeadline bool
	deadline    time.Time
}

func newBudget(ctx context.Context, start time.Time, opts Options) budget {
	b := budget{ctx: ctx, nodeLimit: opts.NodeLimit}
	if opts.TimeLimit > 0 {
		b.useDeadline = true
		b.deadline = start.Add(opts.TimeLimit)
	}

	return b
}

// check is called before pop number nodes+1. It returns StatusOptimal and nil
// while the search may continue.
func (b budget) check(nodes int) (Status, error) {
	if b.nodeLimit > 0 && nodes >= b.nodeLimit {
		return StatusNodeLimit, ErrNodeLimit
	}
	if nodes&budgetCheckMask != 0 {
		return StatusOptimal, nil
	}
	if err := b.ctx.Err(); err != nil {
		return StatusCanceled, fmt.Errorf("%w: %w", ErrCanceled, err)
	}
	if b.useDeadline && time.Now().After(b.deadline) {
		return StatusTimeLimit, ErrTimeLimit
	}

	return StatusOptimal, nil
}

// bbEngine holds the state of one sequential search.
type bbEngine struct {
	p      *problem
	opts   Options
	budget budget

	front frontier
	nodes int
	stats Stats

	bestValue float64
	bestTaken *selection
}

func (e *bbEngine) best() float64 { return e.bestValue }

func (e *bbEngine) offer(v float64, taken *selection) {
	if v <= e.bestValue {
		return
	}
	e.bestValue = v
	e.bestTaken = taken
	e.stats.Incumbents++
	e.opts.Logger.Debug("knapsack: incumbent improved",
		"value", v, "nodes", e.nodes, "frontier", e.front.Len())
}

func (e *bbEngine) push(nd *node) {
	if nd == nil {
		return
	}
	e.front.push(nd)
	e.stats.Pushed++
}

// run drives the search until the frontier is empty or a budget ends it.
func (e *bbEngine) run() (Status, error) {
	e.push(e.p.root())
	for e.front.Len() > 0 {
		if st, err := e.budget.check(e.nodes); err != nil {
			return st, err
		}
		nd := e.front.pop()
		e.nodes++
		inc, exc, pruned := e.p.expand(nd, e)
		if pruned {
			e.stats.Pruned++
			continue
		}
		e.push(inc)
		e.push(exc)
	}

	return StatusOptimal, nil
}

// Solve returns an optimal 0/1 knapsack selection for items under capacity.
//
// Contract:
//   - capacity ≥ 0 and finite; every item has finite Value ≥ 0 and Weight ≥ 0.
//   - Result.Selected holds original indices, strictly ascending; Result.Value
//     and Result.Weight are their sums taken with floats.Sum in that order;
//     Result.Weight ≤ capacity.
//   - With real-valued data the value matches Exhaustive up to rounding of
//     the bound (a relative error of order n·2^-52); integral data is exact.
//   - An empty instance returns Value 0, empty Selected, 0 nodes.
//
// Errors:
//   - Validation errors (see Validate) and ErrBadOption; Result is zero.
//   - ErrNodeLimit / ErrTimeLimit / ErrCanceled: Result holds the incumbent
//     with a non-optimal Status.
//
// Complexity: exponential worst case; O(n log n) setup.
func Solve(items []Item, capacity float64, opts ...Option) (Result, error) {
	return SolveContext(context.Background(), items, capacity, opts...)
}

// SolveValues is Solve over parallel value and weight slices.
// Mismatched lengths fail with ErrLengthMismatch.
func SolveValues(values, weights []float64, capacity float64, opts ...Option) (Result, error) {
	items, err := zipItems(values, weights)
	if err != nil {
		return Result{}, err
	}

	return Solve(items, capacity, opts...)
}

// SolveContext is Solve with cancellation: ctx is consulted between pops.
// A nil ctx is treated as context.Background().
func SolveContext(ctx context.Context, items []Item, capacity float64, opts ...Option) (Result, error) {
	cfg, err := buildOptions(opts)
	if err != nil {
		return Result{}, err
	}
	if err = Validate(items, capacity); err != nil {
		return Result{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}

	start := time.Now()
	p := newProblem(items, capacity)
	bud := newBudget(ctx, start, cfg)

	var res Result
	if cfg.Workers > 1 {
		res, err = solveParallel(p, cfg, bud)
	} else {
		res, err = solveSequential(p, cfg, bud)
	}
	res.Stats.Elapsed = time.Since(start)

	cfg.Logger.Debug("knapsack: solve finished",
		"items", len(items),
		"capacity", capacity,
		"value", res.Value,
		"selected", len(res.Selected),
		"nodes", res.NodesExpanded,
		"status", res.Status.String(),
		"elapsed", res.Stats.Elapsed)
	if cfg.Observer != nil {
		cfg.Observer.ObserveSolve(len(items), capacity, res)
	}

	return res, err
}

func solveSequential(p *problem, cfg Options, bud budget) (Result, error) {
	e := bbEngine{p: p, opts: cfg, budget: bud}
	e.stats.Workers = 1
	st, err := e.run()

	return p.result(e.bestTaken, e.nodes, st, e.stats), err
}
