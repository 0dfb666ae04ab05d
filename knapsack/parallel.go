// SPDX-License-Identifier: MIT

// Package knapsack - concurrent best-first Branch-and-Bound.
//
// Workers share one frontier and one incumbent:
//   - the frontier is a mutex-guarded heap; idle workers wait on a condition
//     variable; the search ends when the frontier is empty and no worker holds
//     a node (inflight == 0);
//   - the incumbent value is read atomically for pruning and replaced under a
//     mutex with a compare-and-replace, so it only ever grows. A stale read can
//     delay a prune but never causes a wrong one;
//   - pops are counted under the frontier lock, so the node limit is exact;
//   - the worker that trips a budget records it, wakes everybody and returns
//     the budget error through the errgroup.
package knapsack

import (
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// sharedSearch is the state of one concurrent search.
type sharedSearch struct {
	p      *problem
	opts   Options
	budget budget

	mu       sync.Mutex
	cond     *sync.Cond
	front    frontier
	inflight int
	nodes    int
	pushed   int
	done     bool
	status   Status

	bestBits   atomic.Uint64 // math.Float64bits of the incumbent value
	bestMu     sync.Mutex
	bestTaken  *selection
	incumbents int // guarded by bestMu

	pruned atomic.Int64
}

func (s *sharedSearch) best() float64 { return math.Float64frombits(s.bestBits.Load()) }

func (s *sharedSearch) offer(v float64, taken *selection) {
	if v <= s.best() {
		return
	}
	s.bestMu.Lock()
	defer s.bestMu.Unlock()
	if v <= s.best() {
		return
	}
	s.bestTaken = taken
	s.bestBits.Store(math.Float64bits(v))
	s.incumbents++
	s.opts.Logger.Debug("knapsack: incumbent improved", "value", v)
}

// take blocks until a node is available or the search is over.
func (s *sharedSearch) take() (*node, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for {
		if s.done {
			return nil, nil
		}
		if s.front.Len() > 0 {
			if st, err := s.budget.check(s.nodes); err != nil {
				s.status = st
				s.done = true
				s.cond.Broadcast()

				return nil, err
			}
			nd := s.front.pop()
			s.nodes++
			s.inflight++

			return nd, nil
		}
		if s.inflight == 0 {
			s.done = true
			s.cond.Broadcast()

			return nil, nil
		}
		s.cond.Wait()
	}
}

// give pushes the children of a finished node and releases it.
func (s *sharedSearch) give(children ...*node) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, nd := range children {
		if nd != nil && nd.bound > s.best() {
			s.front.push(nd)
			s.pushed++
		}
	}
	s.inflight--
	s.cond.Broadcast()
}

func (s *sharedSearch) worker() error {
	for {
		nd, err := s.take()
		if err != nil || nd == nil {
			return err
		}
		inc, exc, pruned := s.p.expand(nd, s)
		if pruned {
			s.pruned.Add(1)
		}
		s.give(inc, exc)
	}
}

func solveParallel(p *problem, cfg Options, bud budget) (Result, error) {
	s := &sharedSearch{p: p, opts: cfg, budget: bud, status: StatusOptimal}
	s.cond = sync.NewCond(&s.mu)
	if root := p.root(); root != nil {
		s.front.push(root)
		s.pushed++
	}

	var g errgroup.Group
	var w int
	for w = 0; w < cfg.Workers; w++ {
		g.Go(s.worker)
	}
	err := g.Wait()

	stats := Stats{
		Pushed:     s.pushed,
		Pruned:     int(s.pruned.Load()),
		Incumbents: s.incumbents,
		Workers:    cfg.Workers,
	}

	return p.result(s.bestTaken, s.nodes, s.status, stats), err
}
