// Package lvknap is an exact 0/1 knapsack toolkit: a best-first
// branch-and-bound solver plus the instance tooling around it.
//
// What is inside?
//
//	knapsack/          the solver: density ordering, fractional relaxation
//	                   bound, best-first frontier, node/time/context budgets,
//	                   a concurrent engine and an exhaustive oracle
//	instance/          named instances, correlation-class generators and the
//	                   YAML/JSON file format
//	cmd/lvknap         CLI: generate and solve instances
//	internal/config    flags, LVKNAP_* environment and config file
//	internal/logging   structured logging with file rotation
//	internal/metrics   Prometheus solve metrics, written as a textfile
//	examples/cargo     a runnable walkthrough
//
// Quick example:
//
//	items := []knapsack.Item{{Value: 60, Weight: 10}, {Value: 100, Weight: 20}, {Value: 120, Weight: 30}}
//	res, err := knapsack.Solve(items, 50)
//	// res.Value == 220, res.Selected == []int{1, 2}
//
// Guarantees: the value is optimal unless a budget stopped the search, in
// which case the error matches knapsack.ErrSearchLimitReached and the result
// is a feasible lower bound. Invalid numbers are rejected, never clamped.
//
//	go get github.com/katalvlaran/lvknap
package lvknap
