// SPDX-License-Identifier: MIT

// Package knapsack provides an exact solver for the 0/1 knapsack problem.
//
// Given items with non-negative values and weights and a non-negative capacity,
// Solve returns the maximum total value of a subset whose total weight does not
// exceed the capacity, together with the original indices of that subset.
//
// Algorithm:
//
//   - Items are ordered by value density (value/weight, +Inf for zero weight),
//     descending, ties by original index ascending.
//   - The search explores the include/exclude decision tree best-first: the
//     frontier always yields the node with the highest fractional-relaxation
//     (Dantzig) bound, ties broken by insertion order.
//   - A node is pruned when its bound does not exceed the incumbent. The bound
//     is admissible, so pruning never loses the optimum; it only reduces the
//     number of expanded nodes.
//
// Complexity:
//
//   - Worst case exponential in n (exact search).
//   - Per node: O(n) for the bound, O(log F) frontier operations where F is the
//     frontier size.
//   - Memory: O(F) nodes; selections are structurally shared.
//
// Budgets:
//
//   - WithNodeLimit, WithTimeLimit and SolveContext stop the search early. The
//     incumbent is then returned with a non-optimal Status together with an
//     error matching ErrSearchLimitReached. It is always feasible and a valid
//     lower bound on the optimum.
//
// Concurrency:
//
//   - A single Solve call is self-contained; distinct calls may run in parallel.
//   - WithWorkers(k), k > 1, runs the same search on k goroutines sharing one
//     frontier and one incumbent. The returned value is the same optimum; when
//     several subsets are optimal, the returned subset may differ from the
//     sequential one.
//
// Errors (sentinel):
//
//   - ErrNegativeCapacity, ErrNonFinite for a bad capacity.
//   - *ItemError wrapping ErrNegativeValue, ErrNegativeWeight or ErrNonFinite,
//     naming the offending item index and field.
//   - ErrLengthMismatch from SolveValues.
//   - ErrBadOption for negative limits or worker counts.
//   - ErrNodeLimit, ErrTimeLimit, ErrCanceled (all match ErrSearchLimitReached).
//
// Exhaustive is a brute-force reference solver for small instances (n ≤ 24),
// useful as a test oracle.
package knapsack
