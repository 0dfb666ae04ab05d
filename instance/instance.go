// SPDX-License-Identifier: MIT

package instance

import (
	"context"
	"strconv"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Instance is a named knapsack problem. Labels is either nil or holds one
// unique label per item.
type Instance struct {
	Name     string
	Capacity float64
	Items    []knapsack.Item
	Labels   []string
}

// Label returns the label of item i, or its decimal index when unlabeled.
func (in Instance) Label(i int) string {
	if i >= 0 && i < len(in.Labels) && in.Labels[i] != "" {
		return in.Labels[i]
	}

	return strconv.Itoa(i)
}

// Validate checks the items and capacity (knapsack.Validate) and the labels.
func (in Instance) Validate() error {
	if err := knapsack.Validate(in.Items, in.Capacity); err != nil {
		return wrapf(methodValidate, "instance %q", err, in.Name)
	}
	if in.Labels == nil {
		return nil
	}
	if len(in.Labels) != len(in.Items) {
		return wrapf(methodValidate, "%d labels for %d items", ErrMalformed, len(in.Labels), len(in.Items))
	}
	seen := make(map[string]int, len(in.Labels))
	for i, l := range in.Labels {
		if l == "" {
			continue
		}
		if j, dup := seen[l]; dup {
			return wrapf(methodValidate, "label %q at %d and %d", ErrDuplicateLabel, l, j, i)
		}
		seen[l] = i
	}

	return nil
}

// Solve runs knapsack.SolveContext on the instance.
func (in Instance) Solve(ctx context.Context, opts ...knapsack.Option) (knapsack.Result, error) {
	return knapsack.SolveContext(ctx, in.Items, in.Capacity, opts...)
}

// SelectedLabels maps result indices to labels.
func (in Instance) SelectedLabels(res knapsack.Result) []string {
	out := make([]string, len(res.Selected))
	for k, i := range res.Selected {
		out[k] = in.Label(i)
	}

	return out
}
