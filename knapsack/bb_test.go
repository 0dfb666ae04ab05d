// Package knapsack_test validates the sequential best-first engine.
// Focus:
//  1. Concrete scenarios and degenerate-but-valid inputs.
//  2. Zero-weight items, capacity monotonicity, determinism.
//  3. Node, time and context budgets: early results stay feasible and are
//     labeled non-optimal.
//  4. Logger and Observer hooks.
package knapsack_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/knapsack"
)

func TestSolve_Classic(t *testing.T) {
	items := classic()
	res, err := knapsack.Solve(items, 50)
	require.NoError(t, err)

	checkResult(t, items, 50, res)
	assert.Equal(t, 220.0, res.Value)
	assert.Equal(t, 50.0, res.Weight)
	assert.Equal(t, []int{1, 2}, res.Selected)
	assert.Positive(t, res.NodesExpanded)
	assert.True(t, res.Optimal())
	assert.Equal(t, 1, res.Stats.Workers)
}

func TestSolve_Degenerate(t *testing.T) {
	cases := []struct {
		name     string
		items    []knapsack.Item
		capacity float64
		value    float64
		selected []int
		nodes    int
	}{
		{"empty", nil, 10, 0, []int{}, 0},
		{"empty zero capacity", []knapsack.Item{}, 0, 0, []int{}, 0},
		{"zero capacity", classic(), 0, 0, []int{}, 0},
		{"single too heavy", []knapsack.Item{it(10, 5)}, 0, 0, []int{}, 0},
		{"all zero values", []knapsack.Item{it(0, 1), it(0, 2)}, 10, 0, []int{}, 0},
		{"free item at zero capacity", []knapsack.Item{it(5, 0)}, 0, 5, []int{0}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := knapsack.Solve(tc.items, tc.capacity)
			require.NoError(t, err)
			checkResult(t, tc.items, tc.capacity, res)
			assert.Equal(t, tc.value, res.Value)
			assert.Equal(t, tc.selected, res.Selected)
			assert.Equal(t, tc.nodes, res.NodesExpanded)
			assert.True(t, res.Optimal())
		})
	}
}

func TestSolve_ZeroWeightAlwaysSelected(t *testing.T) {
	items := []knapsack.Item{it(4, 3), it(1, 0), it(9, 7), it(2, 0), it(6, 5)}
	var c float64
	for c = 0; c <= 15; c++ {
		res, err := knapsack.Solve(items, c)
		require.NoError(t, err)
		checkResult(t, items, c, res)
		assert.Contains(t, res.Selected, 1, "capacity %g", c)
		assert.Contains(t, res.Selected, 3, "capacity %g", c)
	}
}

func TestSolve_MonotoneInCapacity(t *testing.T) {
	inst, err := instance.Generate(instance.WeaklyCorrelated, 20, instance.WithSeed(seedDet), instance.WithRange(100))
	require.NoError(t, err)

	var (
		total float64
		prev  = -1.0
	)
	for _, item := range inst.Items {
		total += item.Weight
	}
	var c float64
	for c = 0; c <= total; c += total / 25 {
		res, err := knapsack.Solve(inst.Items, c)
		require.NoError(t, err)
		checkResult(t, inst.Items, c, res)
		require.GreaterOrEqual(t, res.Value, prev, "capacity %g", c)
		prev = res.Value
	}
}

func TestSolve_Deterministic(t *testing.T) {
	inst, err := instance.Generate(instance.StronglyCorrelated, 30, instance.WithSeed(seedDet))
	require.NoError(t, err)

	first, err := inst.Solve(context.Background())
	require.NoError(t, err)
	var i int
	for i = 0; i < 3; i++ {
		again, err := inst.Solve(context.Background())
		require.NoError(t, err)
		assert.Equal(t, first.Value, again.Value)
		assert.Equal(t, first.Selected, again.Selected)
		assert.Equal(t, first.NodesExpanded, again.NodesExpanded)
		assert.Equal(t, first.Stats.Pushed, again.Stats.Pushed)
		assert.Equal(t, first.Stats.Pruned, again.Stats.Pruned)
	}
}

func TestSolve_DoesNotMutateItems(t *testing.T) {
	items := classic()
	_, err := knapsack.Solve(items, 50)
	require.NoError(t, err)
	assert.Equal(t, classic(), items)
}

func TestRelaxationBound(t *testing.T) {
	b, err := knapsack.RelaxationBound(classic(), 50)
	require.NoError(t, err)
	assert.Equal(t, 240.0, b)

	_, err = knapsack.RelaxationBound(classic(), -1)
	require.ErrorIs(t, err, knapsack.ErrNegativeCapacity)
}

// hard returns an instance that needs far more than a handful of pops.
func hard(t *testing.T) instance.Instance {
	t.Helper()
	inst, err := instance.Generate(instance.StronglyCorrelated, 40, instance.WithSeed(seedDet))
	require.NoError(t, err)

	return inst
}

func TestSolve_NodeLimit(t *testing.T) {
	inst := hard(t)
	const limit = 5

	res, err := knapsack.Solve(inst.Items, inst.Capacity, knapsack.WithNodeLimit(limit))
	require.ErrorIs(t, err, knapsack.ErrNodeLimit)
	require.ErrorIs(t, err, knapsack.ErrSearchLimitReached)
	assert.Equal(t, knapsack.StatusNodeLimit, res.Status)
	assert.False(t, res.Optimal())
	assert.Equal(t, limit, res.NodesExpanded)
	checkResult(t, inst.Items, inst.Capacity, res)

	full, err := knapsack.Solve(inst.Items, inst.Capacity)
	require.NoError(t, err)
	assert.LessOrEqual(t, res.Value, full.Value, "early value is a lower bound")
}

func TestSolve_TimeLimit(t *testing.T) {
	inst := hard(t)

	res, err := knapsack.Solve(inst.Items, inst.Capacity, knapsack.WithTimeLimit(time.Nanosecond))
	require.ErrorIs(t, err, knapsack.ErrTimeLimit)
	require.ErrorIs(t, err, knapsack.ErrSearchLimitReached)
	assert.Equal(t, knapsack.StatusTimeLimit, res.Status)
	assert.Zero(t, res.NodesExpanded)
	checkResult(t, inst.Items, inst.Capacity, res)
}

func TestSolve_Canceled(t *testing.T) {
	inst := hard(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := knapsack.SolveContext(ctx, inst.Items, inst.Capacity)
	require.ErrorIs(t, err, knapsack.ErrCanceled)
	require.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, knapsack.StatusCanceled, res.Status)
	assert.Zero(t, res.NodesExpanded)
	checkResult(t, inst.Items, inst.Capacity, res)
}

func TestSolve_LimitsDoNotTripOnEasyInstances(t *testing.T) {
	res, err := knapsack.Solve(classic(), 50,
		knapsack.WithNodeLimit(1000), knapsack.WithTimeLimit(time.Minute))
	require.NoError(t, err)
	assert.True(t, res.Optimal())
	assert.Equal(t, 220.0, res.Value)
}

// recorder is an Observer that keeps every call.
type recorder struct {
	n        []int
	capacity []float64
	results  []knapsack.Result
}

func (r *recorder) ObserveSolve(n int, capacity float64, res knapsack.Result) {
	r.n = append(r.n, n)
	r.capacity = append(r.capacity, capacity)
	r.results = append(r.results, res)
}

func TestSolve_Observer(t *testing.T) {
	rec := &recorder{}
	res, err := knapsack.Solve(classic(), 50, knapsack.WithObserver(rec))
	require.NoError(t, err)

	require.Len(t, rec.results, 1)
	assert.Equal(t, 3, rec.n[0])
	assert.Equal(t, 50.0, rec.capacity[0])
	assert.Equal(t, res.Value, rec.results[0].Value)

	inst := hard(t)
	_, err = knapsack.Solve(inst.Items, inst.Capacity, knapsack.WithObserver(rec), knapsack.WithNodeLimit(3))
	require.True(t, errors.Is(err, knapsack.ErrSearchLimitReached))
	require.Len(t, rec.results, 2)
	assert.Equal(t, knapsack.StatusNodeLimit, rec.results[1].Status)

	_, err = knapsack.Solve(classic(), -1, knapsack.WithObserver(rec))
	require.Error(t, err)
	assert.Len(t, rec.results, 2, "invalid input is not observed")
}

func TestSolve_Logger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := knapsack.Solve(classic(), 50, knapsack.WithLogger(logger))
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "knapsack: incumbent improved")
	assert.Contains(t, buf.String(), "knapsack: solve finished")
	assert.Contains(t, buf.String(), `"status":"optimal"`)

	_, err = knapsack.Solve(classic(), 50, knapsack.WithLogger(nil))
	require.NoError(t, err)
}
