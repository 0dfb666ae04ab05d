// Package knapsack_test validates the concurrent engine. Subsets may differ
// from the sequential engine when several optima exist, so only the value,
// feasibility and budgets are compared.
package knapsack_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/knapsack"
)

type ParallelSuite struct {
	suite.Suite
}

func (s *ParallelSuite) TestClassic() {
	res, err := knapsack.Solve(classic(), 50, knapsack.WithWorkers(workersPar))
	s.Require().NoError(err)
	checkResult(s.T(), classic(), 50, res)
	s.Equal(220.0, res.Value)
	s.Equal([]int{1, 2}, res.Selected)
	s.True(res.Optimal())
	s.Equal(workersPar, res.Stats.Workers)
}

func (s *ParallelSuite) TestDegenerate() {
	res, err := knapsack.Solve(nil, 5, knapsack.WithWorkers(workersPar))
	s.Require().NoError(err)
	s.Zero(res.Value)
	s.Equal([]int{}, res.Selected)
	s.Zero(res.NodesExpanded)

	res, err = knapsack.Solve([]knapsack.Item{it(5, 0)}, 0, knapsack.WithWorkers(workersPar))
	s.Require().NoError(err)
	s.Equal(5.0, res.Value)
	s.Equal([]int{0}, res.Selected)
}

func (s *ParallelSuite) TestMatchesSequential() {
	var n int
	for _, class := range instance.Classes() {
		for n = 5; n <= 35; n += 10 {
			inst, err := instance.Generate(class, n, instance.WithSeed(instance.DeriveSeed(seedDet, uint64(n))))
			s.Require().NoError(err)

			seq, err := knapsack.Solve(inst.Items, inst.Capacity)
			s.Require().NoError(err)
			par, err := knapsack.Solve(inst.Items, inst.Capacity, knapsack.WithWorkers(workersPar))
			s.Require().NoError(err)

			checkResult(s.T(), inst.Items, inst.Capacity, par)
			s.Equal(seq.Value, par.Value, "%s n=%d", class, n)
			s.True(par.Optimal())
		}
	}
}

func (s *ParallelSuite) TestNodeLimitIsExact() {
	inst := hard(s.T())
	const limit = 10

	res, err := knapsack.Solve(inst.Items, inst.Capacity,
		knapsack.WithWorkers(workersPar), knapsack.WithNodeLimit(limit))
	s.Require().ErrorIs(err, knapsack.ErrNodeLimit)
	s.Equal(knapsack.StatusNodeLimit, res.Status)
	s.Equal(limit, res.NodesExpanded)
	checkResult(s.T(), inst.Items, inst.Capacity, res)
}

func (s *ParallelSuite) TestCanceled() {
	inst := hard(s.T())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := knapsack.SolveContext(ctx, inst.Items, inst.Capacity, knapsack.WithWorkers(workersPar))
	s.Require().ErrorIs(err, context.Canceled)
	s.Equal(knapsack.StatusCanceled, res.Status)
	s.Zero(res.NodesExpanded)
}

func TestParallelSuite(t *testing.T) {
	suite.Run(t, new(ParallelSuite))
}
