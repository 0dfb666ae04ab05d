// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/katalvlaran/lvknap/instance"
	"github.com/katalvlaran/lvknap/internal/metrics"
	"github.com/katalvlaran/lvknap/knapsack"
)

// ErrVerifyFailed reports a branch-and-bound value that disagrees with the
// exhaustive oracle.
var ErrVerifyFailed = errors.New("verification failed")

// verifyTolerance is the absolute and relative slack allowed between the two
// optima. Solve can settle a value a few ulps (of order n·2^-52) away from the
// exhaustive one on real-valued data; integral data compares exactly.
const verifyTolerance = 1e-9

func newSolveCmd(a *app) *cobra.Command {
	var (
		file     string
		capacity float64
	)
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Solve an instance file (or stdin) to optimality",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			inst, err := readInstance(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("capacity") {
				inst.Capacity = capacity
			}

			return a.solve(cmd, inst)
		},
	}

	f := cmd.Flags()
	f.StringVar(&file, "file", "-", "instance file, - for stdin")
	f.Float64Var(&capacity, "capacity", 0, "override the instance capacity")
	f.Int("workers", 1, "concurrent workers; 1 runs the sequential engine")
	f.Int("node-limit", 0, "stop after this many expanded nodes (0 = unlimited)")
	f.Duration("time-limit", 0, "stop after this wall-clock time (0 = unlimited)")
	f.Bool("verify", false, "check the result against exhaustive search (small n) or the relaxation bound")
	f.String("metrics-out", "", "write Prometheus metrics to this textfile")

	return cmd
}

func readInstance(file string, stdin io.Reader) (instance.Instance, error) {
	if file == "" || file == "-" {
		return instance.Decode(stdin)
	}

	return instance.Load(file)
}

func (a *app) solve(cmd *cobra.Command, inst instance.Instance) error {
	s := a.cfg.Solve
	opts := []knapsack.Option{
		knapsack.WithWorkers(s.Workers),
		knapsack.WithNodeLimit(s.NodeLimit),
		knapsack.WithTimeLimit(s.TimeLimit),
		knapsack.WithLogger(a.log.Logger),
	}
	var rec *metrics.Recorder
	if s.MetricsOut != "" {
		rec = metrics.NewRecorder()
		opts = append(opts, knapsack.WithObserver(rec))
	}

	res, solveErr := inst.Solve(cmd.Context(), opts...)
	if solveErr != nil && !errors.Is(solveErr, knapsack.ErrSearchLimitReached) {
		return solveErr
	}

	out := cmd.OutOrStdout()
	printResult(out, inst, res)
	a.log.Info("solve finished",
		"instance", inst.Name, "value", res.Value, "nodes", res.NodesExpanded,
		"status", res.Status.String(), "elapsed", res.Stats.Elapsed)

	if rec != nil {
		if err := rec.WriteTextfile(s.MetricsOut); err != nil {
			return err
		}
	}
	if s.Verify {
		if err := verify(out, inst, res); err != nil {
			return err
		}
	}

	return solveErr
}

func printResult(w io.Writer, inst instance.Instance, res knapsack.Result) {
	fmt.Fprintf(w, "instance: %s (%d items, capacity %g)\n", inst.Name, len(inst.Items), inst.Capacity)
	fmt.Fprintf(w, "value:    %g\n", res.Value)
	fmt.Fprintf(w, "weight:   %g\n", res.Weight)
	fmt.Fprintf(w, "selected: [%s]\n", strings.Join(inst.SelectedLabels(res), " "))
	fmt.Fprintf(w, "nodes:    %d\n", res.NodesExpanded)
	fmt.Fprintf(w, "status:   %s\n", res.Status)
}

// verify cross-checks res. Small instances are enumerated; larger ones only
// get the relaxation gap, which bounds how far res can be from the optimum.
func verify(w io.Writer, inst instance.Instance, res knapsack.Result) error {
	bound, err := knapsack.RelaxationBound(inst.Items, inst.Capacity)
	if err != nil {
		return err
	}
	gap := 0.0
	if bound > 0 {
		gap = 100 * (bound - res.Value) / bound
	}
	fmt.Fprintf(w, "bound:    %g (gap %.2f%%)\n", bound, gap)

	if len(inst.Items) > knapsack.MaxExhaustiveItems {
		return nil
	}
	want, err := knapsack.Exhaustive(inst.Items, inst.Capacity)
	if err != nil {
		return err
	}
	if res.Optimal() && !scalar.EqualWithinAbsOrRel(want.Value, res.Value, verifyTolerance, verifyTolerance) {
		return fmt.Errorf("%w: exhaustive %g, branch-and-bound %g", ErrVerifyFailed, want.Value, res.Value)
	}
	fmt.Fprintf(w, "verified: exhaustive optimum %g\n", want.Value)

	return nil
}
