// SPDX-License-Identifier: MIT

package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvknap/instance"
)

func newGenerateCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a reproducible benchmark instance as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g := a.cfg.Generate
			class, err := instance.ParseClass(g.Class)
			if err != nil {
				return err
			}
			inst, err := instance.Generate(class, g.N,
				instance.WithSeed(g.Seed),
				instance.WithRange(g.Range),
				instance.WithCapacityRatio(g.Ratio),
				instance.WithName(g.Name))
			if err != nil {
				return err
			}

			if g.Out == "" || g.Out == "-" {
				err = instance.Encode(cmd.OutOrStdout(), inst)
			} else {
				err = instance.Save(g.Out, inst)
			}
			if err != nil {
				return err
			}
			a.log.Info("instance generated",
				"name", inst.Name, "class", class.String(), "items", len(inst.Items),
				"capacity", inst.Capacity, "seed", g.Seed, "out", g.Out)

			return nil
		},
	}

	f := cmd.Flags()
	f.String("class", "uncorrelated", "uncorrelated, weakly-correlated, strongly-correlated, inverse-strongly-correlated or subset-sum")
	f.Int("n", 20, "number of items")
	f.Int64("seed", 0, "random seed (0 selects the fixed default)")
	f.Float64("range", 1000, "coefficient range R")
	f.Float64("ratio", 0.5, "capacity as a fraction of the total weight, in (0, 1]")
	f.String("name", "", "instance name (default <class>-<n>)")
	f.String("out", "", "output file (default stdout)")

	return cmd
}
