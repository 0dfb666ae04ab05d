// SPDX-License-Identifier: MIT

package main

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvknap/internal/config"
	"github.com/katalvlaran/lvknap/internal/logging"
)

// app is the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	log    *logging.Logger
	stderr io.Writer

	configPath string
}

// binding ties a config key to a flag of the same command.
type binding struct {
	key  string
	flag string
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	a := &app{v: config.New(), stderr: stderr}

	root := &cobra.Command{
		Use:           "lvknap",
		Short:         "Generate and solve 0/1 knapsack instances",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.String("log-level", "info", "debug, info, warn or error")
	pf.String("log-format", "text", "text or json")
	pf.String("log-file", "", "rotate logs into this file instead of stderr")

	global := []binding{
		{"log.level", "log-level"},
		{"log.format", "log-format"},
		{"log.file", "log-file"},
	}
	root.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		for _, b := range global {
			if err := config.BindFlag(a.v, b.key, root.PersistentFlags().Lookup(b.flag)); err != nil {
				return err
			}
		}
		// Subcommand flags follow "<command>.<flag_name>" keys.
		if err := config.BindFlagSet(a.v, cmd.Name(), cmd.LocalNonPersistentFlags()); err != nil {
			return err
		}

		cfg, err := config.Load(a.v, a.configPath)
		if err != nil {
			return err
		}
		a.cfg = cfg
		a.log, err = logging.New(cfg.Log, a.stderr)

		return err
	}
	root.PersistentPostRunE = func(*cobra.Command, []string) error {
		if a.log == nil {
			return nil
		}
		return a.log.Close()
	}

	root.AddCommand(newGenerateCmd(a), newSolveCmd(a))

	return root
}
