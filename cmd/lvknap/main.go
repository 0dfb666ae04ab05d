// SPDX-License-Identifier: MIT

// Command lvknap generates and solves 0/1 knapsack instances.
//
//	lvknap generate --class strongly-correlated --n 40 --seed 7 --out hard.yaml
//	lvknap solve --file hard.yaml --workers 4 --time-limit 10s --verify
//
// Settings come from flags, LVKNAP_* environment variables and an optional
// YAML file given with --config, in that order of precedence.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/katalvlaran/lvknap/knapsack"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1
	exitLimit   = 3 // a budget stopped the search; the printed result is not proven optimal
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvknap:", err)
	}

	return exitCode(err)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, knapsack.ErrSearchLimitReached):
		return exitLimit
	default:
		return exitFailure
	}
}
