package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dpereira/investidor"
	"github.com/dpereira/investidor/renderer"
	"github.com/google/subcommands"
)

// planCmd holds the flags for the 'plan' subcommand.
type planCmd struct {
	amount float64
	whole  bool
}

func (*planCmd) Name() string     { return "plan" }
func (*planCmd) Synopsis() string { return "suggest how to allocate a contribution" }
func (*planCmd) Usage() string {
	return `ivd plan -amount <amount> [-whole]

  Computes how a contribution should be split to move the portfolio toward
  its target weights: classes below target get money in proportion to their
  shortfall, and within a class, assets split by their relative weights.
  Nothing is ever suggested to be sold.

Usage Examples:
$ ivd plan -amount 1000
$ ivd plan -amount 1000 -whole
`
}

func (c *planCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to contribute.")
	f.BoolVar(&c.whole, "whole", false, "Floor suggested quantities to whole units.")
}

func (c *planCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	amount := investidor.M(c.amount, ledger.Currency())
	if !amount.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: -amount must be positive")
		return subcommands.ExitUsageError
	}

	printMarkdown(renderer.PlanMarkdown(amount, ledger.Allocate(amount), c.whole))
	return subcommands.ExitSuccess
}
