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

// contributeCmd holds the flags for the 'contribute' subcommand.
type contributeCmd struct {
	amount     float64
	reinvested float64
	date       string
	whole      bool
}

func (*contributeCmd) Name() string     { return "contribute" }
func (*contributeCmd) Synopsis() string { return "apply a contribution plan to the portfolio" }
func (*contributeCmd) Usage() string {
	return `ivd contribute -amount <amount> [-reinvested <amount>] [-d <date>] [-whole]

  Computes the allocation plan for the amount and applies it: every suggested
  purchase is merged into its position at the current quote, and a single
  contribution records the purchases. The -reinvested part of the amount
  counts as the portfolio's own income going back in; the rest is new cash.

Usage Examples:
$ ivd contribute -amount 1000 -whole
$ ivd contribute -amount 350 -reinvested 50
`
}

func (c *contributeCmd) SetFlags(f *flag.FlagSet) {
	f.Float64Var(&c.amount, "amount", 0, "Amount to contribute.")
	f.Float64Var(&c.reinvested, "reinvested", 0, "Part of the amount that is reinvested income.")
	f.StringVar(&c.date, "d", investidor.Today().String(), "Date of the contribution.")
	f.BoolVar(&c.whole, "whole", false, "Floor suggested quantities to whole units.")
}

func (c *contributeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	on, err := investidor.ParseDate(c.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	cur := ledger.Currency()
	amount := investidor.M(c.amount, cur)
	reinvested := investidor.M(c.reinvested, cur)
	if !amount.IsPositive() {
		fmt.Fprintln(os.Stderr, "Error: -amount must be positive")
		return subcommands.ExitUsageError
	}
	if reinvested.IsNegative() || reinvested.GreaterThan(amount) {
		fmt.Fprintln(os.Stderr, "Error: -reinvested must be between 0 and the amount")
		return subcommands.ExitUsageError
	}

	result := ledger.Allocate(amount)
	contribution, err := ledger.ApplyAllocation(result, on, reinvested, newID("cont"), c.whole)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.LogMarkdown([]investidor.Contribution{contribution}))
	fmt.Printf("Applied %s (out of pocket %s, reinvested %s)\n",
		contribution.Total, contribution.OutOfPocket, contribution.Reinvested)
	return subcommands.ExitSuccess
}
