package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dpereira/investidor"
	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	ticker string
	price  float64
	auto   bool
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "update the current quote of an asset" }
func (*priceCmd) Usage() string {
	return `ivd price -t <ticker> -p <price> [-auto]

  Updates the current quote of every position holding the ticker. The quote
  is marked as a manual override unless -auto is set; automated feeds should
  set -auto so a later sync knows it may overwrite the value.

Usage Examples:
$ ivd price -t PETR4 -p 34.12
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the asset.")
	f.Float64Var(&c.price, "p", 0, "New unit quote.")
	f.BoolVar(&c.auto, "auto", false, "Mark the quote as automatically sourced.")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	price := investidor.M(c.price, ledger.Currency())
	if err := ledger.SetPrice(c.ticker, price, !c.auto); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Quote for %s is now %s\n", c.ticker, price)
	return subcommands.ExitSuccess
}
