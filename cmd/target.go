package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dpereira/investidor"
	"github.com/google/subcommands"
)

// targetCmd holds the flags for the 'target' subcommand.
type targetCmd struct {
	ticker string
	target float64
}

func (*targetCmd) Name() string     { return "target" }
func (*targetCmd) Synopsis() string { return "update the intra-class target weight of an asset" }
func (*targetCmd) Usage() string {
	return `ivd target -t <ticker> -target <percent>

  Updates an asset's target weight among the assets of its class. The weight
  is relative to its siblings, not to the whole portfolio: two assets at 60
  and 40 split their class the same way as two at 6 and 4.
`
}

func (c *targetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the asset.")
	f.Float64Var(&c.target, "target", 0, "New target weight, in percent.")
}

func (c *targetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	asset, ok := ledger.AssetByTicker(c.ticker)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: no asset holds ticker %q\n", c.ticker)
		return subcommands.ExitUsageError
	}
	if err := ledger.SetAssetTarget(asset.ID, investidor.Percent(c.target)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Asset %s target is now %s\n", c.ticker, investidor.Percent(c.target))
	return subcommands.ExitSuccess
}
