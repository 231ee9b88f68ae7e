package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dpereira/investidor"
	"github.com/google/subcommands"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	ticker     string
	class      string
	quantity   float64
	price      float64
	quote      float64
	date       string
	target     float64
	reinvested float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of a lot" }
func (*buyCmd) Usage() string {
	return `ivd buy -t <ticker> -c <class> -q <quantity> -p <price> [-d <date>] [-quote <price>] [-target <percent>] [-reinvested <amount>]

  Records a purchase. When a position for the ticker already exists the lot
  merges into it and the purchase price becomes the weighted-average cost.
  A contribution is recorded alongside; -reinvested declares how much of the
  lot cost was funded by the portfolio's own income rather than new cash.

Usage Examples:
$ ivd buy -t PETR4 -c "Renda Variável" -q 100 -p 30.50
$ ivd buy -t PETR4 -c "Renda Variável" -q 50 -p 36 -reinvested 500
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the asset.")
	f.StringVar(&c.class, "c", "", "Name of the asset class.")
	f.Float64Var(&c.quantity, "q", 0, "Quantity bought.")
	f.Float64Var(&c.price, "p", 0, "Unit purchase price.")
	f.Float64Var(&c.quote, "quote", 0, "Current unit quote, defaults to the purchase price.")
	f.StringVar(&c.date, "d", investidor.Today().String(), "Purchase date. See 'ivd topic dates' for supported formats.")
	f.Float64Var(&c.target, "target", 0, "Target weight among the assets of its class, in percent.")
	f.Float64Var(&c.reinvested, "reinvested", 0, "Part of the cost funded by reinvested income.")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	classID := ""
	if c.class != "" {
		class, ok := ledger.ClassByName(c.class)
		if !ok {
			fmt.Fprintf(os.Stderr, "Error: unknown class %q, declare it with 'ivd add-class' first\n", c.class)
			return subcommands.ExitUsageError
		}
		classID = class.ID
	}

	cur := ledger.Currency()
	lot, err := investidor.NewAsset(newID("asset"), c.ticker, classID,
		investidor.Q(c.quantity), on, investidor.M(c.price, cur), investidor.M(c.quote, cur))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	lot.TargetPercent = investidor.Percent(c.target)

	recorded, contribution, err := ledger.RecordLot(lot, investidor.M(c.reinvested, cur), newID("cont"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Position %s: %s units at %s average cost (out of pocket %s, reinvested %s)\n",
		recorded.Ticker, recorded.Quantity, recorded.PurchasePrice,
		contribution.OutOfPocket, contribution.Reinvested)
	return subcommands.ExitSuccess
}
