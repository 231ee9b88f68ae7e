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

// earningsCmd holds the flags for the 'earnings' subcommand.
type earningsCmd struct {
	ticker string
}

func (*earningsCmd) Name() string     { return "earnings" }
func (*earningsCmd) Synopsis() string { return "list the income history" }
func (*earningsCmd) Usage() string {
	return `ivd earnings [-t <ticker>]

  Lists all recorded income events in chronological order, with totals.
`
}

func (c *earningsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Only show events for this ticker.")
}

func (c *earningsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var earnings []investidor.Earning
	for e := range ledger.Earnings() {
		earnings = append(earnings, e)
	}

	printMarkdown(renderer.EarningsMarkdown(earnings, c.ticker))
	return subcommands.ExitSuccess
}
