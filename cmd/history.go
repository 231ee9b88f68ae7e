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

// historyCmd holds the flags for the 'history' subcommand.
type historyCmd struct {
	ticker string
	date   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the evolution of a position over time" }
func (*historyCmd) Usage() string {
	return `ivd history -t <ticker> [-d <date>]

  Without -d, shows the full position history of the ticker from the
  contribution log. With -d, resolves and prints the quantity held on that
  date.

Usage Examples:
$ ivd history -t PETR4
$ ivd history -t PETR4 -d 2024-05-10
`
}

func (c *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the asset.")
	f.StringVar(&c.date, "d", "", "Resolve the position on this date instead of listing the history.")
}

func (c *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.ticker == "" {
		fmt.Fprintln(os.Stderr, "Error: -t is required")
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if c.date != "" {
		on, err := investidor.ParseDate(c.date)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
			return subcommands.ExitUsageError
		}
		fmt.Printf("%s held on %s: %s\n", c.ticker, on, ledger.QuantityAtDate(c.ticker, on))
		return subcommands.ExitSuccess
	}

	report, err := ledger.NewHistoryReport(c.ticker)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.HistoryMarkdown(report))
	return subcommands.ExitSuccess
}
