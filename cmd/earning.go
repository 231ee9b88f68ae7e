package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dpereira/investidor"
	"github.com/google/subcommands"
)

// earningCmd holds the flags for the 'earning' subcommand.
type earningCmd struct {
	ticker     string
	date       string
	typ        string
	received   float64
	unit       float64
	reinvested float64
	auto       bool
}

func (*earningCmd) Name() string     { return "earning" }
func (*earningCmd) Synopsis() string { return "record an income event" }
func (*earningCmd) Usage() string {
	return `ivd earning -t <ticker> [-d <date>] [-type <category>] (-received <amount> | -unit <per-unit amount>) [-reinvested <amount>] [-auto]

  Records an income event (dividend, interest, rental yield). With -unit the
  received amount is the per-unit value times the quantity held on the event
  date. The part not declared as -reinvested counts as withdrawn.

  Manual entries are recorded unconditionally. With -auto the entry goes
  through the duplicate gate: an event with the same ticker, date and
  near-identical per-unit value as an existing one is silently skipped, and
  so is an event dated before any unit was held.

Usage Examples:
$ ivd earning -t PETR4 -d 2024-05-10 -type Dividendo -unit 0.50
$ ivd earning -t PETR4 -received 50 -reinvested 50
`
}

func (c *earningCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.ticker, "t", "", "Ticker of the asset that produced the income.")
	f.StringVar(&c.date, "d", investidor.Today().String(), "Date of the event.")
	f.StringVar(&c.typ, "type", "", "Free-form category, e.g. Dividendo, JCP, Rendimento.")
	f.Float64Var(&c.received, "received", 0, "Total amount received.")
	f.Float64Var(&c.unit, "unit", 0, "Per-unit amount; the total is derived from the position on the date.")
	f.Float64Var(&c.reinvested, "reinvested", 0, "Part of the amount put back into the portfolio.")
	f.BoolVar(&c.auto, "auto", false, "Apply the duplicate gate used for automated feeds.")
}

func (c *earningCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	qty := ledger.QuantityAtDate(c.ticker, on)

	received := investidor.M(c.received, cur)
	unit := investidor.M(c.unit, cur)
	if c.received == 0 && c.unit != 0 {
		received = unit.Mul(qty)
	}
	reinvested := investidor.M(c.reinvested, cur)
	withdrawn := received.Sub(reinvested)

	e, err := investidor.NewEarning(newID("earn"), c.ticker, on, c.typ,
		received, reinvested, withdrawn, unit, qty, c.auto)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	if c.auto {
		added, err := ledger.IngestEarning(e)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitFailure
		}
		if !added {
			fmt.Println("Skipped: duplicate event, or no position on that date")
			return subcommands.ExitSuccess
		}
	} else if err := ledger.AddEarning(e); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Recorded %s for %s on %s (reinvested %s, withdrawn %s)\n",
		received, c.ticker, on, reinvested, withdrawn)
	return subcommands.ExitSuccess
}
