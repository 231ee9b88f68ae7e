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

// logCmd holds the flags for the 'log' subcommand.
type logCmd struct{}

func (*logCmd) Name() string     { return "log" }
func (*logCmd) Synopsis() string { return "list the contribution history" }
func (*logCmd) Usage() string {
	return `ivd log

  Lists every contribution in chronological order, with its out-of-pocket
  and reinvested split and the purchases it funded.
`
}

func (c *logCmd) SetFlags(f *flag.FlagSet) {}

func (c *logCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var contributions []investidor.Contribution
	for c := range ledger.Contributions() {
		contributions = append(contributions, c)
	}

	printMarkdown(renderer.LogMarkdown(contributions))
	return subcommands.ExitSuccess
}
