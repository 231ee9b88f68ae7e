package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/dpereira/investidor"
	"github.com/google/subcommands"
)

// addClassCmd holds the flags for the 'add-class' subcommand.
type addClassCmd struct {
	name   string
	target float64
}

func (*addClassCmd) Name() string     { return "add-class" }
func (*addClassCmd) Synopsis() string { return "declare a new asset class" }
func (*addClassCmd) Usage() string {
	return `ivd add-class -name <name> [-target <percent>]

  Declares a new asset class with a target share of the portfolio.
  Targets need not sum to 100 across classes; they are normalized
  when computing a contribution plan.

Usage Examples:
$ ivd add-class -name "Renda Fixa" -target 30
`
}

func (c *addClassCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the asset class.")
	f.Float64Var(&c.target, "target", 0, "Target share of the portfolio, in percent.")
}

func (c *addClassCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if _, ok := ledger.ClassByName(c.name); ok {
		fmt.Fprintf(os.Stderr, "Error: class %q already exists\n", c.name)
		return subcommands.ExitUsageError
	}

	class, err := investidor.NewAssetClass(newID("class"), c.name, investidor.Percent(c.target))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := ledger.AddClass(class); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Added class %q with target %s\n", class.Name, class.TargetPercent)
	return subcommands.ExitSuccess
}

// classTargetCmd holds the flags for the 'class-target' subcommand.
type classTargetCmd struct {
	name   string
	target float64
}

func (*classTargetCmd) Name() string     { return "class-target" }
func (*classTargetCmd) Synopsis() string { return "update the target share of an asset class" }
func (*classTargetCmd) Usage() string {
	return `ivd class-target -name <name> -target <percent>

  Updates the target share of an existing asset class.
`
}

func (c *classTargetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the asset class.")
	f.Float64Var(&c.target, "target", 0, "New target share, in percent.")
}

func (c *classTargetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	class, ok := ledger.ClassByName(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown class %q\n", c.name)
		return subcommands.ExitUsageError
	}
	if err := ledger.SetClassTarget(class.ID, investidor.Percent(c.target)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Class %q target is now %s\n", c.name, investidor.Percent(c.target))
	return subcommands.ExitSuccess
}

// rmClassCmd holds the flags for the 'rm-class' subcommand.
type rmClassCmd struct {
	name string
}

func (*rmClassCmd) Name() string     { return "rm-class" }
func (*rmClassCmd) Synopsis() string { return "remove an asset class" }
func (*rmClassCmd) Usage() string {
	return `ivd rm-class -name <name>

  Removes an asset class. Assets referencing it are kept: they still count
  toward the total wealth but no longer take part in class-based reports
  and contribution plans.
`
}

func (c *rmClassCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Name of the asset class.")
}

func (c *rmClassCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedgerFile()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	class, ok := ledger.ClassByName(c.name)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown class %q\n", c.name)
		return subcommands.ExitUsageError
	}
	if err := ledger.DeleteClass(class.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := SaveLedger(ledger); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Removed class %q\n", c.name)
	return subcommands.ExitSuccess
}
