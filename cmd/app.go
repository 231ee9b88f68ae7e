// Package cmd implements the CLI application to manage an investment ledger.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/dpereira/investidor"
	"github.com/google/subcommands"
	"github.com/google/uuid"
)

const (
	EnvLedgerFile      = "IVD_LEDGER_FILE"
	EnvDefaultCurrency = "IVD_DEFAULT_CURRENCY"
)

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger-file", defaultLedgerFile(), "Path to the ledger file (JSONL format)")

func defaultLedgerFile() string {
	if f := os.Getenv(EnvLedgerFile); f != "" {
		return f
	}
	return "investidor.jsonl"
}

// Commands lists every subcommand with its register group.
var Commands = []struct {
	Cmd   subcommands.Command
	Group string
}{
	{&addClassCmd{}, "classes"},
	{&classTargetCmd{}, "classes"},
	{&rmClassCmd{}, "classes"},

	{&buyCmd{}, "assets"},
	{&targetCmd{}, "assets"},
	{&priceCmd{}, "assets"},

	{&earningCmd{}, "income"},
	{&earningsCmd{}, "income"},

	{&planCmd{}, "contributions"},
	{&contributeCmd{}, "contributions"},
	{&logCmd{}, "contributions"},

	{&summaryCmd{}, "reports"},
	{&holdingCmd{}, "reports"},
	{&historyCmd{}, "reports"},

	{&exportCmd{}, "ledger"},
	{&importCmd{}, "ledger"},
	{&fmtCmd{}, "ledger"},

	{&topicCmd{}, "help"},
}

// Register registers every subcommand on the commander.
func Register(c *subcommands.Commander) {
	for _, sc := range Commands {
		c.Register(sc.Cmd, sc.Group)
	}
}

// DecodeLedgerFile loads the ledger from the app ledger file. A missing file
// is not an error: it yields an empty ledger, so the first command works on a
// fresh directory.
func DecodeLedgerFile() (*investidor.Ledger, error) {
	f, err := os.Open(*ledgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting with an empty ledger")
		ledger := investidor.NewLedger()
		if c := os.Getenv(EnvDefaultCurrency); c != "" {
			ledger.SetCurrency(c)
		}
		return ledger, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger file %q: %w", *ledgerFile, err)
	}
	defer f.Close()

	ledger, err := investidor.DecodeLedger(f)
	if err != nil {
		return nil, fmt.Errorf("cannot decode ledger file %q: %w", *ledgerFile, err)
	}
	return ledger, nil
}

// SaveLedger writes the ledger back to the app ledger file, atomically: the
// canonical form is written to a temporary file first, then moved in place.
func SaveLedger(ledger *investidor.Ledger) error {
	tmp := *ledgerFile + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", tmp, err)
	}
	if err := investidor.EncodeLedger(f, ledger); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("cannot encode ledger: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot close %q: %w", tmp, err)
	}
	if err := os.Rename(tmp, *ledgerFile); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("cannot replace ledger file %q: %w", *ledgerFile, err)
	}
	return nil
}

// newID returns a fresh record id with a readable prefix.
func newID(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// printMarkdown renders markdown to the terminal with glamour, falling back
// to the raw text when rendering is not possible (e.g. output is piped).
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
