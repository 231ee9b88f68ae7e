package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/dpereira/investidor"
)

// EarningsMarkdown generates a markdown report of the income history,
// optionally filtered to a single ticker.
func EarningsMarkdown(earnings []investidor.Earning, ticker string) string {
	var b strings.Builder

	if ticker != "" {
		fmt.Fprintf(&b, "# Earnings for %s\n\n", ticker)
	} else {
		fmt.Fprint(&b, "# Earnings\n\n")
	}

	empty := true
	ConditionalBlock(&b, func(w io.Writer) bool {
		fmt.Fprintln(w, "| Date | Ticker | Type | Received | Reinvested | Withdrawn | Source |")
		fmt.Fprintln(w, "|:---|:---|:---|---:|---:|---:|:---|")

		var received, reinvested, withdrawn investidor.Money
		for _, e := range earnings {
			if ticker != "" && e.AssetTicker != ticker {
				continue
			}
			source := "manual"
			if e.AutoGenerated {
				source = "auto"
			}
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s | %s | %s |\n",
				e.Date, e.AssetTicker, e.Type, e.Received, e.Reinvested, e.Withdrawn, source)
			received = received.Add(e.Received)
			reinvested = reinvested.Add(e.Reinvested)
			withdrawn = withdrawn.Add(e.Withdrawn)
			empty = false
		}
		fmt.Fprintf(w, "| **Total** | | | %s | %s | %s | |\n", received, reinvested, withdrawn)
		return !empty
	})
	if empty {
		fmt.Fprint(&b, "No earnings recorded.\n")
	}
	return b.String()
}
