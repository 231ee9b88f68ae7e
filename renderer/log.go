package renderer

import (
	"fmt"
	"strings"

	"github.com/dpereira/investidor"
)

// LogMarkdown generates a markdown report of the contribution history, most
// detailed entries first within each day.
func LogMarkdown(contributions []investidor.Contribution) string {
	r := &logRenderer{Builder: &strings.Builder{}}

	r.Printf("# Contribution Log\n\n")
	if len(contributions) == 0 {
		r.Printf("No contributions recorded.\n")
		return r.String()
	}

	r.Printf("| Date | Id | Total | Out of Pocket | Reinvested |\n")
	r.Printf("|:---|:---|---:|---:|---:|\n")
	var total, outOfPocket, reinvested investidor.Money
	for _, c := range contributions {
		r.Printf("| %s | %s | %s | %s | %s |\n",
			c.Date, c.ID, c.Total, c.OutOfPocket, c.Reinvested)
		total = total.Add(c.Total)
		outOfPocket = outOfPocket.Add(c.OutOfPocket)
		reinvested = reinvested.Add(c.Reinvested)
	}
	r.Printf("| **Total** | | %s | %s | %s |\n\n", total, outOfPocket, reinvested)

	for _, c := range contributions {
		if len(c.Details) == 0 {
			continue
		}
		r.Printf("## %s %s\n\n", c.Date, c.ID)
		r.Printf("| Ticker | Quantity | Price |\n")
		r.Printf("|:---|---:|---:|\n")
		for _, d := range c.Details {
			r.Printf("| %s | %s | %s |\n", d.Ticker, d.Quantity, d.Price)
		}
		r.Printf("\n")
	}
	return r.String()
}

// logRenderer formats the output of the log generator into a markdown string.
type logRenderer struct {
	*strings.Builder
}

// Printf formats according to a format specifier and writes to the renderer's buffer.
func (r *logRenderer) Printf(format string, args ...any) {
	fmt.Fprintf(r, format, args...)
}
