package renderer

import (
	"bytes"
	"fmt"

	"github.com/dpereira/investidor"
	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders a position history report to a markdown string.
func HistoryMarkdown(r *investidor.HistoryReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("History for %s", r.Ticker))

	table := md.TableSet{
		Alignment: []md.TableAlignment{
			md.AlignLeft,
			md.AlignRight,
			md.AlignRight,
			md.AlignRight,
		},
		Header: []string{"Date", "Bought", "Position", "Value"},
		Rows:   [][]string{},
	}
	for _, entry := range r.Entries {
		table.Rows = append(table.Rows, []string{
			entry.Date.String(),
			entry.Bought.String(),
			entry.Position.String(),
			entry.Value.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
