package renderer

import (
	"bytes"
	"fmt"

	"github.com/dpereira/investidor"
	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the portfolio summary to a markdown string.
func SummaryMarkdown(s *investidor.Summary, on investidor.Date) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Portfolio Summary on %s", on))
	doc.PlainText(fmt.Sprintf("Current Wealth: %s", s.CurrentWealth))

	doc.H2("Capital")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Cost Basis", s.TotalCostBasis.String()},
			{"Out of Pocket", s.TotalOutOfPocket.String()},
			{"Capital Gain", s.CapitalGainPercent.SignedString()},
		},
	})

	doc.H2("Income")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total Earnings", s.TotalEarnings.String()},
			{"Reinvested", s.TotalReinvested.String()},
			{"Withdrawn", s.WithdrawnEarnings.String()},
			{"Yield on Cost", s.EarningsYieldPercent.SignedString()},
		},
	})

	doc.H2("Real Profitability")
	doc.Table(md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight},
		Header:    []string{"Metric", "Value"},
		Rows: [][]string{
			{"Real Profit", s.RealProfitValue.SignedString()},
			{"Real Return", s.RealProfitPercent.SignedString()},
		},
	})

	return doc.String()
}
