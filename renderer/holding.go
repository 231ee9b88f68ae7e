package renderer

import (
	"bytes"
	"fmt"

	"github.com/dpereira/investidor"
	md "github.com/nao1215/markdown"
)

// HoldingMarkdown renders the holdings report, one section per asset class,
// to a markdown string.
func HoldingMarkdown(r *investidor.HoldingReport) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Holdings")
	doc.PlainText(fmt.Sprintf("Total Value: %s", r.TotalValue))

	assetTable := func(holdings []investidor.AssetHolding) md.TableSet {
		table := md.TableSet{
			Alignment: []md.TableAlignment{
				md.AlignLeft,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
				md.AlignRight,
			},
			Header: []string{"Ticker", "Quantity", "Price", "Value", "Cost", "Gain"},
			Rows:   [][]string{},
		}
		for _, h := range holdings {
			price := h.Asset.CurrentPrice.String()
			if h.Asset.ManualPrice {
				price += " (manual)"
			}
			table.Rows = append(table.Rows, []string{
				h.Asset.Ticker,
				h.Asset.Quantity.String(),
				price,
				h.MarketValue.String(),
				h.CostBasis.String(),
				h.GainPercent.SignedString(),
			})
		}
		return table
	}

	for _, ch := range r.Classes {
		doc.H2(fmt.Sprintf("%s (%s of %s)", ch.Class.Name, ch.WeightPercent, ch.Class.TargetPercent))
		if len(ch.Assets) == 0 {
			doc.PlainText("No assets in this class.")
			continue
		}
		doc.Table(assetTable(ch.Assets))
	}

	if len(r.Orphans) > 0 {
		doc.H2("Unclassified")
		doc.PlainText("These assets reference a deleted class. They count toward the total.")
		doc.Table(assetTable(r.Orphans))
	}

	return doc.String()
}
