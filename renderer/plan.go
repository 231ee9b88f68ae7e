package renderer

import (
	"bytes"
	"fmt"

	"github.com/dpereira/investidor"
	md "github.com/nao1215/markdown"
)

// PlanMarkdown renders a contribution allocation plan to a markdown string.
// When wholeUnits is set the suggested quantities are floored to whole units,
// matching what the broker will actually let you buy.
func PlanMarkdown(amount investidor.Money, r investidor.AllocationResult, wholeUnits bool) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Contribution Plan for %s", amount))

	if r.IsEmpty() {
		doc.PlainText("Nothing to allocate: declare asset classes and assets with target weights first.")
		return doc.String()
	}

	doc.H2("Per Class")
	classTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight},
		Header:    []string{"Class", "Target", "Amount"},
		Rows:      [][]string{},
	}
	for _, ca := range r.Classes {
		classTable.Rows = append(classTable.Rows, []string{
			ca.Class.Name,
			ca.Class.TargetPercent.String(),
			ca.Amount.String(),
		})
	}
	doc.Table(classTable)

	doc.H2("Per Asset")
	assetTable := md.TableSet{
		Alignment: []md.TableAlignment{md.AlignLeft, md.AlignRight, md.AlignRight, md.AlignRight},
		Header:    []string{"Ticker", "Price", "Amount", "Quantity"},
		Rows:      [][]string{},
	}
	for _, aa := range r.Assets {
		qty := aa.Quantity
		if wholeUnits {
			qty = qty.Floor()
		}
		assetTable.Rows = append(assetTable.Rows, []string{
			aa.Asset.Ticker,
			aa.Asset.CurrentPrice.String(),
			aa.Amount.String(),
			qty.String(),
		})
	}
	doc.Table(assetTable)

	return doc.String()
}
