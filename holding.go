package investidor

// HoldingReport is a detailed view of the portfolio grouped by asset class.
type HoldingReport struct {
	Currency   string
	TotalValue Money
	Classes    []ClassHolding
	Orphans    []AssetHolding // assets whose class was deleted
}

// ClassHolding is the state of one class: its value, its share of the
// portfolio against its target, and its member positions.
type ClassHolding struct {
	Class         AssetClass
	Value         Money
	WeightPercent Percent // share of the total portfolio value
	Assets        []AssetHolding
}

// AssetHolding is the state of one position.
type AssetHolding struct {
	Asset       Asset
	MarketValue Money
	CostBasis   Money
	GainPercent Percent // market value over cost basis
}

// NewHoldingReport projects the ledger snapshot into a holdings report.
// Orphaned assets are excluded from class aggregation but still count toward
// the total, so the report always accounts for the whole portfolio.
func (l *Ledger) NewHoldingReport() *HoldingReport {
	report := &HoldingReport{
		Currency:   l.currency,
		TotalValue: l.TotalValue(),
	}

	holding := func(a Asset) AssetHolding {
		return AssetHolding{
			Asset:       a,
			MarketValue: a.MarketValue(),
			CostBasis:   a.CostBasis(),
			GainPercent: ratio(a.MarketValue().Sub(a.CostBasis()), a.CostBasis()),
		}
	}

	for _, c := range l.classes {
		ch := ClassHolding{
			Class:         c,
			Value:         l.ClassValue(c.ID),
			WeightPercent: ratio(l.ClassValue(c.ID), report.TotalValue),
		}
		for _, a := range l.assets {
			if a.ClassID == c.ID {
				ch.Assets = append(ch.Assets, holding(a))
			}
		}
		report.Classes = append(report.Classes, ch)
	}

	for _, a := range l.assets {
		if _, ok := l.Class(a.ClassID); !ok {
			report.Orphans = append(report.Orphans, holding(a))
		}
	}
	return report
}
