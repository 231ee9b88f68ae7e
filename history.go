package investidor

import "fmt"

// HistoryReport represents the evolution of a position over time.
type HistoryReport struct {
	Ticker   string
	Currency string
	Entries  []HistoryEntry
}

// HistoryEntry is the position resolved on one significant date.
type HistoryEntry struct {
	Date     Date
	Bought   Quantity
	Position Quantity
	Value    Money // position at the current quote
}

// NewHistoryReport computes the position history of a ticker from the
// contribution details, one entry per contribution day that bought it, with
// the cumulative quantity held as of that day.
//
// Lots merge into a single position when recorded, so the position record
// itself keeps no purchase history; the contribution log does. A position
// contributed before the log existed falls back to a single entry on its
// purchase date. The value column uses the position's current quote, since
// the ledger keeps no price history.
func (l *Ledger) NewHistoryReport(ticker string) (*HistoryReport, error) {
	position, ok := l.AssetByTicker(ticker)
	if !ok {
		return nil, fmt.Errorf("no asset holds ticker %q", ticker)
	}

	report := &HistoryReport{
		Ticker:   ticker,
		Currency: l.currency,
		Entries:  []HistoryEntry{},
	}

	var cumulative Quantity
	for _, c := range l.contributions {
		var bought Quantity
		for _, d := range c.Details {
			if d.Ticker == ticker {
				bought = bought.Add(d.Quantity)
			}
		}
		if bought.IsZero() {
			continue
		}
		cumulative = cumulative.Add(bought)
		// same-day contributions collapse into one entry
		if n := len(report.Entries); n > 0 && report.Entries[n-1].Date == c.Date {
			report.Entries[n-1].Bought = report.Entries[n-1].Bought.Add(bought)
			report.Entries[n-1].Position = cumulative
			report.Entries[n-1].Value = position.CurrentPrice.Mul(cumulative)
			continue
		}
		report.Entries = append(report.Entries, HistoryEntry{
			Date:     c.Date,
			Bought:   bought,
			Position: cumulative,
			Value:    position.CurrentPrice.Mul(cumulative),
		})
	}

	if len(report.Entries) == 0 {
		report.Entries = append(report.Entries, HistoryEntry{
			Date:     position.PurchaseDate,
			Bought:   position.Quantity,
			Position: position.Quantity,
			Value:    position.MarketValue(),
		})
	}
	return report, nil
}
