package investidor

// Merge folds an incoming lot into an existing position for the same ticker.
//
// The merged quantity is the sum of both quantities, and the purchase price
// becomes the weighted-average unit cost over both lots. When the merged
// quantity is zero the prior price is retained unchanged, so a pair of empty
// lots never divides by zero. The incoming quote replaces the current price
// only when one was supplied; identity fields (ticker, class, target weight)
// are always inherited from the existing record.
func Merge(existing, incoming Asset) Asset {
	merged := existing
	merged.Quantity = existing.Quantity.Add(incoming.Quantity)
	if merged.Quantity.IsPositive() {
		totalCost := existing.CostBasis().Add(incoming.CostBasis())
		merged.PurchasePrice = totalCost.Div(merged.Quantity)
	}
	if !incoming.CurrentPrice.IsZero() {
		merged.CurrentPrice = incoming.CurrentPrice
		merged.ManualPrice = incoming.ManualPrice
	}
	return merged
}

// LotContribution builds the Contribution record attributing the cash source
// of a newly recorded lot. The out-of-pocket part is the lot cost minus the
// reinvested income, clamped to zero; the reinvested part is capped at the
// lot cost so both always sum to the total.
func LotContribution(id string, lot Asset, reinvested Money) Contribution {
	total := lot.CostBasis()
	if reinvested.GreaterThan(total) {
		reinvested = total
	}
	outOfPocket := total.Sub(reinvested).Max(M(0, total.Currency()))
	return Contribution{
		ID:          id,
		Date:        lot.PurchaseDate,
		Total:       total,
		OutOfPocket: outOfPocket,
		Reinvested:  reinvested,
		Details: []ContributionDetail{{
			AssetID:  lot.ID,
			Ticker:   lot.Ticker,
			Quantity: lot.Quantity,
			Price:    lot.PurchasePrice,
		}},
	}
}
