package investidor

// QuantityAtDate computes the cumulative number of units of a ticker held as
// of a given date, from the lot purchase dates. The comparison is a whole
// calendar-day comparison: lots purchased on asOf itself are included, and so
// are all lots sharing that date.
//
// It returns zero when the ticker or the date is empty, or when no lot
// matches. For a fixed set of lots the result is monotonically non-decreasing
// as asOf advances, since lots are never removed from a position.
func QuantityAtDate(ticker string, asOf Date, assets []Asset) Quantity {
	var total Quantity
	if ticker == "" || asOf.IsZero() {
		return total
	}
	for _, a := range assets {
		if a.Ticker != ticker {
			continue
		}
		if a.PurchaseDate.After(asOf) {
			continue
		}
		total = total.Add(a.Quantity)
	}
	return total
}
