package investidor

// Summary provides an at-a-glance overview of the portfolio's wealth and
// profitability, derived from the current holdings, the income history, and
// the contribution history.
//
// Profitability is measured against cash actually contributed out of pocket,
// not against cost basis: income reinvested from the portfolio's own returns
// must not inflate the denominator and understate the real return.
type Summary struct {
	CurrentWealth     Money // market value of all holdings
	TotalCostBasis    Money // weighted-average cost of all holdings
	TotalEarnings     Money // all income ever received
	TotalReinvested   Money // income put back into the portfolio
	TotalOutOfPocket  Money // external cash contributed
	WithdrawnEarnings Money // income taken out: earnings minus reinvested
	RealProfitValue   Money // (wealth + withdrawn) - out-of-pocket

	RealProfitPercent    Percent // real profit over out-of-pocket capital
	CapitalGainPercent   Percent // market value over cost basis
	EarningsYieldPercent Percent // yield on cost
}

// Summarize aggregates a snapshot of the entity collections into a Summary.
// It is a pure projection: no record is mutated, and repeated calls with the
// same snapshot return the same result.
//
// Every percentage metric falls back to zero when its denominator is not
// positive: a portfolio with no cost basis reports 0%, it does not fail.
func Summarize(assets []Asset, earnings []Earning, contributions []Contribution) Summary {
	var s Summary

	for _, a := range assets {
		s.CurrentWealth = s.CurrentWealth.Add(a.MarketValue())
		s.TotalCostBasis = s.TotalCostBasis.Add(a.CostBasis())
	}
	for _, e := range earnings {
		s.TotalEarnings = s.TotalEarnings.Add(e.Received)
	}
	for _, c := range contributions {
		s.TotalReinvested = s.TotalReinvested.Add(c.Reinvested)
		s.TotalOutOfPocket = s.TotalOutOfPocket.Add(c.OutOfPocket)
	}

	s.WithdrawnEarnings = s.TotalEarnings.Sub(s.TotalReinvested)
	s.RealProfitValue = s.CurrentWealth.Add(s.WithdrawnEarnings).Sub(s.TotalOutOfPocket)

	s.RealProfitPercent = ratio(s.RealProfitValue, s.TotalOutOfPocket)
	s.CapitalGainPercent = ratio(s.CurrentWealth.Sub(s.TotalCostBasis), s.TotalCostBasis)
	s.EarningsYieldPercent = ratio(s.TotalEarnings, s.TotalCostBasis)
	return s
}

// ratio returns num/den as a percentage, or zero when den is not positive.
func ratio(num, den Money) Percent {
	if !den.IsPositive() {
		return 0
	}
	return Percent(num.DivPrice(den).Mul(Q(100)).AsFloat())
}
