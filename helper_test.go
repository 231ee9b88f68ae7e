package investidor

// BRL is a helper for tests to create reais money from const.
func BRL(v float64) Money { return M(v, "BRL") }

// NO is a helper for tests to create money with no currency set.
func NO(v float64) Money { return M(v, "") }

// mustAsset creates a valid asset for tests, panicking on invalid fixtures.
func mustAsset(id, ticker, classID string, qty float64, on string, buy, quote float64) Asset {
	a, err := NewAsset(id, ticker, classID, Q(qty), MustParse(on), BRL(buy), BRL(quote))
	if err != nil {
		panic(err)
	}
	return a
}

// mustEarning creates a valid earning for tests, panicking on invalid fixtures.
func mustEarning(id, ticker, on string, received, reinvested, unit float64, qty float64, auto bool) Earning {
	e, err := NewEarning(id, ticker, MustParse(on), "Dividendo",
		BRL(received), BRL(reinvested), BRL(received-reinvested), BRL(unit), Q(qty), auto)
	if err != nil {
		panic(err)
	}
	return e
}

// mustContribution creates a valid contribution for tests.
func mustContribution(id, on string, total, outOfPocket float64) Contribution {
	c, err := NewContribution(id, MustParse(on), BRL(total), BRL(outOfPocket), BRL(total-outOfPocket), nil)
	if err != nil {
		panic(err)
	}
	return c
}
