package investidor

import (
	"errors"
	"fmt"
)

// ContributionDetail describes how part of a contribution was deployed into
// one asset.
type ContributionDetail struct {
	AssetID  string
	Ticker   string
	Quantity Quantity
	Price    Money
}

// Contribution records money entering the portfolio: how much came out of
// pocket (new external cash), how much was reinvested income, and the ordered
// list of purchases it funded. Contributions are immutable once created,
// except for deletion.
type Contribution struct {
	ID          string
	Date        Date
	Total       Money
	OutOfPocket Money
	Reinvested  Money
	Details     []ContributionDetail
}

// NewContribution creates a validated contribution. The out-of-pocket and
// reinvested parts must sum to the total: the split is what keeps the real
// profitability metric honest.
func NewContribution(id string, on Date, total, outOfPocket, reinvested Money, details []ContributionDetail) (Contribution, error) {
	if id == "" {
		return Contribution{}, errors.New("contribution id is missing")
	}
	if on.IsZero() {
		return Contribution{}, errors.New("contribution date is missing")
	}
	if total.IsNegative() || outOfPocket.IsNegative() || reinvested.IsNegative() {
		return Contribution{}, fmt.Errorf("contribution on %s has a negative amount", on)
	}
	if !total.Equal(outOfPocket.Add(reinvested)) {
		return Contribution{}, fmt.Errorf("contribution on %s: total %s is not out-of-pocket %s + reinvested %s",
			on, total, outOfPocket, reinvested)
	}
	return Contribution{
		ID:          id,
		Date:        on,
		Total:       total,
		OutOfPocket: outOfPocket,
		Reinvested:  reinvested,
		Details:     details,
	}, nil
}
