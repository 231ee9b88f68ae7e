package investidor

import (
	"errors"
	"fmt"
)

// Earning is a single income event (dividend, interest, rental yield...)
// attributed to an asset ticker.
//
// QuantityAtDate is the number of units held when the event occurred,
// captured at creation time and never recomputed: later merges change the
// position but must not rewrite past income history.
type Earning struct {
	ID          string
	AssetTicker string
	Date        Date
	Type        string // free-form category, e.g. "Dividendo", "JCP", "Rendimento"
	Received    Money
	Reinvested  Money
	Withdrawn   Money
	UnitAmount  Money // per-unit value; zero when a raw total was entered
	QuantityAtDate Quantity
	AutoGenerated  bool
}

// NewEarning creates a validated income record. The received amount must be
// fully explained by the reinvested and withdrawn parts at creation time;
// the engine never re-checks this split afterwards.
func NewEarning(id, ticker string, on Date, typ string, received, reinvested, withdrawn, unitAmount Money, quantityAtDate Quantity, auto bool) (Earning, error) {
	if id == "" {
		return Earning{}, errors.New("earning id is missing")
	}
	if ticker == "" {
		return Earning{}, errors.New("earning asset ticker is missing")
	}
	if on.IsZero() {
		return Earning{}, fmt.Errorf("earning for %q has no date", ticker)
	}
	if received.IsNegative() || reinvested.IsNegative() || withdrawn.IsNegative() {
		return Earning{}, fmt.Errorf("earning for %q on %s has a negative amount", ticker, on)
	}
	if !received.Equal(reinvested.Add(withdrawn)) {
		return Earning{}, fmt.Errorf("earning for %q on %s: received %s is not reinvested %s + withdrawn %s",
			ticker, on, received, reinvested, withdrawn)
	}
	if quantityAtDate.IsNegative() {
		return Earning{}, fmt.Errorf("earning for %q on %s has a negative quantity", ticker, on)
	}
	return Earning{
		ID:          id,
		AssetTicker: ticker,
		Date:        on,
		Type:        typ,
		Received:    received,
		Reinvested:  reinvested,
		Withdrawn:   withdrawn,
		UnitAmount:  unitAmount,
		QuantityAtDate: quantityAtDate,
		AutoGenerated:  auto,
	}, nil
}
