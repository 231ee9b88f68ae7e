package investidor

// unitAmountTolerance absorbs floating-point noise in per-unit values coming
// from external sources: two syncs of the same dividend rarely agree to the
// last digit.
var unitAmountTolerance = M(0.0001, "")

// IsDuplicate reports whether a candidate income record is already
// represented in the existing ledger. The key is the asset ticker, the exact
// calendar date, and the per-unit amount within a 0.0001 tolerance.
//
// The received amount is deliberately not compared: it depends on the
// quantity held at the event date and can legitimately differ as lots change.
// The category is not part of the key either, so two distinct income types on
// the same date with near-identical per-unit values collapse into one.
//
// Only automatic ingestion is gated by this check; manual entries are trusted
// and recorded unconditionally.
func IsDuplicate(candidate Earning, existing []Earning) bool {
	for _, e := range existing {
		if e.AssetTicker != candidate.AssetTicker {
			continue
		}
		if e.Date != candidate.Date {
			continue
		}
		if e.UnitAmount.Sub(candidate.UnitAmount).Abs().LessThan(unitAmountTolerance) {
			return true
		}
	}
	return false
}
