package investidor

import (
	"fmt"
	"iter"
	"sort"
)

// DefaultCurrency is the display currency used when a ledger does not
// declare one.
const DefaultCurrency = "BRL"

// Ledger holds a snapshot of the four entity collections: asset classes,
// assets, income events, and contributions.
//
// The ledger owns no storage and performs no I/O; it is the in-memory
// snapshot every engine computation runs on. Earnings and contributions are
// always kept in chronological order.
type Ledger struct {
	currency      string
	classes       []AssetClass
	assets        []Asset
	earnings      []Earning
	contributions []Contribution
}

// NewLedger creates an empty ledger in the default display currency.
func NewLedger() *Ledger {
	return &Ledger{currency: DefaultCurrency}
}

// Currency returns the ledger display currency.
func (l *Ledger) Currency() string { return l.currency }

// SetCurrency declares the ledger display currency.
func (l *Ledger) SetCurrency(c string) {
	if c != "" {
		l.currency = c
	}
}

// stableSort restores chronological order for the dated collections. The
// sort is stable: records on the same day keep their relative order.
func (l *Ledger) stableSort() {
	sort.SliceStable(l.earnings, func(i, j int) bool {
		return l.earnings[i].Date.Before(l.earnings[j].Date)
	})
	sort.SliceStable(l.contributions, func(i, j int) bool {
		return l.contributions[i].Date.Before(l.contributions[j].Date)
	})
}

// AddClass appends a new asset class.
func (l *Ledger) AddClass(c AssetClass) error {
	if _, ok := l.Class(c.ID); ok {
		return fmt.Errorf("asset class %q already exists", c.ID)
	}
	l.classes = append(l.classes, c)
	return nil
}

// Class returns the asset class with this id.
func (l *Ledger) Class(id string) (AssetClass, bool) {
	for _, c := range l.classes {
		if c.ID == id {
			return c, true
		}
	}
	return AssetClass{}, false
}

// ClassByName returns the asset class with this name.
func (l *Ledger) ClassByName(name string) (AssetClass, bool) {
	for _, c := range l.classes {
		if c.Name == name {
			return c, true
		}
	}
	return AssetClass{}, false
}

// SetClassTarget updates the target weight of a class.
func (l *Ledger) SetClassTarget(id string, target Percent) error {
	if target < 0 {
		return fmt.Errorf("class target must not be negative, got %s", target)
	}
	for i := range l.classes {
		if l.classes[i].ID == id {
			l.classes[i].TargetPercent = target
			return nil
		}
	}
	return fmt.Errorf("unknown asset class %q", id)
}

// DeleteClass removes a class. Assets referencing it become orphaned: they
// still count toward wealth but are excluded from class-based aggregation.
func (l *Ledger) DeleteClass(id string) error {
	for i := range l.classes {
		if l.classes[i].ID == id {
			l.classes = append(l.classes[:i], l.classes[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown asset class %q", id)
}

// Classes iterates over asset classes in declaration order.
func (l *Ledger) Classes() iter.Seq[AssetClass] {
	return func(yield func(AssetClass) bool) {
		for _, c := range l.classes {
			if !yield(c) {
				return
			}
		}
	}
}

// Asset returns the asset with this id.
func (l *Ledger) Asset(id string) (Asset, bool) {
	for _, a := range l.assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// AssetByTicker returns the position holding this ticker.
func (l *Ledger) AssetByTicker(ticker string) (Asset, bool) {
	for _, a := range l.assets {
		if a.Ticker == ticker {
			return a, true
		}
	}
	return Asset{}, false
}

// Assets iterates over assets in recording order.
func (l *Ledger) Assets() iter.Seq[Asset] {
	return func(yield func(Asset) bool) {
		for _, a := range l.assets {
			if !yield(a) {
				return
			}
		}
	}
}

// RecordLot records a new lot. When a position for the ticker already exists
// the lot is merged into it (weighted-average cost); otherwise the lot
// becomes a new position. Either way a Contribution attributing the cash
// source is recorded, with the given id.
//
// reinvested is the part of the lot cost funded by the portfolio's own
// income; the rest is out-of-pocket.
func (l *Ledger) RecordLot(lot Asset, reinvested Money, contributionID string) (Asset, Contribution, error) {
	if contributionID == "" {
		return Asset{}, Contribution{}, fmt.Errorf("contribution id is missing")
	}
	contribution := LotContribution(contributionID, lot, reinvested)

	recorded := lot
	merged := false
	for i := range l.assets {
		if l.assets[i].Ticker == lot.Ticker {
			recorded = Merge(l.assets[i], lot)
			l.assets[i] = recorded
			merged = true
			break
		}
	}
	if !merged {
		l.assets = append(l.assets, lot)
	}

	l.contributions = append(l.contributions, contribution)
	l.stableSort()
	return recorded, contribution, nil
}

// ApplyAllocation executes an allocation plan: each suggested purchase is
// merged into its position at the current quote, and a single contribution
// with one detail per purchase attributes the cash source.
//
// When wholeUnits is set the suggested quantities are floored first;
// suggestions that floor to zero are dropped. reinvested is capped at the
// total actually spent so the contribution split stays balanced.
func (l *Ledger) ApplyAllocation(result AllocationResult, on Date, reinvested Money, contributionID string, wholeUnits bool) (Contribution, error) {
	if contributionID == "" {
		return Contribution{}, fmt.Errorf("contribution id is missing")
	}

	var details []ContributionDetail
	total := M(0, l.currency)
	for _, aa := range result.Assets {
		qty := aa.Quantity
		if wholeUnits {
			qty = qty.Floor()
		}
		if !qty.IsPositive() {
			continue
		}
		price := aa.Asset.CurrentPrice
		for i := range l.assets {
			if l.assets[i].ID != aa.Asset.ID {
				continue
			}
			lot := l.assets[i]
			lot.Quantity = qty
			lot.PurchasePrice = price
			l.assets[i] = Merge(l.assets[i], lot)
			break
		}
		details = append(details, ContributionDetail{
			AssetID:  aa.Asset.ID,
			Ticker:   aa.Asset.Ticker,
			Quantity: qty,
			Price:    price,
		})
		total = total.Add(price.Mul(qty))
	}
	if len(details) == 0 {
		return Contribution{}, fmt.Errorf("nothing to apply: the plan suggests no purchase")
	}

	if reinvested.GreaterThan(total) {
		reinvested = total
	}
	c, err := NewContribution(contributionID, on, total, total.Sub(reinvested), reinvested, details)
	if err != nil {
		return Contribution{}, err
	}
	if err := l.AddContribution(c); err != nil {
		return Contribution{}, err
	}
	return c, nil
}

// SetAssetTarget updates the intra-class target weight of an asset.
func (l *Ledger) SetAssetTarget(id string, target Percent) error {
	if target < 0 {
		return fmt.Errorf("asset target must not be negative, got %s", target)
	}
	for i := range l.assets {
		if l.assets[i].ID == id {
			l.assets[i].TargetPercent = target
			return nil
		}
	}
	return fmt.Errorf("unknown asset %q", id)
}

// SetPrice updates the current quote of every asset holding this ticker.
func (l *Ledger) SetPrice(ticker string, price Money, manual bool) error {
	if price.IsNegative() {
		return fmt.Errorf("price for %q must not be negative, got %s", ticker, price)
	}
	found := false
	for i := range l.assets {
		if l.assets[i].Ticker == ticker {
			l.assets[i].CurrentPrice = price
			l.assets[i].ManualPrice = manual
			found = true
		}
	}
	if !found {
		return fmt.Errorf("no asset holds ticker %q", ticker)
	}
	return nil
}

// DeleteAsset removes an asset position.
func (l *Ledger) DeleteAsset(id string) error {
	for i := range l.assets {
		if l.assets[i].ID == id {
			l.assets = append(l.assets[:i], l.assets[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown asset %q", id)
}

// AddEarning records a manually entered income event, unconditionally:
// user-entered data is trusted and never gated by duplicate detection.
func (l *Ledger) AddEarning(e Earning) error {
	for _, x := range l.earnings {
		if x.ID == e.ID {
			return fmt.Errorf("earning %q already exists", e.ID)
		}
	}
	l.earnings = append(l.earnings, e)
	l.stableSort()
	return nil
}

// IngestEarning records an automatically sourced income event, gated so that
// repeated syncs never create duplicates. It reports whether the record was
// added: duplicates and events dated before any unit was held are skipped.
func (l *Ledger) IngestEarning(e Earning) (bool, error) {
	if IsDuplicate(e, l.earnings) {
		return false, nil
	}
	if !e.QuantityAtDate.IsPositive() {
		return false, nil
	}
	if err := l.AddEarning(e); err != nil {
		return false, err
	}
	return true, nil
}

// DeleteEarning removes an income event.
func (l *Ledger) DeleteEarning(id string) error {
	for i := range l.earnings {
		if l.earnings[i].ID == id {
			l.earnings = append(l.earnings[:i], l.earnings[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown earning %q", id)
}

// Earnings iterates over income events in chronological order.
func (l *Ledger) Earnings() iter.Seq[Earning] {
	return func(yield func(Earning) bool) {
		for _, e := range l.earnings {
			if !yield(e) {
				return
			}
		}
	}
}

// AddContribution records a contribution that was not produced by RecordLot,
// typically an applied allocation plan covering several assets.
func (l *Ledger) AddContribution(c Contribution) error {
	for _, x := range l.contributions {
		if x.ID == c.ID {
			return fmt.Errorf("contribution %q already exists", c.ID)
		}
	}
	l.contributions = append(l.contributions, c)
	l.stableSort()
	return nil
}

// DeleteContribution removes a contribution record.
func (l *Ledger) DeleteContribution(id string) error {
	for i := range l.contributions {
		if l.contributions[i].ID == id {
			l.contributions = append(l.contributions[:i], l.contributions[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("unknown contribution %q", id)
}

// Contributions iterates over contributions in chronological order.
func (l *Ledger) Contributions() iter.Seq[Contribution] {
	return func(yield func(Contribution) bool) {
		for _, c := range l.contributions {
			if !yield(c) {
				return
			}
		}
	}
}

// TotalValue computes the market value of all positions, orphaned or not.
func (l *Ledger) TotalValue() Money {
	total := M(0, l.currency)
	for _, a := range l.assets {
		total = total.Add(a.MarketValue())
	}
	return total
}

// ClassValue computes the market value of the positions belonging to a class.
func (l *Ledger) ClassValue(classID string) Money {
	total := M(0, l.currency)
	for _, a := range l.assets {
		if a.ClassID == classID {
			total = total.Add(a.MarketValue())
		}
	}
	return total
}

// ClassValues computes the market value of every declared class. Orphaned
// assets appear in no entry.
func (l *Ledger) ClassValues() map[string]Money {
	values := make(map[string]Money, len(l.classes))
	for _, c := range l.classes {
		values[c.ID] = l.ClassValue(c.ID)
	}
	return values
}

// QuantityAtDate resolves the units of a ticker held on a past date.
func (l *Ledger) QuantityAtDate(ticker string, asOf Date) Quantity {
	return QuantityAtDate(ticker, asOf, l.assets)
}

// Summarize projects the ledger snapshot into summary metrics.
func (l *Ledger) Summarize() Summary {
	return Summarize(l.assets, l.earnings, l.contributions)
}

// Allocate suggests how to split a contribution across the declared classes
// and their assets, from the current snapshot.
func (l *Ledger) Allocate(amount Money) AllocationResult {
	return Allocate(amount, l.classes, l.ClassValues(), l.assets, l.TotalValue())
}
