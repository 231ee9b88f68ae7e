package investidor

import (
	"errors"
	"fmt"
)

// AssetClass is a named grouping of assets with a target share of the total
// portfolio value. Targets are not required to sum to 100 across classes;
// they are normalized at allocation time.
type AssetClass struct {
	ID            string
	Name          string
	TargetPercent Percent
}

// NewAssetClass creates a validated asset class.
func NewAssetClass(id, name string, target Percent) (AssetClass, error) {
	if id == "" {
		return AssetClass{}, errors.New("asset class id is missing")
	}
	if name == "" {
		return AssetClass{}, errors.New("asset class name is missing")
	}
	if target < 0 {
		return AssetClass{}, fmt.Errorf("asset class %q target must not be negative, got %s", name, target)
	}
	return AssetClass{ID: id, Name: name, TargetPercent: target}, nil
}

// Asset is a position in a single instrument.
//
// An Asset starts as a single lot; merging further lots for the same ticker
// keeps PurchasePrice as the weighted-average unit cost across all merged
// lots, never a single lot's price. TargetPercent is the asset's relative
// weight among the assets of its class, not of the whole portfolio.
type Asset struct {
	ID            string
	Ticker        string
	ClassID       string
	Quantity      Quantity
	PurchaseDate  Date
	PurchasePrice Money // weighted-average unit cost
	CurrentPrice  Money
	ManualPrice   bool
	TargetPercent Percent
}

// NewAsset creates a validated asset lot. Malformed numeric input is rejected
// here, never coerced to zero: a negative quantity reaching the engine would
// silently corrupt every aggregate downstream.
func NewAsset(id, ticker, classID string, quantity Quantity, on Date, purchasePrice, currentPrice Money) (Asset, error) {
	if id == "" {
		return Asset{}, errors.New("asset id is missing")
	}
	if ticker == "" {
		return Asset{}, errors.New("asset ticker is missing")
	}
	if on.IsZero() {
		return Asset{}, fmt.Errorf("asset %q purchase date is missing", ticker)
	}
	if quantity.IsNegative() {
		return Asset{}, fmt.Errorf("asset %q quantity must not be negative, got %s", ticker, quantity)
	}
	if purchasePrice.IsNegative() {
		return Asset{}, fmt.Errorf("asset %q purchase price must not be negative, got %s", ticker, purchasePrice)
	}
	if currentPrice.IsNegative() {
		return Asset{}, fmt.Errorf("asset %q current price must not be negative, got %s", ticker, currentPrice)
	}
	if currentPrice.IsZero() {
		// A lot recorded without a quote is worth what it cost until a quote arrives.
		currentPrice = purchasePrice
	}
	return Asset{
		ID:            id,
		Ticker:        ticker,
		ClassID:       classID,
		Quantity:      quantity,
		PurchaseDate:  on,
		PurchasePrice: purchasePrice,
		CurrentPrice:  currentPrice,
	}, nil
}

// MarketValue returns quantity times current price.
func (a Asset) MarketValue() Money { return a.CurrentPrice.Mul(a.Quantity) }

// CostBasis returns quantity times the weighted-average purchase price.
func (a Asset) CostBasis() Money { return a.PurchasePrice.Mul(a.Quantity) }
