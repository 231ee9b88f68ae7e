package investidor

import "sort"

// minAllocation is the smallest per-asset suggestion worth executing;
// anything below it would propose a negligible fractional-unit purchase.
var minAllocation = M(0.01, "")

// ClassAllocation is the part of a contribution directed at one asset class.
type ClassAllocation struct {
	Class  AssetClass
	Amount Money
}

// AssetAllocation is the part of a contribution directed at one asset, with
// the suggested number of units at the asset's current price.
type AssetAllocation struct {
	Asset    Asset
	Amount   Money
	Quantity Quantity // Amount / CurrentPrice; fractional, callers may floor it
}

// AllocationResult is a contribution split, first across classes and then
// across the assets inside each class.
type AllocationResult struct {
	Classes []ClassAllocation
	Assets  []AssetAllocation
}

// IsEmpty reports whether the allocation carries no suggestion at all.
func (r AllocationResult) IsEmpty() bool {
	return len(r.Classes) == 0 && len(r.Assets) == 0
}

// Allocate computes how a contribution should be split to move the portfolio
// toward the configured target weights. It is a deterministic single
// corrective pass, not an optimizer: it closes the largest relative gaps
// proportionally and never suggests pulling money out of an overweight class.
//
// Class targets are normalized by their own sum; when that sum is zero each
// raw target is read as already expressed out of 100. Each class's deficit is
// the shortfall between its current value and its ideal share of the
// portfolio after the contribution; classes at or above target contribute
// zero deficit. The contribution is split proportionally to deficits, or
// proportionally to the normalized targets when no class has a deficit, so
// money is never stranded. Within a class, the split follows each asset's
// relative target weight among its class siblings.
//
// Degenerate input never fails: every division is guarded, and an empty
// class or asset list yields an empty allocation.
func Allocate(amount Money, classes []AssetClass, classValues map[string]Money, assets []Asset, portfolioValue Money) AllocationResult {
	var result AllocationResult
	if !amount.IsPositive() || len(classes) == 0 || len(assets) == 0 {
		return result
	}

	var weightTotal Quantity
	for _, c := range classes {
		weightTotal = weightTotal.Add(Q(float64(c.TargetPercent)))
	}
	divisor := weightTotal
	if !divisor.IsPositive() {
		// targets are read as already expressed out of 100
		divisor = Q(100)
	}

	// Per-class deficit against the ideal value after the contribution.
	target := portfolioValue.Add(amount)
	zero := M(0, amount.Currency())
	weights := make([]Quantity, len(classes))
	deficits := make([]Money, len(classes))
	var totalDeficit Money
	for i, c := range classes {
		weights[i] = Q(float64(c.TargetPercent)).Div(divisor)
		ideal := target.Mul(weights[i])
		deficits[i] = ideal.Sub(classValues[c.ID]).Max(zero)
		totalDeficit = totalDeficit.Add(deficits[i])
	}

	classAmounts := make(map[string]Money, len(classes))
	for i, c := range classes {
		var share Money
		if totalDeficit.IsPositive() {
			share = amount.Mul(deficits[i].DivPrice(totalDeficit))
		} else {
			// every class is at or above target: fall back to the
			// normalized targets so the contribution is never stranded
			share = amount.Mul(weights[i])
		}
		classAmounts[c.ID] = share
		result.Classes = append(result.Classes, ClassAllocation{Class: c, Amount: share})
	}

	// Intra-class split by relative asset weight.
	siblingWeights := make(map[string]Quantity)
	for _, a := range assets {
		siblingWeights[a.ClassID] = siblingWeights[a.ClassID].Add(Q(float64(a.TargetPercent)))
	}
	for _, a := range assets {
		classAmount, ok := classAmounts[a.ClassID]
		if !ok {
			continue // orphaned asset, its class is gone
		}
		total := siblingWeights[a.ClassID]
		if !total.IsPositive() {
			continue
		}
		value := classAmount.Mul(Q(float64(a.TargetPercent)).Div(total))
		if value.LessThan(minAllocation) {
			continue
		}
		alloc := AssetAllocation{Asset: a, Amount: value}
		if a.CurrentPrice.IsPositive() {
			alloc.Quantity = value.DivPrice(a.CurrentPrice)
		}
		result.Assets = append(result.Assets, alloc)
	}

	sort.SliceStable(result.Assets, func(i, j int) bool {
		return result.Assets[i].Amount.GreaterThan(result.Assets[j].Amount)
	})
	return result
}
