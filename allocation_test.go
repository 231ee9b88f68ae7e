package investidor

import "testing"

func class(id, name string, target float64) AssetClass {
	c, err := NewAssetClass(id, name, Percent(target))
	if err != nil {
		panic(err)
	}
	return c
}

func withTarget(a Asset, target float64) Asset {
	a.TargetPercent = Percent(target)
	return a
}

func TestAllocateAllToTheLaggingClass(t *testing.T) {
	classes := []AssetClass{
		class("rv", "Renda Variável", 70),
		class("rf", "Renda Fixa", 30),
	}
	// rv holds 1540 and rf only 60: after a 400 contribution the ideal
	// values are 1400 and 600, so only rf is in deficit.
	classValues := map[string]Money{"rv": BRL(1540), "rf": BRL(60)}
	assets := []Asset{
		withTarget(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 15.4, 15.4), 100),
		withTarget(mustAsset("a2", "CDB1", "rf", 60, "2024-01-10", 1, 1), 100),
	}

	r := Allocate(BRL(400), classes, classValues, assets, BRL(1600))

	if len(r.Classes) != 2 {
		t.Fatalf("Classes = %d entries, want 2", len(r.Classes))
	}
	for _, ca := range r.Classes {
		switch ca.Class.ID {
		case "rv":
			if !ca.Amount.IsZero() {
				t.Errorf("rv allocation = %s, want 0: it is above target", ca.Amount)
			}
		case "rf":
			if !ca.Amount.Equal(BRL(400)) {
				t.Errorf("rf allocation = %s, want the whole R$400.00", ca.Amount)
			}
		}
	}
}

func TestAllocateBalancedDeficits(t *testing.T) {
	classes := []AssetClass{
		class("a", "A", 50),
		class("b", "B", 50),
	}
	classValues := map[string]Money{"a": BRL(1000), "b": BRL(1000)}
	assets := []Asset{
		withTarget(mustAsset("a1", "AAA", "a", 1, "2024-01-10", 1000, 1000), 100),
		withTarget(mustAsset("b1", "BBB", "b", 1, "2024-01-10", 1000, 1000), 100),
	}

	r := Allocate(BRL(1000), classes, classValues, assets, BRL(2000))

	for _, ca := range r.Classes {
		if !ca.Amount.Equal(BRL(500)) {
			t.Errorf("class %s allocation = %s, want R$500.00", ca.Class.ID, ca.Amount)
		}
	}
}

// When every class is at or above target the contribution still lands
// somewhere: it falls back to the target weights.
func TestAllocateFallbackWhenNoDeficit(t *testing.T) {
	classes := []AssetClass{
		class("a", "A", 60),
		class("b", "B", 40),
	}
	classValues := map[string]Money{"a": BRL(5000), "b": BRL(5000)}
	assets := []Asset{
		withTarget(mustAsset("a1", "AAA", "a", 1, "2024-01-10", 5000, 5000), 100),
		withTarget(mustAsset("b1", "BBB", "b", 1, "2024-01-10", 5000, 5000), 100),
	}

	r := Allocate(BRL(1000), classes, classValues, assets, BRL(10000))

	if r.IsEmpty() {
		t.Fatal("the contribution must not be stranded")
	}
	for _, ca := range r.Classes {
		switch ca.Class.ID {
		case "a":
			if !ca.Amount.Equal(BRL(600)) {
				t.Errorf("a = %s, want R$600.00", ca.Amount)
			}
		case "b":
			if !ca.Amount.Equal(BRL(400)) {
				t.Errorf("b = %s, want R$400.00", ca.Amount)
			}
		}
	}
}

// The class allocations always sum back to the contributed amount, even when
// the weights produce repeating decimals.
func TestAllocateConservesAmount(t *testing.T) {
	classes := []AssetClass{
		class("a", "A", 1),
		class("b", "B", 1),
		class("c", "C", 1),
	}
	classValues := map[string]Money{"a": BRL(0), "b": BRL(0), "c": BRL(0)}
	assets := []Asset{
		withTarget(mustAsset("a1", "AAA", "a", 1, "2024-01-10", 1, 1), 1),
		withTarget(mustAsset("b1", "BBB", "b", 1, "2024-01-10", 1, 1), 1),
		withTarget(mustAsset("c1", "CCC", "c", 1, "2024-01-10", 1, 1), 1),
	}

	r := Allocate(BRL(1000), classes, classValues, assets, BRL(3))

	var sum Money
	for _, ca := range r.Classes {
		sum = sum.Add(ca.Amount)
	}
	if sum.Sub(BRL(1000)).Abs().GreaterThan(NO(0.000001)) {
		t.Errorf("class allocations sum to %s, want R$1000.00", sum)
	}
}

func TestAllocateIntraClassSplit(t *testing.T) {
	classes := []AssetClass{class("rv", "Renda Variável", 100)}
	classValues := map[string]Money{"rv": BRL(0)}
	assets := []Asset{
		withTarget(mustAsset("a1", "PETR4", "rv", 1, "2024-01-10", 10, 10), 60),
		withTarget(mustAsset("a2", "VALE3", "rv", 1, "2024-01-10", 20, 20), 40),
		withTarget(mustAsset("a3", "ZERO3", "rv", 1, "2024-01-10", 5, 5), 0),
	}

	r := Allocate(BRL(400), classes, classValues, assets, BRL(35))

	if len(r.Assets) != 2 {
		t.Fatalf("Assets = %d entries, want 2: the zero-weight asset is skipped", len(r.Assets))
	}
	// sorted by amount, largest first
	first, second := r.Assets[0], r.Assets[1]
	if first.Asset.Ticker != "PETR4" || !first.Amount.Equal(BRL(240)) {
		t.Errorf("first = %s %s, want PETR4 R$240.00", first.Asset.Ticker, first.Amount)
	}
	if second.Asset.Ticker != "VALE3" || !second.Amount.Equal(BRL(160)) {
		t.Errorf("second = %s %s, want VALE3 R$160.00", second.Asset.Ticker, second.Amount)
	}
	// suggested units at the current price
	if !first.Quantity.Equal(Q(24)) {
		t.Errorf("PETR4 quantity = %s, want 24", first.Quantity)
	}
	if !second.Quantity.Equal(Q(8)) {
		t.Errorf("VALE3 quantity = %s, want 8", second.Quantity)
	}
}

func TestAllocateSkipsOrphansAndDust(t *testing.T) {
	classes := []AssetClass{class("rv", "Renda Variável", 100)}
	classValues := map[string]Money{"rv": BRL(0)}
	assets := []Asset{
		withTarget(mustAsset("a1", "PETR4", "rv", 1, "2024-01-10", 10, 10), 99999),
		withTarget(mustAsset("a2", "DUST3", "rv", 1, "2024-01-10", 10, 10), 1),
		// its class was deleted
		withTarget(mustAsset("a3", "LOST3", "gone", 1, "2024-01-10", 10, 10), 100),
	}

	r := Allocate(BRL(100), classes, classValues, assets, BRL(30))

	for _, aa := range r.Assets {
		if aa.Asset.Ticker == "LOST3" {
			t.Errorf("orphaned asset received an allocation: %s", aa.Amount)
		}
		if aa.Asset.Ticker == "DUST3" {
			t.Errorf("sub-cent allocation not dropped: %s", aa.Amount)
		}
	}
}

func TestAllocateDegenerateInput(t *testing.T) {
	classes := []AssetClass{class("rv", "Renda Variável", 100)}
	assets := []Asset{withTarget(mustAsset("a1", "PETR4", "rv", 1, "2024-01-10", 10, 10), 100)}
	values := map[string]Money{"rv": BRL(10)}

	if r := Allocate(BRL(0), classes, values, assets, BRL(10)); !r.IsEmpty() {
		t.Errorf("zero amount must allocate nothing")
	}
	if r := Allocate(BRL(-50), classes, values, assets, BRL(10)); !r.IsEmpty() {
		t.Errorf("negative amount must allocate nothing")
	}
	if r := Allocate(BRL(100), nil, nil, assets, BRL(10)); !r.IsEmpty() {
		t.Errorf("no classes must allocate nothing")
	}
	if r := Allocate(BRL(100), classes, values, nil, BRL(10)); !r.IsEmpty() {
		t.Errorf("no assets must allocate nothing")
	}
}

// Class targets that do not sum to 100 are normalized by their own sum.
func TestAllocateNormalizesWeights(t *testing.T) {
	classes := []AssetClass{
		class("a", "A", 7),
		class("b", "B", 3),
	}
	classValues := map[string]Money{"a": BRL(0), "b": BRL(0)}
	assets := []Asset{
		withTarget(mustAsset("a1", "AAA", "a", 1, "2024-01-10", 1, 1), 100),
		withTarget(mustAsset("b1", "BBB", "b", 1, "2024-01-10", 1, 1), 100),
	}

	r := Allocate(BRL(1000), classes, classValues, assets, BRL(2))

	for _, ca := range r.Classes {
		switch ca.Class.ID {
		case "a":
			if !ca.Amount.Equal(BRL(700)) {
				t.Errorf("a = %s, want 70%% of the amount", ca.Amount)
			}
		case "b":
			if !ca.Amount.Equal(BRL(300)) {
				t.Errorf("b = %s, want 30%% of the amount", ca.Amount)
			}
		}
	}
}
