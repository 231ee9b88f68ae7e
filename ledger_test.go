package investidor

import "testing"

func TestLedgerClasses(t *testing.T) {
	l := NewLedger()

	if err := l.AddClass(class("rv", "Renda Variável", 70)); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if err := l.AddClass(class("rf", "Renda Fixa", 30)); err != nil {
		t.Fatalf("AddClass: %v", err)
	}
	if err := l.AddClass(class("rv", "Duplicada", 0)); err == nil {
		t.Error("AddClass must reject a duplicate id")
	}

	if c, ok := l.ClassByName("Renda Fixa"); !ok || c.ID != "rf" {
		t.Errorf("ClassByName = %+v, %v", c, ok)
	}

	if err := l.SetClassTarget("rf", 40); err != nil {
		t.Fatalf("SetClassTarget: %v", err)
	}
	if c, _ := l.Class("rf"); !c.TargetPercent.Equal(40) {
		t.Errorf("TargetPercent = %v, want 40", c.TargetPercent)
	}
	if err := l.SetClassTarget("rf", -1); err == nil {
		t.Error("SetClassTarget must reject a negative target")
	}
	if err := l.SetClassTarget("nope", 10); err == nil {
		t.Error("SetClassTarget must reject an unknown class")
	}

	if err := l.DeleteClass("rf"); err != nil {
		t.Fatalf("DeleteClass: %v", err)
	}
	if _, ok := l.Class("rf"); ok {
		t.Error("rf still present after DeleteClass")
	}
}

func TestLedgerRecordLot(t *testing.T) {
	l := NewLedger()
	lot := mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32)

	recorded, contribution, err := l.RecordLot(lot, BRL(0), "c1")
	if err != nil {
		t.Fatalf("RecordLot: %v", err)
	}
	if !recorded.Quantity.Equal(Q(100)) {
		t.Errorf("recorded quantity = %s, want 100", recorded.Quantity)
	}
	if !contribution.OutOfPocket.Equal(BRL(3000)) {
		t.Errorf("OutOfPocket = %s, want R$3000.00", contribution.OutOfPocket)
	}

	// a second lot for the same ticker merges into the position
	second := mustAsset("a2", "PETR4", "rv", 50, "2024-03-05", 36, 33)
	recorded, _, err = l.RecordLot(second, BRL(500), "c2")
	if err != nil {
		t.Fatalf("RecordLot: %v", err)
	}
	if recorded.ID != "a1" {
		t.Errorf("merged position id = %q, want the existing a1", recorded.ID)
	}
	if !recorded.Quantity.Equal(Q(150)) {
		t.Errorf("merged quantity = %s, want 150", recorded.Quantity)
	}
	if !recorded.PurchasePrice.Equal(BRL(32)) {
		t.Errorf("merged average cost = %s, want R$32.00", recorded.PurchasePrice)
	}

	// still a single position, two contributions
	count := 0
	for range l.Assets() {
		count++
	}
	if count != 1 {
		t.Errorf("positions = %d, want 1", count)
	}
	count = 0
	for range l.Contributions() {
		count++
	}
	if count != 2 {
		t.Errorf("contributions = %d, want 2", count)
	}

	if _, _, err := l.RecordLot(lot, BRL(0), ""); err == nil {
		t.Error("RecordLot must require a contribution id")
	}
}

func TestLedgerSetPrice(t *testing.T) {
	l := NewLedger()
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32), BRL(0), "c1")

	if err := l.SetPrice("PETR4", BRL(35), true); err != nil {
		t.Fatalf("SetPrice: %v", err)
	}
	a, _ := l.AssetByTicker("PETR4")
	if !a.CurrentPrice.Equal(BRL(35)) || !a.ManualPrice {
		t.Errorf("after SetPrice: %+v", a)
	}

	if err := l.SetPrice("PETR4", BRL(-1), false); err == nil {
		t.Error("SetPrice must reject a negative price")
	}
	if err := l.SetPrice("NOPE3", BRL(10), false); err == nil {
		t.Error("SetPrice must reject an unknown ticker")
	}
}

func TestLedgerEarnings(t *testing.T) {
	l := NewLedger()
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32), BRL(0), "c1")

	manual := mustEarning("e1", "PETR4", "2024-05-10", 50, 0, 0.5, 100, false)
	if err := l.AddEarning(manual); err != nil {
		t.Fatalf("AddEarning: %v", err)
	}
	if err := l.AddEarning(manual); err == nil {
		t.Error("AddEarning must reject a duplicate id")
	}

	// a manual twin of an existing record is recorded unconditionally
	twin := manual
	twin.ID = "e2"
	if err := l.AddEarning(twin); err != nil {
		t.Fatalf("AddEarning twin: %v", err)
	}

	// automatic ingestion of the same event is skipped
	auto := mustEarning("e3", "PETR4", "2024-05-10", 50, 0, 0.5, 100, true)
	added, err := l.IngestEarning(auto)
	if err != nil {
		t.Fatalf("IngestEarning: %v", err)
	}
	if added {
		t.Error("IngestEarning must skip a duplicate")
	}

	// and so is an event dated before any unit was held
	early := mustEarning("e4", "PETR4", "2023-12-01", 50, 0, 0.5, 0, true)
	if added, _ := l.IngestEarning(early); added {
		t.Error("IngestEarning must skip an event with no position")
	}

	// a genuinely new automatic event lands
	fresh := mustEarning("e5", "PETR4", "2024-08-10", 60, 0, 0.6, 100, true)
	if added, _ := l.IngestEarning(fresh); !added {
		t.Error("IngestEarning must record a new event")
	}
}

func TestLedgerChronologicalOrder(t *testing.T) {
	l := NewLedger()
	l.AddEarning(mustEarning("e2", "PETR4", "2024-06-10", 10, 0, 0.1, 100, false))
	l.AddEarning(mustEarning("e1", "PETR4", "2024-01-10", 10, 0, 0.1, 100, false))
	l.AddContribution(mustContribution("c2", "2024-06-10", 100, 100))
	l.AddContribution(mustContribution("c1", "2024-01-10", 100, 100))

	var prev Date
	for e := range l.Earnings() {
		if e.Date.Before(prev) {
			t.Fatalf("earnings out of order at %s", e.Date)
		}
		prev = e.Date
	}
	prev = Date{}
	for c := range l.Contributions() {
		if c.Date.Before(prev) {
			t.Fatalf("contributions out of order at %s", c.Date)
		}
		prev = c.Date
	}
}

func TestLedgerValues(t *testing.T) {
	l := NewLedger()
	l.AddClass(class("rv", "Renda Variável", 70))
	l.AddClass(class("rf", "Renda Fixa", 30))
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32), BRL(0), "c1")
	l.RecordLot(mustAsset("a2", "CDB1", "rf", 1000, "2024-01-10", 1, 1), BRL(0), "c2")
	// orphaned: counts toward the total, belongs to no class
	l.RecordLot(mustAsset("a3", "LOST3", "gone", 10, "2024-01-10", 5, 5), BRL(0), "c3")

	if got := l.TotalValue(); !got.Equal(BRL(4250)) {
		t.Errorf("TotalValue = %s, want R$4250.00", got)
	}
	if got := l.ClassValue("rv"); !got.Equal(BRL(3200)) {
		t.Errorf("ClassValue(rv) = %s, want R$3200.00", got)
	}
	values := l.ClassValues()
	if len(values) != 2 {
		t.Errorf("ClassValues has %d entries, want 2", len(values))
	}
	if !values["rf"].Equal(BRL(1000)) {
		t.Errorf("ClassValues[rf] = %s, want R$1000.00", values["rf"])
	}
}

func TestLedgerDeletes(t *testing.T) {
	l := NewLedger()
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32), BRL(0), "c1")
	l.AddEarning(mustEarning("e1", "PETR4", "2024-05-10", 50, 0, 0.5, 100, false))

	if err := l.DeleteEarning("e1"); err != nil {
		t.Fatalf("DeleteEarning: %v", err)
	}
	if err := l.DeleteEarning("e1"); err == nil {
		t.Error("DeleteEarning must fail on an unknown id")
	}
	if err := l.DeleteContribution("c1"); err != nil {
		t.Fatalf("DeleteContribution: %v", err)
	}
	if err := l.DeleteAsset("a1"); err != nil {
		t.Fatalf("DeleteAsset: %v", err)
	}
	if _, ok := l.Asset("a1"); ok {
		t.Error("a1 still present after DeleteAsset")
	}
}

func TestLedgerHoldingReport(t *testing.T) {
	l := NewLedger()
	l.AddClass(class("rv", "Renda Variável", 70))
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32), BRL(0), "c1")
	l.RecordLot(mustAsset("a2", "LOST3", "gone", 10, "2024-01-10", 5, 5), BRL(0), "c2")

	r := l.NewHoldingReport()
	if !r.TotalValue.Equal(BRL(3250)) {
		t.Errorf("TotalValue = %s, want R$3250.00", r.TotalValue)
	}
	if len(r.Classes) != 1 || len(r.Classes[0].Assets) != 1 {
		t.Fatalf("Classes = %+v", r.Classes)
	}
	if len(r.Orphans) != 1 || r.Orphans[0].Asset.Ticker != "LOST3" {
		t.Errorf("Orphans = %+v", r.Orphans)
	}
	almostEqual(t, "rv weight", r.Classes[0].WeightPercent, 3200.0/3250.0*100)
	almostEqual(t, "PETR4 gain", r.Classes[0].Assets[0].GainPercent, 200.0/3000.0*100)
}

func TestLedgerApplyAllocation(t *testing.T) {
	l := NewLedger()
	l.AddClass(class("rv", "Renda Variável", 100))
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30, 32), BRL(0), "c1")
	l.RecordLot(mustAsset("a2", "ITSA4", "rv", 100, "2024-01-10", 10, 10), BRL(0), "c2")

	petr, _ := l.AssetByTicker("PETR4")
	itsa, _ := l.AssetByTicker("ITSA4")
	plan := AllocationResult{Assets: []AssetAllocation{
		{Asset: petr, Amount: BRL(320), Quantity: Q(10)},
		{Asset: itsa, Amount: BRL(25), Quantity: Q(2.5)},
	}}

	// whole units floor ITSA4 down to 2, and the reinvested part caps at
	// the actual cost of the purchases
	c, err := l.ApplyAllocation(plan, MustParse("2024-06-03"), BRL(400), "c3", true)
	if err != nil {
		t.Fatalf("ApplyAllocation: %v", err)
	}
	if !c.Total.Equal(BRL(340)) {
		t.Errorf("Total = %s, want R$340.00", c.Total)
	}
	if !c.Reinvested.Equal(BRL(340)) {
		t.Errorf("Reinvested = %s, want R$340.00", c.Reinvested)
	}
	if !c.OutOfPocket.Equal(BRL(0)) {
		t.Errorf("OutOfPocket = %s, want R$0.00", c.OutOfPocket)
	}
	if len(c.Details) != 2 {
		t.Fatalf("Details = %+v, want 2 entries", c.Details)
	}
	if !c.Details[1].Quantity.Equal(Q(2)) {
		t.Errorf("ITSA4 quantity = %s, want 2", c.Details[1].Quantity)
	}

	petr, _ = l.AssetByTicker("PETR4")
	if !petr.Quantity.Equal(Q(110)) {
		t.Errorf("PETR4 position = %s, want 110", petr.Quantity)
	}
	itsa, _ = l.AssetByTicker("ITSA4")
	if !itsa.Quantity.Equal(Q(102)) {
		t.Errorf("ITSA4 position = %s, want 102", itsa.Quantity)
	}
	if !itsa.PurchasePrice.Equal(BRL(10)) {
		t.Errorf("ITSA4 average price = %s, want R$10.00", itsa.PurchasePrice)
	}

	if _, err := l.ApplyAllocation(plan, Today(), BRL(0), "", false); err == nil {
		t.Error("ApplyAllocation must reject a missing contribution id")
	}
	dust := AllocationResult{Assets: []AssetAllocation{
		{Asset: petr, Amount: BRL(16), Quantity: Q(0.5)},
	}}
	if _, err := l.ApplyAllocation(dust, Today(), BRL(0), "c4", true); err == nil {
		t.Error("ApplyAllocation must report a plan with nothing to buy")
	}
}
