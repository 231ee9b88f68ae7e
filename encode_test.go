package investidor

import (
	"bytes"
	"strings"
	"testing"
)

func testLedger() *Ledger {
	l := NewLedger()
	l.AddClass(class("rv", "Renda Variável", 70))
	l.AddClass(class("rf", "Renda Fixa", 30))
	l.RecordLot(mustAsset("a1", "PETR4", "rv", 100, "2024-01-10", 30.5, 32.1), BRL(0), "c1")
	l.RecordLot(mustAsset("a2", "CDB1", "rf", 1000, "2024-02-01", 1, 1), BRL(200), "c2")
	l.AddEarning(mustEarning("e1", "PETR4", "2024-05-10", 50, 20, 0.5, 100, false))
	l.AddEarning(mustEarning("e2", "PETR4", "2024-08-12", 60, 0, 0.6, 100, true))
	return l
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	l := testLedger()

	var buf bytes.Buffer
	if err := EncodeLedger(&buf, l); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}

	back, err := DecodeLedger(&buf)
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}

	if back.Currency() != l.Currency() {
		t.Errorf("Currency = %q, want %q", back.Currency(), l.Currency())
	}
	if len(back.classes) != 2 || len(back.assets) != 2 || len(back.earnings) != 2 || len(back.contributions) != 2 {
		t.Fatalf("decoded ledger has %d classes, %d assets, %d earnings, %d contributions",
			len(back.classes), len(back.assets), len(back.earnings), len(back.contributions))
	}

	a, ok := back.AssetByTicker("PETR4")
	if !ok {
		t.Fatal("PETR4 missing after round trip")
	}
	if !a.Quantity.Equal(Q(100)) || !a.PurchasePrice.Equal(BRL(30.5)) || !a.CurrentPrice.Equal(BRL(32.1)) {
		t.Errorf("PETR4 = %+v", a)
	}

	for e := range back.Earnings() {
		if e.ID != "e1" {
			continue
		}
		if !e.Received.Equal(BRL(50)) || !e.Reinvested.Equal(BRL(20)) || !e.Withdrawn.Equal(BRL(30)) {
			t.Errorf("e1 split = %s/%s/%s", e.Received, e.Reinvested, e.Withdrawn)
		}
	}
}

// Encoding a decoded file reproduces it byte for byte, so re-encoding is a
// safe formatting operation.
func TestEncodeIsCanonical(t *testing.T) {
	var first bytes.Buffer
	if err := EncodeLedger(&first, testLedger()); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}

	back, err := DecodeLedger(bytes.NewReader(first.Bytes()))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}

	var second bytes.Buffer
	if err := EncodeLedger(&second, back); err != nil {
		t.Fatalf("EncodeLedger: %v", err)
	}
	if first.String() != second.String() {
		t.Errorf("re-encoding changed the file:\nfirst:\n%s\nsecond:\n%s", first.String(), second.String())
	}
}

func TestDecodeLedgerSkipsEmptyLines(t *testing.T) {
	in := `{"record":"settings","currency":"BRL"}

{"record":"class","id":"rv","name":"Renda Variável","targetPercent":70}
`
	l, err := DecodeLedger(strings.NewReader(in))
	if err != nil {
		t.Fatalf("DecodeLedger: %v", err)
	}
	if _, ok := l.Class("rv"); !ok {
		t.Error("rv class not decoded")
	}
}

func TestDecodeLedgerRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"not json", "whatever\n"},
		{"unknown record", `{"record":"potato"}` + "\n"},
		{"invalid asset", `{"record":"asset","id":"a1","ticker":"","quantity":1,"purchaseDate":"2024-01-10","purchasePrice":{"amount":10},"currentPrice":{"amount":10}}` + "\n"},
		{"negative quantity", `{"record":"asset","id":"a1","ticker":"X","quantity":-1,"purchaseDate":"2024-01-10","purchasePrice":{"amount":10},"currentPrice":{"amount":10}}` + "\n"},
		{"unbalanced earning", `{"record":"earning","id":"e1","assetTicker":"X","date":"2024-01-10","received":{"amount":10},"reinvested":{"amount":1},"withdrawn":{"amount":1}}` + "\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeLedger(strings.NewReader(tc.in)); err == nil {
				t.Errorf("DecodeLedger accepted %q", tc.in)
			}
		})
	}
}
