package investidor

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/PaesslerAG/jsonpath"
	"github.com/shopspring/decimal"
)

// This file handles the import/export backup format: a single human-readable
// JSON document holding the whole ledger. The format is the "2.5" backup
// layout of the original web app, so backups produced there restore here
// unchanged.

const backupVersion = "2.5"

// jbAsset is the backup representation of an asset.
type jbAsset struct {
	ID            string          `json:"id"`
	Name          string          `json:"name,omitempty"`
	Ticker        string          `json:"ticker"`
	Type          string          `json:"type,omitempty"`
	ClassID       string          `json:"classId,omitempty"`
	Quantity      decimal.Decimal `json:"quantity"`
	PurchaseDate  string          `json:"purchaseDate"`
	PurchasePrice decimal.Decimal `json:"purchasePrice"`
	CurrentPrice  decimal.Decimal `json:"currentPrice"`
	ManualPrice   bool            `json:"isManualPrice,omitempty"`
	TargetPercent float64         `json:"targetPercent,omitempty"`
}

// jbEarning is the backup representation of an income event.
type jbEarning struct {
	ID             string          `json:"id"`
	AssetTicker    string          `json:"assetTicker"`
	Date           string          `json:"date"`
	Type           string          `json:"type,omitempty"`
	Received       decimal.Decimal `json:"receivedAmount"`
	Reinvested     decimal.Decimal `json:"reinvestedAmount"`
	Withdrawn      decimal.Decimal `json:"withdrawnAmount"`
	UnitAmount     decimal.Decimal `json:"unitAmount,omitempty"`
	QuantityAtDate decimal.Decimal `json:"quantityAtDate,omitempty"`
	AutoGenerated  bool            `json:"isAutoGenerated,omitempty"`
}

// jbDetail is the backup representation of a contribution detail.
type jbDetail struct {
	AssetID  string          `json:"assetId"`
	Ticker   string          `json:"ticker"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
}

// jbContribution is the backup representation of a contribution.
type jbContribution struct {
	ID          string          `json:"id"`
	Date        string          `json:"date"`
	Total       decimal.Decimal `json:"totalAmount"`
	OutOfPocket decimal.Decimal `json:"outOfPocketAmount"`
	Reinvested  decimal.Decimal `json:"reinvestedAmount"`
	Details     []jbDetail      `json:"details,omitempty"`
}

// jbClass is the backup representation of an asset class.
type jbClass struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	TargetPercent float64 `json:"targetPercent"`
}

// jbSettings carries the display settings of the backup envelope.
type jbSettings struct {
	Currency string `json:"currency,omitempty"`
}

// jbackup is the backup envelope.
type jbackup struct {
	Assets        []jbAsset        `json:"assets"`
	Earnings      []jbEarning      `json:"earnings"`
	Contributions []jbContribution `json:"contributions"`
	Classes       []jbClass        `json:"classes"`
	Settings      jbSettings       `json:"settings"`
	Version       string           `json:"version"`
	Timestamp     int64            `json:"timestamp"`
}

// Export writes the whole ledger to 'w' as a single backup document.
func Export(w io.Writer, ledger *Ledger) error {
	ledger.stableSort()

	backup := jbackup{
		Assets:        make([]jbAsset, 0, len(ledger.assets)),
		Earnings:      make([]jbEarning, 0, len(ledger.earnings)),
		Contributions: make([]jbContribution, 0, len(ledger.contributions)),
		Classes:       make([]jbClass, 0, len(ledger.classes)),
		Settings:      jbSettings{Currency: ledger.currency},
		Version:       backupVersion,
		Timestamp:     time.Now().UnixMilli(),
	}
	for _, a := range ledger.assets {
		backup.Assets = append(backup.Assets, jbAsset{
			ID:            a.ID,
			Ticker:        a.Ticker,
			ClassID:       a.ClassID,
			Quantity:      a.Quantity.value,
			PurchaseDate:  a.PurchaseDate.String(),
			PurchasePrice: a.PurchasePrice.value,
			CurrentPrice:  a.CurrentPrice.value,
			ManualPrice:   a.ManualPrice,
			TargetPercent: float64(a.TargetPercent),
		})
	}
	for _, e := range ledger.earnings {
		backup.Earnings = append(backup.Earnings, jbEarning{
			ID:             e.ID,
			AssetTicker:    e.AssetTicker,
			Date:           e.Date.String(),
			Type:           e.Type,
			Received:       e.Received.value,
			Reinvested:     e.Reinvested.value,
			Withdrawn:      e.Withdrawn.value,
			UnitAmount:     e.UnitAmount.value,
			QuantityAtDate: e.QuantityAtDate.value,
			AutoGenerated:  e.AutoGenerated,
		})
	}
	for _, c := range ledger.contributions {
		details := make([]jbDetail, 0, len(c.Details))
		for _, d := range c.Details {
			details = append(details, jbDetail{
				AssetID:  d.AssetID,
				Ticker:   d.Ticker,
				Quantity: d.Quantity.value,
				Price:    d.Price.value,
			})
		}
		backup.Contributions = append(backup.Contributions, jbContribution{
			ID:          c.ID,
			Date:        c.Date.String(),
			Total:       c.Total.value,
			OutOfPocket: c.OutOfPocket.value,
			Reinvested:  c.Reinvested.value,
			Details:     details,
		})
	}
	for _, c := range ledger.classes {
		backup.Classes = append(backup.Classes, jbClass{
			ID:            c.ID,
			Name:          c.Name,
			TargetPercent: float64(c.TargetPercent),
		})
	}

	data, err := json.MarshalIndent(backup, "", "  ")
	if err != nil {
		return fmt.Errorf("cannot marshal backup: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write backup: %w", err)
	}
	return nil
}

// section extracts one named collection from the parsed backup document and
// re-marshals it into the typed target. Backups from older app versions may
// omit a collection entirely, which leaves the target empty.
func section(doc any, path string, target any) error {
	jval, err := jsonpath.Get(path, doc)
	if err != nil {
		// missing section
		return nil
	}
	raw, err := json.Marshal(jval)
	if err != nil {
		return fmt.Errorf("cannot re-marshal %q: %w", path, err)
	}
	if err := json.Unmarshal(raw, target); err != nil {
		return fmt.Errorf("cannot parse %q: %w", path, err)
	}
	return nil
}

// Import reads a backup document from 'r' and rebuilds a ledger from it.
//
// Amount splits in old backups are not trusted blindly: an earning whose
// received amount is not explained by its reinvested and withdrawn parts has
// its withdrawn part recomputed, and a contribution whose parts disagree with
// its total has its out-of-pocket part recomputed. The original app tolerated
// hand-edited backups the same way.
func Import(r io.Reader) (*Ledger, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("cannot read backup: %w", err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("not a valid backup document: %w", err)
	}

	ledger := NewLedger()
	if jval, err := jsonpath.Get("$.settings.currency", doc); err == nil {
		if c, ok := jval.(string); ok {
			ledger.SetCurrency(c)
		}
	}
	cur := ledger.currency

	var classes []jbClass
	if err := section(doc, "$.classes", &classes); err != nil {
		return nil, err
	}
	for _, jc := range classes {
		c, err := NewAssetClass(jc.ID, jc.Name, Percent(jc.TargetPercent))
		if err != nil {
			return nil, fmt.Errorf("invalid class in backup: %w", err)
		}
		if err := ledger.AddClass(c); err != nil {
			return nil, fmt.Errorf("invalid class in backup: %w", err)
		}
	}

	var assets []jbAsset
	if err := section(doc, "$.assets", &assets); err != nil {
		return nil, err
	}
	for _, ja := range assets {
		on, err := ParseDate(ja.PurchaseDate)
		if err != nil {
			return nil, fmt.Errorf("invalid asset %q in backup: %w", ja.Ticker, err)
		}
		a, err := NewAsset(ja.ID, ja.Ticker, ja.ClassID, Q(ja.Quantity), on,
			M(ja.PurchasePrice, cur), M(ja.CurrentPrice, cur))
		if err != nil {
			return nil, fmt.Errorf("invalid asset in backup: %w", err)
		}
		a.ManualPrice = ja.ManualPrice
		a.TargetPercent = Percent(ja.TargetPercent)
		ledger.assets = append(ledger.assets, a)
	}

	var earnings []jbEarning
	if err := section(doc, "$.earnings", &earnings); err != nil {
		return nil, err
	}
	for _, je := range earnings {
		on, err := ParseDate(je.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid earning for %q in backup: %w", je.AssetTicker, err)
		}
		received := M(je.Received, cur)
		reinvested := M(je.Reinvested, cur)
		withdrawn := M(je.Withdrawn, cur)
		if !received.Equal(reinvested.Add(withdrawn)) {
			withdrawn = received.Sub(reinvested).Max(M(0, cur))
			reinvested = received.Sub(withdrawn)
		}
		e, err := NewEarning(je.ID, je.AssetTicker, on, je.Type,
			received, reinvested, withdrawn,
			M(je.UnitAmount, cur), Q(je.QuantityAtDate), je.AutoGenerated)
		if err != nil {
			return nil, fmt.Errorf("invalid earning in backup: %w", err)
		}
		ledger.earnings = append(ledger.earnings, e)
	}

	var contributions []jbContribution
	if err := section(doc, "$.contributions", &contributions); err != nil {
		return nil, err
	}
	for _, jc := range contributions {
		on, err := ParseDate(jc.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid contribution in backup: %w", err)
		}
		total := M(jc.Total, cur)
		reinvested := M(jc.Reinvested, cur)
		outOfPocket := M(jc.OutOfPocket, cur)
		if !total.Equal(outOfPocket.Add(reinvested)) {
			outOfPocket = total.Sub(reinvested).Max(M(0, cur))
			reinvested = total.Sub(outOfPocket)
		}
		details := make([]ContributionDetail, 0, len(jc.Details))
		for _, jd := range jc.Details {
			details = append(details, ContributionDetail{
				AssetID:  jd.AssetID,
				Ticker:   jd.Ticker,
				Quantity: Q(jd.Quantity),
				Price:    M(jd.Price, cur),
			})
		}
		c, err := NewContribution(jc.ID, on, total, outOfPocket, reinvested, details)
		if err != nil {
			return nil, fmt.Errorf("invalid contribution in backup: %w", err)
		}
		ledger.contributions = append(ledger.contributions, c)
	}

	ledger.stableSort()
	return ledger, nil
}
