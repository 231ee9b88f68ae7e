package investidor

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The ledger file is a JSONL file: one record per line, each line a JSON
// object carrying a "record" property naming its kind. Records are written
// in a canonical order (settings, classes, assets, earnings, contributions)
// with stable field order, so that two encodings of the same ledger are
// byte-identical and the file diffs well under version control.

const (
	recordSettings     = "settings"
	recordClass        = "class"
	recordAsset        = "asset"
	recordEarning      = "earning"
	recordContribution = "contribution"
)

// MarshalJSON implements a stable field order for asset classes.
func (c AssetClass) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", c.ID).
		Append("name", c.Name).
		Optional("targetPercent", float64(c.TargetPercent))
	return w.MarshalJSON()
}

// MarshalJSON implements a stable field order for assets.
func (a Asset) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", a.ID).
		Append("ticker", a.Ticker).
		Optional("classId", a.ClassID).
		Append("quantity", a.Quantity).
		Append("purchaseDate", a.PurchaseDate).
		Append("purchasePrice", a.PurchasePrice).
		Append("currentPrice", a.CurrentPrice).
		Optional("manualPrice", a.ManualPrice).
		Optional("targetPercent", float64(a.TargetPercent))
	return w.MarshalJSON()
}

// MarshalJSON implements a stable field order for earnings.
func (e Earning) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", e.ID).
		Append("assetTicker", e.AssetTicker).
		Append("date", e.Date).
		Optional("type", e.Type).
		Append("received", e.Received).
		Append("reinvested", e.Reinvested).
		Append("withdrawn", e.Withdrawn).
		Optional("unitAmount", e.UnitAmount).
		Optional("quantityAtDate", e.QuantityAtDate).
		Optional("autoGenerated", e.AutoGenerated)
	return w.MarshalJSON()
}

// MarshalJSON implements a stable field order for contribution details.
func (d ContributionDetail) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("assetId", d.AssetID).
		Append("ticker", d.Ticker).
		Append("quantity", d.Quantity).
		Append("price", d.Price)
	return w.MarshalJSON()
}

// MarshalJSON implements a stable field order for contributions.
func (c Contribution) MarshalJSON() ([]byte, error) {
	w := &jsonObjectWriter{}
	w.Append("id", c.ID).
		Append("date", c.Date).
		Append("total", c.Total).
		Append("outOfPocket", c.OutOfPocket).
		Append("reinvested", c.Reinvested)
	if len(c.Details) > 0 {
		w.Append("details", c.Details)
	}
	return w.MarshalJSON()
}

// encodeRecord writes a single record line: the kind discriminator followed
// by the record's own fields.
func encodeRecord(w io.Writer, kind string, v any) error {
	obj := &jsonObjectWriter{}
	obj.Append("record", kind).EmbedFrom(v)
	data, err := obj.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to marshal %s record: %w", kind, err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("failed to write %s record: %w", kind, err)
	}
	return nil
}

// EncodeLedger persists a ledger to an io.Writer in JSONL format, in
// canonical record order. Earnings and contributions are re-sorted by date
// first, so encoding is also the formatting operation.
func EncodeLedger(w io.Writer, ledger *Ledger) error {
	decimal.MarshalJSONWithoutQuotes = true
	ledger.stableSort()

	settings := &jsonObjectWriter{}
	settings.Append("currency", ledger.currency)
	if err := encodeRecord(w, recordSettings, settings); err != nil {
		return err
	}
	for _, c := range ledger.classes {
		if err := encodeRecord(w, recordClass, c); err != nil {
			return err
		}
	}
	for _, a := range ledger.assets {
		if err := encodeRecord(w, recordAsset, a); err != nil {
			return err
		}
	}
	for _, e := range ledger.earnings {
		if err := encodeRecord(w, recordEarning, e); err != nil {
			return err
		}
	}
	for _, c := range ledger.contributions {
		if err := encodeRecord(w, recordContribution, c); err != nil {
			return err
		}
	}
	return nil
}

// jmoney is a specialized struct to read an amount in two fields.
type jmoney struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

func (j jmoney) money(fallback string) Money {
	c := j.Currency
	if c == "" {
		c = fallback
	}
	return M(j.Amount, c)
}

// jdetail is a specialized struct for decoding contribution details.
type jdetail struct {
	AssetID  string   `json:"assetId"`
	Ticker   string   `json:"ticker"`
	Quantity Quantity `json:"quantity"`
	Price    jmoney   `json:"price"`
}

// DecodeLedger reads records from a stream of JSONL data, decodes each line
// into the appropriate entity through its validating constructor, and
// returns a sorted Ledger.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	n := 0
	for scanner.Scan() {
		n++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}

		var identifier struct {
			Record string `json:"record"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return nil, fmt.Errorf("could not identify record on line %d: %w", n, err)
		}

		var err error
		switch identifier.Record {
		case recordSettings:
			var temp struct {
				Currency string `json:"currency"`
			}
			if err = json.Unmarshal(lineBytes, &temp); err == nil {
				ledger.SetCurrency(temp.Currency)
			}

		case recordClass:
			var temp struct {
				ID            string  `json:"id"`
				Name          string  `json:"name"`
				TargetPercent float64 `json:"targetPercent"`
			}
			if err = json.Unmarshal(lineBytes, &temp); err == nil {
				var c AssetClass
				if c, err = NewAssetClass(temp.ID, temp.Name, Percent(temp.TargetPercent)); err == nil {
					err = ledger.AddClass(c)
				}
			}

		case recordAsset:
			var temp struct {
				ID            string   `json:"id"`
				Ticker        string   `json:"ticker"`
				ClassID       string   `json:"classId"`
				Quantity      Quantity `json:"quantity"`
				PurchaseDate  Date     `json:"purchaseDate"`
				PurchasePrice jmoney   `json:"purchasePrice"`
				CurrentPrice  jmoney   `json:"currentPrice"`
				ManualPrice   bool     `json:"manualPrice"`
				TargetPercent float64  `json:"targetPercent"`
			}
			if err = json.Unmarshal(lineBytes, &temp); err == nil {
				var a Asset
				a, err = NewAsset(temp.ID, temp.Ticker, temp.ClassID, temp.Quantity,
					temp.PurchaseDate,
					temp.PurchasePrice.money(ledger.currency),
					temp.CurrentPrice.money(ledger.currency))
				if err == nil {
					a.ManualPrice = temp.ManualPrice
					a.TargetPercent = Percent(temp.TargetPercent)
					ledger.assets = append(ledger.assets, a)
				}
			}

		case recordEarning:
			var temp struct {
				ID             string   `json:"id"`
				AssetTicker    string   `json:"assetTicker"`
				Date           Date     `json:"date"`
				Type           string   `json:"type"`
				Received       jmoney   `json:"received"`
				Reinvested     jmoney   `json:"reinvested"`
				Withdrawn      jmoney   `json:"withdrawn"`
				UnitAmount     jmoney   `json:"unitAmount"`
				QuantityAtDate Quantity `json:"quantityAtDate"`
				AutoGenerated  bool     `json:"autoGenerated"`
			}
			if err = json.Unmarshal(lineBytes, &temp); err == nil {
				var e Earning
				e, err = NewEarning(temp.ID, temp.AssetTicker, temp.Date, temp.Type,
					temp.Received.money(ledger.currency),
					temp.Reinvested.money(ledger.currency),
					temp.Withdrawn.money(ledger.currency),
					temp.UnitAmount.money(ledger.currency),
					temp.QuantityAtDate, temp.AutoGenerated)
				if err == nil {
					ledger.earnings = append(ledger.earnings, e)
				}
			}

		case recordContribution:
			var temp struct {
				ID          string    `json:"id"`
				Date        Date      `json:"date"`
				Total       jmoney    `json:"total"`
				OutOfPocket jmoney    `json:"outOfPocket"`
				Reinvested  jmoney    `json:"reinvested"`
				Details     []jdetail `json:"details"`
			}
			if err = json.Unmarshal(lineBytes, &temp); err == nil {
				details := make([]ContributionDetail, 0, len(temp.Details))
				for _, d := range temp.Details {
					details = append(details, ContributionDetail{
						AssetID:  d.AssetID,
						Ticker:   d.Ticker,
						Quantity: d.Quantity,
						Price:    d.Price.money(ledger.currency),
					})
				}
				var c Contribution
				c, err = NewContribution(temp.ID, temp.Date,
					temp.Total.money(ledger.currency),
					temp.OutOfPocket.money(ledger.currency),
					temp.Reinvested.money(ledger.currency),
					details)
				if err == nil {
					ledger.contributions = append(ledger.contributions, c)
				}
			}

		default:
			err = fmt.Errorf("unknown record kind %q", identifier.Record)
		}

		if err != nil {
			return nil, fmt.Errorf("format error on line %d: %w", n, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading from input: %w", err)
	}

	ledger.stableSort()
	return ledger, nil
}
