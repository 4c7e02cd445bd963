package fifolot

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// RawTrade is one trade row as read from a file, all fields still textual.
type RawTrade struct {
	ClientCode string
	TradeDate  string
	Segment    string
	ScripName  string
	BuyQty     string
	BuyPrice   string
	BuyAmount  string
	SellQty    string
	SellPrice  string
	SellAmount string
	OrderNo    string
}

// Side classifies a trade record.
type Side int

const (
	// Noop is a record with zero quantity on both sides, inert and ignored.
	Noop Side = iota
	Buy
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "buy"
	case Sell:
		return "sell"
	}
	return "noop"
}

// TradeRecord is one normalized, typed trade. Exactly one of BuyQty and
// SellQty is positive on a meaningful record; a record with both zero is a
// Noop.
type TradeRecord struct {
	ClientCode string
	Date       Date
	Segment    string
	Scrip      string
	BuyQty     Quantity
	BuyPrice   Money
	BuyAmount  Money
	SellQty    Quantity
	SellPrice  Money
	SellAmount Money
	OrderNo    string

	pos int // original row position, load-bearing for ordering
}

// Side reports whether the record is a Buy, a Sell, or a Noop.
func (t TradeRecord) Side() Side {
	if t.BuyQty.IsPositive() {
		return Buy
	}
	if t.SellQty.IsPositive() {
		return Sell
	}
	return Noop
}

// numberCleaner strips thousands separators and currency glyphs that broker
// exports leave in numeric columns.
var numberCleaner = strings.NewReplacer(",", "", "₹", "", "$", "", "€", "", " ", "", " ", "")

// parseNumber coerces a raw numeric field to a decimal. Empty fields count as
// zero, matching the way broker files leave the unused side of a trade blank.
func parseNumber(s string) (decimal.Decimal, error) {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(s)
}

// parseQuantity cleans a raw quantity field the same way and parses it, empty
// counting as zero.
func parseQuantity(s string) (Quantity, error) {
	s = numberCleaner.Replace(strings.TrimSpace(s))
	if s == "" {
		return Quantity{}, nil
	}
	return ParseQuantity(s)
}

// Normalize validates and coerces raw rows into typed trade records.
//
// Malformed rows (unparseable date or number, negative quantity, or both buy
// and sell quantities positive) are dropped and counted, never fatal. Noop
// rows are kept: the engine skips them, but the count of meaningful records
// stays visible to the caller.
func Normalize(rows []RawTrade, currency string) (records []TradeRecord, dropped int) {
	records = make([]TradeRecord, 0, len(rows))
	for i, row := range rows {
		rec, err := normalizeOne(row, currency)
		if err != nil {
			dropped++
			continue
		}
		rec.pos = i
		records = append(records, rec)
	}
	return records, dropped
}

func normalizeOne(row RawTrade, currency string) (TradeRecord, error) {
	rec := TradeRecord{
		ClientCode: strings.TrimSpace(row.ClientCode),
		Segment:    strings.TrimSpace(row.Segment),
		Scrip:      strings.TrimSpace(row.ScripName),
		OrderNo:    strings.TrimSpace(row.OrderNo),
	}
	if rec.Scrip == "" {
		return rec, fmt.Errorf("missing scrip name")
	}

	var err error
	if rec.BuyQty, err = parseQuantity(row.BuyQty); err != nil {
		return rec, fmt.Errorf("invalid BuyQty %q: %w", row.BuyQty, err)
	}
	if rec.SellQty, err = parseQuantity(row.SellQty); err != nil {
		return rec, fmt.Errorf("invalid SellQty %q: %w", row.SellQty, err)
	}

	moneys := []struct {
		name string
		raw  string
		dst  *Money
	}{
		{"BuyPrice", row.BuyPrice, &rec.BuyPrice},
		{"BuyAmount", row.BuyAmount, &rec.BuyAmount},
		{"SellPrice", row.SellPrice, &rec.SellPrice},
		{"SellAmount", row.SellAmount, &rec.SellAmount},
	}
	for _, f := range moneys {
		v, err := parseNumber(f.raw)
		if err != nil {
			return rec, fmt.Errorf("invalid %s %q: %w", f.name, f.raw, err)
		}
		*f.dst = Money{value: v, cur: currency}
	}

	if rec.BuyQty.IsNegative() || rec.SellQty.IsNegative() {
		return rec, fmt.Errorf("negative quantity")
	}
	if rec.BuyQty.IsPositive() && rec.SellQty.IsPositive() {
		return rec, fmt.Errorf("record is both a buy and a sell")
	}

	if rec.Side() != Noop {
		d, err := ParseDate(row.TradeDate)
		if err != nil {
			return rec, err
		}
		rec.Date = d
	}
	return rec, nil
}
