package fifolot

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/PaesslerAG/jsonpath"
)

// this file contains the import/export formats around the engine: the trade
// CSV read format, the two CSV write formats, and the broker JSON import.

// Columns maps the logical trade fields to CSV header names, so files from
// brokers with different headings can be read without editing them.
type Columns struct {
	ClientCode string `yaml:"client_code"`
	TradeDate  string `yaml:"trade_date"`
	Segment    string `yaml:"segment"`
	ScripName  string `yaml:"scrip_name"`
	BuyQty     string `yaml:"buy_qty"`
	BuyPrice   string `yaml:"buy_price"`
	BuyAmount  string `yaml:"buy_amount"`
	SellQty    string `yaml:"sell_qty"`
	SellPrice  string `yaml:"sell_price"`
	SellAmount string `yaml:"sell_amount"`
	OrderNo    string `yaml:"order_no"`
}

// DefaultColumns returns the standard trade-sheet headings.
func DefaultColumns() Columns {
	return Columns{
		ClientCode: "ClientCode",
		TradeDate:  "TradeDate",
		Segment:    "Segment",
		ScripName:  "ScripName",
		BuyQty:     "BuyQty",
		BuyPrice:   "BuyPrice",
		BuyAmount:  "BuyAmount",
		SellQty:    "SellQty",
		SellPrice:  "SellPrice",
		SellAmount: "SellAmount",
		OrderNo:    "OrderNo",
	}
}

// DecodeTrades reads raw trade rows from a CSV file.
//
// The first row is the header. TradeDate, ScripName, BuyQty and SellQty are
// required; a file missing one of them is a configuration error and fails
// here, before the engine runs. The remaining columns are optional and read
// as empty when absent. Cell values are not validated here: normalization
// owns that, and drops bad rows without failing the run.
func DecodeTrades(r io.Reader, cols Columns) ([]RawTrade, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("cannot read trade CSV header: %w", err)
	}
	at := make(map[string]int, len(header))
	for i, name := range header {
		at[strings.TrimSpace(name)] = i
	}

	required := map[string]string{
		"TradeDate": cols.TradeDate,
		"ScripName": cols.ScripName,
		"BuyQty":    cols.BuyQty,
		"SellQty":   cols.SellQty,
	}
	for field, name := range required {
		if _, ok := at[name]; !ok {
			return nil, fmt.Errorf("trade CSV is missing required column %q (for %s)", name, field)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := at[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var rows []RawTrade
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("cannot read trade CSV row: %w", err)
		}
		rows = append(rows, RawTrade{
			ClientCode: cell(row, cols.ClientCode),
			TradeDate:  cell(row, cols.TradeDate),
			Segment:    cell(row, cols.Segment),
			ScripName:  cell(row, cols.ScripName),
			BuyQty:     cell(row, cols.BuyQty),
			BuyPrice:   cell(row, cols.BuyPrice),
			BuyAmount:  cell(row, cols.BuyAmount),
			SellQty:    cell(row, cols.SellQty),
			SellPrice:  cell(row, cols.SellPrice),
			SellAmount: cell(row, cols.SellAmount),
			OrderNo:    cell(row, cols.OrderNo),
		})
	}
	return rows, nil
}

// EncodeLots writes the remaining-purchases CSV, one row per lot with
// remaining quantity, dates in DD/MM/YYYY as in the source data.
func EncodeLots(w io.Writer, lots []Lot) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"ScripName", "Segment", "TradeDate", "BuyQty", "BuyPrice",
		"RemainingQty", "RemainingCost", "ClientCode", "OrderNo", "NumTrades",
	}); err != nil {
		return fmt.Errorf("cannot write remaining purchases header: %w", err)
	}
	for _, l := range lots {
		row := []string{
			l.Scrip,
			l.Segment,
			l.Date.String(),
			l.Quantity.String(),
			l.Price.Plain(),
			l.RemainingQty.String(),
			l.RemainingCost.Plain(),
			l.ClientCode,
			l.OrderNo,
			strconv.Itoa(l.Trades),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write remaining purchase for %q: %w", l.Scrip, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// EncodeSummaries writes the per-security summary CSV.
func EncodeSummaries(w io.Writer, rows []SummaryRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{
		"ScripName", "Total_Remaining_Shares", "Total_Remaining_Cost",
		"Earliest_Purchase", "Latest_Purchase", "Purchases_Count", "Avg_Cost_Per_Share",
	}); err != nil {
		return fmt.Errorf("cannot write summary header: %w", err)
	}
	for _, s := range rows {
		row := []string{
			s.Scrip,
			s.RemainingShares.String(),
			s.RemainingCost.Plain(),
			s.EarliestPurchase.String(),
			s.LatestPurchase.String(),
			strconv.Itoa(s.PurchasesCount),
			s.AvgCostPerShare.Plain(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write summary for %q: %w", s.Scrip, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ImportSpec describes how to lift trade rows out of a broker JSON export:
// a jsonpath selecting the row objects, and one jsonpath per trade field,
// evaluated against each row.
type ImportSpec struct {
	Rows   string            `yaml:"rows"`
	Fields map[string]string `yaml:"fields"`
}

// ImportJSON extracts raw trade rows from a broker JSON export using the
// jsonpath mapping in spec. A rows path that selects nothing is an error:
// jsonpath answers an empty list for a wildcard over a missing key, and a
// mistyped path silently importing zero trades is exactly the kind of
// misconfiguration that must not pass unnoticed. Fields without a mapping, or
// whose path resolves to nothing on a given row, come out empty and take the
// normalizer's zero treatment.
func ImportJSON(r io.Reader, spec ImportSpec) ([]RawTrade, error) {
	var doc any
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("cannot parse JSON export: %w", err)
	}

	jrows, err := jsonpath.Get(spec.Rows, doc)
	if err != nil {
		return nil, fmt.Errorf("cannot select rows with %q: %w", spec.Rows, err)
	}
	list, ok := jrows.([]any)
	if !ok {
		return nil, fmt.Errorf("rows path %q does not select a list, got %T", spec.Rows, jrows)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("rows path %q selected no rows", spec.Rows)
	}

	field := func(row any, name string) string {
		path, ok := spec.Fields[name]
		if !ok {
			return ""
		}
		jval, err := jsonpath.Get(path, row)
		if err != nil {
			return ""
		}
		// jsonpath is never clear about whether it returns a list of one
		// answer or a single answer: keep the first one if any.
		if jlist, ok := jval.([]any); ok {
			if len(jlist) == 0 {
				return ""
			}
			jval = jlist[0]
		}
		switch v := jval.(type) {
		case string:
			return v
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		case bool, nil:
			return ""
		default:
			return fmt.Sprint(v)
		}
	}

	rows := make([]RawTrade, 0, len(list))
	for _, jrow := range list {
		rows = append(rows, RawTrade{
			ClientCode: field(jrow, "ClientCode"),
			TradeDate:  field(jrow, "TradeDate"),
			Segment:    field(jrow, "Segment"),
			ScripName:  field(jrow, "ScripName"),
			BuyQty:     field(jrow, "BuyQty"),
			BuyPrice:   field(jrow, "BuyPrice"),
			BuyAmount:  field(jrow, "BuyAmount"),
			SellQty:    field(jrow, "SellQty"),
			SellPrice:  field(jrow, "SellPrice"),
			SellAmount: field(jrow, "SellAmount"),
			OrderNo:    field(jrow, "OrderNo"),
		})
	}
	return rows, nil
}
