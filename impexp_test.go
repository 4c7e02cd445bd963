package fifolot

import (
	"strings"
	"testing"
)

const sampleCSV = `ClientCode,TradeDate,Segment,ScripName,BuyQty,BuyPrice,BuyAmount,SellQty,SellPrice,SellAmount,OrderNo
C001,01/01/2023,EQ,ACME,10,100,1000,,,,B1
C001,01/01/2023,EQ,ACME,20,130,2600,,,,B2
C001,01/02/2023,EQ,ACME,,,,15,140,2100,S1
`

func TestDecodeTrades(t *testing.T) {
	rows, err := DecodeTrades(strings.NewReader(sampleCSV), DefaultColumns())
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[0].ScripName != "ACME" || rows[0].BuyQty != "10" || rows[0].OrderNo != "B1" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	if rows[2].SellQty != "15" {
		t.Errorf("rows[2].SellQty = %q, want 15", rows[2].SellQty)
	}
}

func TestDecodeTrades_RemappedColumns(t *testing.T) {
	csv := "Scrip Name,Trade Date,Buy Qty,Sell Qty\nACME,01/01/2023,10,\n"
	cols := DefaultColumns()
	cols.ScripName = "Scrip Name"
	cols.TradeDate = "Trade Date"
	cols.BuyQty = "Buy Qty"
	cols.SellQty = "Sell Qty"

	rows, err := DecodeTrades(strings.NewReader(csv), cols)
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	if len(rows) != 1 || rows[0].ScripName != "ACME" || rows[0].BuyQty != "10" {
		t.Errorf("rows = %+v", rows)
	}
	// Optional columns missing from the file read as empty.
	if rows[0].BuyPrice != "" || rows[0].OrderNo != "" {
		t.Errorf("optional columns should be empty, got %+v", rows[0])
	}
}

func TestDecodeTrades_MissingRequiredColumn(t *testing.T) {
	csv := "ClientCode,Segment,ScripName,BuyQty,SellQty\nC001,EQ,ACME,10,\n"
	_, err := DecodeTrades(strings.NewReader(csv), DefaultColumns())
	if err == nil {
		t.Fatalf("DecodeTrades() = nil error, want missing column error")
	}
	if !strings.Contains(err.Error(), "TradeDate") {
		t.Errorf("error %q does not name the missing column", err)
	}
}

func TestEncodeLots(t *testing.T) {
	rows, err := DecodeTrades(strings.NewReader(sampleCSV), DefaultColumns())
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	res := Run(rows, "INR", DefaultOptions())

	var b strings.Builder
	if err := EncodeLots(&b, res.Lots); err != nil {
		t.Fatalf("EncodeLots() error = %v", err)
	}
	want := "ScripName,Segment,TradeDate,BuyQty,BuyPrice,RemainingQty,RemainingCost,ClientCode,OrderNo,NumTrades\n" +
		"ACME,EQ,01/01/2023,30,120,15,1800,C001,Aggregated-01/01/2023,2\n"
	if b.String() != want {
		t.Errorf("EncodeLots() =\n%q\nwant\n%q", b.String(), want)
	}
}

func TestEncodeSummaries(t *testing.T) {
	rows, err := DecodeTrades(strings.NewReader(sampleCSV), DefaultColumns())
	if err != nil {
		t.Fatalf("DecodeTrades() error = %v", err)
	}
	res := Run(rows, "INR", DefaultOptions())

	var b strings.Builder
	if err := EncodeSummaries(&b, res.Summaries); err != nil {
		t.Fatalf("EncodeSummaries() error = %v", err)
	}
	want := "ScripName,Total_Remaining_Shares,Total_Remaining_Cost,Earliest_Purchase,Latest_Purchase,Purchases_Count,Avg_Cost_Per_Share\n" +
		"ACME,15,1800,01/01/2023,01/01/2023,1,120\n"
	if b.String() != want {
		t.Errorf("EncodeSummaries() =\n%q\nwant\n%q", b.String(), want)
	}
}

func TestImportJSON(t *testing.T) {
	export := `{
		"trades": [
			{"symbol": "ACME", "date": "01/01/2023", "buy": {"qty": 10, "price": 100.5}},
			{"symbol": "ACME", "date": "01/02/2023", "sell": {"qty": 5, "price": 140}}
		]
	}`
	spec := ImportSpec{
		Rows: "$.trades[*]",
		Fields: map[string]string{
			"ScripName": "$.symbol",
			"TradeDate": "$.date",
			"BuyQty":    "$.buy.qty",
			"BuyPrice":  "$.buy.price",
			"SellQty":   "$.sell.qty",
			"SellPrice": "$.sell.price",
		},
	}
	rows, err := ImportJSON(strings.NewReader(export), spec)
	if err != nil {
		t.Fatalf("ImportJSON() error = %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[0].ScripName != "ACME" || rows[0].BuyQty != "10" || rows[0].BuyPrice != "100.5" {
		t.Errorf("rows[0] = %+v", rows[0])
	}
	// The first row has no sell object: the field reads empty.
	if rows[0].SellQty != "" {
		t.Errorf("rows[0].SellQty = %q, want empty", rows[0].SellQty)
	}
	if rows[1].SellQty != "5" {
		t.Errorf("rows[1].SellQty = %q, want 5", rows[1].SellQty)
	}
}

func TestImportJSON_NoRowsSelected(t *testing.T) {
	// jsonpath answers an empty list, not an error, for a wildcard over a
	// missing key: both a mistyped rows path and an empty export must fail
	// loudly instead of importing zero trades.
	cases := []struct {
		name   string
		export string
		rows   string
	}{
		{"wrong rows path", `{"trades": [{"symbol": "ACME"}]}`, "$.nothing[*]"},
		{"empty export", `{"trades": []}`, "$.trades[*]"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := ImportJSON(strings.NewReader(c.export), ImportSpec{Rows: c.rows}); err == nil {
				t.Errorf("ImportJSON() = nil error, want rows selection error")
			}
		})
	}
}
