package fifolot

// INR is a helper for tests to create rupee money from const
func INR(v float64) Money { return M(v, "INR") }

// rawBuy is a helper to build a raw buy row for one scrip.
func rawBuy(scrip, date, qty, price string) RawTrade {
	return RawTrade{
		ClientCode: "C001",
		TradeDate:  date,
		Segment:    "EQ",
		ScripName:  scrip,
		BuyQty:     qty,
		BuyPrice:   price,
		OrderNo:    "ORD-" + scrip + "-" + qty,
	}
}

// rawSell is a helper to build a raw sell row for one scrip.
func rawSell(scrip, date, qty string) RawTrade {
	return RawTrade{
		ClientCode: "C001",
		TradeDate:  date,
		Segment:    "EQ",
		ScripName:  scrip,
		SellQty:    qty,
		SellPrice:  "100",
		OrderNo:    "ORD-S-" + scrip + "-" + qty,
	}
}

// records normalizes raw rows and fails the helper's caller on drops.
func records(rows ...RawTrade) []TradeRecord {
	recs, dropped := Normalize(rows, "INR")
	if dropped != 0 {
		panic("test fixture rows must normalize cleanly")
	}
	return recs
}
