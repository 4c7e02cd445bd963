package fifolot

import "sort"

// SummaryRow aggregates one security's remaining lots.
type SummaryRow struct {
	Scrip            string
	RemainingShares  Quantity
	RemainingCost    Money
	EarliestPurchase Date
	LatestPurchase   Date
	PurchasesCount   int   // number of remaining lots
	AvgCostPerShare  Money // zero when no shares remain
}

// buildSummaries rolls remaining lots up per security, sorted by scrip so the
// output is deterministic whatever order securities were matched in.
func buildSummaries(lots []Lot) []SummaryRow {
	byScrip := make(map[string]*SummaryRow)
	for _, lot := range lots {
		row, ok := byScrip[lot.Scrip]
		if !ok {
			row = &SummaryRow{
				Scrip:            lot.Scrip,
				RemainingCost:    M(0, lot.RemainingCost.Currency()),
				EarliestPurchase: lot.Date,
				LatestPurchase:   lot.Date,
			}
			byScrip[lot.Scrip] = row
		}
		row.RemainingShares = row.RemainingShares.Add(lot.RemainingQty)
		row.RemainingCost = row.RemainingCost.Add(lot.RemainingCost)
		if lot.Date.Before(row.EarliestPurchase) {
			row.EarliestPurchase = lot.Date
		}
		if lot.Date.After(row.LatestPurchase) {
			row.LatestPurchase = lot.Date
		}
		row.PurchasesCount++
	}

	rows := make([]SummaryRow, 0, len(byScrip))
	for _, row := range byScrip {
		if row.RemainingShares.IsPositive() {
			row.AvgCostPerShare = row.RemainingCost.DivQuantity(row.RemainingShares).Round(2)
		} else {
			row.AvgCostPerShare = M(0, row.RemainingCost.Currency())
		}
		rows = append(rows, *row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Scrip < rows[j].Scrip })
	return rows
}
