package fifolot

import "fmt"

// newLot builds a Lot from a single buy record. The cost basis comes from the
// reported BuyAmount when one is present, falling back to qty x price.
func newLot(t TradeRecord, rounding int32) *Lot {
	cost := t.BuyAmount
	if !cost.IsPositive() {
		cost = t.BuyPrice.Mul(t.BuyQty)
	}
	cost = cost.Round(rounding)
	return &Lot{
		Scrip:         t.Scrip,
		Segment:       t.Segment,
		Date:          t.Date,
		Quantity:      t.BuyQty,
		Price:         t.BuyPrice,
		RemainingQty:  t.BuyQty,
		RemainingCost: cost,
		ClientCode:    t.ClientCode,
		OrderNo:       t.OrderNo,
		Trades:        1,
		pos:           t.pos,
	}
}

// aggregateSameDay collapses consecutive-by-date buys of one security into one
// lot per trade date: summed quantity, quantity-weighted average price, summed
// cost. Buys must be for the same security and in original file order; the
// aggregated lot keeps the earliest source row position so aggregation never
// changes the lot's place in the security's stream.
func aggregateSameDay(buys []TradeRecord, rounding int32) []*Lot {
	byDate := make(map[Date]*Lot)
	var out []*Lot
	for _, t := range buys {
		single := newLot(t, rounding)
		agg, ok := byDate[t.Date]
		if !ok {
			byDate[t.Date] = single
			out = append(out, single)
			continue
		}
		agg.Quantity = agg.Quantity.Add(single.Quantity)
		agg.RemainingQty = agg.Quantity
		agg.RemainingCost = agg.RemainingCost.Add(single.RemainingCost).Round(rounding)
		agg.Price = agg.RemainingCost.DivQuantity(agg.Quantity).Round(rounding)
		agg.Trades++
		agg.OrderNo = fmt.Sprintf("Aggregated-%s", agg.Date)
		if single.pos < agg.pos {
			agg.pos = single.pos
		}
	}
	return out
}
