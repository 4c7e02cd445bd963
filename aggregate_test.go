package fifolot

import "testing"

func TestAggregateSameDay_WeightedAverage(t *testing.T) {
	buys := records(
		rawBuy("ACME", "01/01/2023", "10", "100"),
		rawBuy("ACME", "01/01/2023", "20", "130"),
	)
	lots := aggregateSameDay(buys, 2)

	if len(lots) != 1 {
		t.Fatalf("len(lots) = %d, want 1", len(lots))
	}
	lot := lots[0]
	if !lot.Quantity.Equal(Q(30)) {
		t.Errorf("Quantity = %v, want 30", lot.Quantity)
	}
	// (10x100 + 20x130) / 30 = 120.0 exactly
	if !lot.Price.Equal(INR(120)) {
		t.Errorf("Price = %v, want 120", lot.Price)
	}
	if !lot.RemainingCost.Equal(INR(3600)) {
		t.Errorf("RemainingCost = %v, want 3600", lot.RemainingCost)
	}
	if lot.Trades != 2 {
		t.Errorf("Trades = %d, want 2", lot.Trades)
	}
	if got, want := lot.OrderNo, "Aggregated-01/01/2023"; got != want {
		t.Errorf("OrderNo = %q, want %q", got, want)
	}
}

func TestAggregateSameDay_SingleBuyKeepsOrderRef(t *testing.T) {
	buys := records(rawBuy("ACME", "01/01/2023", "10", "100"))
	lots := aggregateSameDay(buys, 2)

	if len(lots) != 1 {
		t.Fatalf("len(lots) = %d, want 1", len(lots))
	}
	if lots[0].Trades != 1 {
		t.Errorf("Trades = %d, want 1", lots[0].Trades)
	}
	if got, want := lots[0].OrderNo, "ORD-ACME-10"; got != want {
		t.Errorf("OrderNo = %q, want %q", got, want)
	}
}

func TestAggregateSameDay_BuyAmountPreferred(t *testing.T) {
	// The reported amount includes charges the naive qty x price misses.
	row := rawBuy("ACME", "01/01/2023", "10", "100")
	row.BuyAmount = "1005.50"
	lots := aggregateSameDay(records(row), 2)

	if !lots[0].RemainingCost.Equal(INR(1005.50)) {
		t.Errorf("RemainingCost = %v, want 1005.50", lots[0].RemainingCost)
	}
}

func TestAggregateSameDay_DistinctDatesStaySeparate(t *testing.T) {
	buys := records(
		rawBuy("ACME", "01/01/2023", "10", "100"),
		rawBuy("ACME", "02/01/2023", "20", "130"),
	)
	lots := aggregateSameDay(buys, 2)

	if len(lots) != 2 {
		t.Fatalf("len(lots) = %d, want 2", len(lots))
	}
	if !lots[0].Quantity.Equal(Q(10)) || !lots[1].Quantity.Equal(Q(20)) {
		t.Errorf("lots = %v,%v, want 10 and 20", lots[0].Quantity, lots[1].Quantity)
	}
}
