package fifolot

import "testing"

func TestBuildSummaries(t *testing.T) {
	rows := []RawTrade{
		rawBuy("ACME", "01/01/2023", "10", "100"),
		rawBuy("ACME", "01/03/2023", "20", "130"),
		rawBuy("ZEN", "01/02/2023", "5", "50"),
	}
	res := Run(rows, "INR", DefaultOptions())

	if len(res.Summaries) != 2 {
		t.Fatalf("len(Summaries) = %d, want 2", len(res.Summaries))
	}
	acme := res.Summaries[0]
	if acme.Scrip != "ACME" {
		t.Fatalf("Summaries[0].Scrip = %q, want ACME", acme.Scrip)
	}
	if !acme.RemainingShares.Equal(Q(30)) {
		t.Errorf("RemainingShares = %v, want 30", acme.RemainingShares)
	}
	if !acme.RemainingCost.Equal(INR(3600)) {
		t.Errorf("RemainingCost = %v, want 3600", acme.RemainingCost)
	}
	if acme.EarliestPurchase != MustParseDate("01/01/2023") {
		t.Errorf("EarliestPurchase = %s, want 01/01/2023", acme.EarliestPurchase)
	}
	if acme.LatestPurchase != MustParseDate("01/03/2023") {
		t.Errorf("LatestPurchase = %s, want 01/03/2023", acme.LatestPurchase)
	}
	if acme.PurchasesCount != 2 {
		t.Errorf("PurchasesCount = %d, want 2", acme.PurchasesCount)
	}
	if !acme.AvgCostPerShare.Equal(INR(120)) {
		t.Errorf("AvgCostPerShare = %v, want 120", acme.AvgCostPerShare)
	}

	zen := res.Summaries[1]
	if zen.Scrip != "ZEN" || zen.PurchasesCount != 1 {
		t.Errorf("Summaries[1] = %+v, want one ZEN lot", zen)
	}
}

func TestBuildSummaries_NoLots(t *testing.T) {
	if got := buildSummaries(nil); len(got) != 0 {
		t.Errorf("buildSummaries(nil) = %v, want empty", got)
	}
}
