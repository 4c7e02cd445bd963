package fifolot

// Lot is a purchase batch tracked for FIFO consumption: either a single buy or
// the aggregation of all same-day buys of one security.
//
// RemainingQty and RemainingCost are mutated only by the matcher while sells
// consume the lot. The invariant 0 <= RemainingQty <= Quantity holds at all
// times, and RemainingCost tracks RemainingQty at the lot's unit price.
type Lot struct {
	Scrip         string
	Segment       string
	Date          Date
	Quantity      Quantity // original quantity
	Price         Money    // unit price, quantity-weighted when aggregated
	RemainingQty  Quantity
	RemainingCost Money
	ClientCode    string
	OrderNo       string // original order ref, or "Aggregated-{date}"
	Trades        int    // number of source trades, 1 when not aggregated

	pos int // earliest original row position among source trades
}

// lotQueue is the matcher's per-security FIFO of open lots: one flat arena
// with a head index advancing as lots are fully consumed, no physical removal.
type lotQueue struct {
	lots []*Lot
	head int
}

func (q *lotQueue) push(l *Lot) { q.lots = append(q.lots, l) }

// peek returns the oldest open lot, or nil when the queue is exhausted.
func (q *lotQueue) peek() *Lot {
	if q.head >= len(q.lots) {
		return nil
	}
	return q.lots[q.head]
}

func (q *lotQueue) advance() { q.head++ }
