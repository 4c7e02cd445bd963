package fifolot

// This file builds the transient per-security ledger: the ordered stream of
// aggregated buy lots and sell events the matcher consumes.

// event is one step of a security's stream: either an open lot or a sell.
type event struct {
	date Date
	lot  *Lot        // nil for sells
	sell TradeRecord // valid when lot == nil
}

func (e event) isBuy() bool { return e.lot != nil }

// ledger is the per-security ordered sequence of lots and sells. It is
// transient: built, validated, consumed by the matcher, then discarded.
type ledger struct {
	scrip  string
	events []event
}

// newLedger assembles a security's stream from its trade records, in original
// file order, aggregating same-day buys into single lots.
func newLedger(scrip string, records []TradeRecord, rounding int32) *ledger {
	var buys []TradeRecord
	for _, t := range records {
		if t.Side() == Buy {
			buys = append(buys, t)
		}
	}
	lots := aggregateSameDay(buys, rounding)
	lotAt := make(map[int]*Lot, len(lots)) // earliest source position -> lot
	for _, l := range lots {
		lotAt[l.pos] = l
	}

	led := &ledger{scrip: scrip}
	for _, t := range records {
		switch t.Side() {
		case Buy:
			// Only the earliest buy of an aggregated group emits the lot; the
			// later same-day buys were folded into it.
			if l, ok := lotAt[t.pos]; ok {
				led.events = append(led.events, event{date: l.Date, lot: l})
			}
		case Sell:
			led.events = append(led.events, event{date: t.Date, sell: t})
		}
	}
	led.hoistSameDateBuys()
	return led
}

// hoistSameDateBuys reorders each maximal run of equal-date events so that buy
// lots come before sells, keeping file order inside each group. A sell dated
// the same day as a purchase is matched against that day's aggregated lot,
// never left unmatched because of intra-day record order. Events never move
// across different dates, so matching stays essentially in file order.
func (l *ledger) hoistSameDateBuys() {
	for i := 0; i < len(l.events); {
		j := i + 1
		for j < len(l.events) && l.events[j].date == l.events[i].date {
			j++
		}
		if j-i > 1 {
			run := l.events[i:j]
			ordered := make([]event, 0, len(run))
			for _, e := range run {
				if e.isBuy() {
					ordered = append(ordered, e)
				}
			}
			for _, e := range run {
				if !e.isBuy() {
					ordered = append(ordered, e)
				}
			}
			copy(run, ordered)
		}
		i = j
	}
}

// chronologyBreak returns the dates of the first record preceding its
// predecessor, or ok=false when the sequence is non-decreasing. It checks the
// raw record stream, before aggregation: a backdated buy that same-day
// grouping would fold into an earlier lot is still a break.
func chronologyBreak(records []TradeRecord) (at, prev Date, ok bool) {
	for i := 1; i < len(records); i++ {
		if records[i].Date.Before(records[i-1].Date) {
			return records[i].Date, records[i-1].Date, true
		}
	}
	return Date{}, Date{}, false
}
