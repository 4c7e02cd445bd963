package fifolot

import "sort"

// Chronology selects how a security whose trades are not in chronological
// order is handled.
type Chronology int

const (
	// Strict excludes the security from matching entirely and reports it.
	Strict Chronology = iota
	// Lenient reports the security but matches its trades in file order
	// anyway, the way older trade sheets were processed.
	Lenient
)

// Options tune the matching engine.
type Options struct {
	// Rounding is the number of decimal places applied to costs at every
	// decrement, so repeated partial sales cannot drift.
	Rounding int32
	// Chronology is the out-of-order policy, Strict by default.
	Chronology Chronology
}

// DefaultOptions returns the engine defaults: costs rounded to 2 places,
// strict chronology.
func DefaultOptions() Options { return Options{Rounding: 2, Chronology: Strict} }

// OutOfOrderWarning reports a security whose trade dates go backwards.
type OutOfOrderWarning struct {
	Scrip    string
	Date     Date // offending event date
	Previous Date // date of the event already placed before it
	Skipped  bool // true when the security was excluded from matching
}

// OverSellWarning reports a sell that exceeded the lots available to date.
type OverSellWarning struct {
	Scrip     string
	Date      Date
	Shortfall Quantity // quantity that could not be matched
}

// Diagnostics carries every non-fatal condition the engine met, returned
// alongside the result instead of logged from inside the core.
type Diagnostics struct {
	DroppedRows int // malformed rows dropped at normalization
	OutOfOrder  []OutOfOrderWarning
	OverSells   []OverSellWarning
}

// HasWarnings reports whether any diagnostic was recorded.
func (d Diagnostics) HasWarnings() bool {
	return d.DroppedRows > 0 || len(d.OutOfOrder) > 0 || len(d.OverSells) > 0
}

// SecurityStatus is the tagged per-security outcome: matched, or excluded
// with a reason. It lets callers tell "no holdings" apart from "excluded
// because of a data issue".
type SecurityStatus struct {
	Processed bool
	Reason    string // set when not processed
}

// Result is the complete outcome of a matching run.
type Result struct {
	// Lots are the purchases with remaining quantity, in original file order.
	Lots []Lot
	// Summaries aggregates remaining lots per security, sorted by scrip.
	Summaries []SummaryRow
	// Securities maps every scrip seen to its processing status.
	Securities map[string]SecurityStatus
	Diagnostics Diagnostics
}

// Process matches sells against buys per security using FIFO and returns the
// remaining lots, summaries, and diagnostics. The input order of records is
// load-bearing: it is the tie-break for same-date trades and the order the
// chronological check validates. Process does not mutate records and keeps no
// state between calls.
func Process(records []TradeRecord, opts Options) *Result {
	if opts.Rounding <= 0 {
		opts.Rounding = DefaultOptions().Rounding
	}

	perScrip := make(map[string][]TradeRecord)
	var scrips []string
	for _, t := range records {
		if t.Side() == Noop {
			continue
		}
		if _, seen := perScrip[t.Scrip]; !seen {
			scrips = append(scrips, t.Scrip)
		}
		perScrip[t.Scrip] = append(perScrip[t.Scrip], t)
	}

	res := &Result{Securities: make(map[string]SecurityStatus, len(scrips))}
	for _, scrip := range scrips {
		if at, prev, broken := chronologyBreak(perScrip[scrip]); broken {
			skip := opts.Chronology == Strict
			res.Diagnostics.OutOfOrder = append(res.Diagnostics.OutOfOrder, OutOfOrderWarning{
				Scrip:    scrip,
				Date:     at,
				Previous: prev,
				Skipped:  skip,
			})
			if skip {
				res.Securities[scrip] = SecurityStatus{Reason: "trades out of chronological order"}
				continue
			}
		}

		led := newLedger(scrip, perScrip[scrip], opts.Rounding)
		lots := matchLedger(led, opts, &res.Diagnostics)
		res.Securities[scrip] = SecurityStatus{Processed: true}
		res.Lots = append(res.Lots, lots...)
	}

	// Restore original input order across securities.
	sort.SliceStable(res.Lots, func(i, j int) bool { return res.Lots[i].pos < res.Lots[j].pos })
	res.Summaries = buildSummaries(res.Lots)
	return res
}

// matchLedger runs the FIFO state machine over one security's stream and
// returns the lots left with remaining quantity.
func matchLedger(led *ledger, opts Options, diags *Diagnostics) []Lot {
	var queue lotQueue
	for _, e := range led.events {
		if e.isBuy() {
			queue.push(e.lot)
			continue
		}

		toSell := e.sell.SellQty
		for toSell.IsPositive() {
			lot := queue.peek()
			if lot == nil {
				diags.OverSells = append(diags.OverSells, OverSellWarning{
					Scrip:     led.scrip,
					Date:      e.date,
					Shortfall: toSell,
				})
				break
			}
			take := toSell.Min(lot.RemainingQty)
			lot.RemainingQty = lot.RemainingQty.Sub(take)
			toSell = toSell.Sub(take)
			if lot.RemainingQty.IsZero() {
				// Clamp: a fully consumed lot costs exactly zero, whatever
				// residual the rounded decrements would have left.
				lot.RemainingCost = M(0, lot.RemainingCost.Currency())
				queue.advance()
				continue
			}
			lot.RemainingCost = lot.RemainingCost.Sub(lot.Price.Mul(take)).Round(opts.Rounding)
			if lot.RemainingCost.IsNegative() {
				lot.RemainingCost = M(0, lot.RemainingCost.Currency())
			}
		}
	}

	var remaining []Lot
	for _, lot := range queue.lots {
		if lot.RemainingQty.IsPositive() {
			remaining = append(remaining, *lot)
		}
	}
	return remaining
}

// Run normalizes raw rows and processes them in one call, folding the
// dropped-row count into the result's diagnostics.
func Run(rows []RawTrade, currency string, opts Options) *Result {
	records, dropped := Normalize(rows, currency)
	res := Process(records, opts)
	res.Diagnostics.DroppedRows = dropped
	return res
}
