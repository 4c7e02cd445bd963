// Package renderer builds the markdown views of a matching result: the
// remaining-lots table, the per-security summary, and the diagnostics
// section. The cmd package decides where the markdown goes (terminal, file,
// HTML).
package renderer

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/etnz/fifolot"
	md "github.com/nao1215/markdown"
)

// LotsMarkdown renders the remaining purchase lots, in original file order.
func LotsMarkdown(lots []fifolot.Lot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Remaining Purchases")
	if len(lots) == 0 {
		doc.PlainText("No remaining purchases: every lot was fully consumed.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Scrip", "Segment", "Date", "Bought", "Price", "Remaining", "Cost", "Order", "Trades"},
	}
	for _, l := range lots {
		table.Rows = append(table.Rows, []string{
			l.Scrip,
			l.Segment,
			l.Date.String(),
			l.Quantity.String(),
			l.Price.String(),
			l.RemainingQty.String(),
			l.RemainingCost.String(),
			l.OrderNo,
			strconv.Itoa(l.Trades),
		})
	}
	doc.Table(table)
	return doc.String()
}

// SummaryMarkdown renders the per-security summary table.
func SummaryMarkdown(rows []fifolot.SummaryRow) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Remaining Holdings Summary")
	if len(rows) == 0 {
		doc.PlainText("No holdings remain.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Scrip", "Shares", "Cost", "Earliest", "Latest", "Lots", "Avg Cost/Share"},
	}
	for _, s := range rows {
		table.Rows = append(table.Rows, []string{
			s.Scrip,
			s.RemainingShares.String(),
			s.RemainingCost.String(),
			s.EarliestPurchase.String(),
			s.LatestPurchase.String(),
			strconv.Itoa(s.PurchasesCount),
			s.AvgCostPerShare.String(),
		})
	}
	doc.Table(table)
	return doc.String()
}

// DiagnosticsMarkdown renders the warnings of a run. It returns an empty
// string when there is nothing to report, so callers can skip the section.
func DiagnosticsMarkdown(d fifolot.Diagnostics) string {
	if !d.HasWarnings() {
		return ""
	}
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Diagnostics")
	if d.DroppedRows > 0 {
		doc.PlainTextf("%d malformed row(s) dropped at normalization.", d.DroppedRows)
	}
	if len(d.OutOfOrder) > 0 {
		doc.H2("Out-of-Order Securities")
		var items []string
		for _, w := range d.OutOfOrder {
			action := "matched in file order anyway"
			if w.Skipped {
				action = "excluded from matching"
			}
			items = append(items, fmt.Sprintf("%s: trade dated %s appears after %s, %s", w.Scrip, w.Date, w.Previous, action))
		}
		doc.BulletList(items...)
	}
	if len(d.OverSells) > 0 {
		doc.H2("Over-Sells")
		var items []string
		for _, w := range d.OverSells {
			items = append(items, fmt.Sprintf("%s: sell on %s exceeds available lots by %s share(s)", w.Scrip, w.Date, w.Shortfall))
		}
		doc.BulletList(items...)
	}
	return doc.String()
}

// ReportMarkdown assembles the full report: summary, lots, diagnostics.
func ReportMarkdown(r *fifolot.Result) string {
	out := SummaryMarkdown(r.Summaries) + "\n" + LotsMarkdown(r.Lots)
	if diags := DiagnosticsMarkdown(r.Diagnostics); diags != "" {
		out += "\n" + diags
	}
	return out
}
