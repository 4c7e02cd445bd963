// Package fifolot matches sell trades against purchase lots using the FIFO
// method, per security.
//
// The engine consumes a normalized stream of trade records, aggregates
// same-day purchases into lots, validates that each security's trades are in
// chronological order, and consumes lots oldest-first as sells arrive. It
// returns the lots that remain unsold, their cost basis, per-security
// summaries, and a diagnostics report. It performs no file I/O itself; the
// impexp functions and the cmd package provide the CSV/JSON glue around it.
package fifolot
