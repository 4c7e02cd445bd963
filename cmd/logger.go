package cmd

import (
	"os"

	"github.com/etnz/fifolot"
	"github.com/rs/zerolog"
)

// newLogger creates the console logger commands report diagnostics with.
// Output goes to stderr so report markdown and CSV on stdout stay clean.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// logDiagnostics reports every warning of a run through the logger.
func logDiagnostics(log zerolog.Logger, d fifolot.Diagnostics) {
	if d.DroppedRows > 0 {
		log.Warn().Int("rows", d.DroppedRows).Msg("malformed rows dropped at normalization")
	}
	for _, w := range d.OutOfOrder {
		e := log.Warn().
			Str("scrip", w.Scrip).
			Str("date", w.Date.String()).
			Str("previous", w.Previous.String()).
			Bool("skipped", w.Skipped)
		if w.Skipped {
			e.Msg("trades out of chronological order, security excluded")
		} else {
			e.Msg("trades out of chronological order, matched in file order")
		}
	}
	for _, w := range d.OverSells {
		log.Warn().
			Str("scrip", w.Scrip).
			Str("date", w.Date.String()).
			Str("shortfall", w.Shortfall.String()).
			Msg("sell exceeds available lots")
	}
}
