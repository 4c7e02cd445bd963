package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fifolot"
	"github.com/etnz/fifolot/renderer"
	"github.com/google/subcommands"
)

// matchCmd holds the flags for the 'match' subcommand.
type matchCmd struct {
	config    string
	remaining string
	summary   string
	verbose   bool
}

func (*matchCmd) Name() string     { return "match" }
func (*matchCmd) Synopsis() string { return "match sells against purchases and write remaining lots" }
func (*matchCmd) Usage() string {
	return `flm match [-config <file>] [-o <remaining.csv>] [-s <summary.csv>] <trades.csv>

  Reads the trade CSV, matches sells against purchase lots using FIFO, writes
  the remaining-purchases and summary CSV files, and prints the summary table.
  Warnings (dropped rows, out-of-order securities, over-sells) go to stderr.
`
}

func (c *matchCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "Path to the YAML configuration file.")
	f.StringVar(&c.remaining, "o", "remaining_purchases.csv", "Path for the remaining-purchases CSV.")
	f.StringVar(&c.summary, "s", "remaining_summary.csv", "Path for the summary CSV.")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging.")
}

func (c *matchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "match expects exactly one trade file argument")
		return subcommands.ExitUsageError
	}
	log := newLogger(c.verbose)

	cfg, err := loadConfig(c.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	res, err := runPipeline(f.Arg(0), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	logDiagnostics(log, res.Diagnostics)

	if err := writeCSV(c.remaining, func(w *os.File) error { return fifolot.EncodeLots(w, res.Lots) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("file", c.remaining).Int("lots", len(res.Lots)).Msg("remaining purchases written")

	if err := writeCSV(c.summary, func(w *os.File) error { return fifolot.EncodeSummaries(w, res.Summaries) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("file", c.summary).Int("securities", len(res.Summaries)).Msg("summary written")

	printMarkdown(renderer.SummaryMarkdown(res.Summaries))
	return subcommands.ExitSuccess
}

// writeCSV creates the file and hands it to the encode function.
func writeCSV(path string, encode func(*os.File) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("cannot create %q: %w", path, err)
	}
	defer f.Close()
	if err := encode(f); err != nil {
		return fmt.Errorf("cannot write %q: %w", path, err)
	}
	return nil
}
