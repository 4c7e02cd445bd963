package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fifolot"
	"github.com/google/subcommands"
)

// checkCmd holds the flags for the 'check' subcommand.
type checkCmd struct {
	config  string
	verbose bool
}

func (*checkCmd) Name() string     { return "check" }
func (*checkCmd) Synopsis() string { return "validate a trade file without producing output" }
func (*checkCmd) Usage() string {
	return `flm check [-config <file>] <trades.csv>

  Normalizes the trade file and validates chronological order per security,
  reporting malformed rows and out-of-order securities. No output files are
  written. Exits non-zero when any warning was found, so the check can gate
  a pipeline.
`
}

func (c *checkCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "Path to the YAML configuration file.")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging.")
}

func (c *checkCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "check expects exactly one trade file argument")
		return subcommands.ExitUsageError
	}
	log := newLogger(c.verbose)

	cfg, err := loadConfig(c.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	rows, err := readTrades(f.Arg(0), cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	res := fifolot.Run(rows, cfg.Currency, cfg.Options())
	logDiagnostics(log, res.Diagnostics)

	processed := 0
	for _, status := range res.Securities {
		if status.Processed {
			processed++
		}
	}
	log.Info().
		Int("rows", len(rows)).
		Int("securities", len(res.Securities)).
		Int("processed", processed).
		Msg("trade file checked")

	if res.Diagnostics.HasWarnings() {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
