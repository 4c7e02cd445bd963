package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fifolot/renderer"
	"github.com/google/subcommands"
)

// lotsCmd holds the flags for the 'lots' subcommand.
type lotsCmd struct {
	config  string
	scrip   string
	verbose bool
}

func (*lotsCmd) Name() string     { return "lots" }
func (*lotsCmd) Synopsis() string { return "display the remaining purchase lots" }
func (*lotsCmd) Usage() string {
	return `flm lots [-config <file>] [-scrip <name>] <trades.csv>

  Runs the matching and prints the remaining purchase lots as a table, without
  writing any file.
`
}

func (c *lotsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "Path to the YAML configuration file.")
	f.StringVar(&c.scrip, "scrip", "", "Only show lots for this scrip name.")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging.")
}

func (c *lotsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "lots expects exactly one trade file argument")
		return subcommands.ExitUsageError
	}

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
	logDiagnostics(newLogger(c.verbose), res.Diagnostics)

	lots := res.Lots
	if c.scrip != "" {
		lots = nil
		for _, l := range res.Lots {
			if l.Scrip == c.scrip {
				lots = append(lots, l)
			}
		}
	}
	printMarkdown(renderer.LotsMarkdown(lots))
	return subcommands.ExitSuccess
}
