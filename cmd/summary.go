package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fifolot/renderer"
	"github.com/google/subcommands"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	config  string
	verbose bool
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "display the per-security holdings summary" }
func (*summaryCmd) Usage() string {
	return `flm summary [-config <file>] <trades.csv>

  Runs the matching and prints the per-security summary of remaining holdings,
  without writing any file.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "Path to the YAML configuration file.")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging.")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "summary expects exactly one trade file argument")
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

	printMarkdown(renderer.SummaryMarkdown(res.Summaries))
	return subcommands.ExitSuccess
}
