package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fifolot/renderer"
	"github.com/google/subcommands"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// publishCmd holds the flags for the 'publish' subcommand.
type publishCmd struct {
	config  string
	output  string
	title   string
	verbose bool
}

func (*publishCmd) Name() string     { return "publish" }
func (*publishCmd) Synopsis() string { return "render the full matching report as an HTML page" }
func (*publishCmd) Usage() string {
	return `flm publish [-config <file>] [-o <report.html>] [-title <title>] <trades.csv>

  Runs the matching and renders the full report (summary, remaining lots,
  diagnostics) as a standalone HTML page, ready to share or archive.
`
}

func (c *publishCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "Path to the YAML configuration file.")
	f.StringVar(&c.output, "o", "report.html", "Path for the generated HTML report.")
	f.StringVar(&c.title, "title", "FIFO Matching Report", "Title of the HTML page.")
	f.BoolVar(&c.verbose, "v", false, "Verbose logging.")
}

func (c *publishCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "publish expects exactly one trade file argument")
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

	markdown := renderer.ReportMarkdown(res)

	// GFM for the tables.
	gm := goldmark.New(goldmark.WithExtensions(extension.GFM))
	var body bytes.Buffer
	if err := gm.Convert([]byte(markdown), &body); err != nil {
		fmt.Fprintf(os.Stderr, "cannot render report HTML: %v\n", err)
		return subcommands.ExitFailure
	}

	var page bytes.Buffer
	fmt.Fprintf(&page, "<!DOCTYPE html>\n<html><head><meta charset=%q><title>%s</title></head>\n<body>\n", "utf-8", c.title)
	page.Write(body.Bytes())
	page.WriteString("</body></html>\n")

	if err := os.WriteFile(c.output, page.Bytes(), 0644); err != nil {
		fmt.Fprintf(os.Stderr, "cannot write %q: %v\n", c.output, err)
		return subcommands.ExitFailure
	}
	log.Info().Str("file", c.output).Msg("report published")
	return subcommands.ExitSuccess
}
