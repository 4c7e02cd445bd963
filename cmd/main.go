// Package cmd implements the CLI application around the FIFO lot-matching
// engine. A main package registers Commands on a subcommands.Commander and
// executes the user-selected one.
package cmd

import (
	"fmt"
	"os"

	"github.com/etnz/fifolot"
	"github.com/google/subcommands"
)

// Commands is the list of all flm subcommands, in help order.
var Commands = []subcommands.Command{
	&matchCmd{},
	&checkCmd{},
	&lotsCmd{},
	&summaryCmd{},
	&importCmd{},
	&publishCmd{},
	&assistCmd{},
	&topicCmd{},
}

// loadConfig loads the run configuration. When no path is given it falls back
// to .flm.yaml in the working directory if that file exists.
func loadConfig(path string) (*fifolot.Config, error) {
	if path == "" {
		if _, err := os.Stat(".flm.yaml"); err == nil {
			path = ".flm.yaml"
		}
	}
	return fifolot.LoadConfig(path)
}

// readTrades opens and decodes the trade CSV with the configured headings.
func readTrades(path string, cfg *fifolot.Config) ([]fifolot.RawTrade, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cannot open trade file %q: %w", path, err)
	}
	defer f.Close()
	rows, err := fifolot.DecodeTrades(f, cfg.Columns)
	if err != nil {
		return nil, fmt.Errorf("cannot decode trade file %q: %w", path, err)
	}
	return rows, nil
}

// runPipeline reads the trade file and runs the full matching pipeline.
func runPipeline(path string, cfg *fifolot.Config) (*fifolot.Result, error) {
	rows, err := readTrades(path, cfg)
	if err != nil {
		return nil, err
	}
	return fifolot.Run(rows, cfg.Currency, cfg.Options()), nil
}
