package cmd

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/fifolot"
	"github.com/google/subcommands"
)

// importCmd holds the flags for the 'import' subcommand.
type importCmd struct {
	config string
	output string
}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "convert a broker JSON export to the trade CSV format" }
func (*importCmd) Usage() string {
	return `flm import -config <file> [-o <trades.csv>] <export.json>

  Extracts trade rows from a broker JSON export using the jsonpath mapping of
  the configuration's import section, and writes them as a trade CSV ready for
  'flm match'.
`
}

func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.config, "config", "", "Path to the YAML configuration file with the import mapping.")
	f.StringVar(&c.output, "o", "trades.csv", "Path for the converted trade CSV.")
}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "import expects exactly one JSON export argument")
		return subcommands.ExitUsageError
	}

	cfg, err := loadConfig(c.config)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if cfg.Import.Rows == "" {
		fmt.Fprintln(os.Stderr, "the configuration has no import mapping (import.rows is empty)")
		return subcommands.ExitUsageError
	}

	in, err := os.Open(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot open JSON export %q: %v\n", f.Arg(0), err)
		return subcommands.ExitFailure
	}
	defer in.Close()

	rows, err := fifolot.ImportJSON(in, cfg.Import)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if err := writeCSV(c.output, func(w *os.File) error { return writeRawTrades(w, rows) }); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Imported %d trade rows into %s\n", len(rows), c.output)
	return subcommands.ExitSuccess
}

// writeRawTrades writes raw rows with the standard headings, the format
// DecodeTrades reads back by default.
func writeRawTrades(w *os.File, rows []fifolot.RawTrade) error {
	cw := csv.NewWriter(w)
	cols := fifolot.DefaultColumns()
	if err := cw.Write([]string{
		cols.ClientCode, cols.TradeDate, cols.Segment, cols.ScripName,
		cols.BuyQty, cols.BuyPrice, cols.BuyAmount,
		cols.SellQty, cols.SellPrice, cols.SellAmount, cols.OrderNo,
	}); err != nil {
		return err
	}
	for _, r := range rows {
		if err := cw.Write([]string{
			r.ClientCode, r.TradeDate, r.Segment, r.ScripName,
			r.BuyQty, r.BuyPrice, r.BuyAmount,
			r.SellQty, r.SellPrice, r.SellAmount, r.OrderNo,
		}); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}
