package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/fifolot/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the CLI for shell completion. Complete() handles the
// completion request and exits when the shell is asking for one.
func completion() {
	csvFiles := predict.Files("*.csv")
	withConfig := map[string]complete.Predictor{
		"config": predict.Files("*.yaml"),
		"v":      predict.Nothing,
	}
	cli := &complete.Command{
		Sub: map[string]*complete.Command{
			"match": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"o":      csvFiles,
					"s":      csvFiles,
					"v":      predict.Nothing,
				},
				Args: csvFiles,
			},
			"check": {Flags: withConfig, Args: csvFiles},
			"lots": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"scrip":  predict.Something,
					"v":      predict.Nothing,
				},
				Args: csvFiles,
			},
			"summary": {Flags: withConfig, Args: csvFiles},
			"import": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"o":      csvFiles,
				},
				Args: predict.Files("*.json"),
			},
			"publish": {
				Flags: map[string]complete.Predictor{
					"config": predict.Files("*.yaml"),
					"o":      predict.Files("*.html"),
					"title":  predict.Something,
					"v":      predict.Nothing,
				},
				Args: csvFiles,
			},
			"assist": {Flags: map[string]complete.Predictor{"config": predict.Files("*.yaml")}, Args: csvFiles},
			"topic":  {Args: predict.Something},
		},
	}
	cli.Complete("flm")
}

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
