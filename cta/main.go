package main

import (
	"context"
	"flag"
	"os"
	"path"

	"carteira/cmd"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// completion describes the command tree for shell completion. Install with:
//
//	COMP_INSTALL=1 cta
var completion = &complete.Command{
	Flags: map[string]complete.Predictor{
		"data": predict.Dirs("*"),
		"db":   predict.Files("*"),
	},
	Sub: map[string]*complete.Command{
		"buy":      {Flags: map[string]complete.Predictor{"name": predict.Nothing, "type": predict.Nothing, "qty": predict.Nothing, "price": predict.Nothing, "current": predict.Nothing, "dividend": predict.Nothing, "date": predict.Nothing}},
		"sell":     {Flags: map[string]complete.Predictor{"id": predict.Nothing, "qty": predict.Nothing, "price": predict.Nothing, "date": predict.Nothing}},
		"dividend": {Flags: map[string]complete.Predictor{"id": predict.Nothing, "per-unit": predict.Nothing, "date": predict.Nothing}},
		"transfer": {Flags: map[string]complete.Predictor{"deposit": predict.Nothing, "withdraw": predict.Nothing, "date": predict.Nothing}},
		"edit":     {Flags: map[string]complete.Predictor{"id": predict.Nothing, "name": predict.Nothing, "type": predict.Nothing, "qty": predict.Nothing, "avg": predict.Nothing, "current": predict.Nothing, "dividend": predict.Nothing}},
		"rm":       {Flags: map[string]complete.Predictor{"holding": predict.Nothing, "tx": predict.Nothing, "general": predict.Nothing}},
		"price":    {Flags: map[string]complete.Predictor{"id": predict.Nothing, "value": predict.Nothing}},
		"types":    {Flags: map[string]complete.Predictor{"add": predict.Nothing, "rename": predict.Nothing, "name": predict.Nothing, "rm": predict.Nothing}},
		"tx":       {Flags: map[string]complete.Predictor{"general": predict.Nothing, "from": predict.Nothing, "to": predict.Nothing}},
		"holdings": {Flags: map[string]complete.Predictor{"ids": predict.Nothing}},
		"summary":  {},
		"history":  {Flags: map[string]complete.Predictor{"from": predict.Nothing, "to": predict.Nothing}},
		"topic":    {Args: predict.Set{"readme", "getting-started", "trading", "transfers", "types", "history", "*"}},
	},
}

func main() {
	completion.Complete("cta")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
