package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/dpereira/investidor/cmd"
	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Shell completion for subcommand names. Complete exits on its own
	// when invoked by the shell.
	subs := make(map[string]*complete.Command)
	for _, c := range cmd.Commands {
		subs[c.Cmd.Name()] = &complete.Command{}
	}
	completer := &complete.Command{
		Sub: subs,
		Flags: map[string]complete.Predictor{
			"ledger-file": predict.Files("*.jsonl"),
		},
	}
	completer.Complete("ivd")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
