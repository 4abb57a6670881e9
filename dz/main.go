// Command dz manages a personal debt ledger from the terminal.
package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
	"github.com/rsaleh/daftar/cmd"
)

func main() {
	// Shell completion runs and exits here when invoked by the shell.
	completion().Complete("dz")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

func completion() *complete.Command {
	names := []string{
		"show", "set", "label", "fill-date", "clear-name", "rate",
		"search", "export", "import", "inspect", "reset",
		"lock", "unlock", "meditate", "chat", "topic",
	}
	sub := make(map[string]*complete.Command, len(names))
	for _, name := range names {
		sub[name] = &complete.Command{}
	}
	return &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"data-path": predict.Dirs("*"),
			"p":         predict.Nothing,
		},
	}
}
