package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar/renderer"
)

type showCmd struct {
	all bool
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display the ledger grid" }
func (*showCmd) Usage() string {
	return `dz show [-a]

  Displays the ledger grid. By default only populated rows are shown; -a
  renders all 200 slots.

Usage Examples:
$ dz show
$ dz show -a
`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.all, "a", false, "Show all rows, empty slots included.")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.GridMarkdown(d, c.all))
	return subcommands.ExitSuccess
}
