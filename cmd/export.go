package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar"
)

type exportCmd struct{}

func (*exportCmd) Name() string     { return "export" }
func (*exportCmd) Synopsis() string { return "print the data blob for manual backup" }
func (*exportCmd) Usage() string {
	return `dz export

  Prints the whole application state as a single JSON blob on stdout.
  Keep it anywhere; dz import takes the same text back.

Usage Examples:
$ dz export > backup.json
`
}

func (*exportCmd) SetFlags(_ *flag.FlagSet) {}

func (c *exportCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	blob, err := daftar.Export(d)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error exporting: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Print(blob)
	return subcommands.ExitSuccess
}
