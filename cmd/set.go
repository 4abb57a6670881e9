package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar"
)

type setCmd struct{}

func (*setCmd) Name() string     { return "set" }
func (*setCmd) Synopsis() string { return "set a single field of a ledger row" }
func (*setCmd) Usage() string {
	return `dz set <row> <field> <value>

  Replaces one field of the row at the given index. <field> is one of
  name, lira, dollar, category, date. Any text is accepted, amounts
  included: numbers are only interpreted when totals are computed.

Usage Examples:
$ dz set 12 name "Ali"
$ dz set 12 lira 2500
$ dz set 12 date 2024-06-01
`
}

func (*setCmd) SetFlags(_ *flag.FlagSet) {}

func (c *setCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 3 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid row index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	field, err := daftar.ParseField(f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}

	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err = d.UpdateRecordField(index, field, f.Arg(2))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveAndReport(d, "")
}
