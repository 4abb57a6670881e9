package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/google/subcommands"
)

type labelCmd struct{}

func (*labelCmd) Name() string     { return "label" }
func (*labelCmd) Synopsis() string { return "rename a column header" }
func (*labelCmd) Usage() string {
	return `dz label <column> <text>

  Replaces the display label of a column (0 to 4). Labels carry no
  semantics, the column order is fixed.

Usage Examples:
$ dz label 1 "SYP"
`
}

func (*labelCmd) SetFlags(_ *flag.FlagSet) {}

func (c *labelCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid column index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}

	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err = d.UpdateColumnLabel(index, f.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveAndReport(d, "")
}
