package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/google/subcommands"
)

type fillDateCmd struct {
	date string
}

func (*fillDateCmd) Name() string     { return "fill-date" }
func (*fillDateCmd) Synopsis() string { return "stamp a date on a row and every row after it" }
func (*fillDateCmd) Usage() string {
	return `dz fill-date [-d <date>] <row>

  Sets the date on the row at the given index and on every subsequent row,
  overwriting dates already present: the cursor advances, it does not fill
  only blanks. Defaults to today.

Usage Examples:
$ dz fill-date 12
$ dz fill-date -d 2024-06-01 12
`
}

func (c *fillDateCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Date to stamp (YYYY-MM-DD), defaults to today.")
}

func (c *fillDateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	index, err := strconv.Atoi(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid row index %q: %v\n", f.Arg(0), err)
		return subcommands.ExitUsageError
	}
	date := c.date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	} else if _, err := time.Parse("2006-01-02", date); err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid date %q, want YYYY-MM-DD: %v\n", date, err)
		return subcommands.ExitUsageError
	}

	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err = d.FillDateFrom(index, date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveAndReport(d, "")
}
