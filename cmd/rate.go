package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type rateCmd struct{}

func (*rateCmd) Name() string     { return "rate" }
func (*rateCmd) Synopsis() string { return "update the displayed exchange rate" }
func (*rateCmd) Usage() string {
	return `dz rate <value>

  Stores the lira/dollar exchange rate shown alongside the grid. The rate
  is display context only, stored amounts are never converted. A value
  that does not parse falls back to the default 10000 rather than failing.

Usage Examples:
$ dz rate 13500
`
}

func (*rateCmd) SetFlags(_ *flag.FlagSet) {}

func (c *rateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d = d.SetExchangeRate(f.Arg(0))
	return saveAndReport(d, fmt.Sprintf("Exchange rate set to %v", d.Settings.ExchangeRate))
}
