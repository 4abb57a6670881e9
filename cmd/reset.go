package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete all stored data" }
func (*resetCmd) Usage() string {
	return `dz reset [-f]

  Deletes the stored blob entirely. The next command starts from the
  default empty grid. Asks for confirmation unless -f is given.

Usage Examples:
$ dz reset
`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Reset without asking for confirmation.")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if _, err := loadUnlocked(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	if !c.force && !confirm("Delete all stored data?") {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	if err := openStorage().Clear(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Println("All data deleted.")
	return subcommands.ExitSuccess
}
