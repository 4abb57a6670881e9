package cmd

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
)

type clearNameCmd struct {
	force bool
}

func (*clearNameCmd) Name() string     { return "clear-name" }
func (*clearNameCmd) Synopsis() string { return "clear every row belonging to a person" }
func (*clearNameCmd) Usage() string {
	return `dz clear-name [-f] <name>

  Resets all fields (except the row id) on every row whose name equals
  <name> exactly, case included. The rows stay in place as empty slots.
  Asks for confirmation unless -f is given.

Usage Examples:
$ dz clear-name "Ali"
`
}

func (c *clearNameCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "f", false, "Clear without asking for confirmation.")
}

func (c *clearNameCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	name := f.Arg(0)

	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	if !c.force && !confirm(fmt.Sprintf("Clear all rows of %q?", name)) {
		fmt.Println("Aborted.")
		return subcommands.ExitSuccess
	}
	return saveAndReport(d.ClearRecordsMatchingName(name), "")
}

// confirm asks a yes/no question on the terminal.
func confirm(question string) bool {
	fmt.Printf("%s [y/N] ", question)
	answer, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	return strings.TrimSpace(strings.ToLower(answer)) == "y"
}
