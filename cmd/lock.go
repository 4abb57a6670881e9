package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type lockCmd struct{}

func (*lockCmd) Name() string     { return "lock" }
func (*lockCmd) Synopsis() string { return "protect the ledger with a password" }
func (*lockCmd) Usage() string {
	return `dz lock <password>

  Sets a password on the ledger. Subsequent commands need -p <password>.
  The password is stored in plain text inside the blob: the lock keeps
  casual eyes out, it is not encryption.

Usage Examples:
$ dz lock "my-secret"
`
}

func (*lockCmd) SetFlags(_ *flag.FlagSet) {}

func (c *lockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 || f.Arg(0) == "" {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveAndReport(d.SetPassword(f.Arg(0)), "Ledger locked.")
}

type unlockCmd struct{}

func (*unlockCmd) Name() string     { return "unlock" }
func (*unlockCmd) Synopsis() string { return "remove the password protection" }
func (*unlockCmd) Usage() string {
	return `dz unlock -p <password>

  Removes the password from the ledger. The current password must be
  given with -p; a wrong one is reported and the ledger stays locked.

Usage Examples:
$ dz unlock -p "my-secret"
`
}

func (*unlockCmd) SetFlags(_ *flag.FlagSet) {}

func (c *unlockCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return saveAndReport(d.ClearPassword(), "Password removed.")
}
