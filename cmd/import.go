package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar"
)

type importCmd struct{}

func (*importCmd) Name() string     { return "import" }
func (*importCmd) Synopsis() string { return "replace the ledger with an exported blob" }
func (*importCmd) Usage() string {
	return `dz import [<file>]

  Reads a blob produced by dz export (from the file, or stdin when no file
  is given) and replaces the current state with it entirely. A blob that
  fails the structural check is rejected with the offending field named,
  and the current state is left untouched. Short record sets are padded
  back to the full grid.

Usage Examples:
$ dz import backup.json
$ cat backup.json | dz import
`
}

func (*importCmd) SetFlags(_ *flag.FlagSet) {}

func (c *importCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var r io.Reader = os.Stdin
	if f.NArg() > 0 {
		file, err := os.Open(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", f.Arg(0), err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		r = file
	}

	// The gate applies to the current state before it is replaced.
	if _, err := loadUnlocked(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	text, err := io.ReadAll(r)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading blob: %v\n", err)
		return subcommands.ExitFailure
	}
	d, err := daftar.Import(string(text))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	d.Normalize()
	return saveAndReport(d, "Import successful.")
}
