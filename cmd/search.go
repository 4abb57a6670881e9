package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/rsaleh/daftar"
	"github.com/rsaleh/daftar/renderer"
)

type searchCmd struct{}

func (*searchCmd) Name() string     { return "search" }
func (*searchCmd) Synopsis() string { return "find a person and show their totals" }
func (*searchCmd) Usage() string {
	return `dz search <query>

  Matches the query as a case-insensitive substring against row names and
  shows one summary per distinct matching name: row count, lira total and
  dollar total. Totals cover all rows with that exact name.

Usage Examples:
$ dz search ali
`
}

func (*searchCmd) SetFlags(_ *flag.FlagSet) {}

func (c *searchCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	query := strings.Join(f.Args(), " ")

	d, err := loadUnlocked()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	summaries := daftar.Search(d.Records, query)
	printMarkdown(renderer.SummariesMarkdown(query, summaries))
	return subcommands.ExitSuccess
}
