// Package cmd implements the CLI application to manage the debt ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/rsaleh/daftar"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&showCmd{}, "ledger")
	c.Register(&setCmd{}, "ledger")
	c.Register(&labelCmd{}, "ledger")
	c.Register(&fillDateCmd{}, "ledger")
	c.Register(&clearNameCmd{}, "ledger")
	c.Register(&rateCmd{}, "ledger")

	c.Register(&searchCmd{}, "search")

	c.Register(&exportCmd{}, "data")
	c.Register(&importCmd{}, "data")
	c.Register(&inspectCmd{}, "data")
	c.Register(&resetCmd{}, "data")

	c.Register(&lockCmd{}, "lock")
	c.Register(&unlockCmd{}, "lock")

	c.Register(&meditateCmd{}, "ai")
	c.Register(&chatCmd{}, "ai")

	c.Register(&topicCmd{}, "help")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var dataPath = flag.String("data-path", defaultDataPath(), "Path to the data directory holding the ledger blob")
var password = flag.String("p", "", "Password to unlock a protected ledger")

func defaultDataPath() string {
	if p := os.Getenv("DAFTAR_PATH"); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daftar"
	}
	return home + "/.daftar"
}

// openStorage returns the app storage at the configured data path.
func openStorage() *daftar.Storage {
	return daftar.NewStorage(*dataPath)
}

// loadUnlocked loads the current state and verifies the password gate.
// A wrong password is reported inline and nothing else happens.
func loadUnlocked() (*daftar.AppData, error) {
	d := openStorage().Load()
	if d.Locked() && !d.CheckPassword(*password) {
		return nil, fmt.Errorf("incorrect password (use -p)")
	}
	return d, nil
}

// saveAndReport persists the state and surfaces the save result; the
// autosave contract is explicit even when there is nothing the user can do
// about a failure. The success message, if any, is printed only once the
// blob is durably written, so a failed save never reads like a success.
func saveAndReport(d *daftar.AppData, success string) subcommands.ExitStatus {
	if err := openStorage().Save(d); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if success != "" {
		fmt.Println(success)
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
