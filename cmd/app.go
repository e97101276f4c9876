// Package cmd implements the CLI application to manage the investment book.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"carteira"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package calls Register() to declare the subcommands, and Execute()
// on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&buyCmd{}, "trading")
	c.Register(&sellCmd{}, "trading")
	c.Register(&dividendCmd{}, "trading")
	c.Register(&transferCmd{}, "trading")

	c.Register(&editCmd{}, "maintenance")
	c.Register(&rmCmd{}, "maintenance")
	c.Register(&priceCmd{}, "maintenance")
	c.Register(&typesCmd{}, "maintenance")

	c.Register(&txCmd{}, "reporting")
	c.Register(&holdingsCmd{}, "reporting")
	c.Register(&summaryCmd{}, "reporting")
	c.Register(&historyCmd{}, "reporting")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application it is short lived, so global flags are fine.

var dataDir = flag.String("data", defaultDataDir(), "Directory holding the book's JSON collections")
var dbFile = flag.String("db", "", "SQLite database file for the book. Overrides -data")

func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".carteira"
	}
	return filepath.Join(home, ".carteira")
}

// openStore opens the persistence backend selected by the global flags.
func openStore() (carteira.Store, error) {
	if *dbFile != "" {
		return carteira.OpenSQLiteStore(*dbFile)
	}
	return carteira.NewDirStore(*dataDir)
}

// loadBook opens the store and loads the book from it. The caller owns the
// returned store and must Close it.
func loadBook() (*carteira.Book, carteira.Store, error) {
	s, err := openStore()
	if err != nil {
		return nil, nil, err
	}
	b, err := carteira.LoadBook(s)
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	return b, s, nil
}

// commit saves the book back to its store.
func commit(s carteira.Store, b *carteira.Book) subcommands.ExitStatus {
	if err := carteira.SaveBook(s, b); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving book: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when rendering fails (e.g. output is not a terminal).
func printMarkdown(content string) {
	out, err := glamour.RenderWithEnvironmentConfig(content)
	if err != nil {
		fmt.Print(content)
		return
	}
	fmt.Print(out)
}

// parseDay parses an optional -date flag value; empty means today.
func parseDay(s string) (carteira.Date, error) {
	if s == "" {
		return carteira.Today(), nil
	}
	return carteira.ParseDate(s)
}
