package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira/renderer"

	"github.com/google/subcommands"
)

type historyCmd struct {
	from string
	to   string
}

func (*historyCmd) Name() string     { return "history" }
func (*historyCmd) Synopsis() string { return "show the daily portfolio history" }
func (*historyCmd) Usage() string {
	return `cta history [-from <YYYY-MM-DD>] [-to <YYYY-MM-DD>]

  Shows the daily snapshots of total value, invested amount and dividends.
  Days the book was not touched have no snapshot.
`
}

func (p *historyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.from, "from", "", "Only snapshots on or after this date.")
	f.StringVar(&p.to, "to", "", "Only snapshots on or before this date.")
}

func (p *historyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	h := b.History()
	if p.from != "" || p.to != "" {
		r, err := rangeFromFlags(p.from, p.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		h = h.Between(r)
	}

	printMarkdown(renderer.HistoryMarkdown(h))
	return subcommands.ExitSuccess
}
