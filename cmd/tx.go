package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"
	"carteira/renderer"

	"github.com/google/subcommands"
)

type txCmd struct {
	from    string
	to      string
	general bool
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list ledger entries" }
func (*txCmd) Usage() string {
	return `cta tx [-general] [-from <YYYY-MM-DD>] [-to <YYYY-MM-DD>]

  Lists the investment log (purchases, sales, dividends), or with -general
  the brokerage transfers of the general transaction log.
`
}

func (p *txCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.general, "general", false, "List brokerage transfers instead of investment entries.")
	f.StringVar(&p.from, "from", "", "Only entries on or after this date.")
	f.StringVar(&p.to, "to", "", "Only entries on or before this date.")
}

func (p *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	entries := b.InvestmentEntries()
	title := "Lançamentos de Investimento"
	if p.general {
		entries = b.GeneralEntries()
		title = "Transferências da Corretora"
	}

	if p.from != "" || p.to != "" {
		r, err := rangeFromFlags(p.from, p.to)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		var filtered []carteira.Entry
		for _, e := range entries {
			if r.Contains(e.When()) {
				filtered = append(filtered, e)
			}
		}
		entries = filtered
	}

	printMarkdown(renderer.EntriesMarkdown(title, entries))
	return subcommands.ExitSuccess
}

// rangeFromFlags builds a date range from optional -from and -to values,
// defaulting the missing end to an unbounded one.
func rangeFromFlags(from, to string) (carteira.Range, error) {
	start := carteira.NewDate(1, 1, 1)
	end := carteira.NewDate(9999, 12, 31)
	var err error
	if from != "" {
		if start, err = carteira.ParseDate(from); err != nil {
			return carteira.Range{}, fmt.Errorf("invalid -from date: %w", err)
		}
	}
	if to != "" {
		if end, err = carteira.ParseDate(to); err != nil {
			return carteira.Range{}, fmt.Errorf("invalid -to date: %w", err)
		}
	}
	return carteira.NewRange(start, end), nil
}
