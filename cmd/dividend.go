package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type dividendCmd struct {
	date    string
	id      string
	perUnit float64
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record dividends received for a holding" }
func (*dividendCmd) Usage() string {
	return `cta dividend -id <holding> -per-unit <amount> [-date <YYYY-MM-DD>]

  Credits per-unit × held quantity to the brokerage balance and adds it to
  the holding's accumulated dividends.
`
}

func (p *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Payment date. Defaults to today.")
	f.StringVar(&p.id, "id", "", "Holding id (see cta holdings).")
	f.Float64Var(&p.perUnit, "per-unit", 0, "Dividend received per unit.")
}

func (p *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day, err := parseDay(p.date)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing date: %v\n", err)
		return subcommands.ExitUsageError
	}

	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := b.Dividend(day, p.id, carteira.BRL(p.perUnit)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := commit(s, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Dividends recorded, balance is now %s\n", b.Balance())
	return subcommands.ExitSuccess
}
