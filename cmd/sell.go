package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type sellCmd struct {
	date  string
	id    string
	qty   float64
	price float64
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record the sale of an asset" }
func (*sellCmd) Usage() string {
	return `cta sell -id <holding> -price <unit price> [-qty <quantity>] [-date <YYYY-MM-DD>]

  Records a sale, crediting quantity × price to the brokerage balance. The
  cost basis and dividends of the holding are reduced proportionally, so
  the average price stays put. Omitting -qty sells the whole position;
  selling everything removes the holding.
`
}

func (p *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Sale date. Defaults to today.")
	f.StringVar(&p.id, "id", "", "Holding id (see cta holdings).")
	f.Float64Var(&p.qty, "qty", 0, "Quantity of units sold. Defaults to the whole position.")
	f.Float64Var(&p.price, "price", 0, "Price received per unit.")
}

func (p *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := b.Sell(day, p.id, carteira.Q(p.qty), carteira.BRL(p.price)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := commit(s, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Sold, balance is now %s\n", b.Balance())
	return subcommands.ExitSuccess
}
