package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type buyCmd struct {
	date     string
	name     string
	typ      string
	qty      float64
	price    float64
	current  float64
	dividend float64
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record the purchase of an asset" }
func (*buyCmd) Usage() string {
	return `cta buy -name <name> -type <type> -qty <quantity> -price <unit price> [-current <price>] [-dividend <per unit>] [-date <YYYY-MM-DD>]

  Records a purchase, paying quantity × price from the brokerage balance.
  A purchase of an existing name and type merges into that holding at the
  weighted average price. The purchase is rejected if the balance cannot
  cover the cost.
`
}

func (p *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Purchase date. Defaults to today.")
	f.StringVar(&p.name, "name", "", "Asset name.")
	f.StringVar(&p.typ, "type", "", "Asset type id (see cta types).")
	f.Float64Var(&p.qty, "qty", 0, "Quantity of units bought.")
	f.Float64Var(&p.price, "price", 0, "Price paid per unit.")
	f.Float64Var(&p.current, "current", 0, "Current market price per unit. Defaults to the price paid.")
	f.Float64Var(&p.dividend, "dividend", 0, "Dividends per unit already received.")
}

func (p *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	h, err := b.Buy(carteira.BuyOrder{
		Date:            day,
		Name:            p.name,
		Type:            p.typ,
		Quantity:        carteira.Q(p.qty),
		UnitPrice:       carteira.BRL(p.price),
		CurrentPrice:    carteira.BRL(p.current),
		PerUnitDividend: carteira.BRL(p.dividend),
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := commit(s, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Bought %s of %s, balance is now %s\n", carteira.Q(p.qty), h.Name, b.Balance())
	return subcommands.ExitSuccess
}
