package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type editCmd struct {
	id       string
	name     string
	typ      string
	qty      float64
	avg      float64
	current  float64
	dividend float64
}

func (*editCmd) Name() string     { return "edit" }
func (*editCmd) Synopsis() string { return "correct the stored fields of a holding" }
func (*editCmd) Usage() string {
	return `cta edit -id <holding> -qty <quantity> -avg <average price> [-name <name>] [-type <type>] [-current <price>] [-dividend <per unit>]

  Replaces the fields of a holding without writing a ledger entry. The
  change in cost basis is settled against the brokerage balance; a cost
  increase the balance cannot cover is rejected.
`
}

func (p *editCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Holding id (see cta holdings).")
	f.StringVar(&p.name, "name", "", "New asset name. Unchanged when empty.")
	f.StringVar(&p.typ, "type", "", "New asset type id. Unchanged when empty.")
	f.Float64Var(&p.qty, "qty", 0, "New quantity of units.")
	f.Float64Var(&p.avg, "avg", 0, "New average price per unit.")
	f.Float64Var(&p.current, "current", 0, "New current price per unit. Defaults to the average price.")
	f.Float64Var(&p.dividend, "dividend", 0, "Extra dividends per unit to add.")
}

func (p *editCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	err = b.EditHolding(p.id, carteira.HoldingEdit{
		Name:            p.name,
		Type:            p.typ,
		Quantity:        carteira.Q(p.qty),
		AveragePrice:    carteira.BRL(p.avg),
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
	fmt.Printf("Holding updated, balance is now %s\n", b.Balance())
	return subcommands.ExitSuccess
}
