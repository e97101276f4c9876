package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type priceCmd struct {
	id    string
	price float64
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "update the market price of a holding" }
func (*priceCmd) Usage() string {
	return `cta price -id <holding> -value <price>

  Records the observed market price per unit, recomputing the holding's
  market value and return.
`
}

func (p *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.id, "id", "", "Holding id (see cta holdings).")
	f.Float64Var(&p.price, "value", 0, "Market price per unit.")
}

func (p *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if err := b.UpdatePrice(p.id, carteira.BRL(p.price)); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	return commit(s, b)
}
