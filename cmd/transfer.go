package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type transferCmd struct {
	date     string
	deposit  float64
	withdraw float64
}

func (*transferCmd) Name() string     { return "transfer" }
func (*transferCmd) Synopsis() string { return "move cash into or out of the brokerage balance" }
func (*transferCmd) Usage() string {
	return `cta transfer (-deposit <amount> | -withdraw <amount>) [-date <YYYY-MM-DD>]

  Moves cash between the budget and the brokerage balance, recording the
  companion entry in the general transaction log. A withdrawal larger than
  the balance is rejected.
`
}

func (p *transferCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.date, "date", "", "Transfer date. Defaults to today.")
	f.Float64Var(&p.deposit, "deposit", 0, "Amount to move into the brokerage balance.")
	f.Float64Var(&p.withdraw, "withdraw", 0, "Amount to move out of the brokerage balance.")
}

func (p *transferCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.deposit == 0) == (p.withdraw == 0) {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -deposit or -withdraw is required.")
		return subcommands.ExitUsageError
	}

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

	if p.deposit != 0 {
		err = b.Deposit(day, carteira.BRL(p.deposit))
	} else {
		err = b.Withdraw(day, carteira.BRL(p.withdraw))
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := commit(s, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Balance is now %s\n", b.Balance())
	return subcommands.ExitSuccess
}
