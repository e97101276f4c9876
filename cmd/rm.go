package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira"

	"github.com/google/subcommands"
)

type rmCmd struct {
	holding string
	tx      string
	general bool
}

func (*rmCmd) Name() string     { return "rm" }
func (*rmCmd) Synopsis() string { return "delete a holding or a ledger entry" }
func (*rmCmd) Usage() string {
	return `cta rm (-holding <id> | -tx <id> [-general])

  Deleting a ledger entry reverses exactly the effect it had on the balance
  and holdings. Deleting a holding refunds its remaining cost basis minus
  the dividends already credited, and drops its ledger entries.
`
}

func (p *rmCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.holding, "holding", "", "Id of the holding to delete.")
	f.StringVar(&p.tx, "tx", "", "Id of the ledger entry to delete.")
	f.BoolVar(&p.general, "general", false, "Look up the entry in the general transaction log instead of the investment log.")
}

func (p *rmCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if (p.holding == "") == (p.tx == "") {
		fmt.Fprintln(os.Stderr, "Error: exactly one of -holding or -tx is required.")
		return subcommands.ExitUsageError
	}

	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if p.holding != "" {
		err = b.DeleteHolding(p.holding)
	} else {
		source := carteira.SourceInvestment
		if p.general {
			source = carteira.SourceGeneral
		}
		err = b.DeleteEntry(p.tx, source)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	if status := commit(s, b); status != subcommands.ExitSuccess {
		return status
	}
	fmt.Printf("Deleted, balance is now %s\n", b.Balance())
	return subcommands.ExitSuccess
}
