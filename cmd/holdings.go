package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira/renderer"

	"github.com/google/subcommands"
)

type holdingsCmd struct {
	ids bool
}

func (*holdingsCmd) Name() string     { return "holdings" }
func (*holdingsCmd) Synopsis() string { return "list the assets in the portfolio" }
func (*holdingsCmd) Usage() string {
	return `cta holdings [-ids]

  Lists every holding with its position, prices and return. Use -ids to
  print the holding ids needed by sell, dividend, edit, price and rm.
`
}

func (p *holdingsCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&p.ids, "ids", false, "Print holding ids instead of the table.")
}

func (p *holdingsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	if p.ids {
		for _, h := range b.Holdings() {
			fmt.Printf("%s\t%s\n", h.ID, h.Name)
		}
		return subcommands.ExitSuccess
	}

	printMarkdown(renderer.HoldingsMarkdown(b.Holdings(), b))
	return subcommands.ExitSuccess
}
