package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"carteira/renderer"

	"github.com/google/subcommands"
)

type summaryCmd struct{}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "show the aggregate portfolio view" }
func (*summaryCmd) Usage() string {
	return `cta summary

  Shows the brokerage balance, the portfolio totals and the allocation by
  asset type.
`
}

func (*summaryCmd) SetFlags(f *flag.FlagSet) {}

func (p *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	printMarkdown(renderer.SummaryMarkdown(b.Summarize()))
	return subcommands.ExitSuccess
}
