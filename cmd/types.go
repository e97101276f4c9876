package cmd

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"

	md "github.com/nao1215/markdown"

	"github.com/google/subcommands"
)

type typesCmd struct {
	add    string
	rename string
	name   string
	rm     string
}

func (*typesCmd) Name() string     { return "types" }
func (*typesCmd) Synopsis() string { return "manage the asset type registry" }
func (*typesCmd) Usage() string {
	return `cta types [-add <name> | -rename <id> -name <name> | -rm <id>]

  Without flags, lists the registered asset types. A type still in use by a
  holding cannot be removed.
`
}

func (p *typesCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&p.add, "add", "", "Register a new type with the given display name.")
	f.StringVar(&p.rename, "rename", "", "Id of the type to rename (requires -name).")
	f.StringVar(&p.name, "name", "", "New display name for -rename.")
	f.StringVar(&p.rm, "rm", "", "Id of the type to remove.")
}

func (p *typesCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	b, s, err := loadBook()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	defer s.Close()

	switch {
	case p.add != "":
		t, err := b.AddType(p.add)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		if status := commit(s, b); status != subcommands.ExitSuccess {
			return status
		}
		fmt.Printf("Added type %s (%s)\n", t.Name, t.ID)
		return subcommands.ExitSuccess

	case p.rename != "":
		if err := b.RenameType(p.rename, p.name); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return commit(s, b)

	case p.rm != "":
		if err := b.RemoveType(p.rm); err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitFailure
		}
		return commit(s, b)
	}

	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)
	doc.H1("Tipos de Ativo")
	rows := make([][]string, 0)
	for _, t := range b.Types() {
		rows = append(rows, []string{t.ID, t.Name})
	}
	doc.Table(md.TableSet{Header: []string{"Id", "Nome"}, Rows: rows})
	printMarkdown(doc.String())
	return subcommands.ExitSuccess
}
