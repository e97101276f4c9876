package renderer

import (
	"bytes"
	"fmt"

	"carteira"

	md "github.com/nao1215/markdown"
)

// Entry renders a single ledger entry to a one-line string.
func Entry(e carteira.Entry) string {
	switch v := e.(type) {
	case carteira.Purchase:
		return fmt.Sprintf("Compra de %s %s a %s (%s)", v.Quantity, v.InvestmentName, v.Price, v.Amount)
	case carteira.Sale:
		return fmt.Sprintf("Venda de %s %s a %s (%s)", v.Quantity, v.InvestmentName, v.Price, v.Amount)
	case carteira.DividendPayment:
		return fmt.Sprintf("Dividendos de %s: %s por unidade (%s)", v.InvestmentName, v.PerUnit, v.Amount)
	case carteira.BrokerageDeposit:
		return fmt.Sprintf("Aporte na corretora de %s", v.Amount)
	case carteira.BrokerageWithdraw:
		return fmt.Sprintf("Resgate da corretora de %s", v.Amount)
	default:
		return string(e.Kind())
	}
}

// EntriesMarkdown renders a ledger as a markdown document, one section per
// day, newest first.
func EntriesMarkdown(title string, entries []carteira.Entry) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(title)
	if len(entries) == 0 {
		doc.PlainText("Nenhum lançamento.")
		return doc.String()
	}

	var day carteira.Date
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.When() != day {
			day = e.When()
			doc.H2(day.String())
		}
		doc.BulletList(fmt.Sprintf("`%s` %s", e.ID(), Entry(e)))
	}

	return doc.String()
}
