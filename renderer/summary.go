package renderer

import (
	"bytes"
	"fmt"

	"carteira"

	md "github.com/nao1215/markdown"
)

// SummaryMarkdown renders the aggregate portfolio view as a markdown
// document.
func SummaryMarkdown(s carteira.Summary) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Resumo da Carteira em %s", s.Date))
	doc.PlainText(fmt.Sprintf("Saldo na corretora: %s", s.Balance))
	doc.PlainText("")
	doc.PlainText(fmt.Sprintf("Valor de mercado: %s", s.TotalValue))
	doc.PlainText(fmt.Sprintf("Total investido: %s", s.TotalInvested))
	doc.PlainText(fmt.Sprintf("Dividendos recebidos: %s", s.TotalDividends))
	doc.PlainText(fmt.Sprintf("Retorno: %s", s.TotalReturn.SignedString()))

	if len(s.ByType) > 0 {
		doc.H2("Alocação por Tipo")
		rows := make([][]string, 0, len(s.ByType))
		for _, a := range s.ByType {
			rows = append(rows, []string{a.Type.Name, a.Value.String()})
		}
		doc.Table(md.TableSet{
			Header: []string{"Tipo", "Valor"},
			Rows:   rows,
		})
	}

	return doc.String()
}
