package renderer

import (
	"bytes"

	"carteira"

	md "github.com/nao1215/markdown"
)

// HistoryMarkdown renders the daily snapshot series as a markdown document.
func HistoryMarkdown(h carteira.History) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Evolução da Carteira")
	if len(h) == 0 {
		doc.PlainText("Nenhum registro no histórico.")
		return doc.String()
	}

	rows := make([][]string, 0, len(h))
	for _, s := range h {
		rows = append(rows, []string{
			s.Date.String(),
			s.TotalValue.String(),
			s.TotalInvested.String(),
			s.TotalDividends.String(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Data", "Valor", "Investido", "Dividendos"},
		Rows:   rows,
	})

	return doc.String()
}
