package renderer

import (
	"bytes"

	"carteira"

	md "github.com/nao1215/markdown"
)

// typeNamer resolves a type id to its display name.
type typeNamer interface {
	TypeName(id string) string
}

// HoldingsMarkdown renders the holdings table as a markdown document.
func HoldingsMarkdown(holdings []carteira.Holding, names typeNamer) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Ativos")
	if len(holdings) == 0 {
		doc.PlainText("Nenhum ativo na carteira.")
		return doc.String()
	}

	rows := make([][]string, 0, len(holdings))
	for _, h := range holdings {
		rows = append(rows, []string{
			h.Name,
			names.TypeName(h.Type),
			h.Quantity.String(),
			h.AveragePrice.String(),
			h.CurrentPrice.String(),
			h.TotalInvested.String(),
			h.TotalValue.String(),
			h.Dividends.String(),
			h.Return.SignedString(),
		})
	}
	doc.Table(md.TableSet{
		Header: []string{"Ativo", "Tipo", "Qtd", "Preço Médio", "Preço Atual", "Investido", "Valor", "Dividendos", "Retorno"},
		Rows:   rows,
	})

	return doc.String()
}
