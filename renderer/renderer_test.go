package renderer

import (
	"strings"
	"testing"
	"time"

	"carteira"
)

type staticNames map[string]string

func (n staticNames) TypeName(id string) string {
	if name, ok := n[id]; ok {
		return name
	}
	return id
}

func TestSummaryMarkdown(t *testing.T) {
	s := carteira.Summary{
		Date:          carteira.NewDate(2026, time.March, 1),
		Balance:       carteira.BRL(500),
		TotalValue:    carteira.BRL(700),
		TotalInvested: carteira.BRL(600),
		TotalReturn:   carteira.BRL(100),
		ByType: []carteira.TypeAllocation{
			{Type: carteira.AssetType{ID: "acao", Name: "Ação"}, Value: carteira.BRL(700)},
		},
	}

	got := SummaryMarkdown(s)
	for _, want := range []string{"# Resumo da Carteira em 2026-03-01", "Alocação por Tipo", "Ação"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q:\n%s", want, got)
		}
	}
}

func TestHoldingsMarkdown(t *testing.T) {
	names := staticNames{"acao": "Ação"}

	if got := HoldingsMarkdown(nil, names); !strings.Contains(got, "Nenhum ativo") {
		t.Errorf("empty holdings rendering:\n%s", got)
	}

	holdings := []carteira.Holding{{ID: "inv-1", Name: "PETR4", Type: "acao"}}
	got := HoldingsMarkdown(holdings, names)
	for _, want := range []string{"PETR4", "Ação", "Preço Médio"} {
		if !strings.Contains(got, want) {
			t.Errorf("holdings missing %q:\n%s", want, got)
		}
	}
}

func TestHistoryMarkdown(t *testing.T) {
	h := carteira.History{
		{Date: carteira.NewDate(2026, time.March, 1), TotalValue: carteira.BRL(700)},
	}
	got := HistoryMarkdown(h)
	if !strings.Contains(got, "2026-03-01") {
		t.Errorf("history missing the snapshot date:\n%s", got)
	}
}

func TestEntry(t *testing.T) {
	day := carteira.NewDate(2026, time.March, 1)
	tests := []struct {
		entry carteira.Entry
		want  string
	}{
		{carteira.NewPurchase(day, "inv-1", "PETR4", carteira.Q(10), carteira.BRL(50)), "Compra de 10 PETR4"},
		{carteira.NewSale(day, "inv-1", "PETR4", carteira.Q(5), carteira.BRL(80)), "Venda de 5 PETR4"},
		{carteira.NewDividendPayment(day, "inv-1", "PETR4", carteira.Q(10), carteira.BRL(2)), "Dividendos de PETR4"},
		{carteira.NewBrokerageDeposit(day, carteira.BRL(1000)), "Aporte na corretora"},
		{carteira.NewBrokerageWithdraw(day, carteira.BRL(100)), "Resgate da corretora"},
	}
	for _, tt := range tests {
		if got := Entry(tt.entry); !strings.Contains(got, tt.want) {
			t.Errorf("Entry(%s) = %q, want it to contain %q", tt.entry.Kind(), got, tt.want)
		}
	}
}

func TestEntriesMarkdownGroupsByDay(t *testing.T) {
	day := carteira.NewDate(2026, time.March, 1)
	entries := []carteira.Entry{
		carteira.NewPurchase(day, "inv-1", "PETR4", carteira.Q(10), carteira.BRL(50)),
		carteira.NewPurchase(day.Add(1), "inv-1", "PETR4", carteira.Q(1), carteira.BRL(50)),
	}

	got := EntriesMarkdown("Lançamentos", entries)
	if !strings.Contains(got, "## 2026-03-01") || !strings.Contains(got, "## 2026-03-02") {
		t.Errorf("entries not grouped by day:\n%s", got)
	}
	// Newest day first.
	if strings.Index(got, "2026-03-02") > strings.Index(got, "2026-03-01") {
		t.Errorf("days not newest-first:\n%s", got)
	}
}
