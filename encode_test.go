package carteira

import (
	"encoding/json"
	"strings"
	"testing"
	"time"
)

func TestInvestmentLogRoundTrip(t *testing.T) {
	day := NewDate(2025, time.June, 10)
	log := []Entry{
		NewPurchase(day, "inv-1", "PETR4", Q(10), BRL(50)),
		NewSale(day.Add(1), "inv-1", "PETR4", Q(5), BRL(80)),
		NewDividendPayment(day.Add(2), "inv-1", "PETR4", Q(5), BRL(2)),
	}

	data, err := encodeEntries(log)
	if err != nil {
		t.Fatal(err)
	}
	back, err := decodeInvestmentEntries(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(back) != len(log) {
		t.Fatalf("decoded %d entries, want %d", len(back), len(log))
	}
	for i := range log {
		if !log[i].Equal(back[i]) {
			t.Errorf("entry %d: got %+v, want %+v", i, back[i], log[i])
		}
	}
}

func TestInvestmentLogUnknownKind(t *testing.T) {
	data := []byte(`[{"id":"x","date":"2025-01-01","transactionType":"split"}]`)
	if _, err := decodeInvestmentEntries(data); err == nil {
		t.Fatal("decoding an unknown transaction type succeeded")
	}
}

func TestGeneralLogKeepsForeignRecords(t *testing.T) {
	day := NewDate(2025, time.June, 10)
	deposit := NewBrokerageDeposit(day, BRL(1000))

	// A grocery expense owned by another feature of the application.
	foreignRecord := json.RawMessage(`{"id":"f-1","date":"2025-06-09","description":"Mercado","amount":120.5,"type":"despesa","category":"alimentacao"}`)

	data, err := encodeGeneralLog([]Entry{deposit}, []json.RawMessage{foreignRecord})
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"category":"alimentacao"`) {
		t.Fatalf("foreign record missing from output: %s", data)
	}
	// Date ordering puts the foreign record (June 9) before the deposit.
	if i, j := strings.Index(string(data), "f-1"), strings.Index(string(data), deposit.ID()); i > j {
		t.Errorf("output not in date order: %s", data)
	}

	entries, foreign, err := decodeGeneralEntries(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || !entries[0].Equal(deposit) {
		t.Errorf("decoded entries = %+v, want the deposit", entries)
	}
	if len(foreign) != 1 {
		t.Fatalf("foreign records = %d, want 1", len(foreign))
	}
}

func TestGeneralLogLegacyCategoryDiscrimination(t *testing.T) {
	// Records written before the source field existed carry only the
	// category.
	data := []byte(`[
		{"id":"a","date":"2025-01-01","amount":100,"type":"despesa","category":"transferencia_corretora"},
		{"id":"b","date":"2025-01-02","amount":40,"type":"receita","category":"resgate_corretora"}
	]`)
	entries, foreign, err := decodeGeneralEntries(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(foreign) != 0 {
		t.Errorf("foreign = %d, want 0", len(foreign))
	}
	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(entries))
	}
	if _, ok := entries[0].(BrokerageDeposit); !ok {
		t.Errorf("first entry is %T, want BrokerageDeposit", entries[0])
	}
	if _, ok := entries[1].(BrokerageWithdraw); !ok {
		t.Errorf("second entry is %T, want BrokerageWithdraw", entries[1])
	}
}

func TestEntryWireShape(t *testing.T) {
	e := NewPurchase(NewDate(2025, time.June, 10), "inv-1", "PETR4", Q(10), BRL(50))
	data, err := json.Marshal(e)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"transactionType":"purchase"`, `"amount":500`, `"investmentId":"inv-1"`, `"quantity":10`, `"price":50`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshal missing %s: %s", key, data)
		}
	}

	d := NewBrokerageDeposit(NewDate(2025, time.June, 10), BRL(1000))
	data, err = json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	for _, key := range []string{`"type":"despesa"`, `"category":"transferencia_corretora"`, `"source":{"type":"brokerage_deposit"}`} {
		if !strings.Contains(string(data), key) {
			t.Errorf("marshal missing %s: %s", key, data)
		}
	}
}
