package carteira

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDirStore(t *testing.T) {
	s, err := NewDirStore(filepath.Join(t.TempDir(), "book"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Read(ColHoldings); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read of missing collection = %v, want fs.ErrNotExist", err)
	}

	if err := s.Write(ColHoldings, []byte(`[]`)); err != nil {
		t.Fatal(err)
	}
	data, err := s.Read(ColHoldings)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `[]` {
		t.Errorf("Read = %s", data)
	}
}

func TestLoadBookEmptyStore(t *testing.T) {
	s, err := NewDirStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	b, err := LoadBook(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(b.Holdings()) != 0 {
		t.Errorf("holdings = %d, want 0", len(b.Holdings()))
	}
	if !b.Balance().IsZero() {
		t.Errorf("balance = %s, want zero", b.Balance())
	}
	if len(b.Types()) != len(DefaultAssetTypes()) {
		t.Errorf("types = %d, want the defaults", len(b.Types()))
	}
	// Opening the book records today's (empty) snapshot.
	if _, ok := b.History().Get(Today()); !ok {
		t.Error("no snapshot for today after loading")
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	b := NewBook()
	if err := b.Deposit(Today(), BRL(1000)); err != nil {
		t.Fatal(err)
	}
	h, err := b.Buy(BuyOrder{Name: "PETR4", Type: "acao", Quantity: Q(10), UnitPrice: BRL(50)})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Dividend(Today(), h.ID, BRL(2)); err != nil {
		t.Fatal(err)
	}
	if _, err := b.AddType("Tesouro Direto"); err != nil {
		t.Fatal(err)
	}

	if err := SaveBook(s, b); err != nil {
		t.Fatalf("SaveBook() = %v", err)
	}

	back, err := LoadBook(s)
	if err != nil {
		t.Fatalf("LoadBook() = %v", err)
	}

	if !back.Balance().Equal(b.Balance()) {
		t.Errorf("balance = %s, want %s", back.Balance(), b.Balance())
	}
	got, ok := back.Holding(h.ID)
	if !ok {
		t.Fatal("holding lost in the round trip")
	}
	if !got.TotalInvested.Equal(BRL(500)) || !got.Dividends.Equal(BRL(20)) {
		t.Errorf("holding = %+v", got)
	}
	if !got.Return.Equal(BRL(20)) {
		t.Errorf("return = %s, want %s", got.Return, BRL(20))
	}
	if len(back.InvestmentEntries()) != 2 {
		t.Errorf("investment log = %d entries, want 2", len(back.InvestmentEntries()))
	}
	if len(back.GeneralEntries()) != 1 {
		t.Errorf("general log = %d entries, want 1", len(back.GeneralEntries()))
	}
	if len(back.Types()) != len(DefaultAssetTypes())+1 {
		t.Errorf("types = %d", len(back.Types()))
	}
}

func TestLoadBookCorruptCollection(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if err := os.WriteFile(filepath.Join(dir, string(ColHoldings)+".json"), []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := s.Write(ColBalance, []byte("750")); err != nil {
		t.Fatal(err)
	}

	// A corrupt collection degrades to empty instead of failing the load.
	b, err := LoadBook(s)
	if err != nil {
		t.Fatalf("LoadBook() = %v", err)
	}
	if len(b.Holdings()) != 0 {
		t.Errorf("holdings = %d, want 0", len(b.Holdings()))
	}
	if !b.Balance().Equal(BRL(750)) {
		t.Errorf("balance = %s, want %s", b.Balance(), BRL(750))
	}
}

func TestSaveBookKeepsForeignTransactions(t *testing.T) {
	dir := t.TempDir()
	s, err := NewDirStore(dir)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	foreign := `[{"id":"f-1","date":"2025-06-09","description":"Mercado","amount":120.5,"type":"despesa","category":"alimentacao"}]`
	if err := s.Write(ColTransactions, []byte(foreign)); err != nil {
		t.Fatal(err)
	}

	b, err := LoadBook(s)
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Deposit(Today(), BRL(100)); err != nil {
		t.Fatal(err)
	}
	if err := SaveBook(s, b); err != nil {
		t.Fatal(err)
	}

	back, err := LoadBook(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(back.GeneralEntries()) != 1 {
		t.Errorf("general log = %d entries, want 1", len(back.GeneralEntries()))
	}
	data, err := s.Read(ColTransactions)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `"id":"f-1"`) {
		t.Errorf("foreign transaction lost: %s", data)
	}
}
