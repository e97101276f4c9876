package carteira

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"
)

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLiteStore(filepath.Join(t.TempDir(), "book.sqlite"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	if _, err := s.Read(ColHoldings); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Read of missing collection = %v, want fs.ErrNotExist", err)
	}

	if err := s.Write(ColBalance, []byte("1000")); err != nil {
		t.Fatal(err)
	}
	// Writing again overwrites the row.
	if err := s.Write(ColBalance, []byte("500")); err != nil {
		t.Fatal(err)
	}
	data, err := s.Read(ColBalance)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "500" {
		t.Errorf("Read = %s, want 500", data)
	}
}

func TestSQLiteStoreBookRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "book.sqlite")
	s, err := OpenSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}

	b := NewBook()
	if err := b.Deposit(Today(), BRL(1000)); err != nil {
		t.Fatal(err)
	}
	h, err := b.Buy(BuyOrder{Name: "PETR4", Type: "acao", Quantity: Q(10), UnitPrice: BRL(50)})
	if err != nil {
		t.Fatal(err)
	}
	if err := SaveBook(s, b); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen the file like a fresh process would.
	s, err = OpenSQLiteStore(path)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	back, err := LoadBook(s)
	if err != nil {
		t.Fatal(err)
	}
	if !back.Balance().Equal(BRL(500)) {
		t.Errorf("balance = %s, want %s", back.Balance(), BRL(500))
	}
	if _, ok := back.Holding(h.ID); !ok {
		t.Error("holding lost in the round trip")
	}
}
