package carteira

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// Store is the persistence port of the book. Collections are independent
// JSON documents addressed by name; a Read of a collection that was never
// written returns fs.ErrNotExist.
type Store interface {
	Read(col Collection) ([]byte, error)
	Write(col Collection, data []byte) error
	Close() error
}

// DirStore persists each collection as a JSON file in a directory.
type DirStore struct {
	dir string
}

// NewDirStore creates the directory if needed and returns a store over it.
func NewDirStore(dir string) (*DirStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("cannot create store directory %q: %w", dir, err)
	}
	return &DirStore{dir: dir}, nil
}

func (s *DirStore) path(col Collection) string {
	return filepath.Join(s.dir, string(col)+".json")
}

// Read implements Store.
func (s *DirStore) Read(col Collection) ([]byte, error) {
	return os.ReadFile(s.path(col))
}

// Write implements Store.
func (s *DirStore) Write(col Collection, data []byte) error {
	return os.WriteFile(s.path(col), data, 0644)
}

// Close implements Store. A DirStore holds no resources.
func (s *DirStore) Close() error { return nil }

// LoadBook reads every collection from the store and assembles a book.
//
// Loading is forgiving: a missing collection yields its empty value, and a
// corrupt one is logged and replaced by its empty value rather than aborting
// the load. A negative brokerage balance is kept as found but logged. The
// load finishes by recording today's snapshot, so the history gains a point
// for every day the book is opened.
func LoadBook(s Store) (*Book, error) {
	b := NewBook()

	loadCol(s, ColHoldings, &b.holdings)
	for i := range b.holdings {
		b.holdings[i].refresh()
	}

	if data, ok := readCol(s, ColInvestmentLog); ok {
		entries, err := decodeInvestmentEntries(data)
		if err != nil {
			log.Printf("warning: collection %s is corrupt, starting empty: %v", ColInvestmentLog, err)
		} else {
			b.invLog = entries
		}
	}

	if data, ok := readCol(s, ColTransactions); ok {
		entries, foreign, err := decodeGeneralEntries(data)
		if err != nil {
			log.Printf("warning: collection %s is corrupt, starting empty: %v", ColTransactions, err)
		} else {
			b.genLog, b.foreign = entries, foreign
		}
	}

	loadCol(s, ColBalance, &b.balance)
	if b.balance.IsNegative() {
		log.Printf("warning: brokerage balance is negative (%s)", b.balance)
	}

	loadCol(s, ColHistory, &b.history)

	var types []AssetType
	loadCol(s, ColTypes, &types)
	if len(types) > 0 {
		b.types = types
	}

	b.snapshotToday()
	return b, nil
}

// readCol reads one collection, treating a missing one as absent and any
// other read failure as corruption.
func readCol(s Store, col Collection) ([]byte, bool) {
	data, err := s.Read(col)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false
	}
	if err != nil {
		log.Printf("warning: cannot read collection %s, starting empty: %v", col, err)
		return nil, false
	}
	return data, true
}

func loadCol[T any](s Store, col Collection, dst *T) {
	data, ok := readCol(s, col)
	if !ok {
		return
	}
	if err := json.Unmarshal(data, dst); err != nil {
		log.Printf("warning: collection %s is corrupt, starting empty: %v", col, err)
	}
}

// SaveBook writes every collection of the book to the store.
func SaveBook(s Store, b *Book) error {
	cols := []struct {
		col  Collection
		data func() ([]byte, error)
	}{
		{ColHoldings, func() ([]byte, error) { return marshalSlice(b.holdings) }},
		{ColInvestmentLog, func() ([]byte, error) { return encodeEntries(b.invLog) }},
		{ColTransactions, func() ([]byte, error) { return encodeGeneralLog(b.genLog, b.foreign) }},
		{ColBalance, func() ([]byte, error) { return json.Marshal(b.balance) }},
		{ColHistory, func() ([]byte, error) { return marshalSlice(b.history) }},
		{ColTypes, func() ([]byte, error) { return marshalSlice(b.types) }},
	}
	for _, c := range cols {
		data, err := c.data()
		if err != nil {
			return fmt.Errorf("cannot encode collection %s: %w", c.col, err)
		}
		if err := s.Write(c.col, data); err != nil {
			return fmt.Errorf("cannot write collection %s: %w", c.col, err)
		}
	}
	return nil
}

// marshalSlice marshals a slice, writing "[]" instead of "null" when empty.
func marshalSlice[S ~[]E, E any](s S) ([]byte, error) {
	if len(s) == 0 {
		return []byte("[]"), nil
	}
	return json.Marshal(s)
}
