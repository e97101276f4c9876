package carteira

import (
	"database/sql"
	"errors"
	"fmt"
	"io/fs"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore persists collections as rows of a single key-value table in a
// SQLite database file. It is a drop-in alternative to DirStore for users
// who prefer one file over a directory.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens (or creates) the database file and ensures the
// schema exists.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("cannot open database %q: %w", path, err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot reach database %q: %w", path, err)
	}
	const schema = `
	CREATE TABLE IF NOT EXISTS collections (
		name TEXT PRIMARY KEY,
		data TEXT NOT NULL
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("cannot create schema: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Read implements Store.
func (s *SQLiteStore) Read(col Collection) ([]byte, error) {
	var data []byte
	err := s.db.QueryRow(`SELECT data FROM collections WHERE name = ?`, string(col)).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("collection %s: %w", col, fs.ErrNotExist)
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read collection %s: %w", col, err)
	}
	return data, nil
}

// Write implements Store.
func (s *SQLiteStore) Write(col Collection, data []byte) error {
	_, err := s.db.Exec(`
		INSERT INTO collections (name, data) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET data = excluded.data`,
		string(col), string(data))
	if err != nil {
		return fmt.Errorf("cannot write collection %s: %w", col, err)
	}
	return nil
}

// Close implements Store.
func (s *SQLiteStore) Close() error { return s.db.Close() }
