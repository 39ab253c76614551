package source

import (
	"database/sql"
	"path/filepath"
	"testing"
)

// setupSourceDB creates a throwaway SQLite file with a small notes table.
func setupSourceDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "source.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("failed to create source database: %v", err)
	}
	defer db.Close()

	stmts := []string{
		"CREATE TABLE notes (id INTEGER PRIMARY KEY, title TEXT, body TEXT)",
		"INSERT INTO notes (id, title, body) VALUES (1, 'First', 'Hello')",
		"INSERT INTO notes (id, title, body) VALUES (2, 'Second', NULL)",
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to seed source database: %v", err)
		}
	}
	return path
}

func TestNewQuery(t *testing.T) {
	path := setupSourceDB(t)

	src, err := NewQuery(path, "SELECT title, body FROM notes ORDER BY id")
	if err != nil {
		t.Fatalf("NewQuery() error = %v", err)
	}

	got, err := src.ReadSlice(0, src.Len())
	if err != nil {
		t.Fatalf("ReadSlice() error = %v", err)
	}

	// NULL body renders as an empty string.
	want := "First Hello\nSecond "
	if got != want {
		t.Errorf("query source content = %q, want %q", got, want)
	}
}

func TestNewQueryEmptyResult(t *testing.T) {
	path := setupSourceDB(t)

	src, err := NewQuery(path, "SELECT title FROM notes WHERE id > 100")
	if err != nil {
		t.Fatalf("NewQuery() error = %v", err)
	}
	if src.Len() != 0 {
		t.Errorf("empty result set produced %d bytes, want 0", src.Len())
	}
}

func TestNewQueryBadSQL(t *testing.T) {
	path := setupSourceDB(t)

	if _, err := NewQuery(path, "SELECT nope FROM missing"); err == nil {
		t.Fatal("NewQuery() error = nil, want error for invalid query")
	}
}
