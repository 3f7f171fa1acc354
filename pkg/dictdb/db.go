// Package dictdb implements the dictionary store (spec.md §4.5/§6, C5) and
// the trie-accelerated lookup index (C6) that wraps it.
package dictdb

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
)

// InitDB runs the schema migration on an already-open connection. We
// execute the full SQL batch in one call so statement splitting is
// delegated to SQLite rather than naively split on semicolons.
func InitDB(db *sql.DB) error {
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		return fmt.Errorf("enable foreign keys: %w", err)
	}
	if _, err := db.Exec(migrationsSQL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	return nil
}

// Open opens (creating if absent) a SQLite-backed dictionary database at
// path and runs migrations against it. Use ":memory:" for an ephemeral
// database, as the teacher's tests do.
func Open(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	if err := InitDB(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
