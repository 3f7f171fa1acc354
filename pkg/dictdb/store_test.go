package dictdb

import (
	"database/sql"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	// A single connection keeps every operation on the same in-memory
	// database; SQLite gives each new :memory: connection its own
	// database otherwise.
	db.SetMaxOpenConns(1)
	if err := InitDB(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func insertTabemasuEntry(t *testing.T, db *sql.DB) int64 {
	t.Helper()
	res, err := db.Exec(`INSERT INTO entries (entry_id, ent_seq) VALUES (1, '1386060')`)
	if err != nil {
		t.Fatalf("insert entry: %v", err)
	}
	entryID, _ := res.LastInsertId()
	if _, err := db.Exec(`INSERT INTO kanji (entry_id, kanji_text, priority) VALUES (?, ?, ?)`,
		entryID, "食べる", "common"); err != nil {
		t.Fatalf("insert kanji: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO readings (entry_id, reading_text, no_kanji, priority) VALUES (?, ?, 0, ?)`,
		entryID, "たべる", "common"); err != nil {
		t.Fatalf("insert reading: %v", err)
	}
	sres, err := db.Exec(`INSERT INTO senses (entry_id, sense_index) VALUES (?, 1)`, entryID)
	if err != nil {
		t.Fatalf("insert sense: %v", err)
	}
	senseID, _ := sres.LastInsertId()
	if _, err := db.Exec(`INSERT INTO sense_pos (sense_id, pos) VALUES (?, 'v1')`, senseID); err != nil {
		t.Fatalf("insert sense_pos: %v", err)
	}
	if _, err := db.Exec(`INSERT INTO glosses (sense_id, gloss_text, lang) VALUES (?, 'to eat', 'eng')`, senseID); err != nil {
		t.Fatalf("insert gloss: %v", err)
	}
	return entryID
}

func TestStoreGetWordsKanji(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	insertTabemasuEntry(t, db)

	store := NewStore(db)
	entries, err := store.GetWords("食べる", 10, "食べる")
	if err != nil {
		t.Fatalf("GetWords: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if len(e.Senses) != 1 || len(e.Senses[0].Glosses) != 1 || e.Senses[0].Glosses[0].Text != "to eat" {
		t.Fatalf("unexpected senses: %+v", e.Senses)
	}
	if !e.KanjiReadings[0].Matched {
		t.Fatalf("expected kanji reading matched, got %+v", e.KanjiReadings)
	}
}

func TestStoreGetWordsReading(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	insertTabemasuEntry(t, db)

	store := NewStore(db)
	entries, err := store.GetWords("たべる", 10, "たべる")
	if err != nil {
		t.Fatalf("GetWords: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	// Kanji wasn't the matching text, so it should still default matched
	// (kana class was the one that matched, per the match-class fallback).
	if !entries[0].KanaReadings[0].Matched {
		t.Fatalf("expected kana reading matched, got %+v", entries[0].KanaReadings)
	}
}

func TestStoreGetWordsMiss(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	insertTabemasuEntry(t, db)

	store := NewStore(db)
	entries, err := store.GetWords("存在しない", 10, "存在しない")
	if err != nil {
		t.Fatalf("GetWords: %v", err)
	}
	if entries != nil {
		t.Fatalf("expected nil for a miss, got %+v", entries)
	}
	// Second lookup should hit the negative cache and still return nil.
	entries, err = store.GetWords("存在しない", 10, "存在しない")
	if err != nil || entries != nil {
		t.Fatalf("expected cached nil miss, got %+v, %v", entries, err)
	}
}

func TestStoreGetWordsTooLong(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	store := NewStore(db)
	long := "あいうえおかきくけこさしすせそた" // 16 runes
	entries, err := store.GetWords(long, 10, long)
	if err != nil {
		t.Fatalf("GetWords: %v", err)
	}
	if entries != nil {
		t.Fatalf("expected nil for over-length lookup, got %+v", entries)
	}
}

func TestStoreExists(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	insertTabemasuEntry(t, db)

	store := NewStore(db)
	ok, err := store.Exists("食べる")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if !ok {
		t.Fatalf("expected 食べる to exist")
	}
	ok, err = store.Exists("存在しない")
	if err != nil {
		t.Fatalf("Exists: %v", err)
	}
	if ok {
		t.Fatalf("expected 存在しない to not exist")
	}
}

func TestStoreGetEntriesByIDsPreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()
	id1 := insertTabemasuEntry(t, db)

	res, err := db.Exec(`INSERT INTO entries (entry_id, ent_seq) VALUES (2, '1612750')`)
	if err != nil {
		t.Fatalf("insert second entry: %v", err)
	}
	id2, _ := res.LastInsertId()
	if _, err := db.Exec(`INSERT INTO kanji (entry_id, kanji_text) VALUES (?, ?)`, id2, "猫"); err != nil {
		t.Fatalf("insert kanji: %v", err)
	}

	store := NewStore(db)
	entries, err := store.GetEntriesByIDs([]int64{id2, id1}, "")
	if err != nil {
		t.Fatalf("GetEntriesByIDs: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].EntryID != id2 || entries[1].EntryID != id1 {
		t.Fatalf("expected order [%d, %d], got [%d, %d]", id2, id1, entries[0].EntryID, entries[1].EntryID)
	}
}
