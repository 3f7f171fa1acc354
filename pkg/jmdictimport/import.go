package jmdictimport

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Import loads path (a jmdict-simplified JSON export) and writes every
// entry into db's dictdb schema, batching inserts through a BatchWriter.
// db must already have had dictdb.InitDB run against it.
func Import(db *sql.DB, path string) (int, error) {
	entries, err := LoadFile(path)
	if err != nil {
		return 0, err
	}

	bw := NewBatchWriter(db, 200, 200*time.Millisecond)

	for i, e := range entries {
		entry := e
		idx := i
		if err := bw.Submit(func(ctx context.Context, tx *sql.Tx) error {
			return writeEntry(ctx, tx, idx, entry)
		}); err != nil {
			bw.Close()
			return 0, err
		}
	}

	if err := bw.Close(); err != nil {
		return 0, err
	}
	return len(entries), nil
}

func writeEntry(ctx context.Context, tx *sql.Tx, index int, e Entry) error {
	var entryID int64
	res, err := tx.ExecContext(ctx, `INSERT INTO entries (entry_id, ent_seq) VALUES (?, ?)`, index+1, e.ID)
	if err != nil {
		return fmt.Errorf("insert entry %s: %w", e.ID, err)
	}
	entryID, err = res.LastInsertId()
	if err != nil {
		// sqlite3 honors an explicit INTEGER PRIMARY KEY value as the rowid,
		// so LastInsertId should equal index+1; fall back to it directly if
		// the driver doesn't report it.
		entryID = int64(index + 1)
	}

	for _, k := range e.Kanji {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO kanji (entry_id, kanji_text, priority, info) VALUES (?, ?, ?, ?)`,
			entryID, k.Text, priorityTag(k.Common), joinTags(k.Tags)); err != nil {
			return fmt.Errorf("insert kanji %s: %w", k.Text, err)
		}
	}

	for _, k := range e.Kana {
		noKanji := 0
		if len(k.AppliesToKanji) == 1 && k.AppliesToKanji[0] == "" {
			noKanji = 1
		}
		if len(e.Kanji) == 0 {
			noKanji = 1
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO readings (entry_id, reading_text, no_kanji, priority, info) VALUES (?, ?, ?, ?, ?)`,
			entryID, k.Text, noKanji, priorityTag(k.Common), joinTags(k.Tags)); err != nil {
			return fmt.Errorf("insert reading %s: %w", k.Text, err)
		}
	}

	for si, sense := range e.Sense {
		res, err := tx.ExecContext(ctx, `INSERT INTO senses (entry_id, sense_index, info) VALUES (?, ?, ?)`,
			entryID, si+1, joinTags(sense.Info))
		if err != nil {
			return fmt.Errorf("insert sense %d of entry %s: %w", si+1, e.ID, err)
		}
		senseID, err := res.LastInsertId()
		if err != nil {
			return fmt.Errorf("sense id for entry %s: %w", e.ID, err)
		}

		for _, pos := range sense.PartOfSpeech {
			if _, err := tx.ExecContext(ctx, `INSERT INTO sense_pos (sense_id, pos) VALUES (?, ?)`, senseID, pos); err != nil {
				return fmt.Errorf("insert sense_pos: %w", err)
			}
		}
		for _, field := range sense.Field {
			if _, err := tx.ExecContext(ctx, `INSERT INTO sense_field (sense_id, field) VALUES (?, ?)`, senseID, field); err != nil {
				return fmt.Errorf("insert sense_field: %w", err)
			}
		}
		for _, misc := range sense.Misc {
			if _, err := tx.ExecContext(ctx, `INSERT INTO sense_misc (sense_id, misc) VALUES (?, ?)`, senseID, misc); err != nil {
				return fmt.Errorf("insert sense_misc: %w", err)
			}
		}
		for _, dial := range sense.Dialect {
			if _, err := tx.ExecContext(ctx, `INSERT INTO sense_dial (sense_id, dial) VALUES (?, ?)`, senseID, dial); err != nil {
				return fmt.Errorf("insert sense_dial: %w", err)
			}
		}
		for _, g := range sense.Gloss {
			lang := g.Lang
			if lang == "" {
				lang = "eng"
			}
			if _, err := tx.ExecContext(ctx, `INSERT INTO glosses (sense_id, gloss_text, lang, g_type) VALUES (?, ?, ?, ?)`,
				senseID, g.Text, lang, g.Type); err != nil {
				return fmt.Errorf("insert gloss: %w", err)
			}
		}
	}

	return nil
}
