package dictdb

// migrationsSQL is executed as a single batch (statement parsing delegated
// to SQLite itself, the same approach as the teacher's pkg/db/db.go) against
// a fresh connection. Table shape is spec.md §6's relational schema.
const migrationsSQL = `
CREATE TABLE IF NOT EXISTS entries (
	entry_id INTEGER PRIMARY KEY,
	ent_seq  TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS kanji (
	kanji_id  INTEGER PRIMARY KEY,
	entry_id  INTEGER NOT NULL REFERENCES entries(entry_id),
	kanji_text TEXT NOT NULL,
	priority  TEXT,
	info      TEXT
);

CREATE TABLE IF NOT EXISTS readings (
	reading_id   INTEGER PRIMARY KEY,
	entry_id     INTEGER NOT NULL REFERENCES entries(entry_id),
	reading_text TEXT NOT NULL,
	no_kanji     INTEGER NOT NULL DEFAULT 0,
	priority     TEXT,
	info         TEXT
);

CREATE TABLE IF NOT EXISTS senses (
	sense_id    INTEGER PRIMARY KEY,
	entry_id    INTEGER NOT NULL REFERENCES entries(entry_id),
	sense_index INTEGER NOT NULL,
	info        TEXT
);

CREATE TABLE IF NOT EXISTS sense_pos (
	sense_id INTEGER NOT NULL REFERENCES senses(sense_id),
	pos      TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sense_field (
	sense_id INTEGER NOT NULL REFERENCES senses(sense_id),
	field    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sense_misc (
	sense_id INTEGER NOT NULL REFERENCES senses(sense_id),
	misc     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS sense_dial (
	sense_id INTEGER NOT NULL REFERENCES senses(sense_id),
	dial     TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS glosses (
	gloss_id   INTEGER PRIMARY KEY,
	sense_id   INTEGER NOT NULL REFERENCES senses(sense_id),
	gloss_text TEXT NOT NULL,
	lang       TEXT NOT NULL DEFAULT 'eng',
	g_type     TEXT
);

CREATE INDEX IF NOT EXISTS idx_readings_text ON readings(reading_text);
CREATE INDEX IF NOT EXISTS idx_kanji_text ON kanji(kanji_text);
CREATE INDEX IF NOT EXISTS idx_senses_entry ON senses(entry_id);
CREATE INDEX IF NOT EXISTS idx_kanji_entry ON kanji(entry_id);
CREATE INDEX IF NOT EXISTS idx_readings_entry ON readings(entry_id);
CREATE INDEX IF NOT EXISTS idx_sense_pos_sense ON sense_pos(sense_id);
CREATE INDEX IF NOT EXISTS idx_sense_field_sense ON sense_field(sense_id);
CREATE INDEX IF NOT EXISTS idx_sense_misc_sense ON sense_misc(sense_id);
CREATE INDEX IF NOT EXISTS idx_sense_dial_sense ON sense_dial(sense_id);
CREATE INDEX IF NOT EXISTS idx_glosses_sense ON glosses(sense_id);
`
