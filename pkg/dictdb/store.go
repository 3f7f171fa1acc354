package dictdb

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"

	"github.com/japaniel/tentoku/pkg/model"
	"github.com/japaniel/tentoku/pkg/normalize"
)

// maxLookupLength mirrors sqlite_dict_optimized.py's optimization 1: no
// dictionary entry is longer than this, so longer lookups are rejected
// without touching the database.
const maxLookupLength = 15

// negativeCacheBound/positiveCacheBound and their eviction fractions match
// _examples/original_source/sqlite_dict_optimized.py exactly (100k/10k
// bounds, evict-oldest-20%).
const (
	negativeCacheBound = 100000
	negativeEvictCount = 20000
	positiveCacheBound = 10000
	positiveEvictCount = 2000
)

type positiveCacheKey struct {
	text         string
	maxResults   int
	matchingText string
}

// Store is the SQLite-backed dictionary store (spec.md §4.5, C5). It
// serializes access through its own connection and caches; it is not safe
// for concurrent mutation (spec.md §5) but concurrent reads through
// separate *Store instances, or guarded by an external mutex, are fine.
type Store struct {
	db *sql.DB

	mu             sync.Mutex
	negativeCache  map[string]bool
	negativeOrder  []string
	positiveCache  map[positiveCacheKey][]model.WordEntry
	positiveOrder  []positiveCacheKey
}

// NewStore wraps an already-migrated *sql.DB (see Open/InitDB).
func NewStore(db *sql.DB) *Store {
	return &Store{
		db:            db,
		negativeCache: make(map[string]bool),
		positiveCache: make(map[positiveCacheKey][]model.WordEntry),
	}
}

// Close closes the underlying connection and drops caches.
func (s *Store) Close() error {
	s.mu.Lock()
	s.negativeCache = make(map[string]bool)
	s.negativeOrder = nil
	s.positiveCache = make(map[positiveCacheKey][]model.WordEntry)
	s.positiveOrder = nil
	s.mu.Unlock()
	return s.db.Close()
}

// GetWords implements Dictionary.GetWords (spec.md §4.5).
func (s *Store) GetWords(text string, maxResults int, matchingText string) ([]model.WordEntry, error) {
	if runeLen(text) > maxLookupLength {
		return nil, nil
	}

	cacheKey := positiveCacheKey{text: text, maxResults: maxResults, matchingText: matchingText}

	s.mu.Lock()
	if s.negativeCache[text] {
		s.mu.Unlock()
		return nil, nil
	}
	if cached, ok := s.positiveCache[cacheKey]; ok {
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	// Only pure-katakana text is also looked up in its hiragana fold;
	// mixed-script text is looked up as given.
	normalizedInput := text
	allKatakana := text != ""
	for _, r := range text {
		if (r < 0x30A1 || r > 0x30FA) && r != 0x30FC {
			allKatakana = false
			break
		}
	}
	if allKatakana {
		normalizedInput = normalize.KanaToHiragana(text)
	}

	entryRows, err := s.queryEntryRows(text, normalizedInput, maxResults)
	if err != nil {
		return nil, err
	}

	if len(entryRows) == 0 {
		s.recordNegative(text)
		return nil, nil
	}

	if matchingText == "" {
		matchingText = text
	}
	entries, err := s.buildEntries(entryRows, matchingText)
	if err != nil {
		return nil, err
	}

	s.recordPositive(cacheKey, entries)
	return entries, nil
}

// entryRow is the (entry_id, ent_seq) pair returned by the reading/kanji
// lookup query, before full entries are assembled.
type entryRow struct {
	entryID int64
	entSeq  string
}

func (s *Store) queryEntryRows(text, normalizedInput string, maxResults int) ([]entryRow, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT e.entry_id, e.ent_seq
		FROM entries e
		JOIN readings r ON e.entry_id = r.entry_id
		WHERE r.reading_text = ? OR r.reading_text = ?
		LIMIT ?`, text, normalizedInput, maxResults)
	if err != nil {
		return nil, fmt.Errorf("query readings: %w", err)
	}
	entryRows, err := scanEntryRows(rows)
	if err != nil {
		return nil, err
	}
	if len(entryRows) > 0 {
		return entryRows, nil
	}

	rows, err = s.db.Query(`
		SELECT DISTINCT e.entry_id, e.ent_seq
		FROM entries e
		JOIN kanji k ON e.entry_id = k.entry_id
		WHERE k.kanji_text = ? OR k.kanji_text = ?
		LIMIT ?`, text, normalizedInput, maxResults)
	if err != nil {
		return nil, fmt.Errorf("query kanji: %w", err)
	}
	return scanEntryRows(rows)
}

func scanEntryRows(rows *sql.Rows) ([]entryRow, error) {
	defer rows.Close()
	var out []entryRow
	for rows.Next() {
		var er entryRow
		if err := rows.Scan(&er.entryID, &er.entSeq); err != nil {
			return nil, fmt.Errorf("scan entry row: %w", err)
		}
		out = append(out, er)
	}
	return out, rows.Err()
}

// GetEntriesByIDs implements Dictionary.GetEntriesByIDs, preserving id
// order (spec.md §4.5).
func (s *Store) GetEntriesByIDs(ids []int64, matchingText string) ([]model.WordEntry, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	byID := make(map[int64]model.WordEntry, len(ids))
	for _, id := range ids {
		rows, err := s.db.Query(`SELECT entry_id, ent_seq FROM entries WHERE entry_id = ?`, id)
		if err != nil {
			return nil, fmt.Errorf("query entry %d: %w", id, err)
		}
		entryRows, err := scanEntryRows(rows)
		if err != nil {
			return nil, err
		}
		if len(entryRows) == 0 {
			continue
		}
		entries, err := s.buildEntries(entryRows, matchingText)
		if err != nil {
			return nil, err
		}
		byID[id] = entries[0]
	}

	out := make([]model.WordEntry, 0, len(ids))
	for _, id := range ids {
		if e, ok := byID[id]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}

// Exists implements Dictionary.Exists.
func (s *Store) Exists(text string) (bool, error) {
	words, err := s.GetWords(text, 1, text)
	if err != nil {
		return false, err
	}
	return len(words) > 0, nil
}

// buildEntries assembles full WordEntry values for entryRows, computing
// per-reading match_range/matched flags against matchingText. Ported from
// _examples/original_source/sqlite_dict_optimized.py's _build_entries:
// kanji match is preferred over kana, and within whichever script class
// matched, every equal reading is marked matched.
func (s *Store) buildEntries(entryRows []entryRow, matchingText string) ([]model.WordEntry, error) {
	normalizedMatching := normalize.KanaToHiragana(matchingText)

	entries := make([]model.WordEntry, 0, len(entryRows))
	for _, er := range entryRows {
		kanjiRows, err := s.queryKanji(er.entryID)
		if err != nil {
			return nil, err
		}
		kanaRows, err := s.queryReadings(er.entryID)
		if err != nil {
			return nil, err
		}

		kanjiMatchFound := false
		for _, kr := range kanjiRows {
			if normalize.KanaToHiragana(kr.Text) == normalizedMatching {
				kanjiMatchFound = true
				break
			}
		}
		kanaMatchFound := false
		if !kanjiMatchFound {
			for _, kr := range kanaRows {
				if normalize.KanaToHiragana(kr.Text) == normalizedMatching {
					kanaMatchFound = true
					break
				}
			}
		}

		kanjiReadings := make([]model.KanjiReading, len(kanjiRows))
		for i, kr := range kanjiRows {
			matches := normalize.KanaToHiragana(kr.Text) == normalizedMatching
			kr.Matched = (kanjiMatchFound && matches) || !kanjiMatchFound
			if matches {
				kr.MatchRange = [2]int{0, runeLen(kr.Text)}
			}
			kanjiReadings[i] = kr
		}

		kanaReadings := make([]model.KanaReading, len(kanaRows))
		for i, kr := range kanaRows {
			matches := normalize.KanaToHiragana(kr.Text) == normalizedMatching
			kr.Matched = (kanaMatchFound && matches) || !kanaMatchFound
			if matches {
				kr.MatchRange = [2]int{0, runeLen(kr.Text)}
			}
			kanaReadings[i] = kr
		}

		senses, err := s.querySenses(er.entryID)
		if err != nil {
			return nil, err
		}

		entries = append(entries, model.WordEntry{
			EntryID:       er.entryID,
			EntSeq:        er.entSeq,
			KanjiReadings: kanjiReadings,
			KanaReadings:  kanaReadings,
			Senses:        senses,
		})
	}
	return entries, nil
}

func (s *Store) queryKanji(entryID int64) ([]model.KanjiReading, error) {
	rows, err := s.db.Query(`SELECT kanji_text, priority, info FROM kanji WHERE entry_id = ? ORDER BY kanji_id`, entryID)
	if err != nil {
		return nil, fmt.Errorf("query kanji for entry %d: %w", entryID, err)
	}
	defer rows.Close()
	var out []model.KanjiReading
	for rows.Next() {
		var text string
		var priority, info sql.NullString
		if err := rows.Scan(&text, &priority, &info); err != nil {
			return nil, fmt.Errorf("scan kanji row: %w", err)
		}
		out = append(out, model.KanjiReading{
			Text:     text,
			Priority: splitNullable(priority),
			Info:     splitNullable(info),
		})
	}
	return out, rows.Err()
}

func (s *Store) queryReadings(entryID int64) ([]model.KanaReading, error) {
	rows, err := s.db.Query(`SELECT reading_text, no_kanji, priority, info FROM readings WHERE entry_id = ? ORDER BY reading_id`, entryID)
	if err != nil {
		return nil, fmt.Errorf("query readings for entry %d: %w", entryID, err)
	}
	defer rows.Close()
	var out []model.KanaReading
	for rows.Next() {
		var text string
		var noKanji int
		var priority, info sql.NullString
		if err := rows.Scan(&text, &noKanji, &priority, &info); err != nil {
			return nil, fmt.Errorf("scan reading row: %w", err)
		}
		out = append(out, model.KanaReading{
			Text:     text,
			NoKanji:  noKanji != 0,
			Priority: splitNullable(priority),
			Info:     splitNullable(info),
		})
	}
	return out, rows.Err()
}

func (s *Store) querySenses(entryID int64) ([]model.Sense, error) {
	rows, err := s.db.Query(`SELECT sense_id, sense_index, info FROM senses WHERE entry_id = ? ORDER BY sense_index`, entryID)
	if err != nil {
		return nil, fmt.Errorf("query senses for entry %d: %w", entryID, err)
	}
	defer rows.Close()

	type senseRow struct {
		id    int64
		index int
		info  sql.NullString
	}
	var srows []senseRow
	for rows.Next() {
		var sr senseRow
		if err := rows.Scan(&sr.id, &sr.index, &sr.info); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan sense row: %w", err)
		}
		srows = append(srows, sr)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, err
	}

	senses := make([]model.Sense, 0, len(srows))
	for _, sr := range srows {
		posTags, err := s.queryStrings("SELECT pos FROM sense_pos WHERE sense_id = ?", sr.id)
		if err != nil {
			return nil, err
		}
		glosses, err := s.queryGlosses(sr.id)
		if err != nil {
			return nil, err
		}
		fields, err := s.queryStrings("SELECT field FROM sense_field WHERE sense_id = ?", sr.id)
		if err != nil {
			return nil, err
		}
		misc, err := s.queryStrings("SELECT misc FROM sense_misc WHERE sense_id = ?", sr.id)
		if err != nil {
			return nil, err
		}
		dial, err := s.queryStrings("SELECT dial FROM sense_dial WHERE sense_id = ?", sr.id)
		if err != nil {
			return nil, err
		}

		senses = append(senses, model.Sense{
			Index:   sr.index,
			PosTags: posTags,
			Glosses: glosses,
			Info:    nullString(sr.info),
			Fields:  fields,
			Misc:    misc,
			Dial:    dial,
		})
	}
	return senses, nil
}

func (s *Store) queryStrings(query string, senseID int64) ([]string, error) {
	rows, err := s.db.Query(query, senseID)
	if err != nil {
		return nil, fmt.Errorf("query %q: %w", query, err)
	}
	defer rows.Close()
	var out []string
	for rows.Next() {
		var v string
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan string row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *Store) queryGlosses(senseID int64) ([]model.Gloss, error) {
	rows, err := s.db.Query(`SELECT gloss_text, lang, g_type FROM glosses WHERE sense_id = ? ORDER BY gloss_id`, senseID)
	if err != nil {
		return nil, fmt.Errorf("query glosses for sense %d: %w", senseID, err)
	}
	defer rows.Close()
	var out []model.Gloss
	for rows.Next() {
		var text, lang string
		var gtype sql.NullString
		if err := rows.Scan(&text, &lang, &gtype); err != nil {
			return nil, fmt.Errorf("scan gloss row: %w", err)
		}
		if lang == "" {
			lang = "eng"
		}
		out = append(out, model.Gloss{Text: text, Lang: lang, GType: nullString(gtype)})
	}
	return out, rows.Err()
}

// recordNegative and recordPositive implement the same bounded,
// evict-oldest-20% caching policy as sqlite_dict_optimized.py.
func (s *Store) recordNegative(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.negativeCache[text] {
		return
	}
	s.negativeCache[text] = true
	s.negativeOrder = append(s.negativeOrder, text)
	if len(s.negativeOrder) > negativeCacheBound {
		evicted := s.negativeOrder[:negativeEvictCount]
		s.negativeOrder = s.negativeOrder[negativeEvictCount:]
		for _, k := range evicted {
			delete(s.negativeCache, k)
		}
	}
}

func (s *Store) recordPositive(key positiveCacheKey, entries []model.WordEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.positiveCache[key]; ok {
		return
	}
	s.positiveCache[key] = entries
	s.positiveOrder = append(s.positiveOrder, key)
	if len(s.positiveOrder) > positiveCacheBound {
		evicted := s.positiveOrder[:positiveEvictCount]
		s.positiveOrder = s.positiveOrder[positiveEvictCount:]
		for _, k := range evicted {
			delete(s.positiveCache, k)
		}
	}
}

// splitNullable splits a comma-joined column value (how pkg/jmdictimport
// stores multi-valued priority/info fields in a single TEXT column) back
// into its parts.
func splitNullable(v sql.NullString) []string {
	if !v.Valid || v.String == "" {
		return nil
	}
	return strings.Split(v.String, ",")
}

func nullString(v sql.NullString) string {
	if !v.Valid {
		return ""
	}
	return v.String
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

var _ Dictionary = (*Store)(nil)
