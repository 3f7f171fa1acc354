package search

import (
	"testing"

	"github.com/japaniel/tentoku/pkg/model"
)

// fakeDict is a minimal in-memory dictdb.Dictionary used to exercise
// WordSearch without a real SQLite store.
type fakeDict struct {
	byWord map[string][]model.WordEntry
}

func newFakeDict() *fakeDict {
	return &fakeDict{byWord: make(map[string][]model.WordEntry)}
}

func (d *fakeDict) add(word string, entry model.WordEntry) {
	d.byWord[word] = append(d.byWord[word], entry)
}

func (d *fakeDict) GetWords(text string, maxResults int, matchingText string) ([]model.WordEntry, error) {
	return d.byWord[text], nil
}

func (d *fakeDict) GetEntriesByIDs(ids []int64, matchingText string) ([]model.WordEntry, error) {
	return nil, nil
}

func (d *fakeDict) Exists(text string) (bool, error) {
	return len(d.byWord[text]) > 0, nil
}

func taberuEntry() model.WordEntry {
	return model.WordEntry{
		EntryID:       1,
		EntSeq:        "1386060",
		KanjiReadings: []model.KanjiReading{{Text: "食べる", Matched: true}},
		Senses: []model.Sense{
			{PosTags: []string{"v1"}, Glosses: []model.Gloss{{Text: "to eat", Lang: "eng"}}},
		},
	}
}

func TestWordSearchIdentityMatch(t *testing.T) {
	dict := newFakeDict()
	dict.add("食べる", taberuEntry())

	results, err := WordSearch("食べる見た", dict, 10)
	if err != nil {
		t.Fatalf("WordSearch: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected at least one result")
	}
	if results[0].MatchLen != 3 {
		t.Fatalf("expected match_len 3 (食べる), got %d", results[0].MatchLen)
	}
	if results[0].MatchType != model.ExactKanji {
		t.Fatalf("expected ExactKanji, got %v", results[0].MatchType)
	}
}

func TestWordSearchIdentityMatchKanaOnly(t *testing.T) {
	dict := newFakeDict()
	dict.add("です", model.WordEntry{
		EntryID:      3,
		EntSeq:       "1628500",
		KanaReadings: []model.KanaReading{{Text: "です", NoKanji: true, Matched: true}},
		Senses: []model.Sense{
			{PosTags: []string{"cop"}, Glosses: []model.Gloss{{Text: "to be", Lang: "eng"}}},
		},
	})

	results, err := WordSearch("です", dict, 10)
	if err != nil {
		t.Fatalf("WordSearch: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected at least one result")
	}
	if results[0].MatchType != model.ExactKana {
		t.Fatalf("expected ExactKana, got %v", results[0].MatchType)
	}
}

func TestWordSearchDeinflection(t *testing.T) {
	dict := newFakeDict()
	dict.add("食べる", taberuEntry())

	results, err := WordSearch("食べました", dict, 10)
	if err != nil {
		t.Fatalf("WordSearch: %v", err)
	}
	if len(results) == 0 {
		t.Fatalf("expected a deinflected result for 食べました")
	}
	if results[0].MatchType != model.Deinflected {
		t.Fatalf("expected Deinflected, got %v", results[0].MatchType)
	}
	if results[0].MatchLen != 5 {
		t.Fatalf("expected match_len 5 (食べました), got %d", results[0].MatchLen)
	}
}

func TestWordSearchNoMatch(t *testing.T) {
	dict := newFakeDict()
	results, err := WordSearch("存在しない", dict, 10)
	if err != nil {
		t.Fatalf("WordSearch: %v", err)
	}
	if results != nil {
		t.Fatalf("expected nil results, got %+v", results)
	}
}

func TestWordSearchStopsAtLongestMatchingPrefix(t *testing.T) {
	dict := newFakeDict()
	dict.add("食べる", taberuEntry())
	dict.add("食", model.WordEntry{
		EntryID:       2,
		KanjiReadings: []model.KanjiReading{{Text: "食", Matched: true}},
		Senses: []model.Sense{
			{PosTags: []string{"n"}, Glosses: []model.Gloss{{Text: "food", Lang: "eng"}}},
		},
	})

	results, err := WordSearch("食べる", dict, 10)
	if err != nil {
		t.Fatalf("WordSearch: %v", err)
	}
	// Longest prefix (食べる) should win outright; the shorter 食 entry
	// must never appear since word_search stops at the first prefix
	// length yielding any result.
	for _, r := range results {
		if r.MatchLen != 3 {
			t.Fatalf("expected only match_len 3 results, got %+v", r)
		}
	}
}
