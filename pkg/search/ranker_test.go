package search

import (
	"testing"

	"github.com/japaniel/tentoku/pkg/model"
	"github.com/japaniel/tentoku/pkg/reason"
)

func TestRankByMatchLenDescending(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: 1}, MatchLen: 2, MatchType: model.ExactKanji},
		{Entry: model.WordEntry{EntryID: 2}, MatchLen: 5, MatchType: model.ExactKanji},
	}
	Rank(results)
	if results[0].MatchLen != 5 {
		t.Fatalf("expected longest match first, got %+v", results)
	}
}

func TestRankPriorityReadingBeforeNonPriority(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: 1, KanjiReadings: []model.KanjiReading{{Text: "a"}}}, MatchLen: 3, MatchType: model.ExactKanji},
		{Entry: model.WordEntry{EntryID: 2, KanjiReadings: []model.KanjiReading{{Text: "b", Priority: []string{"common"}}}}, MatchLen: 3, MatchType: model.ExactKanji},
	}
	Rank(results)
	if results[0].Entry.EntryID != 2 {
		t.Fatalf("expected priority-marked entry first, got %+v", results)
	}
}

func TestRankExactBeforeDeinflected(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: 1}, MatchLen: 3, MatchType: model.Deinflected, ReasonChains: []reason.Chain{{reason.Past}}},
		{Entry: model.WordEntry{EntryID: 2}, MatchLen: 3, MatchType: model.ExactKanji},
	}
	Rank(results)
	if results[0].MatchType != model.ExactKanji {
		t.Fatalf("expected exact match first, got %+v", results)
	}
}

func TestRankShorterReasonChainFirst(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: 1}, MatchLen: 3, MatchType: model.Deinflected, ReasonChains: []reason.Chain{{reason.Causative, reason.Passive}}},
		{Entry: model.WordEntry{EntryID: 2}, MatchLen: 3, MatchType: model.Deinflected, ReasonChains: []reason.Chain{{reason.CausativePassive}}},
	}
	Rank(results)
	if results[0].Entry.EntryID != 2 {
		t.Fatalf("expected shorter reason chain first, got %+v", results)
	}
}

func TestRankTieBreaksOnEntryID(t *testing.T) {
	results := []model.WordResult{
		{Entry: model.WordEntry{EntryID: 9}, MatchLen: 3, MatchType: model.ExactKanji},
		{Entry: model.WordEntry{EntryID: 2}, MatchLen: 3, MatchType: model.ExactKanji},
	}
	Rank(results)
	if results[0].Entry.EntryID != 2 {
		t.Fatalf("expected lower entry_id first as final tie-break, got %+v", results)
	}
}
