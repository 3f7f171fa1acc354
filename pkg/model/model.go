// Package model holds the shared data types passed between the
// deinflector, dictionary store, ranker, and tokenizer: the dictionary
// entry shape (§3 WordEntry), the ranked per-position result (WordResult),
// and the final emitted Token.
package model

import "github.com/japaniel/tentoku/pkg/reason"

// KanjiReading is one kanji-form spelling of a WordEntry.
type KanjiReading struct {
	Text       string
	Priority   []string
	Info       []string
	MatchRange [2]int
	Matched    bool
}

// KanaReading is one kana-form spelling of a WordEntry.
type KanaReading struct {
	Text       string
	NoKanji    bool
	Priority   []string
	Info       []string
	MatchRange [2]int
	Matched    bool
}

// Gloss is a single translated sense text.
type Gloss struct {
	Text  string
	Lang  string
	GType string
}

// Sense is one numbered meaning of a WordEntry.
type Sense struct {
	Index    int
	PosTags  []string
	Glosses  []Gloss
	Info     string
	Fields   []string
	Misc     []string
	Dial     []string
}

// WordEntry is one dictionary record. At least one of KanjiReadings or
// KanaReadings is non-empty; every Sense has at least one Gloss.
type WordEntry struct {
	EntryID       int64
	EntSeq        string
	KanjiReadings []KanjiReading
	KanaReadings  []KanaReading
	Senses        []Sense
}

// HasPriorityReading reports whether any kanji or kana reading carries a
// frequency/commonness priority mark (e.g. "ichi1", "news1"). Used by the
// ranker (spec.md §4.7b).
func (e *WordEntry) HasPriorityReading() bool {
	for _, k := range e.KanjiReadings {
		if len(k.Priority) > 0 {
			return true
		}
	}
	for _, k := range e.KanaReadings {
		if len(k.Priority) > 0 {
			return true
		}
	}
	return false
}

// MatchType classifies how a WordResult's surface text related to the
// dictionary entry that was found.
type MatchType int

const (
	ExactKanji MatchType = iota
	ExactKana
	KanaFold
	Deinflected
)

func (m MatchType) String() string {
	switch m {
	case ExactKanji:
		return "ExactKanji"
	case ExactKana:
		return "ExactKana"
	case KanaFold:
		return "KanaFold"
	case Deinflected:
		return "Deinflected"
	default:
		return "Unknown"
	}
}

// WordResult is one dictionary hit surfaced at a tokenizer position.
type WordResult struct {
	Entry        WordEntry
	MatchLen     int
	ReasonChains []reason.Chain
	MatchType    MatchType
}

// Token is a single unit of the final tokenizer output, spanning a range of
// the original input in rune offsets (consistent with the offset map
// produced by pkg/normalize).
type Token struct {
	Text               string
	Start              int
	End                int
	DictionaryEntry    *WordEntry
	DeinflectionReasons []reason.Chain
	// Numeric marks a fast-pathed digit-only token (spec.md §4.6).
	Numeric bool
}
