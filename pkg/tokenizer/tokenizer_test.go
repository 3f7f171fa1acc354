package tokenizer

import (
	"testing"

	"github.com/japaniel/tentoku/pkg/model"
)

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

func entry(id int64, seq string, kanji, kana string, pos string, gloss string) model.WordEntry {
	e := model.WordEntry{EntryID: id, EntSeq: seq}
	if kanji != "" {
		e.KanjiReadings = []model.KanjiReading{{Text: kanji, Matched: true}}
	}
	if kana != "" {
		e.KanaReadings = []model.KanaReading{{Text: kana, Matched: true}}
	}
	e.Senses = []model.Sense{{PosTags: []string{pos}, Glosses: []model.Gloss{{Text: gloss, Lang: "eng"}}}}
	return e
}

func buildSentenceDict() *fakeDict {
	dict := newFakeDict()
	dict.add("私", entry(1311110, "1311110", "私", "わたし", "n", "I"))
	dict.add("は", entry(2028920, "2028920", "", "は", "prt", "topic marker"))
	dict.add("学生", entry(1206900, "1206900", "学生", "がくせい", "n", "student"))
	dict.add("です", entry(1628500, "1628500", "", "です", "cop-da", "to be"))
	return dict
}

func TestTokenizeSentence(t *testing.T) {
	dict := buildSentenceDict()
	tok := New(dict)
	tokens := tok.Tokenize("私は学生です")

	if len(tokens) != 4 {
		t.Fatalf("expected 4 tokens, got %d: %+v", len(tokens), tokens)
	}
	wantSeqs := []string{"1311110", "2028920", "1206900", "1628500"}
	for i, want := range wantSeqs {
		if tokens[i].DictionaryEntry == nil {
			t.Fatalf("token %d: expected a dictionary entry, got none (%+v)", i, tokens[i])
		}
		if tokens[i].DictionaryEntry.EntSeq != want {
			t.Fatalf("token %d: expected ent_seq %s, got %s", i, want, tokens[i].DictionaryEntry.EntSeq)
		}
	}
}

func TestTokenizeDeinflectedVerb(t *testing.T) {
	dict := newFakeDict()
	dict.add("食べる", entry(1358280, "1358280", "食べる", "たべる", "v1", "to eat"))

	tok := New(dict)
	tokens := tok.Tokenize("食べました")
	if len(tokens) != 1 {
		t.Fatalf("expected a single token for 食べました, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].DictionaryEntry == nil || tokens[0].DictionaryEntry.EntSeq != "1358280" {
		t.Fatalf("expected dictionary entry 1358280, got %+v", tokens[0].DictionaryEntry)
	}
	if len(tokens[0].DeinflectionReasons) == 0 {
		t.Fatalf("expected non-empty deinflection reasons")
	}
}

func TestTokenizeContinuousForm(t *testing.T) {
	dict := newFakeDict()
	dict.add("食べる", entry(1358280, "1358280", "食べる", "たべる", "v1", "to eat"))

	tok := New(dict)
	tokens := tok.Tokenize("食べています")
	if len(tokens) != 1 {
		t.Fatalf("expected a single token for 食べています, got %d: %+v", len(tokens), tokens)
	}
	if tokens[0].Text != "食べています" {
		t.Fatalf("expected token text to span the whole input, got %q", tokens[0].Text)
	}
}

func TestTokenizeNumericFastPath(t *testing.T) {
	dict := newFakeDict()
	tok := New(dict)

	for _, text := range []string{"123", "１２３"} {
		tokens := tok.Tokenize(text)
		if len(tokens) != 1 {
			t.Fatalf("expected 1 numeric token for %q, got %d: %+v", text, len(tokens), tokens)
		}
		if !tokens[0].Numeric {
			t.Fatalf("expected Numeric token for %q, got %+v", text, tokens[0])
		}
		if tokens[0].DictionaryEntry != nil {
			t.Fatalf("numeric tokens should carry no dictionary entry, got %+v", tokens[0])
		}
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	dict := newFakeDict()
	tok := New(dict)
	tokens := tok.Tokenize("")
	if len(tokens) != 0 {
		t.Fatalf("expected no tokens for empty input, got %+v", tokens)
	}
}

func TestTokenizeUnknownWordFallsBackToSingleCharacter(t *testing.T) {
	dict := newFakeDict()
	tok := New(dict)
	tokens := tok.Tokenize("謎")
	if len(tokens) != 1 {
		t.Fatalf("expected a single fallback token, got %+v", tokens)
	}
	if tokens[0].DictionaryEntry != nil {
		t.Fatalf("expected no dictionary entry for an unknown character, got %+v", tokens[0])
	}
	if tokens[0].Text != "謎" {
		t.Fatalf("expected fallback token text 謎, got %q", tokens[0].Text)
	}
}

func TestTokenizeTwoKanjiWord(t *testing.T) {
	dict := newFakeDict()
	dict.add("勉強", entry(1250480, "1250480", "勉強", "べんきょう", "n", "study"))
	tok := New(dict)
	tokens := tok.Tokenize("勉強")
	if len(tokens) != 1 || tokens[0].DictionaryEntry == nil {
		t.Fatalf("expected 勉強 to resolve to a single dictionary token, got %+v", tokens)
	}
}

func TestTokenizePunctuationPassesThrough(t *testing.T) {
	dict := newFakeDict()
	dict.add("猫", entry(1, "1", "猫", "ねこ", "n", "cat"))
	tok := New(dict)
	tokens := tok.Tokenize("猫。")
	if len(tokens) != 2 {
		t.Fatalf("expected 2 tokens (word + punctuation), got %+v", tokens)
	}
	if tokens[1].Text != "。" || tokens[1].DictionaryEntry != nil {
		t.Fatalf("expected a bare punctuation token, got %+v", tokens[1])
	}
}
