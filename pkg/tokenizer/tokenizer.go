// Package tokenizer implements the greedy longest-match tokenizer driver
// (spec.md §4.8, C10).
package tokenizer

import (
	"unicode"

	"github.com/japaniel/tentoku/pkg/dictdb"
	"github.com/japaniel/tentoku/pkg/model"
	"github.com/japaniel/tentoku/pkg/normalize"
	"github.com/japaniel/tentoku/pkg/search"
)

// defaultMaxResults bounds how many dictionary entries each GetWords
// lookup inside WordSearch may return; the ranker picks the top one
// regardless, but a small cap keeps pathologically ambiguous lookups cheap.
const defaultMaxResults = 32

// Tokenizer drives word_search over normalized input, producing a Token
// stream with no error return on its hot path — word_search yielding
// nothing never aborts tokenization (spec.md §4.8's failure semantics);
// the single-character fallback always makes forward progress.
type Tokenizer struct {
	dict       dictdb.Dictionary
	normOpts   normalize.Options
	maxResults int
}

// New returns a Tokenizer backed by dict, using normalize.DefaultOptions.
func New(dict dictdb.Dictionary) *Tokenizer {
	return &Tokenizer{dict: dict, normOpts: normalize.DefaultOptions(), maxResults: defaultMaxResults}
}

// Tokenize implements C10's loop (spec.md §4.8).
func (t *Tokenizer) Tokenize(text string) []model.Token {
	norm, offsets := normalize.NormalizeInput(text, t.normOpts)
	normRunes := []rune(norm)
	original := []rune(text)

	var tokens []model.Token
	i := 0
	for i < len(normRunes) {
		r := normRunes[i]

		if unicode.IsSpace(r) || isExcludedPunctuation(r) {
			tokens = append(tokens, model.Token{
				Text:  string(original[offsets[i]:offsets[i+1]]),
				Start: offsets[i],
				End:   offsets[i+1],
			})
			i++
			continue
		}

		if normalize.IsNumeric(string(r)) {
			j := i
			for j < len(normRunes) && normalize.IsNumeric(string(normRunes[j])) {
				j++
			}
			tokens = append(tokens, model.Token{
				Text:    string(original[offsets[i]:offsets[j]]),
				Start:   offsets[i],
				End:     offsets[j],
				Numeric: true,
			})
			i = j
			continue
		}

		remaining := string(normRunes[i:])
		results, err := search.WordSearch(remaining, t.dict, t.maxResults)
		if err == nil && len(results) > 0 {
			top := results[0]
			end := i + top.MatchLen
			entry := top.Entry
			tokens = append(tokens, model.Token{
				Text:                string(original[offsets[i]:offsets[end]]),
				Start:               offsets[i],
				End:                 offsets[end],
				DictionaryEntry:     &entry,
				DeinflectionReasons: top.ReasonChains,
			})
			i = end
			continue
		}

		tokens = append(tokens, model.Token{
			Text:  string(original[offsets[i]:offsets[i+1]]),
			Start: offsets[i],
			End:   offsets[i+1],
		})
		i++
	}

	return tokens
}

// excludedPunctuation is the set of ASCII/Japanese punctuation that always
// passes through as its own token rather than being offered to word search.
var excludedPunctuation = map[rune]bool{
	'。': true, '、': true, '「': true, '」': true, '『': true, '』': true,
	'・': true, '〜': true, '…': true, '！': true, '？': true,
	'(': true, ')': true, '[': true, ']': true, '.': true, ',': true,
	'!': true, '?': true, ':': true, ';': true, '"': true, '\'': true,
}

func isExcludedPunctuation(r rune) bool {
	return excludedPunctuation[r]
}
