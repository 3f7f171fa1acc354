package search

import (
	"github.com/japaniel/tentoku/pkg/deinflect"
	"github.com/japaniel/tentoku/pkg/dictdb"
	"github.com/japaniel/tentoku/pkg/model"
	"github.com/japaniel/tentoku/pkg/reason"
	"github.com/japaniel/tentoku/pkg/wordtype"
)

// maxPrefixLength bounds how long a candidate prefix of the remaining input
// can be (spec.md §4.6, "15 characters is the default; beyond this no
// dictionary entry can match").
const maxPrefixLength = 15

// WordSearch implements C9 exactly as spec.md §4.6 describes: it scans
// prefixes of input from longest to shortest, deinflecting each and
// querying dict, stopping at the first prefix length that yields any
// result. Returns nil if nothing matched at any prefix length.
func WordSearch(input string, dict dictdb.Dictionary, maxResults int) ([]model.WordResult, error) {
	runes := []rune(input)
	limit := len(runes)
	if limit > maxPrefixLength {
		limit = maxPrefixLength
	}

	for length := limit; length >= 1; length-- {
		prefix := string(runes[:length])

		var results []model.WordResult
		candidates := deinflect.Deinflect(prefix)
		for _, cand := range candidates {
			entries, err := dict.GetWords(cand.Word, maxResults, prefix)
			if err != nil {
				return nil, err
			}
			for _, entry := range entries {
				if !wordtype.Matches(&entry, cand.Type) {
					continue
				}
				results = append(results, model.WordResult{
					Entry:        entry,
					MatchLen:     length,
					ReasonChains: candidateChains(cand),
					MatchType:    classify(cand, prefix),
				})
			}
		}

		if len(results) > 0 {
			Rank(results)
			return results, nil
		}
	}

	return nil, nil
}

// candidateChains returns cand's reason chains, or a single empty chain
// when cand is the identity candidate (no transformation applied).
func candidateChains(cand deinflect.Candidate) []reason.Chain {
	if len(cand.ReasonChains) == 0 {
		return []reason.Chain{{}}
	}
	return cand.ReasonChains
}

// classify implements spec.md §4.6's match_type classification: identity
// candidates (word == prefix, no reason chain) whose prefix is pure
// katakana are KanaFold, whether the store matched the katakana text itself
// or its hiragana fold (the entry is not consulted); other identity candidates
// are ExactKanji when the matched text contains a kanji, ExactKana when it
// doesn't (spec.md §4.6, "per which reading matched"); anything else is
// Deinflected.
func classify(cand deinflect.Candidate, prefix string) model.MatchType {
	isIdentity := cand.Word == prefix && len(cand.ReasonChains) == 0
	if !isIdentity {
		return model.Deinflected
	}
	if isPureKatakana(prefix) {
		return model.KanaFold
	}
	if containsKanji(prefix) {
		return model.ExactKanji
	}
	return model.ExactKana
}

func containsKanji(s string) bool {
	for _, r := range s {
		if r >= 0x4E00 && r <= 0x9FFF {
			return true
		}
	}
	return false
}

func isPureKatakana(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < 0x30A1 || r > 0x30FA {
			return false
		}
	}
	return true
}
