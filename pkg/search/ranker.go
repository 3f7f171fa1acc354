// Package search implements word search (spec.md §4.6, C9) and result
// ranking (spec.md §4.7, C8).
package search

import (
	"sort"

	"github.com/japaniel/tentoku/pkg/model"
	"github.com/japaniel/tentoku/pkg/reason"
)

// Rank sorts results in place by spec.md §4.7's lexicographic key:
// (a) match_len descending; (b) priority-marked reading first;
// (c) ExactKanji/ExactKana before Deinflected; (d) shorter reason chain
// first; (e) smaller entry_id first (deterministic tie-break).
func Rank(results []model.WordResult) {
	sort.SliceStable(results, func(i, j int) bool {
		a, b := results[i], results[j]

		if a.MatchLen != b.MatchLen {
			return a.MatchLen > b.MatchLen
		}

		ap, bp := a.Entry.HasPriorityReading(), b.Entry.HasPriorityReading()
		if ap != bp {
			return ap
		}

		aExact, bExact := isExact(a.MatchType), isExact(b.MatchType)
		if aExact != bExact {
			return aExact
		}

		aLen, bLen := shortestChainLen(a.ReasonChains), shortestChainLen(b.ReasonChains)
		if aLen != bLen {
			return aLen < bLen
		}

		return a.Entry.EntryID < b.Entry.EntryID
	})
}

func isExact(t model.MatchType) bool {
	return t == model.ExactKanji || t == model.ExactKana
}

func shortestChainLen(chains []reason.Chain) int {
	if len(chains) == 0 {
		return 0
	}
	best := len(chains[0])
	for _, c := range chains[1:] {
		if len(c) < best {
			best = len(c)
		}
	}
	return best
}
