// Package deinflect implements the rule-based deinflection engine (spec.md
// §3 DeinflectRule/DeinflectCandidate, §4.3 C3/C4): it applies the static
// rule table to a surface form via breadth-first search, producing every
// plausible dictionary-form candidate along with the reason chain that
// derives it.
package deinflect

import (
	"github.com/japaniel/tentoku/pkg/reason"
	"github.com/japaniel/tentoku/pkg/wordtype"
)

// maxDepth bounds BFS depth so pathological input can't loop forever; no
// real Japanese inflection chain nests past a handful of suffixes
// (spec.md §7 edge cases).
const maxDepth = 10

// Candidate is one reachable deinflection of an input surface form: a
// candidate dictionary-form word, the type mask it's compatible with, and
// every distinct reason chain (in forward, root-to-surface order) that
// derives it from the original surface form.
type Candidate struct {
	Word         string
	Type         wordtype.WordType
	ReasonChains []reason.Chain
}

type queueEntry struct {
	word   string
	typ    wordtype.WordType
	chain  reason.Chain
	isSeed bool
}

// key dedups BFS visits by (word, type) pair, per spec.md §4.3's
// "(word, type_mask) visited set" requirement.
type key struct {
	word string
	typ  wordtype.WordType
}

// Deinflect returns every candidate dictionary form reachable from word by
// repeatedly applying rules whose suffix matches the current frontier and
// whose FromType intersects the frontier's accumulated type mask. The
// surface form itself is always included (identity candidate, WordType
// Initial) since a word may already be in dictionary form.
//
// Reason chains are built by prepending each newly-applied rule's reason to
// the chains already derived for the word it was applied to: BFS peels
// suffixes outside-in (surface-to-root), which is the reverse of the
// chain's required forward (root-to-surface) order, so each step must go to
// the front, not the back.
func Deinflect(word string) []Candidate {
	if word == "" {
		return nil
	}

	visited := map[key]bool{}
	var candidates []Candidate
	candidateIdx := map[key]int{}

	addCandidate := func(w string, t wordtype.WordType, chain reason.Chain) {
		k := key{w, t}
		if idx, ok := candidateIdx[k]; ok {
			candidates[idx].ReasonChains = appendChainIfNew(candidates[idx].ReasonChains, chain)
			return
		}
		candidateIdx[k] = len(candidates)
		var chains []reason.Chain
		if len(chain) > 0 {
			chains = []reason.Chain{chain}
		}
		candidates = append(candidates, Candidate{Word: w, Type: t, ReasonChains: chains})
	}

	// The seed frontier entry carries wordtype.Any, not Initial: we don't
	// yet know the surface form's conjugation class, so the first round of
	// rule application must try every rule whose suffix matches regardless
	// of FromType. The Candidate recorded for the surface form itself still
	// carries Initial (wordtype.Matches treats Initial as "match any
	// dictionary entry", appropriate for an already-dictionary-form word).
	queue := []queueEntry{{word: word, typ: wordtype.Any, chain: nil, isSeed: true}}
	visited[key{word, wordtype.Any}] = true
	addCandidate(word, wordtype.Initial, nil)

	depth := 0
	for len(queue) > 0 && depth < maxDepth {
		depth++
		var next []queueEntry
		for _, entry := range queue {
			for _, length := range suffixLengths {
				// An empty From suffix matches the tail of any word, so
				// without this gate it would rewrite every candidate at
				// every depth instead of only the original surface form
				// (spec.md §4.3: "a rule with empty from applies only to
				// the identity seed").
				if length == 0 && !entry.isSeed {
					continue
				}
				runes := []rune(entry.word)
				if len(runes) < length {
					continue
				}
				suffix := string(runes[len(runes)-length:])
				candidateRules, ok := ruleIndex[suffix]
				if !ok {
					continue
				}
				stem := string(runes[:len(runes)-length])
				for _, rl := range candidateRules {
					if rl.FromType&entry.typ == 0 {
						continue
					}
					newWord := stem + rl.To
					if newWord == "" {
						continue
					}
					newChain := append(reason.Chain{rl.Reason}, entry.chain...)
					newKey := key{newWord, rl.ToType}
					addCandidate(newWord, rl.ToType, newChain)
					if !visited[newKey] {
						visited[newKey] = true
						next = append(next, queueEntry{word: newWord, typ: rl.ToType, chain: newChain})
					}
				}
			}
		}
		queue = next
	}

	return candidates
}

// appendChainIfNew appends chain to chains unless an equal chain is already
// present, keeping ReasonChains free of duplicate derivations of the same
// candidate.
func appendChainIfNew(chains []reason.Chain, chain reason.Chain) []reason.Chain {
	for _, existing := range chains {
		if existing.Equal(chain) {
			return chains
		}
	}
	if len(chain) == 0 {
		return chains
	}
	return append(chains, chain)
}

// CandidateWords returns the distinct surface strings of cands in first-seen
// order, ignoring type/chain detail. Used by callers and tests that only need the word
// list.
func CandidateWords(cands []Candidate) []string {
	seen := make(map[string]bool, len(cands))
	out := make([]string, 0, len(cands))
	for _, c := range cands {
		if seen[c.Word] {
			continue
		}
		seen[c.Word] = true
		out = append(out, c.Word)
	}
	return out
}
