// Package wordtype classifies the grammatical category of a surface form
// during deinflection (spec.md §3 WordType, §4.4 word-type matcher).
package wordtype

import "github.com/japaniel/tentoku/pkg/model"

// WordType is a bitmask tagging which grammatical categories a candidate
// (or a dictionary entry's part-of-speech) is compatible with.
type WordType uint32

const (
	Ichidan WordType = 1 << iota
	GodanK
	GodanG
	GodanS
	GodanT
	GodanN
	GodanB
	GodanM
	GodanR
	GodanU
	GodanW
	Suru
	SuruSpecial // する itself
	Kuru        // 来る
	IAdjective
	NaAdjective
	Noun
	AuxV   // auxiliary verb stem, used mid-chain by some rules
	AuxAdj // auxiliary adjective stem
	// Initial matches anything; Deinflect gives it to the identity
	// candidate, so the word-type check for an un-deinflected dictionary
	// hit trivially passes.
	Initial
)

// Godan is the union of every godan row, handy for rules that apply to all
// godan verbs regardless of row (e.g. the ちゃう/とく contraction rules).
const Godan = GodanK | GodanG | GodanS | GodanT | GodanN | GodanB | GodanM | GodanR | GodanU | GodanW

// Verb is the union of every verb-like category.
const Verb = Ichidan | Godan | Suru | SuruSpecial | Kuru

// Any is the full mask; Deinflect gives it to the seed frontier entry so
// every rule whose suffix matches is tried.
const Any = WordType(^uint32(0))

// posToType maps a JMdict part-of-speech tag to the WordType bit(s) it
// implies. Grounded in _examples/wedgeV-jmdict/parser.go's entity table,
// which carries the full "v1"/"v5k"/"adj-i"/"vs"/"vk"/etc. JMdict POS
// vocabulary this spec references (spec.md §4.4).
var posToType = map[string]WordType{
	"v1":    Ichidan,
	"v1-s":  Ichidan,
	"vz":    Ichidan,
	"v5k":   GodanK,
	"v5k-s": GodanK,
	"v5g":   GodanG,
	"v5s":   GodanS,
	"v5t":   GodanT,
	"v5n":   GodanN,
	"v5b":   GodanB,
	"v5m":   GodanM,
	"v5r":   GodanR,
	"v5r-i": GodanR,
	"v5u":   GodanU,
	"v5u-s": GodanU,
	"v5aru": GodanR,
	"v5uru": GodanR,
	"vs":    Suru,
	"vs-c":  Suru,
	"vs-i":  Suru,
	"vs-s":  SuruSpecial,
	"vk":    Kuru,
	"adj-i": IAdjective,
	"adj-ix": IAdjective,
	"adj-na": NaAdjective,
	"adj-nari": NaAdjective,
	"n":      Noun,
	"n-adv":  Noun,
	"n-suf":  Noun,
	"n-pref": Noun,
	"n-t":    Noun,
	"n-pr":   Noun,
	"aux-v":  AuxV,
	"aux-adj": AuxAdj,
	"cop-da": AuxV,
}

// TypeForPOS returns the WordType bit(s) a single JMdict POS tag implies,
// or 0 if the tag is unrecognized. Unknown tags contribute no bits and are
// never an error (spec.md §7).
func TypeForPOS(tag string) WordType {
	return posToType[tag]
}

// Matches reports whether entry is compatible with the required type mask
// (spec.md §4.4, C7). Initial in required trivially passes, admitting
// un-deinflected dictionary-form hits.
func Matches(entry *model.WordEntry, required WordType) bool {
	if required&Initial != 0 {
		return true
	}
	for _, sense := range entry.Senses {
		for _, tag := range sense.PosTags {
			if t := TypeForPOS(tag); t != 0 && t&required != 0 {
				return true
			}
		}
	}
	return false
}
