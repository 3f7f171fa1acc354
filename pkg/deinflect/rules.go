package deinflect

import (
	"sort"

	"github.com/japaniel/tentoku/pkg/reason"
	"github.com/japaniel/tentoku/pkg/wordtype"
)

// Rule is one row of the static deinflection rule table (spec.md §3
// DeinflectRule): a suffix rewrite, a required from-type mask, the
// resulting to-type mask, and the Reason it records.
type Rule struct {
	From   string
	To     string
	FromType wordtype.WordType
	ToType   wordtype.WordType
	Reason   reason.Reason
}

var (
	ichi  = wordtype.Ichidan
	godan = wordtype.Godan
	k     = wordtype.GodanK
	g     = wordtype.GodanG
	s     = wordtype.GodanS
	t     = wordtype.GodanT
	n     = wordtype.GodanN
	b     = wordtype.GodanB
	m     = wordtype.GodanM
	r     = wordtype.GodanR
	u     = wordtype.GodanU
	w     = wordtype.GodanW
	suru  = wordtype.Suru
	surus = wordtype.SuruSpecial
	kuru  = wordtype.Kuru
	iadj  = wordtype.IAdjective
	naadj = wordtype.NaAdjective
	noun  = wordtype.Noun
	auxv  = wordtype.AuxV
	verb  = wordtype.Verb
	initial = wordtype.Initial
)

// rules is the static deinflection rule table (spec.md §3, §4.3). Each
// entry rewrites a surface suffix into one step closer to the dictionary
// form. The table is grouped conceptually by grammatical category below;
// ruleIndex (built in init) is what the BFS actually consults.
var rules = []Rule{
	// -- polite forms (ます family) --------------------------------------
	{"ました", "る", ichi, ichi, reason.PolitePast},
	{"ました", "く", k, k, reason.PolitePast},
	{"ました", "ぐ", g, g, reason.PolitePast},
	{"ました", "す", s, s, reason.PolitePast},
	{"ました", "つ", t, t, reason.PolitePast},
	{"ました", "ぬ", n, n, reason.PolitePast},
	{"ました", "ぶ", b, b, reason.PolitePast},
	{"ました", "む", m, m, reason.PolitePast},
	{"ました", "る", r, r, reason.PolitePast},
	{"いました", "う", u, u, reason.PolitePast},
	{"ました", "する", suru, suru, reason.PolitePast},
	{"ました", "来る", kuru, kuru, reason.PolitePast},
	{"ました", "くる", kuru, kuru, reason.PolitePast},

	{"ます", "る", ichi, ichi, reason.Polite},
	{"きます", "く", k, k, reason.Polite},
	{"ぎます", "ぐ", g, g, reason.Polite},
	{"します", "す", s, s, reason.Polite},
	{"ちます", "つ", t, t, reason.Polite},
	{"にます", "ぬ", n, n, reason.Polite},
	{"びます", "ぶ", b, b, reason.Polite},
	{"みます", "む", m, m, reason.Polite},
	{"ります", "る", r, r, reason.Polite},
	{"います", "う", u, u, reason.Polite},
	{"します", "する", suru, suru, reason.Polite},
	{"します", "す", surus, surus, reason.Polite},
	{"きます", "来る", kuru, kuru, reason.Polite},
	{"きます", "くる", kuru, kuru, reason.Polite},

	{"ません", "る", ichi, ichi, reason.PoliteNegative},
	{"きません", "く", k, k, reason.PoliteNegative},
	{"ぎません", "ぐ", g, g, reason.PoliteNegative},
	{"しません", "す", s, s, reason.PoliteNegative},
	{"ちません", "つ", t, t, reason.PoliteNegative},
	{"にません", "ぬ", n, n, reason.PoliteNegative},
	{"びません", "ぶ", b, b, reason.PoliteNegative},
	{"みません", "む", m, m, reason.PoliteNegative},
	{"りません", "る", r, r, reason.PoliteNegative},
	{"いません", "う", u, u, reason.PoliteNegative},
	{"しません", "する", suru, suru, reason.PoliteNegative},
	{"きません", "来る", kuru, kuru, reason.PoliteNegative},

	{"ませんでした", "る", ichi, ichi, reason.PoliteNegativePast},
	{"きませんでした", "く", k, k, reason.PoliteNegativePast},
	{"ぎませんでした", "ぐ", g, g, reason.PoliteNegativePast},
	{"しませんでした", "す", s, s, reason.PoliteNegativePast},
	{"ちませんでした", "つ", t, t, reason.PoliteNegativePast},
	{"にませんでした", "ぬ", n, n, reason.PoliteNegativePast},
	{"びませんでした", "ぶ", b, b, reason.PoliteNegativePast},
	{"みませんでした", "む", m, m, reason.PoliteNegativePast},
	{"りませんでした", "る", r, r, reason.PoliteNegativePast},
	{"いませんでした", "う", u, u, reason.PoliteNegativePast},
	{"しませんでした", "する", suru, suru, reason.PoliteNegativePast},
	{"きませんでした", "来る", kuru, kuru, reason.PoliteNegativePast},

	{"ましょう", "る", ichi, ichi, reason.PoliteVolitional},
	{"きましょう", "く", k, k, reason.PoliteVolitional},
	{"ぎましょう", "ぐ", g, g, reason.PoliteVolitional},
	{"しましょう", "す", s, s, reason.PoliteVolitional},
	{"ちましょう", "つ", t, t, reason.PoliteVolitional},
	{"にましょう", "ぬ", n, n, reason.PoliteVolitional},
	{"びましょう", "ぶ", b, b, reason.PoliteVolitional},
	{"みましょう", "む", m, m, reason.PoliteVolitional},
	{"りましょう", "る", r, r, reason.PoliteVolitional},
	{"いましょう", "う", u, u, reason.PoliteVolitional},
	{"しましょう", "する", suru, suru, reason.PoliteVolitional},

	// masu-stem: identity-seeded (empty from matches only the seed); it
	// appends ます to the surface form and marks the result AuxV.
	{"", "ます", ichi, auxv, reason.MasuStem},

	// -- plain past/negative -----------------------------------------------
	{"た", "る", ichi, ichi, reason.Past},
	{"いた", "く", k, k, reason.Past},
	{"いだ", "ぐ", g, g, reason.Past},
	{"した", "す", s, s, reason.Past},
	{"った", "つ", t, t, reason.Past},
	{"った", "る", r, r, reason.Past},
	{"った", "う", u, u, reason.Past},
	{"んだ", "ぬ", n, n, reason.Past},
	{"んだ", "ぶ", b, b, reason.Past},
	{"んだ", "む", m, m, reason.Past},
	{"した", "する", suru, suru, reason.Past},
	{"来た", "来る", kuru, kuru, reason.Past},
	{"きた", "くる", kuru, kuru, reason.Past},
	{"かった", "い", iadj, iadj, reason.Past},
	{"だった", "", naadj | noun, naadj | noun, reason.Past},

	{"ない", "る", ichi, ichi, reason.Negative},
	{"かない", "く", k, k, reason.Negative},
	{"がない", "ぐ", g, g, reason.Negative},
	{"さない", "す", s, s, reason.Negative},
	{"たない", "つ", t, t, reason.Negative},
	{"なない", "ぬ", n, n, reason.Negative},
	{"ばない", "ぶ", b, b, reason.Negative},
	{"まない", "む", m, m, reason.Negative},
	{"らない", "る", r, r, reason.Negative},
	{"わない", "う", u, u, reason.Negative},
	{"しない", "する", suru, suru, reason.Negative},
	{"こない", "来る", kuru, kuru, reason.Negative},
	{"こない", "くる", kuru, kuru, reason.Negative},
	{"くない", "い", iadj, iadj, reason.Negative},
	{"ではない", "", naadj | noun, naadj | noun, reason.Negative},
	{"じゃない", "", naadj | noun, naadj | noun, reason.Negative},

	{"なかった", "る", ichi, ichi, reason.PastNegative},
	{"かなかった", "く", k, k, reason.PastNegative},
	{"がなかった", "ぐ", g, g, reason.PastNegative},
	{"さなかった", "す", s, s, reason.PastNegative},
	{"たなかった", "つ", t, t, reason.PastNegative},
	{"ななかった", "ぬ", n, n, reason.PastNegative},
	{"ばなかった", "ぶ", b, b, reason.PastNegative},
	{"まなかった", "む", m, m, reason.PastNegative},
	{"らなかった", "る", r, r, reason.PastNegative},
	{"わなかった", "う", u, u, reason.PastNegative},
	{"しなかった", "する", suru, suru, reason.PastNegative},
	{"こなかった", "来る", kuru, kuru, reason.PastNegative},
	{"くなかった", "い", iadj, iadj, reason.PastNegative},

	// -- te-form -------------------------------------------------------------
	{"て", "る", ichi, ichi, reason.Te},
	{"いて", "く", k, k, reason.Te},
	{"いで", "ぐ", g, g, reason.Te},
	{"して", "す", s, s, reason.Te},
	{"って", "つ", t, t, reason.Te},
	{"って", "る", r, r, reason.Te},
	{"って", "う", u, u, reason.Te},
	{"んで", "ぬ", n, n, reason.Te},
	{"んで", "ぶ", b, b, reason.Te},
	{"んで", "む", m, m, reason.Te},
	{"して", "する", suru, suru, reason.Te},
	{"来て", "来る", kuru, kuru, reason.Te},
	{"きて", "くる", kuru, kuru, reason.Te},
	{"くて", "い", iadj, iadj, reason.Te},
	{"で", "", naadj, naadj, reason.Te},

	{"なくて", "る", ichi, ichi, reason.TeNegative},
	{"なくて", "く", k, k, reason.TeNegative},
	{"なくて", "ぐ", g, g, reason.TeNegative},
	{"なくて", "す", s, s, reason.TeNegative},
	{"なくて", "つ", t, t, reason.TeNegative},
	{"なくて", "ぬ", n, n, reason.TeNegative},
	{"なくて", "ぶ", b, b, reason.TeNegative},
	{"なくて", "む", m, m, reason.TeNegative},
	{"なくて", "る", r, r, reason.TeNegative},
	{"なくて", "う", u, u, reason.TeNegative},
	{"なくて", "する", suru, suru, reason.TeNegative},
	{"こなくて", "来る", kuru, kuru, reason.TeNegative},
	{"くなくて", "い", iadj, iadj, reason.TeNegative},

	// -- continuous / progressive (ている, contracted てる) ------------------
	//
	// Each suffix here is a Te-form suffix (see the Te section above) with
	// いる/いた/る/た appended directly, so the dictionary form is recovered
	// in a single Continuous step rather than via a separate later Te step
	// (which would otherwise double-count the derivation as [Te, Continuous,
	// ...] instead of the spec's expected [Continuous, ...]).
	{"ている", "る", ichi, ichi, reason.Continuous},
	{"ていた", "る", ichi, ichi, reason.Continuous},
	{"てる", "る", ichi, ichi, reason.Continuous},
	{"てた", "る", ichi, ichi, reason.Continuous},
	{"いている", "く", k, k, reason.Continuous},
	{"いていた", "く", k, k, reason.Continuous},
	{"いてる", "く", k, k, reason.Continuous},
	{"いてた", "く", k, k, reason.Continuous},
	{"いでいる", "ぐ", g, g, reason.Continuous},
	{"いでいた", "ぐ", g, g, reason.Continuous},
	{"いでる", "ぐ", g, g, reason.Continuous},
	{"いでた", "ぐ", g, g, reason.Continuous},
	{"している", "す", s, s, reason.Continuous},
	{"していた", "す", s, s, reason.Continuous},
	{"してる", "す", s, s, reason.Continuous},
	{"してた", "す", s, s, reason.Continuous},
	{"っている", "つ", t, t, reason.Continuous},
	{"っていた", "つ", t, t, reason.Continuous},
	{"ってる", "つ", t, t, reason.Continuous},
	{"ってた", "つ", t, t, reason.Continuous},
	{"っている", "る", r, r, reason.Continuous},
	{"っていた", "る", r, r, reason.Continuous},
	{"ってる", "る", r, r, reason.Continuous},
	{"ってた", "る", r, r, reason.Continuous},
	{"っている", "う", u, u, reason.Continuous},
	{"っていた", "う", u, u, reason.Continuous},
	{"ってる", "う", u, u, reason.Continuous},
	{"ってた", "う", u, u, reason.Continuous},
	{"んでいる", "ぬ", n, n, reason.Continuous},
	{"んでいた", "ぬ", n, n, reason.Continuous},
	{"んでる", "ぬ", n, n, reason.Continuous},
	{"んでた", "ぬ", n, n, reason.Continuous},
	{"んでいる", "ぶ", b, b, reason.Continuous},
	{"んでいた", "ぶ", b, b, reason.Continuous},
	{"んでる", "ぶ", b, b, reason.Continuous},
	{"んでた", "ぶ", b, b, reason.Continuous},
	{"んでいる", "む", m, m, reason.Continuous},
	{"んでいた", "む", m, m, reason.Continuous},
	{"んでる", "む", m, m, reason.Continuous},
	{"んでた", "む", m, m, reason.Continuous},
	{"している", "する", suru, suru, reason.Continuous},
	{"していた", "する", suru, suru, reason.Continuous},
	{"してる", "する", suru, suru, reason.Continuous},
	{"してた", "する", suru, suru, reason.Continuous},
	{"来ている", "来る", kuru, kuru, reason.Continuous},
	{"来ていた", "来る", kuru, kuru, reason.Continuous},
	{"きている", "くる", kuru, kuru, reason.Continuous},
	{"きていた", "くる", kuru, kuru, reason.Continuous},

	{"ていない", "る", ichi, ichi, reason.ContinuousNegative},
	{"ていなかった", "る", ichi, ichi, reason.ContinuousNegative},
	{"いていない", "く", k, k, reason.ContinuousNegative},
	{"いでいない", "ぐ", g, g, reason.ContinuousNegative},
	{"していない", "す", s, s, reason.ContinuousNegative},
	{"っていない", "つ", t, t, reason.ContinuousNegative},
	{"っていない", "る", r, r, reason.ContinuousNegative},
	{"っていない", "う", u, u, reason.ContinuousNegative},
	{"んでいない", "ぬ", n, n, reason.ContinuousNegative},
	{"んでいない", "ぶ", b, b, reason.ContinuousNegative},
	{"んでいない", "む", m, m, reason.ContinuousNegative},
	{"していない", "する", suru, suru, reason.ContinuousNegative},

	// -- contractions: ちゃう/ちまう (てしまう), とく (ておく) ------------------
	{"ちゃう", "て", ichi | godan | suru | kuru, ichi, reason.Chau},
	{"ちゃった", "て", ichi | godan | suru | kuru, ichi, reason.Chau},
	{"じゃう", "で", ichi | godan | suru | kuru, ichi, reason.Chau},
	{"じゃった", "で", ichi | godan | suru | kuru, ichi, reason.Chau},
	{"ちまう", "て", ichi | godan | suru | kuru, ichi, reason.Chau},
	{"とく", "て", ichi | godan | suru | kuru, ichi, reason.Toku},
	{"どく", "で", ichi | godan | suru | kuru, ichi, reason.Toku},

	// -- passive ---------------------------------------------------------
	{"られる", "る", ichi, ichi, reason.Passive},
	{"かれる", "く", k, k, reason.Passive},
	{"がれる", "ぐ", g, g, reason.Passive},
	{"される", "す", s, s, reason.Passive},
	{"たれる", "つ", t, t, reason.Passive},
	{"なれる", "ぬ", n, n, reason.Passive},
	{"ばれる", "ぶ", b, b, reason.Passive},
	{"まれる", "む", m, m, reason.Passive},
	{"られる", "る", r, r, reason.Passive},
	{"われる", "う", u, u, reason.Passive},
	{"される", "する", suru, suru, reason.Passive},
	{"こられる", "来る", kuru, kuru, reason.Passive},

	// -- causative ---------------------------------------------------------
	{"させる", "る", ichi, ichi, reason.Causative},
	{"かせる", "く", k, k, reason.Causative},
	{"がせる", "ぐ", g, g, reason.Causative},
	{"させる", "す", s, s, reason.Causative},
	{"たせる", "つ", t, t, reason.Causative},
	{"なせる", "ぬ", n, n, reason.Causative},
	{"ばせる", "ぶ", b, b, reason.Causative},
	{"ませる", "む", m, m, reason.Causative},
	{"らせる", "る", r, r, reason.Causative},
	{"わせる", "う", u, u, reason.Causative},
	{"させる", "する", suru, suru, reason.Causative},
	{"こさせる", "来る", kuru, kuru, reason.Causative},
	// alternate short causative (5-dan): -かす/-がす/-たす etc.
	{"かす", "く", k, k, reason.CausativeAlt},
	{"がす", "ぐ", g, g, reason.CausativeAlt},
	{"たす", "つ", t, t, reason.CausativeAlt},

	// -- causative-passive --------------------------------------------------
	{"させられる", "る", ichi, ichi, reason.CausativePassive},
	{"かされる", "く", k, k, reason.CausativePassive},
	{"がされる", "ぐ", g, g, reason.CausativePassive},
	{"たされる", "つ", t, t, reason.CausativePassive},
	{"なされる", "ぬ", n, n, reason.CausativePassive},
	{"ばされる", "ぶ", b, b, reason.CausativePassive},
	{"まされる", "む", m, m, reason.CausativePassive},
	{"らされる", "る", r, r, reason.CausativePassive},
	{"わされる", "う", u, u, reason.CausativePassive},
	{"させられる", "する", suru, suru, reason.CausativePassive},
	{"こさせられる", "来る", kuru, kuru, reason.CausativePassive},

	// -- potential ---------------------------------------------------------
	{"られる", "る", ichi, ichi, reason.Potential},
	{"ける", "く", k, k, reason.Potential},
	{"げる", "ぐ", g, g, reason.Potential},
	{"せる", "す", s, s, reason.Potential},
	{"てる", "つ", t, t, reason.Potential},
	{"ねる", "ぬ", n, n, reason.Potential},
	{"べる", "ぶ", b, b, reason.Potential},
	{"める", "む", m, m, reason.Potential},
	{"れる", "る", r, r, reason.Potential},
	{"える", "う", u, u, reason.Potential},
	{"できる", "する", suru, suru, reason.Potential},
	{"これる", "来る", kuru, kuru, reason.Potential},
	// colloquial ら-抜き potential, identical surface to Ichidan-れる
	{"れる", "る", ichi, ichi, reason.PotentialAlt},

	// -- imperative ----------------------------------------------------------
	{"ろ", "る", ichi, ichi, reason.Imperative},
	{"よ", "る", ichi, ichi, reason.Imperative},
	{"け", "く", k, k, reason.Imperative},
	{"げ", "ぐ", g, g, reason.Imperative},
	{"せ", "す", s, s, reason.Imperative},
	{"て", "つ", t, t, reason.Imperative},
	{"ね", "ぬ", n, n, reason.Imperative},
	{"べ", "ぶ", b, b, reason.Imperative},
	{"め", "む", m, m, reason.Imperative},
	{"れ", "る", r, r, reason.Imperative},
	{"え", "う", u, u, reason.Imperative},
	{"しろ", "する", suru, suru, reason.Imperative},
	{"せよ", "する", suru, suru, reason.Imperative},
	{"こい", "来る", kuru, kuru, reason.Imperative},

	{"るな", "る", ichi, ichi, reason.ImperativeNegative},
	{"くな", "く", k, k, reason.ImperativeNegative},
	{"ぐな", "ぐ", g, g, reason.ImperativeNegative},
	{"すな", "す", s, s, reason.ImperativeNegative},
	{"つな", "つ", t, t, reason.ImperativeNegative},
	{"ぬな", "ぬ", n, n, reason.ImperativeNegative},
	{"ぶな", "ぶ", b, b, reason.ImperativeNegative},
	{"むな", "む", m, m, reason.ImperativeNegative},
	{"るな", "る", r, r, reason.ImperativeNegative},
	{"うな", "う", u, u, reason.ImperativeNegative},

	// -- volitional ---------------------------------------------------------
	{"よう", "る", ichi, ichi, reason.Volitional},
	{"こう", "く", k, k, reason.Volitional},
	{"ごう", "ぐ", g, g, reason.Volitional},
	{"そう", "す", s, s, reason.Volitional},
	{"とう", "つ", t, t, reason.Volitional},
	{"のう", "ぬ", n, n, reason.Volitional},
	{"ぼう", "ぶ", b, b, reason.Volitional},
	{"もう", "む", m, m, reason.Volitional},
	{"ろう", "る", r, r, reason.Volitional},
	{"おう", "う", u, u, reason.Volitional},
	{"しよう", "する", suru, suru, reason.Volitional},
	{"こよう", "来る", kuru, kuru, reason.Volitional},

	// -- conditional (ば form) and tara --------------------------------------
	{"れば", "る", ichi, ichi, reason.Conditional},
	{"けば", "く", k, k, reason.Conditional},
	{"げば", "ぐ", g, g, reason.Conditional},
	{"せば", "す", s, s, reason.Conditional},
	{"てば", "つ", t, t, reason.Conditional},
	{"ねば", "ぬ", n, n, reason.Conditional},
	{"べば", "ぶ", b, b, reason.Conditional},
	{"めば", "む", m, m, reason.Conditional},
	{"れば", "る", r, r, reason.Conditional},
	{"えば", "う", u, u, reason.Conditional},
	{"すれば", "する", suru, suru, reason.Conditional},
	{"くれば", "来る", kuru, kuru, reason.Conditional},
	{"ければ", "い", iadj, iadj, reason.Conditional},
	{"なければ", "", ichi | godan | suru | kuru | iadj | naadj | noun, ichi | godan | suru | kuru | iadj | naadj | noun, reason.Conditional},

	{"たら", "る", ichi, ichi, reason.Tara},
	{"いたら", "く", k, k, reason.Tara},
	{"いだら", "ぐ", g, g, reason.Tara},
	{"したら", "す", s, s, reason.Tara},
	{"ったら", "つ", t, t, reason.Tara},
	{"ったら", "る", r, r, reason.Tara},
	{"ったら", "う", u, u, reason.Tara},
	{"んだら", "ぬ", n, n, reason.Tara},
	{"んだら", "ぶ", b, b, reason.Tara},
	{"んだら", "む", m, m, reason.Tara},
	{"したら", "する", suru, suru, reason.Tara},
	{"来たら", "来る", kuru, kuru, reason.Tara},
	{"きたら", "くる", kuru, kuru, reason.Tara},
	{"かったら", "い", iadj, iadj, reason.Tara},
	{"なかったら", "", ichi | godan | suru | kuru | iadj | naadj | noun, ichi | godan | suru | kuru | iadj | naadj | noun, reason.Tara},

	// -- listing / enumerative たり --------------------------------------------
	{"たり", "る", ichi, ichi, reason.Tari},
	{"いたり", "く", k, k, reason.Tari},
	{"いだり", "ぐ", g, g, reason.Tari},
	{"したり", "す", s, s, reason.Tari},
	{"ったり", "つ", t, t, reason.Tari},
	{"ったり", "る", r, r, reason.Tari},
	{"ったり", "う", u, u, reason.Tari},
	{"んだり", "ぬ", n, n, reason.Tari},
	{"んだり", "ぶ", b, b, reason.Tari},
	{"んだり", "む", m, m, reason.Tari},
	{"したり", "する", suru, suru, reason.Tari},

	// -- classical / archaic negatives: ず, ぬ --------------------------------
	{"ず", "る", ichi, ichi, reason.Zu},
	{"かず", "く", k, k, reason.Zu},
	{"がず", "ぐ", g, g, reason.Zu},
	{"さず", "す", s, s, reason.Zu},
	{"たず", "つ", t, t, reason.Zu},
	{"なず", "ぬ", n, n, reason.Zu},
	{"ばず", "ぶ", b, b, reason.Zu},
	{"まず", "む", m, m, reason.Zu},
	{"らず", "る", r, r, reason.Zu},
	{"わず", "う", u, u, reason.Zu},
	{"せず", "する", suru, suru, reason.Zu},

	{"ぬ", "る", ichi, ichi, reason.Nu},
	{"かぬ", "く", k, k, reason.Nu},
	{"がぬ", "ぐ", g, g, reason.Nu},
	{"さぬ", "す", s, s, reason.Nu},
	{"たぬ", "つ", t, t, reason.Nu},
	{"なぬ", "ぬ", n, n, reason.Nu},
	{"ばぬ", "ぶ", b, b, reason.Nu},
	{"まぬ", "む", m, m, reason.Nu},
	{"らぬ", "る", r, r, reason.Nu},
	{"わぬ", "う", u, u, reason.Nu},

	// -- desire たい and its inflections -------------------------------------
	{"たい", "る", ichi, ichi, reason.Desire},
	{"きたい", "く", k, k, reason.Desire},
	{"ぎたい", "ぐ", g, g, reason.Desire},
	{"したい", "す", s, s, reason.Desire},
	{"ちたい", "つ", t, t, reason.Desire},
	{"にたい", "ぬ", n, n, reason.Desire},
	{"びたい", "ぶ", b, b, reason.Desire},
	{"みたい", "む", m, m, reason.Desire},
	{"りたい", "る", r, r, reason.Desire},
	{"いたい", "う", u, u, reason.Desire},
	{"したい", "する", suru, suru, reason.Desire},
	{"きたい", "来る", kuru, kuru, reason.Desire},
	{"たくない", "る", ichi, ichi, reason.DesireNegative},

	// -- すぎる (too much) off the masu-stem ----------------------------------
	{"すぎる", "", auxv, ichi, reason.Sugiru},
	{"すぎた", "", auxv, ichi, reason.Sugiru},

	// -- adjective inflection --------------------------------------------
	{"く", "い", iadj, iadj, reason.Adv},
	{"さ", "い", iadj, iadj, reason.NounIzing},
	{"み", "い", iadj, iadj, reason.NounIzing},
	{"に", "", naadj, naadj, reason.Adv},
	{"", "い", iadj, iadj, reason.AdjectiveStem},

	// -- honorific/humble contractions ----------------------------------------
	{"られる", "る", ichi, ichi, reason.Honorific},
	{"になる", "", ichi | godan | suru | kuru, ichi | godan | suru | kuru, reason.Honorific},
	{"いたします", "する", suru, suru, reason.Humble},
	{"いたす", "する", suru, suru, reason.Humble},
	{"ございます", "です", noun, noun, reason.Humble},
	{"でございます", "です", noun, noun, reason.Humble},

	// -- copula です/だ ---------------------------------------------------------
	{"でした", "です", noun | naadj, noun | naadj, reason.PolitePast},
	{"じゃありません", "です", noun | naadj, noun | naadj, reason.PoliteNegative},
	{"ではありません", "です", noun | naadj, noun | naadj, reason.PoliteNegative},

	// -- impossible (えない-type colloquial) -----------------------------------
	{"えない", "う", u, u, reason.Impossible},

	// -- kansai-ben variants -------------------------------------------------
	{"へん", "ない", ichi | godan | suru | kuru, ichi | godan | suru | kuru, reason.KansaiNegative},
	{"ひん", "ない", ichi | godan | suru | kuru, ichi | godan | suru | kuru, reason.KansaiNegative},
	{"てへん", "ていない", ichi | godan | suru | kuru, ichi, reason.KansaiNegative},
	{"とる", "ている", ichi | godan | suru | kuru, ichi, reason.KansaiTe},
	{"とった", "ていた", ichi | godan | suru | kuru, ichi, reason.KansaiPast},
}

// ruleIndex groups rules by From suffix, keeping table order within a
// group; suffixLengths supplies the longest-first order in which callers
// probe suffixes. Built once at package init, per spec.md
// §4.3's "grouped and indexed by that suffix" / §9's "naive linear scan
// disallowed" requirement.
var ruleIndex map[string][]Rule

// suffixLengths lists the distinct rune lengths of rule `From` suffixes,
// longest first, so Deinflect can probe only plausible suffix lengths against a candidate
// word instead of scanning the whole table.
var suffixLengths []int

func init() {
	ruleIndex = make(map[string][]Rule, len(rules))
	lengthSet := make(map[int]bool)
	for _, rl := range rules {
		ruleIndex[rl.From] = append(ruleIndex[rl.From], rl)
		lengthSet[len([]rune(rl.From))] = true
	}
	for l := range lengthSet {
		suffixLengths = append(suffixLengths, l)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(suffixLengths)))
}
