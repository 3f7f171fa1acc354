package normalize

// KanaToHiragana maps katakana U+30A1..U+30F6 to their hiragana
// counterparts (U+3040 offset), the four combining-voice katakana
// U+30F7..U+30FA to わ/ゐ/ゑ/を, and passes all other code points through
// unchanged. Ported from
// _examples/original_source/normalize.py's `_kana_to_hiragana_py`.
func KanaToHiragana(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		switch {
		case r >= 0x30A1 && r <= 0x30F6:
			runes[i] = r - 0x60
		case r == 0x30F7:
			runes[i] = 'わ'
		case r == 0x30F8:
			runes[i] = 'ゐ'
		case r == 0x30F9:
			runes[i] = 'ゑ'
		case r == 0x30FA:
			runes[i] = 'を'
		}
	}
	return string(runes)
}

// yoonStart is the set of consonant-syllable hiragana that can be followed
// by a small や/ゆ/よ to form a yoon (拗音): き し ち に ひ み り ぎ じ び ぴ.
var yoonStart = map[rune]bool{
	0x304d: true, 0x3057: true, 0x3061: true, 0x306b: true, 0x3072: true,
	0x307f: true, 0x308a: true, 0x304e: true, 0x3058: true, 0x3073: true,
	0x3074: true,
}

var smallY = map[rune]bool{0x3083: true, 0x3085: true, 0x3087: true}

// EndsInYoon reports whether text ends in a yoon: a palatalizable
// consonant-syllable hiragana followed by a small ゃ/ゅ/ょ. Ported from
// _examples/original_source/yoon.py.
func EndsInYoon(text string) bool {
	runes := []rune(text)
	if len(runes) < 2 {
		return false
	}
	last := runes[len(runes)-1]
	secondLast := runes[len(runes)-2]
	return smallY[last] && yoonStart[secondLast]
}

// choonVowel maps a hiragana mora to the vowel (あ/い/う/え/お) of its
// column. Used by
// ExpandChoon to resolve what ー lengthens.
var choonVowel = map[rune]rune{
	// a-row
	0x3042: 'あ', 0x304b: 'あ', 0x304c: 'あ', 0x3055: 'あ', 0x3056: 'あ',
	0x305f: 'あ', 0x3060: 'あ', 0x306a: 'あ', 0x306f: 'あ', 0x3070: 'あ',
	0x3071: 'あ', 0x307e: 'あ', 0x3084: 'あ', 0x3089: 'あ', 0x308f: 'あ',
	// i-row
	0x3044: 'い', 0x304d: 'い', 0x304e: 'い', 0x3057: 'い', 0x3058: 'い',
	0x3061: 'い', 0x3062: 'い', 0x306b: 'い', 0x3072: 'い', 0x3073: 'い',
	0x3074: 'い', 0x307f: 'い', 0x308a: 'い',
	// u-row
	0x3046: 'う', 0x304f: 'う', 0x3050: 'う', 0x3059: 'う', 0x305a: 'う',
	0x3064: 'う', 0x3065: 'う', 0x306c: 'う', 0x3075: 'う', 0x3076: 'う',
	0x3077: 'う', 0x3080: 'う', 0x3086: 'う', 0x308b: 'う',
	// e-row
	0x3048: 'え', 0x3051: 'え', 0x3052: 'え', 0x305b: 'え', 0x305c: 'え',
	0x3066: 'え', 0x3067: 'え', 0x306d: 'え', 0x3078: 'え', 0x3079: 'え',
	0x307a: 'え', 0x3081: 'え', 0x308c: 'え',
	// o-row
	0x304a: 'お', 0x3053: 'お', 0x3054: 'お', 0x305d: 'お', 0x305e: 'お',
	0x3068: 'お', 0x3069: 'お', 0x306e: 'お', 0x307b: 'お', 0x307c: 'お',
	0x307d: 'お', 0x3082: 'お', 0x3088: 'お', 0x308d: 'お', 0x3092: 'お',
}

const choon = 0x30FC

// ExpandChoon replaces each katakana long-vowel mark (ー) with the vowel
// sound of the preceding mora, operating on a hiragana-folded view and
// returning hiragana (spec.md §4.2). Used only to generate lookup variants
// when a primary lookup fails.
func ExpandChoon(text string) string {
	hira := []rune(KanaToHiragana(text))
	out := make([]rune, 0, len(hira))
	for i, r := range hira {
		if r == choon && i > 0 {
			if v, ok := choonVowel[out[len(out)-1]]; ok {
				out = append(out, v)
				continue
			}
		}
		out = append(out, r)
	}
	return string(out)
}

// kyuujitaiTable maps traditional (kyūjitai) kanji to their simplified
// (shinjitai) modern forms. A representative, non-exhaustive table covering
// commonly-encountered variants; deterministic and length-preserving.
var kyuujitaiTable = map[rune]rune{
	'舊': '旧', '國': '国', '學': '学', '體': '体', '對': '対',
	'圖': '図', '畫': '画', '會': '会', '發': '発', '櫻': '桜',
	'當': '当', '黑': '黒', '點': '点', '關': '関', '觀': '観',
	'廣': '広', '廳': '庁', '應': '応', '歡': '歓', '戰': '戦',
	'眞': '真', '縣': '県', '讀': '読', '變': '変', '藝': '芸',
	'覺': '覚', '壽': '寿', '實': '実', '飮': '飲', '鐵': '鉄',
	'惡': '悪', '假': '仮', '價': '価', '獨': '独', '繼': '継',
	'經': '経', '齒': '歯', '榮': '栄', '營': '営', '澤': '沢',
	'燈': '灯', '總': '総', '萬': '万', '盡': '尽', '佛': '仏',
	'擔': '担',
}

// KyuujitaiToShinjitai rewrites traditional kanji in text to their modern
// simplified form, passing through any character not in the table.
func KyuujitaiToShinjitai(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if s, ok := kyuujitaiTable[r]; ok {
			runes[i] = s
		}
	}
	return string(runes)
}
