// Package normalize implements text normalization (spec.md §4.1, C1) and
// the yoon/orthographic-variant utilities (spec.md §4.2, C2).
package normalize

import (
	"golang.org/x/text/unicode/norm"
)

const zwnj = 0x200C

// Options controls NormalizeInput's optional passes.
type Options struct {
	// MakeNumbersFullWidth converts half-width ASCII digits to full-width
	// before NFC composition. DefaultOptions sets it to true; the zero
	// Options value leaves it off.
	MakeNumbersFullWidth bool
	// StripZWNJ removes U+200C zero-width non-joiners, which some editors
	// (e.g. Google Docs) insert between every character.
	StripZWNJ bool
}

// DefaultOptions matches the reference behavior: fold digits, strip ZWNJ.
func DefaultOptions() Options {
	return Options{MakeNumbersFullWidth: true, StripZWNJ: true}
}

// OffsetMap maps a position in the normalized string to the corresponding
// position in the original input. It has length len(normalized)+1, the
// final entry being a sentinel equal to len(original).
type OffsetMap []int

// NormalizeInput applies, in order: half→full-width digit folding (when
// enabled), NFC composition, and ZWNJ stripping (when enabled), returning
// the normalized string plus an OffsetMap recovering original positions.
func NormalizeInput(input string, opts Options) (string, OffsetMap) {
	if input == "" {
		return "", OffsetMap{0}
	}

	text := input
	if opts.MakeNumbersFullWidth {
		text = halfToFullWidthDigits(text)
	}

	normalized, offsets := toNormalizedNFC(text)

	if opts.StripZWNJ {
		normalized, offsets = stripZWNJ(normalized, offsets)
	}

	if len(offsets) == 0 {
		offsets = OffsetMap{0}
	}
	return normalized, offsets
}

// halfToFullWidthDigits converts U+0030..U+0039 to U+FF10..U+FF19. This is
// the one direction golang.org/x/text/width does not fold (it folds
// full-width to half-width for display, not the reverse), so it is
// hand-rolled per the exact codepoint range spec.md §4.1 specifies.
func halfToFullWidthDigits(text string) string {
	runes := []rune(text)
	for i, r := range runes {
		if r >= '0' && r <= '9' {
			runes[i] = r - '0' + 0xFF10
		}
	}
	return string(runes)
}

// toNormalizedNFC NFC-composes text and builds an OffsetMap from rune
// position in the normalized string back to the original input.
//
// Ported from _examples/original_source/normalize.py's `_to_normalized_py`
// fallback: it walks the normalized string position by position and advances
// the original-position counter by one per rune, rather than tracking
// exactly how many source runes each composed rune consumed. For Japanese
// text (kanji/kana code points are already precomposed) NFC composition
// never changes the rune count, so this is exact in practice; it is the
// same approximation the reference implementation's pure-Python fallback
// makes.
func toNormalizedNFC(text string) (string, OffsetMap) {
	normalized := norm.NFC.String(text)
	runes := []rune(normalized)

	offsets := make(OffsetMap, 0, len(runes)+1)
	for i := range runes {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(runes))
	return normalized, offsets
}

// stripZWNJ removes zero-width non-joiners from an already-normalized
// string, adjusting the OffsetMap to match.
func stripZWNJ(text string, offsets OffsetMap) (string, OffsetMap) {
	runes := []rune(text)
	var out []rune
	var newOffsets OffsetMap
	for i, r := range runes {
		if r == zwnj {
			continue
		}
		out = append(out, r)
		if i < len(offsets) {
			newOffsets = append(newOffsets, offsets[i])
		}
	}
	if len(offsets) > 0 {
		newOffsets = append(newOffsets, offsets[len(offsets)-1])
	} else {
		newOffsets = append(newOffsets, 0)
	}
	return string(out), newOffsets
}

// IsNumeric reports whether text consists entirely of half-width or
// full-width ASCII digits (spec.md §4.6 numeric fast path).
func IsNumeric(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !((r >= '0' && r <= '9') || (r >= 0xFF10 && r <= 0xFF19)) {
			return false
		}
	}
	return true
}
