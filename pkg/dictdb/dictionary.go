package dictdb

import "github.com/japaniel/tentoku/pkg/model"

// Dictionary is the small capability set spec.md §9 calls out as the
// "dynamic-dispatch dictionary" interface: concrete implementations
// (a plain Store, or a Store wrapped by a Trie) compose behind this single
// contract, and callers depend only on it.
type Dictionary interface {
	// GetWords returns entries whose kanji or kana reading equals text, or
	// whose hiragana-folded reading equals the hiragana fold of text when
	// text is entirely katakana. matchingText (if non-empty) is the text
	// used to compute per-reading match_range/matched flags; it defaults to
	// text when empty.
	GetWords(text string, maxResults int, matchingText string) ([]model.WordEntry, error)
	// GetEntriesByIDs batch-fetches entries, preserving id order.
	GetEntriesByIDs(ids []int64, matchingText string) ([]model.WordEntry, error)
	// Exists reports whether any entry has a kanji or kana reading equal to
	// text.
	Exists(text string) (bool, error)
}
