/*
Package lexicon loads and holds the 5-letter Russian word list that
slovoserve searches.

A Lexicon is built once at startup from a JSONL file (optionally
gzip-compressed) carrying one {"word": ..., "zipf": ...} object per
line, and is read-only afterwards. All words are normalized on load, so
consumers compare letters without any further folding.
*/
package lexicon

import "strings"

// WordLen is the fixed word length the lexicon serves.
const WordLen = 5

// Alphabet holds the 32 working letters: the Russian alphabet after
// folding ё onto е. Every stored word and every query letter is drawn
// from this set.
const Alphabet = "абвгдежзийклмнопрстуфхцчшщъыьэюя"

// Normalize lowercases s and folds ё onto е. Applied to every word on
// load and to every query token before comparison.
func Normalize(s string) string {
	return strings.ReplaceAll(strings.ToLower(s), "ё", "е")
}

// IsAlphabetic reports whether r is one of the working letters.
func IsAlphabetic(r rune) bool {
	return strings.ContainsRune(Alphabet, r)
}

// AlphabetSet returns a fresh mutable set of all working letters.
func AlphabetSet() map[rune]bool {
	set := make(map[rune]bool, 32)
	for _, r := range Alphabet {
		set[r] = true
	}
	return set
}
