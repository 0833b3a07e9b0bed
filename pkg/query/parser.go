/*
Package query turns a raw search string into a structured constraint
set for 5-letter word lookup.

A query is a whitespace-separated list of tokens classified by shape,
in any order:

	-абв    gray letters, excluded everywhere
	+где    yellow letters, required somewhere
	_а___   green pattern, exactly 5 characters with _ for open slots
	2кр5н   antipattern: positions with letters banned there

Tokens that match no shape are dropped silently. When a kind appears
more than once, the last token wins. Parsing never fails; contradictory
constraints are reported through Params.Conflicts instead.
*/
package query

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/velikanov/slovoserve/pkg/lexicon"
)

// Pattern fixes letters at positions; zero slots are unconstrained.
type Pattern [lexicon.WordLen]rune

// String renders the pattern in query form, with _ for open slots.
func (p *Pattern) String() string {
	var b strings.Builder
	for _, r := range p {
		if r == 0 {
			b.WriteByte('_')
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Letters returns the set of letters the pattern fixes anywhere.
func (p *Pattern) Letters() map[rune]bool {
	letters := make(map[rune]bool)
	for _, r := range p {
		if r != 0 {
			letters[r] = true
		}
	}
	return letters
}

// Antipattern bans letters per position; a nil slot bans nothing.
type Antipattern [lexicon.WordLen]map[rune]bool

func (a *Antipattern) empty() bool {
	for _, set := range a {
		if len(set) > 0 {
			return false
		}
	}
	return true
}

// Params is a parsed constraint set. Pattern and Antipattern are nil
// when the query did not constrain them. A non-empty Conflicts list
// means the set is unsatisfiable and must not be filtered with.
type Params struct {
	Excluded       map[rune]bool
	Required       map[rune]bool
	Pattern        *Pattern
	Antipattern    *Antipattern
	RawAntipattern string
	Conflicts      []string
}

// tokenKind discriminates the constraint token shapes.
type tokenKind int

const (
	tokenIgnored tokenKind = iota
	tokenExcluded
	tokenRequired
	tokenPattern
	tokenAntipattern
)

// classify decides a token's kind from its shape alone. Precedence:
// exclusion prefix, inclusion prefix, 5-rune pattern with placeholder,
// contains a digit, ignored. A -- prefix is flag-like and ignored.
func classify(token string) tokenKind {
	switch {
	case strings.HasPrefix(token, "--"):
		return tokenIgnored
	case strings.HasPrefix(token, "-"):
		return tokenExcluded
	case strings.HasPrefix(token, "+"):
		return tokenRequired
	case utf8.RuneCountInString(token) == lexicon.WordLen && strings.ContainsRune(token, '_'):
		return tokenPattern
	case strings.ContainsFunc(token, unicode.IsDigit):
		return tokenAntipattern
	}
	return tokenIgnored
}

// Parse classifies the tokens of raw, normalizes their letters, parses
// the antipattern grammar and validates the combined set. It never
// fails: unrecognized tokens are dropped and contradictions end up in
// Conflicts.
func Parse(raw string) Params {
	var exToken, reqToken, patToken, antiToken string

	for _, token := range strings.Fields(raw) {
		switch classify(token) {
		case tokenExcluded:
			exToken = token[1:]
		case tokenRequired:
			reqToken = token[1:]
		case tokenPattern:
			patToken = token
		case tokenAntipattern:
			antiToken = token
		}
	}

	params := Params{
		Excluded:       letterSet(lexicon.Normalize(exToken)),
		Required:       letterSet(lexicon.Normalize(reqToken)),
		RawAntipattern: lexicon.Normalize(antiToken),
	}

	if patToken != "" {
		normalized := lexicon.Normalize(patToken)
		if utf8.RuneCountInString(normalized) == lexicon.WordLen {
			var pattern Pattern
			for i, r := range []rune(normalized) {
				if r != '_' {
					pattern[i] = r
				}
			}
			params.Pattern = &pattern
		}
	}

	params.Antipattern = ParseAntipattern(params.RawAntipattern)
	params.Conflicts = checkConflicts(params.Pattern, params.Required, params.Excluded, params.Antipattern)
	return params
}

// letterSet collects every rune of s into a set.
func letterSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

// SortedLetters renders a rune set as a sorted string, for display.
func SortedLetters(set map[rune]bool) string {
	runes := make([]rune, 0, len(set))
	for r := range set {
		runes = append(runes, r)
	}
	sort.Slice(runes, func(i, j int) bool { return runes[i] < runes[j] })
	return string(runes)
}
