package query

import (
	"strings"
	"unicode"

	"github.com/velikanov/slovoserve/pkg/lexicon"
)

// ParseAntipattern parses a positional-ban token. Two grammars are
// auto-detected:
//
//	compact: 1аб5в   a digit opens position 1..5, following letters
//	         are banned there; groups at the same position union
//	legacy:  %аб%%%в the 1st..5th segments after the first % map to
//	         positions 0..4; empty segments ban nothing
//
// Returns nil when the token is empty or constrains no position. The
// token must already be normalized.
func ParseAntipattern(token string) *Antipattern {
	if token == "" {
		return nil
	}

	var constraints Antipattern
	if strings.ContainsRune(token, '%') {
		parseLegacy(token, &constraints)
	} else {
		parseCompact(token, &constraints)
	}

	if constraints.empty() {
		return nil
	}
	return &constraints
}

// parseLegacy handles the %-delimited grammar. Segments beyond the
// fifth are ignored.
func parseLegacy(token string, constraints *Antipattern) {
	segments := strings.Split(token, "%")[1:]
	if len(segments) > lexicon.WordLen {
		segments = segments[:lexicon.WordLen]
	}
	for pos, segment := range segments {
		if segment == "" {
			continue
		}
		set := make(map[rune]bool, len(segment))
		for _, r := range segment {
			set[r] = true
		}
		constraints[pos] = set
	}
}

// parseCompact handles the digit grammar. A digit selects the current
// position even when out of range 1..5; letters attributed to an
// out-of-range position are discarded. Non-letter, non-digit runes are
// skipped.
func parseCompact(token string, constraints *Antipattern) {
	position := -1
	var pending []rune

	flush := func() {
		if position < 0 || len(pending) == 0 {
			return
		}
		idx := position - 1
		if idx < 0 || idx >= lexicon.WordLen {
			return
		}
		if constraints[idx] == nil {
			constraints[idx] = make(map[rune]bool, len(pending))
		}
		for _, r := range pending {
			constraints[idx][r] = true
		}
	}

	for _, r := range token {
		switch {
		case unicode.IsDigit(r):
			flush()
			position = int(r - '0')
			pending = pending[:0]
		case unicode.IsLetter(r):
			pending = append(pending, r)
		}
	}
	flush()
}
