package query

import (
	"fmt"

	"github.com/velikanov/slovoserve/pkg/lexicon"
)

// checkConflicts runs the consistency checks over a constraint set and
// returns one message per failing check. The checks are independent:
// all failures are reported, not just the first.
//
// Deliberately not exhaustive: required letters are checked against
// the pattern's open slot count only, not against antipattern
// placement, so a clean set can still match nothing.
func checkConflicts(pattern *Pattern, required, excluded map[rune]bool, anti *Antipattern) []string {
	var msgs []string

	patternLetters := make(map[rune]bool)
	if pattern != nil {
		patternLetters = pattern.Letters()
	}

	// Pattern demands a letter the exclusion bans everywhere.
	clash := make(map[rune]bool)
	for r := range patternLetters {
		if excluded[r] {
			clash[r] = true
		}
	}
	if len(clash) > 0 {
		msgs = append(msgs, fmt.Sprintf(
			"pattern requires [%s], but these letters are excluded", SortedLetters(clash)))
	}

	// Pattern fixes a letter exactly where the antipattern bans it.
	if anti != nil && pattern != nil {
		for i, r := range pattern {
			if r == 0 {
				continue
			}
			if anti[i] != nil && anti[i][r] {
				msgs = append(msgs, fmt.Sprintf(
					"position %d: required letter %q is forbidden by the antipattern", i+1, r))
			}
		}
	}

	// Required letters not placed by the pattern must fit in its open
	// slots.
	free := lexicon.WordLen
	if pattern != nil {
		free = lexicon.WordLen - len(patternLetters)
	}
	remaining := 0
	for r := range required {
		if !patternLetters[r] {
			remaining++
		}
	}
	if remaining > free {
		msgs = append(msgs, fmt.Sprintf(
			"not enough free positions: %d required letters do not fit into %d open slots", remaining, free))
	}

	return msgs
}
