/*
Package search filters and ranks lexicon words against a parsed
constraint set.

Filtering is a single authoritative pass over the corpus in load
order; ranking then orders survivors by zipf usage score. Both are
pure functions over immutable inputs, so any number of searches may
run concurrently against the same lexicon.
*/
package search

import (
	"github.com/velikanov/slovoserve/pkg/query"
)

// Stats counts, per predicate, how many corpus words that predicate
// rejected. Diagnostics only.
type Stats struct {
	Excluded    int
	Required    int
	Pattern     int
	Antipattern int
}

// Filter evaluates every word against the constraint set and returns
// the survivors in corpus order. Predicates run in a fixed order
// (excluded, required, pattern, antipattern) and short-circuit per
// word; the first failing predicate takes the tally. Absent
// constraints never reject. Callers must not pass params with
// conflicts.
func Filter(words []string, params query.Params) ([]string, Stats) {
	var stats Stats
	if len(words) == 0 {
		return nil, stats
	}

	var matches []string
	for _, word := range words {
		runes := []rune(word)

		if hasExcluded(runes, params.Excluded) {
			stats.Excluded++
			continue
		}
		if missesRequired(runes, params.Required) {
			stats.Required++
			continue
		}
		if breaksPattern(runes, params.Pattern) {
			stats.Pattern++
			continue
		}
		if breaksAntipattern(runes, params.Antipattern) {
			stats.Antipattern++
			continue
		}
		matches = append(matches, word)
	}
	return matches, stats
}

func hasExcluded(runes []rune, excluded map[rune]bool) bool {
	if len(excluded) == 0 {
		return false
	}
	for _, r := range runes {
		if excluded[r] {
			return true
		}
	}
	return false
}

// missesRequired checks the required letters against the word's
// distinct letters. Subset semantics: a doubled requirement is
// satisfied by a single occurrence.
func missesRequired(runes []rune, required map[rune]bool) bool {
	if len(required) == 0 {
		return false
	}
	present := make(map[rune]bool, len(runes))
	for _, r := range runes {
		present[r] = true
	}
	for r := range required {
		if !present[r] {
			return true
		}
	}
	return false
}

func breaksPattern(runes []rune, pattern *query.Pattern) bool {
	if pattern == nil {
		return false
	}
	for i, want := range pattern {
		if want == 0 {
			continue
		}
		if i >= len(runes) || runes[i] != want {
			return true
		}
	}
	return false
}

func breaksAntipattern(runes []rune, anti *query.Antipattern) bool {
	if anti == nil {
		return false
	}
	for i, banned := range anti {
		if banned == nil || i >= len(runes) {
			continue
		}
		if banned[runes[i]] {
			return true
		}
	}
	return false
}
