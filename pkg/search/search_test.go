package search

import (
	"fmt"
	"testing"

	"github.com/velikanov/slovoserve/pkg/lexicon"
	"github.com/velikanov/slovoserve/pkg/query"
)

func TestRunFiltersAndRanks(t *testing.T) {
	lex := lexicon.New(
		[]string{"пышка", "кошка", "мышка"},
		map[string]float64{"кошка": 5.1, "мышка": 4.2, "пышка": 2.9},
	)

	params := query.Parse("+ш")
	result := Run(lex, params)

	want := []string{"кошка", "мышка", "пышка"}
	if fmt.Sprint(result.Matches) != fmt.Sprint(want) {
		t.Errorf("matches = %v, want %v", result.Matches, want)
	}
	if result.Stats != (Stats{}) {
		t.Errorf("stats = %+v, want all zero", result.Stats)
	}
}

func TestRunWithoutFrequencies(t *testing.T) {
	lex := lexicon.New([]string{"пышка", "кошка"}, nil)
	result := Run(lex, query.Parse(""))

	want := []string{"кошка", "пышка"}
	if fmt.Sprint(result.Matches) != fmt.Sprint(want) {
		t.Errorf("matches = %v, want %v", result.Matches, want)
	}
}

// A constraint set that fails validation can never match: the
// conflict checks mirror the filter predicates.
func TestConflictImpliesEmptyResult(t *testing.T) {
	conflicted := []string{
		"-ка _к___",   // pattern letter excluded everywhere
		"_к___ 2к",    // pattern letter banned at its own position
		"+абвгде",     // six required letters, five positions
		"ко___ +абвг", // four required letters, three open slots
	}

	for _, q := range conflicted {
		t.Run(q, func(t *testing.T) {
			params := query.Parse(q)
			if len(params.Conflicts) == 0 {
				t.Fatalf("query %q should conflict", q)
			}
			matches, _ := Filter(corpus, params)
			if len(matches) != 0 {
				t.Errorf("conflicted query %q matched %v", q, matches)
			}
		})
	}
}

func TestFirstLetters(t *testing.T) {
	testCases := []struct {
		q           string
		want        string
		full        bool
		description string
	}{
		{"к____", "к", false, "Fixed first position"},
		{"-к к____", "", false, "Fixed first letter excluded"},
		{"1к к____", "", false, "Fixed first letter banned at position 0"},
		{"", "", true, "No constraints allow the whole alphabet"},
		{"-аб", "", false, "Exclusions shrink the set"},
		{"1вг", "", false, "Position-0 bans shrink the set"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			params := query.Parse(tc.q)
			letters := FirstLetters(params)

			if tc.full {
				if len(letters) != len([]rune(lexicon.Alphabet)) {
					t.Errorf("query %q: got %d letters, want full alphabet", tc.q, len(letters))
				}
				return
			}

			switch tc.q {
			case "к____":
				if len(letters) != 1 || !letters['к'] {
					t.Errorf("query %q: letters = %v, want {к}", tc.q, letters)
				}
			case "-к к____", "1к к____":
				if len(letters) != 0 {
					t.Errorf("query %q: letters = %v, want empty", tc.q, letters)
				}
			case "-аб":
				if letters['а'] || letters['б'] || !letters['в'] {
					t.Errorf("query %q: wrong narrowing: %v", tc.q, letters)
				}
			case "1вг":
				if letters['в'] || letters['г'] || !letters['а'] {
					t.Errorf("query %q: wrong narrowing: %v", tc.q, letters)
				}
			}
		})
	}
}

// The narrowing is advisory but must never drop a real match: every
// filtered word's first letter is in the candidate set.
func TestFirstLettersIsSound(t *testing.T) {
	queries := []string{"", "-мп", "1м", "_ыш__", "-п +ш 1м", "к____"}
	for _, q := range queries {
		params := query.Parse(q)
		if len(params.Conflicts) > 0 {
			continue
		}
		letters := FirstLetters(params)
		matches, _ := Filter(corpus, params)
		for _, w := range matches {
			first := []rune(w)[0]
			if !letters[first] {
				t.Errorf("query %q: match %q starts with %q, not in candidate set", q, w, first)
			}
		}
	}
}
