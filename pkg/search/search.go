package search

import (
	"github.com/velikanov/slovoserve/pkg/lexicon"
	"github.com/velikanov/slovoserve/pkg/query"
)

// Result is a completed search: ranked matches plus filter
// diagnostics.
type Result struct {
	Matches []string
	Stats   Stats
}

// Run filters the lexicon against params and ranks the survivors.
// Callers must check params.Conflicts first; running a conflicted set
// is a caller bug.
func Run(lex *lexicon.Lexicon, params query.Params) Result {
	matches, stats := Filter(lex.Words(), params)
	return Result{
		Matches: Rank(matches, lex.Frequencies()),
		Stats:   stats,
	}
}

// FirstLetters returns the set of letters a matching word could start
// with: a singleton (or nothing) when the pattern fixes position 0,
// otherwise the alphabet minus exclusions and position-0 bans.
// Advisory narrowing only; Filter stays authoritative.
func FirstLetters(params query.Params) map[rune]bool {
	var banned map[rune]bool
	if params.Antipattern != nil {
		banned = params.Antipattern[0]
	}

	if params.Pattern != nil && params.Pattern[0] != 0 {
		first := params.Pattern[0]
		if params.Excluded[first] || banned[first] {
			return map[rune]bool{}
		}
		return map[rune]bool{first: true}
	}

	letters := lexicon.AlphabetSet()
	for r := range params.Excluded {
		delete(letters, r)
	}
	for r := range banned {
		delete(letters, r)
	}
	return letters
}
