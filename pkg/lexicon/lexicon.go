package lexicon

import (
	"sort"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Lexicon is an ordered, de-duplicated word list with optional zipf
// usage scores and a patricia prefix index. It is immutable after
// construction and safe to share across concurrent searches.
type Lexicon struct {
	words []string
	zipf  map[string]float64
	index *patricia.Trie
}

// Stats summarizes a loaded lexicon.
type Stats struct {
	TotalWords int
	HasFreq    bool
	FreqCount  int
}

// New builds a Lexicon from an ordered word list and a word→zipf map.
// Callers hand over ownership of both; neither may be mutated after.
func New(words []string, zipf map[string]float64) *Lexicon {
	index := patricia.NewTrie()
	for _, w := range words {
		score, ok := zipf[w]
		if !ok {
			score = 0
		}
		index.Insert(patricia.Prefix(w), score)
	}
	return &Lexicon{words: words, zipf: zipf, index: index}
}

// Words returns the full word list in load order. Read-only.
func (l *Lexicon) Words() []string {
	return l.words
}

// Len returns the number of unique words.
func (l *Lexicon) Len() int {
	return len(l.words)
}

// Zipf returns the usage score for word, if one was loaded.
func (l *Lexicon) Zipf(word string) (float64, bool) {
	z, ok := l.zipf[word]
	return z, ok
}

// HasFrequencies reports whether any zipf data was loaded.
func (l *Lexicon) HasFrequencies() bool {
	return len(l.zipf) > 0
}

// Frequencies returns the word→zipf map. Read-only.
func (l *Lexicon) Frequencies() map[string]float64 {
	return l.zipf
}

// WithPrefix returns every word starting with prefix, ascending.
// The prefix must already be normalized.
func (l *Lexicon) WithPrefix(prefix string) []string {
	var words []string
	err := l.index.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("visiting prefix subtree %q: %v", prefix, err)
		return nil
	}
	sort.Strings(words)
	return words
}

// Stats returns summary information about the lexicon.
func (l *Lexicon) Stats() Stats {
	return Stats{
		TotalWords: len(l.words),
		HasFreq:    len(l.zipf) > 0,
		FreqCount:  len(l.zipf),
	}
}
