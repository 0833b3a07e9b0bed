package search

import "sort"

// missingZipf ranks words absent from the frequency map after every
// scored word. Real zipf scores live in roughly 0..8.
const missingZipf = -100.0

// Rank orders words most-frequent first, breaking ties (and missing
// scores) by ascending word text. Without frequency data the order is
// purely lexicographic. The ordering is total, so ranking an already
// ranked list is a no-op. The input is not modified.
func Rank(words []string, freqs map[string]float64) []string {
	ranked := append([]string(nil), words...)

	if len(freqs) == 0 {
		sort.Strings(ranked)
		return ranked
	}

	score := func(w string) float64 {
		if z, ok := freqs[w]; ok {
			return z
		}
		return missingZipf
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		zi, zj := score(ranked[i]), score(ranked[j])
		if zi != zj {
			return zi > zj
		}
		return ranked[i] < ranked[j]
	})
	return ranked
}
