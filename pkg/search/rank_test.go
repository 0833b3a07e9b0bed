package search

import (
	"fmt"
	"testing"
)

func TestRankByFrequency(t *testing.T) {
	freqs := map[string]float64{
		"кошка": 5.1,
		"мышка": 4.2,
		"пышка": 2.9,
	}

	testCases := []struct {
		words       []string
		freqs       map[string]float64
		want        []string
		description string
	}{
		{
			words:       []string{"пышка", "кошка", "мышка"},
			freqs:       freqs,
			want:        []string{"кошка", "мышка", "пышка"},
			description: "Descending zipf",
		},
		{
			words:       []string{"кошка", "мышка"},
			freqs:       map[string]float64{"кошка": 5.0},
			want:        []string{"кошка", "мышка"},
			description: "Unscored word sorts last",
		},
		{
			words:       []string{"мышка", "кошка"},
			freqs:       map[string]float64{"кошка": 3.0, "мышка": 3.0},
			want:        []string{"кошка", "мышка"},
			description: "Equal scores break alphabetically",
		},
		{
			words:       []string{"пышка", "мышка"},
			freqs:       map[string]float64{"кошка": 3.0},
			want:        []string{"мышка", "пышка"},
			description: "Both unscored break alphabetically",
		},
		{
			words:       []string{"пышка", "кошка", "мышка"},
			freqs:       nil,
			want:        []string{"кошка", "мышка", "пышка"},
			description: "No frequency data falls back to alphabetical",
		},
		{
			words:       nil,
			freqs:       freqs,
			want:        nil,
			description: "Empty input",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			got := Rank(tc.words, tc.freqs)
			if fmt.Sprint(got) != fmt.Sprint(tc.want) {
				t.Errorf("Rank(%v) = %v, want %v", tc.words, got, tc.want)
			}
		})
	}
}

// Ranking is total: re-ranking a ranked list is a no-op.
func TestRankIdempotent(t *testing.T) {
	freqs := map[string]float64{"кошка": 5.0, "мышка": 5.0}
	words := []string{"пышка", "мышка", "кошка"}

	once := Rank(words, freqs)
	twice := Rank(once, freqs)
	if fmt.Sprint(once) != fmt.Sprint(twice) {
		t.Errorf("re-ranking changed the order: %v vs %v", once, twice)
	}
}

func TestRankDoesNotModifyInput(t *testing.T) {
	words := []string{"пышка", "кошка"}
	Rank(words, nil)
	if words[0] != "пышка" || words[1] != "кошка" {
		t.Errorf("input slice was reordered: %v", words)
	}
}
