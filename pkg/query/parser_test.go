package query

import "testing"

// Token classification is shape-based and order-free; these cases pin
// down the precedence rules and the last-token-wins overwrite.
func TestParseClassification(t *testing.T) {
	testCases := []struct {
		query       string
		excluded    string
		required    string
		pattern     string
		antipattern string
		description string
	}{
		{"-нзф +ки _а___ 2к", "знф", "ик", "_а___", "2к", "Full query"},
		{"+ки -нзф 2к _а___", "знф", "ик", "_а___", "2к", "Order does not matter"},
		{"-абв +где", "абв", "где", "", "", "Letters only"},
		{"_а___", "", "", "_а___", "", "Pattern only"},
		{"2к", "", "", "", "2к", "Antipattern only"},
		{"-аб -вг", "вг", "", "", "", "Last excluded token wins"},
		{"+аб +вг", "", "вг", "", "", "Last required token wins"},
		{"_а___ _б___", "", "", "_б___", "", "Last pattern token wins"},
		{"1а 2б", "", "", "", "2б", "Last antipattern token wins"},
		{"--help -аб", "аб", "", "", "", "Double-dash token is ignored"},
		{"слово -аб", "аб", "", "", "", "Plain word is ignored"},
		{"_а__ +к", "", "к", "", "", "Four-rune pattern is ignored"},
		{"_абвг_ +к", "", "к", "", "", "Six-rune pattern is ignored"},
		{"-", "", "", "", "", "Bare dash clears nothing"},
		{"", "", "", "", "", "Empty query"},
		{"   ", "", "", "", "", "Whitespace only"},
		{"-ЁЖ", "еж", "", "", "", "Excluded letters are normalized"},
		{"+КИ", "", "ик", "", "", "Required letters are normalized"},
		{"_Ё___", "", "", "_е___", "", "Pattern letters are normalized"},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			params := Parse(tc.query)

			if got := SortedLetters(params.Excluded); got != tc.excluded {
				t.Errorf("query %q: excluded = %q, want %q", tc.query, got, tc.excluded)
			}
			if got := SortedLetters(params.Required); got != tc.required {
				t.Errorf("query %q: required = %q, want %q", tc.query, got, tc.required)
			}

			pattern := ""
			if params.Pattern != nil {
				pattern = params.Pattern.String()
			}
			if pattern != tc.pattern {
				t.Errorf("query %q: pattern = %q, want %q", tc.query, pattern, tc.pattern)
			}
			if params.RawAntipattern != tc.antipattern {
				t.Errorf("query %q: raw antipattern = %q, want %q", tc.query, params.RawAntipattern, tc.antipattern)
			}
		})
	}
}

func TestParseNeverConflictsOnEmptyQuery(t *testing.T) {
	params := Parse("")
	if len(params.Conflicts) != 0 {
		t.Errorf("empty query produced conflicts: %v", params.Conflicts)
	}
	if params.Pattern != nil || params.Antipattern != nil {
		t.Error("empty query produced constraints")
	}
}

// A dash token keeps every rune after the prefix, digits included;
// only words made of alphabet letters can ever match them.
func TestParseExcludedKeepsAllRunes(t *testing.T) {
	params := Parse("-а1б")
	for _, r := range []rune{'а', '1', 'б'} {
		if !params.Excluded[r] {
			t.Errorf("excluded set is missing %q", r)
		}
	}
}

func TestPatternString(t *testing.T) {
	params := Parse("_о__а")
	if params.Pattern == nil {
		t.Fatal("pattern not parsed")
	}
	if got := params.Pattern.String(); got != "_о__а" {
		t.Errorf("Pattern.String() = %q, want %q", got, "_о__а")
	}
	letters := params.Pattern.Letters()
	if len(letters) != 2 || !letters['о'] || !letters['а'] {
		t.Errorf("Pattern.Letters() = %v, want {о а}", letters)
	}
}
