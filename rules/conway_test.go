package rules

import "testing"

func TestApplyConwayRules(t *testing.T) {
	cases := []struct {
		neighbors int
		alive     bool
		expected  bool
	}{
		// underpopulation
		{0, true, false},
		{1, true, false},
		// survival
		{2, true, true},
		{3, true, true},
		// overpopulation
		{4, true, false},
		{8, true, false},
		// birth
		{3, false, true},
		// dead cells stay dead otherwise
		{0, false, false},
		{2, false, false},
		{4, false, false},
		{8, false, false},
	}

	for _, tc := range cases {
		if got := ApplyConwayRules(tc.neighbors, tc.alive); got != tc.expected {
			t.Fatalf("ApplyConwayRules(%d, %v) = %v, expected %v",
				tc.neighbors, tc.alive, got, tc.expected)
		}
	}
}
