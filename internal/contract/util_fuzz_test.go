package contract

import (
	"math"
	"strings"
	"testing"
)

// FuzzSplitList fuzzes SplitList with random comma-separated input.
func FuzzSplitList(f *testing.F) {
	for _, seed := range []string{"", "loc-1", "loc-1,loc-2", " , ,", "a,a,a", "ünïcode,🍔"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		seen := make(map[string]struct{})
		for _, item := range SplitList(s) {
			if item == "" || item != strings.TrimSpace(item) {
				t.Fatalf("untrimmed or empty item %q", item)
			}
			if _, dup := seen[item]; dup {
				t.Fatalf("duplicate item %q", item)
			}
			seen[item] = struct{}{}
		}
	})
}

// FuzzParseScore checks that every accepted score is finite.
func FuzzParseScore(f *testing.F) {
	for _, seed := range []string{"88", "89.5", "-3", "NaN", "+Inf", "1e309", "abc"} {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, s string) {
		score, err := ParseScore(s)
		if err != nil {
			return
		}
		if math.IsNaN(score) || math.IsInf(score, 0) {
			t.Fatalf("accepted non-finite score %v from %q", score, s)
		}
	})
}
