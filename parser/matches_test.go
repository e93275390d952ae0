package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func collect(p Parser, input string) []Match {
	var matches []Match
	for m := range Matches(p, input) {
		matches = append(matches, m)
	}
	return matches
}

func TestMatches(t *testing.T) {
	t.Run("non-digit runs stop at the first digit", func(t *testing.T) {
		p := Flatten(Plus(MustPattern("^0-9")))
		got := collect(p, "abc123")
		want := []Match{{Value: "abc", Start: 0, End: 3}}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("matches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("multiple non-overlapping spans", func(t *testing.T) {
		p := Flatten(Plus(Digit()))
		got := collect(p, "a12b345c6")
		want := []Match{
			{Value: "12", Start: 1, End: 3},
			{Value: "345", Start: 4, End: 7},
			{Value: "6", Start: 8, End: 9},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("matches mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("no matches", func(t *testing.T) {
		if got := collect(Digit(), "abc"); len(got) != 0 {
			t.Errorf("got %d matches, want 0", len(got))
		}
	})

	t.Run("empty successes are skipped", func(t *testing.T) {
		if got := collect(Star(Digit()), "ab"); len(got) != 0 {
			t.Errorf("got %d matches, want 0", len(got))
		}
	})

	t.Run("early break stops the scan", func(t *testing.T) {
		p := Flatten(Plus(Digit()))
		count := 0
		for range Matches(p, "1 2 3") {
			count++
			break
		}
		if count != 1 {
			t.Errorf("count = %d, want 1", count)
		}
	})
}
