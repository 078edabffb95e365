package stats

import "testing"

func TestWordCount(t *testing.T) {
	cases := map[string]int{
		"":             0,
		"  ":           0,
		"a  b\tc":      3,
		"hello":        1,
		" one\ntwo  ":  2,
		"x\u00a0y z":   3,
		"\n\n word \n": 1,
	}
	for in, want := range cases {
		if got := WordCount(in); got != want {
			t.Fatalf("WordCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestLineCount(t *testing.T) {
	cases := map[string]int{
		"":       0,
		"a":      1,
		"a\nb":   2,
		"a\n":    2,
		"\n":     2,
		"\n\n\n": 4,
	}
	for in, want := range cases {
		if got := LineCount(in); got != want {
			t.Fatalf("LineCount(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestComputeCountsRunes(t *testing.T) {
	s := Compute("héllo wörld\n")
	if s.Chars != 12 {
		t.Fatalf("expected 12 chars, got %d", s.Chars)
	}
	if s.Words != 2 || s.Lines != 2 {
		t.Fatalf("unexpected stats: %+v", s)
	}
}
