package stats

import (
	"strings"
	"unicode/utf8"
)

// Stats holds the counters shown under the editor.
type Stats struct {
	Words int
	Chars int
	Lines int
}

// Compute derives word, character and line counts from text.
//
// Words are maximal runs of non-whitespace in the trimmed text. Lines are
// newline-delimited segments, so "" has 0 lines and "a\n" has 2.
func Compute(text string) Stats {
	return Stats{
		Words: WordCount(text),
		Chars: utf8.RuneCountInString(text),
		Lines: LineCount(text),
	}
}

// WordCount returns the number of whitespace-delimited tokens in text.
func WordCount(text string) int {
	t := strings.TrimSpace(text)
	if t == "" {
		return 0
	}
	return len(strings.Fields(t))
}

// LineCount returns the number of newline-delimited segments in text.
func LineCount(text string) int {
	if text == "" {
		return 0
	}
	return strings.Count(text, "\n") + 1
}
