package contentgen

import (
	"strings"
	"unicode"
)

// Words too common to signal topic overlap.
var stopwords = map[string]bool{
	"a": true, "an": true, "and": true, "are": true, "as": true, "at": true,
	"be": true, "by": true, "can": true, "do": true, "for": true, "from": true,
	"how": true, "in": true, "into": true, "is": true, "it": true, "of": true,
	"on": true, "or": true, "that": true, "the": true, "their": true,
	"this": true, "to": true, "what": true, "when": true, "why": true,
	"with": true, "you": true, "your": true,
}

func significantWords(title string) map[string]bool {
	words := make(map[string]bool)
	for _, w := range strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}) {
		if len(w) < 3 || stopwords[w] {
			continue
		}
		words[w] = true
	}
	return words
}

// SimilarTitles reports whether two titles cover the same topic: three or
// more shared significant words.
func SimilarTitles(a, b string) bool {
	wa := significantWords(a)
	wb := significantWords(b)

	shared := 0
	for w := range wa {
		if wb[w] {
			shared++
			if shared >= 3 {
				return true
			}
		}
	}
	return false
}
