package quiz

import (
	"strings"
	"unicode"

	"github.com/prepdeck/prepdeck/internal/question"
)

// AreaKey derives the knowledge-area grouping key for mock-exam analytics:
// the first tag lowercased when the question has tags, otherwise the
// slugified topic name.
func AreaKey(q *question.Question) string {
	if len(q.Tags) > 0 {
		return strings.ToLower(q.Tags[0])
	}
	return Slugify(q.Topic)
}

// Slugify lowercases s and collapses every run of non-alphanumeric
// characters into a single hyphen, trimming leading and trailing hyphens.
func Slugify(s string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if hyphen && b.Len() > 0 {
				b.WriteByte('-')
			}
			hyphen = false
			b.WriteRune(r)
		} else {
			hyphen = true
		}
	}
	return b.String()
}
