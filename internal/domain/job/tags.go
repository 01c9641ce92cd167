package job

import "strings"

const maxTags = 10

// Words too generic to be useful as search tags.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "at": {}, "for": {}, "in": {}, "of": {},
	"on": {}, "or": {}, "the": {}, "to": {}, "with": {}, "we": {}, "you": {},
	"our": {}, "is": {}, "are": {}, "job": {}, "work": {},
}

// DeriveTags builds the lowercased keyword set from the job title and
// skills, dropping stop words and duplicates, capped at maxTags.
func DeriveTags(title string, skills []string) []string {
	seen := make(map[string]struct{})
	tags := make([]string, 0, maxTags)
	add := func(word string) {
		word = strings.ToLower(strings.TrimSpace(word))
		word = strings.Trim(word, ".,;:!?()[]{}\"'")
		if len(word) < 2 {
			return
		}
		if _, stop := stopWords[word]; stop {
			return
		}
		if _, dup := seen[word]; dup {
			return
		}
		if len(tags) >= maxTags {
			return
		}
		seen[word] = struct{}{}
		tags = append(tags, word)
	}
	for _, word := range strings.Fields(title) {
		add(word)
	}
	for _, skill := range skills {
		add(skill)
	}
	return tags
}
