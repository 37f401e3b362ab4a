package content

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// read-only after init, safe to share across requests
var titleStopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "so": {}, "yet": {},
	"as": {}, "at": {}, "by": {}, "for": {}, "in": {}, "of": {},
	"off": {}, "on": {}, "per": {}, "to": {}, "up": {}, "via": {},
}

// the rule list is descriptive and returned with every conversion,
// it is not derived from which branches actually fired
var titleCaseRules = []string{
	"Capitalize the first and last word",
	"Capitalize all major words",
	"Keep articles, short conjunctions and prepositions lowercase",
	"Preserve the spelling of each word after its first letter",
}

// ToTitleCase lower-cases every word, then re-capitalizes the first and last
// word unconditionally and every interior word that is not a stop word.
// Whitespace runs collapse to single spaces.
func ToTitleCase(text string) TitleCaseResult {
	words := strings.Fields(strings.ToLower(text))

	for i, word := range words {
		if i == 0 || i == len(words)-1 {
			words[i] = capitalizeFirst(word)
			continue
		}

		if _, stop := titleStopWords[word]; stop {
			continue
		}

		words[i] = capitalizeFirst(word)
	}

	return TitleCaseResult{
		Converted:    strings.Join(words, " "),
		RulesApplied: slices.Clone(titleCaseRules),
	}
}

func capitalizeFirst(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError && size <= 1 {
		return word
	}

	return string(unicode.ToUpper(r)) + word[size:]
}
