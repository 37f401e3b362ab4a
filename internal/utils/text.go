package utils

import (
	"strings"
)

func CountWords(text string) int {
	return len(strings.Fields(text))
}

// ExcerptWords keeps the leading maxWords whitespace-separated words.
func ExcerptWords(text string, maxWords int) string {
	words := strings.Fields(text)
	if len(words) <= maxWords {
		return text
	}

	return strings.Join(words[:maxWords], " ")
}

func CleanCodeBlock(s string) string {
	s = strings.TrimSpace(s)

	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```JSON")
	s = strings.TrimPrefix(s, "```")

	s = strings.TrimSuffix(s, "```")

	return strings.TrimSpace(s)
}
