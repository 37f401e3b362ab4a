package content

import (
	"math"
	"regexp"
	"sort"
	"strings"
)

const (
	topKeywordLimit = 20
	minTokenLength  = 3
)

var nonWordChars = regexp.MustCompile(`[^\w\s]`)

// AnalyzeKeywordDensity tokenizes content (lower-case, punctuation replaced
// by spaces, tokens shorter than 3 characters dropped) and ranks the
// surviving tokens by frequency. Density is relative to the filtered token
// count, not the raw word count.
func AnalyzeKeywordDensity(rawContent string) DensityReport {
	normalized := nonWordChars.ReplaceAllString(strings.ToLower(rawContent), " ")

	var tokens []string
	for _, field := range strings.Fields(normalized) {
		if len(field) >= minTokenLength {
			tokens = append(tokens, field)
		}
	}

	totalWords := len(tokens)

	frequencies := make(map[string]int)
	var firstSeen []string
	for _, token := range tokens {
		if frequencies[token] == 0 {
			firstSeen = append(firstSeen, token)
		}
		frequencies[token]++
	}

	// stable sort over first-occurrence order keeps equal-frequency
	// keywords deterministic
	sort.SliceStable(firstSeen, func(i, j int) bool {
		return frequencies[firstSeen[i]] > frequencies[firstSeen[j]]
	})

	ranked := firstSeen
	if len(ranked) > topKeywordLimit {
		ranked = ranked[:topKeywordLimit]
	}

	keywords := make([]KeywordStat, 0, len(ranked))
	densitySum := 0.0
	for _, word := range ranked {
		density := roundTwo(100 * float64(frequencies[word]) / float64(totalWords))
		densitySum += density

		keywords = append(keywords, KeywordStat{
			Word:      word,
			Frequency: frequencies[word],
			Density:   density,
			Status:    densityStatus(density),
		})
	}

	avgDensity := 0.0
	topDensity := 0.0
	if len(keywords) > 0 {
		avgDensity = roundTwo(densitySum / float64(len(keywords)))
		topDensity = keywords[0].Density
	}

	return DensityReport{
		TotalWords:        totalWords,
		UniqueKeywords:    len(firstSeen),
		Keywords:          keywords,
		AvgDensity:        avgDensity,
		TopKeywordDensity: topDensity,
	}
}

func densityStatus(density float64) string {
	switch {
	case density < 1:
		return StatusLow
	case density < 2:
		return StatusGood
	case density < 4:
		return StatusOptimal
	default:
		return StatusHigh
	}
}

func roundTwo(v float64) float64 {
	return math.Round(v*100) / 100
}
