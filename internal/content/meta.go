package content

import (
	"strings"

	"github.com/jfeliu/contentkit/internal/utils"
)

// FormatMetaDescription normalizes raw generator output into a single-line
// description of at most maxLength characters: code fences and surrounding
// quotes stripped, whitespace collapsed, over-long text cut at a word
// boundary with a trailing ellipsis.
func FormatMetaDescription(raw string, maxLength int) string {
	s := utils.CleanCodeBlock(raw)
	s = strings.Trim(s, `"'`)
	s = strings.Join(strings.Fields(s), " ")

	if len(s) <= maxLength {
		return s
	}

	cut := s[:maxLength-3]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	cut = strings.TrimRight(cut, " .,;:")

	return cut + "..."
}
