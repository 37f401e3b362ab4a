package api

import (
	"fmt"
	"strings"
)

func outlinePrompt(topic string) string {
	return fmt.Sprintf(
		"Create a blog post outline for the topic: %s\n\n"+
			"Format each main section as a numbered line like '1. Section Title' "+
			"and each subsection as a line starting with '- '. "+
			"Use 4 to 6 main sections with 2 to 4 subsections each. "+
			"Return only the outline, no explanations.",
		topic,
	)
}

func metaDescriptionPrompt(excerpt string, keywords []string) string {
	keywordsClause := ""
	if len(keywords) > 0 {
		keywordsClause = fmt.Sprintf(
			" Naturally include these keywords if relevant: %s.",
			strings.Join(keywords, ", "),
		)
	}

	return fmt.Sprintf(
		"Write a compelling SEO meta description of at most 155 characters for "+
			"the content below.%s Return only the description, without quotes or "+
			"any additional text.\n\nContent: %s",
		keywordsClause,
		excerpt,
	)
}
