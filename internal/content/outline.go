package content

import (
	"fmt"
	"regexp"
	"strings"
)

var sectionPrefix = regexp.MustCompile(`^\d+\.`)

// StructureOutline parses loosely structured generator output into sections.
// Lines starting with "N." open a new section, lines starting with "-" add a
// subsection to the open section, everything else is ignored. When nothing
// parses it falls back to a fixed skeleton built from the topic, so the
// result is never empty.
func StructureOutline(rawText, fallbackTopic string) []OutlineSection {
	var sections []OutlineSection
	var current *OutlineSection

	for _, line := range strings.Split(rawText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if sectionPrefix.MatchString(line) {
			if current != nil {
				sections = append(sections, *current)
			}
			current = &OutlineSection{
				Heading:     strings.TrimSpace(sectionPrefix.ReplaceAllString(line, "")),
				Level:       2,
				Subsections: []string{},
			}
			continue
		}

		if strings.HasPrefix(line, "-") && current != nil {
			subsection := strings.TrimSpace(strings.TrimPrefix(line, "-"))
			current.Subsections = append(current.Subsections, subsection)
		}
	}

	if current != nil {
		sections = append(sections, *current)
	}

	if len(sections) == 0 {
		return fallbackOutline(fallbackTopic)
	}

	return sections
}

func fallbackOutline(topic string) []OutlineSection {
	return []OutlineSection{
		{
			Heading: "Introduction",
			Level:   2,
			Subsections: []string{
				fmt.Sprintf("Why %s matters", topic),
				"What you'll learn",
			},
		},
		{
			Heading: "Main Content",
			Level:   2,
			Subsections: []string{
				"Key concepts",
				"Best practices",
				"Common mistakes",
			},
		},
		{
			Heading: "Conclusion",
			Level:   2,
			Subsections: []string{
				"Key takeaways",
				"Next steps",
			},
		},
	}
}
