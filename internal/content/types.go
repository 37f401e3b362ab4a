package content

const (
	StatusLow     = "low"
	StatusGood    = "good"
	StatusOptimal = "optimal"
	StatusHigh    = "high"
)

type TitleCaseResult struct {
	Converted    string   `json:"converted"`
	RulesApplied []string `json:"rulesApplied"`
}

type KeywordStat struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Density   float64 `json:"density"`
	Status    string  `json:"status"`
}

type DensityReport struct {
	TotalWords        int           `json:"totalWords"`
	UniqueKeywords    int           `json:"uniqueKeywords"`
	Keywords          []KeywordStat `json:"keywords"`
	AvgDensity        float64       `json:"avgDensity"`
	TopKeywordDensity float64       `json:"topKeywordDensity"`
}

type OutlineSection struct {
	Heading     string   `json:"heading"`
	Level       int      `json:"level"`
	Subsections []string `json:"subsections"`
}
