package api

import "github.com/jfeliu/contentkit/internal/content"

type TitleCaseRequest struct {
	Text string `json:"text"`
}

type KeywordDensityRequest struct {
	Content string `json:"content"`
}

type BlogOutlineRequest struct {
	Topic string `json:"topic"`
}

type MetaDescriptionRequest struct {
	Content  string   `json:"content"`
	Keywords []string `json:"keywords"`
}

type BlogOutlineResponse struct {
	Topic   string                   `json:"topic"`
	Outline []content.OutlineSection `json:"outline"`
}

type MetaDescriptionResponse struct {
	MetaDescription string `json:"metaDescription"`
	Length          int    `json:"length"`
}
