package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jfeliu/contentkit/internal/config"
	"github.com/jfeliu/contentkit/internal/content"
	"github.com/jfeliu/contentkit/internal/textgen"
	"github.com/jfeliu/contentkit/internal/utils"
)

type Handler struct {
	logger    *utils.Logger
	generator textgen.Generator
	cache     *utils.GenCache
	cfg       *config.Config
}

func NewHandler(
	logger *utils.Logger,
	generator textgen.Generator,
	cache *utils.GenCache,
	cfg *config.Config,
) *Handler {
	return &Handler{
		logger:    logger,
		generator: generator,
		cache:     cache,
		cfg:       cfg,
	}
}

func (h *Handler) HandleTitleCase(c *gin.Context) {
	reqID := c.GetString("reqid")

	var payload TitleCaseRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	if strings.TrimSpace(payload.Text) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "text is required"})
		return
	}

	result := content.ToTitleCase(payload.Text)

	h.logger.Debug("[%s] Title-cased %d characters", reqID, len(payload.Text))
	c.JSON(http.StatusOK, result)
}

func (h *Handler) HandleKeywordDensity(c *gin.Context) {
	reqID := c.GetString("reqid")

	var payload KeywordDensityRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	// raw whitespace word count, deliberately not the analyzer's filtered count
	wordCount := utils.CountWords(payload.Content)
	if wordCount < h.cfg.Analysis.MinContentWords {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "content must have at least 50 words for a meaningful analysis",
		})
		return
	}

	report := content.AnalyzeKeywordDensity(payload.Content)

	h.logger.Info("[%s] Keyword analysis: raw_words=%d, tokens=%d, unique=%d",
		reqID, wordCount, report.TotalWords, report.UniqueKeywords)
	c.JSON(http.StatusOK, report)
}

func (h *Handler) HandleBlogOutline(c *gin.Context) {
	reqID := c.GetString("reqid")

	var payload BlogOutlineRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	topic := strings.TrimSpace(payload.Topic)
	if topic == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "topic is required"})
		return
	}

	cacheKey := "outline:" + strings.ToLower(topic)
	rawText, cached := h.cache.Get(cacheKey)
	if !cached {
		var err error
		rawText, err = h.generator.Generate(c.Request.Context(), outlinePrompt(topic))
		if err != nil {
			h.logger.Error("[%s] Outline generation failed: %v", reqID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "text generation service unavailable"})
			return
		}
		h.cache.Add(cacheKey, rawText)
	}

	// malformed generator output is absorbed by the fallback skeleton
	sections := content.StructureOutline(rawText, topic)

	h.logger.Info("[%s] Outline for '%s': %d sections (cached=%v)",
		reqID, topic, len(sections), cached)
	c.JSON(http.StatusOK, BlogOutlineResponse{Topic: topic, Outline: sections})
}

func (h *Handler) HandleMetaDescription(c *gin.Context) {
	reqID := c.GetString("reqid")

	var payload MetaDescriptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		h.logger.Error("[%s] JSON decode error: %v", reqID, err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON payload"})
		return
	}

	if strings.TrimSpace(payload.Content) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	excerpt := payload.Content
	wordCount := utils.CountWords(excerpt)
	if wordCount > h.cfg.Meta.ExcerptThresholdWords {
		excerpt = utils.ExcerptWords(excerpt, h.cfg.Meta.ExcerptWords)
		h.logger.Info("[%s] Excerpting content for prompt: %d -> %d words",
			reqID, wordCount, h.cfg.Meta.ExcerptWords)
	}

	prompt := metaDescriptionPrompt(excerpt, payload.Keywords)

	cacheKey := "meta:" + prompt
	rawText, cached := h.cache.Get(cacheKey)
	if !cached {
		var err error
		rawText, err = h.generator.Generate(c.Request.Context(), prompt)
		if err != nil {
			h.logger.Error("[%s] Meta description generation failed: %v", reqID, err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "text generation service unavailable"})
			return
		}
		h.cache.Add(cacheKey, rawText)
	}

	description := content.FormatMetaDescription(rawText, h.cfg.Meta.MaxLength)

	h.logger.Info("[%s] Meta description generated: %d characters (cached=%v)",
		reqID, len(description), cached)
	c.JSON(http.StatusOK, MetaDescriptionResponse{
		MetaDescription: description,
		Length:          len(description),
	})
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":       "ok",
		"cacheSize":    h.cache.Size(),
		"cacheHitRate": h.cache.HitRate(),
	})
}
