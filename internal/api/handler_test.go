package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfeliu/contentkit/internal/config"
	"github.com/jfeliu/contentkit/internal/content"
	"github.com/jfeliu/contentkit/internal/utils"
)

type stubGenerator struct {
	response string
	err      error
	calls    int
}

func (s *stubGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	return s.response, nil
}

func newTestRouter(gen *stubGenerator) *gin.Engine {
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Analysis: config.AnalysisConfig{MinContentWords: 50},
		Meta: config.MetaConfig{
			MaxLength:             160,
			ExcerptThresholdWords: 400,
			ExcerptWords:          300,
		},
	}

	handler := NewHandler(utils.NewDiscardLogger(), gen, utils.NewGenCache(), cfg)

	router := gin.New()
	router.Use(RequestID())
	RegisterRoutes(router, handler)

	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	return w
}

func TestTitleCaseEndpoint(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/api/title-case", TitleCaseRequest{Text: "the lord of the rings"})
	require.Equal(t, http.StatusOK, w.Code)

	var result content.TitleCaseResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, "The Lord of the Rings", result.Converted)
	assert.Len(t, result.RulesApplied, 4)
}

func TestTitleCaseEndpointRejectsEmptyText(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/api/title-case", TitleCaseRequest{Text: "   "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTitleCaseEndpointRejectsInvalidJSON(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodPost, "/api/title-case", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestKeywordDensityEndpoint(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/api/keyword-density", KeywordDensityRequest{
		Content: strings.Repeat("keyword ", 60),
	})
	require.Equal(t, http.StatusOK, w.Code)

	var report content.DensityReport
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &report))
	assert.Equal(t, 60, report.TotalWords)
	require.Len(t, report.Keywords, 1)
	assert.Equal(t, content.StatusHigh, report.Keywords[0].Status)
}

func TestKeywordDensityEndpointRejectsShortContent(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	w := postJSON(t, router, "/api/keyword-density", KeywordDensityRequest{
		Content: "too short to analyze",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestBlogOutlineEndpoint(t *testing.T) {
	gen := &stubGenerator{
		response: "1. Getting Started\n- Install\n- Configure\n2. Advanced\n- Scale",
	}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/blog-outline", BlogOutlineRequest{Topic: "Kubernetes"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp BlogOutlineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Kubernetes", resp.Topic)
	require.Len(t, resp.Outline, 2)
	assert.Equal(t, "Getting Started", resp.Outline[0].Heading)
	assert.Equal(t, []string{"Install", "Configure"}, resp.Outline[0].Subsections)
}

func TestBlogOutlineEndpointFallsBackOnUnstructuredOutput(t *testing.T) {
	gen := &stubGenerator{response: "I could not come up with an outline, sorry."}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/blog-outline", BlogOutlineRequest{Topic: "Gardening"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp BlogOutlineResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Outline, 3)
	assert.Equal(t, "Introduction", resp.Outline[0].Heading)
	assert.Equal(t, "Why Gardening matters", resp.Outline[0].Subsections[0])
}

func TestBlogOutlineEndpointGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("connection refused")}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/blog-outline", BlogOutlineRequest{Topic: "Anything"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestBlogOutlineEndpointRejectsEmptyTopic(t *testing.T) {
	gen := &stubGenerator{}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/blog-outline", BlogOutlineRequest{Topic: "  "})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gen.calls)
}

func TestBlogOutlineEndpointCachesGeneratedText(t *testing.T) {
	gen := &stubGenerator{response: "1. Only Section\n- Only point"}
	router := newTestRouter(gen)

	for i := 0; i < 2; i++ {
		w := postJSON(t, router, "/api/blog-outline", BlogOutlineRequest{Topic: "Caching"})
		require.Equal(t, http.StatusOK, w.Code)
	}

	assert.Equal(t, 1, gen.calls)
}

func TestMetaDescriptionEndpoint(t *testing.T) {
	gen := &stubGenerator{response: `"A concise description of the article."`}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/meta-description", MetaDescriptionRequest{
		Content:  "A long article about search engine optimization and content strategy.",
		Keywords: []string{"seo", "content"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp MetaDescriptionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "A concise description of the article.", resp.MetaDescription)
	assert.Equal(t, len(resp.MetaDescription), resp.Length)
}

func TestMetaDescriptionEndpointRejectsEmptyContent(t *testing.T) {
	gen := &stubGenerator{}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/meta-description", MetaDescriptionRequest{Content: ""})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, gen.calls)
}

func TestMetaDescriptionEndpointGeneratorFailure(t *testing.T) {
	gen := &stubGenerator{err: errors.New("503 from upstream")}
	router := newTestRouter(gen)

	w := postJSON(t, router, "/api/meta-description", MetaDescriptionRequest{Content: "Some content"})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestRequestIDHeader(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "caller-id")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "caller-id", w.Header().Get("X-Request-ID"))
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(&stubGenerator{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
}
