package textgen

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jfeliu/contentkit/internal/config"
	"github.com/jfeliu/contentkit/internal/utils"
)

// Client talks to a hosted text-inference endpoint: prompt in, a result
// carrying a generated_text field out.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	logger     *utils.Logger
	cfg        *config.TextGenConfig
}

func NewClient(cfg *config.Config, logger *utils.Logger) (*Client, error) {
	if cfg.TextGen.URL == "" || cfg.TextGen.Token == "" {
		return nil, fmt.Errorf("TEXTGEN_URL and TEXTGEN_TOKEN are required")
	}

	return &Client{
		baseURL: cfg.TextGen.URL,
		token:   cfg.TextGen.Token,
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.App.HttpTimeoutSeconds) * time.Second,
		},
		logger: logger,
		cfg:    &cfg.TextGen,
	}, nil
}

func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	reqBody := inferenceRequest{
		Inputs: prompt,
		Parameters: inferenceParameters{
			MaxNewTokens:   c.cfg.MaxNewTokens,
			Temperature:    c.cfg.Temperature,
			ReturnFullText: false,
		},
	}

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request body: %w", err)
	}

	c.logger.Debug("Sending inference request: %s", string(jsonBody))

	url := c.baseURL
	if c.cfg.Model != "" {
		url = strings.TrimSuffix(c.baseURL, "/") + "/models/" + c.cfg.Model
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	c.setAuthHeaders(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", c.handleAPIError(resp)
	}

	// the endpoint returns either a bare result object or a one-element array
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %w", err)
	}

	var results []inferenceResult
	if err := json.Unmarshal(raw, &results); err != nil {
		var single inferenceResult
		if err := json.Unmarshal(raw, &single); err != nil {
			return "", fmt.Errorf("failed to decode response: %w", err)
		}
		results = append(results, single)
	}

	if len(results) == 0 || strings.TrimSpace(results[0].GeneratedText) == "" {
		return "", fmt.Errorf("empty response from inference service")
	}

	generated := strings.TrimSpace(results[0].GeneratedText)
	c.logger.Debug("Inference raw response: %s", generated)

	return generated, nil
}

func (c *Client) setAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
}

func (c *Client) handleAPIError(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)
	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
		Body:       string(body),
	}
}
