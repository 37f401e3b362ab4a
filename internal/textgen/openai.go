package textgen

import (
	"context"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/jfeliu/contentkit/internal/config"
	"github.com/jfeliu/contentkit/internal/utils"
)

// OpenAIClient implements Generator against any OpenAI-compatible chat
// completions endpoint.
type OpenAIClient struct {
	client *openai.Client
	logger *utils.Logger
	cfg    *config.TextGenConfig
}

func NewOpenAIClient(cfg *config.Config, logger *utils.Logger) (*OpenAIClient, error) {
	if cfg.TextGen.Token == "" {
		return nil, fmt.Errorf("TEXTGEN_TOKEN is required")
	}

	clientConfig := openai.DefaultConfig(cfg.TextGen.Token)
	if cfg.TextGen.URL != "" {
		clientConfig.BaseURL = cfg.TextGen.URL
	}

	return &OpenAIClient{
		client: openai.NewClientWithConfig(clientConfig),
		logger: logger,
		cfg:    &cfg.TextGen,
	}, nil
}

func (c *OpenAIClient) Generate(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.cfg.Model,
		MaxTokens:   c.cfg.MaxNewTokens,
		Temperature: float32(c.cfg.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleUser,
				Content: prompt,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("chat completion request failed: %w", err)
	}

	c.logger.Debug("Model usage - prompt_tokens: %d, completion_tokens: %d, total_tokens: %d",
		resp.Usage.PromptTokens,
		resp.Usage.CompletionTokens,
		resp.Usage.TotalTokens)

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", fmt.Errorf("empty response from model")
	}

	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}
