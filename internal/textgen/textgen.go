package textgen

import (
	"context"
	"fmt"

	"github.com/jfeliu/contentkit/internal/config"
	"github.com/jfeliu/contentkit/internal/utils"
)

// Generator produces free-form text for a prompt. Implementations wrap an
// external hosted model and are expected to fail with an error, never panic,
// when the service is unavailable or misconfigured.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

func NewFromConfig(cfg *config.Config, logger *utils.Logger) (Generator, error) {
	switch cfg.TextGen.Provider {
	case config.ProviderOpenAI:
		return NewOpenAIClient(cfg, logger)
	case config.ProviderInference:
		return NewClient(cfg, logger)
	default:
		return nil, fmt.Errorf("unknown text generation provider '%s'", cfg.TextGen.Provider)
	}
}
